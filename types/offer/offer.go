package offer

import (
	"fmt"

	"marhaba/models/offer"
)

// OfferCreateRequest is the add-offer form. Images and services are comma
// separated lists.
type OfferCreateRequest struct {
	TitleEN    string         `json:"title_en" validate:"required"`
	TitleAR    string         `json:"title_ar" validate:"required"`
	DescEN     string         `json:"description_en" validate:"required"`
	DescAR     string         `json:"description_ar" validate:"required"`
	Category   offer.Category `json:"category" validate:"required,oneof=tour hotel guesthouse"`
	LocationEN string         `json:"location_en" validate:"required"`
	LocationAR string         `json:"location_ar" validate:"required"`
	Price      float64        `json:"price" validate:"required,gt=0"`
	Images     string         `json:"images" validate:"required"`
	ServicesEN string         `json:"services_en"`
	ServicesAR string         `json:"services_ar"`
	PolicyEN   string         `json:"cancellation_policy_en"`
	PolicyAR   string         `json:"cancellation_policy_ar"`
	Featured   bool           `json:"featured"`
}

func (o OfferCreateRequest) Validate() error {
	if o.TitleEN == "" || o.TitleAR == "" {
		return fmt.Errorf("title is required in both languages")
	}
	if o.DescEN == "" || o.DescAR == "" {
		return fmt.Errorf("description is required in both languages")
	}
	if !o.Category.IsValid() {
		return fmt.Errorf("category must be one of tour, hotel, guesthouse")
	}
	if o.LocationEN == "" || o.LocationAR == "" {
		return fmt.Errorf("location is required in both languages")
	}
	if o.Price <= 0 {
		return fmt.Errorf("price must be greater than zero")
	}
	if o.Images == "" {
		return fmt.Errorf("images is required")
	}
	return nil
}
