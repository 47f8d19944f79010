package routes

import (
	"github.com/gofiber/fiber/v2"

	"marhaba/constants"
	appController "marhaba/controllers/app"
	authController "marhaba/controllers/auth"
	bookingController "marhaba/controllers/booking"
	chatController "marhaba/controllers/chat"
	dashboardController "marhaba/controllers/dashboard"
	inquiryController "marhaba/controllers/inquiry"
	offerController "marhaba/controllers/offer"
	receiptController "marhaba/controllers/receipt"
	userController "marhaba/controllers/user"
	"marhaba/middleware"
	"marhaba/services/auth"
	"marhaba/services/chat"
	"marhaba/services/marketplace"
	"marhaba/services/receipt"
	"marhaba/store"
	"marhaba/types"
)

// Services are the long-lived objects the controllers share
type Services struct {
	Store        *store.Store
	Marketplace  *marketplace.Service
	Auth         *auth.Service
	Receipts     *receipt.Service
	Assistant    *chat.Assistant
	IsProduction bool
}

func SetupRoutes(app *fiber.App, s Services) {
	mw := middleware.NewAuthenticator(s.Auth.Tokens(), s.Store)

	appCtl := appController.NewAppController(s.Marketplace)
	authCtl := authController.NewAuthController(s.Auth, s.IsProduction)
	userCtl := userController.NewUserController(s.Store)
	offerCtl := offerController.NewOfferController(s.Marketplace)
	bookingCtl := bookingController.NewBookingController(s.Marketplace)
	inquiryCtl := inquiryController.NewInquiryController(s.Marketplace)
	dashboardCtl := dashboardController.NewDashboardController(s.Store)
	receiptCtl := receiptController.NewReceiptController(s.Receipts)
	chatCtl := chatController.NewChatController(s.Assistant, s.Store)

	providerOnly := mw.RequireRoles(constants.RoleProvider)
	signedIn := mw.RequireAuthentication()
	optionalSession := mw.OptionalAuthentication()

	// Index route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(types.ApiResponse{
			Message: "Marhaba - Desert Tourism API",
			Status:  fiber.StatusOK,
		})
	})

	/*=============================================================================
	| Public Routes
	===============================================================================*/
	api := app.Group("/api")
	api.Get("/state", appCtl.GetState)
	api.Put("/preferences/language", appCtl.SetLanguage)
	api.Put("/preferences/theme", appCtl.SetTheme)
	api.Post("/navigation", appCtl.Navigate)
	api.Post("/modals/:name/open", appCtl.OpenModal)
	api.Post("/modals/:name/close", appCtl.CloseModal)

	api.Post("/login", authCtl.Login)
	api.Post("/register", authCtl.Register)
	api.Post("/logout", signedIn, authCtl.LogOut)

	/*=============================================================================
	| Protected Routes
	===============================================================================*/
	authGroup := api.Group("/auth", signedIn)
	authGroup.Get("/profile", userCtl.GetUserInfo)

	api.Get("/dashboard", signedIn, dashboardCtl.Show)

	/*=============================================================================
	| Offer Routes
	===============================================================================*/
	offers := api.Group("/offers")
	offers.Get("/", offerCtl.Index)
	offers.Get("/featured", offerCtl.Featured)
	offers.Get("/tours", offerCtl.Tours)
	offers.Get("/:id", offerCtl.Show)
	offers.Post("/:id/open", offerCtl.Open)
	offers.Post("/:id/book", offerCtl.Book)

	offers.Post("/", providerOnly, offerCtl.Store)
	offers.Post("/:id/delete-request", providerOnly, offerCtl.RequestDelete)
	offers.Delete("/:id", providerOnly, offerCtl.Destroy)

	/*=============================================================================
	| Booking Routes
	===============================================================================*/
	bookings := api.Group("/bookings")

	// guests get the login modal instead of a bare 401
	bookings.Post("/", optionalSession, bookingCtl.Store)
	bookings.Post("/quote", bookingCtl.Quote)

	bookings.Post("/:id/pay", signedIn, bookingCtl.Pay)
	bookings.Post("/:id/cancel-request", signedIn, bookingCtl.RequestCancel)
	bookings.Post("/:id/cancel", signedIn, bookingCtl.Cancel)
	bookings.Post("/:id/confirm", providerOnly, bookingCtl.Confirm)
	bookings.Post("/:id/reject", providerOnly, bookingCtl.Reject)

	/*=============================================================================
	| Inquiry Routes
	===============================================================================*/
	inquiries := api.Group("/inquiries")
	inquiries.Post("/", optionalSession, inquiryCtl.Store)
	inquiries.Post("/:id/reply", providerOnly, inquiryCtl.Reply)

	/*=============================================================================
	| Receipt Routes
	===============================================================================*/
	receipts := api.Group("/receipts", signedIn)
	receipts.Get("/:id", receiptCtl.Show)
	receipts.Post("/:id/export", receiptCtl.Export)

	/*=============================================================================
	| Chat Routes
	===============================================================================*/
	api.Get("/chat", chatCtl.Welcome)
	api.Post("/chat", chatCtl.Send)
}
