package receipt

import (
	"context"
	"sync"

	"marhaba/apperrors"
	"marhaba/i18n"
	"marhaba/logger"
	"marhaba/store"
)

type ExportResult struct {
	FileName  string `json:"file_name"`
	Simulated bool   `json:"simulated"`
	Message   string `json:"message"`
}

// Exporter turns rendered content into a downloadable document
type Exporter interface {
	Export(ctx context.Context, contentRef, fileName string) (ExportResult, error)
}

// SimulatedExporter knows which contents have been rendered and reports a
// simulated download for them without producing a file
type SimulatedExporter struct {
	mu       sync.RWMutex
	rendered map[string]bool
	lang     func() store.Language
}

func NewSimulatedExporter(lang func() store.Language) *SimulatedExporter {
	if lang == nil {
		lang = func() store.Language { return store.LanguageEN }
	}
	return &SimulatedExporter{rendered: make(map[string]bool), lang: lang}
}

// Register marks content as rendered and exportable
func (e *SimulatedExporter) Register(contentRef string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rendered[contentRef] = true
}

func (e *SimulatedExporter) Export(ctx context.Context, contentRef, fileName string) (ExportResult, error) {
	if err := ctx.Err(); err != nil {
		return ExportResult{}, err
	}

	logger.Info("Attempting to generate PDF for #" + contentRef)

	e.mu.RLock()
	found := contentRef != "" && e.rendered[contentRef]
	e.mu.RUnlock()

	lang := e.lang()
	if !found {
		logger.Error("Element not found for PDF generation", nil)
		return ExportResult{}, apperrors.NewNotFoundError(i18n.T("pdfContentNotFound", lang))
	}
	return ExportResult{
		FileName:  fileName + ".pdf",
		Simulated: true,
		Message:   i18n.T("pdfSimulated", lang),
	}, nil
}

// Service serves receipts from the store and exports them
type Service struct {
	store    *store.Store
	exporter Exporter
	registry *SimulatedExporter
}

// NewService uses exporter for downloads; when it is a SimulatedExporter,
// every receipt built through the service is registered with it
func NewService(st *store.Store, exporter Exporter) *Service {
	s := &Service{store: st, exporter: exporter}
	if sim, ok := exporter.(*SimulatedExporter); ok {
		s.registry = sim
	}
	return s
}

// Receipt builds the receipt of a booking for its customer or for the
// provider of the booked offer
func (s *Service) Receipt(bookingID string) (Receipt, error) {
	state := s.store.GetState()
	if err := authorize(state, bookingID); err != nil {
		return Receipt{}, err
	}
	r, err := Build(state, bookingID, state.Language)
	if err != nil {
		return Receipt{}, err
	}
	if s.registry != nil {
		s.registry.Register(r.ContentRef)
	}
	return r, nil
}

// Export downloads the receipt of a booking that has been viewed
func (s *Service) Export(ctx context.Context, bookingID string) (ExportResult, error) {
	if err := authorize(s.store.GetState(), bookingID); err != nil {
		return ExportResult{}, err
	}
	return s.exporter.Export(ctx, ContentRef(bookingID), FileName(bookingID))
}

func authorize(state store.AppState, bookingID string) error {
	u := state.CurrentUser
	if u == nil {
		return apperrors.NewUnauthorizedError("login required")
	}
	b, ok := state.Booking(bookingID)
	if !ok {
		return apperrors.NewNotFoundError(i18n.T("bookingNotFound", state.Language))
	}
	if b.UserID == u.ID {
		return nil
	}
	if o, ok := state.Offer(b.OfferID); ok && u.IsProvider() && o.ProviderID == u.ID {
		return nil
	}
	return apperrors.NewForbiddenError("booking belongs to another user")
}
