package services

import (
	"context"
	"fmt"

	"github.com/srgjo27/catering_booking/internal/core/domain"
	"github.com/srgjo27/catering_booking/internal/core/ports"
)

type QuoteResult struct {
	Quote      domain.Quote            `json:"quote"`
	Valid      bool                    `json:"valid"`
	Errors     domain.ValidationErrors `json:"errors,omitempty"`
	FirstError string                  `json:"firstError,omitempty"`
}

type QuoteService struct {
	menuRepo ports.MenuRepository
	renderer ports.QuoteRenderer
	rules    domain.MenuRules
}

func NewQuoteService(menuRepo ports.MenuRepository, renderer ports.QuoteRenderer, rules domain.MenuRules) *QuoteService {
	return &QuoteService{
		menuRepo: menuRepo,
		renderer: renderer,
		rules:    rules,
	}
}

func (s *QuoteService) MenuOptions(ctx context.Context, eventType string) ([]domain.MenuOption, error) {
	return s.menuRepo.ListOptions(ctx, eventType)
}

// CatalogFor loads only the options referenced by the selection.
func (s *QuoteService) CatalogFor(ctx context.Context, sel domain.MenuSelection) (Catalog, error) {
	ids := make([]string, 0, 1+len(sel.SelectedStarters)+len(sel.SelectedSides)+len(sel.SelectedDesserts)+len(sel.SelectedExtras))
	if sel.SelectedMenu != "" {
		ids = append(ids, sel.SelectedMenu)
	}
	ids = append(ids, sel.SelectedStarters...)
	ids = append(ids, sel.SelectedSides...)
	ids = append(ids, sel.SelectedDesserts...)
	ids = append(ids, sel.SelectedExtras...)
	if len(ids) == 0 {
		return Catalog{}, nil
	}

	options, err := s.menuRepo.GetOptions(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load menu options: %w", err)
	}
	return NewCatalog(options), nil
}

func (s *QuoteService) Evaluate(ctx context.Context, sel domain.MenuSelection) (*QuoteResult, Catalog, error) {
	catalog, err := s.CatalogFor(ctx, sel)
	if err != nil {
		return nil, nil, err
	}

	res := &QuoteResult{Quote: PriceSelection(sel, catalog, s.rules)}
	if errs := ValidateSelection(sel, catalog, s.rules); errs != nil {
		res.Errors = errs
		res.FirstError = errs.FirstField()
		return res, catalog, nil
	}
	res.Valid = true
	return res, catalog, nil
}

func (s *QuoteService) RenderPDF(ctx context.Context, sel domain.MenuSelection, customer domain.Customer, eventDate string) ([]byte, error) {
	if s.renderer == nil {
		return nil, domain.ErrNotConfigured
	}
	res, catalog, err := s.Evaluate(ctx, sel)
	if err != nil {
		return nil, err
	}

	menuName := sel.SelectedMenu
	if o, ok := catalog[sel.SelectedMenu]; ok {
		menuName = o.Name
	}
	doc := domain.QuoteDocument{
		Reference: "Q-" + eventDate,
		EventDate: eventDate,
		EventType: sel.EventType,
		MenuName:  menuName,
		Customer:  customer,
		Lines:     QuoteLines(sel, catalog, res.Quote),
		Quote:     res.Quote,
	}
	return s.renderer.Render(doc)
}
