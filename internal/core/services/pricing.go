package services

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/srgjo27/catering_booking/internal/core/domain"
)

var postalCodePattern = regexp.MustCompile(`^\d{4}$`)

// Catalog indexes menu options by id.
type Catalog map[string]domain.MenuOption

func NewCatalog(options []domain.MenuOption) Catalog {
	c := make(Catalog, len(options))
	for _, o := range options {
		c[o.ID] = o
	}
	return c
}

// ValidateSelection checks every booking-form rule and returns all
// failures at once. A nil result means the selection can be submitted.
func ValidateSelection(sel domain.MenuSelection, catalog Catalog, rules domain.MenuRules) domain.ValidationErrors {
	errs := domain.ValidationErrors{}

	menu, hasMenu := lookupOption(catalog, sel.SelectedMenu, domain.CategoryMenu)
	if !hasMenu {
		errs[domain.FieldMenu] = "Please select a menu package."
	}

	if hasMenu {
		minGuests := menu.EffectiveMinGuests()
		if sel.NumGuests < minGuests {
			errs[domain.FieldGuests] = fmt.Sprintf("A minimum of %d guests is required for this package.", minGuests)
		}
		if rules.RequiresSeason(sel.EventType, menu) && strings.TrimSpace(sel.SelectedSeason) == "" {
			errs[domain.FieldSeason] = "Please select a season for this package."
		}
		if rules.RequiresCourses(menu.ID) {
			if len(sel.SelectedStarters) == 0 {
				errs[domain.FieldStarters] = "Please select a starter."
			}
			if len(sel.SelectedDesserts) == 0 {
				errs[domain.FieldDesserts] = "Please select a dessert."
			}
		}
	} else if sel.NumGuests < domain.DefaultMinGuests {
		errs[domain.FieldGuests] = fmt.Sprintf("A minimum of %d guests is required.", domain.DefaultMinGuests)
	}

	if _, set := errs[domain.FieldStarters]; !set {
		if msg := checkChoices(sel.SelectedStarters, catalog, domain.CategoryStarter, 1, "starter"); msg != "" {
			errs[domain.FieldStarters] = msg
		}
	}
	if len(sel.SelectedSides) == 0 {
		errs[domain.FieldSides] = "Please select at least one side."
	} else if msg := checkChoices(sel.SelectedSides, catalog, domain.CategorySide, domain.MaxSides, "side"); msg != "" {
		errs[domain.FieldSides] = msg
	}
	if _, set := errs[domain.FieldDesserts]; !set {
		if msg := checkChoices(sel.SelectedDesserts, catalog, domain.CategoryDessert, 1, "dessert"); msg != "" {
			errs[domain.FieldDesserts] = msg
		}
	}

	code := strings.TrimSpace(sel.PostalCode)
	switch {
	case code == "":
		errs[domain.FieldPostalCode] = "Please enter the venue postal code."
	case !postalCodePattern.MatchString(code):
		errs[domain.FieldPostalCode] = "Postal code must be 4 digits."
	default:
		if _, ok := domain.TravelFee(code); !ok {
			errs[domain.FieldPostalCode] = "We do not currently cater in this area. Please contact us."
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// PriceSelection computes the quote. An unknown postal code adds no
// travel fee here; validation is what blocks submission.
func PriceSelection(sel domain.MenuSelection, catalog Catalog, rules domain.MenuRules) domain.Quote {
	var q domain.Quote
	if menu, ok := lookupOption(catalog, sel.SelectedMenu, domain.CategoryMenu); ok {
		q.PricePerPerson = menu.Price
	}
	q.Guests = sel.NumGuests
	q.MenuSubtotal = q.PricePerPerson * int64(sel.NumGuests)

	if fee, ok := domain.TravelFee(sel.PostalCode); ok {
		q.TravelFee = fee
		q.TravelKnown = true
		q.ServiceArea, _ = domain.AreaNameByPostalCode(sel.PostalCode)
	}
	q.Total = q.MenuSubtotal + q.TravelFee
	q.DiscountApplied = rules.DiscountMinGuests > 0 && sel.NumGuests >= rules.DiscountMinGuests
	return q
}

// lookupOption finds an option only when it belongs to the given category.
func lookupOption(catalog Catalog, id string, category domain.MenuCategory) (domain.MenuOption, bool) {
	if strings.TrimSpace(id) == "" {
		return domain.MenuOption{}, false
	}
	o, ok := catalog[id]
	if !ok || o.Category != category {
		return domain.MenuOption{}, false
	}
	return o, true
}

// checkChoices returns a message when the ids exceed limit, repeat, or
// are not options of the category.
func checkChoices(ids []string, catalog Catalog, category domain.MenuCategory, limit int, noun string) string {
	if len(ids) > limit {
		if limit == 1 {
			return fmt.Sprintf("Please select only one %s.", noun)
		}
		return fmt.Sprintf("Please select at most %d %ss.", limit, noun)
	}
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			return fmt.Sprintf("Each %s can only be selected once.", noun)
		}
		seen[id] = true
		if _, ok := lookupOption(catalog, id, category); !ok {
			return fmt.Sprintf("Unknown %s selected. Please choose again.", noun)
		}
	}
	return ""
}

// QuoteLines itemises a quote for export.
func QuoteLines(sel domain.MenuSelection, catalog Catalog, q domain.Quote) []domain.QuoteLine {
	name := sel.SelectedMenu
	if menu, ok := lookupOption(catalog, sel.SelectedMenu, domain.CategoryMenu); ok {
		name = menu.Name
	}
	lines := []domain.QuoteLine{
		{Label: fmt.Sprintf("%s (%d guests x R%d)", name, q.Guests, q.PricePerPerson), Amount: q.MenuSubtotal},
	}
	area := q.ServiceArea
	if area == "" {
		area = "unknown area"
	}
	lines = append(lines, domain.QuoteLine{Label: "Travel fee (" + area + ")", Amount: q.TravelFee})
	return lines
}

func optionNames(ids []string, catalog Catalog) string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if o, ok := catalog[id]; ok {
			names = append(names, o.Name)
			continue
		}
		names = append(names, id)
	}
	return strings.Join(names, ", ")
}
