package domain

type MenuCategory string

const (
	CategoryMenu    MenuCategory = "menu"
	CategoryStarter MenuCategory = "starter"
	CategorySide    MenuCategory = "side"
	CategoryDessert MenuCategory = "dessert"
	CategoryExtra   MenuCategory = "extra"
)

const (
	DefaultMinGuests = 30
	MaxSides         = 2
)

type MenuOption struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Price     int64        `json:"price"`
	Category  MenuCategory `json:"category"`
	EventType string       `json:"eventType"`
	MinGuests int          `json:"minGuests,omitempty"`
	Seasonal  bool         `json:"seasonal"`
}

func (o MenuOption) EffectiveMinGuests() int {
	if o.MinGuests <= 0 {
		return DefaultMinGuests
	}
	return o.MinGuests
}

// MenuSelection is the booking-session state of the menu configurator.
// Transitions return a new value and never mutate the receiver.
type MenuSelection struct {
	EventType        string   `json:"eventType"`
	SelectedMenu     string   `json:"selectedMenu"`
	NumGuests        int      `json:"numGuests"`
	SelectedSeason   string   `json:"selectedSeason,omitempty"`
	SelectedStarters []string `json:"selectedStarters"`
	SelectedSides    []string `json:"selectedSides"`
	SelectedDesserts []string `json:"selectedDesserts"`
	SelectedExtras   []string `json:"selectedExtras"`
	ExtraSaladType   string   `json:"extraSaladType,omitempty"`
	IncludeCutlery   bool     `json:"includeCutlery"`
	PostalCode       string   `json:"postalCode"`
}

func (s MenuSelection) clone() MenuSelection {
	s.SelectedStarters = append([]string(nil), s.SelectedStarters...)
	s.SelectedSides = append([]string(nil), s.SelectedSides...)
	s.SelectedDesserts = append([]string(nil), s.SelectedDesserts...)
	s.SelectedExtras = append([]string(nil), s.SelectedExtras...)
	return s
}

// WithMenu switches package. Course choices are cleared since they belong
// to the previous package.
func (s MenuSelection) WithMenu(id string) MenuSelection {
	next := s.clone()
	if next.SelectedMenu != id {
		next.SelectedSeason = ""
		next.SelectedStarters = nil
		next.SelectedDesserts = nil
	}
	next.SelectedMenu = id
	return next
}

func (s MenuSelection) WithGuests(n int) MenuSelection {
	next := s.clone()
	if n < 0 {
		n = 0
	}
	next.NumGuests = n
	return next
}

func (s MenuSelection) WithSeason(season string) MenuSelection {
	next := s.clone()
	next.SelectedSeason = season
	return next
}

func (s MenuSelection) WithPostalCode(code string) MenuSelection {
	next := s.clone()
	next.PostalCode = code
	return next
}

// SelectStarter replaces the current starter.
func (s MenuSelection) SelectStarter(id string) MenuSelection {
	next := s.clone()
	next.SelectedStarters = []string{id}
	return next
}

// SelectDessert replaces the current dessert.
func (s MenuSelection) SelectDessert(id string) MenuSelection {
	next := s.clone()
	next.SelectedDesserts = []string{id}
	return next
}

// ToggleSide adds or removes a side. Adding past MaxSides is a no-op.
func (s MenuSelection) ToggleSide(id string) MenuSelection {
	next := s.clone()
	if i := indexOf(next.SelectedSides, id); i >= 0 {
		next.SelectedSides = append(next.SelectedSides[:i], next.SelectedSides[i+1:]...)
		return next
	}
	if len(next.SelectedSides) >= MaxSides {
		return next
	}
	next.SelectedSides = append(next.SelectedSides, id)
	return next
}

func (s MenuSelection) ToggleExtra(id string) MenuSelection {
	next := s.clone()
	if i := indexOf(next.SelectedExtras, id); i >= 0 {
		next.SelectedExtras = append(next.SelectedExtras[:i], next.SelectedExtras[i+1:]...)
		return next
	}
	next.SelectedExtras = append(next.SelectedExtras, id)
	return next
}

func indexOf(list []string, v string) int {
	for i, x := range list {
		if x == v {
			return i
		}
	}
	return -1
}

// MenuRules names the packages that need extra course choices.
type MenuRules struct {
	SeasonalEventTypes map[string]bool
	SeasonalMenus      map[string]bool
	CourseMenus        map[string]bool
	DiscountMinGuests  int
}

var DefaultMenuRules = MenuRules{
	SeasonalEventTypes: map[string]bool{"wedding": true},
	SeasonalMenus:      map[string]bool{"spit-braai-premium": true},
	CourseMenus: map[string]bool{
		"three-course-plated": true,
		"wedding-premium":     true,
		"gourmet-spit-braai":  true,
	},
	DiscountMinGuests: 100,
}

func (r MenuRules) RequiresSeason(eventType string, opt MenuOption) bool {
	return r.SeasonalEventTypes[eventType] || r.SeasonalMenus[opt.ID] || opt.Seasonal
}

func (r MenuRules) RequiresCourses(menuID string) bool {
	return r.CourseMenus[menuID]
}
