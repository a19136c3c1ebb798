package types

const (
	DefaultMinAge = 0
	DefaultMaxAge = 18
)

// RawActivity is the activity record as the remote service sends it. Fields the
// page filters on are loosely typed upstream, so they are decoded as raw values
// and normalized once.
type RawActivity struct {
	ID          any `json:"id"`
	Title       any `json:"title"`
	Description any `json:"description"`
	ImageURL    any `json:"image_url"`
	Price       any `json:"price"`
	Category    any `json:"category"`
	Location    any `json:"location"`
	City        any `json:"city"`
	MinAge      any `json:"min_age"`
	MaxAge      any `json:"max_age"`
	Latitude    any `json:"latitude"`
	Longitude   any `json:"longitude"`
}

// Activity is a normalized activity. Optional fields are nil when the upstream
// value was missing or had the wrong type.
type Activity struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Location    *string  `json:"location,omitempty"`
	City        *string  `json:"city,omitempty"`
	MinAge      *int     `json:"min_age,omitempty"`
	MaxAge      *int     `json:"max_age,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
}

// AgeBounds returns the activity's age interval with defaults applied.
// A zero bound counts as unset, matching how the upstream data is authored.
func (a Activity) AgeBounds() (int, int) {
	lo, hi := DefaultMinAge, DefaultMaxAge
	if a.MinAge != nil && *a.MinAge != 0 {
		lo = *a.MinAge
	}
	if a.MaxAge != nil && *a.MaxAge != 0 {
		hi = *a.MaxAge
	}
	return lo, hi
}

// HasCoordinates reports whether the activity can be placed on the map.
func (a Activity) HasCoordinates() bool {
	return a.Latitude != nil && a.Longitude != nil
}

func (a Activity) CategoryName() string {
	if a.Category == nil {
		return ""
	}
	return *a.Category
}

func (a Activity) CityName() string {
	if a.City == nil {
		return ""
	}
	return *a.City
}

func (a Activity) LocationName() string {
	if a.Location == nil {
		return ""
	}
	return *a.Location
}

type Category struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description"`
}

type Location struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	City string `json:"city,omitempty" yaml:"city"`
}

type AgeRangePreset struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Min  int    `json:"min" yaml:"min"`
	Max  int    `json:"max" yaml:"max"`
}

type City struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Catalog is the static filter configuration shipped with the site.
type Catalog struct {
	Categories []Category       `json:"categories" yaml:"categories"`
	Locations  []Location       `json:"locations" yaml:"locations"`
	AgeRanges  []AgeRangePreset `json:"age_ranges" yaml:"age_ranges"`
}

// CategoryOption is a catalog category decorated for display.
type CategoryOption struct {
	Category
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

type FiltersResponse struct {
	Categories []CategoryOption `json:"categories"`
	Cities     []City           `json:"cities"`
	Locations  []Location       `json:"locations"`
	AgeRanges  []AgeRangePreset `json:"age_ranges"`
}

// ActivityPage is the JSON shape of one page of filtered activities.
type ActivityPage struct {
	Data       []Activity `json:"data"`
	Page       int        `json:"page"`
	PageSize   int        `json:"page_size"`
	Total      int        `json:"total"`
	TotalPages int        `json:"total_pages"`
}
