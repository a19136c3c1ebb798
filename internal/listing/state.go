package listing

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/shuv1824/kidsactivities/internal/types"
	"github.com/shuv1824/kidsactivities/internal/utils/catalog"
)

const (
	// All disables a filter.
	All = "all"
	// CityPrefix marks a location filter that matches the activity's city.
	CityPrefix = "city-"
)

// AgeRange is a closed interval of ages.
type AgeRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

func DefaultAgeRange() AgeRange {
	return AgeRange{Min: 0, Max: 16}
}

// FilterState is the user's current selection. It is a value: every With*
// method returns a modified copy, and any filter change moves back to page 1.
type FilterState struct {
	Category  string   `json:"category"`
	Location  string   `json:"location"`
	AgePreset string   `json:"age"`
	AgeRange  AgeRange `json:"age_range"`
	Page      int      `json:"page"`
}

func NewFilterState() FilterState {
	return FilterState{
		Category:  All,
		Location:  All,
		AgePreset: All,
		AgeRange:  DefaultAgeRange(),
		Page:      1,
	}
}

func (s FilterState) WithCategory(category string) FilterState {
	s.Category = category
	s.Page = 1
	return s
}

func (s FilterState) WithLocation(location string) FilterState {
	s.Location = location
	s.Page = 1
	return s
}

func (s FilterState) WithCity(name string) FilterState {
	return s.WithLocation(CityPrefix + name)
}

// WithAgePreset selects a named preset and adopts its interval. Selecting All
// restores the default interval.
func (s FilterState) WithAgePreset(preset types.AgeRangePreset) FilterState {
	s.AgePreset = preset.ID
	s.AgeRange = AgeRange{Min: preset.Min, Max: preset.Max}
	s.Page = 1
	return s
}

func (s FilterState) WithoutAgePreset() FilterState {
	s.AgePreset = All
	s.AgeRange = DefaultAgeRange()
	s.Page = 1
	return s
}

// WithAgeRange sets a custom interval. The preset selection is cleared.
func (s FilterState) WithAgeRange(r AgeRange) FilterState {
	s.AgePreset = All
	s.AgeRange = r
	s.Page = 1
	return s
}

// WithPage does not validate the page; out of range pages render empty.
func (s FilterState) WithPage(page int) FilterState {
	s.Page = page
	return s
}

// CityFilter returns the city name when the location filter targets a city.
func (s FilterState) CityFilter() (string, bool) {
	if !strings.HasPrefix(s.Location, CityPrefix) {
		return "", false
	}
	return strings.TrimPrefix(s.Location, CityPrefix), true
}

// IsDefault reports whether no filter narrows the list.
func (s FilterState) IsDefault() bool {
	return s.Category == All && s.Location == All && s.AgeRange == DefaultAgeRange()
}

// Values encodes the state as query parameters, omitting defaults.
func (s FilterState) Values() url.Values {
	v := url.Values{}
	if s.Category != All && s.Category != "" {
		v.Set("category", s.Category)
	}
	if s.Location != All && s.Location != "" {
		v.Set("location", s.Location)
	}
	if s.AgePreset != All && s.AgePreset != "" {
		v.Set("age", s.AgePreset)
	} else if s.AgeRange != DefaultAgeRange() {
		v.Set("age_min", strconv.Itoa(s.AgeRange.Min))
		v.Set("age_max", strconv.Itoa(s.AgeRange.Max))
	}
	if s.Page != 1 {
		v.Set("page", strconv.Itoa(s.Page))
	}
	return v
}

// Query returns the encoded query string without the leading '?'.
func (s FilterState) Query() string {
	return s.Values().Encode()
}

// ParseQuery builds a state from query parameters. Unknown presets and
// malformed numbers fall back to defaults; parsing never fails.
func ParseQuery(q url.Values, presets []types.AgeRangePreset) FilterState {
	s := NewFilterState()

	if v := strings.TrimSpace(q.Get("category")); v != "" {
		s.Category = v
	}
	if v := strings.TrimSpace(q.Get("location")); v != "" {
		s.Location = v
	}

	if id := q.Get("age"); id != "" && id != All {
		if p, ok := catalog.FindAgeRange(presets, id); ok {
			s = s.WithAgePreset(p)
		}
	}

	custom := s.AgeRange
	if n, err := strconv.Atoi(q.Get("age_min")); err == nil {
		custom.Min = n
	}
	if n, err := strconv.Atoi(q.Get("age_max")); err == nil {
		custom.Max = n
	}
	if custom != s.AgeRange {
		s = s.WithAgeRange(custom)
	}

	if n, err := strconv.Atoi(q.Get("page")); err == nil {
		s.Page = n
	}

	return s
}
