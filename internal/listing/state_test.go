package listing

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shuv1824/kidsactivities/internal/types"
)

var presets = []types.AgeRangePreset{
	{ID: "kids", Name: "Kids", Min: 6, Max: 9},
	{ID: "teens", Name: "Teens", Min: 13, Max: 16},
}

func TestFilterChangesResetPage(t *testing.T) {
	base := NewFilterState().WithPage(4)

	changes := map[string]FilterState{
		"category":   base.WithCategory("Music"),
		"location":   base.WithLocation("bgc"),
		"city":       base.WithCity("Manila"),
		"age preset": base.WithAgePreset(presets[0]),
		"no preset":  base.WithoutAgePreset(),
		"age range":  base.WithAgeRange(AgeRange{Min: 2, Max: 5}),
	}

	for name, s := range changes {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, 1, s.Page)
		})
	}

	assert.Equal(t, 4, base.Page, "original state must not change")
}

func TestWithPageKeepsFilters(t *testing.T) {
	s := NewFilterState().WithCategory("Music").WithPage(7)

	assert.Equal(t, 7, s.Page)
	assert.Equal(t, "Music", s.Category)
}

func TestWithAgePreset(t *testing.T) {
	s := NewFilterState().WithAgePreset(presets[1])
	assert.Equal(t, "teens", s.AgePreset)
	assert.Equal(t, AgeRange{Min: 13, Max: 16}, s.AgeRange)

	s = s.WithoutAgePreset()
	assert.Equal(t, All, s.AgePreset)
	assert.Equal(t, DefaultAgeRange(), s.AgeRange)
}

func TestCityFilter(t *testing.T) {
	city, ok := NewFilterState().WithCity("Quezon City").CityFilter()
	assert.True(t, ok)
	assert.Equal(t, "Quezon City", city)

	_, ok = NewFilterState().WithLocation("bgc").CityFilter()
	assert.False(t, ok)
}

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected FilterState
	}{
		{
			name:     "empty query is the default state",
			query:    "",
			expected: NewFilterState(),
		},
		{
			name:  "all parameters",
			query: "category=Music&location=city-Manila&age=kids&page=2",
			expected: FilterState{
				Category:  "Music",
				Location:  "city-Manila",
				AgePreset: "kids",
				AgeRange:  AgeRange{Min: 6, Max: 9},
				Page:      2,
			},
		},
		{
			name:  "custom range overrides preset",
			query: "age=kids&age_max=12",
			expected: FilterState{
				Category:  All,
				Location:  All,
				AgePreset: All,
				AgeRange:  AgeRange{Min: 6, Max: 12},
				Page:      1,
			},
		},
		{
			name:     "unknown preset and bad numbers fall back",
			query:    "age=adults&age_min=x&page=abc",
			expected: NewFilterState(),
		},
		{
			name:     "page is not validated",
			query:    "page=-3",
			expected: NewFilterState().WithPage(-3),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, ParseQuery(q, presets))
		})
	}
}

func TestQueryRoundTrip(t *testing.T) {
	states := []FilterState{
		NewFilterState(),
		NewFilterState().WithCategory("Arts & Crafts").WithPage(2),
		NewFilterState().WithCity("Cebu City"),
		NewFilterState().WithAgePreset(presets[0]),
		NewFilterState().WithAgeRange(AgeRange{Min: 3, Max: 7}).WithLocation("bgc"),
	}

	for _, s := range states {
		q, err := url.ParseQuery(s.Query())
		assert.NoError(t, err)
		assert.Equal(t, s, ParseQuery(q, presets))
	}
}

func TestValuesOmitDefaults(t *testing.T) {
	assert.Empty(t, NewFilterState().Query())
	assert.Equal(t, "category=Music", NewFilterState().WithCategory("Music").Query())
}
