package listing

import (
	"strings"

	"github.com/shuv1824/kidsactivities/internal/types"
)

const PageSize = 6

// Result is one page of filtered activities.
type Result struct {
	Items      []types.Activity
	Page       int
	TotalPages int
	Total      int
}

// Apply filters activities by the state and returns the state's page.
func Apply(activities []types.Activity, state FilterState) Result {
	filtered := Filter(activities, state)
	items, totalPages := Paginate(filtered, state.Page)

	return Result{
		Items:      items,
		Page:       state.Page,
		TotalPages: totalPages,
		Total:      len(filtered),
	}
}

// Filter keeps the activities matching every active filter, preserving order.
func Filter(activities []types.Activity, state FilterState) []types.Activity {
	filtered := make([]types.Activity, 0, len(activities))
	for _, a := range activities {
		if matchesCategory(a, state.Category) &&
			matchesLocation(a, state.Location) &&
			overlapsAge(a, state.AgeRange) {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

// Paginate returns the requested 1-based page and the page count. A page
// outside [1, totalPages] yields an empty slice.
func Paginate(items []types.Activity, page int) ([]types.Activity, int) {
	totalPages := (len(items) + PageSize - 1) / PageSize

	if page < 1 || page > totalPages {
		return []types.Activity{}, totalPages
	}

	start := (page - 1) * PageSize

	end := min(start+PageSize, len(items))
	return items[start:end], totalPages
}

func matchesCategory(a types.Activity, category string) bool {
	if category == All {
		return true
	}
	if a.Category == nil || *a.Category == "" {
		return false
	}
	return strings.ToLower(*a.Category) == strings.ToLower(category)
}

// matchesLocation compares cities exactly but locations case-insensitively.
func matchesLocation(a types.Activity, location string) bool {
	if location == All {
		return true
	}
	if city, ok := strings.CutPrefix(location, CityPrefix); ok {
		return a.City != nil && *a.City == city
	}
	if a.Location == nil || *a.Location == "" {
		return false
	}
	return strings.ToLower(*a.Location) == strings.ToLower(location)
}

func overlapsAge(a types.Activity, r AgeRange) bool {
	lo, hi := a.AgeBounds()
	return lo <= r.Max && hi >= r.Min
}
