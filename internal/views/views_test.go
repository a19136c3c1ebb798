package views

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/shuv1824/kidsactivities/internal/landing"
	"github.com/shuv1824/kidsactivities/internal/listing"
	"github.com/shuv1824/kidsactivities/internal/types"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func strPtr(s string) *string { return &s }
func floatPtr(f float64) *float64 { return &f }

func activities(n int) []types.Activity {
	out := make([]types.Activity, n)
	for i := range out {
		out[i] = types.Activity{ID: fmt.Sprintf("a%d", i+1), Title: fmt.Sprintf("Activity %d", i+1), Category: strPtr("Music")}
	}
	return out
}

func TestLandingPageEmptyState(t *testing.T) {
	p := landing.Page{State: listing.NewFilterState(), Visible: []types.Activity{}}

	html := render(t, LandingPage(p))

	assert.Contains(t, html, "No activities found")
	assert.Contains(t, html, "Try adjusting your filters or browse all activities")
	assert.Contains(t, html, `id="activity-list"`)
	assert.NotContains(t, html, `id="pagination"`)
	assert.NotContains(t, html, "<dialog")
}

func TestLandingPageRendersCards(t *testing.T) {
	visible := activities(3)
	visible[0].Price = floatPtr(1500)
	visible[1].Price = floatPtr(0)
	p := landing.Page{State: listing.NewFilterState(), Visible: visible, TotalPages: 1}

	html := render(t, LandingPage(p))

	assert.Equal(t, 3, strings.Count(html, "activity-card"))
	assert.Contains(t, html, "₱1,500")
	assert.Contains(t, html, "Free")
	assert.Contains(t, html, "Ages 0-18")
	assert.NotContains(t, html, "No activities found")
}

func TestCategoryFilterLinksToList(t *testing.T) {
	cats := []types.CategoryOption{{Category: types.Category{ID: "Music", Name: "Music"}, Icon: "music", Color: "bg-[#F9A8D4]"}}
	state := listing.NewFilterState().WithPage(3)

	html := render(t, CategoryFilter(cats, state))

	assert.Contains(t, html, `href="/?category=Music#activity-list"`)
	assert.Contains(t, html, `href="/#activity-list"`)
	assert.Contains(t, html, `data-icon="lucide:music"`)
}

func TestCityFilterMarksSelection(t *testing.T) {
	cities := []types.City{{ID: "manila", Name: "Manila"}}
	state := listing.NewFilterState().WithCity("Manila")

	html := render(t, CityFilterCarousel("Cities in the Philippines", cities, state))

	assert.Contains(t, html, "Cities in the Philippines")
	assert.Contains(t, html, `href="/?location=city-Manila#activity-list"`)
	assert.Contains(t, html, `aria-current="true"`)
}

func TestPagination(t *testing.T) {
	state := listing.NewFilterState().WithCategory("Music").WithPage(2)

	html := render(t, Pagination(state, 3))

	assert.Contains(t, html, `href="/?category=Music#activity-list"`)
	assert.Contains(t, html, `href="/?category=Music&amp;page=3#activity-list"`)
	assert.Contains(t, html, "Previous")
	assert.Contains(t, html, "Next")
	assert.Equal(t, 1, strings.Count(html, `aria-current="page"`))
}

func TestPaginationSinglePage(t *testing.T) {
	assert.Nil(t, Pagination(listing.NewFilterState(), 1))
	assert.Nil(t, Pagination(listing.NewFilterState(), 0))
}

func TestMapDialog(t *testing.T) {
	marker := types.Activity{ID: "m1", Title: "Park Day", Latitude: floatPtr(14.55), Longitude: floatPtr(121.05)}
	p := landing.Page{State: listing.NewFilterState().WithCategory("Outdoors"), MapOpen: true, MapMarkers: []types.Activity{marker}}

	html := render(t, MapDialog(p))

	assert.Contains(t, html, "<dialog")
	assert.Contains(t, html, `data-lat="14.55"`)
	assert.Contains(t, html, `data-lng="121.05"`)
	assert.Contains(t, html, `data-title="Park Day"`)
	assert.Contains(t, html, `href="/?category=Outdoors"`)
}

func TestMapDialogClosed(t *testing.T) {
	assert.Nil(t, MapDialog(landing.Page{}))
}

func TestMapButtonKeepsState(t *testing.T) {
	html := render(t, MapButton(listing.NewFilterState().WithCategory("Sports")))

	assert.Contains(t, html, `href="/?category=Sports&amp;map=open"`)
	assert.Contains(t, html, "Show Map")
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "", formatPrice(types.Activity{}))
	assert.Equal(t, "Free", formatPrice(types.Activity{Price: floatPtr(0)}))
	assert.Equal(t, "₱250", formatPrice(types.Activity{Price: floatPtr(250)}))
}

func TestCategoryFilterSelectionIgnoresCase(t *testing.T) {
	cats := []types.CategoryOption{{Category: types.Category{ID: "Music", Name: "Music"}, Icon: "music"}}

	html := render(t, CategoryFilter(cats, listing.NewFilterState().WithCategory("music")))

	assert.Equal(t, 1, strings.Count(html, `aria-current="true"`))
	assert.Contains(t, html, `href="/?category=Music#activity-list" class="`)
	assert.Contains(t, html, `ring-kids-orange" aria-current="true"`)
}

func TestClearFiltersLink(t *testing.T) {
	filtered := render(t, ActivityGrid(landing.Page{State: listing.NewFilterState().WithCategory("Music")}))
	assert.Contains(t, filtered, `id="clear-filters"`)

	unfiltered := render(t, ActivityGrid(landing.Page{State: listing.NewFilterState()}))
	assert.NotContains(t, unfiltered, `id="clear-filters"`)
}
