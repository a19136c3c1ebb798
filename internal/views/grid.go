package views

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/shuv1824/kidsactivities/internal/display"
	"github.com/shuv1824/kidsactivities/internal/landing"
	"github.com/shuv1824/kidsactivities/internal/listing"
	"github.com/shuv1824/kidsactivities/internal/types"
)

func ActivityCard(a types.Activity) g.Node {
	category := a.CategoryName()
	return Div(
		Class("activity-card rounded-2xl bg-white shadow overflow-hidden flex flex-col"),
		g.Attr("data-id", a.ID),
		g.If(a.ImageURL != "", Img(Src(a.ImageURL), Alt(a.Title), Class("h-40 w-full object-cover"))),
		g.If(a.ImageURL == "", Div(Class("h-40 w-full "+display.CategoryColor(category)))),
		Div(
			Class("p-4 flex flex-col gap-2"),
			g.If(category != "", Span(
				Class("inline-flex items-center gap-1 text-xs font-medium text-gray-600"),
				icon(display.CategoryIcon(category), "size-4"),
				g.Text(category),
			)),
			H3(Class("text-lg font-semibold text-gray-800"), g.Text(a.Title)),
			g.If(a.Description != "", P(Class("text-sm text-gray-600 line-clamp-2"), g.Text(a.Description))),
			Div(
				Class("flex items-center justify-between text-sm text-gray-500"),
				Span(g.Text(formatAges(a))),
				g.If(a.LocationName() != "", Span(icon("map-pin", "size-4"), g.Text(a.LocationName()))),
			),
			g.If(a.Price != nil, Span(Class("font-bold text-kids-orange"), g.Text(formatPrice(a)))),
		),
	)
}

// ActivityGrid is the filtered, paginated list. Every filter link targets its
// anchor so navigation keeps the list in view.
func ActivityGrid(p landing.Page) g.Node {
	return Section(
		ID(ListAnchor),
		Class("mb-10"),
		Div(
			Class("flex items-center justify-between mb-6"),
			H2(Class("text-2xl font-bold text-gray-800"), g.Text("Activities Just For You")),
			Div(
				Class("flex items-center gap-3"),
				g.If(!p.State.IsDefault(), A(
					ID("clear-filters"),
					Href(listURL(listing.NewFilterState())),
					Class("text-sm text-gray-500 underline"),
					g.Text("Clear filters"),
				)),
				MapButton(p.State),
			),
		),
		g.If(len(p.Visible) == 0, emptyState()),
		g.If(len(p.Visible) > 0, Div(
			Class("grid grid-cols-1 sm:grid-cols-2 lg:grid-cols-3 gap-6"),
			g.Map(p.Visible, ActivityCard),
		)),
		Pagination(p.State, p.TotalPages),
		Div(
			Class("text-center mt-8"),
			A(
				Href(listURL(listing.NewFilterState())),
				Class("inline-block rounded-full border border-kids-orange text-kids-orange px-6 py-2 font-medium"),
				g.Text("See All Activities"),
			),
		),
	)
}

func emptyState() g.Node {
	return Div(
		ID("empty-state"),
		Class("text-center py-16"),
		icon("search-x", "size-12 text-gray-400"),
		H3(Class("text-xl font-semibold text-gray-700 mt-4"), g.Text("No activities found")),
		P(Class("text-gray-500 mt-2"), g.Text("Try adjusting your filters or browse all activities")),
	)
}

// Pagination renders nothing for a single page.
func Pagination(state listing.FilterState, totalPages int) g.Node {
	if totalPages <= 1 {
		return nil
	}
	links := make([]g.Node, 0, totalPages+2)
	if state.Page > 1 && state.Page <= totalPages {
		links = append(links, pageLink(state.WithPage(state.Page-1), "Previous", false))
	}
	for n := 1; n <= totalPages; n++ {
		links = append(links, pageLink(state.WithPage(n), strconv.Itoa(n), n == state.Page))
	}
	if state.Page >= 1 && state.Page < totalPages {
		links = append(links, pageLink(state.WithPage(state.Page+1), "Next", false))
	}
	return Nav(
		ID("pagination"),
		Aria("label", "Pagination"),
		Class("flex justify-center gap-2 mt-8"),
		g.Group(links),
	)
}

func pageLink(s listing.FilterState, label string, current bool) g.Node {
	class := "rounded-full px-4 py-2 text-sm "
	if current {
		class += "bg-kids-orange text-white"
	} else {
		class += "bg-white text-gray-700 shadow"
	}
	return A(Href(listURL(s)), Class(class), g.If(current, Aria("current", "page")), g.Text(label))
}

func MapButton(state listing.FilterState) g.Node {
	return A(
		Href(mapURL(state)),
		Class("inline-flex items-center gap-2 rounded-full bg-white shadow px-4 py-2 text-sm font-medium text-gray-700"),
		icon("map", "size-5"),
		g.Text("Show Map"),
	)
}

// MapDialog lists every activity with coordinates. Markers carry their
// position as data attributes for the client-side map script.
func MapDialog(p landing.Page) g.Node {
	if !p.MapOpen {
		return nil
	}
	return g.El("dialog",
		ID("map-dialog"),
		g.Attr("open"),
		Class("fixed inset-0 z-50 m-auto w-full max-w-4xl rounded-2xl bg-white p-6 shadow-xl"),
		Div(
			Class("flex items-center justify-between mb-4"),
			H2(Class("text-xl font-bold text-gray-800"), g.Text("Activities Map")),
			A(Href(pageURL(p.State)), Class("text-gray-500"), Aria("label", "Close map"), icon("x", "size-6")),
		),
		g.If(len(p.MapMarkers) == 0, P(Class("text-gray-500"), g.Text("No activities with a location yet."))),
		Ul(
			ID("map-markers"),
			Class("grid grid-cols-1 md:grid-cols-2 gap-3 max-h-96 overflow-y-auto"),
			g.Map(p.MapMarkers, func(a types.Activity) g.Node {
				return Li(
					Class("map-marker rounded-lg border p-3"),
					g.Attr("data-lat", strconv.FormatFloat(*a.Latitude, 'f', -1, 64)),
					g.Attr("data-lng", strconv.FormatFloat(*a.Longitude, 'f', -1, 64)),
					g.Attr("data-title", a.Title),
					Span(Class("font-medium text-gray-800"), g.Text(a.Title)),
				)
			}),
		),
	)
}

// LandingPage composes the full landing page.
func LandingPage(p landing.Page) g.Node {
	return Layout(
		PageConfig{
			Title:       "KidsActivities | Discover Kids Activities in the Philippines",
			Description: "Find classes, camps and activities for kids across the Philippines.",
		},
		Navbar(),
		Main(
			Class("container mx-auto px-4 py-8"),
			Hero(p.Featured),
			CategoryFilter(p.Categories, p.State),
			Section(
				Class("mb-8"),
				CityFilterCarousel("Cities in the Philippines", p.Cities, p.State),
				AgeFilterCarousel("Age Range", p.AgeRanges, p.State),
			),
			ActivityGrid(p),
			PopularStrip(p.Popular),
		),
		MapDialog(p),
		PageFooter(),
	)
}
