package views

import (
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/shuv1824/kidsactivities/internal/listing"
	"github.com/shuv1824/kidsactivities/internal/types"
)

func Hero(featured []types.Activity) g.Node {
	return Section(
		Class("mb-10 relative"),
		Div(
			Class("flex flex-col lg:flex-row items-center lg:gap-8"),
			Div(
				Class("lg:w-1/3 text-center lg:text-left flex flex-col justify-center"),
				H1(
					Class("text-3xl md:text-4xl lg:text-5xl font-bold mb-3 text-gray-800"),
					g.Text("The Largest Kids Activity Platform"),
				),
				H2(
					Class("text-3xl md:text-4xl lg:text-5xl font-bold mb-6 text-gray-800"),
					g.Text("in the "),
					Span(Class("text-kids-orange"), g.Text("Philippines")),
					g.Text("."),
				),
				P(
					Class("text-2xl font-bold text-gray-800 py-10"),
					g.Text("More than 1000+ Activities around the Philippines all in one place!"),
				),
				A(
					Href("/activities#"+ListAnchor),
					Class("inline-flex items-center gap-2 rounded-full bg-kids-orange text-white py-2 px-6 text-lg font-medium"),
					g.Text("Explore Activities"),
					icon("arrow-right", "size-5"),
				),
			),
			Div(
				Class("lg:w-2/3 w-full"),
				FeaturedCarousel(featured),
			),
		),
	)
}

// FeaturedCarousel is a horizontally scrolling strip of featured cards.
func FeaturedCarousel(activities []types.Activity) g.Node {
	if len(activities) == 0 {
		return Div(ID("featured"), Class("hidden"))
	}
	return Div(
		ID("featured"),
		Class("flex gap-4 overflow-x-auto snap-x snap-mandatory pb-4"),
		g.Map(activities, func(a types.Activity) g.Node {
			return Div(
				Class("snap-start shrink-0 w-72"),
				ActivityCard(a),
			)
		}),
	)
}

func PopularStrip(activities []types.Activity) g.Node {
	if len(activities) == 0 {
		return nil
	}
	return Section(
		Class("mb-10"),
		H2(Class("text-2xl font-bold text-gray-800 mb-4"), g.Text("Popular Right Now")),
		Div(
			Class("grid grid-cols-2 lg:grid-cols-4 gap-4"),
			g.Map(activities, func(a types.Activity) g.Node {
				return Div(
					Class("rounded-xl bg-white shadow p-4"),
					P(Class("font-semibold text-gray-800"), g.Text(a.Title)),
					P(Class("text-sm text-gray-500"), g.Text(a.LocationName())),
				)
			}),
		),
	)
}

// CategoryFilter renders one chip per category plus "All".
func CategoryFilter(categories []types.CategoryOption, state listing.FilterState) g.Node {
	return Section(
		ID("category-filter"),
		Class("mb-8"),
		H2(Class("text-xl font-bold text-gray-800 mb-4"), g.Text("Categories")),
		Div(
			Class("flex gap-3 overflow-x-auto pb-2"),
			chip(listURL(state.WithCategory(listing.All)), state.Category == listing.All, "bg-gray-200", "layout-grid", "All"),
			g.Map(categories, func(c types.CategoryOption) g.Node {
				return chip(listURL(state.WithCategory(c.Name)), strings.EqualFold(state.Category, c.Name), c.Color, c.Icon, c.Name)
			}),
		),
	)
}

func CityFilterCarousel(title string, cities []types.City, state listing.FilterState) g.Node {
	return Div(
		ID("city-filter"),
		Class("mb-6"),
		H3(Class("text-lg font-semibold text-gray-800 mb-3"), g.Text(title)),
		Div(
			Class("flex gap-3 overflow-x-auto pb-2"),
			chip(listURL(state.WithLocation(listing.All)), state.Location == listing.All, "bg-gray-200", "map-pin", "All Cities"),
			g.Map(cities, func(c types.City) g.Node {
				name, ok := state.CityFilter()
				selected := ok && name == c.Name
				return chip(listURL(state.WithCity(c.Name)), selected, "bg-white", "map-pin", c.Name)
			}),
		),
	)
}

// AgeFilterCarousel renders the age presets and a custom range form.
func AgeFilterCarousel(title string, presets []types.AgeRangePreset, state listing.FilterState) g.Node {
	return Div(
		ID("age-filter"),
		Class("mb-6"),
		H3(Class("text-lg font-semibold text-gray-800 mb-3"), g.Text(title)),
		Div(
			Class("flex gap-3 overflow-x-auto pb-2"),
			chip(listURL(state.WithoutAgePreset()), state.AgePreset == listing.All, "bg-gray-200", "baby", "All Ages"),
			g.Map(presets, func(p types.AgeRangePreset) g.Node {
				return chip(listURL(state.WithAgePreset(p)), state.AgePreset == p.ID, "bg-white", "baby", p.Name)
			}),
		),
		ageRangeForm(state),
	)
}

func ageRangeForm(state listing.FilterState) g.Node {
	return g.El("form",
		g.Attr("method", "get"),
		g.Attr("action", "/#"+ListAnchor),
		Class("flex items-center gap-3 mt-3 text-sm text-gray-700"),
		g.If(state.Category != listing.All, Input(Type("hidden"), Name("category"), Value(state.Category))),
		g.If(state.Location != listing.All, Input(Type("hidden"), Name("location"), Value(state.Location))),
		Span(g.Text("Ages")),
		numberInput("age_min", state.AgeRange.Min),
		Span(g.Text("to")),
		numberInput("age_max", state.AgeRange.Max),
		Button(Type("submit"), Class("rounded-full bg-kids-orange text-white px-4 py-1"), g.Text("Apply")),
	)
}

func numberInput(name string, value int) g.Node {
	return Input(
		Type("number"),
		Name(name),
		Value(strconv.Itoa(value)),
		g.Attr("min", "0"),
		g.Attr("max", "18"),
		Class("w-16 rounded border px-2 py-1"),
	)
}

func chip(href string, selected bool, color, iconName, label string) g.Node {
	class := "shrink-0 inline-flex items-center gap-2 rounded-full px-4 py-2 text-sm font-medium " + color
	if selected {
		class += " ring-2 ring-kids-orange"
	}
	return A(
		Href(href),
		Class(class),
		g.If(selected, Aria("current", "true")),
		icon(iconName, "size-5"),
		g.Text(label),
	)
}
