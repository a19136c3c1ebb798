package views

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/shuv1824/kidsactivities/internal/listing"
)

type PageConfig struct {
	Title       string
	Description string
}

func Layout(cfg PageConfig, children ...g.Node) g.Node {
	return Doctype(
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				Meta(Name("description"), Content(cfg.Description)),
				TitleEl(g.Text(cfg.Title)),
				Script(Src("https://cdn.tailwindcss.com")),
				Script(Src("https://code.iconify.design/3/3.1.1/iconify.min.js")),
				g.El("style", g.Raw("html{scroll-behavior:smooth}.text-kids-orange{color:#F97316}.bg-kids-orange{background-color:#F97316}")),
			),
			Body(
				Class("min-h-screen bg-gray-50"),
				g.Group(children),
			),
		),
	)
}

func Navbar() g.Node {
	return Nav(
		Class("bg-white shadow-sm"),
		Div(
			Class("container mx-auto px-4 py-4 flex items-center justify-between"),
			A(Href("/"), Class("text-2xl font-bold text-kids-orange"), g.Text("KidsActivities")),
			Div(
				Class("flex gap-6 text-gray-700"),
				A(Href("/activities#activity-list"), g.Text("Activities")),
				A(Href(mapURL(listing.NewFilterState())), g.Text("Map")),
			),
		),
	)
}

func PageFooter() g.Node {
	return Footer(
		Class("bg-white border-t mt-16"),
		Div(
			Class("container mx-auto px-4 py-8 text-center text-sm text-gray-500"),
			P(g.Text("Discover classes, camps and play for kids across the Philippines.")),
		),
	)
}

func icon(name, class string) g.Node {
	return Span(Class("iconify "+class), g.Attr("data-icon", "lucide:"+name))
}
