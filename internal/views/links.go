package views

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/shuv1824/kidsactivities/internal/listing"
	"github.com/shuv1824/kidsactivities/internal/types"
)

// ListAnchor is the id of the activity list section.
const ListAnchor = "activity-list"

var printer = message.NewPrinter(language.English)

func pageURL(s listing.FilterState) string {
	if q := s.Query(); q != "" {
		return "/?" + q
	}
	return "/"
}

// listURL links to a state and scrolls the activity list into view.
func listURL(s listing.FilterState) string {
	return pageURL(s) + "#" + ListAnchor
}

func mapURL(s listing.FilterState) string {
	v := s.Values()
	v.Set("map", "open")
	return "/?" + v.Encode()
}

func formatPrice(a types.Activity) string {
	if a.Price == nil {
		return ""
	}
	if *a.Price == 0 {
		return "Free"
	}
	return printer.Sprintf("₱%.0f", *a.Price)
}

func formatAges(a types.Activity) string {
	lo, hi := a.AgeBounds()
	return fmt.Sprintf("Ages %d-%d", lo, hi)
}
