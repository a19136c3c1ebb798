package display

import "github.com/shuv1824/kidsactivities/internal/types"

const (
	DefaultIcon  = "users"
	DefaultColor = "bg-gray-300"
)

// icons maps category names to lucide icon names.
var icons = map[string]string{
	"Arts & Crafts": "palette",
	"Sports":        "heart-pulse",
	"Outdoors":      "mountain",
	"Education":     "book-open",
	"Gaming":        "gamepad-2",
	"Entertainment": "popcorn",
	"Monitor":       "monitor",
	"Music":         "music",
	"Cooking":       "utensils",
	"Science":       "flask-conical",
}

var colors = map[string]string{
	"Arts & Crafts": "bg-[#F3EE16]",
	"Sports":        "bg-[#41DBBE]",
	"Outdoors":      "bg-[#26902A]",
	"Education":     "bg-[#425E9C]",
	"Music":         "bg-[#AD59B0]",
	"Cooking":       "bg-[#F06F5D]",
	"Science":       "bg-[#BDC939]",
	"Gaming":        "bg-[#FF4B4B]",
	"Entertainment": "bg-[#F38B9A]",
	"Monitor":       "bg-[#D58C3D]",
}

// CategoryIcon returns the icon for an exact category name, or DefaultIcon.
func CategoryIcon(category string) string {
	if icon, ok := icons[category]; ok {
		return icon
	}
	return DefaultIcon
}

// CategoryColor returns the background color class for an exact category
// name, or DefaultColor.
func CategoryColor(category string) string {
	if color, ok := colors[category]; ok {
		return color
	}
	return DefaultColor
}

func CategoryOptions(categories []types.Category) []types.CategoryOption {
	out := make([]types.CategoryOption, len(categories))
	for i, c := range categories {
		out[i] = types.CategoryOption{
			Category: c,
			Icon:     CategoryIcon(c.Name),
			Color:    CategoryColor(c.Name),
		}
	}
	return out
}
