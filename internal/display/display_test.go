package display

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shuv1824/kidsactivities/internal/types"
)

func TestCategoryIconAndColor(t *testing.T) {
	tests := []struct {
		category string
		icon     string
		color    string
	}{
		{category: "Arts & Crafts", icon: "palette", color: "bg-[#F3EE16]"},
		{category: "Sports", icon: "heart-pulse", color: "bg-[#41DBBE]"},
		{category: "Science", icon: "flask-conical", color: "bg-[#BDC939]"},
		{category: "Monitor", icon: "monitor", color: "bg-[#D58C3D]"},
		{category: "sports", icon: DefaultIcon, color: DefaultColor},
		{category: "Dance", icon: DefaultIcon, color: DefaultColor},
		{category: "", icon: DefaultIcon, color: DefaultColor},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			assert.Equal(t, tt.icon, CategoryIcon(tt.category))
			assert.Equal(t, tt.color, CategoryColor(tt.category))
		})
	}
}

func TestCategoryOptions(t *testing.T) {
	opts := CategoryOptions([]types.Category{
		{ID: "music", Name: "Music"},
		{ID: "dance", Name: "Dance"},
	})

	assert.Len(t, opts, 2)
	assert.Equal(t, "music", opts[0].Icon)
	assert.Equal(t, "bg-[#AD59B0]", opts[0].Color)
	assert.Equal(t, DefaultIcon, opts[1].Icon)
}
