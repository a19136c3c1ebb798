package activity

import (
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/shuv1824/kidsactivities/internal/types"
)

// Normalize converts an upstream record into a typed Activity. Values with
// the wrong type are dropped rather than rejected.
func Normalize(raw types.RawActivity) types.Activity {
	a := types.Activity{
		ID:          idValue(raw.ID),
		Title:       plainString(raw.Title),
		Description: plainString(raw.Description),
		ImageURL:    plainString(raw.ImageURL),
		Price:       floatValue(raw.Price),
		Category:    stringValue(raw.Category),
		Location:    stringValue(raw.Location),
		City:        stringValue(raw.City),
		MinAge:      intValue(raw.MinAge),
		MaxAge:      intValue(raw.MaxAge),
		Latitude:    floatValue(raw.Latitude),
		Longitude:   floatValue(raw.Longitude),
	}
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return a
}

func NormalizeAll(raws []types.RawActivity) []types.Activity {
	out := make([]types.Activity, len(raws))
	for i, r := range raws {
		out[i] = Normalize(r)
	}
	return out
}

func idValue(v any) string {
	switch id := v.(type) {
	case string:
		return strings.TrimSpace(id)
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	}
	return ""
}

func plainString(v any) string {
	s, _ := v.(string)
	return s
}

func stringValue(v any) *string {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	return &s
}

func floatValue(v any) *float64 {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return nil
		}
		f = parsed
	default:
		return nil
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

func intValue(v any) *int {
	f := floatValue(v)
	if f == nil {
		return nil
	}
	n := int(math.Trunc(*f))
	return &n
}
