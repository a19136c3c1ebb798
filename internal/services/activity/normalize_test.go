package activity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shuv1824/kidsactivities/internal/types"
)

func decodeRaw(t *testing.T, doc string) types.RawActivity {
	t.Helper()
	var raw types.RawActivity
	require.NoError(t, json.Unmarshal([]byte(doc), &raw))
	return raw
}

func TestNormalize(t *testing.T) {
	t.Run("well formed record", func(t *testing.T) {
		a := Normalize(decodeRaw(t, `{
			"id": "act-1",
			"title": "Junior Coding Camp",
			"price": 1500,
			"category": "Science",
			"location": "BGC",
			"city": "Taguig",
			"min_age": 7,
			"max_age": 12,
			"latitude": 14.55,
			"longitude": 121.05
		}`))

		assert.Equal(t, "act-1", a.ID)
		assert.Equal(t, "Junior Coding Camp", a.Title)
		require.NotNil(t, a.Price)
		assert.Equal(t, 1500.0, *a.Price)
		assert.Equal(t, "Science", a.CategoryName())
		assert.Equal(t, "BGC", a.LocationName())
		assert.Equal(t, "Taguig", a.CityName())
		lo, hi := a.AgeBounds()
		assert.Equal(t, 7, lo)
		assert.Equal(t, 12, hi)
		assert.True(t, a.HasCoordinates())
	})

	t.Run("loosely typed fields are dropped", func(t *testing.T) {
		a := Normalize(decodeRaw(t, `{
			"id": 42,
			"title": ["not", "a", "string"],
			"category": 7,
			"location": {"name": "BGC"},
			"city": null,
			"min_age": "five",
			"max_age": true,
			"latitude": "14.5"
		}`))

		assert.Equal(t, "42", a.ID)
		assert.Empty(t, a.Title)
		assert.Nil(t, a.Category)
		assert.Nil(t, a.Location)
		assert.Nil(t, a.City)
		assert.Nil(t, a.MinAge)
		assert.Nil(t, a.MaxAge)
		assert.False(t, a.HasCoordinates())

		lo, hi := a.AgeBounds()
		assert.Equal(t, types.DefaultMinAge, lo)
		assert.Equal(t, types.DefaultMaxAge, hi)
	})

	t.Run("numeric strings and fractions", func(t *testing.T) {
		a := Normalize(decodeRaw(t, `{"id":"x","min_age":"4","max_age":10.9}`))

		require.NotNil(t, a.MinAge)
		require.NotNil(t, a.MaxAge)
		assert.Equal(t, 4, *a.MinAge)
		assert.Equal(t, 10, *a.MaxAge)
	})

	t.Run("missing id gets a generated one", func(t *testing.T) {
		a := Normalize(decodeRaw(t, `{"title":"No id"}`))
		b := Normalize(decodeRaw(t, `{"title":"No id"}`))

		assert.NotEmpty(t, a.ID)
		assert.NotEqual(t, a.ID, b.ID)
	})
}
