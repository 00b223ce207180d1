package gemcore

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaFor(t *testing.T) {
	type Address struct {
		City string `json:"city" required:"true"`
		Zip  string `json:"zip"`
	}

	type Person struct {
		Name    string            `json:"name" desc:"Full name" required:"true"`
		Age     int               `json:"age" desc:"Age in years"`
		Score   *float64          `json:"score"`
		Diet    string            `json:"diet" enum:"omnivore,vegetarian,vegan"`
		Tags    []string          `json:"tags"`
		Home    Address           `json:"home"`
		Extra   map[string]string `json:"extra"`
		ignored string
		Skipped string `json:"-"`
	}

	raw, err := SchemaFor[Person]()
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal(raw, &schema))

	assert.Equal(t, "object", schema["type"])
	assert.ElementsMatch(t, []any{"name"}, schema["required"])

	props := schema["properties"].(map[string]any)
	assert.NotContains(t, props, "Skipped")
	assert.NotContains(t, props, "ignored")

	name := props["name"].(map[string]any)
	assert.Equal(t, "string", name["type"])
	assert.Equal(t, "Full name", name["description"])

	age := props["age"].(map[string]any)
	assert.Equal(t, "integer", age["type"])

	score := props["score"].(map[string]any)
	assert.Equal(t, "number", score["type"])

	diet := props["diet"].(map[string]any)
	assert.Equal(t, []any{"omnivore", "vegetarian", "vegan"}, diet["enum"])

	tags := props["tags"].(map[string]any)
	assert.Equal(t, "array", tags["type"])
	assert.Equal(t, "string", tags["items"].(map[string]any)["type"])

	home := props["home"].(map[string]any)
	assert.Equal(t, "object", home["type"])
	assert.ElementsMatch(t, []any{"city"}, home["required"])

	extra := props["extra"].(map[string]any)
	assert.Equal(t, "object", extra["type"])
	assert.NotContains(t, extra, "properties")
}

func TestSchemaForErrors(t *testing.T) {
	t.Run("non-struct type", func(t *testing.T) {
		_, err := SchemaFor[string]()
		assert.ErrorContains(t, err, "not a struct type")
	})

	t.Run("enum on non-string field", func(t *testing.T) {
		type Bad struct {
			N int `json:"n" enum:"1,2"`
		}
		_, err := SchemaFor[Bad]()
		assert.ErrorContains(t, err, "enum tag requires a string field")
	})

	t.Run("unsupported field kind", func(t *testing.T) {
		type Bad struct {
			Ch chan int `json:"ch"`
		}
		_, err := SchemaFor[Bad]()
		assert.ErrorContains(t, err, "unsupported kind")
	})
}

func TestMustSchemaFor(t *testing.T) {
	type OK struct {
		Name string `json:"name"`
	}
	assert.NotPanics(t, func() { MustSchemaFor[OK]() })
	assert.Panics(t, func() { MustSchemaFor[int]() })
}
