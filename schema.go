package gemcore

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

// SchemaFor generates a JSON Schema document from the struct type T.
//
// Field names come from json tags. Additional tags refine the schema:
//
//	type Recipe struct {
//	    Name     string   `json:"name" desc:"Recipe name" required:"true"`
//	    Servings int      `json:"servings" desc:"Number of servings"`
//	    Diet     string   `json:"diet" enum:"omnivore,vegetarian,vegan"`
//	    Steps    []string `json:"steps" required:"true"`
//	}
//
// Nested structs, slices, maps, and pointers are supported. Pointer fields
// are treated the same as their element type.
func SchemaFor[T any]() (json.RawMessage, error) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("schema: %s is not a struct type", t)
	}

	node, err := structSchema(t)
	if err != nil {
		return nil, err
	}
	return json.Marshal(node)
}

// MustSchemaFor is like SchemaFor but panics on error. Useful for
// package-level tool declarations.
func MustSchemaFor[T any]() json.RawMessage {
	schema, err := SchemaFor[T]()
	if err != nil {
		panic(err)
	}
	return schema
}

// schemaNode is the serialized JSON Schema shape.
type schemaNode struct {
	Type        string                 `json:"type"`
	Description string                 `json:"description,omitempty"`
	Enum        []string               `json:"enum,omitempty"`
	Items       *schemaNode            `json:"items,omitempty"`
	Properties  map[string]*schemaNode `json:"properties,omitempty"`
	Required    []string               `json:"required,omitempty"`
}

func structSchema(t reflect.Type) (*schemaNode, error) {
	node := &schemaNode{
		Type:       "object",
		Properties: map[string]*schemaNode{},
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		jsonTag := field.Tag.Get("json")
		if jsonTag == "-" {
			continue
		}
		name := strings.Split(jsonTag, ",")[0]
		if name == "" {
			name = field.Name
		}

		prop, err := fieldSchema(field.Type)
		if err != nil {
			return nil, fmt.Errorf("schema: field %s: %w", field.Name, err)
		}

		if desc := field.Tag.Get("desc"); desc != "" {
			prop.Description = desc
		}
		if enum := field.Tag.Get("enum"); enum != "" {
			if prop.Type != "string" {
				return nil, fmt.Errorf("schema: field %s: enum tag requires a string field", field.Name)
			}
			prop.Enum = strings.Split(enum, ",")
		}
		if field.Tag.Get("required") == "true" {
			node.Required = append(node.Required, name)
		}

		node.Properties[name] = prop
	}

	return node, nil
}

func fieldSchema(t reflect.Type) (*schemaNode, error) {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.String:
		return &schemaNode{Type: "string"}, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &schemaNode{Type: "integer"}, nil
	case reflect.Float32, reflect.Float64:
		return &schemaNode{Type: "number"}, nil
	case reflect.Bool:
		return &schemaNode{Type: "boolean"}, nil
	case reflect.Slice, reflect.Array:
		items, err := fieldSchema(t.Elem())
		if err != nil {
			return nil, err
		}
		return &schemaNode{Type: "array", Items: items}, nil
	case reflect.Struct:
		return structSchema(t)
	case reflect.Map:
		// Objects with no declared properties.
		return &schemaNode{Type: "object"}, nil
	default:
		return nil, fmt.Errorf("unsupported kind %s", t.Kind())
	}
}
