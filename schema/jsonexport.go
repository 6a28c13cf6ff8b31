package schema

import "github.com/google/jsonschema-go/jsonschema"

// ToJSONSchema projects a Schema tree into a *jsonschema.Schema, so
// cmd/versig-inspect can hand a stream's shape to any JSON Schema
// consumer. One-way, lossy projection for documentation and tooling
// only. Diff remains the sole source of truth for load-time
// compatibility.
func ToJSONSchema(s Schema) *jsonschema.Schema {
	switch s.Kind {
	case KindStruct:
		props := make(map[string]*jsonschema.Schema, len(s.Fields))
		required := make([]string, 0, len(s.Fields))
		order := make([]string, 0, len(s.Fields))
		for _, f := range s.Fields {
			props[f.Name] = ToJSONSchema(f.Schema)
			required = append(required, f.Name)
			order = append(order, f.Name)
		}
		return &jsonschema.Schema{
			Type:                 "object",
			Properties:           props,
			Required:             required,
			PropertyOrder:        order,
			AdditionalProperties: &jsonschema.Schema{Not: &jsonschema.Schema{}},
		}

	case KindEnum:
		variants := make([]*jsonschema.Schema, 0, len(s.Variants))
		for _, v := range s.Variants {
			props := make(map[string]*jsonschema.Schema, len(v.Fields))
			required := make([]string, 0, len(v.Fields))
			for _, f := range v.Fields {
				props[f.Name] = ToJSONSchema(f.Schema)
				required = append(required, f.Name)
			}
			variants = append(variants, &jsonschema.Schema{
				Type:       "object",
				Properties: props,
				Required:   required,
			})
		}
		return &jsonschema.Schema{OneOf: variants}

	case KindPrimitive:
		return primitiveJSONSchema(s.Primitive)

	case KindVector:
		return &jsonschema.Schema{Type: "array", Items: ToJSONSchema(*s.Element)}

	default: // KindUndefined
		return &jsonschema.Schema{}
	}
}

func primitiveJSONSchema(p Primitive) *jsonschema.Schema {
	if p == PrimitiveString {
		return &jsonschema.Schema{Type: "string"}
	}
	return &jsonschema.Schema{Type: "integer"}
}
