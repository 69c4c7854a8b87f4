package audit

import jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

// Attribute schemas for the custom blocks the pipeline emits. Core blocks are
// left unchecked: their grammar belongs to WordPress, not to this module.
var blockSchemas = map[string]string{
	"content-kit/click-to-tweet": `{
		"type": "object",
		"properties": {
			"tweet": {"type": "string", "minLength": 1}
		},
		"required": ["tweet"],
		"additionalProperties": false
	}`,
	"content-kit/data-lab": `{
		"type": "object",
		"properties": {
			"title": {"type": "string"},
			"columns": {"type": "string"},
			"rows": {"type": "string"}
		},
		"required": ["title", "columns", "rows"],
		"additionalProperties": false
	}`,
	"rank-math/faq-block": `{
		"type": "object",
		"properties": {
			"questions": {
				"type": "array",
				"minItems": 1,
				"items": {
					"type": "object",
					"properties": {
						"id": {"type": "string", "minLength": 1},
						"title": {"type": "string", "minLength": 1},
						"content": {"type": "string"},
						"visible": {"type": "boolean"}
					},
					"required": ["id", "title", "content", "visible"]
				}
			}
		},
		"required": ["questions"]
	}`,
}

func compiledSchemas() map[string]*jsonschema.Schema {
	compiled := make(map[string]*jsonschema.Schema, len(blockSchemas))
	for name, source := range blockSchemas {
		compiled[name] = jsonschema.MustCompileString(name+".json", source)
	}
	return compiled
}
