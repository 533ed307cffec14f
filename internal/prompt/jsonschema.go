package prompt

import (
	"sort"
	"strings"

	"google.golang.org/genai"
)

// ToJSONSchema renders a genai schema as a plain JSON Schema document for
// OpenAI-compatible backends, which expect lower-case type names.
func ToJSONSchema(s *genai.Schema) map[string]any {
	if s == nil {
		return nil
	}
	out := map[string]any{}
	if s.Type != "" {
		out["type"] = strings.ToLower(string(s.Type))
	}
	if s.Description != "" {
		out["description"] = s.Description
	}
	if s.Items != nil {
		out["items"] = ToJSONSchema(s.Items)
	}
	if len(s.Properties) > 0 {
		props := make(map[string]any, len(s.Properties))
		for name, p := range s.Properties {
			props[name] = ToJSONSchema(p)
		}
		out["properties"] = props
	}
	return out
}

// TopLevelKeys lists an object schema's property names in sorted order.
func TopLevelKeys(s *genai.Schema) []string {
	keys := make([]string, 0, len(s.Properties))
	for k := range s.Properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
