package service

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/tidwall/gjson"
)

var (
	fenceOpen  = regexp.MustCompile("^```(?:json)?\\s*\n?")
	fenceClose = regexp.MustCompile("\\s*```\\s*$")
)

// stripCodeFence removes a surrounding ```json fenced block if present.
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = fenceOpen.ReplaceAllString(text, "")
	return strings.TrimSpace(fenceClose.ReplaceAllString(text, ""))
}

// decodeReply parses a model reply into out, returning *ParseError on failure.
func decodeReply(text string, out any) error {
	if !gjson.Valid(text) {
		return &ParseError{Message: "reply is not valid JSON", Fragment: fragment(text)}
	}
	if err := json.Unmarshal([]byte(text), out); err != nil {
		return &ParseError{Message: err.Error(), Fragment: fragment(text), Err: err}
	}
	return nil
}

// sameShape reports whether b has the same object keys and array lengths as a
// at every nesting level. Leaf scalar kinds are not compared.
func sameShape(a, b any, path string) error {
	switch av := a.(type) {
	case map[string]any:
		bv, ok := b.(map[string]any)
		if !ok {
			return fmt.Errorf("%s: expected object", pathOrRoot(path))
		}
		if len(av) != len(bv) {
			return fmt.Errorf("%s: expected keys %v, got %v", pathOrRoot(path), sortedKeys(av), sortedKeys(bv))
		}
		for k, child := range av {
			other, ok := bv[k]
			if !ok {
				return fmt.Errorf("%s: missing key %q", pathOrRoot(path), k)
			}
			if err := sameShape(child, other, path+"."+k); err != nil {
				return err
			}
		}
	case []any:
		bv, ok := b.([]any)
		if !ok {
			return fmt.Errorf("%s: expected array", pathOrRoot(path))
		}
		if len(av) != len(bv) {
			return fmt.Errorf("%s: expected %d elements, got %d", pathOrRoot(path), len(av), len(bv))
		}
		for i := range av {
			if err := sameShape(av[i], bv[i], fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
	default:
		switch b.(type) {
		case map[string]any, []any:
			return fmt.Errorf("%s: expected scalar", pathOrRoot(path))
		}
	}
	return nil
}

func pathOrRoot(path string) string {
	if path == "" {
		return "$"
	}
	return "$" + path
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
