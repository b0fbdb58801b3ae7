package extract

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/goccy/go-yaml"
)

var (
	// bareKeyRe quotes unquoted object keys: {message: → {"message":
	bareKeyRe = regexp.MustCompile(`([{,]\s*)([A-Za-z_][A-Za-z0-9_]*)\s*:`)
	// trailingCommaRe strips commas before a closing brace or bracket.
	trailingCommaRe = regexp.MustCompile(`,(\s*[}\]])`)
	// bareValueRe quotes unquoted scalar values: : hello} → : "hello"}
	bareValueRe = regexp.MustCompile(`:\s*([A-Za-z_][^",{}\[\]]*?)\s*([,}])`)

	responseTagRe = regexp.MustCompile(`(?s)<response>(.*?)</response>`)
)

// NormalizeResponse coerces the raw agent payload into a plain map. The
// payload may already be an object, or a string that is JSON, doubly
// JSON-encoded, JSON-like with single quotes / bare keys / doubled braces,
// or plain prose. It never fails: unparseable input is wrapped as
// {"response": input}.
func NormalizeResponse(raw any) map[string]any {
	switch v := raw.(type) {
	case map[string]any:
		return v
	case []byte:
		return normalizeString(string(v))
	case string:
		return normalizeString(v)
	case nil:
		return map[string]any{"response": ""}
	default:
		// Unexpected payload type; round-trip through JSON as a last try.
		if b, err := json.Marshal(v); err == nil {
			var m map[string]any
			if json.Unmarshal(b, &m) == nil {
				return m
			}
		}
		return map[string]any{"response": ""}
	}
}

func normalizeString(s string) map[string]any {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return map[string]any{"response": s}
	}

	// Doubly-encoded payloads decode to a string first; unwrap one layer.
	var nested string
	if json.Unmarshal([]byte(trimmed), &nested) == nil {
		trimmed = strings.TrimSpace(nested)
	}

	if m := lenientParse(trimmed); m != nil {
		return m
	}
	if m := repairedParse(trimmed); m != nil {
		return m
	}
	return map[string]any{"response": s}
}

// lenientParse accepts JSON-like object syntax that strict JSON rejects
// (unquoted keys, single-quoted strings). YAML flow mappings are a
// superset of that syntax, so one yaml.Unmarshal covers it.
func lenientParse(s string) map[string]any {
	if !strings.HasPrefix(s, "{") || !strings.HasSuffix(s, "}") {
		return nil
	}
	var m map[string]any
	if err := yaml.Unmarshal([]byte(s), &m); err != nil {
		return nil
	}
	if len(m) == 0 {
		return nil
	}
	return m
}

// repairedParse applies the fixed repair sequence, then one strict JSON
// parse: quote bare keys, single→double quotes, strip trailing commas,
// collapse doubled braces, quote bare values.
func repairedParse(s string) map[string]any {
	if !strings.Contains(s, "{") {
		return nil
	}
	s = bareKeyRe.ReplaceAllString(s, `$1"$2":`)
	s = strings.ReplaceAll(s, "'", `"`)
	s = trailingCommaRe.ReplaceAllString(s, "$1")
	s = strings.ReplaceAll(s, "{{", "{")
	s = strings.ReplaceAll(s, "}}", "}")
	s = bareValueRe.ReplaceAllStringFunc(s, quoteBareValue)

	var m map[string]any
	if err := json.Unmarshal([]byte(s), &m); err != nil {
		return nil
	}
	return m
}

func quoteBareValue(m string) string {
	sub := bareValueRe.FindStringSubmatch(m)
	val := strings.TrimSpace(sub[1])
	switch val {
	case "true", "false", "null":
		return m
	}
	return `: "` + val + `"` + sub[2]
}

// MessageText picks the chat text out of a normalized payload, trying the
// keys the agent and the Lambda proxy have been seen using.
func MessageText(m map[string]any) string {
	for _, key := range []string{"message", "response", "completion", "body", "text"} {
		if v, ok := m[key]; ok {
			if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
				return s
			}
		}
	}
	return ""
}

// UnwrapResponseTags returns the content of a <response>...</response>
// block when present, otherwise the input unchanged.
func UnwrapResponseTags(s string) string {
	if m := responseTagRe.FindStringSubmatch(s); m != nil {
		return strings.TrimSpace(m[1])
	}
	return s
}
