package extract

import "testing"

func TestNormalizeResponseObjectPassthrough(t *testing.T) {
	in := map[string]any{"message": "hello"}
	got := NormalizeResponse(in)
	if got["message"] != "hello" {
		t.Errorf("object passthrough lost message key: %v", got)
	}
}

func TestNormalizeResponseStrings(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantKey string
		wantVal string
	}{
		{"strict json", `{"message": "hi"}`, "message", "hi"},
		{"doubly encoded", `"{\"message\": \"hi\"}"`, "message", "hi"},
		{"single quotes", `{'message': 'hi'}`, "message", "hi"},
		{"bare keys", `{message: hi there}`, "message", "hi there"},
		{"trailing comma", `{"message": "hi",}`, "message", "hi"},
		{"doubled braces", `{{"response": "ok"}}`, "response", "ok"},
		{"plain prose wrapped", "just some text", "response", "just some text"},
		{"truncated json wrapped", `{"message": "hi`, "response", `{"message": "hi`},
		{"empty wrapped", "", "response", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeResponse(tt.in)
			v, ok := got[tt.wantKey]
			if !ok {
				t.Fatalf("NormalizeResponse(%q) = %v; want key %q", tt.in, got, tt.wantKey)
			}
			if s, _ := v.(string); s != tt.wantVal {
				t.Errorf("NormalizeResponse(%q)[%q] = %q; want %q", tt.in, tt.wantKey, s, tt.wantVal)
			}
		})
	}
}

// NormalizeResponse must never panic and always return a non-nil map,
// no matter how mangled the payload is.
func TestNormalizeResponseNeverFails(t *testing.T) {
	inputs := []string{
		"", "{", "}", "{{{{", `{"a":`, `{'a': }`, "\x00\x01", "[1,2,3",
		`{"nested": {"deep": }`, "::::", "{,}",
	}
	for _, in := range inputs {
		got := NormalizeResponse(in)
		if got == nil {
			t.Errorf("NormalizeResponse(%q) returned nil map", in)
		}
	}
	if got := NormalizeResponse(nil); got == nil {
		t.Error("NormalizeResponse(nil) returned nil map")
	}
}

func TestMessageText(t *testing.T) {
	tests := []struct {
		in   map[string]any
		want string
	}{
		{map[string]any{"message": "a"}, "a"},
		{map[string]any{"response": "b"}, "b"},
		{map[string]any{"body": "c"}, "c"},
		{map[string]any{"message": "", "response": "fallback"}, "fallback"},
		{map[string]any{"other": "x"}, ""},
	}
	for _, tt := range tests {
		if got := MessageText(tt.in); got != tt.want {
			t.Errorf("MessageText(%v) = %q; want %q", tt.in, got, tt.want)
		}
	}
}

func TestUnwrapResponseTags(t *testing.T) {
	in := "<response>  Hello there  </response><update_dashboard>{}</update_dashboard>"
	if got := UnwrapResponseTags(in); got != "Hello there" {
		t.Errorf("UnwrapResponseTags = %q; want %q", got, "Hello there")
	}
	if got := UnwrapResponseTags("no tags"); got != "no tags" {
		t.Errorf("UnwrapResponseTags without tags = %q; want input unchanged", got)
	}
}
