package extract

import (
	"html"
	"regexp"
	"strconv"
	"strings"
)

var (
	// decimalEntityRe matches numeric character references like &#8211;
	decimalEntityRe = regexp.MustCompile(`&#(\d+);`)
	// hexEntityRe matches hex character references like &#x2019;
	hexEntityRe = regexp.MustCompile(`&#[xX]([0-9a-fA-F]+);`)
)

// namedEntities covers the references the agent actually emits in job
// descriptions: quotes, dashes, ampersand, nbsp and a few symbols.
var namedEntities = map[string]string{
	"&amp;":    "&",
	"&lt;":     "<",
	"&gt;":     ">",
	"&quot;":   `"`,
	"&apos;":   "'",
	"&nbsp;":   " ",
	"&ndash;":  "–",
	"&mdash;":  "—",
	"&lsquo;":  "‘",
	"&rsquo;":  "’",
	"&ldquo;":  "“",
	"&rdquo;":  "”",
	"&hellip;": "…",
	"&bull;":   "•",
	"&middot;": "·",
	"&copy;":   "©",
	"&reg;":    "®",
	"&trade;":  "™",
	"&laquo;":  "«",
	"&raquo;":  "»",
}

// DecodeEntities decodes HTML/XML character references in s. Decimal
// references are resolved first, then hex, then the named table, then a
// final generic pass for anything remaining. Plain text passes through
// unchanged, so decoding is idempotent.
func DecodeEntities(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}

	s = decimalEntityRe.ReplaceAllStringFunc(s, func(m string) string {
		code, err := strconv.Atoi(m[2 : len(m)-1])
		if err != nil || code <= 0 || code > 0x10FFFF {
			return m
		}
		return string(rune(code))
	})

	s = hexEntityRe.ReplaceAllStringFunc(s, func(m string) string {
		code, err := strconv.ParseInt(m[3:len(m)-1], 16, 32)
		if err != nil || code <= 0 || code > 0x10FFFF {
			return m
		}
		return string(rune(code))
	})

	for entity, replacement := range namedEntities {
		s = strings.ReplaceAll(s, entity, replacement)
	}

	return html.UnescapeString(s)
}
