package extract

import (
	"log"
	"regexp"
	"strings"
)

// strategy pairs a cheap shape test with the extractor for that shape.
type strategy struct {
	name    string
	detect  func(string) bool
	extract func(string) []Job
}

// strategies is the priority-ordered list of known listing shapes. More
// structured shapes come first so the permissive link fallback cannot
// shadow them. The first strategy yielding a non-empty result wins.
var strategies = []strategy{
	{"simple-numbered", detectSimpleNumbered, extractSimpleNumbered},
	{"dash", detectDashFormat, extractDashFormat},
	{"labeled-bullet", detectLabeledBullets, extractLabeledBullets},
	{"bold-numbered", detectBoldNumbered, extractBoldNumbered},
	{"title-at-company", detectTitleBlocks, extractTitleBlocks},
	{"link-fallback", detectMarkdownLinks, extractMarkdownLinks},
}

var numberedAtInRe = regexp.MustCompile(`(?m)^\d+\.\s+.+\s+at\s+.+`)

// informationalPhrases mark conversational filler that superficially
// resembles a listing ("we are eligible to hire in 30 states...").
var informationalPhrases = []string{
	"eligible to hire in",
}

// ExtractJobs runs the strategy list over the message text and returns
// the first non-empty extraction, finalized with fallback fields and
// de-duplicated. Informational text is suppressed entirely.
func ExtractJobs(text string) []Job {
	if text == "" || looksInformational(text) {
		return nil
	}
	for _, s := range strategies {
		if !s.detect(text) {
			continue
		}
		jobs := s.extract(text)
		if len(jobs) == 0 {
			continue
		}
		log.Printf("extract: %d job(s) via %s format", len(jobs), s.name)
		return finalize(jobs)
	}
	return nil
}

// looksInformational returns true when the message reads like general
// guidance rather than a listing: it mentions hiring eligibility but has
// no numbered "Title at Company" line anywhere.
func looksInformational(text string) bool {
	lower := strings.ToLower(text)
	for _, phrase := range informationalPhrases {
		if strings.Contains(lower, phrase) && !numberedAtInRe.MatchString(text) {
			return true
		}
	}
	return false
}
