package extract

import (
	"regexp"
	"strings"
)

var (
	// simpleNumberedRe matches one "N. Title at Company in Location" line.
	simpleNumberedRe = regexp.MustCompile(`^\d+\.\s+(.+?)\s+at\s+(.+?)(?:\s+in\s+(.+))?$`)
	// dollarAmountRe flags descriptive lines quoting pay rather than a listing.
	dollarAmountRe = regexp.MustCompile(`\$\d`)
)

// descriptivePhrases disqualify a numbered line from being a listing:
// these show up in marketing copy that happens to contain "at".
var descriptivePhrases = []string{
	"work from home",
	"skip the commute",
}

func detectSimpleNumbered(text string) bool {
	// Numbered headers followed by labeled bullets belong to the
	// labeled-bullet shape; let that extractor take them.
	if labeledBulletRe.MatchString(text) {
		return false
	}
	for _, line := range strings.Split(text, "\n") {
		if acceptSimpleLine(strings.TrimSpace(line)) {
			return true
		}
	}
	return false
}

// extractSimpleNumbered parses plain numbered lines of the form
// "1. Software Developer at NetDirector in Tampa, FL".
func extractSimpleNumbered(text string) []Job {
	var jobs []Job
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if !acceptSimpleLine(line) {
			continue
		}
		m := simpleNumberedRe.FindStringSubmatch(line)
		title := strings.TrimSpace(m[1])
		company := strings.TrimSpace(m[2])
		location := strings.TrimSpace(m[3])

		// "at Acme, in Berlin" style lines leave the location glued to the
		// company when the explicit capture missed it.
		if location == "" {
			if idx := strings.Index(company, " in "); idx > 0 {
				location = strings.TrimSpace(company[idx+4:])
				company = strings.TrimSpace(company[:idx])
			}
		}
		company = strings.TrimSuffix(company, ".")
		location = strings.TrimSuffix(location, ".")

		jobs = append(jobs, Job{
			JobTitle: title,
			Company:  company,
			Location: location,
			Type:     defaultJobType,
		})
	}
	return jobs
}

func acceptSimpleLine(line string) bool {
	if !simpleNumberedRe.MatchString(line) {
		return false
	}
	if strings.Contains(line, "**") || dollarAmountRe.MatchString(line) {
		return false
	}
	lower := strings.ToLower(line)
	for _, phrase := range descriptivePhrases {
		if strings.Contains(lower, phrase) {
			return false
		}
	}
	return true
}
