package extract

import (
	"regexp"
	"strings"
)

// markdownLinkRe matches [Label](url) pairs anywhere in the text.
var markdownLinkRe = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)

// knownDomains maps URL substrings to the job board or company behind
// them, used to attribute otherwise anonymous links.
var knownDomains = []struct {
	substring string
	company   string
}{
	{"tietalent.com", "TieTalent"},
	{"linkedin.com", "LinkedIn"},
	{"indeed.com", "Indeed"},
	{"glassdoor.com", "Glassdoor"},
	{"ziprecruiter.com", "ZipRecruiter"},
	{"monster.com", "Monster"},
	{"dice.com", "Dice"},
}

// typeWindow is how many characters around a link are scanned for a
// job-type hint.
const typeWindow = 50

func detectMarkdownLinks(text string) bool {
	return markdownLinkRe.MatchString(text)
}

// extractMarkdownLinks is the last-resort shape: any markdown link whose
// label plausibly names a job. The company is inferred from the link
// domain and the job type from a small window of surrounding text.
func extractMarkdownLinks(text string) []Job {
	var jobs []Job
	for _, m := range markdownLinkRe.FindAllStringSubmatchIndex(text, -1) {
		label := strings.TrimSpace(text[m[2]:m[3]])
		url := strings.TrimSpace(text[m[4]:m[5]])

		if len(label) < 3 || strings.EqualFold(label, "apply here") ||
			strings.Contains(strings.ToLower(label), "update_dashboard") {
			continue
		}

		jobs = append(jobs, Job{
			JobTitle: label,
			Company:  companyFromURL(url),
			ApplyURL: url,
			Type:     typeFromContext(text, m[0], m[1]),
		})
	}
	return jobs
}

func companyFromURL(url string) string {
	lower := strings.ToLower(url)
	for _, d := range knownDomains {
		if strings.Contains(lower, d.substring) {
			return d.company
		}
	}
	return unknownCompany
}

func typeFromContext(text string, start, end int) string {
	lo := start - typeWindow
	if lo < 0 {
		lo = 0
	}
	hi := end + typeWindow
	if hi > len(text) {
		hi = len(text)
	}
	window := strings.ToLower(text[lo:hi])
	switch {
	case strings.Contains(window, "part-time"), strings.Contains(window, "part time"):
		return "Part-time"
	case strings.Contains(window, "contract"):
		return "Contract"
	case strings.Contains(window, "temporary"):
		return "Temporary"
	}
	return defaultJobType
}
