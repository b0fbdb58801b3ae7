package extract

import (
	"regexp"
	"strings"
)

var (
	// numberedHeaderRe finds the numbered section headers that introduce
	// each job in the labeled-bullet shape.
	numberedHeaderRe = regexp.MustCompile(`(?m)^\s*\d+\.\s+(.+)$`)

	// headerTitleRe splits a header like
	// "Software Developer at NetDirector in Tampa, FL." into its parts.
	headerTitleRe = regexp.MustCompile(`^(.+?)\s+at\s+(.+?)(?:\s+in\s+(.+?))?\.?$`)

	labeledCompanyRe  = regexp.MustCompile(`(?im)^\s*-\s*Company:\s*(.+)$`)
	labeledLocationRe = regexp.MustCompile(`(?im)^\s*-\s*Location:\s*(.+)$`)
	labeledDescRe     = regexp.MustCompile(`(?im)^\s*-\s*Description:\s*(.+)$`)
	labeledSalaryRe   = regexp.MustCompile(`(?im)^\s*-\s*Salary(?:\s+Range)?:\s*(.+)$`)
	labeledTypeRe     = regexp.MustCompile(`(?im)^\s*-\s*(?:Job\s+)?Type:\s*(.+)$`)
	labeledLinkRe     = regexp.MustCompile(`\[[^\]]+\]\(([^)]+)\)`)

	labeledBulletRe = regexp.MustCompile(`(?im)^\s*-\s*(?:Company|Location|Description|Salary(?:\s+Range)?):`)
)

// nonJobHeaders disqualify a section: these are intro or filler lines
// that the agent numbers like listings.
var nonJobHeaders = []string{
	"here are",
	"job postings",
	"eligible to hire",
}

func detectLabeledBullets(text string) bool {
	return numberedHeaderRe.MatchString(text) && labeledBulletRe.MatchString(text)
}

// extractLabeledBullets parses sections of the form
//
//	1. Software Developer at NetDirector in Tampa, FL.
//	   - Location: Tampa, FL
//	   - Salary Range: $60,000-$80,000
//
// Each labeled bullet is searched independently inside its section.
func extractLabeledBullets(text string) []Job {
	headers := numberedHeaderRe.FindAllStringSubmatchIndex(text, -1)
	var jobs []Job

	for i, h := range headers {
		header := strings.TrimSpace(text[h[2]:h[3]])
		if skipHeader(header) {
			continue
		}

		end := len(text)
		if i+1 < len(headers) {
			end = headers[i+1][0]
		}
		section := text[h[1]:end]

		job := Job{Type: defaultJobType}
		job.JobTitle = stripBold(header)
		if m := headerTitleRe.FindStringSubmatch(job.JobTitle); m != nil {
			job.JobTitle = strings.TrimSpace(m[1])
			job.Company = strings.TrimSpace(m[2])
			job.Location = strings.TrimSuffix(strings.TrimSpace(m[3]), ".")
		}

		if m := labeledCompanyRe.FindStringSubmatch(section); m != nil {
			job.Company = strings.TrimSpace(m[1])
		}
		if m := labeledLocationRe.FindStringSubmatch(section); m != nil {
			job.Location = strings.TrimSpace(m[1])
		}
		if m := labeledDescRe.FindStringSubmatch(section); m != nil {
			job.Description = strings.TrimSpace(m[1])
		}
		if m := labeledSalaryRe.FindStringSubmatch(section); m != nil {
			job.Salary = strings.TrimSpace(m[1])
		}
		if m := labeledTypeRe.FindStringSubmatch(section); m != nil {
			job.Type = strings.TrimSpace(m[1])
		}
		if m := labeledLinkRe.FindStringSubmatch(section); m != nil {
			job.ApplyURL = strings.TrimSpace(m[1])
		}

		// A header with no labeled bullets under it is not a listing.
		if job.Company == "" && job.Location == "" && job.Description == "" && job.Salary == "" {
			continue
		}
		jobs = append(jobs, job)
	}
	return jobs
}

func skipHeader(header string) bool {
	lower := strings.ToLower(header)
	for _, phrase := range nonJobHeaders {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

func stripBold(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "**", ""))
}
