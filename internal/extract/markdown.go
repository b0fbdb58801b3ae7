package extract

import (
	"regexp"
	"strings"
)

var (
	// boldHeaderRe matches markdown-bold numbered headers: 1. **Title**
	boldHeaderRe = regexp.MustCompile(`(?m)(\d+)\.\s+\*\*(.+?)\*\*`)

	detailCompanyRe = regexp.MustCompile(`(?i)(?:\bat\b|company:)\s+([^\n.]+)`)
	detailPlaceRe   = regexp.MustCompile(`(?i)(?:\bin\b|location:)\s+([^\n.]+)`)
	detailTypeRe    = regexp.MustCompile(`(?i)(?:type|schedule):?\s*([^\n.]+)`)
	detailSalaryRe  = regexp.MustCompile(`(?i)(?:salary|compensation):?\s*([^\n.]+)`)
	salaryRangeRe   = regexp.MustCompile(`\$[\d,]+\.?\d*\s*-\s*\$[\d,]+\.?\d*`)
	salaryFigureRe  = regexp.MustCompile(`\$[\d,]+\.?\d*`)
	responsibilityRe = regexp.MustCompile(`(?i)(?:responsibilities|requirements):?\s*([^\n.]+)`)
)

func detectBoldNumbered(text string) bool {
	return boldHeaderRe.MatchString(text)
}

// extractBoldNumbered parses numbered markdown-bold blocks:
//
//	1. **Registered Nurse** at Mercy Health in Toledo, OH.
//	   Salary: $70,000. Type: Full-time.
//
// Everything between one bold header and the next is that job's detail
// block; fields are fished out of it independently.
func extractBoldNumbered(text string) []Job {
	headers := boldHeaderRe.FindAllStringSubmatchIndex(text, -1)
	var jobs []Job

	for i, h := range headers {
		title := strings.TrimSpace(text[h[4]:h[5]])
		end := len(text)
		if i+1 < len(headers) {
			end = headers[i+1][0]
		}
		details := text[h[1]:end]

		job := Job{JobTitle: title}

		if m := detailCompanyRe.FindStringSubmatch(details); m != nil {
			job.Company = strings.TrimSpace(m[1])
			// Greedy capture keeps "Acme in Toledo, OH" together.
			if idx := strings.Index(job.Company, " in "); idx > 0 {
				job.Location = strings.TrimSpace(job.Company[idx+4:])
				job.Company = strings.TrimSpace(job.Company[:idx])
			}
		}
		if job.Location == "" {
			if m := detailPlaceRe.FindStringSubmatch(details); m != nil {
				job.Location = strings.TrimSpace(m[1])
			}
		}
		if m := detailSalaryRe.FindStringSubmatch(details); m != nil {
			job.Salary = strings.TrimSpace(m[1])
		} else if m := salaryRangeRe.FindString(details); m != "" {
			job.Salary = m
		} else if m := salaryFigureRe.FindString(details); m != "" {
			job.Salary = m
		}
		if m := detailTypeRe.FindStringSubmatch(details); m != nil {
			job.Type = strings.TrimSpace(m[1])
		}
		if m := responsibilityRe.FindStringSubmatch(details); m != nil {
			job.Description = strings.TrimSpace(m[1])
		} else if first := firstSentence(details); first != "" {
			job.Description = first
		}
		if strings.Contains(strings.ToLower(details), "anywhere") {
			job.Remote = true
		}

		jobs = append(jobs, job)
	}
	return jobs
}

// firstSentence returns the first sentence of a detail block when it is
// long enough to stand as a description.
func firstSentence(details string) string {
	s := strings.TrimSpace(details)
	if idx := strings.Index(s, "."); idx > 0 {
		s = s[:idx]
	}
	s = strings.TrimSpace(s)
	if len(s) > 10 {
		return s + "."
	}
	return ""
}
