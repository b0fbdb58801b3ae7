package extract

import (
	"regexp"
	"strings"
)

// dashJobRe matches the agent's dash-bulleted shape:
//
//	- Title at Company in Location. Responsibilities include Desc. [CODE]
//
// Company and location segments are individually optional; the bracketed
// code at the end is the listing reference.
var dashJobRe = regexp.MustCompile(`(?m)^-\s+(.+?)(?:\s+at\s+([^.]+?))?(?:\s+in\s+([^.]+?))?\.\s+Responsibilities include\s+(.+?)\.\s+\[([^\]]+)\]`)

func detectDashFormat(text string) bool {
	return dashJobRe.MatchString(text)
}

func extractDashFormat(text string) []Job {
	var jobs []Job
	for _, m := range dashJobRe.FindAllStringSubmatch(text, -1) {
		title := strings.TrimSpace(m[1])
		company := strings.TrimSpace(m[2])
		location := strings.TrimSpace(m[3])
		description := strings.TrimSpace(m[4])
		code := strings.TrimSpace(m[5])

		// "at an undisclosed location" parses as a company name.
		if strings.EqualFold(company, "an undisclosed location") {
			company = undisclosedCompany
			location = undisclosedPlace
		}

		jobs = append(jobs, Job{
			JobTitle:    title,
			Company:     company,
			Location:    location,
			Description: description,
			ApplyURL:    "#" + code,
			Type:        defaultJobType,
			Remote:      mentionsRemote(location),
		})
	}
	return jobs
}
