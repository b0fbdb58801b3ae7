package extract

import "strings"

// QueryFilters is filter intent detected in the user's own message, as
// opposed to filters the agent sends back. All fields are optional.
type QueryFilters struct {
	JobTitle          string `json:"jobTitle,omitempty"`
	JobTypes          string `json:"jobTypes,omitempty"`
	Location          string `json:"location,omitempty"`
	ExperienceLevels  string `json:"experienceLevels,omitempty"`
	DatePosted        string `json:"datePosted,omitempty"`
	WorkAuthorization bool   `json:"workAuthorization,omitempty"`
}

// locationKeywords maps query substrings to display locations. Order
// matters: longer spellings come before their abbreviations.
var locationKeywords = []struct{ keyword, display string }{
	{"new york", "New York"},
	{"san francisco", "San Francisco"},
	{"san fran", "San Francisco"},
	{"los angeles", "Los Angeles"},
	{"sf", "San Francisco"},
	{"nyc", "New York"},
	{"la", "Los Angeles"},
	{"austin", "Austin"},
	{"chicago", "Chicago"},
	{"boston", "Boston"},
	{"seattle", "Seattle"},
	{"miami", "Miami"},
	{"denver", "Denver"},
	{"phoenix", "Phoenix"},
	{"atlanta", "Atlanta"},
	{"dallas", "Dallas"},
	{"michigan", "Michigan"},
	{"california", "California"},
	{"texas", "Texas"},
	{"florida", "Florida"},
	{"washington", "Washington"},
	{"remote", "Remote"},
	{"onsite", "Onsite"},
	{"hybrid", "Hybrid"},
}

var queryTitles = []string{
	"software engineer", "product manager", "customer support", "full stack",
	"data scientist", "developer", "frontend", "backend", "analyst",
	"manager", "designer", "sales", "marketing", "operations", "hr",
}

// ParseQueryFilters scans the user's message for filter intent so the
// gateway can report it alongside the agent reply. Pure keyword
// matching, no NLP.
func ParseQueryFilters(query string) QueryFilters {
	var qf QueryFilters
	lower := strings.ToLower(query)

	for _, lk := range locationKeywords {
		if strings.Contains(lower, lk.keyword) {
			qf.Location = lk.display
			break
		}
	}

	switch {
	case strings.Contains(lower, "full-time"), strings.Contains(lower, "full time"):
		qf.JobTypes = "Full-time"
	case strings.Contains(lower, "part-time"), strings.Contains(lower, "part time"):
		qf.JobTypes = "Part-time"
	case strings.Contains(lower, "contract"):
		qf.JobTypes = "Contract"
	case strings.Contains(lower, "internship"):
		qf.JobTypes = "Internship"
	case strings.Contains(lower, "remote") && qf.Location == "":
		qf.JobTypes = "Remote"
	}

	switch {
	case strings.Contains(lower, "entry level"), strings.Contains(lower, "junior"), strings.Contains(lower, "entry"):
		qf.ExperienceLevels = "Entry Level"
	case strings.Contains(lower, "mid level"), strings.Contains(lower, "mid-level"), strings.Contains(lower, "mid"):
		qf.ExperienceLevels = "Mid Level"
	case strings.Contains(lower, "senior"), strings.Contains(lower, "lead"), strings.Contains(lower, "principal"):
		qf.ExperienceLevels = "Senior Level"
	}

	if strings.Contains(lower, "h-1b") || strings.Contains(lower, "h1b") ||
		strings.Contains(lower, "visa") || strings.Contains(lower, "sponsor") {
		qf.WorkAuthorization = true
	}

	switch {
	case strings.Contains(lower, "past 24"), strings.Contains(lower, "yesterday"):
		qf.DatePosted = "past_24_hours"
	case strings.Contains(lower, "past 3 days"), strings.Contains(lower, "last 3 days"):
		qf.DatePosted = "past_3_days"
	case strings.Contains(lower, "past month"), strings.Contains(lower, "last month"):
		qf.DatePosted = "past_month"
	case strings.Contains(lower, "recent"), strings.Contains(lower, "past week"), strings.Contains(lower, "last week"):
		qf.DatePosted = "past_week"
	}

	for _, title := range queryTitles {
		if strings.Contains(lower, title) {
			qf.JobTitle = strings.ToUpper(title[:1]) + title[1:]
			break
		}
	}

	return qf
}

// HasFilterIntent reports whether the query is worth scanning for
// filters at all.
func HasFilterIntent(query string) bool {
	lower := strings.ToLower(query)
	keywords := []string{
		"filter", "search", "find", "show", "looking for", "want", "need",
		"remote", "onsite", "location", "full-time", "part-time", "contract",
		"entry level", "senior", "junior", "h-1b", "h1b", "visa", "sponsor",
		"recent", "new", "latest", "job", "role", "position",
		"anywhere", "work from home", "wfh", "hybrid",
	}
	for _, k := range keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}
