package extract

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
)

var (
	dashboardTagRe = regexp.MustCompile(`(?s)<update_dashboard>(.*?)</update_dashboard>`)

	xmlJobTitleRe   = regexp.MustCompile(`(?s)<jobTitle>(.*?)</jobTitle>`)
	xmlJobTypesRe   = regexp.MustCompile(`(?s)<jobTypes>(.*?)</jobTypes>`)
	xmlExperienceRe = regexp.MustCompile(`(?s)<experienceLevels>(.*?)</experienceLevels>`)
	xmlLocationRe   = regexp.MustCompile(`(?s)<location>(.*?)</location>`)
	xmlCitiesRe     = regexp.MustCompile(`(?s)<cities>(.*?)</cities>`)
	xmlRadiusRe     = regexp.MustCompile(`(?s)<radius>(.*?)</radius>`)
	xmlDatePostedRe = regexp.MustCompile(`(?s)<datePosted>(.*?)</datePosted>`)
	xmlWorkAuthRe   = regexp.MustCompile(`(?s)<workAuthorization>(.*?)</workAuthorization>`)

	yamlBlockRe  = regexp.MustCompile(`(?m)^\s*update_dashboard:\s*$`)
	yamlListRe   = regexp.MustCompile(`(?m)^\s*(jobTitle|jobTypes|experienceLevels|cities):\s*\[(.*?)\]`)
	yamlRadiusRe = regexp.MustCompile(`(?m)^\s*radius:\s*(\d+)`)
	yamlScalarRe = regexp.MustCompile(`(?m)^\s*(datePosted|workAuthorization):\s*(\S+)`)
)

// dashboardConfirmation is the phrase the agent uses when it claims to
// have applied filters without actually sending any.
const dashboardConfirmation = "I have updated your dashboard"

// dashboardPayload mirrors the JSON the agent puts inside
// <update_dashboard> tags; the filters may be nested or top-level.
type dashboardPayload struct {
	Filters *FilterSet `json:"filters"`
	FilterSet
}

// ExtractFilters recovers a FilterSet from the agent message. Three
// sub-parsers are tried in priority order (tagged JSON, ad-hoc XML tags,
// YAML-ish lines); each yields a best-effort partial set. When all fail
// but the agent claims it updated the dashboard, a synthetic all-"Any"
// set is substituted. The boolean reports whether anything was found.
func ExtractFilters(text string) (FilterSet, bool) {
	if m := dashboardTagRe.FindStringSubmatch(text); m != nil {
		if fs, ok := parseDashboardJSON(m[1]); ok {
			fs.Source = "dashboard"
			return fs, true
		}
	}
	if fs, ok := parseFilterTags(text); ok {
		fs.Source = "dashboard"
		return fs, true
	}
	if fs, ok := parseFilterYAML(text); ok {
		fs.Source = "dashboard"
		return fs, true
	}
	if strings.Contains(text, dashboardConfirmation) {
		return syntheticFilters(), true
	}
	return FilterSet{}, false
}

func parseDashboardJSON(content string) (FilterSet, bool) {
	var payload dashboardPayload
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &payload); err != nil {
		return FilterSet{}, false
	}
	if payload.Filters != nil && !payload.Filters.IsEmpty() {
		return *payload.Filters, true
	}
	if !payload.FilterSet.IsEmpty() {
		return payload.FilterSet, true
	}
	return FilterSet{}, false
}

// parseFilterTags handles the agent's pseudo-XML shape:
// <jobTitle>["Nurse"]</jobTitle><location><cities>[Boston]</cities>...
func parseFilterTags(text string) (FilterSet, bool) {
	var fs FilterSet
	if m := xmlJobTitleRe.FindStringSubmatch(text); m != nil {
		fs.JobTitle = parseArrayLiteral(m[1])
	}
	if m := xmlJobTypesRe.FindStringSubmatch(text); m != nil {
		fs.JobTypes = parseArrayLiteral(m[1])
	}
	if m := xmlExperienceRe.FindStringSubmatch(text); m != nil {
		fs.ExperienceLevels = parseArrayLiteral(m[1])
	}
	if m := xmlLocationRe.FindStringSubmatch(text); m != nil {
		loc := &LocationFilter{Radius: defaultRadius}
		if c := xmlCitiesRe.FindStringSubmatch(m[1]); c != nil {
			loc.Cities = parseArrayLiteral(c[1])
		}
		if r := xmlRadiusRe.FindStringSubmatch(m[1]); r != nil {
			if n, err := strconv.Atoi(strings.TrimSpace(r[1])); err == nil {
				loc.Radius = n
			}
		}
		if len(loc.Cities) > 0 || loc.Radius != defaultRadius {
			fs.Location = loc
		}
	}
	if m := xmlDatePostedRe.FindStringSubmatch(text); m != nil {
		fs.DatePosted = trimLiteral(m[1])
	}
	if m := xmlWorkAuthRe.FindStringSubmatch(text); m != nil {
		b := strings.EqualFold(trimLiteral(m[1]), "true")
		fs.WorkAuthorization = &b
	}
	return fs, !fs.IsEmpty()
}

// parseFilterYAML handles the YAML-ish shape:
//
//	update_dashboard:
//	  jobTitle: [Nurse, Therapist]
//	  location:
//	    cities: [Boston]
//	    radius: 25
//
// A strict YAML parse of the block is tried first; the line-pattern
// fallback tolerates the malformed indentation the agent produces.
func parseFilterYAML(text string) (FilterSet, bool) {
	loc := yamlBlockRe.FindStringIndex(text)
	if loc == nil {
		return FilterSet{}, false
	}
	block := text[loc[1]:]

	if fs, ok := strictYAMLFilters(block); ok {
		return fs, true
	}

	var fs FilterSet
	for _, m := range yamlListRe.FindAllStringSubmatch(block, -1) {
		items := parseArrayLiteral(m[2])
		switch m[1] {
		case "jobTitle":
			fs.JobTitle = items
		case "jobTypes":
			fs.JobTypes = items
		case "experienceLevels":
			fs.ExperienceLevels = items
		case "cities":
			if fs.Location == nil {
				fs.Location = &LocationFilter{Radius: defaultRadius}
			}
			fs.Location.Cities = items
		}
	}
	if m := yamlRadiusRe.FindStringSubmatch(block); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			if fs.Location == nil {
				fs.Location = &LocationFilter{}
			}
			fs.Location.Radius = n
		}
	}
	for _, m := range yamlScalarRe.FindAllStringSubmatch(block, -1) {
		switch m[1] {
		case "datePosted":
			fs.DatePosted = trimLiteral(m[2])
		case "workAuthorization":
			b := strings.EqualFold(trimLiteral(m[2]), "true")
			fs.WorkAuthorization = &b
		}
	}
	return fs, !fs.IsEmpty()
}

func strictYAMLFilters(block string) (FilterSet, bool) {
	var fs FilterSet
	if err := yaml.Unmarshal([]byte(block), &fs); err != nil {
		return FilterSet{}, false
	}
	return fs, !fs.IsEmpty()
}

// parseArrayLiteral splits "[Nurse, 'Therapist']" into its items,
// tolerating missing or unbalanced brackets and stray quotes.
func parseArrayLiteral(s string) []string {
	s = strings.NewReplacer("[", "", "]", "", `"`, "", "'", "").Replace(s)
	var items []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}

func trimLiteral(s string) string {
	return strings.Trim(strings.TrimSpace(s), `"'`)
}

const defaultRadius = 25

// syntheticFilters is the speculative all-"Any" default substituted when
// the agent says it updated the dashboard but sent no filter data.
func syntheticFilters() FilterSet {
	auth := true
	return FilterSet{
		JobTitle:          []string{"Any"},
		JobTypes:          []string{"Any"},
		Location:          &LocationFilter{Cities: []string{"Any"}, Radius: defaultRadius},
		ExperienceLevels:  []string{"Any"},
		DatePosted:        "Any",
		WorkAuthorization: &auth,
		Source:            "synthetic",
	}
}

// StripDashboardTags removes <update_dashboard> blocks (and a trailing
// YAML block) from the text shown to the user.
func StripDashboardTags(text string) string {
	text = dashboardTagRe.ReplaceAllString(text, "")
	if loc := yamlBlockRe.FindStringIndex(text); loc != nil {
		text = text[:loc[0]]
	}
	return strings.TrimSpace(text)
}

// DeriveFilters builds a FilterSet from already-extracted jobs when the
// agent supplied none: job titles become title facets, job locations
// become cities, and the remaining facets take dashboard defaults.
func DeriveFilters(jobs []Job) FilterSet {
	if len(jobs) == 0 {
		return FilterSet{}
	}
	auth := true
	fs := FilterSet{
		JobTypes:          []string{"Full-time", "Part-time", "Contract"},
		Location:          &LocationFilter{Radius: defaultRadius},
		ExperienceLevels:  []string{"Entry Level", "Mid Level", "Senior Level"},
		DatePosted:        "past_week",
		WorkAuthorization: &auth,
		Source:            "derived",
	}
	seenTitle := make(map[string]struct{})
	seenCity := make(map[string]struct{})
	for _, job := range jobs {
		if _, dup := seenTitle[job.JobTitle]; !dup && job.JobTitle != "" {
			seenTitle[job.JobTitle] = struct{}{}
			fs.JobTitle = append(fs.JobTitle, job.JobTitle)
		}
		if job.Location == "" || job.Location == unknownLocation {
			continue
		}
		if _, dup := seenCity[job.Location]; !dup {
			seenCity[job.Location] = struct{}{}
			fs.Location.Cities = append(fs.Location.Cities, job.Location)
		}
	}
	return fs
}
