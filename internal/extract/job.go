// Package extract recovers structured job listings and dashboard filter
// state from the free-form text the upstream agent returns. The agent has
// been observed emitting at least six different layouts for the same
// content, so everything in here is best-effort: extractors degrade to
// empty results instead of failing.
package extract

import (
	"fmt"
	"strings"
)

// Job is one job listing recovered from agent text.
type Job struct {
	JobTitle    string `json:"jobTitle"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Salary      string `json:"salary,omitempty"`
	Type        string `json:"type,omitempty"`
	ApplyURL    string `json:"applyUrl,omitempty"`
	Remote      bool   `json:"remote"`

	// Enrichment fields, present only when a format carries them.
	Sector          string `json:"sector,omitempty"`
	PostedAt        string `json:"postedAt,omitempty"`
	Source          string `json:"source,omitempty"`
	ExperienceLevel string `json:"experienceLevel,omitempty"`
	H1BSponsorship  bool   `json:"h1bSponsorship,omitempty"`
}

// LocationFilter is the nested location facet of a FilterSet.
type LocationFilter struct {
	Cities []string `json:"cities" yaml:"cities"`
	Radius int      `json:"radius" yaml:"radius"`
}

// FilterSet is a loosely-typed bag of dashboard search facets. Any subset
// of fields may be absent; a fresh set is built per agent response and
// never merged with a previous one.
type FilterSet struct {
	JobTitle          []string        `json:"jobTitle,omitempty" yaml:"jobTitle"`
	JobTypes          []string        `json:"jobTypes,omitempty" yaml:"jobTypes"`
	Location          *LocationFilter `json:"location,omitempty" yaml:"location"`
	ExperienceLevels  []string        `json:"experienceLevels,omitempty" yaml:"experienceLevels"`
	DatePosted        string          `json:"datePosted,omitempty" yaml:"datePosted"`
	WorkAuthorization *bool           `json:"workAuthorization,omitempty" yaml:"workAuthorization"`

	// Source records how the set was obtained: "dashboard" (agent-supplied),
	// "derived" (built from extracted jobs) or "synthetic" (all-Any default).
	Source string `json:"source,omitempty" yaml:"-"`
}

// IsEmpty reports whether no facet was recovered.
func (f FilterSet) IsEmpty() bool {
	return len(f.JobTitle) == 0 && len(f.JobTypes) == 0 && f.Location == nil &&
		len(f.ExperienceLevels) == 0 && f.DatePosted == "" && f.WorkAuthorization == nil
}

// Fallback literals used when a field cannot be recovered.
const (
	unknownCompany     = "Unknown Company"
	unknownLocation    = "Location not specified"
	defaultJobType     = "Full-time"
	undisclosedCompany = "Undisclosed Company"
	undisclosedPlace   = "Undisclosed Location"
)

// finalize fills fallback values so every returned Job carries all seven
// base fields, detects remote listings and de-duplicates within the pass.
func finalize(jobs []Job) []Job {
	seen := make(map[string]struct{}, len(jobs))
	out := make([]Job, 0, len(jobs))

	for i, job := range jobs {
		job.JobTitle = strings.TrimSpace(job.JobTitle)
		job.Company = strings.TrimSpace(job.Company)
		job.Location = strings.TrimSpace(job.Location)
		job.Description = strings.TrimSpace(job.Description)

		if job.JobTitle == "" {
			job.JobTitle = fmt.Sprintf("Job %d", i+1)
		}
		if job.Company == "" {
			job.Company = unknownCompany
		}
		if job.Location == "" {
			job.Location = unknownLocation
		}
		if job.Description == "" {
			job.Description = fmt.Sprintf("%s position at %s", job.JobTitle, job.Company)
		}
		if job.Type == "" {
			job.Type = defaultJobType
		}
		if !job.Remote {
			job.Remote = mentionsRemote(job.Location) || mentionsRemote(job.Description) || mentionsRemote(job.JobTitle)
		}

		key := strings.ToLower(job.JobTitle + "|" + job.Company + "|" + job.Location)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, job)
	}
	return out
}

func mentionsRemote(s string) bool {
	return strings.Contains(strings.ToLower(s), "remote")
}
