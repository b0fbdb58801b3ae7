package extract

import "testing"

func TestExtractMarkdownLinks(t *testing.T) {
	text := "You might like [Software Engineer](https://www.linkedin.com/jobs/123) for something stable, " +
		"or maybe this [Barista](https://indeed.com/j/9) opening, part-time."

	jobs := ExtractJobs(text)
	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d: %+v", len(jobs), jobs)
	}

	first := jobs[0]
	if first.JobTitle != "Software Engineer" || first.Company != "LinkedIn" {
		t.Errorf("unexpected first job: %+v", first)
	}
	if first.ApplyURL != "https://www.linkedin.com/jobs/123" {
		t.Errorf("applyUrl = %q", first.ApplyURL)
	}
	if first.Type != "Full-time" {
		t.Errorf("type = %q; want Full-time default", first.Type)
	}

	second := jobs[1]
	if second.Company != "Indeed" {
		t.Errorf("second company = %q; want Indeed", second.Company)
	}
	if second.Type != "Part-time" {
		t.Errorf("second type = %q; want Part-time from context", second.Type)
	}
}

func TestMarkdownLinkExclusions(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"apply here label", "[Apply here](https://x.example.com/a)"},
		{"apply here mixed case", "[APPLY HERE](https://x.example.com/a)"},
		{"short label", "[Go](https://x.example.com/a)"},
		{"dashboard artifact", "[update_dashboard payload](https://x.example.com/a)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if jobs := extractMarkdownLinks(tt.text); len(jobs) != 0 {
				t.Errorf("expected no jobs, got %+v", jobs)
			}
		})
	}
}

func TestCompanyFromURL(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://www.tietalent.com/job/1", "TieTalent"},
		{"https://GLASSDOOR.com/j", "Glassdoor"},
		{"https://jobs.example.io/1", "Unknown Company"},
	}
	for _, tt := range tests {
		if got := companyFromURL(tt.url); got != tt.want {
			t.Errorf("companyFromURL(%q) = %q; want %q", tt.url, got, tt.want)
		}
	}
}

func TestTypeFromContextWindow(t *testing.T) {
	// The hint sits well past the scan window, so the default applies.
	pad := ""
	for i := 0; i < 80; i++ {
		pad += "x"
	}
	text := "[Night Auditor](https://example.com/1)" + pad + "contract"
	jobs := extractMarkdownLinks(text)
	if len(jobs) != 1 {
		t.Fatalf("expected 1 job, got %d", len(jobs))
	}
	if jobs[0].Type != "Full-time" {
		t.Errorf("type = %q; want Full-time when hint is out of window", jobs[0].Type)
	}
}
