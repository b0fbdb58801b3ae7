package extract

import "testing"

func TestExtractDashFormat(t *testing.T) {
	text := "- Android Developer at TechCorp in Berlin. Responsibilities include building mobile apps. [AB123]\n" +
		"- Android Developer at StartupInc. Responsibilities include maintaining the SDK. [CD456]\n"

	jobs := ExtractJobs(text)
	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d: %+v", len(jobs), jobs)
	}

	first := jobs[0]
	if first.JobTitle != "Android Developer" || first.Company != "TechCorp" || first.Location != "Berlin" {
		t.Errorf("unexpected first job: %+v", first)
	}
	if first.ApplyURL != "#AB123" {
		t.Errorf("applyUrl = %q; want #AB123", first.ApplyURL)
	}
	if first.Description != "building mobile apps" {
		t.Errorf("description = %q", first.Description)
	}

	second := jobs[1]
	if second.ApplyURL != "#CD456" {
		t.Errorf("second applyUrl = %q; want #CD456", second.ApplyURL)
	}
	if second.Location != "Location not specified" {
		t.Errorf("second location = %q", second.Location)
	}
}

func TestDashFormatUndisclosedLocation(t *testing.T) {
	text := "- Android Developer at an undisclosed location. Responsibilities include general duties. [ZZ999]"
	jobs := ExtractJobs(text)
	if len(jobs) != 1 {
		t.Fatalf("expected 1 job, got %d", len(jobs))
	}
	if jobs[0].Company != "Undisclosed Company" || jobs[0].Location != "Undisclosed Location" {
		t.Errorf("got company=%q location=%q; want undisclosed normalization", jobs[0].Company, jobs[0].Location)
	}
}

func TestDashFormatRemoteDetection(t *testing.T) {
	text := "- QA Engineer at TestLab in Remote. Responsibilities include regression testing. [QA1]"
	jobs := ExtractJobs(text)
	if len(jobs) != 1 || !jobs[0].Remote {
		t.Errorf("expected one remote job, got %+v", jobs)
	}
}
