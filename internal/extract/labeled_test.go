package extract

import "testing"

func TestExtractLabeledBullets(t *testing.T) {
	text := "1. Software Developer at NetDirector in Tampa, FL.\n" +
		"- Location: Tampa, FL\n" +
		"- Salary Range: $60,000-$80,000\n"

	jobs := ExtractJobs(text)
	if len(jobs) != 1 {
		t.Fatalf("expected 1 job, got %d: %+v", len(jobs), jobs)
	}

	job := jobs[0]
	if job.JobTitle != "Software Developer" {
		t.Errorf("title = %q; want Software Developer", job.JobTitle)
	}
	if job.Company != "NetDirector" {
		t.Errorf("company = %q; want NetDirector", job.Company)
	}
	if job.Location != "Tampa, FL" {
		t.Errorf("location = %q; want Tampa, FL", job.Location)
	}
	if job.Salary != "$60,000-$80,000" {
		t.Errorf("salary = %q; want $60,000-$80,000", job.Salary)
	}
}

func TestExtractLabeledBulletsFullBlock(t *testing.T) {
	text := "1. **Registered Nurse**\n" +
		"- Company: Mercy Health\n" +
		"- Location: Toledo, OH\n" +
		"- Description: Provide patient care in the ICU\n" +
		"- Salary: $70,000\n" +
		"- Apply: [here](https://mercy.example.com/jobs/42)\n" +
		"2. **Nurse Practitioner**\n" +
		"- Company: CareWell\n" +
		"- Location: Remote\n"

	jobs := extractLabeledBullets(text)
	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d: %+v", len(jobs), jobs)
	}

	first := jobs[0]
	if first.JobTitle != "Registered Nurse" || first.Company != "Mercy Health" {
		t.Errorf("unexpected first job: %+v", first)
	}
	if first.Description != "Provide patient care in the ICU" {
		t.Errorf("description = %q", first.Description)
	}
	if first.ApplyURL != "https://mercy.example.com/jobs/42" {
		t.Errorf("applyUrl = %q", first.ApplyURL)
	}
	if jobs[1].Company != "CareWell" {
		t.Errorf("second company = %q", jobs[1].Company)
	}
}

func TestLabeledBulletsSkipsIntroHeaders(t *testing.T) {
	text := "1. Here are the job postings you asked for\n" +
		"- Location: nowhere\n" +
		"2. Registered Nurse\n" +
		"- Company: Mercy Health\n"

	jobs := extractLabeledBullets(text)
	if len(jobs) != 1 {
		t.Fatalf("expected 1 job after skipping intro header, got %d: %+v", len(jobs), jobs)
	}
	if jobs[0].Company != "Mercy Health" {
		t.Errorf("company = %q; want Mercy Health", jobs[0].Company)
	}
}

func TestLabeledBulletsDropsBareHeaders(t *testing.T) {
	text := "1. Some heading with no details\n\nJust prose afterwards.\n- Location: somewhere\n"
	// The bullet belongs to section 1, so it counts; a second bare
	// header must not.
	text += "2. Another bare heading\n"
	jobs := extractLabeledBullets(text)
	if len(jobs) != 1 {
		t.Errorf("expected 1 job, got %d: %+v", len(jobs), jobs)
	}
}
