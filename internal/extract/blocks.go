package extract

import (
	"regexp"
	"strings"
)

var (
	blockSplitRe = regexp.MustCompile(`\n\s*\n`)
	// titleAtRe matches a bare "Title at Company" opening line.
	titleAtRe = regexp.MustCompile(`^(.+?)\s+at\s+(.+)$`)
	// numberedLineRe spots numbered list lines, which other shapes own.
	numberedLineRe = regexp.MustCompile(`^\d+\.\s`)
)

// maxInlineDescription caps how much unlabeled text is folded into a
// job's description.
const maxInlineDescription = 200

func detectTitleBlocks(text string) bool {
	for _, block := range blockSplitRe.Split(text, -1) {
		if parseTitleBlock(block) != nil {
			return true
		}
	}
	return false
}

// extractTitleBlocks parses the agent's plainest shape: paragraphs whose
// first line is "Title at Company" followed by labeled or free lines.
//
//	Applied AI Researcher (USA) at Articul8 AI
//	Location: Remote
//	Salary: $150,000
func extractTitleBlocks(text string) []Job {
	var jobs []Job
	for _, block := range blockSplitRe.Split(text, -1) {
		if job := parseTitleBlock(block); job != nil {
			jobs = append(jobs, *job)
		}
	}
	return jobs
}

func parseTitleBlock(block string) *Job {
	var lines []string
	for _, line := range strings.Split(block, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) < 2 {
		return nil
	}

	first := lines[0]
	// Numbered, bulleted or bold lines belong to other shapes.
	if strings.HasPrefix(first, "-") || strings.Contains(first, "**") || numberedLineRe.MatchString(first) {
		return nil
	}
	m := titleAtRe.FindStringSubmatch(first)
	if m == nil {
		return nil
	}

	job := &Job{
		JobTitle: strings.TrimSpace(m[1]),
		Company:  strings.TrimSpace(m[2]),
		Location: unknownLocation,
	}

	for _, line := range lines[1:] {
		lower := strings.ToLower(line)
		switch {
		case strings.HasPrefix(lower, "location:"):
			job.Location = strings.TrimSpace(line[len("location:"):])
		case strings.HasPrefix(lower, "salary:"), strings.HasPrefix(lower, "compensation:"):
			_, value, _ := strings.Cut(line, ":")
			job.Salary = strings.TrimSpace(value)
		case strings.Contains(line, "$") && job.Salary == "":
			job.Salary = strings.TrimSpace(line)
		case strings.HasPrefix(lower, "job description:"):
			job.Description = strings.TrimSpace(line[len("job description:"):])
		case strings.HasPrefix(lower, "source:"):
			job.Source = strings.TrimSpace(line[len("source:"):])
		default:
			if len(job.Description) < maxInlineDescription {
				if job.Description != "" {
					job.Description += " "
				}
				job.Description += line
			}
		}
	}

	if job.Description == "" {
		job.Description = job.JobTitle + " position at " + job.Company
	}
	return job
}
