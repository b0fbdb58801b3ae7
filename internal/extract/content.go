package extract

import (
	"regexp"
	"strings"
)

// ContentType tells the UI how to render a message.
type ContentType string

const (
	ContentJobs ContentType = "jobs"
	ContentList ContentType = "list"
	ContentText ContentType = "text"
)

// Classified is the render decision for one message.
type Classified struct {
	Type  ContentType
	Jobs  []Job
	Items []string
	Text  string
}

var (
	jobLabelRe     = regexp.MustCompile(`(?i)job title:|company:|location:`)
	jobBlockRe     = regexp.MustCompile(`(?is)job title:\s*(.*?)\s*\ncompany:\s*(.*?)\s*\nlocation:\s*(.*?)\s*\ndescription:\s*(.*)`)
	jobTitleLineRe = regexp.MustCompile(`(?im)^job title:`)
	listMarkerRe   = regexp.MustCompile(`(?m)^\s*(?:\d+\.|\*|-)\s+`)
	listSplitRe    = regexp.MustCompile(`\n\s*(?:\d+\.|\*|-)\s+`)
	multiBlankRe   = regexp.MustCompile(`(\r\n|\n|\r){2,}`)
)

// ClassifyContent decides whether final message text renders as a job
// list, an instruction list, or plain text. Jobs are tried first since
// the job shape is the more specific one.
func ClassifyContent(text string) Classified {
	if jobs := classifyJobBlocks(text); len(jobs) > 0 {
		return Classified{Type: ContentJobs, Jobs: jobs}
	}
	if items := classifyInstructionList(text); len(items) > 0 {
		return Classified{Type: ContentList, Items: items}
	}
	return Classified{Type: ContentText, Text: text}
}

// classifyJobBlocks parses explicit "Job Title: / Company: / Location: /
// Description:" blocks.
func classifyJobBlocks(text string) []Job {
	if !jobLabelRe.MatchString(text) {
		return nil
	}
	starts := jobTitleLineRe.FindAllStringIndex(text, -1)
	if starts == nil {
		return nil
	}
	var jobs []Job
	for i, s := range starts {
		end := len(text)
		if i+1 < len(starts) {
			end = starts[i+1][0]
		}
		block := text[s[0]:end]
		m := jobBlockRe.FindStringSubmatch(block)
		if m == nil {
			continue
		}
		jobs = append(jobs, Job{
			JobTitle:    strings.TrimSpace(m[1]),
			Company:     strings.TrimSpace(m[2]),
			Location:    strings.TrimSpace(m[3]),
			Description: strings.TrimSpace(m[4]),
		})
	}
	return finalize(jobs)
}

// classifyInstructionList splits numbered or bulleted guidance into
// items, dropping empty fragments and "here are..." intro lines.
func classifyInstructionList(text string) []string {
	if !listMarkerRe.MatchString(text) {
		return nil
	}
	cleaned := strings.TrimSpace(multiBlankRe.ReplaceAllString(text, "\n\n"))
	var items []string
	for _, part := range listSplitRe.Split(cleaned, -1) {
		part = strings.TrimSpace(part)
		if part == "" || strings.HasPrefix(strings.ToLower(part), "here are") {
			continue
		}
		items = append(items, part)
	}
	return items
}
