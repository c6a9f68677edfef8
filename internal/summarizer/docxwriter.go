package summarizer

import (
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

// Summaries are mostly Korean, so default to a Korean-capable font.
const (
	docFontName = "Malgun Gothic"
	docFontSize = 11
)

var (
	reHeading  = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	reBold     = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reBullet   = regexp.MustCompile(`^[\-\*]\s+(.+)$`)
	reNumbered = regexp.MustCompile(`^\d+\.\s+(.+)$`)
)

// summaryToDocx renders the markdown-ish summary text the model returns
// into a styled docx file.
func summaryToDocx(title, summary, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addRun(doc.AddParagraph(""), title, true, 16)
	doc.AddParagraph("")

	for _, line := range strings.Split(summary, "\n") {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || trimmed == "---" {
			continue
		}

		if m := reHeading.FindStringSubmatch(trimmed); m != nil {
			addRun(doc.AddParagraph(""), m[2], true, headingSize(len(m[1])))
			continue
		}

		if m := reBullet.FindStringSubmatch(trimmed); m != nil {
			addInlineText(doc.AddParagraph(""), "• "+m[1])
			continue
		}

		if reNumbered.MatchString(trimmed) {
			addInlineText(doc.AddParagraph(""), trimmed)
			continue
		}

		addInlineText(doc.AddParagraph(""), trimmed)
	}

	return doc.SaveTo(outputPath)
}

func headingSize(level int) uint64 {
	switch level {
	case 1:
		return 15
	case 2:
		return 14
	case 3:
		return 12
	default:
		return docFontSize
	}
}

func addRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(stripInlineMarkers(text)).Font(docFontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}

// addInlineText writes a line, rendering **bold** spans as bold runs.
func addInlineText(p *docx.Paragraph, text string) {
	plain := reBold.Split(text, -1)
	bold := reBold.FindAllStringSubmatch(text, -1)

	for i, part := range plain {
		if part != "" {
			p.AddText(stripInlineMarkers(part)).Font(docFontName).Size(docFontSize).Color("000000")
		}
		if i < len(bold) {
			p.AddText(stripInlineMarkers(bold[i][1])).Font(docFontName).Size(docFontSize).Color("000000").Bold(true)
		}
	}
}

func stripInlineMarkers(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	s = strings.ReplaceAll(s, "`", "")
	return s
}
