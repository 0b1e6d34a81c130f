package parse

import (
	"regexp"
	"strings"

	"github.com/sibylline-app/sibyl/internal/model"
)

// A strategy attempts to recover the four fields from one known response
// shape. It returns nil when the text does not match its shape; the first
// strategy that recovers a non-empty storyline wins.
type strategy func(text string) *model.ParsedReading

var structuredStrategies = []strategy{
	parseNumberedBold,
	parseNumberedColon,
	parseBoldOnly,
	parseSimpleNumbered,
}

var (
	numberedBoldRe  = regexp.MustCompile(`^\s*\d+\.\s*\*\*([^*]+)\*\*:?\s*(.*)$`)
	numberedColonRe = regexp.MustCompile(`^\s*\d+\.\s*([A-Za-z][A-Za-z ]*):\s*(.+)$`)
	boldOnlyRe      = regexp.MustCompile(`^\s*\*\*([^*]+)\*\*:?\s*(.*)$`)
	simpleNumberRe  = regexp.MustCompile(`^\s*\d+\.\s*(.+)$`)

	// Leading labels the generator sometimes prepends to positional items.
	itemLabelRe = regexp.MustCompile(`(?i)^(risk|timing|act|action)\s*:\s*`)
)

// canonicalField maps a recognized label to its result field name, or ""
// when the label is not one of ours.
func canonicalField(label string) string {
	switch strings.ToLower(strings.TrimSuffix(strings.TrimSpace(label), ":")) {
	case "story", "storyline":
		return "storyline"
	case "risk":
		return "risk"
	case "timing":
		return "timing"
	case "act", "action", "conclusion", "guidance":
		return "action"
	}
	return ""
}

// collectLabeled runs a label/content line pattern over the text and fills
// a ParsedReading from the recognized labels. Returns nil when no line
// yielded a storyline.
func collectLabeled(text string, re *regexp.Regexp) *model.ParsedReading {
	var out model.ParsedReading
	for _, line := range strings.Split(text, "\n") {
		m := re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		content := strings.TrimSpace(m[2])
		switch canonicalField(m[1]) {
		case "storyline":
			out.Storyline = content
		case "risk":
			out.Risk = content
		case "timing":
			out.Timing = content
		case "action":
			out.Action = content
		}
	}
	if out.Storyline == "" {
		return nil
	}
	return &out
}

func parseNumberedBold(text string) *model.ParsedReading {
	return collectLabeled(text, numberedBoldRe)
}

func parseNumberedColon(text string) *model.ParsedReading {
	return collectLabeled(text, numberedColonRe)
}

func parseBoldOnly(text string) *model.ParsedReading {
	return collectLabeled(text, boldOnlyRe)
}

// parseSimpleNumbered handles a bare four-item numbered list: the items are
// taken positionally as storyline, risk, timing, action. Items 2-4 sometimes
// still carry a leading label, which is stripped. Runs last of the
// structured strategies, so labeled formats have already been tried.
func parseSimpleNumbered(text string) *model.ParsedReading {
	var items []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		m := simpleNumberRe.FindStringSubmatch(line)
		if m == nil {
			return nil
		}
		items = append(items, strings.TrimSpace(m[1]))
	}
	if len(items) != 4 {
		return nil
	}
	for i := 1; i < 4; i++ {
		items[i] = itemLabelRe.ReplaceAllString(items[i], "")
	}
	if items[0] == "" {
		return nil
	}
	return &model.ParsedReading{
		Storyline: items[0],
		Risk:      items[1],
		Timing:    items[2],
		Action:    items[3],
	}
}
