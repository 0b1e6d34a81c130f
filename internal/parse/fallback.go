package parse

import (
	"regexp"
	"strings"

	"github.com/sibylline-app/sibyl/internal/model"
)

// Sentence-shape patterns for spotting a closing recommendation inside
// free prose. A candidate must match one of these and pass the additional
// checks in isActionSentence.
var (
	imperativeOpenerRe = regexp.MustCompile(`(?i)^(trust|take|focus|embrace|consider|remember|keep|stay|avoid|follow|let|seek|allow|give|hold|open|move|act|wait|prepare|reflect|listen|use|make)\b`)
	suggestionRe       = regexp.MustCompile(`(?i)\b(you should|you need to|you must|it would be wise to|try to|be sure to|make sure)\b`)
	cautionOpenerRe    = regexp.MustCompile(`(?i)^(don'?t|do not|always|never)\b`)

	sentenceRe = regexp.MustCompile(`[^.!?]+[.!?]*`)
)

var actionVerbs = map[string]struct{}{
	"trust": {}, "take": {}, "focus": {}, "embrace": {}, "consider": {},
	"remember": {}, "keep": {}, "stay": {}, "avoid": {}, "follow": {},
	"let": {}, "seek": {}, "allow": {}, "give": {}, "hold": {},
	"open": {}, "move": {}, "act": {}, "wait": {}, "prepare": {},
	"reflect": {}, "listen": {}, "use": {}, "make": {}, "should": {},
	"need": {}, "must": {}, "try": {},
}

// Closing phrases too vague to surface as a recommendation.
var platitudes = map[string]struct{}{
	"trust the cards":              {},
	"trust the process":            {},
	"good luck":                    {},
	"the cards have spoken":        {},
	"let the cards guide you":      {},
	"remember that you have power": {},
}

func splitSentences(text string) []string {
	var out []string
	for _, s := range sentenceRe.FindAllString(text, -1) {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// isActionSentence reports whether a sentence reads like a concrete
// recommendation rather than narration or a platitude.
func isActionSentence(s string) bool {
	if !imperativeOpenerRe.MatchString(s) && !suggestionRe.MatchString(s) && !cautionOpenerRe.MatchString(s) {
		return false
	}
	if len(s) < 10 || len(s) > 80 {
		return false
	}
	lower := strings.ToLower(strings.TrimRight(s, ".!?"))
	if _, generic := platitudes[lower]; generic {
		return false
	}
	words := strings.Fields(lower)
	if len(words) < 3 {
		return false
	}
	hasVerb := false
	for _, w := range words {
		if _, ok := actionVerbs[strings.Trim(w, ",;:'\"")]; ok {
			hasVerb = true
			break
		}
	}
	return hasVerb
}

// parseUnstructured treats the whole response as prose. It scans the last
// three sentences backward for an action-shaped sentence; if found, that
// sentence becomes the action and the remainder becomes the storyline.
// Risk and timing cannot be recovered from prose and keep their defaults.
func parseUnstructured(text string, defaults fieldDefaults) model.ParsedReading {
	trimmed := strings.TrimSpace(text)
	out := model.ParsedReading{
		Storyline: trimmed,
		Risk:      defaults.risk,
		Timing:    defaults.timing,
		Action:    defaults.action,
	}
	if trimmed == "" {
		out.Storyline = defaults.storyline
		return out
	}

	sentences := splitSentences(trimmed)
	start := len(sentences) - 3
	if start < 0 {
		start = 0
	}
	for i := len(sentences) - 1; i >= start; i-- {
		if !isActionSentence(sentences[i]) {
			continue
		}
		out.Action = strings.TrimRight(sentences[i], " ")
		rest := append(append([]string{}, sentences[:i]...), sentences[i+1:]...)
		if story := strings.TrimSpace(strings.Join(rest, " ")); story != "" {
			out.Storyline = story
		} else {
			out.Storyline = defaults.storyline
		}
		break
	}
	return out
}
