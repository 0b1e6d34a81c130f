// Package classify maps a free-text question to a recommended spread, via
// an optional external classifier with a local weighted-keyword fallback.
package classify

import (
	"github.com/sibylline-app/sibyl/internal/model"
	"github.com/sibylline-app/sibyl/internal/spread"
)

// categoryDefinition binds a question category to its keyword patterns and
// target spread.
type categoryDefinition struct {
	Tag      model.CategoryTag
	SpreadID string
	Keywords []string
}

// categories is the classification table in its fixed, documented order.
// Order matters twice: equal scores resolve to the earlier entry, and the
// external classifier's tags map through the same table.
var categories = []categoryDefinition{
	{
		Tag: model.CategoryFuture, SpreadID: spread.PastPresentFuture,
		Keywords: []string{"future", "will happen", "what's next", "whats next", "outcome", "ahead of me"},
	},
	{
		Tag: model.CategoryTiming, SpreadID: spread.Timeline,
		Keywords: []string{"when", "how long", "timing", "how soon", "what time", "by when"},
	},
	{
		Tag: model.CategoryDecision, SpreadID: spread.SituationChallengeAdvice,
		Keywords: []string{"should i", "decide", "decision", "choose", "choice", "which", "option", "either"},
	},
	{
		Tag: model.CategoryYesNo, SpreadID: spread.YesNo,
		Keywords: []string{"will i", "can i", "is it possible", "yes or no", "am i going to", "do they"},
	},
	{
		Tag: model.CategoryProblem, SpreadID: spread.Cross,
		Keywords: []string{"problem", "why", "stuck", "wrong", "struggling", "issue", "conflict"},
	},
	{
		Tag: model.CategorySolution, SpreadID: spread.SituationChallengeAdvice,
		Keywords: []string{"how can i", "how do i", "solve", "fix", "overcome", "improve", "resolve"},
	},
	{
		Tag: model.CategoryRelationship, SpreadID: spread.Relationship,
		Keywords: []string{"love", "relationship", "partner", "marriage", "romantic", "feelings", "crush", "my ex", "boyfriend", "girlfriend"},
	},
	{
		Tag: model.CategoryCareer, SpreadID: spread.Horseshoe,
		Keywords: []string{"job", "career", "work", "promotion", "interview", "business", "boss", "job offer"},
	},
	{
		Tag: model.CategoryWellness, SpreadID: spread.MindBodySpirit,
		Keywords: []string{"health", "wellness", "energy", "healing", "stress", "balance", "wellbeing"},
	},
	{
		Tag: model.CategoryMoney, SpreadID: spread.Timeline,
		Keywords: []string{"money", "finance", "financial", "wealth", "debt", "income", "invest", "savings"},
	},
	{
		Tag: model.CategoryGeneral, SpreadID: spread.Sentence,
		Keywords: []string{"tell me", "guidance", "insight", "reading", "general", "anything"},
	},
	{
		Tag: model.CategoryComplex, SpreadID: spread.NineBox,
		Keywords: []string{"life path", "big picture", "everything", "whole situation", "in depth", "all areas"},
	},
}

// Guard keywords short-circuit classification entirely; they are checked
// before the external collaborator is consulted.
var (
	comprehensiveKeywords = []string{
		"comprehensive", "detailed", "thorough", "in-depth", "deep dive", "full picture", "complete reading",
	}
	grandTableauKeywords = []string{
		"grand tableau", "full deck", "all cards", "every card",
	}
)

// defaultCategory is used when nothing scores: the 3-card general reading.
var defaultCategory = categoryDefinition{
	Tag:      model.CategoryGeneral,
	SpreadID: spread.Sentence,
}

// byTag returns the table entry for a category tag.
func byTag(tag model.CategoryTag) (categoryDefinition, bool) {
	for _, def := range categories {
		if def.Tag == tag {
			return def, true
		}
	}
	return categoryDefinition{}, false
}

// keywordWeight scores a matched keyword by its substring length: longer,
// more specific patterns count for more.
func keywordWeight(keyword string) int {
	switch {
	case len(keyword) > 10:
		return 3
	case len(keyword) > 5:
		return 2
	default:
		return 1
	}
}
