package model

// CategoryTag labels the kind of question a querent asked. The external
// classifier returns one of these; the local keyword scorer produces the
// same set.
type CategoryTag string

// Question category constants.
const (
	CategoryFuture       CategoryTag = "future"
	CategoryTiming       CategoryTag = "timing"
	CategoryDecision     CategoryTag = "decision"
	CategoryYesNo        CategoryTag = "yesno"
	CategoryProblem      CategoryTag = "problem"
	CategorySolution     CategoryTag = "solution"
	CategoryRelationship CategoryTag = "relationship"
	CategoryCareer       CategoryTag = "career"
	CategoryWellness     CategoryTag = "wellness"
	CategoryMoney        CategoryTag = "money"
	CategoryGeneral      CategoryTag = "general"
	CategoryComplex      CategoryTag = "complex"
)

// ClassificationSource indicates which path produced a recommendation.
type ClassificationSource string

// Classification source constants.
const (
	SourceGuard    ClassificationSource = "guard"
	SourceExternal ClassificationSource = "external"
	SourceKeyword  ClassificationSource = "keyword"
	SourceDefault  ClassificationSource = "default"
)

// ClassificationResult is the recommendation produced for a question.
type ClassificationResult struct {
	SpreadID string
	Subtype  string
	Category CategoryTag
	Source   ClassificationSource
	Score    int
	Reason   string
}
