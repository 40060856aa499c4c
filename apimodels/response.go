package apimodels

// EvaluationResult is the declared shape of the model's judgment. The strict
// schema sent upstream mirrors this struct; the gateway itself relays the
// model's JSON verbatim and does not re-validate it against this type.
type EvaluationResult struct {
	// Scores are on a 0-10 scale
	OverallScore     float64 `json:"overall_score"`
	CreativityScore  float64 `json:"creativity_score"`
	CompositionScore float64 `json:"composition_score"`
	TechnicalScore   float64 `json:"technical_score"`

	// Per-rule composition judgments
	Rules RuleSet `json:"rules"`

	// Free-form summary of the evaluation
	TextExplanation string `json:"text_explanation"`
}

type RuleSet struct {
	RuleOfThirds   RuleJudgment `json:"rule_of_thirds"`
	GoldenRatio    RuleJudgment `json:"golden_ratio"`
	LeadingLines   RuleJudgment `json:"leading_lines"`
	LightAndShadow ToneJudgment `json:"light_and_shadow"`
}

// RuleJudgment covers composition rules that either apply to a photo or don't.
type RuleJudgment struct {
	Applied bool    `json:"applied"`
	Score   float64 `json:"score"`
	Comment string  `json:"comment"`
}

// ToneJudgment covers light and shadow, which is judged for every photo,
// so it carries no applied flag.
type ToneJudgment struct {
	Score   float64 `json:"score"`
	Comment string  `json:"comment"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
