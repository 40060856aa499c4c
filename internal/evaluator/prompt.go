package evaluator

// SchemaName identifies the output contract to the provider.
const SchemaName = "photo_evaluation"

// EvaluationPrompt is the fixed rubric sent with every image. It is a
// versioned constant: the non-image portion of the outbound message must be
// byte-identical across calls.
const EvaluationPrompt = `You are a professional photography critic. Evaluate the attached photograph.

Score the photograph from 0 to 10 on each of these axes:
- overall_score: your overall judgment of the photograph.
- creativity_score: originality of the subject, framing, and perspective.
- composition_score: how well the frame is arranged and balanced.
- technical_score: focus, exposure, noise, and post-processing quality.

Then judge the following composition rules:
- rule_of_thirds: whether the photographer placed key elements along the third lines or their intersections.
- golden_ratio: whether the composition follows a golden spiral or golden-section division.
- leading_lines: whether lines in the scene guide the viewer's eye toward the subject.
For each of these three rules report whether it is applied, a 0-10 score for how well it is used, and a short comment.
- light_and_shadow: judge the use of light and shadow with a 0-10 score and a short comment. This rule applies to every photograph, so it has no applied flag.

Finish with text_explanation: a short paragraph summarizing the strengths and weaknesses of the photograph.

Respond with a single JSON object that matches the required schema. Do not include any text outside the JSON object.`

// EvaluationSchema is the strict JSON schema enforced on the model's output.
// It mirrors apimodels.EvaluationResult: every field required, no additional
// properties.
var EvaluationSchema = map[string]interface{}{
	"type":                 "object",
	"additionalProperties": false,
	"required": []string{
		"overall_score",
		"creativity_score",
		"composition_score",
		"technical_score",
		"rules",
		"text_explanation",
	},
	"properties": map[string]interface{}{
		"overall_score":     map[string]interface{}{"type": "number"},
		"creativity_score":  map[string]interface{}{"type": "number"},
		"composition_score": map[string]interface{}{"type": "number"},
		"technical_score":   map[string]interface{}{"type": "number"},
		"rules": map[string]interface{}{
			"type":                 "object",
			"additionalProperties": false,
			"required": []string{
				"rule_of_thirds",
				"golden_ratio",
				"leading_lines",
				"light_and_shadow",
			},
			"properties": map[string]interface{}{
				"rule_of_thirds": appliedRuleSchema(),
				"golden_ratio":   appliedRuleSchema(),
				"leading_lines":  appliedRuleSchema(),
				"light_and_shadow": map[string]interface{}{
					"type":                 "object",
					"additionalProperties": false,
					"required":             []string{"score", "comment"},
					"properties": map[string]interface{}{
						"score":   map[string]interface{}{"type": "number"},
						"comment": map[string]interface{}{"type": "string"},
					},
				},
			},
		},
		"text_explanation": map[string]interface{}{"type": "string"},
	},
}

func appliedRuleSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":                 "object",
		"additionalProperties": false,
		"required":             []string{"applied", "score", "comment"},
		"properties": map[string]interface{}{
			"applied": map[string]interface{}{"type": "boolean"},
			"score":   map[string]interface{}{"type": "number"},
			"comment": map[string]interface{}{"type": "string"},
		},
	}
}
