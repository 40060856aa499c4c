package evaluator

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"photo-critic/internal/llm"
)

// MaxImageChars caps the encoded image length, matching the server's 4 MB
// body limit.
const MaxImageChars = 4_000_000

// Evaluator is the evaluation gateway: it validates the request, sends the
// fixed rubric plus the image to the model, and relays the model's JSON.
type Evaluator struct {
	provider llm.Provider
}

func New(provider llm.Provider) *Evaluator {
	return &Evaluator{
		provider: provider,
	}
}

// Evaluate runs one evaluation and returns the model's JSON verbatim. The
// parsed object is not re-validated against the declared schema; trust is
// placed in the upstream schema enforcement.
func (e *Evaluator) Evaluate(ctx context.Context, imageEncoded string) (json.RawMessage, error) {
	if imageEncoded == "" {
		return nil, newInvalidRequest("imageBase64 is required")
	}
	if len(imageEncoded) > MaxImageChars {
		return nil, newPayloadTooLarge("image exceeds the maximum encoded size")
	}

	resp, err := e.provider.Evaluate(ctx, EvaluationPrompt, imageEncoded,
		llm.WithSchema(SchemaName, EvaluationSchema),
	)
	if err != nil {
		slog.Error("upstream evaluation call failed", "error", err)
		return nil, newInternal("evaluation failed", err)
	}

	text := strings.TrimSpace(resp.Content)
	if text == "" {
		slog.Error("upstream response carried no text content")
		return nil, newUpstreamFormat("unexpected response from the model provider", nil)
	}

	var result json.RawMessage
	if err := json.Unmarshal([]byte(stripCodeFences(text)), &result); err != nil {
		slog.Error("upstream output is not valid JSON", "error", err, "content", text)
		return nil, newUpstreamParse("model output was not valid JSON", err)
	}

	slog.Debug("evaluation completed",
		"promptTokens", resp.Usage.PromptTokens,
		"completionTokens", resp.Usage.CompletionTokens,
	)
	return result, nil
}

// stripCodeFences removes a Markdown code fence some models wrap their JSON
// in despite the schema constraint.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
