package llm

import "context"

type Provider interface {
	// Evaluate sends the prompt and the image (as a data URL) to the model
	// in a single multimodal message and returns the generated text.
	Evaluate(ctx context.Context, prompt string, imageDataURL string, opts ...Option) (*Response, error)
}

type Usage struct {
	PromptTokens     int64
	CompletionTokens int64
	TotalTokens      int64
}

type Option func(*Options)

type Options struct {
	Model       string
	MaxTokens   int64
	Temperature float64

	// SchemaName and Schema constrain the model's output to a strict JSON
	// schema when set. How the constraint is conveyed is provider-specific.
	SchemaName string
	Schema     map[string]interface{}
}

// WithSchema constrains the model's output to the given JSON schema.
func WithSchema(name string, schema map[string]interface{}) Option {
	return func(o *Options) {
		o.SchemaName = name
		o.Schema = schema
	}
}

// Response holds the model's generated text and token accounting.
type Response struct {
	Content string
	Usage   Usage
}
