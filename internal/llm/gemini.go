package llm

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"photo-critic/internal/config"
)

// Gemini client implementation. Unlike the OpenAI API, Gemini has no strict
// json_schema response format at this API version, so the schema is conveyed
// in the system instruction and JSON output is forced via the response MIME
// type.
type Gemini struct {
	client *genai.Client
	cfg    *config.GeminiConfig
}

func NewGemini(ctx context.Context, cfg *config.GeminiConfig) (*Gemini, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("GEMINI_API_KEY is empty")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, err
	}

	return &Gemini{
		client: client,
		cfg:    cfg,
	}, nil
}

func (g *Gemini) Evaluate(ctx context.Context, prompt string, imageDataURL string, opts ...Option) (*Response, error) {
	options := &Options{
		Model:       g.cfg.Model,
		Temperature: 0,
		MaxTokens:   1000,
	}
	for _, opt := range opts {
		opt(options)
	}

	imgBytes, mimeType, err := decodeDataURL(imageDataURL)
	if err != nil {
		return nil, fmt.Errorf("gemini: bad image payload: %w", err)
	}

	m := g.client.GenerativeModel(options.Model)
	m.GenerationConfig = genai.GenerationConfig{
		Temperature:      ptrFloat32(float32(options.Temperature)),
		MaxOutputTokens:  ptrInt32(int32(options.MaxTokens)),
		ResponseMIMEType: "application/json",
	}

	if options.Schema != nil {
		schemaJSON, err := json.Marshal(options.Schema)
		if err != nil {
			return nil, fmt.Errorf("gemini: marshal schema: %w", err)
		}
		m.SystemInstruction = &genai.Content{
			Parts: []genai.Part{
				genai.Text("Respond with a single JSON object that conforms exactly to this JSON schema. Any text outside the JSON object is an error.\n"),
				genai.Text(string(schemaJSON)),
			},
		}
	}

	resp, err := m.GenerateContent(ctx,
		genai.Text(prompt),
		&genai.Blob{MIMEType: mimeType, Data: imgBytes},
	)
	if err != nil {
		return nil, err
	}

	response := &Response{
		Content: firstText(resp),
	}
	if resp.UsageMetadata != nil {
		response.Usage = Usage{
			PromptTokens:     int64(resp.UsageMetadata.PromptTokenCount),
			CompletionTokens: int64(resp.UsageMetadata.CandidatesTokenCount),
			TotalTokens:      int64(resp.UsageMetadata.TotalTokenCount),
		}
	}

	return response, nil
}

// firstText returns the first text part of the first candidate that has one.
func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	for _, c := range resp.Candidates {
		if c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				return string(t)
			}
		}
	}
	return ""
}

// decodeDataURL accepts a data URL ("data:<mime>;base64,<payload>") or a bare
// base64 string and returns the raw bytes plus the mime type.
func decodeDataURL(s string) ([]byte, string, error) {
	s = strings.TrimSpace(s)
	var mimeType string
	if strings.HasPrefix(s, "data:") {
		idx := strings.IndexByte(s, ',')
		if idx < 0 {
			return nil, "", errors.New("data URL has no comma separator")
		}
		meta := s[len("data:"):idx] // "<mime>;base64"
		if semi := strings.IndexByte(meta, ';'); semi >= 0 {
			mimeType = meta[:semi]
		} else {
			mimeType = meta
		}
		s = s[idx+1:]
	}

	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		// URL-safe alphabet as a fallback
		b, err = base64.URLEncoding.DecodeString(s)
		if err != nil {
			return nil, "", err
		}
	}

	if mimeType == "" {
		mimeType = http.DetectContentType(b)
	}
	return b, mimeType, nil
}

func ptrFloat32(v float32) *float32 { return &v }
func ptrInt32(v int32) *int32       { return &v }
