package analysis

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-pro"

// Gemini analyzes requests with the Gemini API.
type Gemini struct {
	apiKey string
	model  string
	log    *zap.Logger
}

// NewGemini returns a Gemini analyzer. It fails with ErrCredentialRequired
// when apiKey is empty; no connection is made until Analyze is called.
func NewGemini(apiKey, model string, log *zap.Logger) (*Gemini, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrCredentialRequired
	}
	if model == "" {
		model = DefaultModel
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Gemini{apiKey: apiKey, model: model, log: log.Named("gemini")}, nil
}

// Model returns the configured model name.
func (g *Gemini) Model() string {
	return g.model
}

// Analyze sends req as a single user turn with temperature 0.
func (g *Gemini) Analyze(ctx context.Context, req Request) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  g.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("unable to create Gemini client: %w", err)
	}

	contents := []*genai.Content{genai.NewContentFromParts(Parts(req), genai.RoleUser)}
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(req.SystemPrompt, genai.RoleUser),
		Temperature:       genai.Ptr[float32](0),
	}

	g.log.Debug("Sending analysis request", zap.String("model", g.model), zap.Int("image_bytes", len(req.Image)), zap.Int("texts", len(req.Texts)))
	resp, err := client.Models.GenerateContent(ctx, g.model, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("model call failed: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// Parts converts a request into content parts: the image first, then the
// text blocks in order.
func Parts(req Request) []*genai.Part {
	var parts []*genai.Part
	if len(req.Image) > 0 {
		mime := req.ImageMIME
		if mime == "" {
			mime = PNGMime
		}
		parts = append(parts, genai.NewPartFromBytes(req.Image, mime))
	}
	for _, t := range req.Texts {
		parts = append(parts, genai.NewPartFromText(t))
	}
	return parts
}
