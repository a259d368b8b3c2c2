// Package analysis assembles multimodal analysis requests and submits them
// to a language model.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ukaji3/xlsxlens-go/pkg/xlsxlens/formats"
)

var (
	// ErrCredentialRequired indicates that no API key is available.
	ErrCredentialRequired = errors.New("API key is required: set GEMINI_API_KEY or analysis.api_key")
	// ErrEmptyResponse indicates that the model returned no text.
	ErrEmptyResponse = errors.New("model returned an empty response")
)

// PNGMime is the MIME type of rendered screenshots.
const PNGMime = "image/png"

// Request is a single analysis call: a system instruction, an optional
// image and text blocks, all sent as one user turn.
type Request struct {
	SystemPrompt string
	Image        []byte
	ImageMIME    string
	Texts        []string
}

// Analyzer submits a request to a model and returns the analysis text.
type Analyzer interface {
	Analyze(ctx context.Context, req Request) (string, error)
}

// Forms selects which representations of the sheet are sent.
type Forms struct {
	Image   bool
	Records bool
	CSV     bool
}

// AllForms enables every representation.
func AllForms() Forms {
	return Forms{Image: true, Records: true, CSV: true}
}

// names lists the enabled forms in request order.
func (f Forms) names() []string {
	var out []string
	if f.Image {
		out = append(out, "visual image")
	}
	if f.Records {
		out = append(out, "structured records")
	}
	if f.CSV {
		out = append(out, "raw CSV")
	}
	return out
}

// BuildRequest assembles the request for rows. The text part holds the
// record section, the CSV section and a closing request naming the enabled
// forms. An empty systemPrompt selects DefaultSystemPrompt. image is only
// attached when forms.Image is set.
func BuildRequest(systemPrompt string, rows [][]string, image []byte, forms Forms) (Request, error) {
	if systemPrompt == "" {
		systemPrompt = DefaultSystemPrompt
	}
	req := Request{SystemPrompt: systemPrompt}
	if forms.Image && len(image) > 0 {
		req.Image = image
		req.ImageMIME = PNGMime
	}

	var sections []string
	if forms.Records {
		sections = append(sections, "**SPREADSHEET DATA (Record Format):**\n"+formats.Records(rows))
	}
	if forms.CSV {
		csv, err := formats.CSV(rows)
		if err != nil {
			return Request{}, fmt.Errorf("unable to format CSV: %w", err)
		}
		sections = append(sections, "**CSV DATA:**\n"+csv)
	}

	scope := "from the provided data"
	if names := forms.names(); len(names) > 0 {
		scope = "in all its forms (" + strings.Join(names, ", ") + ")"
	}
	sections = append(sections, "\n\n**REQUEST:**\n"+fmt.Sprintf(requestText, scope))

	req.Texts = []string{strings.Join(sections, "\n\n")}
	return req, nil
}
