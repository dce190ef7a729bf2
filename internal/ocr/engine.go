// Package ocr ingests photographed paper score sheets: it transcribes the
// image, extracts the form fields by pattern matching, and appends an
// equivalent log row.
package ocr

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"google.golang.org/genai"
)

// Engine extracts text from an image. Extraction fails closed: any error is
// converted into an "OCR Error: ..." marker string rather than returned, so
// the downstream required-fields check reports it as missing data instead of
// aborting ingestion.
type Engine interface {
	ExtractText(ctx context.Context, imagePath string) string
}

// GenAIEngine transcribes images with a Gemini vision model.
type GenAIEngine struct {
	client *genai.Client
	model  string
}

// NewGenAIEngine creates a Gemini-backed OCR engine.
func NewGenAIEngine(apiKey, model string) (*GenAIEngine, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GenAI API key is required")
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GenAIEngine{client: client, model: model}, nil
}

const transcribePrompt = "Transcribe all text visible in this image exactly as written, one field per line. Output only the transcription."

// ExtractText sends the image to the vision model and returns the
// transcription, or an error marker string on any failure.
func (e *GenAIEngine) ExtractText(ctx context.Context, imagePath string) string {
	data, err := os.ReadFile(imagePath)
	if err != nil {
		return fmt.Sprintf("OCR Error: %v", err)
	}

	parts := []*genai.Part{
		genai.NewPartFromText(transcribePrompt),
		genai.NewPartFromBytes(data, imageMIMEType(imagePath)),
	}
	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}

	resp, err := e.client.Models.GenerateContent(ctx, e.model, contents, nil)
	if err != nil {
		return fmt.Sprintf("OCR Error: %v", err)
	}
	return resp.Text()
}

func imageMIMEType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".webp":
		return "image/webp"
	case ".gif":
		return "image/gif"
	default:
		return "image/png"
	}
}
