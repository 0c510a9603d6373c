package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"ecostep/config"
)

// Global Gemini client instance
var geminiClient *genai.Client
var geminiModelName string

// InitContentService initializes the Gemini client using the API key from the config
func InitContentService(cfg *config.Config) error {
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.Gemini.ApiKey))
	if err != nil {
		return fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	geminiClient = client
	geminiModelName = cfg.Gemini.Model
	return nil
}

func generateModelText(ctx context.Context, prompt string) (string, error) {
	if geminiClient == nil {
		return "", errors.New("gemini client not initialized")
	}
	model := geminiClient.GenerativeModel(geminiModelName)
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	return cleanModelOutput(responseText(resp)), nil
}

// generateModelJSON asks for a JSON response and decodes it into out.
func generateModelJSON(ctx context.Context, prompt string, out interface{}) error {
	if geminiClient == nil {
		return errors.New("gemini client not initialized")
	}
	model := geminiClient.GenerativeModel(geminiModelName)
	model.ResponseMIMEType = "application/json"
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return err
	}
	raw := cleanModelOutput(responseText(resp))
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("model returned malformed JSON: %w", err)
	}
	return nil
}

func responseText(resp *genai.GenerateContentResponse) string {
	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
	}
	return sb.String()
}

func cleanModelOutput(text string) string {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```JSON")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}
