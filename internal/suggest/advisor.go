// Package suggest produces optional AI improvement feedback for a resume.
// The advisor is an independently-failing collaborator: it always returns
// a string and never an error, so a misconfigured or failing AI service
// degrades to a notice instead of failing the analysis request.
package suggest

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DisabledNotice is returned when no API credential is configured.
const DisabledNotice = "AI feedback disabled (no GEMINI_API_KEY configured)."

// DefaultModel is the generative model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// promptCharLimit caps how much resume text is sent to the service.
const promptCharLimit = 15000

// Advisor asks a generative text service for resume improvement
// suggestions.
type Advisor struct {
	apiKey string
	model  string
}

// NewAdvisor creates an Advisor. An empty apiKey disables the feature; an
// empty model selects DefaultModel.
func NewAdvisor(apiKey, model string) *Advisor {
	if model == "" {
		model = DefaultModel
	}
	return &Advisor{apiKey: apiKey, model: model}
}

// Suggest returns free-form improvement feedback for the resume text:
// strengths, missing keywords, and five actionable suggestions. With no
// credential configured it returns DisabledNotice; any service failure is
// rendered as a descriptive string.
func (a *Advisor) Suggest(ctx context.Context, text string) string {
	if a == nil || a.apiKey == "" {
		return DisabledNotice
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(a.apiKey))
	if err != nil {
		return fmt.Sprintf("AI feedback failed: %v", err)
	}
	defer client.Close()

	model := client.GenerativeModel(a.model)
	model.SetTemperature(0.25)

	resp, err := model.GenerateContent(ctx, genai.Text(buildPrompt(text)))
	if err != nil {
		return fmt.Sprintf("AI feedback failed: %v", err)
	}

	feedback, err := extractTextFromResponse(resp)
	if err != nil {
		return fmt.Sprintf("AI feedback failed: %v", err)
	}
	return strings.TrimSpace(feedback)
}

func buildPrompt(text string) string {
	if runes := []rune(text); len(runes) > promptCharLimit {
		text = string(runes[:promptCharLimit])
	}
	return "You are an ATS & hiring expert. Review the resume text below and provide:\n" +
		"1) Top strengths (bullet list)\n" +
		"2) Missing keywords (max 10)\n" +
		"3) 5 concrete improvement suggestions (short, actionable)\n\n" +
		"Resume:\n" + text
}

// extractTextFromResponse extracts text from a Gemini API response.
func extractTextFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}
	return strings.Join(parts, ""), nil
}
