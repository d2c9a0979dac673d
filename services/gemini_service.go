package services

import (
	"context"
	"fmt"
	"time"

	"github.com/atenaxx1412/nutrition-ai-gpTs/models"
	"github.com/atenaxx1412/nutrition-ai-gpTs/utils"
	"google.golang.org/genai"
)

const (
	DefaultGeminiBaseURL = "https://generativelanguage.googleapis.com"
	DefaultGeminiModel   = "gemini-2.5-flash"
)

const geminiPrompt = `You are a registered dietitian. Analyze this meal photo.

1. Identify every food and drink in the image.
2. Estimate the weight of each item in grams.
3. Give nutrient values per 100 g for each item.
4. Account for visible sauces, oils and seasonings.

Reply with a single JSON object in this shape:
{
  "detected_foods": [
    {
      "name": "food name",
      "estimated_weight": number,
      "nutrition": {
        "calories": number, "protein": number, "carbohydrates": number, "fat": number,
        "fiber": number, "sugar": number, "sodium": number, "cholesterol": number
      },
      "confidence": 0.0-1.0,
      "category": "protein|carbs|vegetables|fruit|dairy|other"
    }
  ],
  "total_nutrition": { same eight fields, summed for the whole meal },
  "analysis_notes": "short dietitian comment",
  "overall_confidence": 0.0-1.0
}
Lower the confidence when unsure.`

// GeminiService asks a Gemini model to describe a meal photo as JSON.
type GeminiService struct {
	apiKey  string
	model   string
	timeout time.Duration
	client  *genai.Client
	initErr error
}

// NewGeminiService builds the client up front. Without an API key the
// service still exists but every Analyze call fails.
func NewGeminiService(apiKey, model, baseURL string, timeout time.Duration) *GeminiService {
	if model == "" {
		model = DefaultGeminiModel
	}
	if baseURL == "" {
		baseURL = DefaultGeminiBaseURL
	}
	s := &GeminiService{apiKey: apiKey, model: model, timeout: timeout}
	if apiKey != "" {
		s.client, s.initErr = genai.NewClient(context.Background(), &genai.ClientConfig{
			APIKey:      apiKey,
			Backend:     genai.BackendGeminiAPI,
			HTTPOptions: genai.HTTPOptions{BaseURL: baseURL},
		})
	}
	return s
}

// Analyze sends the image inline to generateContent and normalizes the JSON
// the model returns.
func (s *GeminiService) Analyze(ctx context.Context, image []byte) (*models.ImageAnalysisResult, error) {
	if s.apiKey == "" {
		return nil, upstream("gemini analyze", fmt.Errorf("GEMINI_API_KEY not set"))
	}
	if s.initErr != nil {
		return nil, upstream("gemini client", s.initErr)
	}
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	text, err := s.generate(ctx, image)
	if err != nil {
		return nil, upstream("gemini analyze", err)
	}

	res, err := ParseAnalysisText(text, time.Now().UTC())
	if err != nil {
		return nil, upstream("gemini parse", err)
	}
	return res, nil
}

func (s *GeminiService) generate(ctx context.Context, image []byte) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(geminiPrompt),
			genai.NewPartFromBytes(image, utils.DetectImageMIME(image)),
		}, genai.RoleUser),
	}
	resp, err := s.client.Models.GenerateContent(ctx, s.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return "", fmt.Errorf("gemini api error: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty gemini response")
	}
	return text, nil
}
