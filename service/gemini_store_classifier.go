package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"google.golang.org/genai"

	"local-booster/config"
	"local-booster/models"
)

// GeminiStoreClassifier asks Gemini for the best matching store category.
// Any failure degrades to the general store type so a classifier outage
// never blocks the place search.
type GeminiStoreClassifier struct {
	client *genai.Client
	model  string
}

// classification is the JSON shape the model is asked to produce.
type classification struct {
	Query string `json:"query"`
	Store string `json:"store"`
}

// NewGeminiStoreClassifier creates a new classifier backed by the Gemini API.
func NewGeminiStoreClassifier(ctx context.Context, apiKey string) (*GeminiStoreClassifier, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiStoreClassifier{
		client: client,
		model:  config.GEMINI_MODEL,
	}, nil
}

func (c *GeminiStoreClassifier) Classify(ctx context.Context, query string) (models.StoreType, error) {
	prompt := buildClassifierPrompt(query)

	result, err := c.client.Models.GenerateContent(ctx,
		c.model,
		genai.Text(prompt),
		&genai.GenerateContentConfig{
			ResponseMIMEType: "application/json",
		},
	)
	if err != nil {
		log.Printf("[GeminiStoreClassifier] generate failed: %v", err)
		return models.StoreTypeGeneralStore, nil
	}

	var parsed classification
	if err := json.Unmarshal([]byte(result.Text()), &parsed); err != nil {
		log.Printf("[GeminiStoreClassifier] unparseable response: %v", err)
		return models.StoreTypeGeneralStore, nil
	}

	storeType := models.StoreType(parsed.Store)
	if !storeType.IsValid() {
		log.Printf("[GeminiStoreClassifier] unknown store type %q for query %q", parsed.Store, query)
		return models.StoreTypeGeneralStore, nil
	}
	return storeType, nil
}

func buildClassifierPrompt(query string) string {
	types := make([]string, len(models.AllStoreTypes))
	for i, t := range models.AllStoreTypes {
		types[i] = string(t)
	}
	return fmt.Sprintf(
		"You are an expert retail classifier. Assign the most appropriate store type to: %s\n"+
			"Answer as JSON with fields \"query\" and \"store\". \"store\" must be one of: %s",
		strings.ToLower(query), strings.Join(types, ", "))
}
