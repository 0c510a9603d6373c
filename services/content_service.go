package services

import (
	"context"
	"fmt"

	"ecostep/models"
)

// EcoTipsInput describes the user's tracked habits in free text, one line
// per category, as the tips prompt expects.
type EcoTipsInput struct {
	Transportation    string `json:"transportation" binding:"required"`
	EnergyConsumption string `json:"energyConsumption" binding:"required"`
	WasteDisposal     string `json:"wasteDisposal" binding:"required"`
	WaterUsage        string `json:"waterUsage" binding:"required"`
	FoodConsumption   string `json:"foodConsumption" binding:"required"`
}

// GenerateEcoTips produces personalized tips based on tracked activities.
func GenerateEcoTips(ctx context.Context, input EcoTipsInput) ([]string, error) {
	prompt := fmt.Sprintf(`You are an AI assistant designed to provide personalized eco-tips to users based on their tracked activities.

Based on the following user activities, provide a list of actionable tips to reduce their environmental impact. Be concise and specific.

Transportation: %s
Energy Consumption: %s
Waste Disposal: %s
Water Usage: %s
Food Consumption: %s

Respond with a JSON object of the form {"tips": ["...", "..."]}.`,
		input.Transportation, input.EnergyConsumption, input.WasteDisposal, input.WaterUsage, input.FoodConsumption)

	var out struct {
		Tips []string `json:"tips"`
	}
	if err := generateModelJSON(ctx, prompt, &out); err != nil {
		return nil, err
	}
	return out.Tips, nil
}

// GenerateRecipe produces a sustainable recipe for the requested dish or
// dietary preference.
func GenerateRecipe(ctx context.Context, request string) (*models.Recipe, error) {
	prompt := fmt.Sprintf(`You are a sustainable cooking expert. Create a low-carbon, plant-forward recipe for: %s

Respond with a JSON object with keys "title", "description", "ingredients" (array of strings), "instructions" (array of steps) and "ecoBenefit" (one sentence on why this recipe is climate friendly).`, request)

	var recipe models.Recipe
	if err := generateModelJSON(ctx, prompt, &recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

// DailyQuote returns a short motivational environmental quote.
func DailyQuote(ctx context.Context) (*models.Quote, error) {
	prompt := `Provide one short, inspiring quote about environmental stewardship or sustainable living. Prefer real quotes from known figures.

Respond with a JSON object of the form {"quote": "...", "author": "..."}.`

	var quote models.Quote
	if err := generateModelJSON(ctx, prompt, &quote); err != nil {
		return nil, err
	}
	return &quote, nil
}

// GenerateArticle writes an educational article on the given topic.
func GenerateArticle(ctx context.Context, topic string) (*models.Article, error) {
	prompt := fmt.Sprintf(`Write a clear, factual educational article (roughly 400 words) about the following environmental topic: %s

Respond with a JSON object of the form {"title": "...", "content": "..."}.`, topic)

	var article models.Article
	if err := generateModelJSON(ctx, prompt, &article); err != nil {
		return nil, err
	}
	return &article, nil
}

// AnalyzeProduct returns a sustainability assessment of a consumer product.
func AnalyzeProduct(ctx context.Context, productDescription string) (*models.ProductAnalysis, error) {
	prompt := fmt.Sprintf(`Analyze the environmental sustainability of the following product: %s

Respond with a JSON object with keys "productName", "sustainability" (integer score 1-10), "summary", "pros" (array), "cons" (array) and "alternatives" (array of more sustainable alternatives).`, productDescription)

	var analysis models.ProductAnalysis
	if err := generateModelJSON(ctx, prompt, &analysis); err != nil {
		return nil, err
	}
	return &analysis, nil
}

// LocalRecommendations suggests region-specific sustainability actions.
func LocalRecommendations(ctx context.Context, location string) ([]models.Recommendation, error) {
	prompt := fmt.Sprintf(`Suggest sustainability recommendations specific to someone living in: %s
Cover local transport options, recycling programs, seasonal food and community initiatives where relevant.

Respond with a JSON object of the form {"recommendations": [{"title": "...", "description": "...", "category": "..."}]}.`, location)

	var out struct {
		Recommendations []models.Recommendation `json:"recommendations"`
	}
	if err := generateModelJSON(ctx, prompt, &out); err != nil {
		return nil, err
	}
	return out.Recommendations, nil
}

// GenerateEcoActions suggests a handful of one-off sustainable actions.
func GenerateEcoActions(ctx context.Context) ([]models.EcoAction, error) {
	prompt := `Suggest five concrete one-off actions a person can take this week to reduce their environmental footprint.

Respond with a JSON object of the form {"actions": [{"title": "...", "description": "...", "impact": "low|medium|high"}]}.`

	var out struct {
		Actions []models.EcoAction `json:"actions"`
	}
	if err := generateModelJSON(ctx, prompt, &out); err != nil {
		return nil, err
	}
	return out.Actions, nil
}
