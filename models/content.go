package models

// Shapes for AI-generated content. The generative model is an external
// collaborator returning structured text; these are the contracts the
// service layer parses its JSON output into.

// Recipe is a generated sustainable recipe.
type Recipe struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	EcoBenefit   string   `json:"ecoBenefit"`
}

// Quote is a short motivational environmental quote.
type Quote struct {
	Quote  string `json:"quote"`
	Author string `json:"author"`
}

// Article is a generated educational article.
type Article struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ProductAnalysis is the sustainability verdict for a consumer product.
type ProductAnalysis struct {
	ProductName    string   `json:"productName"`
	Sustainability int      `json:"sustainability"` // 1-10
	Summary        string   `json:"summary"`
	Pros           []string `json:"pros"`
	Cons           []string `json:"cons"`
	Alternatives   []string `json:"alternatives"`
}

// Recommendation is a local sustainability recommendation for a region.
type Recommendation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// EcoAction is a suggested one-off sustainable action.
type EcoAction struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Impact      string `json:"impact"` // "low", "medium", "high"
}
