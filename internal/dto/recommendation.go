package dto

type RecommendationResponse struct {
	ID                string  `json:"id,omitempty"`
	UserID            *string `json:"userId"`
	Title             string  `json:"title"`
	Description       string  `json:"description"`
	Category          string  `json:"category"`
	Requirements      string  `json:"requirements"`
	EstimatedEarnings string  `json:"estimatedEarnings"`
	TimeCommitment    string  `json:"timeCommitment"`
	Location          string  `json:"location"`
	Source            string  `json:"source"`
	AIGenerated       bool    `json:"aiGenerated"`
	CreatedAt         string  `json:"createdAt,omitempty"`
}

type CommunityRecommendationResponse struct {
	RecommendationResponse
	UserName string `json:"userName"`
}

type SearchResponse struct {
	Query    string                   `json:"query"`
	Location string                   `json:"location"`
	Results  []RecommendationResponse `json:"results"`
}
