package models

import (
	"time"

	"github.com/google/uuid"
)

// Hustle is the eight-field payload shared by generated, seeded and searched
// recommendations. The json tags match the shape the LLM is asked to return.
type Hustle struct {
	Title             string `json:"title" db:"title"`
	Description       string `json:"description" db:"description"`
	Category          string `json:"category" db:"category"`
	Requirements      string `json:"requirements" db:"requirements"`
	EstimatedEarnings string `json:"estimatedEarnings" db:"estimated_earnings"`
	TimeCommitment    string `json:"timeCommitment" db:"time_commitment"`
	Location          string `json:"location" db:"location"`
	Source            string `json:"source,omitempty" db:"source"`
}

// Recommendation is immutable once stored. A nil UserID marks a system row.
type Recommendation struct {
	ID     uuid.UUID  `db:"id"`
	UserID *uuid.UUID `db:"user_id"`
	Hustle
	AIGenerated bool      `db:"ai_generated"`
	CreatedAt   time.Time `db:"created_at"`
}

// CommunityRecommendation is a feed entry with its owner's display name.
type CommunityRecommendation struct {
	Recommendation
	UserName string `db:"user_name"`
}
