package dto

import (
	"errors"
	"strings"

	"github.com/goccy/go-json"
)

var errInterestsFormat = errors.New("interests must be a list or a string")

// InterestList accepts a JSON array, a JSON array encoded as a string, or a
// comma-separated string. Entries are trimmed and empty ones dropped.
type InterestList []string

func (l *InterestList) UnmarshalJSON(data []byte) error {
	var items []string
	if err := json.Unmarshal(data, &items); err == nil {
		*l = cleanInterests(items)
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return errInterestsFormat
	}

	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "[") {
		if err := json.Unmarshal([]byte(raw), &items); err != nil {
			return errInterestsFormat
		}
		*l = cleanInterests(items)
		return nil
	}

	*l = cleanInterests(strings.Split(raw, ","))
	return nil
}

func cleanInterests(items []string) InterestList {
	out := make(InterestList, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

type PreferenceRequest struct {
	Country        string       `json:"country" validate:"required,notblank"`
	City           string       `json:"city" validate:"required,notblank"`
	Interests      InterestList `json:"interests" validate:"required,min=1"`
	AvailableHours string       `json:"availableHours" validate:"required,oneof=1-5 5-10 10-20 20-30 30+"`
	Language       string       `json:"language" validate:"omitempty,max=8"`
}

type PreferenceResponse struct {
	UserID         string   `json:"userId"`
	Country        string   `json:"country"`
	City           string   `json:"city"`
	Interests      []string `json:"interests"`
	AvailableHours string   `json:"availableHours"`
	Language       string   `json:"language"`
	CreatedAt      string   `json:"createdAt"`
	UpdatedAt      string   `json:"updatedAt"`
}
