package service

import (
	"fmt"
	"strings"

	"hustle-finder/internal/models"
)

const generationSystemPrompt = `You are a side hustle expert who helps people find the perfect side hustle based on their location, interests, and available time.

Generate a personalized side hustle recommendation that:
1. Is suitable for the user's country and city
2. Matches their interests and skills
3. Fits within their available time commitment
4. Has realistic earning potential for their location
5. Is different from previous recommendations

Format your response as a JSON object with these exact fields:
{
  "title": "Side hustle title",
  "description": "Detailed description of the side hustle",
  "category": "Category (e.g., Freelancing, E-commerce, Services, etc.)",
  "requirements": "Skills, tools, or requirements needed",
  "estimatedEarnings": "Realistic earning range for their location",
  "timeCommitment": "How much time is needed",
  "location": "Where this can be done (remote, local, etc.)",
  "source": "Where you found this information or inspiration"
}

Every field must be a non-empty string. Return only the JSON object.
Be specific, realistic, and actionable. Consider local market conditions and opportunities.`

const searchSystemPrompt = `You are a side hustle research assistant. Search for real side hustle opportunities based on the user's query and location.

Return results as a JSON array of side hustle opportunities, each with these fields:
{
  "title": "Side hustle title",
  "description": "Description",
  "category": "Category",
  "requirements": "Requirements",
  "estimatedEarnings": "Earning potential",
  "timeCommitment": "Time needed",
  "location": "Location details",
  "source": "Source of information"
}

Focus on real, actionable opportunities available in the specified location.`

const defaultDisplayName = "User"

func buildGenerationPrompt(pref *models.Preference, displayName string, history []*models.Recommendation) string {
	if strings.TrimSpace(displayName) == "" {
		displayName = defaultDisplayName
	}

	var b strings.Builder
	b.WriteString("User Preferences:\n")
	fmt.Fprintf(&b, "- Country: %s\n", pref.Country)
	fmt.Fprintf(&b, "- City: %s\n", pref.City)
	fmt.Fprintf(&b, "- Interests: %s\n", strings.Join(pref.Interests, ", "))
	fmt.Fprintf(&b, "- Available Hours: %s\n", pref.AvailableHours)
	fmt.Fprintf(&b, "- Language: %s\n", pref.Language)
	fmt.Fprintf(&b, "- Name: %s\n", displayName)

	if len(history) > 0 {
		b.WriteString("\nPrevious recommendations to avoid repeating:\n")
		for i, rec := range history {
			fmt.Fprintf(&b, "%d. %s\n", i+1, rec.Title)
		}
	}

	b.WriteString("\nPlease generate a new side hustle recommendation that's different from the previous ones.")
	return b.String()
}

func buildSearchPrompt(query, location string) string {
	return fmt.Sprintf("Search for side hustles related to: %q in %s", query, location)
}
