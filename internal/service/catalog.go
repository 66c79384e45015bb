package service

import "hustle-finder/internal/dto"

var suggestedInterests = []string{
	"Technology", "Writing", "Design", "Marketing", "Sales", "Teaching",
	"Customer Service", "Data Entry", "Translation", "Virtual Assistant",
	"Social Media", "Content Creation", "Photography", "Video Editing",
	"Web Development", "Mobile Development", "Graphic Design", "UI/UX", "SEO",
	"Digital Marketing", "E-commerce", "Freelancing", "Consulting",
}

var supportedLanguages = []dto.LanguageOption{
	{Code: "en", Name: "English"},
	{Code: "am", Name: "Amharic"},
	{Code: "es", Name: "Spanish"},
	{Code: "fr", Name: "French"},
	{Code: "de", Name: "German"},
	{Code: "it", Name: "Italian"},
	{Code: "pt", Name: "Portuguese"},
	{Code: "ru", Name: "Russian"},
	{Code: "zh", Name: "Chinese"},
	{Code: "ja", Name: "Japanese"},
	{Code: "ko", Name: "Korean"},
	{Code: "ar", Name: "Arabic"},
	{Code: "hi", Name: "Hindi"},
	{Code: "tr", Name: "Turkish"},
}

// HourBuckets are the accepted availableHours values. Keep in sync with the
// oneof rule on dto.PreferenceRequest.
var HourBuckets = []string{"1-5", "5-10", "10-20", "20-30", "30+"}

// Catalog returns copies so callers cannot mutate the shared lists.
func Catalog() dto.CatalogResponse {
	return dto.CatalogResponse{
		Interests:      append([]string(nil), suggestedInterests...),
		Languages:      append([]dto.LanguageOption(nil), supportedLanguages...),
		AvailableHours: append([]string(nil), HourBuckets...),
	}
}
