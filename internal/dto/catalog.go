package dto

type LanguageOption struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// CatalogResponse lists the choices offered when filling in preferences.
type CatalogResponse struct {
	Interests      []string         `json:"interests"`
	Languages      []LanguageOption `json:"languages"`
	AvailableHours []string         `json:"availableHours"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
