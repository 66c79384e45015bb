package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hustle-finder/internal/llm"
	"hustle-finder/internal/models"
	"hustle-finder/pkg/metrics"

	"github.com/goccy/go-json"
	"github.com/xeipuuv/gojsonschema"
	"go.uber.org/zap"
)

const (
	generationTemperature = 0.7
	searchTemperature     = 0.5

	offlineSource    = "Offline fallback"
	fallbackInterest = "Service"
)

// hustleSchema is what a provider answer must satisfy to be used as-is.
// source is optional and filled in from the model id when missing.
var hustleSchema = mustCompileSchema(`{
	"type": "object",
	"required": ["title", "description", "category", "requirements", "estimatedEarnings", "timeCommitment", "location"],
	"properties": {
		"title":             {"type": "string", "pattern": "\\S"},
		"description":       {"type": "string", "pattern": "\\S"},
		"category":          {"type": "string", "pattern": "\\S"},
		"requirements":      {"type": "string", "pattern": "\\S"},
		"estimatedEarnings": {"type": "string", "pattern": "\\S"},
		"timeCommitment":    {"type": "string", "pattern": "\\S"},
		"location":          {"type": "string", "pattern": "\\S"},
		"source":            {"type": ["string", "null"]}
	}
}`)

func mustCompileSchema(schema string) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schema))
	if err != nil {
		panic(fmt.Sprintf("invalid hustle schema: %v", err))
	}
	return s
}

type outcome int

const (
	outcomeSuccess outcome = iota
	outcomeEmpty
	outcomeError
)

func (o outcome) String() string {
	switch o {
	case outcomeSuccess:
		return "success"
	case outcomeEmpty:
		return "empty"
	default:
		return "error"
	}
}

// completion is the result of one provider call. content is set only on
// success.
type completion struct {
	outcome outcome
	content string
	err     error
}

// HustleGenerator produces recommendations from a preference profile. It
// never fails: provider problems degrade to a secondary model and then to
// a static offline recommendation.
type HustleGenerator struct {
	provider       llm.Provider
	primaryModel   string
	secondaryModel string
	logger         *zap.Logger
}

func NewHustleGenerator(provider llm.Provider, primaryModel, secondaryModel string, logger *zap.Logger) *HustleGenerator {
	return &HustleGenerator{
		provider:       provider,
		primaryModel:   primaryModel,
		secondaryModel: secondaryModel,
		logger:         logger,
	}
}

func (g *HustleGenerator) Generate(ctx context.Context, pref *models.Preference, displayName string, history []*models.Recommendation) models.Hustle {
	messages := []llm.Message{
		{Role: llm.RoleSystem, Content: generationSystemPrompt},
		{Role: llm.RoleUser, Content: buildGenerationPrompt(pref, displayName, history)},
	}

	attempts := []struct {
		model, path, wrappedPath string
	}{
		{g.primaryModel, metrics.PathPrimary, metrics.PathPrimaryWrapped},
		{g.secondaryModel, metrics.PathSecondary, metrics.PathSecondaryWrapped},
	}

	for _, a := range attempts {
		res := g.complete(ctx, a.model, messages, generationTemperature)
		if res.outcome != outcomeSuccess {
			continue
		}

		if hustle, ok := parseHustle(res.content); ok {
			if strings.TrimSpace(hustle.Source) == "" {
				hustle.Source = modelSource(a.model)
			}
			g.finish(a.path, a.model)
			return hustle
		}

		// Unusable shape: keep the raw answer rather than trying the next model.
		g.finish(a.wrappedPath, a.model)
		return wrapRawAnswer(res.content, pref, a.model)
	}

	g.finish(metrics.PathOffline, "")
	return offlineHustle(pref)
}

// Search asks the primary model for a list of hustles matching query. Any
// failure yields an empty list.
func (g *HustleGenerator) Search(ctx context.Context, query, location string) []models.Hustle {
	messages := []llm.Message{
		{Role: llm.RoleSystem, Content: searchSystemPrompt},
		{Role: llm.RoleUser, Content: buildSearchPrompt(query, location)},
	}

	res := g.complete(ctx, g.primaryModel, messages, searchTemperature)
	if res.outcome != outcomeSuccess {
		return []models.Hustle{}
	}

	results := parseHustleList(res.content)
	for i := range results {
		if strings.TrimSpace(results[i].Source) == "" {
			results[i].Source = modelSource(g.primaryModel)
		}
	}

	g.logger.Debug("Search completed",
		zap.String("query", query),
		zap.Int("results", len(results)),
	)
	return results
}

func (g *HustleGenerator) complete(ctx context.Context, model string, messages []llm.Message, temperature float64) completion {
	start := time.Now()
	content, err := g.provider.Complete(ctx, model, messages, temperature)

	var res completion
	switch {
	case err != nil:
		res = completion{outcome: outcomeError, err: err}
		g.logger.Warn("Model call failed",
			zap.String("provider", g.provider.Name()),
			zap.String("model", model),
			zap.Error(err),
		)
	case strings.TrimSpace(content) == "":
		res = completion{outcome: outcomeEmpty}
		g.logger.Warn("Model returned no content", zap.String("model", model))
	default:
		res = completion{outcome: outcomeSuccess, content: sanitizeUTF8(content)}
	}

	metrics.RecordProviderCall(model, res.outcome.String(), time.Since(start))
	return res
}

func (g *HustleGenerator) finish(path, model string) {
	metrics.RecordGeneration(path)
	g.logger.Info("Recommendation generated",
		zap.String("path", path),
		zap.String("model", model),
	)
}

func modelSource(model string) string {
	return "Model: " + model
}

func wrapRawAnswer(content string, pref *models.Preference, model string) models.Hustle {
	return models.Hustle{
		Title:             "AI-Generated Side Hustle",
		Description:       content,
		Category:          "General",
		Requirements:      "Varies based on opportunity",
		EstimatedEarnings: "Varies by location and effort",
		TimeCommitment:    pref.AvailableHours,
		Location:          pref.Location(),
		Source:            modelSource(model),
	}
}

func offlineHustle(pref *models.Preference) models.Hustle {
	interest := fallbackInterest
	switch {
	case len(pref.Interests) > 1 && pref.Interests[1] != "":
		interest = pref.Interests[1]
	case len(pref.Interests) > 0 && pref.Interests[0] != "":
		interest = pref.Interests[0]
	}

	return models.Hustle{
		Title:             fmt.Sprintf("Local %s Starter", interest),
		Description:       fmt.Sprintf("Start a %s offering in %s. Package 3 starter offers, post in local groups, and iterate weekly based on demand.", interest, pref.Location()),
		Category:          "Services",
		Requirements:      "Smartphone, basic marketing, consistency.",
		EstimatedEarnings: "$100-$400/month to start; scales with clients",
		TimeCommitment:    pref.AvailableHours,
		Location:          pref.Location(),
		Source:            offlineSource,
	}
}

// parseHustle accepts a single JSON object, optionally surrounded by prose
// or a markdown code fence.
func parseHustle(content string) (models.Hustle, bool) {
	raw, ok := enclosed(content, '{', '}')
	if !ok {
		return models.Hustle{}, false
	}
	return decodeHustle(raw)
}

// parseHustleList accepts a JSON array of objects or a single object.
// Elements that do not match the schema are dropped.
func parseHustleList(content string) []models.Hustle {
	results := []models.Hustle{}

	i := strings.IndexAny(content, "[{")
	if i < 0 {
		return results
	}

	if content[i] == '{' {
		if hustle, ok := parseHustle(content); ok {
			results = append(results, hustle)
		}
		return results
	}

	raw, ok := enclosed(content[i:], '[', ']')
	if !ok {
		return results
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return results
	}
	for _, item := range items {
		if hustle, ok := decodeHustle(item); ok {
			results = append(results, hustle)
		}
	}
	return results
}

func decodeHustle(raw []byte) (models.Hustle, bool) {
	result, err := hustleSchema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil || !result.Valid() {
		return models.Hustle{}, false
	}

	var hustle models.Hustle
	if err := json.Unmarshal(raw, &hustle); err != nil {
		return models.Hustle{}, false
	}
	return hustle, true
}

// enclosed returns the span from the first open byte to the last close byte.
func enclosed(s string, open, close byte) ([]byte, bool) {
	start := strings.IndexByte(s, open)
	end := strings.LastIndexByte(s, close)
	if start < 0 || end <= start {
		return nil, false
	}
	return []byte(s[start : end+1]), true
}
