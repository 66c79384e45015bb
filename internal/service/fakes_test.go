package service

import (
	"context"
	"errors"
	"sort"

	"hustle-finder/internal/llm"
	"hustle-finder/internal/models"
	"hustle-finder/internal/repository"

	"github.com/google/uuid"
)

var errUnreachable = errors.New("dial tcp: connection refused")

type reply struct {
	content string
	err     error
}

// fakeProvider answers per model and records every model it was asked for.
type fakeProvider struct {
	replies map[string]reply
	calls   []string
	temps   []float64
	prompts [][]llm.Message
}

func newFakeProvider(replies map[string]reply) *fakeProvider {
	return &fakeProvider{replies: replies}
}

func (p *fakeProvider) Name() string { return "fake" }

func (p *fakeProvider) Complete(_ context.Context, model string, messages []llm.Message, temperature float64) (string, error) {
	p.calls = append(p.calls, model)
	p.temps = append(p.temps, temperature)
	p.prompts = append(p.prompts, messages)
	r, ok := p.replies[model]
	if !ok {
		return "", errUnreachable
	}
	return r.content, r.err
}

func (p *fakeProvider) Close() error { return nil }

type fakeUserStore struct {
	users     map[string]*models.User
	err       error
	createErr error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*models.User{}}
}

func (s *fakeUserStore) Create(_ context.Context, user *models.User) error {
	if s.err != nil {
		return s.err
	}
	if s.createErr != nil {
		return s.createErr
	}
	s.users[user.Email] = user
	return nil
}

func (s *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	u, ok := s.users[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

func (s *fakeUserStore) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakePreferenceStore struct {
	prefs map[uuid.UUID]*models.Preference
	err   error
}

func newFakePreferenceStore() *fakePreferenceStore {
	return &fakePreferenceStore{prefs: map[uuid.UUID]*models.Preference{}}
}

func (s *fakePreferenceStore) GetByUserID(_ context.Context, userID uuid.UUID) (*models.Preference, error) {
	if s.err != nil {
		return nil, s.err
	}
	p, ok := s.prefs[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return p, nil
}

func (s *fakePreferenceStore) Upsert(_ context.Context, p *models.Preference) error {
	if s.err != nil {
		return s.err
	}
	if existing, ok := s.prefs[p.UserID]; ok {
		p.CreatedAt = existing.CreatedAt
	}
	s.prefs[p.UserID] = p
	return nil
}

type fakeRecommendationStore struct {
	recs      []*models.Recommendation
	names     map[uuid.UUID]string
	createErr error
}

func newFakeRecommendationStore() *fakeRecommendationStore {
	return &fakeRecommendationStore{names: map[uuid.UUID]string{}}
}

func (s *fakeRecommendationStore) Create(_ context.Context, rec *models.Recommendation) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.recs = append(s.recs, rec)
	return nil
}

func (s *fakeRecommendationStore) ListByUserID(_ context.Context, userID uuid.UUID) ([]*models.Recommendation, error) {
	out := []*models.Recommendation{}
	for _, r := range s.newestFirst() {
		if r.UserID != nil && *r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *fakeRecommendationStore) ListCommunity(_ context.Context, limit uint64) ([]*models.CommunityRecommendation, error) {
	out := []*models.CommunityRecommendation{}
	for _, r := range s.newestFirst() {
		if r.UserID == nil {
			continue
		}
		if uint64(len(out)) == limit {
			break
		}
		name := s.names[*r.UserID]
		if name == "" {
			name = "Anonymous"
		}
		out = append(out, &models.CommunityRecommendation{Recommendation: *r, UserName: name})
	}
	return out, nil
}

func (s *fakeRecommendationStore) newestFirst() []*models.Recommendation {
	sorted := append([]*models.Recommendation(nil), s.recs...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	return sorted
}
