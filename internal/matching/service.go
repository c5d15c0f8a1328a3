// Package matching remembers which expense category a description was filed
// under and suggests it again for similar descriptions.
package matching

import (
	"context"
	"strings"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=matching
type Repository interface {
	FindMatch(ctx context.Context, description string) (string, error)
	CreateMapping(ctx context.Context, pattern, category string) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Suggest returns the category of the longest remembered pattern contained in
// description, or an empty string if none matches.
func (s *Service) Suggest(ctx context.Context, description string) (string, error) {
	return s.repo.FindMatch(ctx, normalize(description))
}

// Learn remembers that description belongs to category.
func (s *Service) Learn(ctx context.Context, description, category string) error {
	pattern := normalize(description)
	if pattern == "" || category == "" {
		return nil
	}

	return s.repo.CreateMapping(ctx, pattern, category)
}

func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
