package owners

import (
	"context"
	"errors"
	"strings"
)

var ErrInvalidInput = errors.New("invalid input")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Owner, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*Owner, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, o Owner) (Owner, error) {
	if strings.TrimSpace(o.FullName) == "" {
		return Owner{}, ErrInvalidInput
	}
	o.FullName = strings.TrimSpace(o.FullName)
	return s.repo.Create(ctx, o)
}

func (s *Service) Update(ctx context.Context, o Owner) (Owner, error) {
	if o.ID <= 0 || strings.TrimSpace(o.FullName) == "" {
		return Owner{}, ErrInvalidInput
	}
	return s.repo.Update(ctx, o)
}
