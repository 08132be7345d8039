package users

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

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*User, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, u User) (User, error) {
	if strings.TrimSpace(u.Name) == "" || !ValidRole(u.Role) {
		return User{}, ErrInvalidInput
	}
	u.Name = strings.TrimSpace(u.Name)
	return s.repo.Create(ctx, u)
}

func (s *Service) Update(ctx context.Context, u User) (User, error) {
	if u.ID <= 0 || strings.TrimSpace(u.Name) == "" || !ValidRole(u.Role) {
		return User{}, ErrInvalidInput
	}
	return s.repo.Update(ctx, u)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
