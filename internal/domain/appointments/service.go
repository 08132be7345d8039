package appointments

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

func (s *Service) List(ctx context.Context) ([]Appointment, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*Appointment, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, a Appointment) (Appointment, error) {
	if strings.TrimSpace(a.Owner) == "" {
		return Appointment{}, ErrInvalidInput
	}
	if a.Status != "" && a.Status != StatusPending && a.Status != StatusApproved && a.Status != StatusDone {
		return Appointment{}, ErrInvalidInput
	}
	return s.repo.Create(ctx, a)
}

func (s *Service) Update(ctx context.Context, a Appointment) (Appointment, error) {
	if a.ID <= 0 {
		return Appointment{}, ErrInvalidInput
	}
	return s.repo.Update(ctx, a)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) Approve(ctx context.Context, id int64) (*Appointment, error) {
	return s.repo.Approve(ctx, id)
}

func (s *Service) Done(ctx context.Context, id int64) (*Appointment, error) {
	return s.repo.Done(ctx, id)
}
