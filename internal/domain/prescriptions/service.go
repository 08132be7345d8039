package prescriptions

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

func (s *Service) List(ctx context.Context) ([]Prescription, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*Prescription, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, p Prescription) (Prescription, error) {
	if strings.TrimSpace(p.Drug) == "" {
		return Prescription{}, ErrInvalidInput
	}
	p.Drug = strings.TrimSpace(p.Drug)
	return s.repo.Create(ctx, p)
}

func (s *Service) Update(ctx context.Context, p Prescription) (Prescription, error) {
	if p.ID <= 0 {
		return Prescription{}, ErrInvalidInput
	}
	// Invariante del modelo: dispensedAt si y solo si dispensed. Despachar
	// pasa por Dispense, que estampa la fecha; un update no puede dejar el
	// par a medias.
	if !p.Dispensed {
		p.DispensedAt = ""
	} else if p.DispensedAt == "" {
		return Prescription{}, ErrInvalidInput
	}
	return s.repo.Update(ctx, p)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) Dispense(ctx context.Context, id int64) (*Prescription, error) {
	return s.repo.Dispense(ctx, id)
}
