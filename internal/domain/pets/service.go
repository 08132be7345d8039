package pets

import (
	"context"
	"errors"
	"io"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

// Service valida en el borde y delega al Repository que le inyecten
// (local o remoto, da igual).
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Pet, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*Pet, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, p Pet) (Pet, error) {
	if strings.TrimSpace(p.Name) == "" {
		return Pet{}, ErrInvalidInput
	}
	if err := validateProcedures(p.Procedures); err != nil {
		return Pet{}, err
	}
	p.Name = strings.TrimSpace(p.Name)
	return s.repo.Create(ctx, p)
}

func (s *Service) Update(ctx context.Context, p Pet) (Pet, error) {
	if p.ID <= 0 || strings.TrimSpace(p.Name) == "" {
		return Pet{}, ErrInvalidInput
	}
	if err := validateProcedures(p.Procedures); err != nil {
		return Pet{}, err
	}
	return s.repo.Update(ctx, p)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) AddProcedure(ctx context.Context, petID int64, pr Procedure) (*Pet, error) {
	if petID <= 0 {
		return nil, ErrInvalidInput
	}
	if pr.Cost < 0 {
		return nil, ErrInvalidInput
	}
	return s.repo.AddProcedure(ctx, petID, pr)
}

func (s *Service) UpdateProcedure(ctx context.Context, petID int64, procedureID string, pr Procedure) (*Pet, error) {
	if petID <= 0 || strings.TrimSpace(procedureID) == "" {
		return nil, ErrInvalidInput
	}
	if pr.Cost < 0 {
		return nil, ErrInvalidInput
	}
	return s.repo.UpdateProcedure(ctx, petID, procedureID, pr)
}

func (s *Service) DeleteProcedure(ctx context.Context, petID int64, procedureID string) (*Pet, error) {
	if petID <= 0 || strings.TrimSpace(procedureID) == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.DeleteProcedure(ctx, petID, procedureID)
}

func (s *Service) UploadPhoto(ctx context.Context, petID int64, filename string, r io.Reader) (string, error) {
	if petID <= 0 || r == nil {
		return "", ErrInvalidInput
	}
	return s.repo.UploadPhoto(ctx, petID, filename, r)
}

func validateProcedures(list []Procedure) error {
	for _, pr := range list {
		if pr.Cost < 0 {
			return ErrInvalidInput
		}
	}
	return nil
}
