package local

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"pawcare/internal/adapters/storage"
	"pawcare/internal/domain/activity"
	"pawcare/internal/domain/pets"
)

type PetsRepo struct {
	store     storage.Store
	log       activity.Log
	uploadDir string
	now       func() time.Time
	newProcID func() string
}

func NewPetsRepo(store storage.Store, log activity.Log, uploadDir string) *PetsRepo {
	return &PetsRepo{
		store:     store,
		log:       log,
		uploadDir: uploadDir,
		now:       time.Now,
		newProcID: uuid.NewString,
	}
}

func (r *PetsRepo) WithNow(now func() time.Time) *PetsRepo {
	r.now = now
	return r
}

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	var list []pets.Pet
	if err := r.store.Get(ctx, storage.ColPets, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []pets.Pet{}
	}
	return list, nil
}

func (r *PetsRepo) Get(ctx context.Context, id int64) (*pets.Pet, error) {
	list, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range list {
		if list[i].ID == id {
			p := list[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	list, err := r.List(ctx)
	if err != nil {
		return pets.Pet{}, err
	}

	id, err := r.store.NextID(ctx, storage.ColPets)
	if err != nil {
		return pets.Pet{}, err
	}
	p.ID = id

	if p.Procedures == nil {
		p.Procedures = []pets.Procedure{}
	}
	for i := range p.Procedures {
		p.Procedures[i] = r.normalizeProcedure(p.Procedures[i])
	}

	list = append(list, p)
	if err := r.store.Put(ctx, storage.ColPets, list); err != nil {
		return pets.Pet{}, err
	}

	r.record(ctx, activity.TypePetCreated, "Added pet: "+p.Name, activity.Ref(p.ID))
	return p, nil
}

// Update con id inexistente devuelve la entrada sin tocar nada: política de
// falla blanda, no un error.
func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	list, err := r.List(ctx)
	if err != nil {
		return pets.Pet{}, err
	}

	for i := range list {
		if list[i].ID != p.ID {
			continue
		}
		if p.Procedures == nil {
			p.Procedures = []pets.Procedure{}
		}
		list[i] = p
		if err := r.store.Put(ctx, storage.ColPets, list); err != nil {
			return pets.Pet{}, err
		}
		r.record(ctx, activity.TypePetUpdated, "Updated pet: "+p.Name, activity.Ref(p.ID))
		return p, nil
	}

	return p, nil
}

// Delete saca el pet y sus procedimientos embebidos como unidad; id
// inexistente es no-op.
func (r *PetsRepo) Delete(ctx context.Context, id int64) error {
	list, err := r.List(ctx)
	if err != nil {
		return err
	}

	kept := make([]pets.Pet, 0, len(list))
	removed := false
	for _, p := range list {
		if p.ID == id {
			removed = true
			continue
		}
		kept = append(kept, p)
	}
	if !removed {
		return nil
	}

	if err := r.store.Put(ctx, storage.ColPets, kept); err != nil {
		return err
	}
	r.record(ctx, activity.TypePetDeleted, fmt.Sprintf("Deleted pet #%d", id), activity.Ref(id))
	return nil
}

func (r *PetsRepo) AddProcedure(ctx context.Context, petID int64, pr pets.Procedure) (*pets.Pet, error) {
	list, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range list {
		if list[i].ID != petID {
			continue
		}

		pr = r.normalizeProcedure(pr)
		list[i].Procedures = append(list[i].Procedures, pr)
		if err := r.store.Put(ctx, storage.ColPets, list); err != nil {
			return nil, err
		}

		r.record(ctx, activity.TypeProcedureAdded,
			fmt.Sprintf("Added procedure for %s: %s", list[i].Name, pr.Name),
			activity.Ref(petID))

		p := list[i]
		return &p, nil
	}

	return nil, nil
}

func (r *PetsRepo) UpdateProcedure(ctx context.Context, petID int64, procedureID string, pr pets.Procedure) (*pets.Pet, error) {
	list, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range list {
		if list[i].ID != petID {
			continue
		}

		for j := range list[i].Procedures {
			if list[i].Procedures[j].ID != procedureID {
				continue
			}
			pr.ID = procedureID
			list[i].Procedures[j] = r.normalizeProcedure(pr)
			if err := r.store.Put(ctx, storage.ColPets, list); err != nil {
				return nil, err
			}
			break
		}

		// Procedimiento inexistente: pet sin cambios (falla blanda).
		p := list[i]
		return &p, nil
	}

	return nil, nil
}

func (r *PetsRepo) DeleteProcedure(ctx context.Context, petID int64, procedureID string) (*pets.Pet, error) {
	list, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range list {
		if list[i].ID != petID {
			continue
		}

		kept := make([]pets.Procedure, 0, len(list[i].Procedures))
		removed := false
		for _, existing := range list[i].Procedures {
			if existing.ID == procedureID {
				removed = true
				continue
			}
			kept = append(kept, existing)
		}

		if removed {
			list[i].Procedures = kept
			if err := r.store.Put(ctx, storage.ColPets, list); err != nil {
				return nil, err
			}
		}

		p := list[i]
		return &p, nil
	}

	return nil, nil
}

func (r *PetsRepo) UploadPhoto(ctx context.Context, petID int64, filename string, src io.Reader) (string, error) {
	list, err := r.List(ctx)
	if err != nil {
		return "", err
	}

	for i := range list {
		if list[i].ID != petID {
			continue
		}

		if err := os.MkdirAll(r.uploadDir, 0o755); err != nil {
			return "", fmt.Errorf("local: upload dir: %w", err)
		}

		name := fmt.Sprintf("%d_%s", r.now().UnixMilli(), filepath.Base(filename))
		dst, err := os.Create(filepath.Join(r.uploadDir, name))
		if err != nil {
			return "", fmt.Errorf("local: create upload: %w", err)
		}
		if _, err := io.Copy(dst, src); err != nil {
			_ = dst.Close()
			return "", fmt.Errorf("local: write upload: %w", err)
		}
		if err := dst.Close(); err != nil {
			return "", fmt.Errorf("local: close upload: %w", err)
		}

		list[i].Photo = "/uploads/" + name
		if err := r.store.Put(ctx, storage.ColPets, list); err != nil {
			return "", err
		}
		return list[i].Photo, nil
	}

	return "", nil
}

func (r *PetsRepo) normalizeProcedure(pr pets.Procedure) pets.Procedure {
	if pr.ID == "" {
		pr.ID = r.newProcID()
	}
	if pr.Cost < 0 {
		pr.Cost = 0
	}
	if pr.PerformedAt == "" {
		pr.PerformedAt = r.now().Format("2006-01-02")
	}
	return pr
}

func (r *PetsRepo) record(ctx context.Context, typ, msg string, ref *int64) {
	// Si el log falla después de persistir, el registro queda sin entrada:
	// ventana de inconsistencia aceptada, sin rollback.
	_ = r.log.Record(ctx, activity.Event{Type: typ, Message: msg, RefID: ref})
}
