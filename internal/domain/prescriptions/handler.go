package prescriptions

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/prescriptions", func(rr chi.Router) {
		rr.Get("/", func(w http.ResponseWriter, r *http.Request) {
			items, err := svc.List(r.Context())
			if err != nil {
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
			writeJSON(w, http.StatusOK, items)
		})

		rr.Post("/", func(w http.ResponseWriter, r *http.Request) {
			var p Prescription
			if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
				http.Error(w, "invalid json", http.StatusBadRequest)
				return
			}
			created, err := svc.Create(r.Context(), p)
			if err != nil {
				writeError(w, err)
				return
			}
			writeJSON(w, http.StatusCreated, created)
		})

		rr.Get("/{rxID}", func(w http.ResponseWriter, r *http.Request) {
			id, ok := rxID(w, r)
			if !ok {
				return
			}
			p, err := svc.Get(r.Context(), id)
			if err != nil {
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
			if p == nil {
				http.Error(w, "prescription not found", http.StatusNotFound)
				return
			}
			writeJSON(w, http.StatusOK, p)
		})

		rr.Put("/{rxID}", func(w http.ResponseWriter, r *http.Request) {
			id, ok := rxID(w, r)
			if !ok {
				return
			}
			var p Prescription
			if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
				http.Error(w, "invalid json", http.StatusBadRequest)
				return
			}
			p.ID = id
			updated, err := svc.Update(r.Context(), p)
			if err != nil {
				writeError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, updated)
		})

		rr.Delete("/{rxID}", func(w http.ResponseWriter, r *http.Request) {
			id, ok := rxID(w, r)
			if !ok {
				return
			}
			if err := svc.Delete(r.Context(), id); err != nil {
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
			w.WriteHeader(http.StatusNoContent)
		})

		rr.Post("/{rxID}/dispense", func(w http.ResponseWriter, r *http.Request) {
			id, ok := rxID(w, r)
			if !ok {
				return
			}
			p, err := svc.Dispense(r.Context(), id)
			if err != nil {
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
			if p == nil {
				http.Error(w, "prescription not found", http.StatusNotFound)
				return
			}
			writeJSON(w, http.StatusOK, p)
		})
	})
}

func rxID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "rxID"), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "invalid prescription id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrInvalidInput) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	http.Error(w, "internal error", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
