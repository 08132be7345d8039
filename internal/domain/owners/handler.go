package owners

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/owners", func(or chi.Router) {
		or.Get("/", func(w http.ResponseWriter, r *http.Request) {
			items, err := svc.List(r.Context())
			if err != nil {
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
			writeJSON(w, http.StatusOK, items)
		})

		or.Post("/", func(w http.ResponseWriter, r *http.Request) {
			var o Owner
			if err := json.NewDecoder(r.Body).Decode(&o); err != nil {
				http.Error(w, "invalid json", http.StatusBadRequest)
				return
			}
			created, err := svc.Create(r.Context(), o)
			if err != nil {
				writeError(w, err)
				return
			}
			writeJSON(w, http.StatusCreated, created)
		})

		or.Get("/{ownerID}", func(w http.ResponseWriter, r *http.Request) {
			id, err := strconv.ParseInt(chi.URLParam(r, "ownerID"), 10, 64)
			if err != nil || id <= 0 {
				http.Error(w, "invalid owner id", http.StatusBadRequest)
				return
			}
			o, err := svc.Get(r.Context(), id)
			if err != nil {
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
			if o == nil {
				http.Error(w, "owner not found", http.StatusNotFound)
				return
			}
			writeJSON(w, http.StatusOK, o)
		})

		or.Put("/{ownerID}", func(w http.ResponseWriter, r *http.Request) {
			id, err := strconv.ParseInt(chi.URLParam(r, "ownerID"), 10, 64)
			if err != nil || id <= 0 {
				http.Error(w, "invalid owner id", http.StatusBadRequest)
				return
			}
			var o Owner
			if err := json.NewDecoder(r.Body).Decode(&o); err != nil {
				http.Error(w, "invalid json", http.StatusBadRequest)
				return
			}
			o.ID = id
			updated, err := svc.Update(r.Context(), o)
			if err != nil {
				writeError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, updated)
		})
	})
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
