package users

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/users", func(ur chi.Router) {
		ur.Get("/", func(w http.ResponseWriter, r *http.Request) {
			items, err := svc.List(r.Context())
			if err != nil {
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
			writeJSON(w, http.StatusOK, items)
		})

		ur.Post("/", func(w http.ResponseWriter, r *http.Request) {
			var u User
			if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
				http.Error(w, "invalid json", http.StatusBadRequest)
				return
			}
			created, err := svc.Create(r.Context(), u)
			if err != nil {
				writeError(w, err)
				return
			}
			writeJSON(w, http.StatusCreated, created)
		})

		ur.Get("/{userID}", func(w http.ResponseWriter, r *http.Request) {
			id, ok := userID(w, r)
			if !ok {
				return
			}
			u, err := svc.Get(r.Context(), id)
			if err != nil {
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
			if u == nil {
				http.Error(w, "user not found", http.StatusNotFound)
				return
			}
			writeJSON(w, http.StatusOK, u)
		})

		ur.Put("/{userID}", func(w http.ResponseWriter, r *http.Request) {
			id, ok := userID(w, r)
			if !ok {
				return
			}
			var u User
			if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
				http.Error(w, "invalid json", http.StatusBadRequest)
				return
			}
			u.ID = id
			updated, err := svc.Update(r.Context(), u)
			if err != nil {
				writeError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, updated)
		})

		ur.Delete("/{userID}", func(w http.ResponseWriter, r *http.Request) {
			id, ok := userID(w, r)
			if !ok {
				return
			}
			if err := svc.Delete(r.Context(), id); err != nil {
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
			w.WriteHeader(http.StatusNoContent)
		})
	})
}

func userID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "invalid user id", http.StatusBadRequest)
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
