package reports

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, sum Summarizer) {
	r.Get("/reports/summary", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		s, err := sum.Summarize(r.Context(), q.Get("period"), q.Get("from"), q.Get("to"))
		if err != nil {
			if errors.Is(err, ErrInvalidPeriod) || errors.Is(err, ErrInvalidRange) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(s)
	})
}
