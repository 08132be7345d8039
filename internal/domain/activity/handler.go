package activity

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, log Log) {
	r.Get("/ops/log", func(w http.ResponseWriter, r *http.Request) {
		from, err1 := time.Parse("2006-01-02", r.URL.Query().Get("from"))
		to, err2 := time.Parse("2006-01-02", r.URL.Query().Get("to"))
		if err1 != nil || err2 != nil {
			http.Error(w, "from and to must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		events, err := log.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		// Fechas calendario inclusivas; la hora del día no filtra.
		out := make([]Event, 0, len(events))
		for _, e := range events {
			d := e.TS.Format("2006-01-02")
			if d >= from.Format("2006-01-02") && d <= to.Format("2006-01-02") {
				out = append(out, e)
			}
		}

		writeJSON(w, http.StatusOK, out)
	})

	r.Delete("/ops/log", func(w http.ResponseWriter, r *http.Request) {
		if err := log.Clear(r.Context()); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
