package export

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jcarlounavas/gcashtrack/internal/export"
	"github.com/jcarlounavas/gcashtrack/internal/statement"
)

type Handler struct {
	svc        *export.Service
	statements *statement.Service
}

func NewHandler(svc *export.Service, statements *statement.Service) *Handler {
	return &Handler{
		svc:        svc,
		statements: statements,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/{id}/export", h.download)
}

func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	st, err := h.statements.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, statement.ErrNotFound) {
			http.Error(w, "statement not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", export.Filename(st)))

	if err := h.svc.WriteCSV(r.Context(), w, id); err != nil {
		// Headers are already out; all we can do is cut the stream short.
		slog.Error("failed to write csv export", "statement_id", id, "error", err)
	}
}
