package upload

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/jcarlounavas/gcashtrack/internal/pdftext"
	"github.com/jcarlounavas/gcashtrack/internal/statement"
	"github.com/jcarlounavas/gcashtrack/internal/upload"
)

type Handler struct {
	svc     *upload.Service
	maxSize int64
}

func NewHandler(svc *upload.Service, maxSize int64) *Handler {
	return &Handler{
		svc:     svc,
		maxSize: maxSize,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.upload)
}

type warningResponse struct {
	Line   string `json:"line"`
	Reason string `json:"reason"`
}

type uploadResponse struct {
	ID          uuid.UUID         `json:"id"`
	FileName    string            `json:"file_name"`
	HomeAccount string            `json:"home_account"`
	RecordCount int               `json:"record_count"`
	TotalDebit  string            `json:"total_debit"`
	TotalCredit string            `json:"total_credit"`
	Warnings    []warningResponse `json:"warnings,omitempty"`
}

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxSize)

	if err := r.ParseMultipartForm(h.maxSize); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	homeAccount := r.FormValue("home_account")
	if homeAccount == "" {
		http.Error(w, "home_account field is required", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "failed to read file", http.StatusBadRequest)
		return
	}

	st, sum, err := h.svc.Process(r.Context(), upload.Input{
		FileName:    header.Filename,
		Data:        data,
		HomeAccount: homeAccount,
		Password:    r.FormValue("password"),
	})
	if err != nil {
		if errors.Is(err, pdftext.ErrInvalidPassword) {
			http.Error(w, "invalid or missing PDF password", http.StatusBadRequest)
			return
		}

		if errors.Is(err, upload.ErrEmptyFile) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(st, sum)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func toResponse(st *statement.Statement, sum *statement.Summary) uploadResponse {
	resp := uploadResponse{
		ID:          st.ID,
		FileName:    st.FileName,
		HomeAccount: st.HomeAccount,
		RecordCount: st.RecordCount,
		TotalDebit:  st.TotalDebit.StringFixed(2),
		TotalCredit: st.TotalCredit.StringFixed(2),
	}

	for _, warning := range sum.Warnings {
		resp.Warnings = append(resp.Warnings, warningResponse{
			Line:   warning.Line,
			Reason: warning.Reason,
		})
	}

	return resp
}
