package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/dummyforge/dummyforge/internal/dferr"
	"github.com/dummyforge/dummyforge/internal/export"
	"github.com/dummyforge/dummyforge/internal/schema"
)

type errorResponse struct {
	Error      string `json:"error"`
	Code       string `json:"code,omitempty"`
	Resolution string `json:"resolution,omitempty"`
}

type generateResponse struct {
	Data []*schema.Record `json:"data"`
}

type exportRequest struct {
	Format string           `json:"format"`
	Table  string           `json:"table,omitempty"`
	Data   []*schema.Record `json:"data"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var cfg schema.GenerationConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid generation config: " + err.Error()})
		return
	}

	records, err := s.engine.Generate(&cfg)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, generateResponse{Data: records})
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid export request: " + err.Error()})
		return
	}
	if len(req.Data) == 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "no data to export"})
		return
	}

	format, err := export.ParseFormat(req.Format)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	data, err := export.Render(format, req.Data, req.Table)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	w.Header().Set("Content-Type", contentTypeFor(format))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "export."+string(format)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (s *Server) handleFields(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]schema.FieldType{"fields": schema.AllFieldTypes})
}

// writeEngineError maps classified engine errors to HTTP statuses:
// validation failures are client errors, uniqueness exhaustion is an
// unprocessable request, anything else is a server fault.
func writeEngineError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	resp := errorResponse{Error: err.Error()}

	var de *dferr.Error
	if errors.As(err, &de) {
		resp = errorResponse{
			Error:      de.UserMessage(),
			Code:       de.Code(),
			Resolution: de.Resolution(),
		}
		switch {
		case dferr.IsValidation(de):
			status = http.StatusBadRequest
		case de.Kind == dferr.KindUniquenessExhausted:
			status = http.StatusUnprocessableEntity
		}
	}

	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func contentTypeFor(format export.Format) string {
	switch format {
	case export.FormatCSV:
		return "text/csv; charset=utf-8"
	case export.FormatTXT:
		return "text/plain; charset=utf-8"
	case export.FormatSQL:
		return "application/sql"
	case export.FormatJSON:
		return "application/json"
	case export.FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case export.FormatPDF:
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}
