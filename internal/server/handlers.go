package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/KaramelBytes/tabled/internal/dataset"
	"github.com/KaramelBytes/tabled/internal/engine"
)

type createRequest struct {
	Name string           `json:"name"`
	Data []map[string]any `json:"data"`
}

type filterRequest struct {
	DatasetName string        `json:"dataset_name"`
	Column      string        `json:"column"`
	Operation   string        `json:"operation"`
	Value       dataset.Value `json:"value"`
}

type aggregateRequest struct {
	DatasetName string `json:"dataset_name"`
	Column      string `json:"column"`
	Operation   string `json:"operation"`
}

func (s *Server) handleListDatasets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.List())
}

func (s *Server) handleCreateDataset(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := s.decodeBody(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	if req.Name == "" {
		s.writeError(w, &dataset.ValidationError{Reason: "dataset name is required"})
		return
	}
	ds, err := dataset.FromMaps(req.Name, req.Data)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.store.Put(ds)
	writeJSON(w, http.StatusCreated, map[string]any{
		"message": fmt.Sprintf("Dataset %q created successfully", req.Name),
		"rows":    len(ds.Rows),
		"columns": ds.Columns,
	})
}

func (s *Server) handleGetDataset(w http.ResponseWriter, r *http.Request) {
	ds, err := s.store.Get(r.PathValue("name"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	limit := s.cfg.DefaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			s.writeError(w, &dataset.ValidationError{Reason: fmt.Sprintf("invalid limit %q", raw)})
			return
		}
		limit = n
	}
	rows := ds.Rows
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	if rows == nil {
		rows = []dataset.Row{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"data":       rows,
		"columns":    ds.Columns,
		"total_rows": len(ds.Rows),
		"kinds":      ds.Kinds(),
	})
}

func (s *Server) handleDeleteDataset(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if err := s.store.Delete(name); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": fmt.Sprintf("Dataset %q deleted successfully", name),
	})
}

func (s *Server) handleFilter(w http.ResponseWriter, r *http.Request) {
	var req filterRequest
	if err := s.decodeBody(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	op, err := engine.ParseFilterOp(req.Operation)
	if err != nil {
		s.writeError(w, err)
		return
	}
	ds, err := s.store.Get(req.DatasetName)
	if err != nil {
		s.writeError(w, err)
		return
	}
	rows, err := engine.Filter(ds, req.Column, op, req.Value)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"data":       rows,
		"total_rows": len(rows),
	})
}

func (s *Server) handleAggregate(w http.ResponseWriter, r *http.Request) {
	var req aggregateRequest
	if err := s.decodeBody(w, r, &req); err != nil {
		s.writeError(w, err)
		return
	}
	op, err := engine.ParseAggregateOp(req.Operation)
	if err != nil {
		s.writeError(w, err)
		return
	}
	ds, err := s.store.Get(req.DatasetName)
	if err != nil {
		s.writeError(w, err)
		return
	}
	result, err := engine.Aggregate(ds, req.Column, op)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"column":    req.Column,
		"operation": string(op),
		"result":    result,
	})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	ds, err := s.store.Get(r.PathValue("name"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	stats, nulls := engine.Statistics(ds)
	writeJSON(w, http.StatusOK, map[string]any{
		"statistics":  stats,
		"null_counts": nulls,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "datasets": s.store.Len()})
}

// decodeBody parses a JSON request body with a size cap.
func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return &dataset.ValidationError{Reason: fmt.Sprintf("invalid request body: %v", err)}
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps engine and store errors onto HTTP statuses: unknown
// dataset/column is 404, bad input or empty aggregations are 400, and
// anything else is a 500. The message is returned verbatim for the UI to
// display.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	var (
		notFound   *dataset.NotFoundError
		validation *dataset.ValidationError
		empty      *dataset.EmptyError
	)
	switch {
	case errors.As(err, &notFound):
		status = http.StatusNotFound
	case errors.As(err, &validation), errors.As(err, &empty):
		status = http.StatusBadRequest
	default:
		s.log.WithError(err).Error("internal error")
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
