package web

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"zigbee-zcl/internal/capture"
	"zigbee-zcl/internal/sniffer"
	"zigbee-zcl/internal/source"
	"zigbee-zcl/internal/zcl"
)

const (
	defaultCaptureLimit = 100
	maxCaptureLimit     = 1000
)

func (s *Server) handleAPIListClusters(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.pipeline.Registry().All())
}

// handleAPIGetCluster resolves {key} as a name or an ID. For IDs with
// manufacturer variants, ?manufacturer=<hex> selects the variant.
func (s *Server) handleAPIGetCluster(w http.ResponseWriter, r *http.Request) {
	var manufacturer uint16
	if m := r.URL.Query().Get("manufacturer"); m != "" {
		var err error
		if manufacturer, err = source.ParseHex16(m); err != nil {
			s.writeError(w, http.StatusBadRequest, "invalid manufacturer")
			return
		}
	}
	c, err := s.pipeline.Registry().Cluster(zcl.ParseKey(r.PathValue("key")), manufacturer)
	if err != nil {
		s.writeError(w, http.StatusNotFound, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleAPIGlobalCommands(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, zcl.GlobalCommands())
}

type decodeRequest struct {
	Cluster          zcl.Key `json:"cluster"`
	ManufacturerCode uint16  `json:"manufacturerCode"`
	Data             string  `json:"data"`
	// Submit stores the frame and publishes it to stream subscribers.
	Submit bool `json:"submit"`
}

func (s *Server) handleAPIDecode(w http.ResponseWriter, r *http.Request) {
	var req decodeRequest
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Cluster.IsZero() {
		s.writeError(w, http.StatusBadRequest, "cluster is required")
		return
	}
	clusterID, err := s.resolveCluster(req.Cluster, req.ManufacturerCode)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	data, err := hex.DecodeString(strings.ReplaceAll(req.Data, " ", ""))
	if err != nil || len(data) == 0 {
		s.writeError(w, http.StatusBadRequest, "data must be a non-empty hex string")
		return
	}

	f := source.RawFrame{
		Source:           "api",
		Time:             time.Now(),
		ClusterID:        clusterID,
		ManufacturerHint: req.ManufacturerCode,
		Data:             data,
	}
	var ev *sniffer.FrameEvent
	if req.Submit {
		ev = s.pipeline.Process(f)
	} else {
		ev = s.pipeline.Decode(f)
	}
	if ev.Error != "" {
		s.writeJSON(w, http.StatusUnprocessableEntity, ev)
		return
	}
	s.writeJSON(w, http.StatusOK, ev)
}

// resolveCluster turns a name into its ID. IDs pass through unchecked so
// global frames of unknown clusters can still be decoded.
func (s *Server) resolveCluster(key zcl.Key, manufacturer uint16) (uint16, error) {
	if id, ok := key.ID(); ok {
		return id, nil
	}
	c, err := s.pipeline.Registry().Cluster(key, manufacturer)
	if err != nil {
		return 0, err
	}
	return c.ID, nil
}

type encodeResponse struct {
	Data  string     `json:"data"`
	Frame *zcl.Frame `json:"frame"`
}

func (s *Server) handleAPIEncode(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	frame, err := s.pipeline.Registry().DecodeFrameRequest(body)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	data, err := frame.MarshalBinary()
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, encodeResponse{Data: hex.EncodeToString(data), Frame: frame})
}

// captureOptions reads ListOptions from the query: since, until (RFC 3339),
// source, cluster (name or ID), failed and limit.
func (s *Server) captureOptions(r *http.Request) (capture.ListOptions, error) {
	q := r.URL.Query()
	opts := capture.ListOptions{Source: q.Get("source"), Limit: defaultCaptureLimit}

	for name, dst := range map[string]*time.Time{"since": &opts.Since, "until": &opts.Until} {
		if v := q.Get(name); v != "" {
			t, err := time.Parse(time.RFC3339, v)
			if err != nil {
				return opts, fmt.Errorf("invalid %s: %w", name, err)
			}
			*dst = t
		}
	}
	if v := q.Get("cluster"); v != "" {
		id, err := s.resolveCluster(zcl.ParseKey(v), 0)
		if err != nil {
			return opts, err
		}
		opts.ClusterID = &id
	}
	if v := q.Get("failed"); v != "" {
		failed, err := strconv.ParseBool(v)
		if err != nil {
			return opts, fmt.Errorf("invalid failed: %w", err)
		}
		opts.Failed = failed
	}
	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 1 {
			return opts, fmt.Errorf("invalid limit %q", v)
		}
		opts.Limit = min(limit, maxCaptureLimit)
	}
	return opts, nil
}

func (s *Server) handleAPIListCaptures(w http.ResponseWriter, r *http.Request) {
	store := s.pipeline.Store()
	if store == nil {
		s.writeError(w, http.StatusServiceUnavailable, "capture store disabled")
		return
	}
	opts, err := s.captureOptions(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	records, err := store.List(opts)
	if err != nil {
		s.logger.Error("list captures", "err", err)
		s.writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	events := make([]*sniffer.FrameEvent, 0, len(records))
	for _, rec := range records {
		events = append(events, s.pipeline.DecodeRecord(rec))
	}
	s.writeJSON(w, http.StatusOK, events)
}

func (s *Server) handleAPIGetCapture(w http.ResponseWriter, r *http.Request) {
	store := s.pipeline.Store()
	if store == nil {
		s.writeError(w, http.StatusServiceUnavailable, "capture store disabled")
		return
	}
	rec, err := store.Get(r.PathValue("id"))
	if err != nil {
		s.writeCaptureError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, s.pipeline.DecodeRecord(rec))
}

func (s *Server) handleAPIDeleteCapture(w http.ResponseWriter, r *http.Request) {
	store := s.pipeline.Store()
	if store == nil {
		s.writeError(w, http.StatusServiceUnavailable, "capture store disabled")
		return
	}
	id := r.PathValue("id")
	if err := store.Delete(id); err != nil {
		s.writeCaptureError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeCaptureError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, capture.ErrInvalidID):
		s.writeError(w, http.StatusBadRequest, "invalid capture id")
	case errors.Is(err, capture.ErrNotFound):
		s.writeError(w, http.StatusNotFound, "capture not found")
	default:
		s.logger.Error("capture store", "err", err)
		s.writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func (s *Server) handleAPIStats(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.pipeline.Stats())
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("writeJSON encode failed", "err", err)
	}
}
