package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	enumspb "go.temporal.io/api/enums/v1"
	tclient "go.temporal.io/sdk/client"

	"cognigraph/internal/clinical"
	"cognigraph/internal/config"
	"cognigraph/internal/dataset"
	"cognigraph/internal/evidence"
	"cognigraph/internal/graph"
	"cognigraph/internal/util"
	"cognigraph/internal/workflows"
)

// Server is the presentation-collaborator boundary: it translates HTTP
// parameters into engine calls and engine results/errors into JSON. It holds
// no decision logic of its own.
type Server struct {
	cfg      config.Config
	pub      *dataset.Publisher
	temporal tclient.Client
}

func New(cfg config.Config, pub *dataset.Publisher, temporal tclient.Client) *Server {
	return &Server{cfg: cfg, pub: pub, temporal: temporal}
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealthz)
	mux.HandleFunc("/stage", s.handleStage)
	mux.HandleFunc("/recommendations", s.handleRecommendations)
	mux.HandleFunc("/safety", s.handleSafety)
	mux.HandleFunc("/compare", s.handleCompare)
	mux.HandleFunc("/drugs/", s.handleDrug)
	mux.HandleFunc("/monitoring", s.handleMonitoring)
	mux.HandleFunc("/schema", s.handleSchema)
	mux.HandleFunc("/dataset", s.handleDataset)
	mux.HandleFunc("/dataset/report", s.handleDatasetReport)
	mux.HandleFunc("/dataset/upload", s.handleDatasetUpload)
	return withCORS(mux)
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// snapshot returns the published epoch or writes a 503 when no dataset has
// been loaded yet.
func (s *Server) snapshot(w http.ResponseWriter) *dataset.Snapshot {
	snap := s.pub.Current()
	if snap == nil {
		writeErr(w, http.StatusServiceUnavailable, fmt.Errorf("no dataset published"))
		return nil
	}
	return snap
}

func (s *Server) handleStage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, fmt.Errorf("method not allowed"))
		return
	}
	snap := s.snapshot(w)
	if snap == nil {
		return
	}
	score, err := strconv.Atoi(r.URL.Query().Get("score"))
	if err != nil {
		writeErr(w, http.StatusBadRequest, fmt.Errorf("score must be an integer"))
		return
	}
	res, err := clinical.StageForScore(snap.Index, score)
	if err != nil {
		writeEngineErr(w, err)
		return
	}
	symptoms, err := clinical.StageSymptoms(snap.Index, res.Stage)
	if err != nil {
		writeEngineErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"score":    score,
		"stage":    res.Stage,
		"flags":    res.Flags,
		"symptoms": symptoms,
	})
}

func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, fmt.Errorf("method not allowed"))
		return
	}
	snap := s.snapshot(w)
	if snap == nil {
		return
	}
	anchor, kind, err := anchorParams(r.URL.Query().Get("anchor_type"), r.URL.Query().Get("anchor_name"), r.URL.Query().Get("kind"))
	if err != nil {
		writeErr(w, http.StatusBadRequest, err)
		return
	}
	profiles, err := clinical.Recommend(snap.Index, anchor, kind)
	if err != nil {
		writeEngineErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"anchor": anchor, "kind": kind, "profiles": profiles})
}

func (s *Server) handleSafety(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeErr(w, http.StatusMethodNotAllowed, fmt.Errorf("method not allowed"))
		return
	}
	snap := s.snapshot(w)
	if snap == nil {
		return
	}
	var req struct {
		AnchorType string   `json:"anchor_type"`
		AnchorName string   `json:"anchor_name"`
		Kind       string   `json:"kind"`
		Conditions []string `json:"conditions"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, fmt.Errorf("invalid json: %w", err))
		return
	}
	anchor, kind, err := anchorParams(req.AnchorType, req.AnchorName, req.Kind)
	if err != nil {
		writeErr(w, http.StatusBadRequest, err)
		return
	}
	profiles, err := clinical.Recommend(snap.Index, anchor, kind)
	if err != nil {
		writeEngineErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"anchor":      anchor,
		"conditions":  req.Conditions,
		"assessments": clinical.AssessSafety(profiles, req.Conditions),
	})
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeErr(w, http.StatusMethodNotAllowed, fmt.Errorf("method not allowed"))
		return
	}
	snap := s.snapshot(w)
	if snap == nil {
		return
	}
	var req struct {
		Type  string   `json:"type"` // Treatment or Therapy, defaults to Treatment
		Names []string `json:"names"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErr(w, http.StatusBadRequest, fmt.Errorf("invalid json: %w", err))
		return
	}
	if len(req.Names) == 0 {
		writeErr(w, http.StatusBadRequest, fmt.Errorf("names is required"))
		return
	}
	nodeType := graph.NodeTreatment
	if req.Type != "" {
		nodeType = graph.NodeType(req.Type)
	}
	profiles := make([]clinical.TreatmentProfile, 0, len(req.Names))
	for _, name := range req.Names {
		p, err := clinical.Profile(snap.Index, graph.Node{Type: nodeType, Name: name})
		if err != nil {
			writeEngineErr(w, err)
			return
		}
		profiles = append(profiles, p)
	}
	writeJSON(w, http.StatusOK, map[string]any{"matrix": clinical.Compare(profiles)})
}

func (s *Server) handleDrug(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, fmt.Errorf("method not allowed"))
		return
	}
	snap := s.snapshot(w)
	if snap == nil {
		return
	}
	name := strings.Trim(strings.TrimPrefix(r.URL.Path, "/drugs/"), "/")
	if name == "" {
		writeErr(w, http.StatusNotFound, fmt.Errorf("not found"))
		return
	}
	ds, err := clinical.DrugLookup(snap.Index, name)
	if err != nil {
		writeEngineErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ds)
}

func (s *Server) handleMonitoring(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, fmt.Errorf("method not allowed"))
		return
	}
	snap := s.snapshot(w)
	if snap == nil {
		return
	}
	writeJSON(w, http.StatusOK, clinical.MonitoringOverview(snap.Index))
}

func (s *Server) handleSchema(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, fmt.Errorf("method not allowed"))
		return
	}
	snap := s.snapshot(w)
	if snap == nil {
		return
	}
	writeJSON(w, http.StatusOK, clinical.SummarizeSchema(snap.Index))
}

func (s *Server) handleDataset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, fmt.Errorf("method not allowed"))
		return
	}
	snap := s.snapshot(w)
	if snap == nil {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"version":   snap.Version,
		"checksum":  snap.Checksum,
		"loaded_at": snap.LoadedAt,
		"triples":   snap.Index.TripleCount(),
		"nodes":     snap.Index.NodeCount(),
		"accepted":  snap.Report.Accepted,
		"rejected":  len(snap.Report.Rejected),
		"flagged":   len(snap.Report.Flagged),
	})
}

func (s *Server) handleDatasetReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErr(w, http.StatusMethodNotAllowed, fmt.Errorf("method not allowed"))
		return
	}
	snap := s.snapshot(w)
	if snap == nil {
		return
	}
	writeJSON(w, http.StatusOK, snap.Report)
}

func (s *Server) handleDatasetUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeErr(w, http.StatusMethodNotAllowed, fmt.Errorf("method not allowed"))
		return
	}
	if err := r.ParseMultipartForm(int64(s.cfg.UploadMaxMB) << 20); err != nil {
		writeErr(w, http.StatusBadRequest, fmt.Errorf("invalid multipart form: %w", err))
		return
	}
	file, hdr, err := r.FormFile("file")
	if err != nil {
		writeErr(w, http.StatusBadRequest, fmt.Errorf("file is required"))
		return
	}
	defer file.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(file); err != nil {
		writeErr(w, http.StatusBadRequest, fmt.Errorf("read upload: %w", err))
		return
	}

	var rows []graph.Row
	switch strings.ToLower(filepath.Ext(hdr.Filename)) {
	case ".csv":
		rows, err = graph.ReadCSV(bytes.NewReader(buf.Bytes()))
	case ".xlsx":
		rows, err = graph.ReadXLSX(bytes.NewReader(buf.Bytes()))
	case ".bib":
		rows = evidence.ExtractRows(buf.String())
	default:
		writeErr(w, http.StatusBadRequest, fmt.Errorf("unsupported dataset extension %q", filepath.Ext(hdr.Filename)))
		return
	}
	if err != nil {
		// Structural failure: the previously published snapshot stays live.
		writeEngineErr(w, err)
		return
	}

	snap := s.pub.Publish(rows, util.SHA256Hex(buf.Bytes()))

	if err := s.persistUpload(r, snap.Version, hdr.Filename, buf.Bytes()); err != nil {
		log.Printf("dataset %s published in-memory but persistence pipeline not started: %v", snap.Version, err)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"version":  snap.Version,
		"checksum": snap.Checksum,
		"accepted": snap.Report.Accepted,
		"report":   snap.Report,
	})
}

// persistUpload saves the raw upload under DataInRoot and hands it to the
// durable persistence workflow. Persistence being unavailable never blocks an
// in-memory publish.
func (s *Server) persistUpload(r *http.Request, version, filename string, raw []byte) error {
	if s.temporal == nil {
		return fmt.Errorf("temporal not configured")
	}
	dir := filepath.Join(s.cfg.DataInRoot, version)
	if err := util.EnsureDir(dir); err != nil {
		return err
	}
	path := util.SafeJoin(dir, filename)
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("save upload: %w", err)
	}
	_, err := s.temporal.ExecuteWorkflow(r.Context(), tclient.StartWorkflowOptions{
		ID:                    "dataset-persist-" + version,
		TaskQueue:             s.cfg.TemporalTaskQueue,
		WorkflowIDReusePolicy: enumspb.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE,
	}, workflows.DatasetPersistWorkflow, workflows.DatasetPersistInput{Version: version, Path: path})
	if err != nil {
		return fmt.Errorf("start persist workflow: %w", err)
	}
	return nil
}

func anchorParams(anchorType, anchorName, kind string) (graph.Node, clinical.RecommendationKind, error) {
	if anchorName == "" {
		return graph.Node{}, "", fmt.Errorf("anchor_name is required")
	}
	k := clinical.RecommendationKind(kind)
	var defaultType graph.NodeType
	switch k {
	case clinical.KindFirstLine, clinical.KindTherapy:
		defaultType = graph.NodeStage
	case clinical.KindAllTreatments:
		defaultType = graph.NodeDisease
	default:
		return graph.Node{}, "", fmt.Errorf("kind must be one of first_line, all, therapy")
	}
	if anchorType == "" {
		anchorType = string(defaultType)
	}
	return graph.Node{Type: graph.NodeType(anchorType), Name: anchorName}, k, nil
}

// writeEngineErr maps the engine's typed errors onto HTTP statuses so the
// presentation layer can tell "query rejected" from "no data".
func writeEngineErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, util.ErrInvalidQuery), errors.Is(err, util.ErrOutOfRange):
		writeErr(w, http.StatusBadRequest, err)
	case errors.Is(err, util.ErrAnchorNotFound), errors.Is(err, util.ErrNoStageDefined):
		writeErr(w, http.StatusNotFound, err)
	case errors.Is(err, util.ErrUnreadableInput):
		writeErr(w, http.StatusUnprocessableEntity, err)
	default:
		writeErr(w, http.StatusInternalServerError, err)
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, map[string]any{
		"error": map[string]any{
			"message": err.Error(),
		},
	})
}

func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
