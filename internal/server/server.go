package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/coder/websocket"
	"github.com/google/uuid"

	"github.com/ChicagoDave/campusgrid/pkg/analytics"
	"github.com/ChicagoDave/campusgrid/pkg/campus"
	"github.com/ChicagoDave/campusgrid/pkg/engine"
	"github.com/ChicagoDave/campusgrid/pkg/geo"
	"github.com/ChicagoDave/campusgrid/pkg/scene2d"
)

// Server is the local editing server. Every mutation runs under one lock,
// so the engine sees a single caller at a time.
type Server struct {
	projectPath string
	port        int

	mu    sync.Mutex
	world *engine.World
	hub   *Hub
}

// New creates a server for the given project directory and loaded world.
func New(projectPath string, port int, world *engine.World) *Server {
	return &Server{
		projectPath: projectPath,
		port:        port,
		world:       world,
		hub:         NewHub(),
	}
}

// Handler returns the API routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/scene", s.handleScene)
	mux.HandleFunc("GET /api/validation", s.handleValidation)
	mux.HandleFunc("GET /api/route", s.handleRoute)
	mux.HandleFunc("GET /api/analytics", s.handleAnalytics)
	mux.HandleFunc("POST /api/buildings", s.handleAddBuilding)
	mux.HandleFunc("DELETE /api/buildings/{id}", s.handleDeleteBuilding)
	mux.HandleFunc("POST /api/buildings/{id}/doors", s.handleAddDoor)
	mux.HandleFunc("PUT /api/buildings/{id}/doors/{door}", s.handleMoveDoor)
	mux.HandleFunc("DELETE /api/buildings/{id}/doors/{door}", s.handleDeleteDoor)
	mux.HandleFunc("PUT /api/buildings/{id}/congestion", s.handleCongestion)
	mux.HandleFunc("POST /api/merge", s.handleMerge)
	mux.HandleFunc("POST /api/save", s.handleSave)
	mux.HandleFunc("GET /ws", s.handleWS)
	mux.HandleFunc("GET /", s.handleIndex)
	return mux
}

// Start launches the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("campusgrid server starting on http://localhost%s", addr)
	log.Printf("Project: %s", s.projectPath)

	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, `<!DOCTYPE html>
<html><head><title>campusgrid</title></head>
<body style="margin:0;background:#111;color:#fff;font-family:system-ui;display:flex;align-items:center;justify-content:center;height:100vh">
<div style="text-align:center">
<h1>campusgrid</h1>
<p>No editor is embedded. Read the scene from <code>/api/scene</code> and listen on <code>/ws</code> for redraws.</p>
</div>
</body></html>`)
}

func (s *Server) handleScene(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	sc := scene2d.Assemble2D(s.world)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, sc)
}

func (s *Server) handleValidation(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	report := s.world.Report()
	s.mu.Unlock()
	if q := r.URL.Query().Get("building"); q != "" {
		id, err := strconv.Atoi(q)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("building id %q: %w", q, err))
			return
		}
		report = report.ForBuilding(id)
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleAnalytics(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	stats, report := analytics.Resolve(s.world.Buildings(), s.world.Settings().GridSize)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{
		"analytics":  stats,
		"validation": report,
	})
}

func (s *Server) handleRoute(w http.ResponseWriter, r *http.Request) {
	from, err := engine.ParseDoorRef(r.URL.Query().Get("from"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	to, err := engine.ParseDoorRef(r.URL.Query().Get("to"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	s.mu.Lock()
	res, err := s.world.Route(from, to)
	s.mu.Unlock()
	if err != nil {
		writeEngineError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

type cellRequest struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (c cellRequest) cell() campus.Cell {
	return campus.Cell{X: c.X, Y: c.Y}
}

func (s *Server) handleAddBuilding(w http.ResponseWriter, r *http.Request) {
	var req cellRequest
	if !decode(w, r, &req) {
		return
	}
	s.mutate(w, http.StatusCreated, func() (*engine.Record, error) {
		return s.world.AddBuilding(req.cell())
	})
}

func (s *Server) handleDeleteBuilding(w http.ResponseWriter, r *http.Request) {
	id, ok := recordID(w, r)
	if !ok {
		return
	}
	s.mutate(w, http.StatusOK, func() (*engine.Record, error) {
		return nil, s.world.DeleteBuilding(id)
	})
}

func (s *Server) handleAddDoor(w http.ResponseWriter, r *http.Request) {
	id, ok := recordID(w, r)
	if !ok {
		return
	}
	s.mutate(w, http.StatusCreated, func() (*engine.Record, error) {
		return s.world.AddDoor(id)
	})
}

func (s *Server) handleMoveDoor(w http.ResponseWriter, r *http.Request) {
	id, ok := recordID(w, r)
	if !ok {
		return
	}
	door, ok := doorID(w, r)
	if !ok {
		return
	}
	var p geo.Point
	if !decode(w, r, &p) {
		return
	}
	s.mutate(w, http.StatusOK, func() (*engine.Record, error) {
		return s.world.MoveDoor(id, door, p)
	})
}

func (s *Server) handleDeleteDoor(w http.ResponseWriter, r *http.Request) {
	id, ok := recordID(w, r)
	if !ok {
		return
	}
	door, ok := doorID(w, r)
	if !ok {
		return
	}
	s.mutate(w, http.StatusOK, func() (*engine.Record, error) {
		return s.world.DeleteDoor(id, door)
	})
}

func (s *Server) handleCongestion(w http.ResponseWriter, r *http.Request) {
	id, ok := recordID(w, r)
	if !ok {
		return
	}
	var samples []campus.CongestionSample
	if !decode(w, r, &samples) {
		return
	}
	s.mutate(w, http.StatusOK, func() (*engine.Record, error) {
		return s.world.SetCongestion(id, samples)
	})
}

type mergeRequest struct {
	A     engine.RecordID `json:"a"`
	B     engine.RecordID `json:"b"`
	CellA cellRequest     `json:"cell_a"`
	CellB cellRequest     `json:"cell_b"`
}

func (s *Server) handleMerge(w http.ResponseWriter, r *http.Request) {
	var req mergeRequest
	if !decode(w, r, &req) {
		return
	}
	s.mutate(w, http.StatusOK, func() (*engine.Record, error) {
		return s.world.MergeBuildings(req.A, req.B, req.CellA.cell(), req.CellB.cell())
	})
}

// handleSave writes the current buildings back to the project's input file.
func (s *Server) handleSave(w http.ResponseWriter, _ *http.Request) {
	path := filepath.Join(s.projectPath, campus.FileName)
	s.mu.Lock()
	buildings := s.world.Buildings()
	s.mu.Unlock()
	if err := campus.Save(path, buildings); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	log.Printf("Saved %d buildings to %s", len(buildings), path)
	writeJSON(w, http.StatusOK, map[string]any{"path": path, "buildings": len(buildings)})
}

// redraw is the message pushed to editors after a mutation.
type redraw struct {
	Type      string            `json:"type"`
	RequestID string            `json:"request_id"`
	Records   []engine.RecordID `json:"records"`
}

// mutate runs fn under the world lock, answers with the touched record and
// asks every editor to redraw.
func (s *Server) mutate(w http.ResponseWriter, status int, fn func() (*engine.Record, error)) {
	msg := redraw{Type: "redraw", RequestID: uuid.New().String()}

	s.mu.Lock()
	rec, err := fn()
	var body json.RawMessage
	if err == nil && rec != nil {
		msg.Records = []engine.RecordID{rec.ID}
		body, err = json.Marshal(rec)
	}
	s.mu.Unlock()
	if err != nil {
		writeEngineError(w, err)
		return
	}

	if data, err := json.Marshal(msg); err == nil {
		s.hub.Broadcast(data)
	}

	w.Header().Set("X-Request-ID", msg.RequestID)
	if body == nil {
		writeJSON(w, status, map[string]string{"status": "deleted"})
		return
	}
	writeJSON(w, status, body)
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
	if err != nil {
		return
	}
	s.hub.Add(conn)

	go func(c *websocket.Conn) {
		defer s.hub.Remove(c)
		defer c.Close(websocket.StatusNormalClosure, "")
		for {
			if _, _, err := c.Read(context.Background()); err != nil {
				return
			}
		}
	}(conn)
}

func recordID(w http.ResponseWriter, r *http.Request) (engine.RecordID, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("building id %q: %w", r.PathValue("id"), err))
		return 0, false
	}
	return engine.RecordID(id), true
}

func doorID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("door"))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("door id %q: %w", r.PathValue("door"), err))
		return 0, false
	}
	return id, true
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decoding request body: %w", err))
		return false
	}
	return true
}

func writeEngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, engine.ErrUnknownRecord), errors.Is(err, engine.ErrUnknownDoor):
		writeError(w, http.StatusNotFound, err)
	case errors.Is(err, engine.ErrCellOccupied), errors.Is(err, engine.ErrLastDoor):
		writeError(w, http.StatusConflict, err)
	default:
		writeError(w, http.StatusBadRequest, err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encoding response: %v", err)
	}
}
