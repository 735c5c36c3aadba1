// Package server exposes a session.Session as a small JSON API.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/internal/replay"
	"github.com/katalvlaran/gridpath/internal/session"
	"github.com/katalvlaran/gridpath/pathfind"
)

// Handler routes API requests to a session.
type Handler struct {
	session *session.Session
	timing  replay.Timing
	router  *httprouter.Router
	logger  logrus.FieldLogger
}

// NewHandler builds the router for s. A nil logger discards output.
func NewHandler(s *session.Session, timing replay.Timing, logger logrus.FieldLogger) *Handler {
	if logger == nil {
		discard := logrus.New()
		discard.Out = io.Discard
		logger = discard
	}
	h := &Handler{
		session: s,
		timing:  timing,
		logger:  logger.WithField("module", "server"),
	}

	router := httprouter.New()
	router.GET("/grid", h.middleware(h.grid))
	router.GET("/layout", h.middleware(h.layout))
	router.GET("/breach", h.middleware(h.breach))
	router.PUT("/walls/:row/:col", h.middleware(h.setWall(true)))
	router.DELETE("/walls/:row/:col", h.middleware(h.setWall(false)))
	router.PUT("/start/:row/:col", h.middleware(h.moveStart))
	router.PUT("/end/:row/:col", h.middleware(h.moveEnd))
	router.POST("/pointer/down/:row/:col", h.middleware(h.pointerDown))
	router.POST("/pointer/enter/:row/:col", h.middleware(h.pointerEnter))
	router.POST("/pointer/up", h.middleware(h.pointerUp))
	router.POST("/clear", h.middleware(h.clear))
	router.POST("/maze", h.middleware(h.maze))
	router.POST("/search/:algorithm", h.middleware(h.search))
	h.router = router

	return h
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

// Serve listens on addr until ctx is done, then shuts down gracefully.
func Serve(ctx context.Context, addr string, h http.Handler, logger logrus.FieldLogger) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return pkgerrors.Wrapf(err, "listen on %s", addr)
	}
	server := &http.Server{
		ReadHeaderTimeout: 2 * time.Second,
		Handler:           h,
	}
	logger.Infof("listening on http://%s", listener.Addr())

	errc := make(chan error, 1)
	go func() {
		errc <- server.Serve(listener)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return pkgerrors.Wrap(err, "shutdown")
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (h *Handler) middleware(handler httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
		h.logger.Debugf("%s %s", r.Method, r.RequestURI)
		handler(w, r, params)
	}
}

// changeResponse reports an edit and the resulting layout.
type changeResponse struct {
	Changed bool             `json:"changed"`
	Grid    session.Snapshot `json:"grid"`
}

type pointerResponse struct {
	Mode    string           `json:"mode"`
	Changed bool             `json:"changed"`
	Grid    session.Snapshot `json:"grid"`
}

// frame is replay.Frame with its offset in milliseconds.
type frame struct {
	AtMS    int64           `json:"at_ms"`
	Kind    replay.Kind     `json:"kind"`
	Cell    gridgraph.Coord `json:"cell"`
	Message string          `json:"message,omitempty"`
}

type searchResponse struct {
	Algorithm  pathfind.Algorithm `json:"algorithm"`
	Visited    []gridgraph.Coord  `json:"visited"`
	Path       []gridgraph.Coord  `json:"path"`
	Found      bool               `json:"found"`
	Status     string             `json:"status"`
	Generation uint64             `json:"generation"`
	DurationMS int64              `json:"duration_ms"`
	Timeline   []frame            `json:"timeline"`
}

func (h *Handler) grid(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.responseJSON(w, r, http.StatusOK, h.session.Snapshot())
}

func (h *Handler) layout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if err := h.session.Grid().Format(w); err != nil {
		h.logger.Errorf("%v %v: %v", r.Method, r.RequestURI, err)
	}
}

func (h *Handler) breach(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	walls, err := h.session.Breach()
	if errors.Is(err, gridgraph.ErrNoPath) {
		h.responseJSON(w, r, http.StatusConflict, err)
		return
	}
	if err != nil {
		h.responseJSON(w, r, http.StatusInternalServerError, err)
		return
	}
	if walls == nil {
		walls = []gridgraph.Coord{}
	}
	h.responseJSON(w, r, http.StatusOK, map[string]any{"walls": walls})
}

func (h *Handler) setWall(wall bool) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
		c, err := parseCell(params)
		if err != nil {
			h.responseJSON(w, r, http.StatusBadRequest, err)
			return
		}
		h.changed(w, r, h.session.SetWall(c, wall))
	}
}

func (h *Handler) moveStart(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
	c, err := parseCell(params)
	if err != nil {
		h.responseJSON(w, r, http.StatusBadRequest, err)
		return
	}
	h.changed(w, r, h.session.MoveStart(c))
}

func (h *Handler) moveEnd(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
	c, err := parseCell(params)
	if err != nil {
		h.responseJSON(w, r, http.StatusBadRequest, err)
		return
	}
	h.changed(w, r, h.session.MoveEnd(c))
}

func (h *Handler) pointerDown(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
	c, err := parseCell(params)
	if err != nil {
		h.responseJSON(w, r, http.StatusBadRequest, err)
		return
	}
	mode := h.session.PointerDown(c)
	h.responseJSON(w, r, http.StatusOK, pointerResponse{
		Mode:    mode.String(),
		Changed: mode == session.PaintWalls || mode == session.EraseWalls,
		Grid:    h.session.Snapshot(),
	})
}

func (h *Handler) pointerEnter(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
	c, err := parseCell(params)
	if err != nil {
		h.responseJSON(w, r, http.StatusBadRequest, err)
		return
	}
	changed := h.session.PointerEnter(c)
	h.responseJSON(w, r, http.StatusOK, pointerResponse{
		Mode:    h.session.Mode().String(),
		Changed: changed,
		Grid:    h.session.Snapshot(),
	})
}

func (h *Handler) pointerUp(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.session.PointerUp()
	h.responseJSON(w, r, http.StatusOK, pointerResponse{
		Mode: session.Idle.String(),
		Grid: h.session.Snapshot(),
	})
}

func (h *Handler) clear(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := h.session.Clear(); err != nil {
		h.responseJSON(w, r, http.StatusInternalServerError, err)
		return
	}
	h.changed(w, r, true)
}

// maze carves a new maze; ?seed=N makes it reproducible.
func (h *Handler) maze(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	seed := time.Now().UnixNano()
	if v := r.URL.Query().Get("seed"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			h.responseJSON(w, r, http.StatusBadRequest, fmt.Errorf("seed %q: %w", v, err))
			return
		}
		seed = n
	}
	if _, err := h.session.Maze(seed); err != nil {
		h.responseJSON(w, r, http.StatusInternalServerError, err)
		return
	}
	h.changed(w, r, true)
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
	alg, err := pathfind.ParseAlgorithm(params.ByName("algorithm"))
	if err != nil {
		h.responseJSON(w, r, http.StatusNotFound, err)
		return
	}
	res, gen, err := h.session.Search(alg)
	if err != nil {
		h.responseJSON(w, r, http.StatusInternalServerError, err)
		return
	}

	frames := replay.Timeline(res, h.timing)
	timeline := make([]frame, len(frames))
	for i, f := range frames {
		timeline[i] = frame{AtMS: f.At.Milliseconds(), Kind: f.Kind, Cell: f.Cell, Message: f.Message}
	}
	h.responseJSON(w, r, http.StatusOK, searchResponse{
		Algorithm:  res.Algorithm,
		Visited:    res.Visited,
		Path:       res.Path,
		Found:      res.Found,
		Status:     res.Status(),
		Generation: gen,
		DurationMS: replay.Duration(frames).Milliseconds(),
		Timeline:   timeline,
	})
}

func (h *Handler) changed(w http.ResponseWriter, r *http.Request, changed bool) {
	h.responseJSON(w, r, http.StatusOK, changeResponse{Changed: changed, Grid: h.session.Snapshot()})
}

func (h *Handler) responseJSON(w http.ResponseWriter, r *http.Request, code int, v ...any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	var data []byte
	if len(v) == 0 || v[0] == nil {
		data, _ = json.Marshal(struct{}{})
	} else if err, ok := v[0].(error); ok {
		h.logger.Errorf("%v %v: %v", r.Method, r.RequestURI, err)
		data, _ = json.Marshal(map[string]any{
			"error": err.Error(),
		})
	} else {
		data, _ = json.Marshal(v[0])
	}
	w.WriteHeader(code)
	_, _ = w.Write(data)
}

// parseCell reads the :row and :col parameters. Bounds are left to the
// session, which ignores out-of-range edits.
func parseCell(params httprouter.Params) (gridgraph.Coord, error) {
	row, err := strconv.Atoi(params.ByName("row"))
	if err != nil {
		return gridgraph.Coord{}, fmt.Errorf("row %q: %w", params.ByName("row"), err)
	}
	col, err := strconv.Atoi(params.ByName("col"))
	if err != nil {
		return gridgraph.Coord{}, fmt.Errorf("col %q: %w", params.ByName("col"), err)
	}
	return gridgraph.Coord{Row: row, Col: col}, nil
}
