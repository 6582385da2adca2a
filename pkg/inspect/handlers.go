package inspect

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/vango-dev/niber/internal/errors"
	"github.com/vango-dev/niber/pkg/niber"
	"github.com/vango-dev/niber/pkg/render"
)

// DispatchRequest is the body of POST /dispatch.
type DispatchRequest struct {
	// Path is the child index path from the container root.
	Path []int `json:"path"`

	// Event is the event type. Default: "click".
	Event string `json:"event"`

	// Data is passed to listeners as Event.Data.
	Data any `json:"data,omitempty"`
}

// DispatchResponse is the reply to POST /dispatch.
type DispatchResponse struct {
	Handled bool                    `json:"handled"`
	Tree    *niber.InstanceSnapshot `json:"tree"`
}

func (s *Server) handleTree(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	snap := s.rt.Snapshot()
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleHTML(w http.ResponseWriter, r *http.Request) {
	page := render.PageData{
		Title:   s.title,
		LiveURL: fmt.Sprintf("ws://%s/ws", r.Host),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	s.mu.Lock()
	err := s.renderer.RenderPage(w, s.container, page)
	s.mu.Unlock()
	if err != nil {
		s.logger.Error("render page failed", "error", err)
	}
}

func (s *Server) handleDispatch(w http.ResponseWriter, r *http.Request) {
	var req DispatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errors.New("E042").Wrap(err))
		return
	}
	if req.Event == "" {
		req.Event = "click"
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	node, err := s.container.Root().At(req.Path)
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}

	handled := node.Dispatch(req.Event, req.Data)
	s.logger.Debug("dispatched", "path", req.Path, "event", req.Event, "handled", handled)

	writeJSON(w, http.StatusOK, DispatchResponse{
		Handled: handled,
		Tree:    s.rt.Snapshot(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
	w.Write([]byte("\n"))
}

func writeError(w http.ResponseWriter, status int, err error) {
	ne, ok := err.(*errors.NiberError)
	if !ok {
		ne = errors.Newf(errors.CategoryPlatform, "%s", err.Error())
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(ne.FormatJSON()))
	w.Write([]byte("\n"))
}
