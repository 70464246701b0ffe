package server

import (
	"errors"
	"net/http"
	"strings"

	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	signupform "github.com/goliatone/go-signupform"
	"github.com/goliatone/go-signupform/pkg/form"
	"github.com/goliatone/go-signupform/pkg/render"
)

func (s *Server) newApp(r *http.Request) (*signupform.App, error) {
	return signupform.New(
		signupform.WithOrchestrator(s.orchestrator),
		signupform.WithLogger(loggerFrom(r.Context(), s.logger)),
		signupform.WithTheme(s.theme),
	)
}

func (s *Server) handleShow(w http.ResponseWriter, r *http.Request) {
	app, err := s.newApp(r)
	if err != nil {
		s.fail(w, r, "create form", err)
		return
	}
	s.respond(w, r, app, http.StatusOK)
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form payload", http.StatusBadRequest)
		return
	}

	app, err := s.newApp(r)
	if err != nil {
		s.fail(w, r, "create form", err)
		return
	}
	app.Restore(r.PostForm)

	status := http.StatusOK
	if err := app.Dispatch(r.PostForm.Get(render.ActionField)); err != nil {
		logger := loggerFrom(r.Context(), s.logger)
		if !errors.Is(err, form.ErrMinimumRows) && !errors.Is(err, form.ErrIndexOutOfRange) {
			logger.Warn("rejected form action", zap.Error(err))
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		logger.Debug("ignored form action", zap.Error(err))
	}
	if app.Submitted() && len(app.Controller().Errors()) > 0 {
		status = http.StatusUnprocessableEntity
	}
	s.respond(w, r, app, status)
}

// respond renders app with the renderer named by ?renderer=, or as JSON when
// ?format=json asks for the form model.
func (s *Server) respond(w http.ResponseWriter, r *http.Request, app *signupform.App, status int) {
	query := r.URL.Query()
	if strings.EqualFold(strings.TrimSpace(query.Get("format")), "json") {
		built, err := app.Form(r.Context())
		if err != nil {
			s.fail(w, r, "build form model", err)
			return
		}
		writeJSON(w, status, map[string]any{
			"form":   built,
			"hidden": app.RenderOptions().Hidden,
			"output": app.Output(),
		})
		return
	}

	rendererName := strings.TrimSpace(query.Get("renderer"))
	if rendererName == "" {
		rendererName = s.renderer
	}
	contentType, err := app.ContentType(rendererName)
	if err != nil {
		http.Error(w, "renderer not found", http.StatusNotFound)
		return
	}
	body, err := app.Render(r.Context(), rendererName)
	if err != nil {
		s.fail(w, r, "render form", err)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		loggerFrom(r.Context(), s.logger).Debug("write response", zap.Error(err))
	}
}

func (s *Server) handleContract(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(s.contract)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, action string, err error) {
	loggerFrom(r.Context(), s.logger).Error(action, zap.Error(err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
