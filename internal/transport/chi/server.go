// Package chi implements the HTTP API on top of the chi router.
package chi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/formdex/internal/db"
	"github.com/kailas-cloud/formdex/internal/domain"
	domform "github.com/kailas-cloud/formdex/internal/domain/form"
	"github.com/kailas-cloud/formdex/internal/domain/form/kind"
	formuc "github.com/kailas-cloud/formdex/internal/usecase/form"
	publishuc "github.com/kailas-cloud/formdex/internal/usecase/publish"
)

// maxDocumentBytes caps import and save request bodies.
const maxDocumentBytes = 1 << 20

type errorCode string

const (
	codeBadRequest        errorCode = "bad_request"
	codeValidationFailed  errorCode = "validation_failed"
	codeFormNotFound      errorCode = "form_not_found"
	codeFieldNotFound     errorCode = "field_not_found"
	codeAlreadyExists     errorCode = "already_exists"
	codeInvalidMove       errorCode = "invalid_move"
	codeUnknownKind       errorCode = "unknown_field_type"
	codeUnsupportedKind   errorCode = "unsupported_field_type"
	codeMalformedDocument errorCode = "malformed_document"
	codeRemoteUnavailable errorCode = "remote_unavailable"
	codePublishRejected   errorCode = "publish_rejected"
	codeInternalError     errorCode = "internal_error"
)

type errorResponse struct {
	Code    errorCode `json:"code"`
	Message string    `json:"message"`
	Errors  []string  `json:"errors,omitempty"`
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server exposes the form builder and publish use cases over HTTP.
type Server struct {
	forms         *formuc.Service
	publisher     *publishuc.Service
	pinger        db.Pinger
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server. publisher may be nil when no remote
// site is configured; the publish routes then answer 503.
func NewServer(forms *formuc.Service, publisher *publishuc.Service, pinger db.Pinger, logger *zap.Logger) *Server {
	s := &Server{
		forms:     forms,
		publisher: publisher,
		pinger:    pinger,
		logger:    logger,
	}
	s.errorHandlers = []errorHandler{
		validationHandler,
		sentinelHandler(domain.ErrFormNotFound, http.StatusNotFound, codeFormNotFound),
		sentinelHandler(domain.ErrFieldNotFound, http.StatusNotFound, codeFieldNotFound),
		sentinelHandler(domain.ErrAlreadyExists, http.StatusConflict, codeAlreadyExists),
		sentinelHandler(domain.ErrInvalidMove, http.StatusConflict, codeInvalidMove),
		sentinelHandler(domain.ErrUnknownKind, http.StatusBadRequest, codeUnknownKind),
		sentinelHandler(domain.ErrMalformedDocument, http.StatusBadRequest, codeMalformedDocument),
		sentinelHandler(domain.ErrUnsupportedKind, http.StatusUnprocessableEntity, codeUnsupportedKind),
		sentinelHandler(domain.ErrRemoteUnavailable, http.StatusBadGateway, codeRemoteUnavailable),
		sentinelHandler(domain.ErrPublishRejected, http.StatusUnprocessableEntity, codePublishRejected),
	}
	return s
}

// Routes mounts all API routes on the router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/field-types", s.ListFieldTypes)

		r.Route("/forms", func(r chi.Router) {
			r.Post("/", s.CreateForm)
			r.Get("/", s.ListForms)
			r.Post("/import", s.ImportForm)

			r.Route("/{uid}", func(r chi.Router) {
				r.Get("/", s.GetForm)
				r.Put("/", s.SaveForm)
				r.Delete("/", s.DeleteForm)
				r.Get("/validate", s.ValidateForm)
				r.Get("/export", s.ExportForm)
				r.Post("/publish", s.PublishForm)

				r.Route("/fields", func(r chi.Router) {
					r.Post("/", s.AddField)
					r.Delete("/{fieldID}", s.RemoveField)
					r.Post("/{fieldID}/duplicate", s.DuplicateField)
					r.Post("/{fieldID}/move-up", s.MoveFieldUp)
					r.Post("/{fieldID}/move-down", s.MoveFieldDown)
				})
			})
		})

		r.Route("/remote", func(r chi.Router) {
			r.Get("/forms", s.ListRemoteForms)
			r.Get("/status", s.RemoteStatus)
		})
	})
}

// CreateForm handles POST /api/v1/forms.
func (s *Server) CreateForm(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title string `json:"title"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	f, err := s.forms.Create(r.Context(), req.Title)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.Header().Set("Location", "/api/v1/forms/"+f.UID)
	writeJSON(w, http.StatusCreated, f)
}

// ListForms handles GET /api/v1/forms.
func (s *Server) ListForms(w http.ResponseWriter, r *http.Request) {
	forms, err := s.forms.List(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"items": forms,
		"total": len(forms),
	})
}

// GetForm handles GET /api/v1/forms/{uid}.
func (s *Server) GetForm(w http.ResponseWriter, r *http.Request) {
	f, err := s.forms.Get(r.Context(), chi.URLParam(r, "uid"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, f)
}

// SaveForm handles PUT /api/v1/forms/{uid}. The body is a full form
// document; the uid in the path wins over any uid in the body.
func (s *Server) SaveForm(w http.ResponseWriter, r *http.Request) {
	doc, err := io.ReadAll(io.LimitReader(r.Body, maxDocumentBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Failed to read request body")
		return
	}

	f, err := domform.Decode(doc)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	f.UID = chi.URLParam(r, "uid")

	saved, err := s.forms.Save(r.Context(), f)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

// DeleteForm handles DELETE /api/v1/forms/{uid}.
func (s *Server) DeleteForm(w http.ResponseWriter, r *http.Request) {
	if err := s.forms.Delete(r.Context(), chi.URLParam(r, "uid")); err != nil {
		s.handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ValidateForm handles GET /api/v1/forms/{uid}/validate.
func (s *Server) ValidateForm(w http.ResponseWriter, r *http.Request) {
	msgs, err := s.forms.Validate(r.Context(), chi.URLParam(r, "uid"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	if msgs == nil {
		msgs = []string{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"valid":  len(msgs) == 0,
		"errors": msgs,
	})
}

// ExportForm handles GET /api/v1/forms/{uid}/export. The response body is
// the form document itself, suitable for re-import.
func (s *Server) ExportForm(w http.ResponseWriter, r *http.Request) {
	doc, err := s.forms.Export(r.Context(), chi.URLParam(r, "uid"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="form.json"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc)
}

// ImportForm handles POST /api/v1/forms/import. The body is a form document
// produced by export.
func (s *Server) ImportForm(w http.ResponseWriter, r *http.Request) {
	doc, err := io.ReadAll(io.LimitReader(r.Body, maxDocumentBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Failed to read request body")
		return
	}

	f, err := s.forms.Import(r.Context(), doc)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.Header().Set("Location", "/api/v1/forms/"+f.UID)
	writeJSON(w, http.StatusCreated, f)
}

// AddField handles POST /api/v1/forms/{uid}/fields.
func (s *Server) AddField(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Type     string `json:"type"`
		Position *int   `json:"position"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	position := -1
	if req.Position != nil {
		position = *req.Position
	}

	f, err := s.forms.AddField(r.Context(), chi.URLParam(r, "uid"), kind.Kind(req.Type), position)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, f)
}

// RemoveField handles DELETE /api/v1/forms/{uid}/fields/{fieldID}.
func (s *Server) RemoveField(w http.ResponseWriter, r *http.Request) {
	s.fieldMutation(w, r, s.forms.RemoveField)
}

// DuplicateField handles POST /api/v1/forms/{uid}/fields/{fieldID}/duplicate.
func (s *Server) DuplicateField(w http.ResponseWriter, r *http.Request) {
	s.fieldMutation(w, r, s.forms.DuplicateField)
}

// MoveFieldUp handles POST /api/v1/forms/{uid}/fields/{fieldID}/move-up.
func (s *Server) MoveFieldUp(w http.ResponseWriter, r *http.Request) {
	s.fieldMutation(w, r, s.forms.MoveFieldUp)
}

// MoveFieldDown handles POST /api/v1/forms/{uid}/fields/{fieldID}/move-down.
func (s *Server) MoveFieldDown(w http.ResponseWriter, r *http.Request) {
	s.fieldMutation(w, r, s.forms.MoveFieldDown)
}

func (s *Server) fieldMutation(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, uid string, fieldID int) (domform.Form, error),
) {
	fieldID, err := strconv.Atoi(chi.URLParam(r, "fieldID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Field id must be an integer")
		return
	}

	f, err := op(r.Context(), chi.URLParam(r, "uid"), fieldID)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, f)
}

// PublishForm handles POST /api/v1/forms/{uid}/publish.
func (s *Server) PublishForm(w http.ResponseWriter, r *http.Request) {
	if s.publisher == nil {
		writeError(w, http.StatusServiceUnavailable, codeRemoteUnavailable, "no remote site configured")
		return
	}

	var req struct {
		UpdateExisting bool `json:"update_existing"`
	}
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
			return
		}
	}

	f, err := s.publisher.Publish(r.Context(), chi.URLParam(r, "uid"), req.UpdateExisting)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"uid":       f.UID,
		"remote_id": f.ID,
		"title":     f.Title,
	})
}

// ListRemoteForms handles GET /api/v1/remote/forms.
func (s *Server) ListRemoteForms(w http.ResponseWriter, r *http.Request) {
	if s.publisher == nil {
		writeError(w, http.StatusServiceUnavailable, codeRemoteUnavailable, "no remote site configured")
		return
	}

	forms, err := s.publisher.ListRemote(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	if forms == nil {
		forms = []publishuc.RemoteForm{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"items": forms,
		"total": len(forms),
	})
}

// RemoteStatus handles GET /api/v1/remote/status.
func (s *Server) RemoteStatus(w http.ResponseWriter, r *http.Request) {
	if s.publisher == nil {
		writeError(w, http.StatusServiceUnavailable, codeRemoteUnavailable, "no remote site configured")
		return
	}

	if err := s.publisher.TestConnection(r.Context()); err != nil {
		s.logger.Warn("remote connection test failed", zap.Error(err))
		writeJSON(w, http.StatusOK, map[string]any{
			"connected": false,
			"error":     safeDomainMessage(err),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"connected": true})
}

// ListFieldTypes handles GET /api/v1/field-types.
func (s *Server) ListFieldTypes(w http.ResponseWriter, _ *http.Request) {
	catalog := kind.Catalog()

	type entry struct {
		Type        string `json:"type"`
		Name        string `json:"name"`
		Description string `json:"description"`
		Category    string `json:"category"`
	}

	items := make([]entry, 0, len(kind.All))
	for _, k := range kind.All {
		info := catalog[k]
		items = append(items, entry{
			Type:        string(k),
			Name:        info.Name,
			Description: info.Description,
			Category:    info.Category,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	checks := map[string]string{"database": "ok"}
	status, httpStatus := "healthy", http.StatusOK

	if err := s.pinger.Ping(r.Context()); err != nil {
		checks["database"] = "unavailable"
		status, httpStatus = "unhealthy", http.StatusServiceUnavailable
		s.logger.Warn("health check failed", zap.Error(err))
	}

	writeJSON(w, httpStatus, map[string]any{
		"status": status,
		"checks": checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code errorCode, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrFormNotFound,
		domain.ErrFieldNotFound,
		domain.ErrAlreadyExists,
		domain.ErrInvalidMove,
		domain.ErrInvalidForm,
		domain.ErrMalformedDocument,
		domain.ErrUnknownKind,
		domain.ErrUnsupportedKind,
		domain.ErrRemoteUnavailable,
		domain.ErrPublishRejected,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code errorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

// validationHandler handles ValidationError with the full message list.
func validationHandler(w http.ResponseWriter, err error, msg string) bool {
	if !errors.Is(err, domain.ErrInvalidForm) {
		return false
	}
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Code:    codeValidationFailed,
			Message: domain.ErrInvalidForm.Error(),
			Errors:  ve.Messages,
		})
		return true
	}
	writeError(w, http.StatusUnprocessableEntity, codeValidationFailed, msg)
	return true
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}
