package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/jwanderson/weddingsite/internal/content"
	"github.com/jwanderson/weddingsite/internal/models"
	"github.com/jwanderson/weddingsite/internal/repository"
	"github.com/jwanderson/weddingsite/internal/service"
)

// Server exposes the RSVP service and static site content over HTTP.
type Server struct {
	svc    *service.Service
	logger *logrus.Logger
	mux    *http.ServeMux
}

// NewServer creates a Server, registers all routes, and returns it.
func NewServer(svc *service.Service, logger *logrus.Logger) *Server {
	s := &Server{svc: svc, logger: logger, mux: http.NewServeMux()}
	s.routes()
	return s
}

// Handler returns the http.Handler that can be passed to http.Server,
// with CORS, logging, and metrics applied to every route.
func (s *Server) Handler() http.Handler {
	return s.corsMiddleware(s.loggingMiddleware(s.metricsMiddleware(s.mux)))
}

func (s *Server) routes() {
	s.mux.HandleFunc("/api/rsvp", s.handleRSVP)
	s.mux.HandleFunc("/api/rsvp/{inviteCode}", s.handleRSVPByCode)

	s.mux.HandleFunc("/api/events", s.handleEvents)
	s.mux.HandleFunc("/api/faqs", s.handleFAQs)
	s.mux.HandleFunc("/api/travel", s.handleTravel)

	s.mux.Handle("/metrics", promhttp.Handler())
}

// ---------------------------------------------------------------------------
// RSVP endpoints
// ---------------------------------------------------------------------------

// submitRequest is the POST body. The invite code wins when both the code
// and a party id are present.
type submitRequest struct {
	InviteCode string               `json:"inviteCode,omitempty"`
	PartyID    string               `json:"partyId,omitempty"`
	Response   *models.RsvpResponse `json:"response"`
}

// handleRSVP serves /api/rsvp: lookup by guest name, or submit with the
// identity carried in the body.
func (s *Server) handleRSVP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		firstName := r.URL.Query().Get("firstName")
		lastName := r.URL.Query().Get("lastName")
		if strings.TrimSpace(firstName) == "" || strings.TrimSpace(lastName) == "" {
			s.respondError(w, http.StatusBadRequest, "firstName and lastName query parameters are required")
			return
		}
		s.lookup(w, r, models.NameIdentity(firstName, lastName), "Party not found")
	case http.MethodPost:
		s.submit(w, r, "")
	default:
		s.respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// handleRSVPByCode serves /api/rsvp/{inviteCode}.
func (s *Server) handleRSVPByCode(w http.ResponseWriter, r *http.Request) {
	code := r.PathValue("inviteCode")

	switch r.Method {
	case http.MethodGet:
		if strings.TrimSpace(code) == "" {
			s.respondError(w, http.StatusBadRequest, "Invalid invite code")
			return
		}
		s.lookup(w, r, models.CodeIdentity(code), "Invite code not found")
	case http.MethodPost:
		s.submit(w, r, code)
	default:
		s.respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (s *Server) lookup(w http.ResponseWriter, r *http.Request, identity models.PartyIdentity, notFoundMsg string) {
	record, err := s.svc.Lookup(r.Context(), identity)
	if err != nil {
		s.respondServiceError(w, err, notFoundMsg)
		return
	}
	s.respondJSON(w, http.StatusOK, record)
}

// submit records a response. pathCode, when non-empty, comes from the
// /api/rsvp/{inviteCode} form and takes precedence over the body.
func (s *Server) submit(w http.ResponseWriter, r *http.Request, pathCode string) {
	var req submitRequest
	if ok, msg := s.decodeJSON(r, &req); !ok {
		s.respondErrorDetails(w, http.StatusBadRequest, "Invalid RSVP submission", msg)
		return
	}

	var identity models.PartyIdentity
	switch {
	case strings.TrimSpace(pathCode) != "":
		identity = models.CodeIdentity(pathCode)
	case strings.TrimSpace(req.InviteCode) != "":
		identity = models.CodeIdentity(req.InviteCode)
	case strings.TrimSpace(req.PartyID) != "":
		identity = models.PartyIDIdentity(req.PartyID)
	default:
		s.respondError(w, http.StatusBadRequest, "Invalid RSVP submission")
		return
	}

	if req.Response == nil {
		s.respondError(w, http.StatusBadRequest, "Invalid RSVP submission")
		return
	}

	record, err := s.svc.Submit(r.Context(), identity, req.Response)
	if err != nil {
		s.respondServiceError(w, err, "Invite code not found")
		return
	}
	s.respondJSON(w, http.StatusOK, record)
}

// ---------------------------------------------------------------------------
// Site content endpoints
// ---------------------------------------------------------------------------

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	s.respondJSON(w, http.StatusOK, content.Events())
}

func (s *Server) handleFAQs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	s.respondJSON(w, http.StatusOK, content.FAQs())
}

func (s *Server) handleTravel(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.respondError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	s.respondJSON(w, http.StatusOK, content.TravelGuide())
}

// ---------------------------------------------------------------------------
// JSON helpers
// ---------------------------------------------------------------------------

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			s.logger.WithError(err).Error("Failed to encode JSON response")
		}
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, errorResponse{Error: message})
}

func (s *Server) respondErrorDetails(w http.ResponseWriter, status int, message, details string) {
	s.respondJSON(w, status, errorResponse{Error: message, Details: details})
}

// respondServiceError translates the service error taxonomy into the
// HTTP shapes the site's client expects. Nothing propagates unhandled.
func (s *Server) respondServiceError(w http.ResponseWriter, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		s.respondError(w, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, service.ErrValidation):
		s.respondErrorDetails(w, http.StatusBadRequest, "Invalid RSVP submission", err.Error())
	case errors.Is(err, repository.ErrNotConfigured):
		s.logger.WithError(err).Error("Store is not configured")
		s.respondErrorDetails(w, http.StatusInternalServerError, "Internal server error", err.Error())
	default:
		s.logger.WithError(err).Error("RSVP request failed")
		s.respondErrorDetails(w, http.StatusInternalServerError, "Internal server error", err.Error())
	}
}

// decodeJSON reads the request body into dst and returns an error message
// on failure. The caller should return immediately when ok == false.
func (s *Server) decodeJSON(r *http.Request, dst any) (ok bool, errMsg string) {
	if r.Body == nil {
		return false, "request body is empty"
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return false, fmt.Sprintf("invalid JSON: %v", err)
	}
	return true, ""
}
