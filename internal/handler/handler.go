package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/Jamolkhon5/projassist/internal/apierror"
	"github.com/Jamolkhon5/projassist/internal/auth"
	"github.com/Jamolkhon5/projassist/internal/models"
)

const welcomeMessage = "Welcome to the Project Management Chatbot API"

// StatsSource provides the counters served by /api/stats.
type StatsSource interface {
	GetStats() map[string]interface{}
}

type Handler struct {
	issuer *auth.Issuer
	stats  StatsSource
}

// NewHandler creates the service-level handlers. issuer is nil when the API
// runs without authentication.
func NewHandler(issuer *auth.Issuer, stats StatsSource) *Handler {
	return &Handler{
		issuer: issuer,
		stats:  stats,
	}
}

func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"message": welcomeMessage})
}

// Auth exchanges client credentials for a bearer token.
func (h *Handler) Auth(w http.ResponseWriter, r *http.Request) {
	if h.issuer == nil {
		apierror.Write(w, apierror.NotFound("authentication is disabled"))
		return
	}

	var req models.AuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierror.Write(w, apierror.Wrap(apierror.KindBadRequest, err, "Invalid request body"))
		return
	}

	token, err := h.issuer.Issue(req.ClientID, req.ClientSecret)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			apierror.Write(w, apierror.Wrap(apierror.KindInvalidCredentials, err, "Invalid client credentials"))
			return
		}
		apierror.Write(w, apierror.Internal(err))
		return
	}

	log.Printf("Issued token for client %s", req.ClientID)
	writeJSON(w, models.TokenResponse{
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
		ExpiresIn:   token.ExpiresIn,
	})
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.stats.GetStats())
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}
