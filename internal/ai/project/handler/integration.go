package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Jamolkhon5/projassist/internal/apierror"
	wire "github.com/Jamolkhon5/projassist/internal/models"
	"github.com/Jamolkhon5/projassist/internal/repository"
)

const projectManagementIntegration = "project_management"

// IntegrationHandler accepts projects pushed by external management systems.
type IntegrationHandler struct {
	store *repository.Integrations
	now   func() time.Time
}

func NewIntegrationHandler(store *repository.Integrations) *IntegrationHandler {
	return &IntegrationHandler{store: store, now: time.Now}
}

func (h *IntegrationHandler) IntegrateProject(w http.ResponseWriter, r *http.Request) {
	var req wire.IntegrationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierror.Write(w, apierror.Wrap(apierror.KindBadRequest, err, "Invalid request body"))
		return
	}
	if strings.TrimSpace(req.ProjectID) == "" {
		apierror.Write(w, apierror.BadRequest("project_id is required"))
		return
	}
	if req.IntegrationType != projectManagementIntegration {
		apierror.Write(w, apierror.New(apierror.KindUnsupportedIntegration, "Unsupported integration type"))
		return
	}

	p := h.store.Save(req.ProjectID, req.ProjectData)
	writeJSON(w, http.StatusOK, wire.IntegrationResponse{
		Status:  "success",
		Message: "Project successfully integrated",
		Data: map[string]interface{}{
			"project_id": p.ProjectID,
			"status":     "integrated",
			"details":    p.Data,
		},
	})
}

// IntegrationStatus reports a project as active. Unknown projects are
// reported with the current time.
func (h *IntegrationHandler) IntegrationStatus(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "project_id")
	updated := h.now().UTC()
	if p, ok := h.store.Get(projectID); ok {
		updated = p.LastUpdated
	}
	writeJSON(w, http.StatusOK, wire.IntegrationStatus{
		ProjectID:   projectID,
		Status:      "active",
		LastUpdated: updated,
	})
}

func (h *IntegrationHandler) Sync(w http.ResponseWriter, r *http.Request) {
	h.store.Sync()
	writeJSON(w, http.StatusOK, wire.SyncResponse{
		Status:    "success",
		Message:   "Projects synchronized successfully",
		Timestamp: h.now().UTC(),
	})
}

func (h *IntegrationHandler) RegisterRoutes(r chi.Router) {
	r.Post("/api/integrate/project", h.IntegrateProject)
	r.Get("/api/integrate/status/{project_id}", h.IntegrationStatus)
	r.Post("/api/integrate/sync", h.Sync)
}
