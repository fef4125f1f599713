package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Jamolkhon5/projassist/internal/ai/project/models"
	"github.com/Jamolkhon5/projassist/internal/ai/project/service"
	"github.com/Jamolkhon5/projassist/internal/ai/project/validator"
	"github.com/Jamolkhon5/projassist/internal/apierror"
	"github.com/Jamolkhon5/projassist/internal/auth"
	wire "github.com/Jamolkhon5/projassist/internal/models"
)

// Counters receives one tick per served assistant request.
type Counters interface {
	IncDirectQuestions()
	IncGuidedRequests()
}

type ProjectAssistantHandler struct {
	assistant *service.ProjectAssistant
	counters  Counters
}

func NewProjectAssistantHandler(assistant *service.ProjectAssistant, counters Counters) *ProjectAssistantHandler {
	return &ProjectAssistantHandler{
		assistant: assistant,
		counters:  counters,
	}
}

// DirectQuestion answers a free-form question, with optional chat history.
func (h *ProjectAssistantHandler) DirectQuestion(w http.ResponseWriter, r *http.Request) {
	var req wire.DirectQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierror.Write(w, apierror.Wrap(apierror.KindBadRequest, err, "Invalid request body"))
		return
	}
	if err := validator.ValidateQuestion(req.Question); err != nil {
		apierror.Write(w, apierror.Wrap(apierror.KindBadRequest, err, err.Error()))
		return
	}

	var pt models.ProjectType
	if req.ProjectType == "" {
		pt = h.assistant.Classify(req.Question)
	} else {
		var err error
		if pt, err = models.ParseProjectType(req.ProjectType); err != nil {
			apierror.Write(w, apierror.Wrap(apierror.KindBadRequest, err, err.Error()))
			return
		}
	}

	if h.counters != nil {
		h.counters.IncDirectQuestions()
	}
	log.Printf("Direct question from %s, project type %s", requester(r), pt)
	reply := h.assistant.AskDirect(r.Context(), req.Question, pt, wire.ToTranscript(req.ChatHistory))
	writeJSON(w, http.StatusOK, wire.APIResponse{Response: reply})
}

// GuidedQuestionnaire turns a complete set of answers into advice or ideas.
func (h *ProjectAssistantHandler) GuidedQuestionnaire(w http.ResponseWriter, r *http.Request) {
	var req wire.GuidedQuestionnaireRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierror.Write(w, apierror.Wrap(apierror.KindBadRequest, err, "Invalid request body"))
		return
	}
	if req.Responses.Len() == 0 {
		apierror.Write(w, apierror.BadRequest("responses must not be empty"))
		return
	}

	pt := models.ProjectManagement
	if req.ProjectType != "" {
		var err error
		if pt, err = models.ParseProjectType(req.ProjectType); err != nil {
			apierror.Write(w, apierror.Wrap(apierror.KindBadRequest, err, err.Error()))
			return
		}
	}
	if err := validator.ValidateAnswerKeys(h.assistant.Store().Fields(pt), req.Responses); err != nil {
		apierror.Write(w, apierror.Wrap(apierror.KindBadRequest, err, err.Error()))
		return
	}

	if h.counters != nil {
		h.counters.IncGuidedRequests()
	}
	log.Printf("Guided questionnaire from %s, project type %s, %d answers", requester(r), pt, req.Responses.Len())
	reply := h.assistant.AskGuided(r.Context(), req.Responses, pt)
	writeJSON(w, http.StatusOK, wire.APIResponse{Response: reply})
}

// Questions lists the questionnaire of a project type so clients can render it.
func (h *ProjectAssistantHandler) Questions(w http.ResponseWriter, r *http.Request) {
	pt, err := models.ParseProjectType(chi.URLParam(r, "project_type"))
	if err != nil {
		apierror.Write(w, apierror.Wrap(apierror.KindNotFound, err, err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"project_type": pt,
		"label":        pt.Label(),
		"fields":       h.assistant.Store().Fields(pt),
	})
}

// RegisterRoutes mounts the assistant endpoints on r.
func (h *ProjectAssistantHandler) RegisterRoutes(r chi.Router) {
	r.Post("/api/direct-question", h.DirectQuestion)
	r.Post("/api/guided-questionnaire", h.GuidedQuestionnaire)
	r.Get("/api/questions/{project_type}", h.Questions)
}

// requester names the authenticated client, or "anonymous" when the API runs
// without authentication.
func requester(r *http.Request) string {
	if id, ok := auth.ClientID(r.Context()); ok {
		return id
	}
	return "anonymous"
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}
