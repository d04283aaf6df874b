package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/ajaiswal/portfolio-backend/database"
	"github.com/ajaiswal/portfolio-backend/errs"
	"github.com/ajaiswal/portfolio-backend/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type projectHandler struct {
	responder Responder
	logger    zerolog.Logger
	projects  database.ProjectStore
}

func newProjectHandler(projects database.ProjectStore) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder: NewResponder(logger),
		logger:    logger,
		projects:  projects,
	}
}

// listProjects retrieves projects filtered by featured/status and truncated
// to limit, in canonical display order.
func (h projectHandler) listProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := database.ProjectFilter{
			FeaturedOnly: queryFlag(r, "featured"),
			Status:       r.URL.Query().Get("status"),
			Limit:        queryInt(r, "limit", 0),
		}
		if filter.Status == "" {
			filter.Status = models.ProjectStatusActive
		}

		projects, err := h.projects.Find(filter)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "projects", err))
			return
		}
		if projects == nil {
			projects = []models.Project{}
		}

		h.responder.WriteJSON(w, http.StatusOK, Response{
			Success: true,
			Count:   intPtr(len(projects)),
			Data:    projects,
		})
	}
}

// getProject retrieves a single project by ID.
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, ok := h.parseID(w, r)
		if !ok {
			return
		}

		project, err := h.projects.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFound("project"))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, Response{Success: true, Data: project})
	}
}

// createProject validates the full field set before touching storage; a
// failure enumerates every violating field and writes nothing.
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		project := models.NewProject()
		if !h.decode(w, r, &project) {
			return
		}

		project.Normalize()
		if details := models.Validate(&project); details != nil {
			h.responder.WriteValidationFailed(w, details)
			return
		}

		if err := h.projects.Add(&project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "project", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusCreated, Response{
			Success: true,
			Message: "Project created successfully",
			Data:    project,
		})
	}
}

// updateProject replaces the fields of an existing project and re-runs the
// validators. A missing identity is a distinct not-found outcome.
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, ok := h.parseID(w, r)
		if !ok {
			return
		}

		existing, err := h.projects.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFound("project"))
			return
		}

		project := models.NewProject()
		if !h.decode(w, r, &project) {
			return
		}

		project.Normalize()
		if details := models.Validate(&project); details != nil {
			h.responder.WriteValidationFailed(w, details)
			return
		}

		project.ID = projectID
		project.CreatedAt = existing.CreatedAt

		if err := h.projects.Update(&project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "project", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "Project updated successfully",
			Data:    project,
		})
	}
}

// deleteProject removes a project by ID; a miss is reported, not ignored.
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, ok := h.parseID(w, r)
		if !ok {
			return
		}

		existing, err := h.projects.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFound("project"))
			return
		}

		if err := h.projects.Delete(projectID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "project", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "Project deleted successfully",
		})
	}
}

// toggleFeatured flips the featured flag and reports the new state in the
// message. It takes no body.
func (h projectHandler) toggleFeatured() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, ok := h.parseID(w, r)
		if !ok {
			return
		}

		project, err := h.projects.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFound("project"))
			return
		}

		project.Featured = !project.Featured
		if err := h.projects.Update(project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "project", err))
			return
		}

		state := "unfeatured"
		if project.Featured {
			state = "featured"
		}

		h.responder.WriteJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "Project " + state + " successfully",
			Data:    project,
		})
	}
}

func (h projectHandler) parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	projectIDStr := chi.URLParam(r, "projectID")
	if projectIDStr == "" {
		h.responder.WriteError(w, errs.NewBadRequestError("missing projectID"))
		return uuid.Nil, false
	}

	projectID, err := uuid.Parse(projectIDStr)
	if err != nil {
		h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
		return uuid.Nil, false
	}
	return projectID, true
}

func (h projectHandler) decode(w http.ResponseWriter, r *http.Request, project *models.Project) bool {
	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to read request body")
		h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
		return false
	}

	if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(project); err != nil {
		h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode project request body")
		h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
		return false
	}
	return true
}
