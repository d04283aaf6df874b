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

type skillHandler struct {
	responder Responder
	logger    zerolog.Logger
	skills    database.SkillStore
}

func newSkillHandler(skills database.SkillStore) skillHandler {
	logger := log.With().Str("handlerName", "skillHandler").Logger()

	return skillHandler{
		responder: NewResponder(logger),
		logger:    logger,
		skills:    skills,
	}
}

// listSkills retrieves skills filtered by category and active flag. With no
// category filter the payload is a mapping from category to the ordered
// skills in it, instead of a flat array; count stays the flat total either
// way.
func (h skillHandler) listSkills() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := database.SkillFilter{
			Category:   r.URL.Query().Get("category"),
			ActiveOnly: queryDefaultTrue(r, "active"),
		}

		skills, err := h.skills.Find(filter)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "skills", err))
			return
		}
		if skills == nil {
			skills = []models.Skill{}
		}

		var data any = skills
		if filter.Category == "" {
			data = models.GroupSkillsByCategory(skills)
		}

		h.responder.WriteJSON(w, http.StatusOK, Response{
			Success: true,
			Count:   intPtr(len(skills)),
			Data:    data,
		})
	}
}

// listCategories returns the distinct categories among active skills.
func (h skillHandler) listCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := h.skills.Categories()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "skill categories", err))
			return
		}
		if categories == nil {
			categories = []string{}
		}

		h.responder.WriteJSON(w, http.StatusOK, Response{Success: true, Data: categories})
	}
}

func (h skillHandler) getSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skillID, ok := h.parseID(w, r)
		if !ok {
			return
		}

		skill, err := h.skills.FindByID(skillID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "skill", err))
			return
		}
		if skill == nil {
			h.responder.WriteError(w, errs.NewNotFound("skill"))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, Response{Success: true, Data: skill})
	}
}

// createSkill validates then inserts. A duplicate name resolves through the
// store's unique index and surfaces as the distinct already-exists outcome.
func (h skillHandler) createSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skill := models.NewSkill()
		if !h.decode(w, r, &skill) {
			return
		}

		skill.Normalize()
		if details := models.Validate(&skill); details != nil {
			h.responder.WriteValidationFailed(w, details)
			return
		}

		if err := h.skills.Add(&skill); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "skill", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusCreated, Response{
			Success: true,
			Message: "Skill created successfully",
			Data:    skill,
		})
	}
}

func (h skillHandler) updateSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skillID, ok := h.parseID(w, r)
		if !ok {
			return
		}

		existing, err := h.skills.FindByID(skillID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "skill", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFound("skill"))
			return
		}

		skill := models.NewSkill()
		if !h.decode(w, r, &skill) {
			return
		}

		skill.Normalize()
		if details := models.Validate(&skill); details != nil {
			h.responder.WriteValidationFailed(w, details)
			return
		}

		skill.ID = skillID
		skill.CreatedAt = existing.CreatedAt

		if err := h.skills.Update(&skill); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "skill", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "Skill updated successfully",
			Data:    skill,
		})
	}
}

func (h skillHandler) deleteSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skillID, ok := h.parseID(w, r)
		if !ok {
			return
		}

		existing, err := h.skills.FindByID(skillID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "skill", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFound("skill"))
			return
		}

		if err := h.skills.Delete(skillID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "skill", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "Skill deleted successfully",
		})
	}
}

// toggleActive flips isActive and reports the new state. It takes no body.
func (h skillHandler) toggleActive() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skillID, ok := h.parseID(w, r)
		if !ok {
			return
		}

		skill, err := h.skills.FindByID(skillID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "skill", err))
			return
		}
		if skill == nil {
			h.responder.WriteError(w, errs.NewNotFound("skill"))
			return
		}

		skill.IsActive = !skill.IsActive
		if err := h.skills.Update(skill); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "skill", err))
			return
		}

		state := "deactivated"
		if skill.IsActive {
			state = "activated"
		}

		h.responder.WriteJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "Skill " + state + " successfully",
			Data:    skill,
		})
	}
}

func (h skillHandler) parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	skillIDStr := chi.URLParam(r, "skillID")
	if skillIDStr == "" {
		h.responder.WriteError(w, errs.NewBadRequestError("missing skillID"))
		return uuid.Nil, false
	}

	skillID, err := uuid.Parse(skillIDStr)
	if err != nil {
		h.responder.WriteError(w, errs.NewBadRequestError("invalid skillID"))
		return uuid.Nil, false
	}
	return skillID, true
}

func (h skillHandler) decode(w http.ResponseWriter, r *http.Request, skill *models.Skill) bool {
	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to read request body")
		h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
		return false
	}

	if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(skill); err != nil {
		h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode skill request body")
		h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
		return false
	}
	return true
}
