package api

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"runtime"
	"time"

	"github.com/ajaiswal/portfolio-backend/database"
	"github.com/ajaiswal/portfolio-backend/errs"
	"github.com/ajaiswal/portfolio-backend/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// adminStores is the slice of the store surface the dashboard aggregates
// over.
type adminStores struct {
	projects     database.ProjectStore
	skills       database.SkillStore
	certificates database.CertificateStore
	contacts     database.ContactStore
}

type adminHandler struct {
	responder     Responder
	logger        zerolog.Logger
	stores        adminStores
	adminEmail    string
	adminPassword string
	jwtSecret     string
	environment   string
	startupTime   time.Time
}

func newAdminHandler(stores adminStores, adminEmail, adminPassword, jwtSecret, environment string, startupTime time.Time) adminHandler {
	logger := log.With().Str("handlerName", "adminHandler").Logger()

	return adminHandler{
		responder:     NewResponder(logger),
		logger:        logger,
		stores:        stores,
		adminEmail:    adminEmail,
		adminPassword: adminPassword,
		jwtSecret:     jwtSecret,
		environment:   environment,
		startupTime:   startupTime,
	}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// login checks the submitted credentials against the configured admin
// account and issues a signed token on success. Wrong email and wrong
// password produce the same response.
func (h adminHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if details := models.Validate(&req); details != nil {
			h.responder.WriteValidationFailed(w, details)
			return
		}

		emailOK := subtle.ConstantTimeCompare([]byte(req.Email), []byte(h.adminEmail)) == 1
		passwordOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.adminPassword)) == 1
		if !emailOK || !passwordOK {
			h.logger.Warn().Str("email", req.Email).Msg("Failed admin login attempt")
			h.responder.WriteError(w, errs.NewInvalidCredentials())
			return
		}

		token, err := issueAdminToken(h.jwtSecret, h.adminEmail, time.Now())
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to sign admin token")
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, loginResponse{
			Success: true,
			Message: "Login successful",
			Token:   token,
			Admin:   adminInfo{Email: h.adminEmail, Role: adminRole},
		})
	}
}

// verify echoes the identity carried by a valid token. The auth middleware
// has already rejected anything invalid by the time this runs.
func (h adminHandler) verify() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := adminFromCtx(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.NewAccessDenied())
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, verifyResponse{
			Success: true,
			Admin:   adminInfo{Email: claims.Email, Role: claims.Role},
		})
	}
}

type dashboardStats struct {
	Projects             int64 `json:"projects"`
	Skills               int64 `json:"skills"`
	Certificates         int64 `json:"certificates"`
	Contacts             int64 `json:"contacts"`
	NewContacts          int64 `json:"newContacts"`
	FeaturedProjects     int64 `json:"featuredProjects"`
	FeaturedCertificates int64 `json:"featuredCertificates"`
}

type systemInfo struct {
	GoVersion   string `json:"goVersion"`
	Uptime      string `json:"uptime"`
	Environment string `json:"environment"`
}

type dashboardData struct {
	Stats          dashboardStats   `json:"stats"`
	RecentContacts []models.Contact `json:"recentContacts"`
	System         systemInfo       `json:"system"`
}

// dashboard aggregates live-content counts, the five most recent messages,
// and process info into a single admin overview. Entity counts cover active
// rows only; featured counts track what the public site highlights.
func (h adminHandler) dashboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats := dashboardStats{}
		var err error

		if stats.Projects, err = h.stores.projects.Count(database.ProjectFilter{Status: models.ProjectStatusActive}); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("count", "projects", err))
			return
		}
		if stats.Skills, err = h.stores.skills.Count(database.SkillFilter{ActiveOnly: true}); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("count", "skills", err))
			return
		}
		if stats.Certificates, err = h.stores.certificates.Count(database.CertificateFilter{ActiveOnly: true}); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("count", "certificates", err))
			return
		}
		if stats.FeaturedProjects, err = h.stores.projects.Count(database.ProjectFilter{FeaturedOnly: true}); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("count", "projects", err))
			return
		}
		if stats.FeaturedCertificates, err = h.stores.certificates.Count(database.CertificateFilter{FeaturedOnly: true}); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("count", "certificates", err))
			return
		}
		if stats.Contacts, err = h.stores.contacts.Count(""); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("count", "contacts", err))
			return
		}
		if stats.NewContacts, err = h.stores.contacts.Count(models.ContactStatusNew); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("count", "contacts", err))
			return
		}

		recent, _, err := h.stores.contacts.FindPage(database.ContactFilter{Page: 1, Limit: 5})
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "contacts", err))
			return
		}
		if recent == nil {
			recent = []models.Contact{}
		}
		for i := range recent {
			recent[i].Redact()
		}

		h.responder.WriteJSON(w, http.StatusOK, Response{
			Success: true,
			Data: dashboardData{
				Stats:          stats,
				RecentContacts: recent,
				System: systemInfo{
					GoVersion:   runtime.Version(),
					Uptime:      time.Since(h.startupTime).Round(time.Second).String(),
					Environment: h.environment,
				},
			},
		})
	}
}

// contacts returns recent messages with submission metadata intact, for the
// admin inbox view.
func (h adminHandler) contacts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := database.ContactFilter{
			Status: r.URL.Query().Get("status"),
			Page:   queryInt(r, "page", 1),
			Limit:  queryInt(r, "limit", 20),
		}.Normalized()

		contacts, total, err := h.stores.contacts.FindPage(filter)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "contacts", err))
			return
		}
		if contacts == nil {
			contacts = []models.Contact{}
		}

		h.responder.WriteJSON(w, http.StatusOK, Response{
			Success:    true,
			Count:      intPtr(len(contacts)),
			Pagination: newPagination(filter.Page, filter.Limit, total),
			Data:       contacts,
		})
	}
}

func (h adminHandler) deleteContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contactIDStr := chi.URLParam(r, "contactID")
		contactID, err := uuid.Parse(contactIDStr)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid contactID"))
			return
		}

		existing, err := h.stores.contacts.FindByID(contactID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "contact", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFound("contact"))
			return
		}

		if err := h.stores.contacts.Delete(contactID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "contact", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "Contact deleted successfully",
		})
	}
}
