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

type certificateHandler struct {
	responder    Responder
	logger       zerolog.Logger
	certificates database.CertificateStore
}

func newCertificateHandler(certificates database.CertificateStore) certificateHandler {
	logger := log.With().Str("handlerName", "certificateHandler").Logger()

	return certificateHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		certificates: certificates,
	}
}

// listCertificates retrieves certificates filtered by featured/category/
// active and truncated to limit, in canonical display order.
func (h certificateHandler) listCertificates() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := database.CertificateFilter{
			FeaturedOnly: queryFlag(r, "featured"),
			Category:     r.URL.Query().Get("category"),
			ActiveOnly:   queryDefaultTrue(r, "active"),
			Limit:        queryInt(r, "limit", 0),
		}

		certificates, err := h.certificates.Find(filter)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "certificates", err))
			return
		}
		if certificates == nil {
			certificates = []models.Certificate{}
		}

		h.responder.WriteJSON(w, http.StatusOK, Response{
			Success: true,
			Count:   intPtr(len(certificates)),
			Data:    certificates,
		})
	}
}

// listCategories returns the distinct categories among active certificates.
func (h certificateHandler) listCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := h.certificates.Categories()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "certificate categories", err))
			return
		}
		if categories == nil {
			categories = []string{}
		}

		h.responder.WriteJSON(w, http.StatusOK, Response{Success: true, Data: categories})
	}
}

func (h certificateHandler) getCertificate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		certificateID, ok := h.parseID(w, r)
		if !ok {
			return
		}

		certificate, err := h.certificates.FindByID(certificateID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "certificate", err))
			return
		}
		if certificate == nil {
			h.responder.WriteError(w, errs.NewNotFound("certificate"))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, Response{Success: true, Data: certificate})
	}
}

func (h certificateHandler) createCertificate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		certificate := models.NewCertificate()
		if !h.decode(w, r, &certificate) {
			return
		}

		certificate.Normalize()
		if details := models.Validate(&certificate); details != nil {
			h.responder.WriteValidationFailed(w, details)
			return
		}

		if err := h.certificates.Add(&certificate); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "certificate", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusCreated, Response{
			Success: true,
			Message: "Certificate created successfully",
			Data:    certificate,
		})
	}
}

func (h certificateHandler) updateCertificate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		certificateID, ok := h.parseID(w, r)
		if !ok {
			return
		}

		existing, err := h.certificates.FindByID(certificateID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "certificate", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFound("certificate"))
			return
		}

		certificate := models.NewCertificate()
		if !h.decode(w, r, &certificate) {
			return
		}

		certificate.Normalize()
		if details := models.Validate(&certificate); details != nil {
			h.responder.WriteValidationFailed(w, details)
			return
		}

		certificate.ID = certificateID
		certificate.CreatedAt = existing.CreatedAt

		if err := h.certificates.Update(&certificate); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "certificate", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "Certificate updated successfully",
			Data:    certificate,
		})
	}
}

func (h certificateHandler) deleteCertificate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		certificateID, ok := h.parseID(w, r)
		if !ok {
			return
		}

		existing, err := h.certificates.FindByID(certificateID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "certificate", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFound("certificate"))
			return
		}

		if err := h.certificates.Delete(certificateID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "certificate", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "Certificate deleted successfully",
		})
	}
}

// toggleFeatured flips the featured flag; takes no body.
func (h certificateHandler) toggleFeatured() http.HandlerFunc {
	return h.toggle(func(c *models.Certificate) (bool, string) {
		c.Featured = !c.Featured
		return c.Featured, "featured"
	})
}

// toggleVerified flips the verified flag; takes no body.
func (h certificateHandler) toggleVerified() http.HandlerFunc {
	return h.toggle(func(c *models.Certificate) (bool, string) {
		c.Verified = !c.Verified
		return c.Verified, "verified"
	})
}

// toggle implements the shared flip-persist-report flow for the boolean
// toggles. flip mutates the certificate and returns the new value plus the
// positive form of the state word.
func (h certificateHandler) toggle(flip func(*models.Certificate) (bool, string)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		certificateID, ok := h.parseID(w, r)
		if !ok {
			return
		}

		certificate, err := h.certificates.FindByID(certificateID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "certificate", err))
			return
		}
		if certificate == nil {
			h.responder.WriteError(w, errs.NewNotFound("certificate"))
			return
		}

		on, word := flip(certificate)
		if err := h.certificates.Update(certificate); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "certificate", err))
			return
		}

		state := "un" + word
		if on {
			state = word
		}

		h.responder.WriteJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "Certificate " + state + " successfully",
			Data:    certificate,
		})
	}
}

func (h certificateHandler) parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	certificateIDStr := chi.URLParam(r, "certificateID")
	if certificateIDStr == "" {
		h.responder.WriteError(w, errs.NewBadRequestError("missing certificateID"))
		return uuid.Nil, false
	}

	certificateID, err := uuid.Parse(certificateIDStr)
	if err != nil {
		h.responder.WriteError(w, errs.NewBadRequestError("invalid certificateID"))
		return uuid.Nil, false
	}
	return certificateID, true
}

func (h certificateHandler) decode(w http.ResponseWriter, r *http.Request, certificate *models.Certificate) bool {
	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to read request body")
		h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
		return false
	}

	if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(certificate); err != nil {
		h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode certificate request body")
		h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
		return false
	}
	return true
}
