package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/ajaiswal/portfolio-backend/database"
	"github.com/ajaiswal/portfolio-backend/errs"
	"github.com/ajaiswal/portfolio-backend/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ContactNotifier delivers email notifications for a submitted contact
// message. Delivery failures must not affect the HTTP response.
type ContactNotifier interface {
	NotifyContact(contact models.Contact) error
}

type contactHandler struct {
	responder Responder
	logger    zerolog.Logger
	contacts  database.ContactStore
	notifier  ContactNotifier
}

func newContactHandler(contacts database.ContactStore, notifier ContactNotifier) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder: NewResponder(logger),
		logger:    logger,
		contacts:  contacts,
		notifier:  notifier,
	}
}

type contactSubmission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type contactReceipt struct {
	ID        uuid.UUID `json:"id"`
	Timestamp time.Time `json:"timestamp"`
}

// submitContact accepts a visitor message. Only name, email, and message are
// read from the body; the client address and user agent come from the
// request itself.
func (h contactHandler) submitContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to read request body")
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read request body"))
			return
		}

		var submission contactSubmission
		if err := json.NewDecoder(bytes.NewReader(bodyBytes)).Decode(&submission); err != nil {
			h.logger.Error().Err(err).Str("body", string(bodyBytes)).Msg("Failed to decode contact request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		contact := models.NewContact()
		contact.Name = submission.Name
		contact.Email = submission.Email
		contact.Message = submission.Message
		contact.IPAddress = clientIP(r)
		contact.UserAgent = r.UserAgent()

		contact.Normalize()
		if details := models.Validate(&contact); details != nil {
			h.responder.WriteValidationFailed(w, details)
			return
		}

		if err := h.contacts.Add(&contact); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "contact", err))
			return
		}

		if h.notifier != nil {
			go func(saved models.Contact) {
				if err := h.notifier.NotifyContact(saved); err != nil {
					h.logger.Error().Err(err).Str("contactID", saved.ID.String()).Msg("Failed to send contact notification")
				}
			}(contact)
		}

		h.responder.WriteJSON(w, http.StatusCreated, Response{
			Success: true,
			Message: "Message sent successfully! I'll get back to you soon.",
			Data:    contactReceipt{ID: contact.ID, Timestamp: contact.CreatedAt},
		})
	}
}

// listContacts returns a redacted page of messages, newest first.
func (h contactHandler) listContacts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := database.ContactFilter{
			Status: r.URL.Query().Get("status"),
			Page:   queryInt(r, "page", 1),
			Limit:  queryInt(r, "limit", 10),
		}.Normalized()

		contacts, total, err := h.contacts.FindPage(filter)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "contacts", err))
			return
		}
		if contacts == nil {
			contacts = []models.Contact{}
		}
		for i := range contacts {
			contacts[i].Redact()
		}

		h.responder.WriteJSON(w, http.StatusOK, Response{
			Success:    true,
			Count:      intPtr(len(contacts)),
			Pagination: newPagination(filter.Page, filter.Limit, total),
			Data:       contacts,
		})
	}
}

type statusUpdate struct {
	Status string `json:"status"`
}

// updateStatus moves a message through the new/read/replied lifecycle.
func (h contactHandler) updateStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contactID, ok := h.parseID(w, r)
		if !ok {
			return
		}

		var update statusUpdate
		if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		if !models.IsValidContactStatus(update.Status) {
			h.responder.WriteError(w, errs.NewBadRequestError("Status must be: new, read, or replied"))
			return
		}

		contact, err := h.contacts.FindByID(contactID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "contact", err))
			return
		}
		if contact == nil {
			h.responder.WriteError(w, errs.NewNotFound("contact"))
			return
		}

		contact.Status = update.Status
		if err := h.contacts.Update(contact); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "contact", err))
			return
		}

		contact.Redact()
		h.responder.WriteJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "Contact status updated successfully",
			Data:    contact,
		})
	}
}

func (h contactHandler) parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	contactIDStr := chi.URLParam(r, "contactID")
	if contactIDStr == "" {
		h.responder.WriteError(w, errs.NewBadRequestError("missing contactID"))
		return uuid.Nil, false
	}

	contactID, err := uuid.Parse(contactIDStr)
	if err != nil {
		h.responder.WriteError(w, errs.NewBadRequestError("invalid contactID"))
		return uuid.Nil, false
	}
	return contactID, true
}
