package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ajaiswal/portfolio-backend/config"
	"github.com/ajaiswal/portfolio-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const resendEndpoint = "https://api.resend.com/emails"

// resendEmailRequest represents the request payload for the Resend API
type resendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Html    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
}

// resendEmailResponse represents the response from the Resend API
type resendEmailResponse struct {
	ID string `json:"id"`
}

// resendErrorResponse represents an error response from the Resend API
type resendErrorResponse struct {
	Message string `json:"message"`
}

// Mailer delivers contact-form notifications through the Resend API. With no
// API key configured (local development) every send is skipped with a log
// line instead of failing.
type Mailer struct {
	apiKey      string
	fromEmail   string
	notifyEmail string
	client      *http.Client
	logger      zerolog.Logger
}

// NewMailer builds a Mailer from configuration:
//   - RESEND_API_KEY: Resend API key; empty disables delivery
//   - RESEND_FROM_EMAIL: sender address (e.g. "Portfolio <noreply@example.com>")
//   - CONTACT_NOTIFY_EMAIL: site owner address receiving submission notices
func NewMailer(cfg map[string]string) *Mailer {
	return &Mailer{
		apiKey:      config.GetString(cfg, "RESEND_API_KEY", ""),
		fromEmail:   config.GetString(cfg, "RESEND_FROM_EMAIL", "Portfolio <noreply@localhost>"),
		notifyEmail: config.GetString(cfg, "CONTACT_NOTIFY_EMAIL", ""),
		client:      &http.Client{Timeout: 15 * time.Second},
		logger:      log.With().Str("service", "mailer").Logger(),
	}
}

// NotifyContact sends the owner notice and the submitter acknowledgement for
// a stored contact message. Both sends are attempted even if the first fails;
// the combined error is returned for logging only, since the record is
// already durable and the response to the submitter must not depend on mail
// delivery.
func (m *Mailer) NotifyContact(contact models.Contact) error {
	if m.apiKey == "" {
		m.logger.Debug().Str("contactId", contact.ID.String()).Msg("No mail API key configured, skipping notification")
		return nil
	}

	var errs []error

	if m.notifyEmail != "" {
		subject := fmt.Sprintf("New Portfolio Contact: %s", contact.Name)
		if err := m.send(subject, ownerNoticeHTML(contact), []string{m.notifyEmail}); err != nil {
			errs = append(errs, fmt.Errorf("owner notice: %w", err))
		}
	}

	if err := m.send("Thank you for reaching out", acknowledgementHTML(contact), []string{contact.Email}); err != nil {
		errs = append(errs, fmt.Errorf("acknowledgement: %w", err))
	}

	return errors.Join(errs...)
}

// send delivers one email through the Resend API.
func (m *Mailer) send(subject, body string, recipients []string) error {
	if len(recipients) == 0 {
		return fmt.Errorf("at least one recipient is required")
	}

	payload := resendEmailRequest{
		From:    m.fromEmail,
		To:      recipients,
		Subject: subject,
		Html:    body,
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, resendEndpoint, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("failed to create Resend API request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request to Resend API: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read Resend API response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errorResp resendErrorResponse
		if err := json.Unmarshal(bodyBytes, &errorResp); err == nil {
			return fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, errorResp.Message)
		}
		return fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var emailResponse resendEmailResponse
	if err := json.Unmarshal(bodyBytes, &emailResponse); err != nil {
		m.logger.Warn().Err(err).Msg("Failed to parse Resend email response, but email was sent")
	} else {
		m.logger.Info().Str("emailId", emailResponse.ID).Msg("Successfully sent email via Resend")
	}

	return nil
}

func ownerNoticeHTML(contact models.Contact) string {
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>New Contact Form Submission</h2>
  <p><strong>Name:</strong> %s</p>
  <p><strong>Email:</strong> %s</p>
  <p><strong>Message:</strong></p>
  <div style="background: #f8f9fa; padding: 15px; border-radius: 4px;">%s</div>
  <p style="color: #6c757d; font-size: 14px;">Submitted: %s<br>IP: %s</p>
</div>`,
		html.EscapeString(contact.Name),
		html.EscapeString(contact.Email),
		htmlMessage(contact.Message),
		contact.CreatedAt.Format(time.RFC1123),
		html.EscapeString(contact.IPAddress),
	)
}

func acknowledgementHTML(contact models.Contact) string {
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>Thank You for Your Message!</h2>
  <p>Hi %s,</p>
  <p>Thank you for reaching out through my portfolio website. I've received your message and will get back to you as soon as possible.</p>
  <p><strong>Your message:</strong></p>
  <div style="background: #f8f9fa; padding: 15px; border-radius: 4px;">%s</div>
  <p style="color: #6c757d; font-size: 14px;">This is an automated response. Please do not reply to this email.</p>
</div>`,
		html.EscapeString(contact.Name),
		htmlMessage(contact.Message),
	)
}

func htmlMessage(message string) string {
	return strings.ReplaceAll(html.EscapeString(message), "\n", "<br>")
}
