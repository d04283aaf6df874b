// Package client loads portfolio content from the backend for frontend
// rendering, degrading to bundled static content per section when the
// backend is unreachable.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/ajaiswal/portfolio-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const featuredProjectCount = 7

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     log.With().Str("component", "contentClient").Logger(),
	}
}

// Content is everything the portfolio pages render. Each section carries a
// flag saying whether it came from the backend or from the static fallback.
type Content struct {
	Projects     []models.Project
	Skills       map[string][]models.Skill
	Certificates []models.Certificate

	ProjectsLive     bool
	SkillsLive       bool
	CertificatesLive bool
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
	Count   *int            `json:"count"`
}

// LoadContent fetches the three sections concurrently. A section that fails
// for any reason falls back to static content without affecting the others,
// so LoadContent itself never returns an error.
func (c *Client) LoadContent(ctx context.Context) Content {
	content := Content{
		Projects:     fallbackProjects(),
		Skills:       fallbackSkills(),
		Certificates: fallbackCertificates(),
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		projects, err := c.loadProjects(ctx)
		if err != nil {
			c.logger.Warn().Err(err).Msg("Falling back to static projects")
			return nil
		}
		content.Projects = projects
		content.ProjectsLive = true
		return nil
	})

	g.Go(func() error {
		skills, err := c.loadSkills(ctx)
		if err != nil {
			c.logger.Warn().Err(err).Msg("Falling back to static skills")
			return nil
		}
		content.Skills = skills
		content.SkillsLive = true
		return nil
	})

	g.Go(func() error {
		certificates, err := c.loadCertificates(ctx)
		if err != nil {
			c.logger.Warn().Err(err).Msg("Falling back to static certificates")
			return nil
		}
		content.Certificates = certificates
		content.CertificatesLive = true
		return nil
	})

	_ = g.Wait()
	return content
}

// loadProjects prefers featured projects and backfills with non-featured
// ones when fewer than featuredProjectCount exist.
func (c *Client) loadProjects(ctx context.Context) ([]models.Project, error) {
	var featured []models.Project
	if err := c.getJSON(ctx, fmt.Sprintf("/api/projects?featured=true&limit=%d", featuredProjectCount), &featured); err != nil {
		return nil, err
	}
	if len(featured) >= featuredProjectCount {
		return featured, nil
	}

	var all []models.Project
	if err := c.getJSON(ctx, "/api/projects", &all); err != nil {
		// Featured alone is still usable content.
		return featured, nil
	}

	projects := featured
	for _, p := range all {
		if len(projects) >= featuredProjectCount {
			break
		}
		if !p.Featured {
			projects = append(projects, p)
		}
	}
	return projects, nil
}

func (c *Client) loadSkills(ctx context.Context) (map[string][]models.Skill, error) {
	var grouped map[string][]models.Skill
	if err := c.getJSON(ctx, "/api/skills", &grouped); err != nil {
		return nil, err
	}
	return grouped, nil
}

func (c *Client) loadCertificates(ctx context.Context) ([]models.Certificate, error) {
	var certificates []models.Certificate
	if err := c.getJSON(ctx, "/api/certificates?featured=true", &certificates); err != nil {
		return nil, err
	}
	return certificates, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return err
	}
	if !env.Success {
		return fmt.Errorf("backend error: %s", env.Error)
	}
	return json.Unmarshal(env.Data, out)
}

// ContactSubmission is a visitor message bound for the backend intake.
type ContactSubmission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// ContactResult reports how a submission fared. Exactly one of Sent,
// Rejected, or MailtoLink describes the outcome: Rejected carries the
// backend's message for validation or throttling failures, and MailtoLink is
// the last-resort path when the backend cannot be reached at all.
type ContactResult struct {
	Sent       bool
	Message    string
	Rejected   bool
	MailtoLink string
}

// SubmitContact posts the message. Backend rejections come back as typed
// results; a transport failure yields a pre-filled mailto link so the
// visitor can still reach out.
func (c *Client) SubmitContact(ctx context.Context, submission ContactSubmission, fallbackEmail string) ContactResult {
	payload, err := json.Marshal(submission)
	if err != nil {
		return ContactResult{MailtoLink: mailtoLink(fallbackEmail, submission)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/contact", bytes.NewReader(payload))
	if err != nil {
		return ContactResult{MailtoLink: mailtoLink(fallbackEmail, submission)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn().Err(err).Msg("Contact submission transport failure, composing mailto link")
		return ContactResult{MailtoLink: mailtoLink(fallbackEmail, submission)}
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return ContactResult{MailtoLink: mailtoLink(fallbackEmail, submission)}
	}

	if resp.StatusCode == http.StatusCreated && env.Success {
		return ContactResult{Sent: true, Message: env.Message}
	}

	message := env.Error
	if env.Message != "" {
		message = env.Message
	}
	return ContactResult{Rejected: true, Message: message}
}

// mailtoLink composes a pre-filled mailto URL carrying the submission.
func mailtoLink(email string, submission ContactSubmission) string {
	subject := fmt.Sprintf("Portfolio contact from %s", submission.Name)
	body := fmt.Sprintf("Name: %s\nEmail: %s\n\n%s", submission.Name, submission.Email, submission.Message)

	values := url.Values{}
	values.Set("subject", subject)
	values.Set("body", body)

	return "mailto:" + email + "?" + values.Encode()
}
