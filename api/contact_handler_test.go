package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ajaiswal/portfolio-backend/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	mu       sync.Mutex
	contacts []models.Contact
	failWith error
	done     chan struct{}
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{done: make(chan struct{}, 16)}
}

func (n *recordingNotifier) NotifyContact(contact models.Contact) error {
	n.mu.Lock()
	n.contacts = append(n.contacts, contact)
	n.mu.Unlock()
	n.done <- struct{}{}
	return n.failWith
}

func (n *recordingNotifier) waitForDelivery(t *testing.T) {
	t.Helper()
	select {
	case <-n.done:
	case <-time.After(2 * time.Second):
		t.Fatal("notifier was never invoked")
	}
}

func newContactRouter(store *fakeContactStore, notifier ContactNotifier, limiter *contactRateLimiter) chi.Router {
	h := newContactHandler(store, notifier)
	r := chi.NewRouter()
	if limiter != nil {
		r.With(limiter.limit).Post("/contact", h.submitContact())
	} else {
		r.Post("/contact", h.submitContact())
	}
	r.Get("/contact", h.listContacts())
	r.Put("/contact/{contactID}/status", h.updateStatus())
	return r
}

func validSubmission() map[string]any {
	return map[string]any{
		"name":    "Jane Doe",
		"email":   "Jane@Example.COM",
		"message": "I would like to talk about a project.",
	}
}

func TestSubmitContactCapturesRequestMetadata(t *testing.T) {
	store := &fakeContactStore{}
	notifier := newRecordingNotifier()
	router := newContactRouter(store, notifier, nil)

	body := validSubmission()
	// body-supplied metadata must be ignored
	body["ipAddress"] = "6.6.6.6"
	body["userAgent"] = "spoofed"

	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(mustJSON(t, body)))
	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	req.Header.Set("User-Agent", "test-browser/1.0")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	require.Len(t, store.contacts, 1)
	saved := store.contacts[0]
	assert.Equal(t, "203.0.113.9", saved.IPAddress)
	assert.Equal(t, "test-browser/1.0", saved.UserAgent)
	assert.Equal(t, "jane@example.com", saved.Email)
	assert.Equal(t, models.ContactStatusNew, saved.Status)

	notifier.waitForDelivery(t)
}

func TestSubmitContactResponseShape(t *testing.T) {
	store := &fakeContactStore{}
	router := newContactRouter(store, nil, nil)

	rec, env := perform(t, router, http.MethodPost, "/contact", validSubmission())
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "Message sent successfully! I'll get back to you soon.", env.Message)

	var receipt struct {
		ID        uuid.UUID `json:"id"`
		Timestamp time.Time `json:"timestamp"`
	}
	decodeData(t, env, &receipt)
	assert.NotEqual(t, uuid.Nil, receipt.ID)
}

func TestSubmitContactValidation(t *testing.T) {
	router := newContactRouter(&fakeContactStore{}, nil, nil)

	tests := []struct {
		name      string
		body      map[string]any
		wantField string
	}{
		{
			name:      "name with digits",
			body:      map[string]any{"name": "R2D2", "email": "a@b.com", "message": "A long enough message."},
			wantField: "name",
		},
		{
			name:      "bad email",
			body:      map[string]any{"name": "Jane Doe", "email": "nope", "message": "A long enough message."},
			wantField: "email",
		},
		{
			name:      "short message",
			body:      map[string]any{"name": "Jane Doe", "email": "a@b.com", "message": "hi"},
			wantField: "message",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := perform(t, router, http.MethodPost, "/contact", tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "Validation failed", env.Error)
			assert.Contains(t, countFieldErrors(t, env), tt.wantField)
		})
	}
}

func TestSubmitContactNotifierFailureStillSucceeds(t *testing.T) {
	store := &fakeContactStore{}
	notifier := newRecordingNotifier()
	notifier.failWith = errors.New("smtp is down")
	router := newContactRouter(store, notifier, nil)

	rec, _ := perform(t, router, http.MethodPost, "/contact", validSubmission())
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, store.contacts, 1)
	notifier.waitForDelivery(t)
}

func TestSubmitContactRateLimit(t *testing.T) {
	store := &fakeContactStore{}
	limiter := newContactRateLimiter(contactRateMax, contactRateWindow)
	router := newContactRouter(store, nil, limiter)

	for i := 0; i < contactRateMax; i++ {
		rec, _ := perform(t, router, http.MethodPost, "/contact", validSubmission())
		require.Equal(t, http.StatusCreated, rec.Code, "submission %d should pass", i+1)
	}

	rec, env := perform(t, router, http.MethodPost, "/contact", validSubmission())
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, contactRateAdvice, env.Message)

	// only the accepted submissions were stored
	assert.Len(t, store.contacts, contactRateMax)
}

func TestRateLimitWindowSlides(t *testing.T) {
	limiter := newContactRateLimiter(contactRateMax, contactRateWindow)

	current := time.Date(2026, time.January, 1, 12, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return current }

	const addr = "198.51.100.7"
	for i := 0; i < contactRateMax; i++ {
		require.True(t, limiter.allow(addr))
	}
	require.False(t, limiter.allow(addr))

	// a different address has its own quota
	require.True(t, limiter.allow("198.51.100.8"))

	// just inside the window: still blocked
	current = current.Add(contactRateWindow - time.Second)
	require.False(t, limiter.allow(addr))

	// entries age out one window after they were recorded
	current = current.Add(2 * time.Second)
	require.True(t, limiter.allow(addr))
}

func TestListContactsRedactsAndPaginates(t *testing.T) {
	store := &fakeContactStore{}
	for i := 0; i < 12; i++ {
		store.contacts = append(store.contacts, models.Contact{
			ID:        uuid.New(),
			Name:      "Visitor Person",
			Email:     fmt.Sprintf("visitor%d@example.com", i),
			Message:   "A message long enough to be valid.",
			IPAddress: "203.0.113.9",
			UserAgent: "browser",
			Status:    models.ContactStatusNew,
		})
	}
	router := newContactRouter(store, nil, nil)

	rec, env := perform(t, router, http.MethodGet, "/contact?page=2&limit=5", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var contacts []models.Contact
	decodeData(t, env, &contacts)
	require.Len(t, contacts, 5)
	for _, c := range contacts {
		assert.Empty(t, c.IPAddress)
		assert.Empty(t, c.UserAgent)
	}

	require.NotNil(t, env.Pagination)
	assert.Equal(t, 2, env.Pagination.Current)
	assert.Equal(t, 3, env.Pagination.Pages)
	assert.Equal(t, int64(12), env.Pagination.Total)
	assert.True(t, env.Pagination.HasNext)
	assert.True(t, env.Pagination.HasPrev)
}

func TestListContactsPaginationMatchesServedPage(t *testing.T) {
	store := &fakeContactStore{}
	for i := 0; i < 12; i++ {
		store.contacts = append(store.contacts, models.Contact{
			ID:      uuid.New(),
			Name:    "Visitor Person",
			Email:   fmt.Sprintf("visitor%d@example.com", i),
			Message: "A message long enough to be valid.",
			Status:  models.ContactStatusNew,
		})
	}
	router := newContactRouter(store, nil, nil)

	// page=0 and limit=0 are served with the clamped values, and the
	// envelope reports those values rather than the raw query input
	rec, env := perform(t, router, http.MethodGet, "/contact?page=0&limit=0", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var contacts []models.Contact
	decodeData(t, env, &contacts)
	require.Len(t, contacts, 10)

	require.NotNil(t, env.Pagination)
	assert.Equal(t, 1, env.Pagination.Current)
	assert.Equal(t, 2, env.Pagination.Pages)
	assert.Equal(t, int64(12), env.Pagination.Total)
	assert.True(t, env.Pagination.HasNext)
	assert.False(t, env.Pagination.HasPrev)
}

func TestUpdateContactStatus(t *testing.T) {
	contact := models.Contact{
		ID:      uuid.New(),
		Name:    "Visitor Person",
		Email:   "visitor@example.com",
		Message: "A message long enough to be valid.",
		Status:  models.ContactStatusNew,
	}
	store := &fakeContactStore{contacts: []models.Contact{contact}}
	router := newContactRouter(store, nil, nil)

	rec, env := perform(t, router, http.MethodPut, "/contact/"+contact.ID.String()+"/status",
		map[string]any{"status": "read"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Contact status updated successfully", env.Message)
	assert.Equal(t, models.ContactStatusRead, store.contacts[0].Status)

	rec, env = perform(t, router, http.MethodPut, "/contact/"+contact.ID.String()+"/status",
		map[string]any{"status": "spam"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Status must be: new, read, or replied", env.Error)

	rec, _ = perform(t, router, http.MethodPut, "/contact/"+uuid.NewString()+"/status",
		map[string]any{"status": "read"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}
