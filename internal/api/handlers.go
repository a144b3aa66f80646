package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/bitemap/web/internal/mail"
	"github.com/bitemap/web/internal/models"
	"github.com/rs/zerolog/log"
)

// VideoFinder resolves video rows by each of the preview lookup keys.
type VideoFinder interface {
	GetByShareableCode(ctx context.Context, code string) (*models.Video, error)
	GetByCDNVideoID(ctx context.Context, id string) (*models.Video, error)
	GetByID(ctx context.Context, id string) (*models.Video, error)
}

// CreatorFinder resolves creator rows by primary key.
type CreatorFinder interface {
	GetByID(ctx context.Context, id string) (*models.Creator, error)
}

// PlaceFinder resolves place rows by primary key.
type PlaceFinder interface {
	GetByID(ctx context.Context, id string) (*models.Place, error)
}

// SubscriberStore persists waitlist signups.
type SubscriberStore interface {
	Insert(ctx context.Context, sub *models.Subscriber) error
}

// Mailer delivers the site's outbound mail.
type Mailer interface {
	SendContact(ctx context.Context, sub mail.Submission) error
	SendSubscribeNotice(ctx context.Context, email, source string) error
}

// App carries the injected clients for all handlers. Any of the
// fields may be nil when the matching credential is absent; handlers
// degrade per the policies in the product notes rather than panic.
type App struct {
	Videos      VideoFinder
	Creators    CreatorFinder
	Places      PlaceFinder
	Subscribers SubscriberStore
	Mailer      Mailer
	Development bool
}

// apiResponse is the single response shape of the JSON endpoints:
// success carries Success+Message, failure carries Error. Debug is
// only populated in development.
type apiResponse struct {
	Success bool   `json:"success,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Debug   string `json:"debug,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, resp apiResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}

func writeSuccess(w http.ResponseWriter, message, debug string) {
	writeJSON(w, http.StatusOK, apiResponse{Success: true, Message: message, Debug: debug})
}

func writeClientError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, apiResponse{Error: message})
}

func PingHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}

type contactRequest struct {
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

const contactThanks = "Thanks for contacting us! We'll get back to you soon."

// ContactHandler accepts a support form submission and mails it to
// the internal recipient plus an auto-reply to the submitter. Mail
// problems are never surfaced to the caller; losing a delivery beats
// scaring off a user mid-form.
func (app *App) ContactHandler(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeClientError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !strings.Contains(req.Email, "@") {
		writeClientError(w, http.StatusBadRequest, "Valid email required")
		return
	}
	if strings.TrimSpace(req.Subject) == "" {
		writeClientError(w, http.StatusBadRequest, "Subject is required")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeClientError(w, http.StatusBadRequest, "Message is required")
		return
	}

	if app.Mailer == nil {
		log.Info().
			Str("email", req.Email).
			Str("subject", req.Subject).
			Msg("SMTP not configured, contact form submission logged only")
		writeSuccess(w, contactThanks, "Message logged but not sent (SMTP not configured)")
		return
	}

	sub := mail.Submission{Email: req.Email, Subject: req.Subject, Message: req.Message}
	if err := app.Mailer.SendContact(r.Context(), sub); err != nil {
		log.Error().Err(err).
			Str("email", req.Email).
			Str("subject", req.Subject).
			Msg("Failed to send contact form emails")
		debug := ""
		if app.Development {
			debug = err.Error()
		}
		writeSuccess(w, contactThanks, debug)
		return
	}

	log.Info().Str("email", req.Email).Msg("Contact form emails sent")
	writeSuccess(w, "Message sent! We'll get back to you soon.", "")
}

type subscribeRequest struct {
	Email  string `json:"email"`
	Source string `json:"source"`
}

// SubscribeHandler records a waitlist signup. Everything past email
// validation follows the "never block the user" policy: storage or
// notification failures are logged and the caller still sees success.
func (app *App) SubscribeHandler(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeClientError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !strings.Contains(req.Email, "@") {
		writeClientError(w, http.StatusBadRequest, "Valid email required")
		return
	}

	log.Info().Str("email", req.Email).Str("source", req.Source).Msg("New subscriber")

	if app.Subscribers != nil {
		sub := models.NewSubscriber(req.Email, req.Source)
		if err := app.Subscribers.Insert(r.Context(), sub); err != nil {
			log.Error().Err(err).Str("email", req.Email).Msg("Failed to store subscriber")
		}
	}

	if app.Mailer != nil {
		if err := app.Mailer.SendSubscribeNotice(r.Context(), req.Email, req.Source); err != nil {
			log.Error().Err(err).Str("email", req.Email).Msg("Failed to send subscribe notice")
		}
	}

	writeSuccess(w, "Thanks for subscribing! We'll notify you when we launch.", "")
}
