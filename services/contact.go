package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mmrivera/portfolio-backend/config"
)

const resendEndpoint = "https://api.resend.com/emails"

// resendEmailRequest is the request payload for the Resend API.
type resendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Subject string   `json:"subject"`
	Html    string   `json:"html,omitempty"`
}

type resendErrorResponse struct {
	Message string `json:"message"`
}

// ContactMessage is one public contact-form submission.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Mailer relays contact-form submissions to the site owner's inbox through
// the Resend API.
type Mailer struct {
	apiKey   string
	from     string
	to       string
	endpoint string
	client   *http.Client
	logger   zerolog.Logger
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		apiKey:   cfg.ResendAPIKey,
		from:     cfg.ResendFrom,
		to:       cfg.ContactEmailTo,
		endpoint: resendEndpoint,
		client:   &http.Client{Timeout: 15 * time.Second},
		logger:   log.With().Str("component", "mailer").Logger(),
	}
}

// Configured reports whether the relay has everything it needs to send.
func (m *Mailer) Configured() bool {
	return m.apiKey != "" && m.from != "" && m.to != ""
}

// SendContactMessage forwards one submission. The visitor's address goes into
// Reply-To so the owner can answer directly.
func (m *Mailer) SendContactMessage(ctx context.Context, msg ContactMessage) error {
	if !m.Configured() {
		return fmt.Errorf("contact relay is not configured")
	}

	body := fmt.Sprintf("<p><strong>From:</strong> %s (%s)</p><p>%s</p>",
		html.EscapeString(msg.Name),
		html.EscapeString(msg.Email),
		html.EscapeString(msg.Message),
	)

	payload, err := json.Marshal(resendEmailRequest{
		From:    m.from,
		To:      []string{m.to},
		ReplyTo: msg.Email,
		Subject: fmt.Sprintf("Portfolio contact from %s", msg.Name),
		Html:    body,
	})
	if err != nil {
		return fmt.Errorf("marshaling email request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		var apiErr resendErrorResponse
		raw, _ := io.ReadAll(resp.Body)
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Message != "" {
			m.logger.Error().Int("status", resp.StatusCode).Str("message", apiErr.Message).Msg("Resend rejected the email")
			return fmt.Errorf("email service error: %s", apiErr.Message)
		}
		return fmt.Errorf("email service returned status %d", resp.StatusCode)
	}

	m.logger.Info().Str("from", msg.Email).Msg("Contact message relayed")
	return nil
}
