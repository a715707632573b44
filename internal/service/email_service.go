package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	cfg "github.com/echofluxai/echoflux-api/configs"
)

// Mailer sends transactional mail. Waitlist transitions use it after the
// status change has committed; a send failure is reported, never rolled back.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// EmailService posts to a Resend-compatible /emails endpoint.
type EmailService struct {
	config     cfg.Config
	httpClient *http.Client
}

func NewEmailService(cfg cfg.Config) *EmailService {
	return &EmailService{
		config: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type emailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

func (s *EmailService) Send(ctx context.Context, to, subject, htmlBody string) error {
	if s.config.MailApiKey == "" {
		return fmt.Errorf("mail provider not configured")
	}

	body, err := json.Marshal(emailRequest{
		From:    s.config.MailFromAddress,
		To:      []string{to},
		Subject: subject,
		HTML:    htmlBody,
	})
	if err != nil {
		return err
	}

	url := strings.TrimRight(s.config.MailBaseURL, "/") + "/emails"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.config.MailApiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		slog.Info(err.Error())
		return fmt.Errorf("mail request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		if errResp.Message != "" {
			return fmt.Errorf("mail api error: %s", errResp.Message)
		}
		return fmt.Errorf("mail api error: %s", resp.Status)
	}

	return nil
}
