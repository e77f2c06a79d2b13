package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"gas-agency/internal/pkg/config"
	"gas-agency/internal/pkg/errs"
)

var ErrEmptyRecipient = errs.New("recipient must not be empty")

// Client talks to the external email relay. The relay offers no delivery
// guarantee and no response contract; callers treat Send as advisory.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg config.RelayConfig) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

type sendEmailRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (c *Client) Send(ctx context.Context, to, subject, message string) error {
	if to == "" {
		return ErrEmptyRecipient
	}

	body, err := json.Marshal(sendEmailRequest{To: to, Subject: subject, Message: message})
	if err != nil {
		return errs.Wrap(err, "failed to encode relay request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/send-email", bytes.NewReader(body))
	if err != nil {
		return errs.Wrap(err, "failed to build relay request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.Wrap(err, "relay request failed")
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= 400 {
		return errs.New(fmt.Sprintf("relay returned status %d", resp.StatusCode))
	}

	return nil
}
