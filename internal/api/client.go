// Package api is the client for the jscom-mini-services HTTP API. It
// builds requests, applies the per-request timeout, and classifies
// every outcome into a typed result or an *Error.
package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/johnsosoka/jscom-cli/internal/config"
)

// IPResult is the response to a "my IP" lookup.
type IPResult struct {
	IP string `json:"ip"`
}

// DNSUpdateResult is the response to a DNS A-record update.
type DNSUpdateResult struct {
	Message    string                 `json:"message"`
	ChangeInfo map[string]interface{} `json:"change_info"`
}

// dnsUpdateRequest is the exact wire body for /v1/dns/update. No other
// keys are ever sent.
type dnsUpdateRequest struct {
	Domain string `json:"domain"`
	IP     string `json:"ip"`
}

// Client owns the HTTP connection to the API for its lifetime. The
// caller constructs it once per invocation and must Close it on every
// exit path.
type Client struct {
	baseURL    string
	authToken  string
	httpClient *http.Client
}

// New creates a client from a resolved configuration. The timeout
// applies to each individual request, not across a whole command.
func New(cfg *config.Config) (*Client, error) {
	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("timeout must be positive, got %s", cfg.Timeout)
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		authToken:  cfg.AuthToken,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// Close releases the client's idle connections.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// MyIP retrieves the caller's public IP address.
//
// Outcome classification, in priority order: transport failure is
// Network; status >= 500 is Server; any other non-200 status is
// Network; a 200 with a non-JSON body is Network; a JSON body missing
// "ip" is Validation.
func (c *Client) MyIP() (*IPResult, error) {
	resp, err := c.httpClient.Get(c.baseURL + "/v1/ip/my")
	if err != nil {
		return nil, wrapError(KindNetwork, fmt.Sprintf("failed to connect to API: %v", err), err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, wrapError(KindNetwork, fmt.Sprintf("failed to read response: %v", err), err)
	}

	if resp.StatusCode >= 500 {
		return nil, newError(KindServer, parseErrorBody(resp.StatusCode, body))
	}
	if resp.StatusCode != http.StatusOK {
		return nil, newError(KindNetwork,
			fmt.Sprintf("unexpected status %d: %s", resp.StatusCode, parseErrorBody(resp.StatusCode, body)))
	}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, wrapError(KindNetwork, fmt.Sprintf("invalid JSON response: %v", err), err)
	}
	raw, ok := payload["ip"]
	if !ok {
		return nil, newError(KindValidation, "response missing required field: ip")
	}
	var ip string
	if err := json.Unmarshal(raw, &ip); err != nil {
		return nil, wrapError(KindValidation, fmt.Sprintf("invalid field ip: %v", err), err)
	}
	return &IPResult{IP: ip}, nil
}

// UpdateDNS sets the A record for domain to ip via the API.
//
// The x-auth-token header is added only when a token is configured;
// with no token the header is absent, never present-and-empty.
//
// Outcome classification is an ordered ladder, part of the observable
// contract: transport failure, then 403 (Authentication), then 400
// (Validation), then >= 500 (Server), then any other non-200
// (Network), then body shape. A 403 with an unparseable body is still
// an Authentication error.
func (c *Client) UpdateDNS(domain, ip string) (*DNSUpdateResult, error) {
	reqBody, err := json.Marshal(dnsUpdateRequest{Domain: domain, IP: ip})
	if err != nil {
		return nil, wrapError(KindValidation, fmt.Sprintf("encode request: %v", err), err)
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/v1/dns/update", bytes.NewReader(reqBody))
	if err != nil {
		return nil, wrapError(KindNetwork, fmt.Sprintf("create request: %v", err), err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.authToken != "" {
		req.Header.Set("x-auth-token", c.authToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, wrapError(KindNetwork, fmt.Sprintf("failed to connect to API: %v", err), err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, wrapError(KindNetwork, fmt.Sprintf("failed to read response: %v", err), err)
	}

	switch {
	case resp.StatusCode == http.StatusForbidden:
		return nil, newError(KindAuthentication, parseErrorBody(resp.StatusCode, body))
	case resp.StatusCode == http.StatusBadRequest:
		return nil, newError(KindValidation, parseErrorBody(resp.StatusCode, body))
	case resp.StatusCode >= 500:
		return nil, newError(KindServer, parseErrorBody(resp.StatusCode, body))
	case resp.StatusCode != http.StatusOK:
		return nil, newError(KindNetwork,
			fmt.Sprintf("unexpected status %d: %s", resp.StatusCode, parseErrorBody(resp.StatusCode, body)))
	}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, wrapError(KindNetwork, fmt.Sprintf("invalid JSON response: %v", err), err)
	}

	result := &DNSUpdateResult{}
	rawMsg, ok := payload["message"]
	if !ok {
		return nil, newError(KindValidation, "response missing required field: message")
	}
	if err := json.Unmarshal(rawMsg, &result.Message); err != nil {
		return nil, wrapError(KindValidation, fmt.Sprintf("invalid field message: %v", err), err)
	}
	rawInfo, ok := payload["change_info"]
	if !ok {
		return nil, newError(KindValidation, "response missing required field: change_info")
	}
	if err := json.Unmarshal(rawInfo, &result.ChangeInfo); err != nil {
		return nil, wrapError(KindValidation, fmt.Sprintf("invalid field change_info: %v", err), err)
	}
	return result, nil
}

// parseErrorBody extracts the most useful detail from an error
// response. It never fails: it degrades from structured {"error",
// "message"} JSON down to the raw body text, and finally to "HTTP
// {status}" when the body is empty.
func parseErrorBody(status int, body []byte) string {
	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err == nil {
		if errVal, ok := payload["error"]; ok {
			if msg, ok := payload["message"]; ok {
				return fmt.Sprintf("%v: %v", errVal, msg)
			}
			return fmt.Sprintf("%v", errVal)
		}
		return strings.TrimSpace(string(body))
	}
	if text := strings.TrimSpace(string(body)); text != "" {
		return text
	}
	return fmt.Sprintf("HTTP %d", status)
}
