package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/githoney/bounty-bot/internal/models"
)

// BackendService is the single capability the bot has against the bounty
// backend: POST a JSON payload to a named endpoint and decode the result.
type BackendService struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewBackendService(baseURL, apiKey string) *BackendService {
	return &BackendService{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// errorBody is the JSON error envelope the backend returns on 4xx/5xx.
// On 400 the error field holds ordered field errors, otherwise a string.
type errorBody struct {
	Error   json.RawMessage `json:"error"`
	BotCode models.BotCode  `json:"botCode"`
}

// Call posts payload to {baseURL}/{endpoint}. On 2xx the data envelope is
// decoded into out (which may be nil when the caller ignores the body).
// On an HTTP error status it returns a *models.BackendError; any other
// failure is a transport error.
func (s *BackendService) Call(ctx context.Context, endpoint string, payload interface{}, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", endpoint, err)
	}

	url := fmt.Sprintf("%s/%s", s.baseURL, endpoint)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", s.apiKey)
	req.Header.Set("x-source", "github-bot")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("backend call %s failed: %w", endpoint, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read %s response: %w", endpoint, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp.StatusCode, respBody)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", endpoint, err)
	}
	return nil
}

// decodeError turns an HTTP error response into a typed BackendError.
// The shape is decoded once here so handlers never inspect raw bodies.
func decodeError(status int, body []byte) *models.BackendError {
	backendErr := &models.BackendError{Status: status}

	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err != nil {
		backendErr.Message = string(body)
		return backendErr
	}

	backendErr.BotCode = parsed.BotCode

	if len(parsed.Error) > 0 {
		// Every 400 is a parameter-validation failure carrying field errors
		if status == http.StatusBadRequest {
			var fields []models.FieldError
			if err := json.Unmarshal(parsed.Error, &fields); err == nil {
				backendErr.FieldErrors = fields
				return backendErr
			}
		}
		var msg string
		if err := json.Unmarshal(parsed.Error, &msg); err == nil {
			backendErr.Message = msg
		} else {
			backendErr.Message = string(parsed.Error)
		}
	}

	return backendErr
}
