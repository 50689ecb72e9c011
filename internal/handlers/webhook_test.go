package handlers

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/githoney/bounty-bot/internal/commands"
	"github.com/google/go-github/v57/github"
	"github.com/stretchr/testify/assert"
)

const webhookSecret = "hunter2"

type noopBackend struct{}

func (noopBackend) Call(context.Context, string, interface{}, interface{}) error { return nil }

func newWebhookRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	bot := commands.NewBot("/githoney", "https://front.test", "preprod", noopBackend{}, nil)
	handler := NewWebhookHandler(bot, github.NewClient(nil), webhookSecret)

	router := gin.New()
	router.POST("/webhooks", handler.Handle)
	return router
}

func signBody(body []byte) string {
	mac := hmac.New(sha256.New, []byte(webhookSecret))
	mac.Write(body)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

func deliver(t *testing.T, router *gin.Engine, event string, body []byte, signed bool) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhooks", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-GitHub-Event", event)
	req.Header.Set("X-GitHub-Delivery", "d-0001")
	if signed {
		req.Header.Set("X-Hub-Signature-256", signBody(body))
	}
	router.ServeHTTP(w, req)
	return w
}

func TestWebhookHandle(t *testing.T) {
	t.Run("Missing signature is unauthorized", func(t *testing.T) {
		router := newWebhookRouter()
		w := deliver(t, router, "ping", []byte(`{"zen":"Design for failure."}`), false)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Tampered body is unauthorized", func(t *testing.T) {
		router := newWebhookRouter()
		body := []byte(`{"zen":"Design for failure."}`)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/webhooks", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-GitHub-Event", "ping")
		req.Header.Set("X-Hub-Signature-256", signBody([]byte(`{"zen":"original"}`)))
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Unparseable payload is a bad request", func(t *testing.T) {
		router := newWebhookRouter()
		w := deliver(t, router, "issue_comment", []byte(`{`), true)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Signed ping is accepted", func(t *testing.T) {
		router := newWebhookRouter()
		w := deliver(t, router, "ping", []byte(`{"zen":"Design for failure."}`), true)
		assert.Equal(t, http.StatusAccepted, w.Code)
		assert.JSONEq(t, `{"status":"accepted"}`, w.Body.String())
	})

	t.Run("Edited comments are accepted but not dispatched", func(t *testing.T) {
		router := newWebhookRouter()
		body := []byte(`{"action":"edited","comment":{"id":1,"body":"/githoney help"}}`)
		w := deliver(t, router, "issue_comment", body, true)
		assert.Equal(t, http.StatusAccepted, w.Code)
	})
}

func TestOwnerIsOrg(t *testing.T) {
	orgType := "Organization"
	userType := "User"

	assert.True(t, ownerIsOrg(&github.Repository{Owner: &github.User{Type: &orgType}}))
	assert.False(t, ownerIsOrg(&github.Repository{Owner: &github.User{Type: &userType}}))
	assert.False(t, ownerIsOrg(&github.Repository{}))
}
