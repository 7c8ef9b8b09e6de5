package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitsync/internal/domain"
)

type handlerFunc func(ctx context.Context, event domain.ProviderEvent) error

func (f handlerFunc) Handle(ctx context.Context, event domain.ProviderEvent) error {
	return f(ctx, event)
}

func testServer(handler EventHandler) *Server {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	return New(handler, "secret-token", logger)
}

func doValidate(s *Server, mode, token, challenge string) *httptest.ResponseRecorder {
	q := url.Values{}
	q.Set("hub.mode", mode)
	q.Set("hub.verify_token", token)
	q.Set("hub.challenge", challenge)

	req := httptest.NewRequest(http.MethodGet, "/webhook?"+q.Encode(), nil)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func TestValidate_EchoesChallenge(t *testing.T) {
	s := testServer(handlerFunc(func(context.Context, domain.ProviderEvent) error { return nil }))

	rec := doValidate(s, "subscribe", "secret-token", "abc123")

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "abc123", body["hub.challenge"])
}

func TestValidate_RejectsWrongToken(t *testing.T) {
	s := testServer(handlerFunc(func(context.Context, domain.ProviderEvent) error { return nil }))

	rec := doValidate(s, "subscribe", "wrong", "abc123")

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestValidate_RejectsWrongMode(t *testing.T) {
	s := testServer(handlerFunc(func(context.Context, domain.ProviderEvent) error { return nil }))

	rec := doValidate(s, "unsubscribe", "secret-token", "abc123")

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestReceive_DispatchesEvent(t *testing.T) {
	var got domain.ProviderEvent
	s := testServer(handlerFunc(func(_ context.Context, event domain.ProviderEvent) error {
		got = event
		return nil
	}))

	payload := `{
		"object_type": "activity",
		"object_id": 12345,
		"aspect_type": "create",
		"owner_id": 777,
		"subscription_id": 1,
		"event_time": 1735689600
	}`

	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "activity", got.ObjectType)
	assert.Equal(t, int64(12345), got.ObjectID)
	assert.Equal(t, "create", got.AspectType)
	assert.Equal(t, int64(777), got.OwnerID)
}

func TestReceive_ProcessingErrorReturns500(t *testing.T) {
	s := testServer(handlerFunc(func(context.Context, domain.ProviderEvent) error {
		return errors.New("boom")
	}))

	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(`{"object_type":"activity"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	// non-2xx makes the provider redeliver the event
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestReceive_MalformedPayloadReturns400(t *testing.T) {
	s := testServer(handlerFunc(func(context.Context, domain.ProviderEvent) error {
		t.Fatal("handler must not run for malformed payloads")
		return nil
	}))

	req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(`{not json`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthz(t *testing.T) {
	s := testServer(handlerFunc(func(context.Context, domain.ProviderEvent) error { return nil }))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
