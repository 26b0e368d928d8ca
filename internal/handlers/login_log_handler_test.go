package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"freight-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginLogList(t *testing.T) {
	logs := &fakeLoginLogStore{}
	require.NoError(t, logs.Create(context.Background(), 1, "203.0.113.9", "freight-test/1.0"))
	require.NoError(t, logs.Create(context.Background(), 2, "198.51.100.4", "freight-test/1.0"))

	h := NewLoginLogHandler(logs)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/login-logs", nil)
	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var out []*models.LoginLog
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	assert.Len(t, out, 2)
}

func TestLoginLogList_Empty(t *testing.T) {
	h := NewLoginLogHandler(&fakeLoginLogStore{})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/login-logs", nil)
	h.List(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}
