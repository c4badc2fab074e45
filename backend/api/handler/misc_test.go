package handler_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetStatus(t *testing.T) {
	router := setupTestServer(t)

	resp := doJSON(t, router, http.MethodGet, "/api/status", "", nil)
	assert.Equal(t, http.StatusOK, resp.Code)

	var body map[string]any
	decodeBody(t, resp, &body)
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, body["version"])
}
