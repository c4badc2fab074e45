package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/christianjamesnaguit/wcs-backend/backend/api/route"
	"github.com/christianjamesnaguit/wcs-backend/backend/common"
	"github.com/christianjamesnaguit/wcs-backend/backend/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
	common.JWTSecret = "test-jwt-secret-for-handler-tests"
	common.RedisEnabled = false
}

// setupTestServer builds the real API router on a throwaway database and
// upload directories.
func setupTestServer(t *testing.T) *gin.Engine {
	t.Helper()

	originalSQLitePath := common.SQLitePath
	originalUploadPath := common.UploadPath
	originalAvatarPath := common.AvatarPath

	tempDir := t.TempDir()
	common.SQLitePath = filepath.Join(tempDir, "handler_test.db")
	common.UploadPath = filepath.Join(tempDir, "uploads")
	common.AvatarPath = filepath.Join(tempDir, "avatars")

	assert.NoError(t, common.EnsureUploadDirs())
	assert.NoError(t, model.InitDB())

	t.Cleanup(func() {
		assert.NoError(t, model.CloseDB())
		common.SQLitePath = originalSQLitePath
		common.UploadPath = originalUploadPath
		common.AvatarPath = originalAvatarPath
	})

	router := gin.New()
	route.SetApiRouter(router)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method string, path string, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		assert.NoError(t, err)
		body = bytes.NewBuffer(data)
	}
	req, err := http.NewRequest(method, path, body)
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func doMultipart(t *testing.T, router *gin.Engine, method string, path string, token string, dataField string, files map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if dataField != "" {
		assert.NoError(t, writer.WriteField("data", dataField))
	}
	for name, content := range files {
		part, err := writer.CreateFormFile("files", name)
		assert.NoError(t, err)
		_, err = part.Write([]byte(content))
		assert.NoError(t, err)
	}
	assert.NoError(t, writer.Close())

	req, err := http.NewRequest(method, path, &buf)
	assert.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func decodeBody(t *testing.T, resp *httptest.ResponseRecorder, out any) {
	t.Helper()
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), out))
}

// signupUser registers an account and returns its bearer token plus id.
func signupUser(t *testing.T, router *gin.Engine, username string) (string, int64) {
	t.Helper()
	resp := doJSON(t, router, http.MethodPost, "/api/signup", "", map[string]any{
		"firstName": "Test",
		"lastName":  "User",
		"email":     username + "@example.com",
		"username":  username,
		"password":  "secret123",
	})
	assert.Equal(t, http.StatusCreated, resp.Code)

	var body struct {
		Token string `json:"token"`
		User  struct {
			ID int64 `json:"id"`
		} `json:"user"`
	}
	decodeBody(t, resp, &body)
	assert.NotEmpty(t, body.Token)
	return body.Token, body.User.ID
}
