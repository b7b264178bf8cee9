package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pkgErrors "auth-srv/pkg/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) Resp {
	t.Helper()
	var resp Resp
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestError(t *testing.T) {
	errSentinel := errors.New("sentinel")

	tcs := map[string]struct {
		err        error
		wantStatus int
		wantCode   int
		wantMsg    string
	}{
		"http error": {
			err:        pkgErrors.NewHTTPError(110001, "Wrong body", http.StatusBadRequest),
			wantStatus: http.StatusBadRequest,
			wantCode:   110001,
			wantMsg:    "Wrong body",
		},
		"wrapped http error": {
			err:        fmt.Errorf("ctx: %w", pkgErrors.NewForbiddenHTTPError()),
			wantStatus: http.StatusForbidden,
			wantCode:   http.StatusForbidden,
			wantMsg:    pkgErrors.MessageForbidden,
		},
		"validation error": {
			err:        pkgErrors.NewValidationError(400, "limit", "must be positive"),
			wantStatus: http.StatusBadRequest,
			wantCode:   400,
			wantMsg:    "limit: must be positive",
		},
		"unknown error": {
			err:        errSentinel,
			wantStatus: http.StatusInternalServerError,
			wantCode:   InternalServerErrorCode,
			wantMsg:    DefaultErrorMessage,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			c, w := newTestContext(http.MethodGet, "/", "")
			Error(c, tc.err, nil)

			assert.Equal(t, tc.wantStatus, w.Code)
			resp := decode(t, w)
			assert.Equal(t, tc.wantCode, resp.ErrorCode)
			assert.Equal(t, tc.wantMsg, resp.Message)
		})
	}
}

func TestErrorWithMap(t *testing.T) {
	errNotFound := errors.New("not found")
	eMap := ErrorMapping{errNotFound: pkgErrors.NewHTTPError(404, "Not found", http.StatusNotFound)}

	c, w := newTestContext(http.MethodGet, "/", "")
	ErrorWithMap(c, fmt.Errorf("lookup: %w", errNotFound), eMap, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Not found", decode(t, w).Message)
}

func TestUnauthorizedForbidden(t *testing.T) {
	c, w := newTestContext(http.MethodGet, "/", "")
	Unauthorized(c)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, pkgErrors.MessageUnauthorized, decode(t, w).Message)

	c, w = newTestContext(http.MethodGet, "/", "")
	Forbidden(c)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, pkgErrors.MessageForbidden, decode(t, w).Message)
}

func TestPanicError(t *testing.T) {
	c, w := newTestContext(http.MethodGet, "/", "")
	PanicError(c, "boom", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, DefaultErrorMessage, decode(t, w).Message)
}

func TestOK(t *testing.T) {
	c, w := newTestContext(http.MethodGet, "/", "")
	OK(c, gin.H{"a": 1})
	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.Equal(t, MessageSuccess, resp.Message)
	assert.Equal(t, 0, resp.ErrorCode)
}

func TestBuildReport_RedactsCredentials(t *testing.T) {
	c, _ := newTestContext(http.MethodPost, "/api/login?token=abc&page=2", `{"email":"a@b.c","password":"hunter2"}`)
	c.Request.Header.Set("Authorization", "Bearer secret-token")
	c.Request.Header.Set("Cookie", "jwt_token=secret-cookie")
	c.Request.Header.Set("Content-Type", "application/json")

	report := buildInternalServerErrorDataForReportBug(c, "db down", []string{"frame"})

	assert.NotContains(t, report, "hunter2")
	assert.NotContains(t, report, "secret-token")
	assert.NotContains(t, report, "secret-cookie")
	assert.NotContains(t, report, "token=abc")
	assert.Contains(t, report, "a@b.c")
	assert.Contains(t, report, "page=2")
	assert.Contains(t, report, "db down")

	form, _ := newTestContext(http.MethodPost, "/login", "email=a%40b.c&password=hunter2")
	assert.NotContains(t, buildInternalServerErrorDataForReportBug(form, "x", nil), "hunter2")
}

func TestSplitMessageForDiscord(t *testing.T) {
	line := strings.Repeat("a", 100)
	msg := strings.Repeat(line+"\n", 100)

	chunks := splitMessageForDiscord(msg)
	require.Greater(t, len(chunks), 1)
	total := 0
	for _, chunk := range chunks {
		assert.LessOrEqual(t, len(chunk), DiscordMaxMessageLen)
		total += len(chunk)
	}
	assert.Greater(t, total, 100*100-1)

	long := splitMessageForDiscord(strings.Repeat("b", DiscordMaxMessageLen*2+5))
	assert.Len(t, long, 3)
}
