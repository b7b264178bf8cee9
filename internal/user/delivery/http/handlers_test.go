package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"auth-srv/internal/middleware"
	"auth-srv/internal/model"
	"auth-srv/internal/user"
	"auth-srv/pkg/jwt"
	"auth-srv/pkg/log"
	"auth-srv/pkg/paginator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "0123456789abcdef0123456789abcdef"

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeUC struct {
	users   []model.User
	err     error
	gotList user.ListInput
}

func (f *fakeUC) GetByEmail(context.Context, string) (model.User, error) {
	return model.User{}, user.ErrUserNotFound
}

func (f *fakeUC) List(_ context.Context, ip user.ListInput) (user.ListOutput, error) {
	f.gotList = ip
	if f.err != nil {
		return user.ListOutput{}, f.err
	}
	return user.ListOutput{
		Users: f.users,
		Paginator: paginator.Paginator{
			Total:       int64(len(f.users)),
			Count:       int64(len(f.users)),
			PerPage:     ip.PaginateQuery.Limit,
			CurrentPage: ip.PaginateQuery.Page,
		},
	}, nil
}

type env struct {
	r     *gin.Engine
	uc    *fakeUC
	user  string
	admin string
}

func newEnv(t *testing.T) env {
	t.Helper()
	mgr, err := jwt.New(jwt.Config{SecretKey: testKey})
	require.NoError(t, err)

	userToken, err := mgr.Encode(jwt.NewClaims(1, "bob@example.com", "Bob", false))
	require.NoError(t, err)
	adminToken, err := mgr.Encode(jwt.NewClaims(2, "ada@example.com", "Ada", true))
	require.NoError(t, err)

	uc := &fakeUC{users: []model.User{
		{ID: 1, Email: "bob@example.com", Name: "Bob"},
		{ID: 2, Email: "ada@example.com", Name: "Ada", IsAdmin: true},
	}}

	mw := middleware.New(log.NewNop(), mgr, middleware.Config{})
	r := gin.New()
	r.Use(mw.Unauthorized())
	New(log.NewNop(), uc, nil).RegisterRoutes(r, mw)

	return env{r: r, uc: uc, user: userToken, admin: adminToken}
}

func (e env) get(path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Accept", gin.MIMEJSON)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.r.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	var resp struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NoError(t, json.Unmarshal(resp.Data, v))
}

func TestProfile(t *testing.T) {
	e := newEnv(t)

	tcs := map[string]struct {
		path     string
		token    string
		wantCode int
		want     profileResp
	}{
		"user":          {path: "/api/profile", token: e.user, wantCode: http.StatusOK, want: profileResp{Name: "Bob", Email: "bob@example.com", Role: "user"}},
		"admin":         {path: "/api/profile", token: e.admin, wantCode: http.StatusOK, want: profileResp{Name: "Ada", Email: "ada@example.com", Role: "admin"}},
		"anonymous":     {path: "/api/profile", wantCode: http.StatusUnauthorized},
		"balance user":  {path: "/balance", token: e.user, wantCode: http.StatusOK, want: profileResp{Name: "Bob", Email: "bob@example.com", Role: "user"}},
		"balance guest": {path: "/balance", wantCode: http.StatusUnauthorized},
		"bad token":     {path: "/balance", token: "garbage", wantCode: http.StatusUnauthorized},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			w := e.get(tc.path, tc.token)
			require.Equal(t, tc.wantCode, w.Code)
			if tc.wantCode != http.StatusOK {
				return
			}
			var got profileResp
			decodeData(t, w, &got)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPublic(t *testing.T) {
	e := newEnv(t)

	tcs := map[string]struct {
		token     string
		wantRole  string
		wantAuth  bool
		wantGreet string
	}{
		"anonymous":            {wantRole: "anonymous", wantGreet: "guest"},
		"invalid is anonymous": {token: "garbage", wantRole: "anonymous", wantGreet: "guest"},
		"user":                 {token: e.user, wantRole: "user", wantAuth: true, wantGreet: "Hello, Bob"},
		"admin":                {token: e.admin, wantRole: "admin", wantAuth: true, wantGreet: "administrator"},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			w := e.get("/api/public", tc.token)
			require.Equal(t, http.StatusOK, w.Code)

			var got publicResp
			decodeData(t, w, &got)
			assert.Equal(t, tc.wantRole, got.Role)
			assert.Equal(t, tc.wantAuth, got.IsAuthenticated)
			assert.Contains(t, got.Message, tc.wantGreet)
			assert.NotEmpty(t, got.Content)
		})
	}
}

func TestListUsers(t *testing.T) {
	t.Run("admin", func(t *testing.T) {
		e := newEnv(t)
		w := e.get("/api/admin/users?page=2&limit=500", e.admin)
		require.Equal(t, http.StatusOK, w.Code)

		assert.Equal(t, 2, e.uc.gotList.PaginateQuery.Page)
		assert.Equal(t, int64(paginator.MaxLimit), e.uc.gotList.PaginateQuery.Limit)

		var got listUsersResp
		decodeData(t, w, &got)
		require.Len(t, got.Users, 2)
		assert.Equal(t, "admin", got.Users[1].Role)
		assert.Equal(t, 2, got.Meta.CurrentPage)
		assert.NotContains(t, w.Body.String(), "password")
	})

	t.Run("defaults", func(t *testing.T) {
		e := newEnv(t)
		w := e.get("/api/admin/users", e.admin)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, paginator.DefaultPage, e.uc.gotList.PaginateQuery.Page)
		assert.Equal(t, int64(paginator.DefaultLimit), e.uc.gotList.PaginateQuery.Limit)
	})

	tcs := map[string]struct {
		path     string
		token    func(env) string
		ucErr    error
		wantCode int
	}{
		"user forbidden": {path: "/api/admin/users", token: func(e env) string { return e.user }, wantCode: http.StatusForbidden},
		"anonymous":      {path: "/api/admin/users", token: func(env) string { return "" }, wantCode: http.StatusUnauthorized},
		"bad page":       {path: "/api/admin/users?page=abc", token: func(e env) string { return e.admin }, wantCode: http.StatusBadRequest},
		"store failure":  {path: "/api/admin/users", token: func(e env) string { return e.admin }, ucErr: errors.New("db down"), wantCode: http.StatusInternalServerError},
	}
	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			e := newEnv(t)
			e.uc.err = tc.ucErr
			w := e.get(tc.path, tc.token(e))
			assert.Equal(t, tc.wantCode, w.Code)
		})
	}
}
