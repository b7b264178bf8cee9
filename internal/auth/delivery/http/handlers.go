package http

import (
	"errors"
	"net/http"
	"time"

	"auth-srv/internal/auth"
	"auth-srv/internal/middleware"
	"auth-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// LoginPage serves the static login page.
// @Summary Login page
// @Description Serves the HTML login form configured by LOGIN_PAGE_PATH
// @Tags Auth
// @Produce html
// @Success 200 {string} string "Login page"
// @Failure 404 {object} response.Resp "Login page is not configured"
// @Router /login [GET]
func (h *Handler) LoginPage(c *gin.Context) {
	if h.cfg.LoginPage == "" {
		response.Error(c, errLoginPageUnset, nil)
		return
	}
	c.File(h.cfg.LoginPage)
}

// LoginForm authenticates a browser and stores the token in an HttpOnly cookie.
// @Summary Form login
// @Description Checks the credentials, sets the session cookie and redirects to the landing page. Failures do not say which credential was wrong.
// @Tags Auth
// @Accept x-www-form-urlencoded
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Param remember formData string false "true, on or 1 for a long-lived session"
// @Success 303 {string} string "Redirect to the landing page"
// @Failure 400 {object} response.Resp "Unparseable form body"
// @Failure 401 {object} response.Resp "Missing or invalid credentials"
// @Failure 500 {object} response.Resp "Server error"
// @Router /login [POST]
func (h *Handler) LoginForm(c *gin.Context) {
	ctx := c.Request.Context()

	var req loginFormReq
	if err := c.ShouldBind(&req); err != nil {
		h.l.Warnf(ctx, "internal.auth.delivery.http.LoginForm.ShouldBind: %v", err)
		response.Error(c, errInvalidForm, nil)
		return
	}
	if err := req.validate(); err != nil {
		h.l.Warnf(ctx, "internal.auth.delivery.http.LoginForm.validate: %v", err)
		c.Status(http.StatusUnauthorized)
		return
	}

	out, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.Status(http.StatusUnauthorized)
			return
		}
		h.l.Errorf(ctx, "internal.auth.delivery.http.LoginForm.Login: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	h.setSessionCookie(c, out.Token, int(out.Lifetime/time.Second))
	c.Redirect(http.StatusSeeOther, h.cfg.LandingPath)
}

// LoginJSON authenticates an API client and returns the token in the body.
// @Summary JSON login
// @Description Always answers 200; success and message describe the outcome. Messages follow the lang header (en, es).
// @Tags Auth
// @Accept json
// @Produce json
// @Param lang header string false "Language" default(en)
// @Param body body loginJSONReq true "Credentials"
// @Success 200 {object} loginJSONResp
// @Router /api/login [POST]
func (h *Handler) LoginJSON(c *gin.Context) {
	ctx := c.Request.Context()

	var req loginJSONReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "internal.auth.delivery.http.LoginJSON.ShouldBindJSON: %v", err)
		c.JSON(http.StatusOK, newLoginFailureResp(message(ctx, msgInvalidRequest)))
		return
	}

	out, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		if !errors.Is(err, auth.ErrInvalidCredentials) {
			h.l.Errorf(ctx, "internal.auth.delivery.http.LoginJSON.Login: %v", err)
		}
		c.JSON(http.StatusOK, newLoginFailureResp(message(ctx, jsonLoginMessage(err))))
		return
	}

	c.JSON(http.StatusOK, newLoginSuccessResp(message(ctx, msgLoginSuccess), out.Token, out.User))
}

// Logout clears the session cookie and redirects to the login page.
// @Summary Logout
// @Description Expires the session cookie. With revocation enabled the presented token is also revoked.
// @Tags Auth
// @Success 303 {string} string "Redirect to the login page"
// @Router /logout [GET]
func (h *Handler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	token := middleware.TokenFromRequest(c.Request, h.cfg.Cookie.Name)
	if err := h.uc.Logout(ctx, auth.LogoutInput{Token: token}); err != nil {
		h.l.Errorf(ctx, "internal.auth.delivery.http.Logout: %v", err)
	}

	h.setSessionCookie(c, "", -1)
	c.Redirect(http.StatusSeeOther, h.cfg.LoginPath)
}

func (h *Handler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(h.cfg.Cookie.SameSite)
	c.SetCookie(h.cfg.Cookie.Name, value, maxAge, "/", h.cfg.Cookie.Domain, h.cfg.Cookie.Secure, true)
}
