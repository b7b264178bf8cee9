package http

import (
	"auth-srv/pkg/response"
	"auth-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// Balance is the landing resource of the browser flow.
// @Summary Balance
// @Description Protected landing page of the form login. Returns the caller's profile.
// @Tags User
// @Produce json
// @Security CookieAuth
// @Security BearerAuth
// @Success 200 {object} response.Resp{data=profileResp}
// @Failure 401 {object} response.Resp "Unauthorized"
// @Router /balance [GET]
func (h *Handler) Balance(c *gin.Context) {
	h.Profile(c)
}

// Profile returns the identity carried by the caller's token.
// @Summary Profile
// @Tags User
// @Produce json
// @Security CookieAuth
// @Security BearerAuth
// @Success 200 {object} response.Resp{data=profileResp}
// @Failure 401 {object} response.Resp "Unauthorized"
// @Router /api/profile [GET]
func (h *Handler) Profile(c *gin.Context) {
	claims, ok := scope.GetPrincipalFromContext(c.Request.Context()).Claims()
	if !ok {
		response.Unauthorized(c)
		return
	}
	response.OK(c, newProfileResp(claims))
}

// Public greets every caller according to its tier.
// @Summary Public greeting
// @Description Open to everyone. A valid token changes the greeting; an invalid one is treated as anonymous.
// @Tags User
// @Produce json
// @Success 200 {object} response.Resp{data=publicResp}
// @Router /api/public [GET]
func (h *Handler) Public(c *gin.Context) {
	response.OK(c, newPublicResp(scope.GetPrincipalFromContext(c.Request.Context())))
}

// ListUsers pages through the credential store.
// @Summary List users
// @Description Administrators only.
// @Tags Admin
// @Produce json
// @Security CookieAuth
// @Security BearerAuth
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(15)
// @Success 200 {object} response.Resp{data=listUsersResp}
// @Failure 401 {object} response.Resp "Unauthorized"
// @Failure 403 {object} response.Resp "Forbidden"
// @Router /api/admin/users [GET]
func (h *Handler) ListUsers(c *gin.Context) {
	ctx := c.Request.Context()

	var req listUsersReq
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Warnf(ctx, "internal.user.delivery.http.ListUsers.ShouldBindQuery: %v", err)
		response.Error(c, errInvalidQuery, nil)
		return
	}

	out, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "internal.user.delivery.http.ListUsers.List: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	adminID, _ := scope.GetUserIDFromContext(ctx)
	h.l.Infof(ctx, "internal.user.delivery.http.ListUsers: admin %s listed page %d", adminID, out.Paginator.CurrentPage)

	response.OK(c, newListUsersResp(out))
}
