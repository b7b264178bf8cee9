package http

import (
	"auth-srv/internal/model"
	"auth-srv/internal/user"
	"auth-srv/pkg/jwt"
	"auth-srv/pkg/paginator"
	"auth-srv/pkg/scope"
)

// --- Request DTOs ---

type listUsersReq struct {
	Page  int   `form:"page"`
	Limit int64 `form:"limit"`
}

func (r listUsersReq) toInput() user.ListInput {
	pq := paginator.PaginateQuery{Page: r.Page, Limit: r.Limit}
	pq.Adjust()
	return user.ListInput{PaginateQuery: pq}
}

// --- Response DTOs ---

type profileResp struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func newProfileResp(claims jwt.Claims) profileResp {
	role := model.RoleUser
	if claims.IsAdmin {
		role = model.RoleAdmin
	}
	return profileResp{
		Name:  claims.Name,
		Email: claims.Email,
		Role:  role,
	}
}

type publicResp struct {
	Message         string `json:"message"`
	Content         string `json:"content"`
	IsAuthenticated bool   `json:"is_authenticated"`
	Role            string `json:"role"`
}

func newPublicResp(p scope.Principal) publicResp {
	const content = "This route is public"

	claims, ok := p.Claims()
	if !ok {
		return publicResp{
			Message: "Hello, guest. Log in to see more.",
			Content: content,
			Role:    scope.KindAnonymous.String(),
		}
	}

	resp := publicResp{
		Message:         "Hello, " + claims.Name,
		Content:         content,
		IsAuthenticated: true,
		Role:            p.Kind().String(),
	}
	if p.Kind() == scope.KindAdmin {
		resp.Message = "Hello, " + claims.Name + ". You have administrator access."
	}
	return resp
}

type userItemResp struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
	Role    string `json:"role"`
}

type listUsersResp struct {
	Users []userItemResp              `json:"users"`
	Meta  paginator.PaginatorResponse `json:"meta"`
}

func newListUsersResp(out user.ListOutput) listUsersResp {
	items := make([]userItemResp, 0, len(out.Users))
	for _, u := range out.Users {
		items = append(items, userItemResp{
			ID:      u.ID,
			Name:    u.Name,
			Email:   u.Email,
			IsAdmin: u.IsAdmin,
			Role:    u.Role(),
		})
	}
	return listUsersResp{
		Users: items,
		Meta:  out.Paginator.ToResponse(),
	}
}
