package http

import (
	"strconv"
	"strings"

	"auth-srv/internal/auth"
	"auth-srv/internal/model"
	"auth-srv/pkg/errors"
)

// --- Request DTOs ---

type loginFormReq struct {
	Email    string `form:"email"`
	Password string `form:"password"`
	Remember string `form:"remember"`
}

func (r loginFormReq) validate() error {
	c := errors.NewValidationErrorCollector()
	if strings.TrimSpace(r.Email) == "" {
		c.Add(errors.NewValidationError(errCodeValidation, "email", "is required"))
	}
	if r.Password == "" {
		c.Add(errors.NewValidationError(errCodeValidation, "password", "is required"))
	}
	if c.HasError() {
		return c
	}
	return nil
}

func (r loginFormReq) toInput() auth.LoginInput {
	return auth.LoginInput{
		Email:    r.Email,
		Password: r.Password,
		Remember: isChecked(r.Remember),
	}
}

// isChecked accepts the values browsers and scripts send for a checkbox.
func isChecked(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "true", "on", "1":
		return true
	}
	return false
}

type loginJSONReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r loginJSONReq) toInput() auth.LoginInput {
	return auth.LoginInput{
		Email:    r.Email,
		Password: r.Password,
	}
}

// --- Response DTOs ---

// userResp.ID is text, the same form as the token's sub claim.
type userResp struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

// loginJSONResp is always sent with 200; Success tells the outcome.
type loginJSONResp struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Token   *string   `json:"token"`
	User    *userResp `json:"user"`
}

func newLoginSuccessResp(message, token string, u model.User) loginJSONResp {
	return loginJSONResp{
		Success: true,
		Message: message,
		Token:   &token,
		User: &userResp{
			ID:      strconv.FormatInt(u.ID, 10),
			Name:    u.Name,
			Email:   u.Email,
			IsAdmin: u.IsAdmin,
		},
	}
}

func newLoginFailureResp(message string) loginJSONResp {
	return loginJSONResp{Message: message}
}
