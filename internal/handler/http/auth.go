package http

import (
	"encoding/json"
	"net/http"

	"github.com/hr-staff/hr-staff-backend-go/internal/domain/auth"
	"github.com/hr-staff/hr-staff-backend-go/internal/handler/http/response"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	authService auth.AuthService
}

func NewAuthHandler(authService auth.AuthService) AuthHandler {
	return &authHandlerImpl{authService: authService}
}

// Login implements AuthHandler
func (h *authHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Login successful", resp)
}

// Logout implements AuthHandler. Tokens are not tracked server-side, so
// logout only confirms that the client should discard its token.
func (h *authHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	response.SuccessWithMessage(w, "Logout successful", nil)
}
