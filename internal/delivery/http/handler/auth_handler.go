package handler

import (
	"encoding/json"
	"net/http"

	"clinic-management/internal/converter"
	"clinic-management/internal/delivery/dto"
	"clinic-management/internal/delivery/http/middleware"
	"clinic-management/internal/usecase"
	"clinic-management/pkg/response"
)

type AuthHandler struct {
	authUsecase  usecase.AuthUsecase
	cookieName   string
	secureCookie bool
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, cookieName string, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		authUsecase:  authUsecase,
		cookieName:   cookieName,
		secureCookie: secureCookie,
	}
}

// Login handles user login
// @Summary Login
// @Description Opens a session and sets the session cookie
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Failure(w, http.StatusBadRequest)
		return
	}

	session, err := h.authUsecase.Login(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrCredentialsRequired:
			response.Failure(w, http.StatusBadRequest)
		case usecase.ErrInvalidCredentials:
			response.Failure(w, http.StatusOK)
		default:
			response.Failure(w, http.StatusInternalServerError)
		}
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    session.Token,
		Path:     "/",
		MaxAge:   session.ExpiresIn,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	response.Success(w, http.StatusOK, "")
}

// Logout handles user logout
// @Summary Logout
// @Description Ends the session and expires the cookie
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Response
// @Router /logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	var token string
	if cookie, err := r.Cookie(h.cookieName); err == nil {
		token = cookie.Value
	}

	if err := h.authUsecase.Logout(r.Context(), token); err != nil {
		response.InternalServerError(w, "Erro ao encerrar sessão")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	response.Success(w, http.StatusOK, "")
}

// GetCurrentUser returns the identity bound to the session
// @Summary Current identity
// @Tags Auth
// @Produce json
// @Success 200 {object} dto.IdentityResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /api/me [get]
func (h *AuthHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentityFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	response.JSON(w, http.StatusOK, converter.IdentityToResponse(identity))
}
