package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/devhussain7/medium-api/internal/api/shared"
	"github.com/devhussain7/medium-api/internal/service"
)

// AuthHandler handles the signup and signin endpoints.
type AuthHandler struct {
	userService service.UserService
	validator   *validator.Validate
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(userService service.UserService) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		validator:   validator.New(),
	}
}

// Signup handles the /user/signup endpoint.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest

	// Parse request
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			CodeValidationFailed, "Invalid request format")
		return
	}

	// Validate request shape before anything touches the store
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			CodeValidationFailed, SanitizeValidationError(err))
		return
	}

	result, err := h.userService.Signup(r.Context(), req.Username, req.Name, req.Password)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), MapErrorToCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AuthResponse{
		Message: "Sign up success!",
		JWT:     result.Token,
		UserID:  result.UserID,
	})
}

// Signin handles the /user/signin endpoint.
func (h *AuthHandler) Signin(w http.ResponseWriter, r *http.Request) {
	var req SigninRequest

	// Parse request
	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			CodeValidationFailed, "Invalid request format")
		return
	}

	// Validate request
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			CodeValidationFailed, SanitizeValidationError(err))
		return
	}

	result, err := h.userService.Signin(r.Context(), req.Username, req.Password)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), MapErrorToCode(err), GetSafeErrorMessage(err), err)
		return
	}

	slog.Debug("signin succeeded", "user_id", result.UserID)

	shared.RespondWithJSON(w, r, http.StatusOK, AuthResponse{
		Message: "Sign in success!",
		JWT:     result.Token,
		UserID:  result.UserID,
	})
}
