package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/username/chainfolio/backend/src/logger"
	"github.com/username/chainfolio/backend/src/security"
	"github.com/username/chainfolio/backend/src/utils"
)

type AuthHandler struct {
	authService *security.AuthService
}

func NewAuthHandler(authService *security.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type tokenRequest struct {
	Secret string `json:"secret"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// HandleIssueToken exchanges the configured shared secret for a short-lived
// bearer token.
func (h *AuthHandler) HandleIssueToken(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.SendJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if !h.authService.VerifySharedSecret(req.Secret) {
		logger.L.Warn("Token request with invalid secret", "remoteAddr", r.RemoteAddr)
		utils.SendJSONError(w, "invalid secret", http.StatusUnauthorized)
		return
	}

	token, err := h.authService.GenerateToken("api")
	if err != nil {
		logger.L.Error("Failed to generate token", "error", err)
		utils.SendJSONError(w, "failed to generate token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(tokenResponse{Token: token}); err != nil {
		logger.L.Error("Error encoding token response", "error", err)
	}
}
