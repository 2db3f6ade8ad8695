package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/username/propfolio/src/config"
	"github.com/username/propfolio/src/logger"
	"github.com/username/propfolio/src/security"
	"github.com/username/propfolio/src/utils"
)

type AuthHandler struct {
	authService *security.AuthService
}

func NewAuthHandler(authService *security.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

type tokenRequest struct {
	APIKey string `json:"apiKey"`
}

// HandleIssueToken exchanges the configured API key for a short-lived access
// token.
func (h *AuthHandler) HandleIssueToken(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.APIKey == "" {
		utils.SendJSONError(w, "apiKey is required", http.StatusBadRequest)
		return
	}

	if config.Cfg.APIKeyHash == "" {
		logger.L.Error("API_KEY_HASH is not configured; refusing token issuance")
		utils.SendJSONError(w, "Token issuance is not configured", http.StatusServiceUnavailable)
		return
	}
	if err := h.authService.VerifyAPIKey(config.Cfg.APIKeyHash, req.APIKey); err != nil {
		logger.L.Warn("Rejected token request with invalid API key", "remoteAddr", r.RemoteAddr)
		utils.SendJSONError(w, "Invalid API key", http.StatusUnauthorized)
		return
	}

	token, err := h.authService.GenerateToken("api-client")
	if err != nil {
		logger.L.Error("Failed to generate access token", "error", err)
		utils.SendJSONError(w, "An internal error occurred while issuing the token.", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"token":     token,
		"expiresIn": int(config.Cfg.AccessTokenExpiry.Seconds()),
	})
}

// Middleware validates the Authorization bearer token on protected routes.
func (h *AuthHandler) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			logger.L.Debug("Authorization header missing", "path", r.URL.Path)
			utils.SendJSONError(w, "Authorization header required", http.StatusUnauthorized)
			return
		}

		tokenString := authHeader
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}
		if tokenString == "" {
			logger.L.Debug("Token string empty", "path", r.URL.Path)
			utils.SendJSONError(w, "Malformed token", http.StatusUnauthorized)
			return
		}

		if _, err := h.authService.ValidateToken(tokenString); err != nil {
			logger.L.Warn("Token validation failed", "path", r.URL.Path, "error", err)
			utils.SendJSONError(w, "Invalid or expired token", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
