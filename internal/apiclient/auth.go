package apiclient

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"assigna/internal/credentials"
	"assigna/internal/service"
)

// Auth endpoint paths, relative to the base URL.
const (
	PathRegister       = "user/register"
	PathLogin          = "user/login"
	PathForgotPassword = "user/forgot-password"
	PathResetPassword  = "user/reset-password"
	PathRefreshToken   = "user/refresh-token"
)

type loginRequest struct {
	UserName string `json:"userName"`
	Password string `json:"password"`
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	Password    string `json:"password"`
	ConPassword string `json:"conPassword"`
	ResetToken  string `json:"resetToken"`
}

type refreshTokenRequest struct {
	TokenRefresh string `json:"tokenRefresh"`
}

// AuthClient performs the unauthenticated account calls. It never attaches a
// bearer token and never retries.
type AuthClient struct {
	client *Client
	store  *credentials.Store
	logger *slog.Logger
}

// NewAuthClient creates an auth client writing login results into store.
func NewAuthClient(client *Client, store *credentials.Store) *AuthClient {
	return &AuthClient{
		client: client,
		store:  store,
		logger: client.logger.With("component", "auth"),
	}
}

// Register creates an account.
func (a *AuthClient) Register(ctx context.Context, r service.Registration) service.AuthResult {
	return a.post(ctx, PathRegister, r)
}

// Login authenticates. On success the token pair, its expiry and the role
// claim are written to the store.
func (a *AuthClient) Login(ctx context.Context, userName, password string) service.AuthResult {
	res := a.post(ctx, PathLogin, loginRequest{UserName: userName, Password: password})
	if !res.Success {
		return res
	}

	claims, err := ParseClaims(res.Token)
	if err != nil {
		a.logger.Error("login returned an unreadable access token", "error", err)
		return service.AuthResult{Message: service.MsgInternalError}
	}

	a.store.SetTokens(res.Token, res.RefreshToken, claims.Expiry())
	a.store.SetRole(claims.Role)
	return res
}

// ForgotPassword requests a reset token and keeps it for ResetPassword.
func (a *AuthClient) ForgotPassword(ctx context.Context, email string) service.AuthResult {
	res := a.post(ctx, PathForgotPassword, forgotPasswordRequest{Email: email})
	if res.Success {
		a.store.SetResetToken(res.ResetToken)
	}
	return res
}

// ResetPassword sets a new password.
func (a *AuthClient) ResetPassword(ctx context.Context, newPassword, confirmPassword, resetToken string) service.AuthResult {
	return a.post(ctx, PathResetPassword, resetPasswordRequest{
		Password:    newPassword,
		ConPassword: confirmPassword,
		ResetToken:  resetToken,
	})
}

// RefreshToken exchanges a refresh token for a new pair. The store is not
// touched; the executor decides what to do with the result.
func (a *AuthClient) RefreshToken(ctx context.Context, refreshToken string) service.AuthResult {
	return a.post(ctx, PathRefreshToken, refreshTokenRequest{TokenRefresh: refreshToken})
}

func (a *AuthClient) post(ctx context.Context, path string, body any) service.AuthResult {
	data, err := json.Marshal(body)
	if err != nil {
		a.logger.Error("marshal request", "path", path, "error", err)
		return service.AuthResult{Message: service.MsgInternalError}
	}

	resp, err := a.client.send(ctx, http.MethodPost, path, data, nil, "")
	if err != nil {
		a.logger.Error("auth request failed", "path", path, "error", err)
		return service.AuthResult{Message: service.MsgInternalError}
	}
	if !resp.ok() {
		a.logger.Debug("auth request rejected", "path", path, "status", resp.status)
		return service.AuthResult{Message: service.MsgRequestFailed}
	}

	var res service.AuthResult
	if isEmpty(resp.body) {
		return res
	}
	if err := json.Unmarshal(resp.body, &res); err != nil {
		a.logger.Error("unmarshal response", "path", path, "error", err)
		return service.AuthResult{Message: service.MsgInternalError}
	}
	return res
}
