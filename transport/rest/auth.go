package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/ewelinajablonska/tictactoe-backend/internal/apperror"
	"github.com/ewelinajablonska/tictactoe-backend/internal/config"
	"github.com/ewelinajablonska/tictactoe-backend/internal/entity"
	"github.com/ewelinajablonska/tictactoe-backend/internal/pkg"
)

const urlUserInfo = "https://www.googleapis.com/oauth2/v2/userinfo"

const authCookieTTL = 24 * time.Hour

type AuthHandler interface {
	Register(ctx echo.Context) error
	Login(ctx echo.Context) error

	GoogleLogin(ctx echo.Context) error
	GoogleCallback(ctx echo.Context) error
}

type userService interface {
	Register(ctx context.Context, email, name, password string) (*entity.User, error)
	Authenticate(ctx context.Context, email, password string) (*entity.User, error)
	GetOrCreateByEmail(ctx context.Context, email, name string) (*entity.User, error)
}

type authService interface {
	GenerateToken(userID, email string) (string, error)
}

type authHandler struct {
	logger *slog.Logger

	oauthConfig *oauth2.Config

	auth authService
	user userService
}

func NewAuth(logger *slog.Logger, conf *config.Config, auth authService, user userService) AuthHandler {
	oauthConfig := &oauth2.Config{
		ClientID:     conf.GoogleOAuth.ClientID,
		ClientSecret: conf.GoogleOAuth.ClientSecret,

		RedirectURL: conf.GoogleOAuth.RedirectURL,

		Scopes:   conf.GoogleOAuth.Scopes,
		Endpoint: google.Endpoint,
	}

	return &authHandler{
		logger:      logger.With("component", "auth"),
		oauthConfig: oauthConfig,
		auth:        auth,
		user:        user,
	}
}

type registerRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (that *authHandler) Register(ctx echo.Context) error {
	log := that.logger.With("method", "Register")

	var req registerRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid_request", "malformed request body")
	}

	if req.Email == "" || req.Password == "" {
		return writeError(ctx, http.StatusBadRequest, "invalid_request", "email and password are required")
	}

	user, err := that.user.Register(ctx.Request().Context(), req.Email, req.Name, req.Password)
	if errors.Is(err, apperror.ErrEmailTaken) {
		return writeError(ctx, http.StatusConflict, "email_taken", err.Error())
	}
	if err != nil {
		log.Error("failed to register user", "error", err)
		return writeError(ctx, http.StatusInternalServerError, "internal", "Internal Server Error")
	}

	return ctx.JSON(http.StatusCreated, user)
}

func (that *authHandler) Login(ctx echo.Context) error {
	log := that.logger.With("method", "Login")

	var req loginRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, http.StatusBadRequest, "invalid_request", "malformed request body")
	}

	user, err := that.user.Authenticate(ctx.Request().Context(), req.Email, req.Password)
	if errors.Is(err, apperror.ErrInvalidCredentials) {
		return writeError(ctx, http.StatusUnauthorized, "invalid_credentials", err.Error())
	}
	if err != nil {
		log.Error("failed to authenticate user", "error", err)
		return writeError(ctx, http.StatusInternalServerError, "internal", "Internal Server Error")
	}

	return that.issueToken(ctx, user)
}

func (that *authHandler) GoogleLogin(ctx echo.Context) error {
	log := that.logger.With("method", "GoogleLogin")

	stateToken, err := pkg.GenerateStateToken()
	if err != nil {
		log.Error("failed to generate state token", "error", err)
		return writeError(ctx, http.StatusInternalServerError, "internal", "Internal Server Error")
	}

	userSession, err := session.Get("session", ctx)
	if err != nil {
		log.Error("failed to get session", "error", err)
		return writeError(ctx, http.StatusInternalServerError, "internal", "Internal Server Error")
	}

	userSession.Values["state"] = stateToken
	if err = userSession.Save(ctx.Request(), ctx.Response()); err != nil {
		log.Error("failed to save session", "error", err)
		return writeError(ctx, http.StatusInternalServerError, "internal", "Internal Server Error")
	}

	authURL := that.oauthConfig.AuthCodeURL(stateToken)

	return ctx.Redirect(http.StatusTemporaryRedirect, authURL)
}

func (that *authHandler) GoogleCallback(ctx echo.Context) error {
	log := that.logger.With("method", "GoogleCallback")

	userSession, err := session.Get("session", ctx)
	if err != nil {
		log.Error("failed to get session", "error", err)
		return writeError(ctx, http.StatusInternalServerError, "internal", "Internal Server Error")
	}

	storedState, ok := userSession.Values["state"].(string)
	if !ok || storedState == "" {
		return writeError(ctx, http.StatusBadRequest, "invalid_state", "state not found in session")
	}

	if ctx.QueryParam("state") != storedState {
		return writeError(ctx, http.StatusBadRequest, "invalid_state", "OAuth state mismatch")
	}

	token, err := that.oauthConfig.Exchange(ctx.Request().Context(), ctx.QueryParam("code"))
	if err != nil {
		log.Error("failed to exchange code for token", "error", err)
		return writeError(ctx, http.StatusInternalServerError, "internal", "Internal Server Error")
	}

	client := that.oauthConfig.Client(ctx.Request().Context(), token)
	userInfo, err := getUserInfo(client)
	if err != nil {
		log.Error("failed to get user info", "error", err)
		return writeError(ctx, http.StatusInternalServerError, "internal", "Internal Server Error")
	}

	user, err := that.user.GetOrCreateByEmail(ctx.Request().Context(), userInfo.Email, userInfo.Name)
	if err != nil {
		log.Error("failed to create or update user", "error", err)
		return writeError(ctx, http.StatusInternalServerError, "internal", "Internal Server Error")
	}

	return that.issueToken(ctx, user)
}

func (that *authHandler) issueToken(ctx echo.Context, user *entity.User) error {
	jwtToken, err := that.auth.GenerateToken(user.ID, user.Email)
	if err != nil {
		that.logger.Error("failed to generate JWT token", "error", err)
		return writeError(ctx, http.StatusInternalServerError, "internal", "Internal Server Error")
	}

	ctx.SetCookie(&http.Cookie{
		Name:     "auth_token",
		Value:    jwtToken,
		Expires:  time.Now().Add(authCookieTTL),
		HttpOnly: true,
	})

	return ctx.JSON(http.StatusOK, map[string]string{
		"token": jwtToken,
	})
}

type googleUserInfo struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

func getUserInfo(client *http.Client) (*googleUserInfo, error) {
	resp, err := client.Get(urlUserInfo)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to get user info: status %d", resp.StatusCode)
	}

	var userInfo googleUserInfo
	if err = json.NewDecoder(resp.Body).Decode(&userInfo); err != nil {
		return nil, err
	}

	return &userInfo, nil
}
