package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/domain"
	portssvc "github.com/srikanth1998/aec-flow-project-hub-sub001/internal/core/ports/services"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/dto"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/middleware"
	"github.com/srikanth1998/aec-flow-project-hub-sub001/internal/platform/config"
)

// authHandler handles signup, login and refresh-token flows.
type authHandler struct {
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
}

func newAuthHandler(us portssvc.UserSvcFacade, ts portssvc.TokenSvcFacade) *authHandler {
	return &authHandler{
		userService:  us,
		tokenService: ts,
	}
}

// registerAuthRoutes sets up the public authentication routes. Login and
// register are rate limited per client IP; logout requires a valid token.
func registerAuthRoutes(rg *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := newAuthHandler(services.User, services.Token)

	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)

	auth := rg.Group("/api/v1/auth")
	{
		auth.POST("/register", middleware.RateLimit(ipLimiter), h.register)
		auth.POST("/login", middleware.RateLimit(ipLimiter), h.login)
		auth.POST("/refresh", h.refresh)
		auth.POST("/logout", middleware.AuthMiddleware(cfg.JWTSecret), h.logout)
	}
}

// register creates a user and auto-provisions a fresh organization with the
// creator as its admin.
func (h *authHandler) register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	user, org, profile, err := h.userService.RegisterUser(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("User registered",
		slog.String("user_id", user.UserID),
		slog.String("organization_id", org.OrganizationID))
	c.JSON(http.StatusCreated, dto.RegisterResponse{
		User:         dto.ToUserResponse(user),
		Organization: dto.ToOrganizationResponse(org),
		Profile:      dto.ToProfileResponse(profile),
	})
}

// login authenticates credentials and issues an access/refresh token pair.
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.userService.AuthenticateUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// Same response for unknown email and wrong password.
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid email or password"})
		return
	}

	pair, err := h.issueTokenPair(c, user)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("User logged in", slog.String("user_id", user.UserID))
	c.JSON(http.StatusOK, pair)
}

// refresh rotates the refresh token and issues a new access token.
func (h *authHandler) refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	user, err := h.tokenService.ValidateAndParseRefreshToken(c.Request.Context(), req.UserID, req.RefreshToken)
	if err != nil {
		respondError(c, err)
		return
	}

	pair, err := h.issueTokenPair(c, user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pair)
}

// logout clears the stored refresh token so it can no longer be exchanged.
func (h *authHandler) logout(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.userService.ClearRefreshToken(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *authHandler) issueTokenPair(c *gin.Context, user *domain.User) (*dto.TokenPairResponse, error) {
	accessToken, accessExpiry, err := h.tokenService.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		return nil, err
	}

	refreshToken, refreshExpiry, err := h.tokenService.GenerateRefreshToken(c.Request.Context(), user)
	if err != nil {
		return nil, err
	}

	return &dto.TokenPairResponse{
		AccessToken:           accessToken,
		AccessTokenExpiresAt:  accessExpiry,
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: refreshExpiry,
		User:                  dto.ToUserResponse(user),
	}, nil
}
