package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amicinails/salon-booking-backend/internal/auth"
	"github.com/amicinails/salon-booking-backend/internal/pkg/response"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

type Handler struct {
	verifier   *auth.StaffVerifier
	jwtManager *auth.JWTManager
}

func NewHandler(verifier *auth.StaffVerifier, jwtManager *auth.JWTManager) *Handler {
	return &Handler{verifier: verifier, jwtManager: jwtManager}
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, auth.ErrBadCredentials)
		return
	}

	if err := h.verifier.Verify(req.Username, req.Password); err != nil {
		response.Error(c, err)
		return
	}

	token, err := h.jwtManager.GenerateStaffToken(req.Username)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{AccessToken: token})
}

func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	g.POST("/auth/login", h.Login)
}
