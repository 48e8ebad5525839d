package handlers

import (
	"context"
	"net/http"
	"strings"

	"aspcare/models"
	"aspcare/services/auth"
	"aspcare/services/session"
	"aspcare/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BannerDismisser records closed banners on a session.
type BannerDismisser interface {
	DismissBanner(ctx context.Context, id, banner string) (*models.Session, error)
}

type AuthHandler struct {
	Service  auth.AuthService
	Sessions BannerDismisser
}

func NewAuthHandler(service auth.AuthService, sessions BannerDismisser) *AuthHandler {
	return &AuthHandler{Service: service, Sessions: sessions}
}

func (h *AuthHandler) SendOTPHandler(c *gin.Context) {
	var req models.SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	msg, err := h.Service.SendOTP(c.Request.Context(), req.MobileNumber)
	if err != nil {
		respondServiceError(c, err, "send OTP")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

func (h *AuthHandler) VerifyOTPHandler(c *gin.Context) {
	var req models.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	result, err := h.Service.VerifyOTP(c.Request.Context(), req.MobileNumber, req.OTP)
	if err != nil {
		respondServiceError(c, err, "verify OTP")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *AuthHandler) GoogleLoginHandler(c *gin.Context) {
	var req models.GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	result, err := h.Service.GoogleLogin(c.Request.Context(), req.GoogleToken)
	if err != nil {
		respondServiceError(c, err, "google login")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}
	if err := h.Service.Logout(c.Request.Context(), sess); err != nil {
		utils.GetLogger().Error("Logout failed", zap.String("sessionID", sess.ID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Logout failed", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func (h *AuthHandler) GetSessionHandler(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": sess})
}

// DismissBannerHandler handles PUT /api/session/banners/:banner.
func (h *AuthHandler) DismissBannerHandler(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}
	banner := strings.ToLower(c.Param("banner"))
	if banner != session.BannerOffers && banner != session.BannerUpgrade {
		utils.JSONErrorCode(c, http.StatusBadRequest, CodeValidation, "Unknown banner", "banner")
		return
	}
	updated, err := h.Sessions.DismissBanner(c.Request.Context(), sess.ID, banner)
	if err != nil {
		respondServiceError(c, err, "dismiss banner")
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": updated})
}
