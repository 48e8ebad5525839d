package handlers

import (
	"net/http"

	"aspcare/services/booking"

	"github.com/gin-gonic/gin"
)

// DirectoryHandler serves referrals, centres, deals and the profile.
type DirectoryHandler struct {
	Service booking.DirectoryService
}

func NewDirectoryHandler(service booking.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{Service: service}
}

func (h *DirectoryHandler) GenerateReferral(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}
	coupon, err := h.Service.GenerateReferral(c.Request.Context(), sess)
	if err != nil {
		respondServiceError(c, err, "referral code")
		return
	}
	c.JSON(http.StatusCreated, coupon)
}

func (h *DirectoryHandler) GetReferrals(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}
	details, err := h.Service.ReferralDetails(c.Request.Context(), sess)
	if err != nil {
		respondServiceError(c, err, "referrals")
		return
	}
	c.JSON(http.StatusOK, details)
}

func (h *DirectoryHandler) GetAreas(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}
	areas, err := h.Service.Areas(c.Request.Context(), sess)
	if err != nil {
		respondServiceError(c, err, "areas")
		return
	}
	c.JSON(http.StatusOK, gin.H{"areas": areas})
}

// SearchCentres handles GET /api/centres?area=.
func (h *DirectoryHandler) SearchCentres(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}
	centres, err := h.Service.SearchCentres(c.Request.Context(), sess, c.Query("area"))
	if err != nil {
		respondServiceError(c, err, "centres")
		return
	}
	c.JSON(http.StatusOK, gin.H{"centres": centres})
}

func (h *DirectoryHandler) GetDeals(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}
	deals, err := h.Service.Deals(c.Request.Context(), sess, c.Query("q"))
	if err != nil {
		respondServiceError(c, err, "deals")
		return
	}
	c.JSON(http.StatusOK, gin.H{"deals": deals})
}

func (h *DirectoryHandler) GetProfile(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}
	profile, err := h.Service.Profile(c.Request.Context(), sess)
	if err != nil {
		respondServiceError(c, err, "profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}
