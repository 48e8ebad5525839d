package handlers

import (
	"net/http"

	"aspcare/services/booking"

	"github.com/gin-gonic/gin"
)

type MembershipHandler struct {
	Service booking.MembershipService
}

func NewMembershipHandler(service booking.MembershipService) *MembershipHandler {
	return &MembershipHandler{Service: service}
}

// GetActive returns the active membership; none is a 404 with the "absent" code.
func (h *MembershipHandler) GetActive(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}
	m, err := h.Service.ActiveMembership(c.Request.Context(), sess)
	if err != nil {
		respondServiceError(c, err, "active membership")
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *MembershipHandler) GetHistory(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}
	list, err := h.Service.MembershipHistory(c.Request.Context(), sess)
	if err != nil {
		respondServiceError(c, err, "memberships")
		return
	}
	c.JSON(http.StatusOK, gin.H{"memberships": list})
}

func (h *MembershipHandler) GetPlans(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}
	plans, err := h.Service.Plans(c.Request.Context(), sess)
	if err != nil {
		respondServiceError(c, err, "membership plans")
		return
	}
	c.JSON(http.StatusOK, gin.H{"plans": plans})
}

func (h *MembershipHandler) Purchase(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}
	var body struct {
		PlanCode string `json:"planCode" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}
	purchase, err := h.Service.PurchaseMembership(c.Request.Context(), sess, body.PlanCode)
	if err != nil {
		respondServiceError(c, err, "membership purchase")
		return
	}
	c.JSON(http.StatusCreated, purchase)
}
