package handlers

import (
	"net/http"

	"aspcare/models"
	"aspcare/services/booking"

	"github.com/gin-gonic/gin"
)

// BookingHandler serves quoting, slots, checkout, orders and rewards.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(service booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: service}
}

// GetRate handles GET /api/booking/rate?vehicleType=&washType=&waterOption=.
func (h *BookingHandler) GetRate(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}
	var sel models.RateSelection
	if err := c.ShouldBindQuery(&sel); err != nil {
		badRequest(c, err)
		return
	}
	quote, err := h.Service.QuoteRate(c.Request.Context(), sess, sel)
	if err != nil {
		respondServiceError(c, err, "rate")
		return
	}
	c.JSON(http.StatusOK, quote)
}

// GetSlots handles GET /api/booking/slots?date=&serviceType=.
func (h *BookingHandler) GetSlots(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}
	board, err := h.Service.ResolveSlots(c.Request.Context(), sess, c.Query("date"), c.Query("serviceType"))
	if err != nil {
		respondServiceError(c, err, "slots")
		return
	}
	c.JSON(http.StatusOK, board)
}

func (h *BookingHandler) StartCheckout(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	view, err := h.Service.StartCheckout(c.Request.Context(), sess, req)
	if err != nil {
		respondServiceError(c, err, "checkout")
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *BookingHandler) GetCheckout(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}
	view, err := h.Service.GetCheckout(c.Request.Context(), sess)
	if err != nil {
		respondServiceError(c, err, "checkout")
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *BookingHandler) ApplyPromo(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}
	var body struct {
		Code string `json:"code"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}
	view, err := h.Service.ApplyPromo(c.Request.Context(), sess, body.Code)
	if err != nil {
		respondServiceError(c, err, "promo code")
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *BookingHandler) RemovePromo(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}
	view, err := h.Service.RemovePromo(c.Request.Context(), sess)
	if err != nil {
		respondServiceError(c, err, "promo code")
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *BookingHandler) CreatePaymentIntent(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}
	intent, err := h.Service.CreatePaymentIntent(c.Request.Context(), sess)
	if err != nil {
		respondServiceError(c, err, "payment")
		return
	}
	c.JSON(http.StatusOK, intent)
}

func (h *BookingHandler) ListOrders(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}
	orders, err := h.Service.ListOrders(c.Request.Context(), sess)
	if err != nil {
		respondServiceError(c, err, "orders")
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *BookingHandler) GetOrder(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}
	order, err := h.Service.GetOrder(c.Request.Context(), sess, id)
	if err != nil {
		respondServiceError(c, err, "order")
		return
	}
	c.JSON(http.StatusOK, order)
}

// GetUpgradeable returns the first order the upgrade banner can offer, or null.
func (h *BookingHandler) GetUpgradeable(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}
	order, err := h.Service.FindUpgradeable(c.Request.Context(), sess)
	if err != nil {
		respondServiceError(c, err, "upgradeable order")
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

func (h *BookingHandler) Reschedule(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}
	var req models.RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	order, err := h.Service.Reschedule(c.Request.Context(), sess, id, req)
	if err != nil {
		respondServiceError(c, err, "reschedule")
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *BookingHandler) Upgrade(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}
	var req models.UpgradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	order, err := h.Service.Upgrade(c.Request.Context(), sess, id, req.WashType)
	if err != nil {
		respondServiceError(c, err, "upgrade")
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *BookingHandler) CancelQuote(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}
	quote, err := h.Service.CancelQuote(c.Request.Context(), sess, id)
	if err != nil {
		respondServiceError(c, err, "cancellation quote")
		return
	}
	c.JSON(http.StatusOK, quote)
}

func (h *BookingHandler) ConfirmCancel(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}
	confirmation, err := h.Service.ConfirmCancel(c.Request.Context(), sess, id)
	if err != nil {
		respondServiceError(c, err, "cancel")
		return
	}
	c.JSON(http.StatusOK, confirmation)
}

func (h *BookingHandler) GetRewards(c *gin.Context) {
	sess, ok := requireSession(c)
	if !ok {
		return
	}
	summary, err := h.Service.Rewards(c.Request.Context(), sess)
	if err != nil {
		respondServiceError(c, err, "rewards")
		return
	}
	c.JSON(http.StatusOK, summary)
}
