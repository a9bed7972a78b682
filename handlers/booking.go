package handlers

import (
	"errors"
	"net/http"

	"rihla/services/booking"
	"rihla/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the submission pipeline and the reference
// lookup/cancel endpoints.
type BookingHandler struct {
	Svc    booking.BookingService
	Logger *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

// SubmitBooking handles POST /api/bookings.
func (h *BookingHandler) SubmitBooking(c *gin.Context) {
	var input struct {
		Slug   string            `json:"slug" binding:"required"`
		Values map[string]string `json:"values" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	result, fieldErrs, err := h.Svc.Submit(c.Request.Context(), input.Slug, input.Values)
	if err != nil {
		if errors.Is(err, booking.ErrServiceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
			return
		}
		h.Logger.Error("SubmitBooking: submission failed", zap.String("slug", input.Slug), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to submit booking"})
		return
	}
	if len(fieldErrs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": fieldErrs})
		return
	}

	c.JSON(http.StatusOK, result)
}

// LookupBooking handles POST /api/bookings/lookup.
func (h *BookingHandler) LookupBooking(c *gin.Context) {
	var input struct {
		Reference string `json:"reference" binding:"required"`
		Phone     string `json:"phone" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	record, err := h.Svc.Lookup(c.Request.Context(), input.Reference, input.Phone)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		return
	}
	c.JSON(http.StatusOK, record)
}

// CancelBooking handles POST /api/bookings/cancel.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	var input struct {
		Reference string `json:"reference" binding:"required"`
		Phone     string `json:"phone" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	record, err := h.Svc.RequestCancellation(c.Request.Context(), input.Reference, input.Phone)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		case errors.Is(err, booking.ErrNotCancellable):
			c.JSON(http.StatusConflict, gin.H{"error": "booking can no longer be cancelled"})
		default:
			h.Logger.Error("CancelBooking: cancellation failed", zap.String("reference", input.Reference), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel booking"})
		}
		return
	}
	c.JSON(http.StatusOK, record)
}
