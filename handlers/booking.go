package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/velaug24it-bit/serviceswebiste/models"
	"github.com/velaug24it-bit/serviceswebiste/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves booking, tracking and simulator endpoints.
type BookingHandler struct {
	Service booking.BookingService
	logger  *zap.Logger
}

func NewBookingHandler(service booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: service, logger: logger}
}

// BookServiceHandler handles POST /book.
func (h *BookingHandler) BookServiceHandler(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	created, err := h.Service.CreateBooking(req)
	if err != nil {
		respondError(c, err)
		return
	}
	h.logger.Info("Booking created",
		zap.String("bookingID", created.BookingID),
		zap.String("trackingID", created.TrackingID),
		zap.Int("providerID", req.ProviderID),
	)
	c.JSON(http.StatusCreated, gin.H{
		"success":    true,
		"bookingId":  created.BookingID,
		"booking":    created.Booking,
		"trackingId": created.TrackingID,
	})
}

// MyBookingsHandler handles GET /my-bookings, newest first.
func (h *BookingHandler) MyBookingsHandler(c *gin.Context) {
	views, err := h.Service.ListNewestFirst()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// TrackHandler handles GET /track/:bookingId.
func (h *BookingHandler) TrackHandler(c *gin.Context) {
	t, err := h.Service.TrackByBookingID(c.Param("bookingId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "booking": t.Booking, "statusInfo": t.StatusInfo})
}

// TrackByTrackingIDHandler handles GET /track/by-tracking-id/:trackingId.
func (h *BookingHandler) TrackByTrackingIDHandler(c *gin.Context) {
	t, err := h.Service.TrackByTrackingID(c.Param("trackingId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "booking": t.Booking, "statusInfo": t.StatusInfo})
}

// AdvanceStatusesHandler handles POST /update-booking-status.
func (h *BookingHandler) AdvanceStatusesHandler(c *gin.Context) {
	advanced := h.Service.AdvanceAll()
	h.logger.Debug("Booking statuses advanced", zap.Int("advanced", advanced))
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Booking statuses updated",
		"advanced": advanced,
	})
}

// RescheduleHandler handles POST /reschedule/:bookingId. An empty body keeps date and time.
func (h *BookingHandler) RescheduleHandler(c *gin.Context) {
	var req models.RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		badRequest(c, err)
		return
	}

	b, err := h.Service.Reschedule(c.Param("bookingId"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "booking": b})
}

// CancelHandler handles POST /cancel/:bookingId.
func (h *BookingHandler) CancelHandler(c *gin.Context) {
	b, err := h.Service.Cancel(c.Param("bookingId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "booking": b})
}

// ClearBookingsHandler handles POST /clear-bookings.
func (h *BookingHandler) ClearBookingsHandler(c *gin.Context) {
	h.Service.ClearAll()
	h.logger.Info("All bookings cleared")
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "All bookings cleared"})
}

// StatsHandler handles GET /api/stats.
func (h *BookingHandler) StatsHandler(c *gin.Context) {
	stats, err := h.Service.GetStats()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
}
