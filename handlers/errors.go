package handlers

import (
	"errors"
	"net/http"

	"github.com/velaug24it-bit/serviceswebiste/services/booking"
	"github.com/velaug24it-bit/serviceswebiste/services/provider"
	"github.com/velaug24it-bit/serviceswebiste/services/user"
	"github.com/velaug24it-bit/serviceswebiste/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto the HTTP failure envelope.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, provider.ErrProviderNotFound), errors.Is(err, booking.ErrProviderNotFound):
		utils.JSONError(c, http.StatusNotFound, "Provider not found", err.Error())
	case errors.Is(err, booking.ErrBookingNotFound):
		utils.JSONError(c, http.StatusNotFound, "Booking not found", err.Error())
	case errors.Is(err, user.ErrUserNotFound):
		utils.JSONError(c, http.StatusNotFound, "User not found", err.Error())
	case errors.Is(err, user.ErrEmailTaken):
		utils.JSONError(c, http.StatusBadRequest, "Email already registered", "")
	case errors.Is(err, user.ErrInvalidCredentials):
		utils.JSONError(c, http.StatusUnauthorized, "Invalid credentials", "")
	case errors.Is(err, user.ErrInvalidAccountType):
		utils.JSONError(c, http.StatusUnauthorized, "Invalid account type", "")
	default:
		utils.JSONError(c, http.StatusInternalServerError, err.Error(), "")
	}
}

func badRequest(c *gin.Context, err error) {
	utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
}
