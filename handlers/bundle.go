// File: handlers/bundle.go
package handlers

import (
	"github.com/velaug24it-bit/serviceswebiste/services/session"
	"github.com/velaug24it-bit/serviceswebiste/utils"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Tokens   *utils.TokenIssuer
	Sessions session.Store

	// Account endpoints
	RegisterCustomerHandler gin.HandlerFunc
	RegisterProviderHandler gin.HandlerFunc
	LoginHandler            gin.HandlerFunc
	LogoutHandler           gin.HandlerFunc
	CurrentUserHandler      gin.HandlerFunc

	// Provider endpoints
	GetProvidersHandler    gin.HandlerFunc
	GetProviderByIDHandler gin.HandlerFunc
	UpdateProviderHandler  gin.HandlerFunc
	DashboardHandler       gin.HandlerFunc
	GetCategoriesHandler   gin.HandlerFunc
	GetLocationsHandler    gin.HandlerFunc

	// Booking endpoints
	BookServiceHandler       gin.HandlerFunc
	MyBookingsHandler        gin.HandlerFunc
	TrackHandler             gin.HandlerFunc
	TrackByTrackingIDHandler gin.HandlerFunc
	AdvanceStatusesHandler   gin.HandlerFunc
	RescheduleHandler        gin.HandlerFunc
	CancelHandler            gin.HandlerFunc
	ClearBookingsHandler     gin.HandlerFunc
	StatsHandler             gin.HandlerFunc
}

// NewHandlerBundle wires the handler structs into a bundle.
func NewHandlerBundle(tokens *utils.TokenIssuer, sessions session.Store, uh *UserHandler, ph *ProviderHandler, bh *BookingHandler) *HandlerBundle {
	return &HandlerBundle{
		Tokens:   tokens,
		Sessions: sessions,

		RegisterCustomerHandler: uh.RegisterCustomerHandler,
		RegisterProviderHandler: uh.RegisterProviderHandler,
		LoginHandler:            uh.LoginHandler,
		LogoutHandler:           uh.LogoutHandler,
		CurrentUserHandler:      uh.CurrentUserHandler,

		GetProvidersHandler:    ph.GetProvidersHandler,
		GetProviderByIDHandler: ph.GetProviderByIDHandler,
		UpdateProviderHandler:  ph.UpdateProviderHandler,
		DashboardHandler:       ph.DashboardHandler,
		GetCategoriesHandler:   ph.GetCategoriesHandler,
		GetLocationsHandler:    ph.GetLocationsHandler,

		BookServiceHandler:       bh.BookServiceHandler,
		MyBookingsHandler:        bh.MyBookingsHandler,
		TrackHandler:             bh.TrackHandler,
		TrackByTrackingIDHandler: bh.TrackByTrackingIDHandler,
		AdvanceStatusesHandler:   bh.AdvanceStatusesHandler,
		RescheduleHandler:        bh.RescheduleHandler,
		CancelHandler:            bh.CancelHandler,
		ClearBookingsHandler:     bh.ClearBookingsHandler,
		StatsHandler:             bh.StatsHandler,
	}
}
