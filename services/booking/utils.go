package booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/velaug24it-bit/serviceswebiste/models"

	"github.com/google/uuid"
)

const (
	bookingIDPrefix  = "BK"
	trackingIDPrefix = "SH"

	initialProgress = 10
	initialETA      = "45 minutes"
	rescheduledETA  = "Rescheduled - 45 minutes"
)

// Simulated provider start positions. Unknown locations use fallbackLocation.
var (
	locationCoordinates = map[string]models.Coordinate{
		"Chennai":    {Lat: 13.0827, Lng: 80.2707},
		"Coimbatore": {Lat: 11.0168, Lng: 76.9558},
	}
	fallbackLocation = locationCoordinates["Coimbatore"]
)

// NewBookingID returns "BK" followed by six uppercase hex characters.
func NewBookingID() string {
	hex := strings.ReplaceAll(uuid.New().String(), "-", "")
	return bookingIDPrefix + strings.ToUpper(hex[:6])
}

// newTrackingID returns "SH" + YYMMDD + a number in [100, 999].
func newTrackingID(now time.Time, r Random) string {
	return fmt.Sprintf("%s%s%d", trackingIDPrefix, now.Format("060102"), 100+r.Intn(900))
}

// priceSnapshot takes the lower bound of "<low> - <high>" or the amount of "<amount>/hour".
func priceSnapshot(priceRange string) string {
	if low, _, found := strings.Cut(priceRange, " - "); found {
		return low
	}
	amount, _, _ := strings.Cut(priceRange, "/")
	return amount
}

func coordinatesFor(location string) models.Coordinate {
	if c, ok := locationCoordinates[location]; ok {
		return c
	}
	return fallbackLocation
}

func initialStatus(location string, now time.Time) models.BookingStatus {
	return models.BookingStatus{
		Status:           models.ProgressConfirmed,
		Progress:         initialProgress,
		ProviderLocation: coordinatesFor(location),
		ETA:              initialETA,
		LastUpdated:      models.NewTimestamp(now),
	}
}
