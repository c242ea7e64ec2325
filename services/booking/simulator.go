package booking

import (
	"github.com/velaug24it-bit/serviceswebiste/models"
)

// Simulator thresholds and ETA texts.
const (
	completedAt  = 100
	inProgressAt = 70
	enRouteAt    = 40

	completedETA  = "Service completed"
	inProgressETA = "15 minutes remaining"
	enRouteETA    = "20 minutes"

	minStep = 5
	maxStep = 15
	// jitterSpan is the full width of the en-route coordinate jitter (±0.0005).
	jitterSpan = 0.001
)

// AdvanceAll runs one simulator step over every booking that is not
// completed or cancelled. Terminal records are never touched.
func (s *DefaultBookingService) AdvanceAll() int {
	now := models.NewTimestamp(s.now())
	return s.Repo.MutateAll(func(b *models.Booking, st *models.BookingStatus) bool {
		if st.Terminal() {
			return false
		}
		s.step(b, st)
		st.LastUpdated = now
		return true
	})
}

func (s *DefaultBookingService) step(b *models.Booking, st *models.BookingStatus) {
	st.Progress += minStep + s.Rand.Intn(maxStep-minStep+1)
	if s.ClampProgress && st.Progress > completedAt {
		st.Progress = completedAt
	}

	switch {
	case st.Progress >= completedAt:
		st.Status = models.ProgressCompleted
		st.ETA = completedETA
		b.Status = models.BookingCompleted
	case st.Progress >= inProgressAt:
		st.Status = models.ProgressInProgress
		st.ETA = inProgressETA
	case st.Progress >= enRouteAt:
		st.Status = models.ProgressEnRoute
		st.ETA = enRouteETA
		st.ProviderLocation.Lat += (s.Rand.Float64() - 0.5) * jitterSpan
		st.ProviderLocation.Lng += (s.Rand.Float64() - 0.5) * jitterSpan
	}
}
