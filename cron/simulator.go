package cron

import (
	"fmt"

	"github.com/velaug24it-bit/serviceswebiste/services/booking"
	"github.com/velaug24it-bit/serviceswebiste/utils"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Advancer is the part of the booking service the scheduler drives.
type Advancer interface {
	AdvanceAll() int
}

var _ Advancer = (booking.BookingService)(nil)

// StartSimulator advances booking statuses on the given cron schedule, e.g.
// "@every 30s". An empty schedule leaves the simulator to explicit
// POST /update-booking-status calls and returns a nil scheduler.
func StartSimulator(schedule string, svc Advancer) (*cron.Cron, error) {
	if schedule == "" {
		return nil, nil
	}
	logger := utils.GetLogger()

	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		advanced := svc.AdvanceAll()
		logger.Debug("Simulator tick", zap.Int("advanced", advanced))
	})
	if err != nil {
		return nil, fmt.Errorf("invalid simulator schedule %q: %w", schedule, err)
	}

	c.Start()
	logger.Info("Booking status simulator started", zap.String("schedule", schedule))
	return c, nil
}
