package provider

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/velaug24it-bit/serviceswebiste/models"
	"github.com/velaug24it-bit/serviceswebiste/utils"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const recentBookingsLimit = 5

var currencySymbols = strings.NewReplacer("$", "", "₹", "", ",", "")

// GetDashboard summarises the bookings placed with a provider. A provider
// without bookings, or unknown to the catalog, gets zero counts.
func (s *DefaultProviderService) GetDashboard(id int) (*models.ProviderDashboard, error) {
	bookings, err := s.BookingRepo.GetByProviderID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for provider %d: %w", id, err)
	}

	today := s.now().Format(utils.DateLayout)
	stats := models.DashboardStats{
		TotalBookings: len(bookings),
		AverageRating: initialRating,
	}
	if prov, err := s.Repo.GetByID(id); err == nil {
		stats.AverageRating = prov.Rating
	}

	earnings := decimal.Zero
	for _, b := range bookings {
		if sameDay(b.Date, today) {
			stats.TodayBookings++
		}
		if b.Status != models.BookingCompleted {
			continue
		}
		stats.CompletedBookings++
		amount, err := parsePrice(b.Price)
		if err != nil {
			utils.GetLogger().Warn("Skipping unparseable booking price",
				zap.String("bookingID", b.ID), zap.String("price", b.Price), zap.Error(err))
			continue
		}
		earnings = earnings.Add(amount)
	}
	stats.TotalEarnings = earnings.InexactFloat64()

	recent := make([]models.Booking, len(bookings))
	copy(recent, bookings)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt.Time)
	})
	if len(recent) > recentBookingsLimit {
		recent = recent[:recentBookingsLimit]
	}

	return &models.ProviderDashboard{Stats: stats, RecentBookings: recent}, nil
}

func sameDay(date, today string) bool {
	d, err := time.Parse(utils.DateLayout, date)
	if err != nil {
		return false
	}
	return d.Format(utils.DateLayout) == today
}

// parsePrice reads a price snapshot such as "₹500" or "$40".
func parsePrice(price string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(currencySymbols.Replace(price)))
}
