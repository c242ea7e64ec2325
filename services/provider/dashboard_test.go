package provider

import (
	"fmt"
	"testing"
	"time"

	bookingRepo "github.com/velaug24it-bit/serviceswebiste/database/repository/booking"
	"github.com/velaug24it-bit/serviceswebiste/models"
)

func addBooking(t *testing.T, repo *bookingRepo.MemoryBookingRepo, n, providerID int, date, price, status string) {
	t.Helper()
	b := models.Booking{
		ID:         fmt.Sprintf("BK%06d", n),
		TrackingID: fmt.Sprintf("SH240305%03d", n),
		ProviderID: providerID,
		Date:       date,
		Price:      price,
		Status:     status,
		CreatedAt:  models.NewTimestamp(fixedNow.Add(time.Duration(n) * time.Minute)),
	}
	if err := repo.Create(b, models.BookingStatus{Status: models.ProgressConfirmed, Progress: 10}); err != nil {
		t.Fatalf("seed booking: %v", err)
	}
}

func TestDashboardStats(t *testing.T) {
	svc, bookings := newTestService()
	addBooking(t, bookings, 1, 1, "2024-03-05", "₹300", models.BookingCompleted)
	addBooking(t, bookings, 2, 1, "2024-03-05", "₹1,200.50", models.BookingCompleted)
	addBooking(t, bookings, 3, 1, "2024-03-09", "₹300", models.BookingConfirmed)
	addBooking(t, bookings, 4, 1, "2024-03-01", "on request", models.BookingCompleted)
	addBooking(t, bookings, 5, 2, "2024-03-05", "₹250", models.BookingCompleted)

	dash, err := svc.GetDashboard(1)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	want := models.DashboardStats{
		TodayBookings:     2,
		TotalBookings:     4,
		CompletedBookings: 3,
		TotalEarnings:     1500.5,
		AverageRating:     4.8,
	}
	if dash.Stats != want {
		t.Fatalf("expected %+v, got %+v", want, dash.Stats)
	}
	if len(dash.RecentBookings) != 4 || dash.RecentBookings[0].ID != "BK000004" {
		t.Fatalf("recent bookings not newest first: %+v", dash.RecentBookings)
	}
}

func TestDashboardLimitsRecentBookings(t *testing.T) {
	svc, bookings := newTestService()
	for i := 1; i <= 7; i++ {
		addBooking(t, bookings, i, 3, "2024-03-08", "₹350", models.BookingConfirmed)
	}

	dash, _ := svc.GetDashboard(3)
	if len(dash.RecentBookings) != 5 {
		t.Fatalf("expected 5 recent bookings, got %d", len(dash.RecentBookings))
	}
	for i, b := range dash.RecentBookings {
		if want := fmt.Sprintf("BK%06d", 7-i); b.ID != want {
			t.Fatalf("position %d: expected %s, got %s", i, want, b.ID)
		}
	}
}

func TestDashboardUnknownProvider(t *testing.T) {
	svc, _ := newTestService()
	dash, err := svc.GetDashboard(99)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if dash.Stats.TotalBookings != 0 || dash.Stats.AverageRating != 5.0 || len(dash.RecentBookings) != 0 {
		t.Fatalf("unexpected dashboard for unknown provider: %+v", dash)
	}
}
