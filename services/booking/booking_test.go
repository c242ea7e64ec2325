package booking

import (
	"errors"
	"regexp"
	"testing"
	"time"

	bookingRepo "github.com/velaug24it-bit/serviceswebiste/database/repository/booking"
	providerRepo "github.com/velaug24it-bit/serviceswebiste/database/repository/provider"
	userRepo "github.com/velaug24it-bit/serviceswebiste/database/repository/user"
	"github.com/velaug24it-bit/serviceswebiste/database/seed"
	"github.com/velaug24it-bit/serviceswebiste/models"
)

var fixedNow = time.Date(2024, time.March, 5, 9, 30, 0, 0, time.Local)

// seqRand replays ints in a loop and always returns the same float.
type seqRand struct {
	ints  []int
	i     int
	float float64
}

func (r *seqRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[r.i%len(r.ints)]
	r.i++
	return v % n
}

func (r *seqRand) Float64() float64 { return r.float }

func newTestService(catalog []models.Provider) (*DefaultBookingService, *bookingRepo.MemoryBookingRepo) {
	repo := bookingRepo.NewMemoryBookingRepo()
	svc := NewDefaultBookingService(repo, providerRepo.NewMemoryProviderRepo(catalog), userRepo.NewMemoryUserRepo(), true)
	svc.Rand = &seqRand{ints: []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, float: 0.5}
	svc.Now = func() time.Time { return fixedNow }
	return svc, repo
}

func mustCreate(t *testing.T, svc *DefaultBookingService, providerID int) *models.CreatedBooking {
	t.Helper()
	created, err := svc.CreateBooking(models.BookingRequest{
		ProviderID:  providerID,
		ServiceType: "Repair",
		Date:        "2024-03-06",
		Time:        "10:00",
		Phone:       "+91 90000 00000",
	})
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}
	return created
}

func TestCreateBookingSnapshotsProvider(t *testing.T) {
	svc, _ := newTestService([]models.Provider{
		{ID: 1, Name: "Chennai Fixers", Location: "Chennai", PriceRange: "₹500/hour"},
	})

	created := mustCreate(t, svc, 1)
	b := created.Booking
	if b.Price != "₹500" {
		t.Fatalf("expected price ₹500, got %q", b.Price)
	}
	if b.ProviderName != "Chennai Fixers" || b.Location != "Chennai" {
		t.Fatalf("provider snapshot mismatch: %+v", b)
	}
	if b.Status != models.BookingConfirmed {
		t.Fatalf("expected Confirmed, got %q", b.Status)
	}

	tr, err := svc.TrackByBookingID(created.BookingID)
	if err != nil {
		t.Fatalf("track: %v", err)
	}
	st := tr.StatusInfo
	if st.Status != models.ProgressConfirmed || st.Progress != 10 || st.ETA != "45 minutes" {
		t.Fatalf("unexpected initial status: %+v", st)
	}
	if st.ProviderLocation.Lat != 13.0827 || st.ProviderLocation.Lng != 80.2707 {
		t.Fatalf("unexpected Chennai coordinates: %+v", st.ProviderLocation)
	}
}

func TestCreateBookingIdentifierFormats(t *testing.T) {
	svc, _ := newTestService(seed.Providers())
	svc.NewBookingID = NewBookingID
	svc.Rand = &seqRand{ints: []int{23}}

	created := mustCreate(t, svc, 1)
	if !regexp.MustCompile(`^BK[0-9A-F]{6}$`).MatchString(created.BookingID) {
		t.Fatalf("bad booking id %q", created.BookingID)
	}
	if created.TrackingID != "SH240305123" {
		t.Fatalf("expected tracking id SH240305123, got %q", created.TrackingID)
	}
}

func TestCreateBookingRetriesOnCollision(t *testing.T) {
	svc, _ := newTestService(seed.Providers())
	ids := []string{"BKAAAAAA", "BKAAAAAA", "BKAAAAAA", "BKBBBBBB"}
	svc.NewBookingID = func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}

	first := mustCreate(t, svc, 1)
	second := mustCreate(t, svc, 2)
	if first.BookingID != "BKAAAAAA" || second.BookingID != "BKBBBBBB" {
		t.Fatalf("unexpected ids %q, %q", first.BookingID, second.BookingID)
	}
}

func TestSameDayBookingsNeverExhaustTrackingIDs(t *testing.T) {
	svc, _ := newTestService(seed.Providers())
	// 1000 bookings on one day outnumber the 900 tracking suffixes.
	for i := 0; i < 1000; i++ {
		if _, err := svc.CreateBooking(models.BookingRequest{ProviderID: 1 + i%12, Date: "2024-03-05"}); err != nil {
			t.Fatalf("booking #%d failed: %v", i+1, err)
		}
	}

	views, _ := svc.ListNewestFirst()
	if len(views) != 1000 {
		t.Fatalf("expected 1000 bookings, got %d", len(views))
	}
	oldest := views[len(views)-1]
	tr, err := svc.TrackByTrackingID(oldest.TrackingID)
	if err != nil {
		t.Fatalf("track: %v", err)
	}
	if tr.Booking.ID != oldest.ID {
		t.Fatalf("tracking lookup should return the earliest booking %s, got %s", oldest.ID, tr.Booking.ID)
	}
}

func TestCreateBookingGivesUpWhenBookingIDsRepeat(t *testing.T) {
	svc, _ := newTestService(seed.Providers())
	svc.NewBookingID = func() string { return "BKAAAAAA" }

	mustCreate(t, svc, 1)
	if _, err := svc.CreateBooking(models.BookingRequest{ProviderID: 1}); !errors.Is(err, ErrIDSpaceExhausted) {
		t.Fatalf("expected ErrIDSpaceExhausted, got %v", err)
	}
}

func TestCreateBookingUnknownProvider(t *testing.T) {
	svc, _ := newTestService(seed.Providers())
	if _, err := svc.CreateBooking(models.BookingRequest{ProviderID: 999}); !errors.Is(err, ErrProviderNotFound) {
		t.Fatalf("expected ErrProviderNotFound, got %v", err)
	}
	if _, err := svc.CreateBooking(models.BookingRequest{}); !errors.Is(err, ErrProviderNotFound) {
		t.Fatalf("expected ErrProviderNotFound for missing provider id, got %v", err)
	}
}

func TestTrackingLookups(t *testing.T) {
	svc, _ := newTestService(seed.Providers())
	created := mustCreate(t, svc, 4)

	tr, err := svc.TrackByTrackingID(created.TrackingID)
	if err != nil {
		t.Fatalf("track by tracking id: %v", err)
	}
	if tr.Booking.ID != created.BookingID {
		t.Fatalf("expected %s, got %s", created.BookingID, tr.Booking.ID)
	}
	if _, err := svc.TrackByTrackingID("SH000000000"); !errors.Is(err, ErrBookingNotFound) {
		t.Fatalf("expected ErrBookingNotFound, got %v", err)
	}
	if _, err := svc.TrackByBookingID("BKNOPE00"); !errors.Is(err, ErrBookingNotFound) {
		t.Fatalf("expected ErrBookingNotFound, got %v", err)
	}
}

func TestCancelIsAbsorbing(t *testing.T) {
	svc, _ := newTestService(seed.Providers())
	created := mustCreate(t, svc, 1)

	b, err := svc.Cancel(created.BookingID)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if b.Status != models.BookingCancelled {
		t.Fatalf("expected Cancelled, got %q", b.Status)
	}

	svc.Now = func() time.Time { return fixedNow.Add(time.Hour) }
	for i := 0; i < 5; i++ {
		svc.AdvanceAll()
	}

	tr, _ := svc.TrackByBookingID(created.BookingID)
	if tr.StatusInfo.Status != models.ProgressCancelled || tr.StatusInfo.Progress != 0 {
		t.Fatalf("cancelled booking advanced: %+v", tr.StatusInfo)
	}
	if !tr.StatusInfo.LastUpdated.Equal(fixedNow) {
		t.Fatalf("cancelled booking touched at %v", tr.StatusInfo.LastUpdated)
	}

	if _, err := svc.Cancel("BKNOPE00"); !errors.Is(err, ErrBookingNotFound) {
		t.Fatalf("expected ErrBookingNotFound, got %v", err)
	}
}

func TestRescheduleResetsProgress(t *testing.T) {
	svc, repo := newTestService(seed.Providers())
	created := mustCreate(t, svc, 1)
	_, _ = repo.Mutate(created.BookingID, func(_ *models.Booking, st *models.BookingStatus) error {
		st.Status = models.ProgressInProgress
		st.Progress = 75
		st.ETA = "15 minutes remaining"
		return nil
	})

	later := fixedNow.Add(2 * time.Hour)
	svc.Now = func() time.Time { return later }
	date := "2024-03-10"
	b, err := svc.Reschedule(created.BookingID, models.RescheduleRequest{Date: &date})
	if err != nil {
		t.Fatalf("reschedule: %v", err)
	}
	if b.Date != date || b.Time != "10:00" {
		t.Fatalf("expected date %s and unchanged time, got %s %s", date, b.Date, b.Time)
	}

	tr, _ := svc.TrackByBookingID(created.BookingID)
	st := tr.StatusInfo
	if st.Status != models.ProgressConfirmed || st.Progress != 10 || st.ETA != "Rescheduled - 45 minutes" {
		t.Fatalf("status not reset: %+v", st)
	}
	if !st.LastUpdated.Equal(later) {
		t.Fatalf("lastUpdated not refreshed: %v", st.LastUpdated)
	}

	if _, err := svc.Reschedule("BKNOPE00", models.RescheduleRequest{}); !errors.Is(err, ErrBookingNotFound) {
		t.Fatalf("expected ErrBookingNotFound, got %v", err)
	}
}

func TestRescheduleKeepsBookingStatus(t *testing.T) {
	svc, _ := newTestService(seed.Providers())
	created := mustCreate(t, svc, 1)
	if _, err := svc.Cancel(created.BookingID); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	b, err := svc.Reschedule(created.BookingID, models.RescheduleRequest{})
	if err != nil {
		t.Fatalf("reschedule: %v", err)
	}
	if b.Status != models.BookingCancelled {
		t.Fatalf("expected booking to stay Cancelled, got %q", b.Status)
	}

	tr, _ := svc.TrackByBookingID(created.BookingID)
	if tr.StatusInfo.Status != models.ProgressConfirmed || tr.StatusInfo.Progress != 10 {
		t.Fatalf("status record not reset: %+v", tr.StatusInfo)
	}

	stats, _ := svc.GetStats()
	if stats.ActiveBookings != 0 || stats.TotalBookings != 1 {
		t.Fatalf("rescheduled cancelled booking should stay inactive: %+v", *stats)
	}
}

func TestListNewestFirst(t *testing.T) {
	svc, _ := newTestService(seed.Providers())
	a := mustCreate(t, svc, 1)
	b := mustCreate(t, svc, 2)
	c := mustCreate(t, svc, 3)

	views, err := svc.ListNewestFirst()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{c.BookingID, b.BookingID, a.BookingID}
	for i, v := range views {
		if v.ID != want[i] {
			t.Fatalf("position %d: expected %s, got %s", i, want[i], v.ID)
		}
		if v.StatusInfo == nil || v.StatusInfo.Progress != 10 {
			t.Fatalf("missing status info on %s", v.ID)
		}
	}
}

func TestClearAllEmptiesStores(t *testing.T) {
	svc, _ := newTestService(seed.Providers())
	created := mustCreate(t, svc, 1)
	mustCreate(t, svc, 2)

	svc.ClearAll()

	views, _ := svc.ListNewestFirst()
	if len(views) != 0 {
		t.Fatalf("expected no bookings, got %d", len(views))
	}
	if _, err := svc.TrackByBookingID(created.BookingID); !errors.Is(err, ErrBookingNotFound) {
		t.Fatalf("expected ErrBookingNotFound, got %v", err)
	}
	if _, err := svc.TrackByTrackingID(created.TrackingID); !errors.Is(err, ErrBookingNotFound) {
		t.Fatalf("expected ErrBookingNotFound, got %v", err)
	}
	if n := svc.AdvanceAll(); n != 0 {
		t.Fatalf("expected nothing to advance, got %d", n)
	}
}

func TestGetStats(t *testing.T) {
	svc, repo := newTestService(seed.Providers())
	active := mustCreate(t, svc, 1)
	cancelled := mustCreate(t, svc, 2)
	done := mustCreate(t, svc, 3)
	_, _ = svc.Cancel(cancelled.BookingID)
	_, _ = repo.Mutate(done.BookingID, func(b *models.Booking, st *models.BookingStatus) error {
		b.Status = models.BookingCompleted
		st.Status = models.ProgressCompleted
		st.Progress = 100
		return nil
	})
	_ = active

	stats, err := svc.GetStats()
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	want := models.Stats{TotalProviders: 12, TotalBookings: 3, ActiveBookings: 1, CompletedBookings: 1}
	if *stats != want {
		t.Fatalf("expected %+v, got %+v", want, *stats)
	}
}
