package bookingRepo

import (
	"errors"
	"testing"

	"github.com/velaug24it-bit/serviceswebiste/database/repository"
	"github.com/velaug24it-bit/serviceswebiste/models"
)

func newPair(id, trackingID string) (models.Booking, models.BookingStatus) {
	return models.Booking{ID: id, TrackingID: trackingID, ProviderID: 1, Status: models.BookingConfirmed},
		models.BookingStatus{Status: models.ProgressConfirmed, Progress: 10}
}

func TestCreateRejectsDuplicateBookingID(t *testing.T) {
	repo := NewMemoryBookingRepo()
	b, s := newPair("BK000001", "SH240101100")
	if err := repo.Create(b, s); err != nil {
		t.Fatalf("create: %v", err)
	}

	sameID, s2 := newPair("BK000001", "SH240101101")
	if err := repo.Create(sameID, s2); !errors.Is(err, repository.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate for booking id, got %v", err)
	}

	all, _ := repo.GetAll()
	if len(all) != 1 {
		t.Fatalf("expected 1 booking after rejected create, got %d", len(all))
	}
}

func TestRepeatedTrackingIDResolvesToEarliest(t *testing.T) {
	repo := NewMemoryBookingRepo()
	first, s1 := newPair("BK000001", "SH240101100")
	second, s2 := newPair("BK000002", "SH240101100")
	if err := repo.Create(first, s1); err != nil {
		t.Fatalf("create first: %v", err)
	}
	if err := repo.Create(second, s2); err != nil {
		t.Fatalf("repeated tracking id should be stored: %v", err)
	}

	got, err := repo.GetByTrackingID("SH240101100")
	if err != nil {
		t.Fatalf("get by tracking id: %v", err)
	}
	if got.Booking.ID != "BK000001" {
		t.Fatalf("expected earliest booking BK000001, got %s", got.Booking.ID)
	}
	if _, err := repo.GetByID("BK000002"); err != nil {
		t.Fatalf("second booking not stored: %v", err)
	}
}

func TestLookupsJoinStatus(t *testing.T) {
	repo := NewMemoryBookingRepo()
	b, s := newPair("BK000001", "SH240101100")
	_ = repo.Create(b, s)

	byID, err := repo.GetByID("BK000001")
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if byID.StatusInfo.Progress != 10 {
		t.Fatalf("expected progress 10, got %d", byID.StatusInfo.Progress)
	}

	byTracking, err := repo.GetByTrackingID("SH240101100")
	if err != nil {
		t.Fatalf("get by tracking id: %v", err)
	}
	if byTracking.Booking.ID != "BK000001" {
		t.Fatalf("tracking lookup returned %q", byTracking.Booking.ID)
	}

	if _, err := repo.GetByID("BKMISSING"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := repo.GetByTrackingID("SHMISSING"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetAllKeepsInsertionOrder(t *testing.T) {
	repo := NewMemoryBookingRepo()
	ids := []string{"BK00000C", "BK00000A", "BK00000B"}
	for i, id := range ids {
		b, s := newPair(id, "SH24010110"+string(rune('0'+i)))
		if err := repo.Create(b, s); err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
	}

	all, _ := repo.GetAll()
	for i, v := range all {
		if v.ID != ids[i] {
			t.Fatalf("position %d: expected %s, got %s", i, ids[i], v.ID)
		}
		if v.StatusInfo == nil {
			t.Fatalf("booking %s has no status info", v.ID)
		}
	}
}

func TestMutateIsAllOrNothing(t *testing.T) {
	repo := NewMemoryBookingRepo()
	b, s := newPair("BK000001", "SH240101100")
	_ = repo.Create(b, s)

	boom := errors.New("boom")
	_, err := repo.Mutate("BK000001", func(b *models.Booking, st *models.BookingStatus) error {
		b.Status = models.BookingCancelled
		st.Progress = 0
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected mutate error, got %v", err)
	}

	got, _ := repo.GetByID("BK000001")
	if got.Booking.Status != models.BookingConfirmed || got.StatusInfo.Progress != 10 {
		t.Fatalf("failed mutation leaked: %+v", got)
	}

	if _, err := repo.Mutate("BKMISSING", func(*models.Booking, *models.BookingStatus) error { return nil }); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMutateAllCountsChanged(t *testing.T) {
	repo := NewMemoryBookingRepo()
	b1, s1 := newPair("BK000001", "SH240101100")
	b2, s2 := newPair("BK000002", "SH240101101")
	s2.Status = models.ProgressCompleted
	_ = repo.Create(b1, s1)
	_ = repo.Create(b2, s2)

	n := repo.MutateAll(func(_ *models.Booking, st *models.BookingStatus) bool {
		if st.Terminal() {
			return false
		}
		st.Progress += 5
		return true
	})
	if n != 1 {
		t.Fatalf("expected 1 changed pair, got %d", n)
	}
	got, _ := repo.GetByID("BK000001")
	if got.StatusInfo.Progress != 15 {
		t.Fatalf("expected progress 15, got %d", got.StatusInfo.Progress)
	}
}

func TestClearRemovesPairs(t *testing.T) {
	repo := NewMemoryBookingRepo()
	b, s := newPair("BK000001", "SH240101100")
	_ = repo.Create(b, s)
	repo.Clear()

	all, _ := repo.GetAll()
	if len(all) != 0 {
		t.Fatalf("expected empty store, got %d", len(all))
	}
	if _, err := repo.GetByID("BK000001"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after clear, got %v", err)
	}
	if err := repo.Create(b, s); err != nil {
		t.Fatalf("identifiers should be reusable after clear: %v", err)
	}
}
