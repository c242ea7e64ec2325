package booking

import (
	"math/rand"
	"sync"
	"time"

	bookingRepo "github.com/velaug24it-bit/serviceswebiste/database/repository/booking"
	providerRepo "github.com/velaug24it-bit/serviceswebiste/database/repository/provider"
	userRepo "github.com/velaug24it-bit/serviceswebiste/database/repository/user"
	"github.com/velaug24it-bit/serviceswebiste/models"
)

// BookingService manages bookings and drives the status simulator.
type BookingService interface {
	CreateBooking(req models.BookingRequest) (*models.CreatedBooking, error)
	// AdvanceAll moves every non-terminal booking one simulator step forward
	// and returns how many were advanced.
	AdvanceAll() int
	Reschedule(bookingID string, req models.RescheduleRequest) (*models.Booking, error)
	Cancel(bookingID string) (*models.Booking, error)
	TrackByBookingID(bookingID string) (*models.Tracking, error)
	TrackByTrackingID(trackingID string) (*models.Tracking, error)
	ListNewestFirst() ([]models.BookingView, error)
	ClearAll()
	GetStats() (*models.Stats, error)
}

// Random is the source of simulator and identifier randomness.
type Random interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo         bookingRepo.BookingRepository
	ProviderRepo providerRepo.ProviderRepository
	UserRepo     userRepo.UserRepository

	Rand Random
	Now  func() time.Time
	// NewBookingID returns a candidate booking identifier.
	NewBookingID func() string
	// ClampProgress caps progress at 100 instead of letting it overshoot.
	ClampProgress bool
}

func NewDefaultBookingService(
	repo bookingRepo.BookingRepository,
	providers providerRepo.ProviderRepository,
	users userRepo.UserRepository,
	clampProgress bool,
) *DefaultBookingService {
	return &DefaultBookingService{
		Repo:          repo,
		ProviderRepo:  providers,
		UserRepo:      users,
		Rand:          NewLockedRand(time.Now().UnixNano()),
		Now:           time.Now,
		NewBookingID:  NewBookingID,
		ClampProgress: clampProgress,
	}
}

// lockedRand makes a *rand.Rand safe for concurrent handlers.
type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func NewLockedRand(seed int64) Random {
	return &lockedRand{r: rand.New(rand.NewSource(seed))}
}

func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}
