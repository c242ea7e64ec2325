package models

// Booking status values stored on the booking itself.
const (
	BookingConfirmed = "Confirmed"
	BookingCancelled = "Cancelled"
	BookingCompleted = "Completed"
)

// Progress states tracked by the status simulator.
const (
	ProgressConfirmed  = "confirmed"
	ProgressEnRoute    = "en-route"
	ProgressInProgress = "in-progress"
	ProgressCompleted  = "completed"
	ProgressCancelled  = "cancelled"
)

// Booking is a customer's request for a provider's service.
// Provider name, location and price are snapshots taken at booking time.
type Booking struct {
	ID           string    `json:"id"`
	TrackingID   string    `json:"trackingId"`
	ProviderID   int       `json:"providerId"`
	ProviderName string    `json:"providerName"`
	ServiceType  string    `json:"serviceType"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	Description  string    `json:"description"`
	Phone        string    `json:"phone"`
	Location     string    `json:"location"`
	Price        string    `json:"price"`
	Status       string    `json:"status"`
	CreatedAt    Timestamp `json:"createdAt"`
}

// Coordinate is a simulated provider position.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// BookingStatus is the simulator record paired with every booking.
type BookingStatus struct {
	Status           string     `json:"status"`
	Progress         int        `json:"progress"`
	ProviderLocation Coordinate `json:"providerLocation"`
	ETA              string     `json:"eta"`
	LastUpdated      Timestamp  `json:"lastUpdated"`
}

// Terminal reports whether the simulator no longer advances this record.
func (s BookingStatus) Terminal() bool {
	return s.Status == ProgressCompleted || s.Status == ProgressCancelled
}

// BookingView joins a booking with its status record for listings.
type BookingView struct {
	Booking
	StatusInfo *BookingStatus `json:"statusInfo,omitempty"`
}

// Tracking is the result of a tracking lookup.
type Tracking struct {
	Booking    Booking       `json:"booking"`
	StatusInfo BookingStatus `json:"statusInfo"`
}

// BookingRequest is the payload of a new booking.
type BookingRequest struct {
	ProviderID  int    `json:"providerId"`
	ServiceType string `json:"serviceType"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Description string `json:"description"`
	Phone       string `json:"phone"`
}

// RescheduleRequest changes date and/or time; nil fields keep the current value.
type RescheduleRequest struct {
	Date *string `json:"date"`
	Time *string `json:"time"`
}

// CreatedBooking is returned by a successful booking.
type CreatedBooking struct {
	BookingID  string  `json:"bookingId"`
	TrackingID string  `json:"trackingId"`
	Booking    Booking `json:"booking"`
}

// Stats are live counts over the stores.
type Stats struct {
	TotalProviders      int `json:"totalProviders"`
	TotalBookings       int `json:"totalBookings"`
	ActiveBookings      int `json:"activeBookings"`
	CompletedBookings   int `json:"completedBookings"`
	RegisteredCustomers int `json:"registeredCustomers"`
	RegisteredProviders int `json:"registeredProviders"`
}
