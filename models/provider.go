package models

import "time"

// Provider is a service provider listed in the catalog.
type Provider struct {
	ID               int            `json:"id"`
	Name             string         `json:"name"`
	Category         string         `json:"category"`
	Avatar           string         `json:"avatar"`
	Rating           float64        `json:"rating"`
	Reviews          int            `json:"reviews"`
	Services         []string       `json:"services"`
	PriceRange       string         `json:"priceRange"`
	Verified         bool           `json:"verified"`
	Location         string         `json:"location"`
	Experience       string         `json:"experience"`
	Description      string         `json:"description"`
	Phone            string         `json:"phone"`
	Email            string         `json:"email,omitempty"`
	LicenseNumber    string         `json:"licenseNumber,omitempty"`
	InsuranceStatus  string         `json:"insuranceStatus,omitempty"`
	WorkingDays      []string       `json:"workingDays,omitempty"`
	WorkingHours     map[string]any `json:"workingHours,omitempty"`
	ServiceRadius    string         `json:"serviceRadius,omitempty"`
	RegistrationDate *time.Time     `json:"registrationDate,omitempty"`
}

// Clone returns a deep copy so callers never share slices or maps with the catalog.
func (p Provider) Clone() Provider {
	out := p
	if p.Services != nil {
		out.Services = append([]string(nil), p.Services...)
	}
	if p.WorkingDays != nil {
		out.WorkingDays = append([]string(nil), p.WorkingDays...)
	}
	if p.WorkingHours != nil {
		out.WorkingHours = make(map[string]any, len(p.WorkingHours))
		for k, v := range p.WorkingHours {
			out.WorkingHours[k] = v
		}
	}
	if p.RegistrationDate != nil {
		d := *p.RegistrationDate
		out.RegistrationDate = &d
	}
	return out
}

// ProviderFilter holds the optional predicates of a catalog listing.
type ProviderFilter struct {
	Category  string
	Location  string
	MinRating *float64
}

// Matches reports whether p satisfies every supplied predicate.
func (f ProviderFilter) Matches(p Provider) bool {
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.Location != "" && p.Location != f.Location {
		return false
	}
	if f.MinRating != nil && p.Rating < *f.MinRating {
		return false
	}
	return true
}

// ProviderUpdate carries the only fields a provider may change after registration.
// A nil field is left untouched.
type ProviderUpdate struct {
	Description   *string         `json:"description"`
	Services      *[]string       `json:"services"`
	PriceRange    *string         `json:"priceRange"`
	WorkingDays   *[]string       `json:"workingDays"`
	WorkingHours  *map[string]any `json:"workingHours"`
	ServiceRadius *string         `json:"serviceRadius"`
	Phone         *string         `json:"phone"`
}

// Apply copies the set fields onto p.
func (u ProviderUpdate) Apply(p *Provider) {
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Services != nil {
		p.Services = append([]string{}, (*u.Services)...)
	}
	if u.PriceRange != nil {
		p.PriceRange = *u.PriceRange
	}
	if u.WorkingDays != nil {
		p.WorkingDays = append([]string{}, (*u.WorkingDays)...)
	}
	if u.WorkingHours != nil {
		hours := make(map[string]any, len(*u.WorkingHours))
		for k, v := range *u.WorkingHours {
			hours[k] = v
		}
		p.WorkingHours = hours
	}
	if u.ServiceRadius != nil {
		p.ServiceRadius = *u.ServiceRadius
	}
	if u.Phone != nil {
		p.Phone = *u.Phone
	}
}

// ProviderRegistration is the self-registration payload of a provider account.
type ProviderRegistration struct {
	Email           string         `json:"email" binding:"required"`
	Password        string         `json:"password" binding:"required"`
	Name            string         `json:"name"`
	Category        string         `json:"category"`
	Avatar          string         `json:"avatar"`
	Services        []string       `json:"services"`
	HourlyRate      string         `json:"hourlyRate"`
	Location        string         `json:"location"`
	Experience      string         `json:"experience"`
	Description     string         `json:"description"`
	Phone           string         `json:"phone"`
	LicenseNumber   string         `json:"licenseNumber"`
	InsuranceStatus string         `json:"insuranceStatus"`
	WorkingDays     []string       `json:"workingDays"`
	WorkingHours    map[string]any `json:"workingHours"`
	ServiceRadius   string         `json:"serviceRadius"`
}

// ProviderDashboard summarises a provider's bookings.
type ProviderDashboard struct {
	Stats          DashboardStats `json:"stats"`
	RecentBookings []Booking      `json:"recentBookings"`
}

type DashboardStats struct {
	TodayBookings     int     `json:"todayBookings"`
	TotalBookings     int     `json:"totalBookings"`
	CompletedBookings int     `json:"completedBookings"`
	TotalEarnings     float64 `json:"totalEarnings"`
	AverageRating     float64 `json:"averageRating"`
}
