// Package seed holds the catalog the marketplace starts with.
package seed

import "github.com/velaug24it-bit/serviceswebiste/models"

// Providers returns the initial Tamil Nadu worker catalog, identifiers 1..n in order.
func Providers() []models.Provider {
	providers := []models.Provider{
		{
			Name: "Murugan Electricals", Category: "Electrician", Avatar: "⚡",
			Rating: 4.8, Reviews: 132, Verified: true, Location: "Chennai",
			Services:   []string{"Wiring", "Switchboard Repair", "Fan Installation", "Inverter Setup"},
			PriceRange: "₹300 - ₹800", Experience: "12 years", Phone: "+91 98400 11223",
			Description: "Residential and commercial electrical work across Chennai.",
		},
		{
			Name: "Kovai Power Solutions", Category: "Electrician", Avatar: "⚡",
			Rating: 4.5, Reviews: 87, Verified: true, Location: "Coimbatore",
			Services:   []string{"Wiring", "Light Fitting", "MCB Replacement"},
			PriceRange: "₹250 - ₹700", Experience: "8 years", Phone: "+91 98430 22334",
			Description: "Fast, safe electrical repairs for homes and shops.",
		},
		{
			Name: "Selvam Plumbing Works", Category: "Plumber", Avatar: "🔧",
			Rating: 4.7, Reviews: 154, Verified: true, Location: "Chennai",
			Services:   []string{"Leak Repair", "Tap Installation", "Drain Cleaning", "Water Tank Fitting"},
			PriceRange: "₹350 - ₹900", Experience: "15 years", Phone: "+91 98401 33445",
			Description: "Emergency plumbing and bathroom fittings.",
		},
		{
			Name: "Ganesh Pipe Care", Category: "Plumber", Avatar: "🔧",
			Rating: 4.2, Reviews: 46, Verified: false, Location: "Coimbatore",
			Services:   []string{"Leak Repair", "Motor Pump Service"},
			PriceRange: "₹400/hour", Experience: "5 years", Phone: "+91 98431 44556",
			Description: "Affordable plumbing repairs with same-day visits.",
		},
		{
			Name: "Arul Woodcraft", Category: "Carpenter", Avatar: "🪚",
			Rating: 4.9, Reviews: 201, Verified: true, Location: "Chennai",
			Services:   []string{"Furniture Repair", "Modular Kitchen", "Door Fitting", "Wardrobe Making"},
			PriceRange: "₹500 - ₹1500", Experience: "20 years", Phone: "+91 98402 55667",
			Description: "Custom furniture and woodwork for every room.",
		},
		{
			Name: "Siva Carpentry", Category: "Carpenter", Avatar: "🪚",
			Rating: 4.4, Reviews: 63, Verified: true, Location: "Coimbatore",
			Services:   []string{"Furniture Assembly", "Door Repair"},
			PriceRange: "₹450/hour", Experience: "9 years", Phone: "+91 98432 66778",
			Description: "Furniture assembly and repairs at your doorstep.",
		},
		{
			Name: "Rainbow Painters", Category: "Painter", Avatar: "🎨",
			Rating: 4.6, Reviews: 98, Verified: true, Location: "Chennai",
			Services:   []string{"Interior Painting", "Exterior Painting", "Waterproofing"},
			PriceRange: "₹600 - ₹2000", Experience: "11 years", Phone: "+91 98403 77889",
			Description: "Interior and exterior painting with premium finishes.",
		},
		{
			Name: "Kumar Colour House", Category: "Painter", Avatar: "🎨",
			Rating: 4.1, Reviews: 35, Verified: false, Location: "Coimbatore",
			Services:   []string{"Interior Painting", "Texture Painting"},
			PriceRange: "₹550/hour", Experience: "6 years", Phone: "+91 98433 88990",
			Description: "Texture and wall designs for homes.",
		},
		{
			Name: "CoolAir AC Services", Category: "AC Technician", Avatar: "❄️",
			Rating: 4.7, Reviews: 176, Verified: true, Location: "Chennai",
			Services:   []string{"AC Service", "Gas Refill", "AC Installation", "Uninstallation"},
			PriceRange: "₹450 - ₹1200", Experience: "10 years", Phone: "+91 98404 99001",
			Description: "Split and window AC servicing for all brands.",
		},
		{
			Name: "Chill Point Technicians", Category: "AC Technician", Avatar: "❄️",
			Rating: 4.3, Reviews: 54, Verified: true, Location: "Coimbatore",
			Services:   []string{"AC Service", "Gas Refill"},
			PriceRange: "₹500/hour", Experience: "7 years", Phone: "+91 98434 10112",
			Description: "Quick AC repairs and periodic maintenance.",
		},
		{
			Name: "Sparkle Home Cleaning", Category: "House Cleaning", Avatar: "🧹",
			Rating: 4.8, Reviews: 143, Verified: true, Location: "Chennai",
			Services:   []string{"Deep Cleaning", "Kitchen Cleaning", "Bathroom Cleaning", "Sofa Shampoo"},
			PriceRange: "₹400 - ₹2500", Experience: "9 years", Phone: "+91 98405 21223",
			Description: "Professional deep cleaning with eco-friendly products.",
		},
		{
			Name: "Fresh Nest Cleaners", Category: "House Cleaning", Avatar: "🧹",
			Rating: 4.0, Reviews: 29, Verified: false, Location: "Coimbatore",
			Services:   []string{"Deep Cleaning", "Move-In Cleaning"},
			PriceRange: "₹350/hour", Experience: "4 years", Phone: "+91 98435 32334",
			Description: "Reliable home cleaning for apartments and villas.",
		},
	}
	for i := range providers {
		providers[i].ID = i + 1
	}
	return providers
}
