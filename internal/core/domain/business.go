package domain

import (
	"net/mail"
	"slices"
	"strings"
)

// BusinessCategories lists the categories offered during onboarding.
var BusinessCategories = []string{
	"E-commerce & Retail",
	"Technology & Software",
	"Healthcare & Medical",
	"Education & Training",
	"Food & Beverage",
	"Real Estate",
	"Finance & Insurance",
	"Travel & Tourism",
	"Automotive",
	"Beauty & Wellness",
	"Professional Services",
	"Manufacturing",
	"Entertainment & Media",
	"Non-profit",
	"Other",
}

// BusinessProfile is captured once during onboarding and never changes
// afterwards. Its location is the fallback targeting location for ad sets.
type BusinessProfile struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	TaxID       string `json:"tax_id,omitempty"`
}

// IsZero reports whether the profile has not been filled in.
func (p BusinessProfile) IsZero() bool {
	return p == BusinessProfile{}
}

// Validate checks that every required onboarding field is present.
func (p BusinessProfile) Validate() error {
	var v ValidationError
	if strings.TrimSpace(p.Name) == "" {
		v.Add("name", "is required")
	}
	if !slices.Contains(BusinessCategories, p.Category) {
		v.Add("category", "must be one of the supported categories")
	}
	if strings.TrimSpace(p.Description) == "" {
		v.Add("description", "is required")
	}
	if strings.TrimSpace(p.Location) == "" {
		v.Add("location", "is required")
	}
	if strings.TrimSpace(p.Phone) == "" {
		v.Add("phone", "is required")
	}
	if strings.TrimSpace(p.Email) == "" {
		v.Add("email", "is required")
	} else if _, err := mail.ParseAddress(p.Email); err != nil {
		v.Add("email", "is not a valid address")
	}
	return v.Err()
}

// Identity is the signed-in user as supplied by the authentication
// collaborator.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}
