package domain

import (
	"slices"
	"strings"
	"time"
)

// AdGoal is the business outcome a campaign optimises for.
type AdGoal string

const (
	GoalWebsiteVisits AdGoal = "website-visits"
	GoalLeads         AdGoal = "leads"
	GoalSales         AdGoal = "sales"
)

// Valid reports whether g is one of the supported goals.
func (g AdGoal) Valid() bool {
	switch g {
	case GoalWebsiteVisits, GoalLeads, GoalSales:
		return true
	}
	return false
}

// CampaignObjectives lists the delivery objectives a campaign may choose.
var CampaignObjectives = []string{
	"Brand Awareness",
	"Reach",
	"Traffic",
	"Engagement",
	"App Installs",
	"Video Views",
	"Lead Generation",
	"Messages",
	"Conversions",
	"Catalog Sales",
	"Store Traffic",
}

// MaxAdSets is the largest number of ad sets a draft may request.
const MaxAdSets = 5

// CampaignDraft holds the setup step's input. BudgetPerAdSet and
// PerformanceTier are derived by Recompute and must not be edited by hand.
type CampaignDraft struct {
	Name         string    `json:"name"`
	ProductPrice float64   `json:"product_price"`
	Goal         AdGoal    `json:"goal"`
	Objective    string    `json:"objective"`
	Description  string    `json:"description"`
	Location     string    `json:"location"`
	DailyBudget  float64   `json:"daily_budget"`
	AdSetCount   int       `json:"ad_set_count"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`

	BudgetPerAdSet  float64         `json:"budget_per_ad_set"`
	PerformanceTier PerformanceTier `json:"performance_tier"`
}

// Recompute refreshes the derived fields from DailyBudget and AdSetCount.
// Without a positive ad set count both derived fields are cleared.
func (d *CampaignDraft) Recompute() {
	if d.AdSetCount <= 0 {
		d.BudgetPerAdSet = 0
		d.PerformanceTier = TierNone
		return
	}
	a := Allocate(d.DailyBudget, d.AdSetCount)
	d.BudgetPerAdSet = a.PerAdSet
	d.PerformanceTier = a.Tier
}

// Validate checks the fields required to leave the setup step.
func (d CampaignDraft) Validate() error {
	var v ValidationError
	if strings.TrimSpace(d.Name) == "" {
		v.Add("name", "is required")
	}
	if d.ProductPrice <= 0 {
		v.Add("product_price", "must be greater than zero")
	}
	if !d.Goal.Valid() {
		v.Add("goal", "must be one of website-visits, leads, sales")
	}
	if !slices.Contains(CampaignObjectives, d.Objective) {
		v.Add("objective", "must be one of the supported objectives")
	}
	if strings.TrimSpace(d.Description) == "" {
		v.Add("description", "is required")
	}
	if strings.TrimSpace(d.Location) == "" {
		v.Add("location", "is required")
	}
	if d.DailyBudget <= 0 {
		v.Add("daily_budget", "must be greater than zero")
	}
	if d.AdSetCount < 1 || d.AdSetCount > MaxAdSets {
		v.Add("ad_set_count", "must be between 1 and 5")
	}
	switch {
	case d.EndDate.IsZero():
		v.Add("end_date", "is required")
	case day(d.EndDate).Before(day(d.StartDate)):
		v.Add("end_date", "must not be before the start date")
	}
	return v.Err()
}

func day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
