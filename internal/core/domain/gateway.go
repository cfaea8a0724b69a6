package domain

import (
	"fmt"
	"maps"
	"slices"
)

// ConnectionOption is one selectable account or page.
type ConnectionOption struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ConnectionStep is one screen of the ad platform connection gateway.
type ConnectionStep struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Options     []ConnectionOption `json:"options"`
}

// ConnectionSteps is the fixed sequence of the connection gateway.
var ConnectionSteps = []ConnectionStep{
	{
		ID:          "business-portfolio",
		Title:       "Business Portfolio",
		Description: "Select your business portfolio to manage your advertising accounts",
		Options: []ConnectionOption{
			{ID: "main-business", Name: "Main Business Portfolio", Description: "Primary business account with full access"},
			{ID: "secondary-business", Name: "Secondary Business", Description: "Additional business portfolio"},
		},
	},
	{
		ID:          "facebook-pages",
		Title:       "Facebook & Instagram Pages",
		Description: "Connect your Facebook and Instagram business pages",
		Options: []ConnectionOption{
			{ID: "main-page", Name: "Main Business Page", Description: "Your primary Facebook business page"},
			{ID: "instagram-page", Name: "Instagram Business", Description: "Connected Instagram business account"},
		},
	},
	{
		ID:          "ad-account",
		Title:       "Ad Account",
		Description: "Select the ad account to use for your campaigns",
		Options: []ConnectionOption{
			{ID: "primary-ad-account", Name: "Primary Ad Account", Description: "Main advertising account with active campaigns"},
			{ID: "secondary-ad-account", Name: "Secondary Ad Account", Description: "Additional ad account for specific campaigns"},
		},
	},
}

// ConnectionState tracks progress through the connection gateway.
// Selected maps step ids to option ids.
type ConnectionState struct {
	Step      int               `json:"step"`
	Selected  map[string]string `json:"selected"`
	Connected bool              `json:"connected"`
}

// CurrentStep returns the step being shown.
func (s ConnectionState) CurrentStep() ConnectionStep {
	return ConnectionSteps[s.Step]
}

// Select records optionID for the current step.
func (s ConnectionState) Select(optionID string) (ConnectionState, error) {
	if s.Connected {
		return s, fmt.Errorf("%w: already connected", ErrInvalidTransition)
	}
	step := s.CurrentStep()
	if !slices.ContainsFunc(step.Options, func(o ConnectionOption) bool { return o.ID == optionID }) {
		return s, Invalid("option", fmt.Sprintf("unknown option for %s", step.ID))
	}
	selected := maps.Clone(s.Selected)
	if selected == nil {
		selected = make(map[string]string, len(ConnectionSteps))
	}
	selected[step.ID] = optionID
	s.Selected = selected
	return s, nil
}

// Next moves past the current step once it has a selection. Leaving the
// last step completes the connection.
func (s ConnectionState) Next() (ConnectionState, error) {
	if s.Connected {
		return s, fmt.Errorf("%w: already connected", ErrInvalidTransition)
	}
	step := s.CurrentStep()
	if _, ok := s.Selected[step.ID]; !ok {
		return s, Invalid("option", fmt.Sprintf("select an option for %s", step.ID))
	}
	if s.Step == len(ConnectionSteps)-1 {
		s.Connected = true
		return s, nil
	}
	s.Step++
	return s, nil
}

// Previous returns to the prior step. It is a no-op on the first step.
func (s ConnectionState) Previous() (ConnectionState, error) {
	if s.Connected {
		return s, fmt.Errorf("%w: already connected", ErrInvalidTransition)
	}
	if s.Step > 0 {
		s.Step--
	}
	return s, nil
}
