// Package domain contains core business types and interfaces.
package domain

import "time"

// ContactSource identifies which site form produced a submission.
const (
	ContactSourceFull  = "contact"
	ContactSourceHero  = "hero"
	ContactSourcePopup = "popup"
)

// Dimension is one side of a plot, measured in feet and inches.
// Values are kept as submitted strings: the site form accepts free
// text and the dashboard displays them verbatim.
type Dimension struct {
	Feet   string `json:"feet"`
	Inches string `json:"inches"`
}

// ContactForm is a lead-capture submission from the public site.
//
// Forms are created by public submission, mutated only by the admin
// "mark processed" action and never deleted.
type ContactForm struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email,omitempty"`
	City        string    `json:"city"`
	LandSize    string    `json:"landSize"`
	North       Dimension `json:"north"`
	South       Dimension `json:"south"`
	East        Dimension `json:"east"`
	West        Dimension `json:"west"`
	LandFacing  string    `json:"landFacing"`
	ProjectType string    `json:"projectType"`
	Message     string    `json:"message,omitempty"`
	Source      string    `json:"source"`
	CreatedAt   time.Time `json:"createdAt"`
	IsProcessed bool      `json:"isProcessed"`
}

// HeroContactParams contains the fields collected by the simplified
// hero and popup forms.
type HeroContactParams struct {
	Name        string
	Phone       string
	Email       string
	ProjectType string
	Message     string
	Source      string
}

// ContactFormParams contains the validated parameters for creating a
// contact form submission.
type ContactFormParams struct {
	Name        string
	Phone       string
	Email       string
	City        string
	LandSize    string
	North       Dimension
	South       Dimension
	East        Dimension
	West        Dimension
	LandFacing  string
	ProjectType string
	Message     string
	Source      string
}
