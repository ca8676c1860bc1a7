package domain

import (
	"time"

	"github.com/google/uuid"
)

type Athlete struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Age           int       `json:"age"`
	Gender        string    `json:"gender"`
	Division      string    `json:"division"`
	Contact       string    `json:"contact"`
	Password      string    `json:"-"`
	PhotoURL      string    `json:"photo_url,omitempty"`
	MatchesPlayed int       `json:"matches_played"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// AthletePatch lists the profile fields an update is allowed to change.
// A nil field leaves the stored value untouched.
type AthletePatch struct {
	Name     *string
	Age      *int
	Gender   *string
	Division *string
	Contact  *string
	Password *string
}

// Apply copies every present field of the patch onto the athlete.
// Password is expected to be hashed by the caller before Apply.
func (p AthletePatch) Apply(a *Athlete) {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Age != nil {
		a.Age = *p.Age
	}
	if p.Gender != nil {
		a.Gender = *p.Gender
	}
	if p.Division != nil {
		a.Division = *p.Division
	}
	if p.Contact != nil {
		a.Contact = *p.Contact
	}
	if p.Password != nil {
		a.Password = *p.Password
	}
}

// IsEmpty reports whether the patch changes nothing.
func (p AthletePatch) IsEmpty() bool {
	return p.Name == nil && p.Age == nil && p.Gender == nil &&
		p.Division == nil && p.Contact == nil && p.Password == nil
}
