package domain

import (
	"time"

	"github.com/google/uuid"
)

type EndorsementStatus string

const (
	EndorsementPending  EndorsementStatus = "pending"
	EndorsementApproved EndorsementStatus = "approved"
	EndorsementRejected EndorsementStatus = "rejected"
)

// Endorsement is a request by an athlete to an institution to be vouched for
// in a specific tournament. It starts pending and is reviewed exactly once,
// either approving or rejecting it. Approved always implies Reviewed.
type Endorsement struct {
	ID            uuid.UUID `json:"id"`
	AthleteID     uuid.UUID `json:"athlete_id"`
	InstitutionID uuid.UUID `json:"institution_id"`
	TournamentID  uuid.UUID `json:"tournament_id"`
	Reviewed      bool      `json:"reviewed"`
	Approved      bool      `json:"approved"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (e Endorsement) Status() EndorsementStatus {
	switch {
	case !e.Reviewed:
		return EndorsementPending
	case e.Approved:
		return EndorsementApproved
	default:
		return EndorsementRejected
	}
}

// Eligible reports whether this endorsement lets the athlete appear as a
// participant. Only an explicit rejection denies eligibility; a request
// still pending counts the same as an approved one.
func (e Endorsement) Eligible() bool {
	return !e.Reviewed || e.Approved
}

// PendingEndorsement is the composite view institutions review from:
// the request joined with the requesting athlete and target tournament.
type PendingEndorsement struct {
	ID         uuid.UUID  `json:"endorsement_id"`
	Athlete    Athlete    `json:"athlete"`
	Tournament Tournament `json:"tournament"`
}
