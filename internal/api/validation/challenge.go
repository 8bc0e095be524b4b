package validation

import (
	"time"
)

// DateLayout is the format of proposed match dates.
const DateLayout = "2006-01-02"

// ChallengeRequest mirrors the fields of the challenge form.
type ChallengeRequest struct {
	Opponent string
	Date     string
	Location string
}

// ValidateChallengeRequest checks the opponent is chosen and the proposed
// date is a calendar date no earlier than today. Location is optional.
func ValidateChallengeRequest(req ChallengeRequest, today time.Time) []FieldError {
	var errs []FieldError

	if req.Opponent == "" {
		errs = append(errs, FieldError{Field: "opponent", Message: "opponent is required"})
	}

	if req.Date == "" {
		errs = append(errs, FieldError{Field: "date", Message: "date is required"})
	} else if d, err := time.Parse(DateLayout, req.Date); err != nil {
		errs = append(errs, FieldError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
	} else if d.Format(DateLayout) < today.Format(DateLayout) {
		errs = append(errs, FieldError{Field: "date", Message: "date must be today or later"})
	}

	return errs
}
