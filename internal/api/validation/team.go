package validation

// RegisterTeamRequest mirrors the fields of the team registration form.
type RegisterTeamRequest struct {
	Name    string
	City    string
	Contact string
}

// ValidateRegisterTeamRequest checks that every field is present. Values are
// not trimmed, so a whitespace-only field counts as present.
func ValidateRegisterTeamRequest(req RegisterTeamRequest) []FieldError {
	var errs []FieldError

	if req.Name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name is required"})
	}
	if req.City == "" {
		errs = append(errs, FieldError{Field: "city", Message: "city is required"})
	}
	if req.Contact == "" {
		errs = append(errs, FieldError{Field: "contact", Message: "contact is required"})
	}

	return errs
}
