package dto

// UpdateUserRequest represents a profile update. Zero-valued fields
// are left unchanged.
type UpdateUserRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	IsActive  *bool  `json:"is_active"`
}

// ValidateEmail validates the new email when one is supplied
func (r *UpdateUserRequest) ValidateEmail() (bool, string) {
	if r.Email == "" {
		return true, ""
	}
	if !emailRegex.MatchString(r.Email) {
		return false, "Invalid email format"
	}
	return true, ""
}
