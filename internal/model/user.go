package model

// User is a local account record. PasswordHash is a bcrypt hash and is only
// present in the account registry at rest, never in session copies.
type User struct {
	ID                    string `json:"id"`
	Name                  string `json:"name"`
	Email                 string `json:"email"`
	PasswordHash          string `json:"password,omitempty"`
	Phone                 string `json:"phone"`
	Birthdate             string `json:"birthdate"`
	Nationality           string `json:"nationality"`
	Passport              string `json:"passport"`
	PreferredCurrency     string `json:"preferred_currency"`
	EmergencyContactName  string `json:"emergency_contact_name"`
	EmergencyContactPhone string `json:"emergency_contact_phone"`
}

// Sanitized returns a copy of the user with the password hash stripped.
func (u User) Sanitized() User {
	u.PasswordHash = ""
	return u
}
