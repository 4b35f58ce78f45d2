package domain

// User represents a registered account.
type User struct {
	ID             int64  `json:"id"`
	Username       string `json:"username"` // Unique, checked at registration time
	PasswordHash   string `json:"-"`        // Never expose this via JSON
	Name           string `json:"name"`
	Email          string `json:"email,omitempty"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}

// UserUpdate carries a partial profile edit. Nil fields are left untouched;
// an explicit empty string clears the optional field. Username and password
// are not editable through a profile update.
type UserUpdate struct {
	Name           *string
	Email          *string
	ProfilePicture *string
}
