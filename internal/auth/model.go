package auth

// User is the admin profile returned by the backend's /auth/me.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Result is the discriminated login outcome; Login never lets an error
// escape past this boundary.
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
