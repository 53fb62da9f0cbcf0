package models

// Admin is a staff account allowed to manage the menu and order statuses.
type Admin struct {
	ID           int64   `json:"id" db:"id"`
	Username     string  `json:"username" db:"username"`
	PasswordHash string  `json:"-" db:"password_hash"`
	FullName     *string `json:"full_name,omitempty" db:"full_name"`
	Email        *string `json:"email,omitempty" db:"email"`
	Role         string  `json:"role" db:"role"`
	Active       bool    `json:"active" db:"active"`
}

// AdminLoginRequest is the credentials payload for admin login.
type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AdminLoginResponse carries the issued bearer token and account details.
type AdminLoginResponse struct {
	Token    string  `json:"token"`
	Username string  `json:"username"`
	FullName *string `json:"full_name,omitempty"`
	Role     string  `json:"role"`
}
