package models

// Account roles. Exactly one privileged role exists.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Account represents one row of the remote account table.
type Account struct {
	Username     string `json:"username"`      // Unique username, case-sensitive
	PasswordHash string `json:"password_hash"` // bcrypt hash, never plaintext
	Role         string `json:"role"`          // RoleAdmin or RoleUser
}
