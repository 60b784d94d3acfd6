package models

// Settings holds the single shared till credential. Exactly one row exists.
// MustChange is set while the factory-default password is still in place.
type Settings struct {
	ID           int    `json:"id"`
	PasswordHash string `json:"-"`
	MustChange   bool   `json:"must_change"`
}
