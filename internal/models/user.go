package models

// User represents a registered account. Accounts start unverified and become
// verified once the email code is confirmed; login requires a verified account.
type User struct {
	BaseModel
	Email            string  `gorm:"uniqueIndex" json:"email"`
	PasswordHash     string  `json:"-"`
	FullName         string  `json:"full_name"`
	Role             string  `gorm:"default:user" json:"role"`
	Balance          float64 `gorm:"default:0" json:"balance"`
	IsVerified       bool    `json:"is_verified"`
	VerificationCode string  `json:"-"`
}
