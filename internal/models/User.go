package models

// User is an API account. Password always holds a bcrypt digest, never
// plaintext, and is excluded from JSON responses.
type User struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	FirstName   string  `gorm:"not null" json:"first_name"`
	LastName    string  `gorm:"not null" json:"last_name"`
	Email       string  `gorm:"unique;not null" json:"email"`
	Password    string  `gorm:"not null" json:"-"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	IsAdmin     bool    `gorm:"default:false" json:"is_admin"`
}
