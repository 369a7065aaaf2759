package models

import "time"

// OTPChallenge records a code sent to a phone number. Delivery itself is the
// SMS provider's job; we only keep what verification needs.
type OTPChallenge struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	PhoneNumber string    `gorm:"index;not null" json:"phone_number"`
	Code        string    `gorm:"not null" json:"-"`
	ExpiresAt   time.Time `json:"expires_at"`
	Consumed    bool      `json:"consumed"`
	CreatedAt   time.Time `json:"created_at"`
}

func (c *OTPChallenge) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}
