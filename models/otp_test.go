package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOTPChallengeExpired(t *testing.T) {
	now := time.Now()
	challenge := OTPChallenge{ExpiresAt: now.Add(5 * time.Minute)}

	assert.False(t, challenge.Expired(now))
	assert.False(t, challenge.Expired(now.Add(5*time.Minute)), "the deadline itself is still valid")
	assert.True(t, challenge.Expired(now.Add(5*time.Minute+time.Second)))
}
