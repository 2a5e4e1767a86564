package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUser_VerificationToken(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	u := &User{}
	assert.False(t, u.HasPendingVerification())

	u.SetVerificationToken("tok", now, time.Hour)
	assert.True(t, u.HasPendingVerification())
	assert.False(t, u.VerificationTokenExpired(now.Add(time.Hour)))
	assert.True(t, u.VerificationTokenExpired(now.Add(time.Hour+time.Second)))

	u.ClearVerificationToken()
	assert.False(t, u.HasPendingVerification())
	assert.Nil(t, u.VerificationTokenExpiresAt)
}

func TestUser_ResetPasswordToken(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	u := &User{}

	u.SetResetPasswordToken("tok", now, 0)
	assert.True(t, u.HasPendingReset())
	assert.Nil(t, u.ResetPasswordTokenExpiresAt, "zero ttl never expires")
	assert.False(t, u.ResetPasswordTokenExpired(now.Add(24*365*time.Hour)))

	u.SetResetPasswordToken("tok2", now, time.Minute)
	assert.Equal(t, "tok2", *u.ResetPasswordToken)
	assert.True(t, u.ResetPasswordTokenExpired(now.Add(2*time.Minute)))

	u.ClearResetPasswordToken()
	assert.False(t, u.HasPendingReset())
}

func TestRole_Valid(t *testing.T) {
	t.Parallel()

	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleUser.Valid())
	assert.False(t, Role("root").Valid())
	assert.False(t, Role("").Valid())
}
