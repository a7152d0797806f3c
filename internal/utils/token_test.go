package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const testSecret = "labourlink_test_jwt_secret_key_1234567890"

func TestTokenManager_RoundTrip(t *testing.T) {
	m := NewTokenManager(testSecret, time.Hour)
	userID := uuid.New()

	token, err := m.Generate(userID)
	require.NoError(t, err)

	got, err := m.Validate(token)
	require.NoError(t, err)
	require.Equal(t, userID, got)
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	token, err := NewTokenManager(testSecret, time.Hour).Generate(uuid.New())
	require.NoError(t, err)

	_, err = NewTokenManager("another_secret_that_is_long_enough_123", time.Hour).Validate(token)
	require.True(t, errors.Is(err, ErrInvalidToken))
}

func TestTokenManager_RejectsExpired(t *testing.T) {
	m := NewTokenManager(testSecret, time.Minute)
	issuedAt := time.Now().Add(-time.Hour)
	m.now = func() time.Time { return issuedAt }

	token, err := m.Generate(uuid.New())
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.Validate(token)
	require.True(t, errors.Is(err, ErrInvalidToken))
}

func TestTokenManager_RejectsEmptyAndNil(t *testing.T) {
	m := NewTokenManager(testSecret, time.Hour)

	_, err := m.Validate("  ")
	require.ErrorIs(t, err, ErrEmptyToken)

	_, err = m.Generate(uuid.Nil)
	require.Error(t, err)
}

func TestNewPaginationParams(t *testing.T) {
	p := NewPaginationParams(0, 0)
	require.Equal(t, 1, p.Page)
	require.Equal(t, 20, p.Limit)
	require.Equal(t, 0, p.Offset)

	p = NewPaginationParams(3, 10)
	require.Equal(t, 20, p.Offset)

	p = NewPaginationParams(2, 1000)
	require.Equal(t, 20, p.Limit)
}
