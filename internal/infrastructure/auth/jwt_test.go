package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/image-variants/internal/domain"
)

func TestJWTService(t *testing.T) {
	t.Run("round trips the subject", func(t *testing.T) {
		svc := NewJWTService("secret", time.Hour)

		token, expiresAt, err := svc.GenerateAccessToken("gallery-importer")
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

		subject, err := svc.ValidateAccessToken(token)
		require.NoError(t, err)
		assert.Equal(t, "gallery-importer", subject)
	})

	t.Run("rejects tokens signed with another secret", func(t *testing.T) {
		token, _, err := NewJWTService("other", time.Hour).GenerateAccessToken("client")
		require.NoError(t, err)

		_, err = NewJWTService("secret", time.Hour).ValidateAccessToken(token)
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})

	t.Run("rejects expired tokens", func(t *testing.T) {
		svc := NewJWTService("secret", time.Minute)
		svc.now = func() time.Time { return time.Now().Add(-time.Hour) }

		token, _, err := svc.GenerateAccessToken("client")
		require.NoError(t, err)

		svc.now = time.Now
		_, err = svc.ValidateAccessToken(token)
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := NewJWTService("secret", time.Hour).ValidateAccessToken("not.a.token")
		assert.ErrorIs(t, err, domain.ErrTokenInvalid)
	})

	t.Run("cannot sign without a secret", func(t *testing.T) {
		svc := NewJWTService("", time.Hour)

		assert.False(t, svc.Enabled())
		_, _, err := svc.GenerateAccessToken("client")
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}
