package credential

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSharedTokenIssuer(t *testing.T) {
	issuer := NewSharedTokenIssuer("admin123", "", "the-token")

	token, err := issuer.Issue("admin123")
	require.NoError(t, err)
	assert.Equal(t, "the-token", token)

	_, err = issuer.Issue("admin124")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = issuer.Issue("")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	assert.True(t, issuer.Verify("the-token"))
	assert.False(t, issuer.Verify("the-token "))
	assert.False(t, issuer.Verify(""))
}

func TestPasswordHashPreferred(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	// When a hash is set, the plain password field is ignored.
	issuer := NewSharedTokenIssuer("plain-ignored", string(hash), "tok")

	_, err = issuer.Issue("plain-ignored")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	token, err := issuer.Issue("s3cret")
	require.NoError(t, err)
	assert.Equal(t, "tok", token)
}

func TestJWTIssuerRoundTrip(t *testing.T) {
	issuer := NewJWTIssuer("admin123", "", "signing-secret", time.Hour)

	token, err := issuer.Issue("admin123")
	require.NoError(t, err)
	assert.True(t, issuer.Verify(token))

	_, err = issuer.Issue("wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// A token signed with another secret fails verification.
	other := NewJWTIssuer("admin123", "", "different-secret", time.Hour)
	otherToken, err := other.Issue("admin123")
	require.NoError(t, err)
	assert.False(t, issuer.Verify(otherToken))

	assert.False(t, issuer.Verify("garbage"))
}
