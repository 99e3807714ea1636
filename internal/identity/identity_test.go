package identity

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/evgeniy-krivenko/smart-notes/internal/entity"
	"github.com/evgeniy-krivenko/smart-notes/internal/repository/inmem"
)

var testSecret = []byte("0123456789abcdef-test")

func newProvider(t *testing.T, opts ...OptOptionsSetter) (*Provider, *inmem.Repo) {
	t.Helper()

	repo := inmem.New()
	opts = append([]OptOptionsSetter{WithBcryptCost(bcrypt.MinCost)}, opts...)

	p, err := New(NewOptions(repo, testSecret, opts...))
	require.NoError(t, err)

	return p, repo
}

func TestNewValidatesSecret(t *testing.T) {
	_, err := New(NewOptions(inmem.New(), []byte("short")))
	assert.Error(t, err)
}

func TestAuthenticate(t *testing.T) {
	p, _ := newProvider(t)
	ctx := context.Background()

	created, err := p.CreateUser(ctx, entity.Credentials{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)

	u, err := p.Authenticate(ctx, entity.Credentials{Username: "alice", Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, u.ID)

	_, err = p.Authenticate(ctx, entity.Credentials{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, entity.ErrInvalidCredentials)

	_, err = p.Authenticate(ctx, entity.Credentials{Username: "nobody", Password: "s3cret"})
	assert.ErrorIs(t, err, entity.ErrInvalidCredentials)

	var verr *entity.ValidationError
	_, err = p.Authenticate(ctx, entity.Credentials{})
	assert.ErrorAs(t, err, &verr)
}

func TestCreateUserDuplicate(t *testing.T) {
	p, _ := newProvider(t)
	ctx := context.Background()

	_, err := p.CreateUser(ctx, entity.Credentials{Username: "alice", Password: "a"})
	require.NoError(t, err)

	_, err = p.CreateUser(ctx, entity.Credentials{Username: "alice", Password: "b"})
	assert.ErrorIs(t, err, entity.ErrUserExists)
}

func TestTokenRoundTrip(t *testing.T) {
	p, _ := newProvider(t)

	tok, err := p.IssueToken(42)
	require.NoError(t, err)

	id, err := p.ParseToken(tok)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestParseTokenRejects(t *testing.T) {
	p, _ := newProvider(t)
	expired, _ := newProvider(t, WithSessionTTL(-time.Minute))

	expiredTok, err := expired.IssueToken(1)
	require.NoError(t, err)

	other, err := New(NewOptions(inmem.New(), []byte("another-secret-value"), WithBcryptCost(bcrypt.MinCost)))
	require.NoError(t, err)
	foreignTok, err := other.IssueToken(1)
	require.NoError(t, err)

	noneTok, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	for name, tok := range map[string]string{
		"expired":   expiredTok,
		"foreign":   foreignTok,
		"alg none":  noneTok,
		"malformed": "not.a.jwt",
		"empty":     "",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := p.ParseToken(tok)
			assert.ErrorIs(t, err, entity.ErrUnauthenticated)
		})
	}
}

func TestCurrentUser(t *testing.T) {
	p, _ := newProvider(t)
	ctx := context.Background()

	u, err := p.CreateUser(ctx, entity.Credentials{Username: "bob", Password: "pw"})
	require.NoError(t, err)

	tok, err := p.IssueToken(u.ID)
	require.NoError(t, err)

	got, err := p.CurrentUser(ctx, tok)
	require.NoError(t, err)
	assert.Equal(t, "bob", got.Username)

	ghost, err := p.IssueToken(999)
	require.NoError(t, err)
	_, err = p.CurrentUser(ctx, ghost)
	assert.ErrorIs(t, err, entity.ErrUnauthenticated)
}
