package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/evgeniy-krivenko/smart-notes/internal/config"
	"github.com/evgeniy-krivenko/smart-notes/internal/entity"
	"github.com/evgeniy-krivenko/smart-notes/internal/identity"
	"github.com/evgeniy-krivenko/smart-notes/internal/repository/inmem"
)

func TestBootstrapUserInMemory(t *testing.T) {
	ctx := context.Background()
	repo := inmem.New()

	ident, err := identity.New(identity.NewOptions(
		repo,
		[]byte("0123456789abcdef"),
		identity.WithBcryptCost(bcrypt.MinCost),
	))
	require.NoError(t, err)

	cfg := config.AuthConfig{BootstrapUsername: "admin", BootstrapPassword: "s3cret"}
	creds := entity.Credentials{Username: "admin", Password: "s3cret"}

	_, err = ident.Authenticate(ctx, creds)
	require.ErrorIs(t, err, entity.ErrInvalidCredentials)

	require.NoError(t, bootstrapUser(ctx, ident, cfg))

	u, err := ident.Authenticate(ctx, creds)
	require.NoError(t, err)
	assert.Equal(t, "admin", u.Username)

	// A restart against the same store keeps the existing account.
	require.NoError(t, bootstrapUser(ctx, ident, cfg))
}

func TestBootstrapUserDisabled(t *testing.T) {
	ctx := context.Background()
	repo := inmem.New()

	ident, err := identity.New(identity.NewOptions(repo, []byte("0123456789abcdef")))
	require.NoError(t, err)

	require.NoError(t, bootstrapUser(ctx, ident, config.AuthConfig{}))

	_, err = repo.GetUserByUsername(ctx, "admin")
	assert.ErrorIs(t, err, entity.ErrUserNotFound)
}

func TestBootstrapUserInvalidCredentials(t *testing.T) {
	ctx := context.Background()

	ident, err := identity.New(identity.NewOptions(inmem.New(), []byte("0123456789abcdef")))
	require.NoError(t, err)

	err = bootstrapUser(ctx, ident, config.AuthConfig{BootstrapUsername: "   ", BootstrapPassword: "x"})
	assert.Error(t, err)
}
