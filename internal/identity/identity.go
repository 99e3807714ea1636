// Package identity resolves the acting user of a request. Users log in
// with a password and receive a signed session token.
package identity

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/evgeniy-krivenko/smart-notes/internal/entity"
	"github.com/evgeniy-krivenko/smart-notes/pkg/logger/slogx"
)

const issuer = "smart-notes"

type usersRepository interface {
	CreateUser(ctx context.Context, username string, passwordHash []byte) (entity.User, error)
	GetUser(ctx context.Context, id int64) (entity.User, error)
	GetUserByUsername(ctx context.Context, username string) (entity.User, error)
}

//go:generate go run github.com/kazhuravlev/options-gen/cmd/options-gen@v0.55.3 -out-filename=identity_options.gen.go -from-struct=Options
type Options struct {
	users  usersRepository `option:"mandatory" validate:"required"`
	secret []byte          `option:"mandatory" validate:"required,min=16"`

	sessionTTL time.Duration `default:"12h"`
	bcryptCost int           `default:"10" validate:"min=4,max=31"`
}

type Provider struct {
	Options

	// dummyHash is compared against when the user does not exist, so a
	// miss costs the same as a wrong password.
	dummyHash []byte
}

func New(opts Options) (*Provider, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate identity options: %v", err)
	}

	dummy, err := bcrypt.GenerateFromPassword([]byte("dummy-password"), opts.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("generate dummy hash: %v", err)
	}

	return &Provider{Options: opts, dummyHash: dummy}, nil
}

func (p *Provider) SessionTTL() time.Duration {
	return p.sessionTTL
}

func (p *Provider) CreateUser(ctx context.Context, creds entity.Credentials) (entity.User, error) {
	if err := creds.Validate(); err != nil {
		return entity.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), p.bcryptCost)
	if err != nil {
		return entity.User{}, fmt.Errorf("hash password: %v", err)
	}

	u, err := p.users.CreateUser(ctx, creds.Username, hash)
	if err != nil {
		return entity.User{}, fmt.Errorf("create user: %w", err)
	}

	slogx.Info(ctx, "user created", slogx.UserId(u.ID))
	return u, nil
}

// Authenticate checks the password and returns the matching user.
func (p *Provider) Authenticate(ctx context.Context, creds entity.Credentials) (entity.User, error) {
	if err := creds.Validate(); err != nil {
		return entity.User{}, err
	}

	u, err := p.users.GetUserByUsername(ctx, creds.Username)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			_ = bcrypt.CompareHashAndPassword(p.dummyHash, []byte(creds.Password))
			return entity.User{}, entity.ErrInvalidCredentials
		}
		return entity.User{}, fmt.Errorf("authenticate: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(creds.Password)); err != nil {
		return entity.User{}, entity.ErrInvalidCredentials
	}

	return u, nil
}

func (p *Provider) IssueToken(userID int64) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(p.sessionTTL)),
	})

	signed, err := token.SignedString(p.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %v", err)
	}

	return signed, nil
}

// ParseToken returns the user id of a valid token. Any defect in the
// token yields ErrUnauthenticated.
func (p *Provider) ParseToken(tokenString string) (int64, error) {
	claims := &jwt.RegisteredClaims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return p.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", entity.ErrUnauthenticated, err)
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return 0, fmt.Errorf("%w: bad subject %q", entity.ErrUnauthenticated, claims.Subject)
	}

	return userID, nil
}

// CurrentUser resolves a session token to a user that still exists.
func (p *Provider) CurrentUser(ctx context.Context, tokenString string) (entity.User, error) {
	userID, err := p.ParseToken(tokenString)
	if err != nil {
		return entity.User{}, err
	}

	u, err := p.users.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return entity.User{}, entity.ErrUnauthenticated
		}
		return entity.User{}, fmt.Errorf("current user: %w", err)
	}

	return u, nil
}
