package commands

import (
	"context"
	"time"

	"booking-api/internal/pkg/clock"
	"booking-api/internal/pkg/config"
	"booking-api/internal/pkg/errs"
	"booking-api/internal/pkg/jwt"
	"booking-api/internal/pkg/password"
)

var ErrInvalidAdminKey = errs.New("invalid admin key")

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
}

// AdminCommands exchanges the shared admin key for a short-lived token. The
// booking core never sees credentials; this is the auth collaborator the
// admin endpoints delegate to.
type AdminCommands interface {
	Login(ctx context.Context, key string) (*LoginResult, error)
}

type adminCommandsImpl struct {
	keyHash    string
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAdminCommands(cfg config.Config, jwtService *jwt.Service, clk clock.Clock) AdminCommands {
	return &adminCommandsImpl{
		keyHash:    cfg.Admin.KeyHash,
		jwtService: jwtService,
		clock:      clk,
	}
}

func (a *adminCommandsImpl) Login(_ context.Context, key string) (*LoginResult, error) {
	if err := password.Compare(a.keyHash, key); err != nil {
		return nil, errs.Mark(err, ErrInvalidAdminKey)
	}

	token, expiresAt, err := a.jwtService.GenerateAdminToken(a.clock.Now())
	if err != nil {
		return nil, errs.Wrap(err, "failed to sign admin token")
	}

	return &LoginResult{Token: token, ExpiresAt: expiresAt}, nil
}
