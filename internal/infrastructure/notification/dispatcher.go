// Package notification delivers phone verification codes.
package notification

import (
	"context"

	"go.uber.org/zap"

	domainerrors "borrowbank.backend/internal/domain/errors"
	"borrowbank.backend/pkg/logger"
	"borrowbank.backend/pkg/verification"
)

// Dispatcher sends a verification code to a phone number.
type Dispatcher interface {
	DispatchVerification(ctx context.Context, phoneNumber string) error
}

// ConsoleDispatcher writes the code to the log instead of sending an
// SMS. Used outside production.
type ConsoleDispatcher struct {
	secret string
}

// NewConsoleDispatcher creates a console dispatcher deriving codes from
// the given secret.
func NewConsoleDispatcher(secret string) *ConsoleDispatcher {
	return &ConsoleDispatcher{secret: secret}
}

func (d *ConsoleDispatcher) DispatchVerification(ctx context.Context, phoneNumber string) error {
	code := verification.GenerateCode(phoneNumber, d.secret)
	logger.Info(ctx, "SMS sent",
		zap.String("phone_number", phoneNumber),
		zap.String("code", code),
	)
	return nil
}

// UnsupportedDispatcher is wired in production, where no SMS provider
// integration exists yet. It fails every dispatch rather than pretend
// a message went out; the gap is intentional and must stay visible.
type UnsupportedDispatcher struct{}

// NewUnsupportedDispatcher creates the production placeholder
// dispatcher.
func NewUnsupportedDispatcher() *UnsupportedDispatcher {
	return &UnsupportedDispatcher{}
}

func (d *UnsupportedDispatcher) DispatchVerification(ctx context.Context, phoneNumber string) error {
	return domainerrors.ErrNotImplemented
}
