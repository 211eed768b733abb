// Package mailer delivers verification codes to users.
package mailer

import (
	"context"

	"github.com/dtroode/accounts-server/internal/logger"
	"github.com/dtroode/accounts-server/internal/model"
)

var _ model.Mailer = (*LogMailer)(nil)

// LogMailer writes codes to the log instead of sending them. It is the
// delivery used when no mail transport is configured.
type LogMailer struct {
	logger *logger.Logger
}

func NewLogMailer(logger *logger.Logger) *LogMailer {
	return &LogMailer{
		logger: logger,
	}
}

func (m *LogMailer) SendCode(ctx context.Context, to, purpose, code string) error {
	m.logger.InfoContext(ctx, "Mailer: code issued", "to", to, "purpose", purpose, "code", code)
	return nil
}
