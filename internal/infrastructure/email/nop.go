package email

import (
	"context"

	"go.uber.org/zap"
)

// NopSender logs outbound mail instead of delivering it. Used when email is
// disabled in configuration, so the lifecycle flows stay exercisable locally.
type NopSender struct {
	logger *zap.Logger
}

// NewNopSender creates a NopSender
func NewNopSender(logger *zap.Logger) *NopSender {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NopSender{logger: logger.Named("email")}
}

// Send logs the message and reports success
func (s *NopSender) Send(ctx context.Context, to, subject, htmlBody string) error {
	s.logger.Info("email delivery disabled, dropping message",
		zap.String("to", to),
		zap.String("subject", subject),
	)
	return nil
}
