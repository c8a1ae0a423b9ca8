// Package sms delivers verification messages.
package sms

import (
	"context"
	"log/slog"

	"locker-hub/internal/domain/verification"
)

// LogSender stands in for an SMS gateway. It logs a masked phone number and
// never the message body, which contains the code.
type LogSender struct {
	logger *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(ctx context.Context, phone verification.Phone, message string) error {
	s.logger.InfoContext(ctx, "sms dispatched",
		"phone", Mask(phone.String()),
		"length", len(message))
	return nil
}

// Mask keeps the last four characters.
func Mask(phone string) string {
	if len(phone) <= 4 {
		return phone
	}
	masked := make([]byte, len(phone))
	for i := range phone {
		if i < len(phone)-4 {
			masked[i] = '*'
		} else {
			masked[i] = phone[i]
		}
	}
	return string(masked)
}
