package app

import (
	"lms_backend/internal/email"
	"lms_backend/internal/logger"
)

// MockEmailProvider logs instead of sending. Used when SMTP is not
// configured.
type MockEmailProvider struct{}

func (m *MockEmailProvider) Send(e *email.Email) error {
	logger.Info("MOCK email",
		"to", e.To,
		"subject", e.Subject,
	)
	return nil
}
