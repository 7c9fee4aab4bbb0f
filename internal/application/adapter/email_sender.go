// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// EmailSender defines the interface for sending transactional emails.
type EmailSender interface {
	// SendPasswordReset sends a password reset email containing the reset link.
	SendPasswordReset(ctx context.Context, toEmail, toName, resetURL string) error
}
