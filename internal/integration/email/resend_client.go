// Package email provides transactional email sending via Resend.
package email

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	"github.com/financas-pro/backend/internal/application/adapter"
)

// ResendClient implements the adapter.EmailSender interface using Resend.
type ResendClient struct {
	client    *resend.Client
	fromName  string
	fromEmail string
}

// NewResendClient creates a new Resend client.
func NewResendClient(apiKey, fromName, fromEmail string) *ResendClient {
	return &ResendClient{
		client:    resend.NewClient(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

// SendPasswordReset sends the password reset email with the reset link.
func (c *ResendClient) SendPasswordReset(ctx context.Context, toEmail, toName, resetURL string) error {
	from := fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail)

	params := &resend.SendEmailRequest{
		From:    from,
		To:      []string{toEmail},
		Subject: "Redefinição de senha",
		Html:    passwordResetHTML(toName, resetURL),
		Text:    passwordResetText(toName, resetURL),
	}

	if _, err := c.client.Emails.SendWithContext(ctx, params); err != nil {
		return fmt.Errorf("failed to send password reset email: %w", err)
	}
	return nil
}

func passwordResetHTML(name, resetURL string) string {
	return fmt.Sprintf(`<p>Olá %s,</p>
<p>Recebemos uma solicitação para redefinir sua senha. Clique no link abaixo para continuar:</p>
<p><a href="%s">Redefinir senha</a></p>
<p>O link expira em 1 hora. Se você não solicitou a redefinição, ignore este email.</p>`, name, resetURL)
}

func passwordResetText(name, resetURL string) string {
	return fmt.Sprintf("Olá %s,\n\nRecebemos uma solicitação para redefinir sua senha. Acesse o link abaixo para continuar:\n\n%s\n\nO link expira em 1 hora. Se você não solicitou a redefinição, ignore este email.\n", name, resetURL)
}

// MockEmailSender is a mock implementation for testing.
type MockEmailSender struct {
	SentTo     []string
	SentURLs   []string
	ShouldFail bool
	FailError  error
}

// NewMockEmailSender creates a new mock email sender.
func NewMockEmailSender() *MockEmailSender {
	return &MockEmailSender{}
}

// SendPasswordReset records the send instead of delivering it.
func (m *MockEmailSender) SendPasswordReset(ctx context.Context, toEmail, toName, resetURL string) error {
	if m.ShouldFail {
		return m.FailError
	}
	m.SentTo = append(m.SentTo, toEmail)
	m.SentURLs = append(m.SentURLs, resetURL)
	return nil
}

// Reset clears all recorded sends and failure configuration.
func (m *MockEmailSender) Reset() {
	m.SentTo = nil
	m.SentURLs = nil
	m.ShouldFail = false
	m.FailError = nil
}

// Ensure implementations satisfy interfaces.
var (
	_ adapter.EmailSender = (*ResendClient)(nil)
	_ adapter.EmailSender = (*MockEmailSender)(nil)
)
