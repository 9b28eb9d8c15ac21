package email

import "shopkart_backend/internal/logger"

// LogProvider - заглушка для окружений без SMTP: письма не уходят,
// а только пишутся в лог.
type LogProvider struct{}

func NewLogProvider() *LogProvider {
	return &LogProvider{}
}

func (p *LogProvider) Send(email *Email) error {
	logger.Info("email (not sent, SMTP disabled)",
		"to", email.To, "subject", email.Subject)
	return nil
}

func (p *LogProvider) SendPasswordReset(to string, token string) error {
	logger.Info("password reset email (not sent, SMTP disabled)", "to", to)
	return nil
}

func (p *LogProvider) Close() error {
	return nil
}
