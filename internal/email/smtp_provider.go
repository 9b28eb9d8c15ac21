package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPProvider - реализация Provider поверх SMTP (gomail)
type SMTPProvider struct {
	config Config
	dialer *gomail.Dialer
}

// NewSMTPProvider создает SMTP провайдер
func NewSMTPProvider(config Config) (*SMTPProvider, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid email config: %w", err)
	}

	dialer := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.Username, config.Password)

	return &SMTPProvider{
		config: config,
		dialer: dialer,
	}, nil
}

// Send отправляет произвольное письмо
func (p *SMTPProvider) Send(email *Email) error {
	m := gomail.NewMessage()

	from := email.From
	if from == "" {
		from = p.config.FromEmail
	}
	m.SetAddressHeader("From", from, p.config.FromName)
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)

	if email.HTMLBody != "" {
		m.SetBody("text/html", email.HTMLBody)
		if email.Body != "" {
			m.AddAlternative("text/plain", email.Body)
		}
	} else {
		m.SetBody("text/plain", email.Body)
	}

	if err := p.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// SendPasswordReset отправляет письмо со ссылкой сброса пароля
func (p *SMTPProvider) SendPasswordReset(to string, token string) error {
	resetURL := fmt.Sprintf("%s?token=%s&email=%s", p.config.ResetBaseURL, token, to)

	htmlBody, err := renderTemplate(TemplateData{
		Subject:    "Password Reset",
		Message:    "We received a request to reset the password for your account. Click the button below to choose a new password. The link is valid for a limited time and can be used only once.",
		ActionURL:  resetURL,
		ActionText: "Reset Password",
		FromName:   p.config.FromName,
	})
	if err != nil {
		return err
	}

	return p.Send(&Email{
		To:       []string{to},
		Subject:  "Password Reset",
		Body:     "To reset your password, open the following link: " + resetURL,
		HTMLBody: htmlBody,
	})
}

// Close закрывает провайдер (gomail держит соединения per-send)
func (p *SMTPProvider) Close() error {
	return nil
}
