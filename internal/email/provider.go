package email

// Provider определяет интерфейс для отправки email
type Provider interface {
	// Send отправляет простое email сообщение
	Send(email *Email) error

	// SendPasswordReset отправляет письмо со ссылкой сброса пароля
	SendPasswordReset(to string, token string) error

	// Close закрывает соединение с провайдером
	Close() error
}
