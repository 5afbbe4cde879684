package email

// Email - простое сообщение
type Email struct {
	To      []string
	Subject string
	Body    string
	IsHTML  bool
}

// Provider определяет интерфейс для отправки email
type Provider interface {
	// Send отправляет email сообщение
	Send(email *Email) error

	// Validate проверяет конфигурацию провайдера
	Validate() error
}
