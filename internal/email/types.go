package email

// Email is one outgoing message.
type Email struct {
	To      []string
	Subject string
	Body    string
}

// Provider is what the services depend on. The SMTP implementation is used
// in production, tests substitute their own.
type Provider interface {
	Send(email *Email) error
}

// Config for the SMTP provider.
type Config struct {
	SMTPHost  string
	SMTPPort  int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}
