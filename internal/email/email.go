package email

// Provider sends the transactional emails the account flows depend on.
type Provider interface {
	SendVerification(to, token string) error
	SendPasswordReset(to, token string) error
}

type Config struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	FromName     string
	BaseURL      string // public site URL embedded in links
}
