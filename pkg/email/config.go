package email

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrymomot/deepreport/pkg/config"
	"github.com/dmitrymomot/deepreport/pkg/validator"
)

// Supported delivery providers.
const (
	ProviderResend   = "resend"
	ProviderPostmark = "postmark"
)

// DefaultFromName is used when EMAIL_FROM_NAME is not set.
const DefaultFromName = "Deep Research Bot"

// Providers lists the accepted EMAIL_PROVIDER values.
var Providers = []string{ProviderResend, ProviderPostmark}

// Settings is the raw, unvalidated email configuration read from the environment.
// API keys are namespaced by provider; only the key of the selected provider is used.
type Settings struct {
	Provider             string `env:"EMAIL_PROVIDER" envDefault:"resend"`
	ResendAPIKey         string `env:"RESEND_API_KEY"`
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	From                 string `env:"EMAIL_FROM"`
	FromName             string `env:"EMAIL_FROM_NAME" envDefault:"Deep Research Bot"`
	To                   string `env:"EMAIL_TO"`
}

// LoadSettings reads Settings through the process-wide config cache.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := config.Load(&s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func (s Settings) provider() string {
	p := strings.ToLower(strings.TrimSpace(s.Provider))
	if p == "" {
		return ProviderResend
	}
	return p
}

// apiKey returns the selected provider's key and the variable it comes from.
func (s Settings) apiKey() (value, name string) {
	if s.provider() == ProviderPostmark {
		return strings.TrimSpace(s.PostmarkServerToken), "POSTMARK_SERVER_TOKEN"
	}
	return strings.TrimSpace(s.ResendAPIKey), "RESEND_API_KEY"
}

// Missing returns the names of required variables that are unset or blank.
func (s Settings) Missing() []string {
	var missing []string
	if key, name := s.apiKey(); key == "" {
		missing = append(missing, name)
	}
	if strings.TrimSpace(s.From) == "" {
		missing = append(missing, "EMAIL_FROM")
	}
	if strings.TrimSpace(s.To) == "" {
		missing = append(missing, "EMAIL_TO")
	}
	return missing
}

// DeliveryConfig is a validated, immutable email configuration.
type DeliveryConfig struct {
	Provider     string
	APIKey       string
	AccountToken string
	FromAddress  string
	FromName     string
	ToAddress    string
}

// NewDeliveryConfig validates s. It returns ErrNotConfigured when the API key,
// sender or recipient is missing and ErrInvalidConfig when a value is malformed.
func NewDeliveryConfig(s Settings) (DeliveryConfig, error) {
	provider := s.provider()
	if err := validator.Apply(validator.InList("EMAIL_PROVIDER", provider, Providers)); err != nil {
		return DeliveryConfig{}, errors.Join(ErrInvalidConfig, err)
	}

	if missing := s.Missing(); len(missing) > 0 {
		return DeliveryConfig{}, fmt.Errorf("%w: missing %s", ErrNotConfigured, strings.Join(missing, ", "))
	}

	from := strings.TrimSpace(s.From)
	to := strings.TrimSpace(s.To)
	if err := validator.Apply(
		validator.ValidEmail("EMAIL_FROM", from),
		validator.ValidEmail("EMAIL_TO", to),
	); err != nil {
		return DeliveryConfig{}, errors.Join(ErrInvalidConfig, err)
	}

	name := strings.TrimSpace(s.FromName)
	if name == "" {
		name = DefaultFromName
	}

	key, _ := s.apiKey()
	return DeliveryConfig{
		Provider:     provider,
		APIKey:       key,
		AccountToken: strings.TrimSpace(s.PostmarkAccountToken),
		FromAddress:  from,
		FromName:     name,
		ToAddress:    to,
	}, nil
}

// From returns the sender as "Name <address>", or the bare address without a name.
func (c DeliveryConfig) From() string {
	if c.FromName == "" {
		return c.FromAddress
	}
	return fmt.Sprintf("%s <%s>", c.FromName, c.FromAddress)
}

// SetupInstructions explains how to enable email delivery.
const SetupInstructions = `To enable email delivery, add the following to your .env file:

  EMAIL_PROVIDER=resend                 # or postmark
  RESEND_API_KEY=your_resend_api_key    # POSTMARK_SERVER_TOKEN for postmark
  EMAIL_FROM=your-verified-email@domain.com
  EMAIL_FROM_NAME=Deep Research Bot     # optional
  EMAIL_TO=recipient@example.com

Resend API key:
  1. Sign up at https://resend.com
  2. Verify your domain or use the sandbox domain
  3. Create a key in the API Keys section
  4. Add the key to your .env file
`
