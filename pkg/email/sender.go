package email

import "fmt"

// NewSender returns the provider client selected by cfg.Provider.
func NewSender(cfg DeliveryConfig, opts ...ClientOption) (EmailSender, error) {
	switch cfg.Provider {
	case ProviderResend, "":
		return NewResendClient(cfg, opts...)
	case ProviderPostmark:
		return NewPostmarkClient(cfg, opts...)
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", ErrInvalidConfig, cfg.Provider)
	}
}

// MustNewSender is NewSender that panics on invalid configuration.
func MustNewSender(cfg DeliveryConfig, opts ...ClientOption) EmailSender {
	s, err := NewSender(cfg, opts...)
	if err != nil {
		panic(err)
	}
	return s
}
