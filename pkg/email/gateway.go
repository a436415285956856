package email

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/deepreport/pkg/logger"
)

// Message is a single outbound email. TextBody is optional.
type Message struct {
	Recipient string
	Subject   string
	HTMLBody  string
	TextBody  string
	Tag       string
}

// Gateway sends messages through an EmailSender using one DeliveryConfig.
// Every failure is logged and reported as false; callers never see an error.
type Gateway struct {
	cfg    DeliveryConfig
	sender EmailSender
	logger *slog.Logger
}

// NewGateway binds cfg to sender. A nil logger falls back to slog.Default().
func NewGateway(cfg DeliveryConfig, sender EmailSender, log *slog.Logger) *Gateway {
	if log == nil {
		log = slog.Default()
	}
	return &Gateway{
		cfg:    cfg,
		sender: sender,
		logger: log.With(logger.Component("email.gateway"), logger.Provider(cfg.Provider)),
	}
}

// Config returns the delivery configuration the gateway was built with.
func (g *Gateway) Config() DeliveryConfig {
	return g.cfg
}

// Send delivers msg from the configured sender. It reports true only when the
// provider accepted the message and returned an id.
func (g *Gateway) Send(ctx context.Context, msg Message) (ok bool) {
	log := g.logger.With(logger.Recipient(msg.Recipient))

	defer func() {
		if r := recover(); r != nil {
			log.ErrorContext(ctx, "email sender panicked", logger.Error(fmt.Errorf("%w: panic: %v", ErrFailedToSendEmail, r)))
			ok = false
		}
	}()

	if g.sender == nil {
		log.ErrorContext(ctx, "failed to send email", logger.Error(fmt.Errorf("%w: no sender", ErrFailedToSendEmail)))
		return false
	}

	id, err := g.sender.SendEmail(ctx, SendEmailParams{
		From:     g.cfg.From(),
		SendTo:   msg.Recipient,
		Subject:  msg.Subject,
		BodyHTML: msg.HTMLBody,
		BodyText: msg.TextBody,
		Tag:      msg.Tag,
	})
	if err != nil {
		log.ErrorContext(ctx, "failed to send email", logger.Error(err))
		return false
	}
	if id == "" {
		log.ErrorContext(ctx, "failed to send email", logger.Error(ErrNoMessageID))
		return false
	}

	log.InfoContext(ctx, "email sent", logger.MessageID(id))
	return true
}

// TestConnection checks that the provider credentials are present.
// It does not contact the provider.
func (g *Gateway) TestConnection() bool {
	if strings.TrimSpace(g.cfg.APIKey) == "" {
		g.logger.Warn("email connection test failed", logger.Error(fmt.Errorf("%w: api key is empty", ErrNotConfigured)))
		return false
	}
	g.logger.Debug("email connection test passed")
	return true
}
