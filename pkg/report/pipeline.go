package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/deepreport/pkg/email"
	"github.com/dmitrymomot/deepreport/pkg/email/templates"
	"github.com/dmitrymomot/deepreport/pkg/logger"
	"github.com/dmitrymomot/deepreport/pkg/markup"
)

// Tag labels report emails at the provider.
const Tag = "deep-research"

// Renderer fills the page template around a converted report.
type Renderer interface {
	Render(data templates.Data) (string, error)
}

// Pipeline converts raw report text to an email and delivers it.
type Pipeline struct {
	gateway  *email.Gateway
	renderer Renderer
	logger   *slog.Logger
	now      func() time.Time
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.logger = l
		}
	}
}

// New creates a Pipeline. A nil gateway means email is unavailable and every
// Deliver call returns false. A nil renderer reads the default template.
func New(gateway *email.Gateway, renderer Renderer, opts ...Option) *Pipeline {
	p := &Pipeline{
		gateway:  gateway,
		renderer: renderer,
		logger:   slog.Default(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.renderer == nil {
		p.renderer = templates.NewRenderer()
	}
	p.logger = p.logger.With(logger.Component("report"))
	return p
}

// Available reports whether the pipeline can send email.
func (p *Pipeline) Available() bool {
	return p.gateway != nil
}

// TestConnection checks the delivery credentials without sending anything.
func (p *Pipeline) TestConnection() bool {
	if !p.Available() {
		p.logger.Info("email not configured")
		return false
	}
	return p.gateway.TestConnection()
}

// Deliver renders raw as an email about topic dated date and sends it to the
// configured recipient. Every failure is logged and reported as false.
// Empty raw text is delivered as a report without content.
func (p *Pipeline) Deliver(ctx context.Context, topic, date, raw string) (ok bool) {
	log := p.logger.With(logger.Topic(topic), slog.String("date", date))

	if !p.Available() {
		log.InfoContext(ctx, "email not configured")
		return false
	}

	defer func() {
		if r := recover(); r != nil {
			log.ErrorContext(ctx, "report delivery panicked", logger.Error(fmt.Errorf("panic: %v", r)))
			ok = false
		}
	}()

	start := p.now()
	fragment := markup.Convert(raw)

	html, err := p.renderer.Render(templates.Data{Topic: topic, Date: date, Content: fragment})
	if err != nil {
		log.ErrorContext(ctx, "failed to render report", logger.Error(err))
		return false
	}

	recipient := p.gateway.Config().ToAddress
	ok = p.gateway.Send(ctx, email.Message{
		Recipient: recipient,
		Subject:   templates.EmailSubject(topic),
		HTMLBody:  html,
		TextBody:  markup.PlainText(fragment),
		Tag:       Tag,
	})

	log = log.With(logger.Recipient(recipient), logger.Duration(p.now().Sub(start)))
	if !ok {
		log.WarnContext(ctx, "report not delivered")
		return false
	}
	log.InfoContext(ctx, "report delivered")
	return true
}
