package report_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/deepreport/pkg/email"
	"github.com/dmitrymomot/deepreport/pkg/email/templates"
	"github.com/dmitrymomot/deepreport/pkg/logger"
	"github.com/dmitrymomot/deepreport/pkg/report"
)

type mockSender struct {
	mock.Mock
}

func (m *mockSender) SendEmail(ctx context.Context, params email.SendEmailParams) (string, error) {
	args := m.Called(ctx, params)
	return args.String(0), args.Error(1)
}

type mockRenderer struct {
	mock.Mock
}

func (m *mockRenderer) Render(data templates.Data) (string, error) {
	args := m.Called(data)
	return args.String(0), args.Error(1)
}

func testLogger(buf *bytes.Buffer) *slog.Logger {
	return logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelDebug))
}

func deliveryConfig() email.DeliveryConfig {
	return email.DeliveryConfig{
		Provider:    email.ProviderResend,
		APIKey:      "re_test",
		FromAddress: "bot@reports.example.com",
		FromName:    email.DefaultFromName,
		ToAddress:   "reader@example.com",
	}
}

func newPipeline(sender email.EmailSender, r report.Renderer, buf *bytes.Buffer) *report.Pipeline {
	log := testLogger(buf)
	return report.New(email.NewGateway(deliveryConfig(), sender, log), r, report.WithLogger(log))
}

const page = `<html><head><title>{{subject}}</title></head><body><h1>{{topic}}</h1><p>{{date}}</p>{{content}}</body></html>`

func pageRenderer() *templates.Renderer {
	return templates.NewRenderer(templates.WithFS(fstest.MapFS{
		templates.DefaultFile: &fstest.MapFile{Data: []byte(page)},
	}))
}

func TestPipeline_Deliver_RoundTrip(t *testing.T) {
	t.Parallel()

	var sent email.SendEmailParams
	sender := new(mockSender)
	sender.On("SendEmail", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { sent = args.Get(1).(email.SendEmailParams) }).
		Return("msg-1", nil).Once()

	var buf bytes.Buffer
	p := newPipeline(sender, pageRenderer(), &buf)

	ok := p.Deliver(context.Background(), "AI chips", "2025-01-15", "**Bold** report")
	require.True(t, ok)
	sender.AssertExpectations(t)

	assert.Equal(t, "reader@example.com", sent.SendTo)
	assert.Equal(t, "Deep Research Bot <bot@reports.example.com>", sent.From)
	assert.Equal(t, "🔍 Deep Research Report: AI chips", sent.Subject)
	assert.Equal(t, report.Tag, sent.Tag)
	assert.Contains(t, sent.BodyHTML, "<strong>Bold</strong>")
	assert.Contains(t, sent.BodyHTML, "<title>Deep Research Report: AI chips</title>")
	assert.Contains(t, sent.BodyHTML, "<p>2025-01-15</p>")
	assert.Contains(t, sent.BodyText, "Bold report")
	assert.NotContains(t, sent.BodyText, "<")

	assert.Contains(t, buf.String(), "report delivered")
}

func TestPipeline_Deliver_Unavailable(t *testing.T) {
	t.Parallel()

	r := new(mockRenderer)
	var buf bytes.Buffer
	p := report.New(nil, r, report.WithLogger(testLogger(&buf)))

	assert.False(t, p.Available())
	assert.False(t, p.Deliver(context.Background(), "AI chips", "2025-01-15", "text"))
	r.AssertNotCalled(t, "Render", mock.Anything)
	assert.Contains(t, buf.String(), "email not configured")
}

func TestPipeline_Deliver_EmptyReport(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		id   string
		err  error
		want bool
	}{
		{"accepted", "msg-2", nil, true},
		{"rejected", "", email.ErrFailedToSendEmail, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sender := new(mockSender)
			sender.On("SendEmail", mock.Anything, mock.MatchedBy(func(p email.SendEmailParams) bool {
				return p.BodyText == ""
			})).Return(tt.id, tt.err).Once()

			p := newPipeline(sender, pageRenderer(), &bytes.Buffer{})
			assert.Equal(t, tt.want, p.Deliver(context.Background(), "AI chips", "2025-01-15", ""))
			sender.AssertExpectations(t)
		})
	}
}

func TestPipeline_Deliver_RenderFailure(t *testing.T) {
	t.Parallel()

	sender := new(mockSender)
	r := new(mockRenderer)
	r.On("Render", mock.Anything).Return("", errors.Join(templates.ErrTemplateLoad, errors.New("file not found"))).Once()

	var buf bytes.Buffer
	p := newPipeline(sender, r, &buf)

	assert.False(t, p.Deliver(context.Background(), "AI chips", "2025-01-15", "text"))
	sender.AssertNotCalled(t, "SendEmail", mock.Anything, mock.Anything)
	assert.Contains(t, buf.String(), "failed to render report")
}

func TestPipeline_Deliver_Panic(t *testing.T) {
	t.Parallel()

	sender := new(mockSender)
	r := new(mockRenderer)
	r.On("Render", mock.Anything).Panic("template exploded").Once()

	var buf bytes.Buffer
	p := newPipeline(sender, r, &buf)

	assert.NotPanics(t, func() {
		assert.False(t, p.Deliver(context.Background(), "AI chips", "2025-01-15", "text"))
	})
	assert.Contains(t, buf.String(), "template exploded")
}

func TestPipeline_Deliver_PassesConvertedContent(t *testing.T) {
	t.Parallel()

	sender := new(mockSender)
	sender.On("SendEmail", mock.Anything, mock.Anything).Return("msg-3", nil).Once()

	r := new(mockRenderer)
	r.On("Render", templates.Data{
		Topic:   "AI chips",
		Date:    "2025-01-15",
		Content: "<h3>Summary</h3>",
	}).Return("<html>ok</html>", nil).Once()

	p := newPipeline(sender, r, &bytes.Buffer{})
	assert.True(t, p.Deliver(context.Background(), "AI chips", "2025-01-15", "# Summary\n\n"))
	r.AssertExpectations(t)
}

func TestPipeline_TestConnection(t *testing.T) {
	t.Parallel()

	p := newPipeline(new(mockSender), new(mockRenderer), &bytes.Buffer{})
	assert.True(t, p.Available())
	assert.True(t, p.TestConnection())

	assert.False(t, report.New(nil, nil, report.WithLogger(testLogger(&bytes.Buffer{}))).TestConnection())
}
