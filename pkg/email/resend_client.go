package email

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/resend/resend-go/v2"
)

type resendClient struct {
	client *resend.Client
}

// NewResendClient creates a Resend-backed email sender.
func NewResendClient(cfg DeliveryConfig, opts ...ClientOption) (EmailSender, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: resend api key is required", ErrInvalidConfig)
	}

	o := newClientOptions(opts)
	client := resend.NewCustomClient(o.httpClient, cfg.APIKey)
	if o.baseURL != "" {
		u, err := url.Parse(o.baseURL)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid base url: %v", ErrInvalidConfig, err)
		}
		client.BaseURL = u
	}

	return &resendClient{client: client}, nil
}

// SendEmail posts the message to Resend's /emails endpoint.
// A response without an id counts as a rejection.
func (c *resendClient) SendEmail(ctx context.Context, params SendEmailParams) (string, error) {
	if err := params.Validate(); err != nil {
		return "", err
	}

	req := &resend.SendEmailRequest{
		From:    params.From,
		To:      []string{params.SendTo},
		Subject: params.Subject,
		Html:    params.BodyHTML,
		Text:    params.BodyText,
	}
	if params.Tag != "" {
		req.Tags = []resend.Tag{{Name: "category", Value: params.Tag}}
	}

	resp, err := c.client.Emails.SendWithContext(ctx, req)
	if err != nil {
		return "", errors.Join(ErrFailedToSendEmail, err)
	}
	if resp == nil || resp.Id == "" {
		return "", errors.Join(ErrFailedToSendEmail, ErrNoMessageID)
	}
	return resp.Id, nil
}
