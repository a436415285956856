package email

import (
	"context"
	"errors"
	"fmt"

	"github.com/mrz1836/postmark"
)

type postmarkClient struct {
	client *postmark.Client
}

// NewPostmarkClient creates a Postmark-backed email sender.
// The account token is optional; sending only needs the server token.
func NewPostmarkClient(cfg DeliveryConfig, opts ...ClientOption) (EmailSender, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: postmark server token is required", ErrInvalidConfig)
	}

	o := newClientOptions(opts)
	client := postmark.NewClient(cfg.APIKey, cfg.AccountToken)
	client.HTTPClient = o.httpClient
	if o.baseURL != "" {
		client.BaseURL = o.baseURL
	}

	return &postmarkClient{client: client}, nil
}

// SendEmail implements EmailSender using Postmark's transactional API.
// Opens and HTML link clicks are tracked; plain-text links are left alone.
func (c *postmarkClient) SendEmail(ctx context.Context, params SendEmailParams) (string, error) {
	if err := params.Validate(); err != nil {
		return "", err
	}

	resp, err := c.client.SendEmail(ctx, postmark.Email{
		From:       params.From,
		To:         params.SendTo,
		Subject:    params.Subject,
		Tag:        params.Tag,
		HTMLBody:   params.BodyHTML,
		TextBody:   params.BodyText,
		TrackOpens: true,
		TrackLinks: "HtmlOnly",
	})
	if err != nil {
		return "", errors.Join(ErrFailedToSendEmail, err)
	}
	if resp.ErrorCode > 0 {
		return "", errors.Join(
			ErrFailedToSendEmail,
			fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message),
		)
	}
	if resp.MessageID == "" {
		return "", errors.Join(ErrFailedToSendEmail, ErrNoMessageID)
	}
	return resp.MessageID, nil
}
