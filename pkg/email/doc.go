// Package email resolves delivery settings and sends transactional emails
// through a provider-agnostic EmailSender.
//
// # Configuration
//
// Settings are read from the environment (and .env files) through pkg/config:
//
//	EMAIL_PROVIDER          resend (default) or postmark
//	RESEND_API_KEY          key for the resend provider
//	POSTMARK_SERVER_TOKEN   key for the postmark provider
//	POSTMARK_ACCOUNT_TOKEN  optional, postmark only
//	EMAIL_FROM              verified sender address
//	EMAIL_FROM_NAME         display name, defaults to DefaultFromName
//	EMAIL_TO                recipient address
//
// Resolver turns them into a DeliveryConfig, or reports that email is
// unavailable:
//
//	cfg, ok := email.NewResolver(nil, log).Resolve(ctx)
//	if !ok {
//	    fmt.Print(email.SetupInstructions)
//	    return
//	}
//
// # Sending
//
// NewSender picks the client for cfg.Provider. Gateway wraps it, fills in the
// sender address and converts every failure into a logged false:
//
//	sender, err := email.NewSender(cfg)
//	if err != nil {
//	    return err
//	}
//	gw := email.NewGateway(cfg, sender, log)
//	ok := gw.Send(ctx, email.Message{
//	    Recipient: cfg.ToAddress,
//	    Subject:   "Weekly digest",
//	    HTMLBody:  html,
//	    TextBody:  text,
//	})
//
// DevSender saves emails to disk instead of sending them, which is handy for
// previewing output locally.
//
// # Error Handling
//
// Sentinel errors are checked with errors.Is:
//   - ErrNotConfigured: a required setting is missing
//   - ErrInvalidConfig: a setting is malformed
//   - ErrInvalidParams: email parameters failed validation
//   - ErrFailedToSendEmail: the provider call failed or was rejected
//   - ErrNoMessageID: the provider accepted the call but returned no id
package email
