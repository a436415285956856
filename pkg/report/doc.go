// Package report turns a raw research report into an email and delivers it.
//
// Deliver runs four steps: the markup is converted to an HTML fragment, the
// fragment is reduced to a plain-text alternative, the page template is
// rendered around it, and the result is sent to the configured recipient.
// Every failure ends up in the log and as a false return value.
//
//	cfg, ok := email.NewResolver(nil, log).Resolve(ctx)
//	var gw *email.Gateway
//	if ok {
//	    gw = email.NewGateway(cfg, email.MustNewSender(cfg), log)
//	}
//	p := report.New(gw, templates.NewRenderer(), report.WithLogger(log))
//	if !p.Deliver(ctx, "AI chips", "2025-01-15", raw) {
//	    // not sent
//	}
package report
