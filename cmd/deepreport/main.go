// Command deepreport converts a research report to an email and delivers it.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"

	"github.com/dmitrymomot/deepreport/pkg/config"
	"github.com/dmitrymomot/deepreport/pkg/email"
	"github.com/dmitrymomot/deepreport/pkg/email/templates"
	"github.com/dmitrymomot/deepreport/pkg/logger"
	"github.com/dmitrymomot/deepreport/pkg/report"
)

const serviceName = "deepreport"

type appConfig struct {
	Env      string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL"`
}

type runIDKey struct{}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = context.WithValue(ctx, runIDKey{}, uuid.NewString())

	var code int
	switch os.Args[1] {
	case "send":
		code = runSend(ctx, os.Args[2:])
	case "check":
		code = runCheck(ctx, os.Args[2:])
	case "-h", "--help", "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", os.Args[1])
		printUsage()
		code = 2
	}

	stop()
	os.Exit(code)
}

func printUsage() {
	fmt.Println("Usage: deepreport <command> [flags]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  send    Convert a report and email it")
	fmt.Println("  check   Verify email settings and send a sample report")
}

// setup loads .env files and builds the process logger.
func setup(envFiles []string) (*slog.Logger, error) {
	if len(envFiles) > 0 {
		if err := config.LoadEnv(envFiles...); err != nil {
			return nil, err
		}
	}

	var app appConfig
	if err := config.Load(&app); err != nil {
		return nil, err
	}

	log := logger.New(
		logger.WithEnvironment(app.Env, serviceName),
		logger.WithLevelName(app.LogLevel),
		logger.WithContextValue("run_id", runIDKey{}),
	)
	logger.SetAsDefault(log)
	return log, nil
}

type pipelineOptions struct {
	assetsDir string
	inlineCSS bool
	dryRunDir string
}

// buildPipeline resolves email settings once and wires the delivery pipeline.
// When email is not configured the pipeline is returned without a gateway.
func buildPipeline(ctx context.Context, log *slog.Logger, opts pipelineOptions) (*report.Pipeline, error) {
	rendererOpts := []templates.Option{templates.WithFS(os.DirFS(opts.assetsDir))}
	if opts.inlineCSS {
		rendererOpts = append(rendererOpts, templates.WithInlineCSS())
	}
	renderer := templates.NewRenderer(rendererOpts...)

	cfg, ok := email.NewResolver(nil, log).Resolve(ctx)
	if !ok {
		return report.New(nil, renderer, report.WithLogger(log)), nil
	}

	var sender email.EmailSender
	if opts.dryRunDir != "" {
		sender = email.NewDevSender(opts.dryRunDir)
	} else {
		s, err := email.NewSender(cfg)
		if err != nil {
			return nil, err
		}
		sender = s
	}

	return report.New(email.NewGateway(cfg, sender, log), renderer, report.WithLogger(log)), nil
}
