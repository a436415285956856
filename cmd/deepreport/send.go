package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/dmitrymomot/deepreport/pkg/email"
	"github.com/dmitrymomot/deepreport/pkg/email/templates"
	"github.com/dmitrymomot/deepreport/pkg/logger"
	"github.com/dmitrymomot/deepreport/pkg/progress"
)

const dateLayout = "2006-01-02"

// yesterday returns the previous UTC day, the default report date.
func yesterday(now time.Time) string {
	return now.UTC().AddDate(0, 0, -1).Format(dateLayout)
}

type sendFlags struct {
	topic     string
	date      string
	file      string
	assetsDir string
	envFiles  []string
	dryRunDir string
	inlineCSS bool
}

func parseSendFlags(args []string, now time.Time) (sendFlags, error) {
	var f sendFlags
	fs := pflag.NewFlagSet("send", pflag.ContinueOnError)
	fs.StringVarP(&f.topic, "topic", "t", "", "Report topic (required)")
	fs.StringVarP(&f.date, "date", "d", yesterday(now), "Report date, yyyy-mm-dd")
	fs.StringVarP(&f.file, "file", "f", "-", "Report file, or - for stdin")
	fs.StringVar(&f.assetsDir, "assets", templates.DefaultDir, "Directory holding "+templates.DefaultFile)
	fs.StringSliceVar(&f.envFiles, "env", nil, "Extra .env files; later files win")
	fs.StringVar(&f.dryRunDir, "dry-run", "", "Write the email to this directory instead of sending it")
	fs.BoolVar(&f.inlineCSS, "inline-css", true, "Inline template CSS into style attributes")

	if err := fs.Parse(args); err != nil {
		return f, err
	}

	f.topic = strings.TrimSpace(f.topic)
	if f.topic == "" {
		return f, errors.New("--topic is required")
	}
	if _, err := time.Parse(dateLayout, f.date); err != nil {
		return f, fmt.Errorf("invalid --date %q: want yyyy-mm-dd", f.date)
	}
	return f, nil
}

func readReport(path string, stdin io.Reader) (string, error) {
	if path == "" || path == "-" {
		b, err := io.ReadAll(stdin)
		return string(b), err
	}
	b, err := os.ReadFile(path)
	return string(b), err
}

// withProgress shows a spinner on w while fn runs. The spinner is stopped
// before withProgress returns, including when fn panics.
func withProgress(w io.Writer, label string, fn func() bool) bool {
	sp := progress.Start(w, label)
	defer sp.Stop()
	return fn()
}

func runSend(ctx context.Context, args []string) int {
	f, err := parseSendFlags(args, time.Now())
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	log, err := setup(f.envFiles)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	raw, err := readReport(f.file, os.Stdin)
	if err != nil {
		log.ErrorContext(ctx, "failed to read report", logger.Error(err))
		return 1
	}

	p, err := buildPipeline(ctx, log, pipelineOptions{
		assetsDir: f.assetsDir,
		inlineCSS: f.inlineCSS,
		dryRunDir: f.dryRunDir,
	})
	if err != nil {
		log.ErrorContext(ctx, "failed to build pipeline", logger.Error(err))
		return 1
	}
	if !p.Available() {
		fmt.Fprint(os.Stderr, email.SetupInstructions)
		return 1
	}

	ok := withProgress(os.Stderr, "Sending report ...", func() bool {
		return p.Deliver(ctx, f.topic, f.date, raw)
	})
	if !ok {
		fmt.Fprintln(os.Stderr, "❌ Report was not delivered")
		return 1
	}
	fmt.Println("✅ Report delivered")
	return 0
}
