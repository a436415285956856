package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/dmitrymomot/deepreport/pkg/email"
	"github.com/dmitrymomot/deepreport/pkg/email/templates"
)

// sampleReport exercises every markup rule the converter knows.
const sampleReport = `
# AI Research Report

- **DeepMind's Gemini AI clinches gold at International Mathematical Olympiad** ([www.reuters.com](https://www.reuters.com/technology/ai-intelligencer-how-ai-won-math-gold-2025-07-24/)).

This is a **bold text** with *italic text* and some ` + "`code`" + ` formatting, followed by enough words to make it a paragraph.

Here's another link: [OpenAI](https://openai.com) and [Google](https://google.com), again long enough to be a paragraph.

1. **First headline** with a link to [GitHub](https://github.com)
2. **Second headline** with *emphasis* and ` + "`inline code`" + `
`

func runCheck(ctx context.Context, args []string) int {
	var (
		assetsDir string
		envFiles  []string
		dryRunDir string
	)
	fs := pflag.NewFlagSet("check", pflag.ContinueOnError)
	fs.StringVar(&assetsDir, "assets", templates.DefaultDir, "Directory holding "+templates.DefaultFile)
	fs.StringSliceVar(&envFiles, "env", nil, "Extra .env files; later files win")
	fs.StringVar(&dryRunDir, "dry-run", "", "Write the sample email to this directory instead of sending it")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	log, err := setup(envFiles)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	fmt.Println("🧪 Testing Email Functionality")
	fmt.Println(strings.Repeat("=", 50))

	p, err := buildPipeline(ctx, log, pipelineOptions{assetsDir: assetsDir, inlineCSS: true, dryRunDir: dryRunDir})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if !p.Available() {
		fmt.Println("❌ Email not configured!")
		fmt.Print(email.SetupInstructions)
		return 1
	}
	fmt.Println("✅ Email configuration found")

	fmt.Println("🔗 Testing connection ...")
	if !p.TestConnection() {
		fmt.Println("❌ Connection failed! Check your API key.")
		return 1
	}
	fmt.Println("✅ Connection successful!")

	fmt.Println("📧 Sending test email ...")
	if !p.Deliver(ctx, "Markdown Test", "2024-01-01", sampleReport) {
		fmt.Println("❌ Failed to send test email!")
		return 1
	}
	fmt.Println("✅ Test email sent successfully!")
	fmt.Println("📬 Check your inbox for the test email.")
	return 0
}
