package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"brew-backend/internal/llm"
	"brew-backend/internal/llm/gemini"
	"brew-backend/internal/recommendations"
	"brew-backend/internal/shared/config"
	"brew-backend/internal/shared/server"
	"brew-backend/internal/shared/telemetry"
)

// newGenerator is swapped in tests.
var newGenerator = func(cfg config.Config) (llm.Generator, error) {
	if !cfg.HasAPIKey() {
		return nil, nil
	}
	return gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel, gemini.WithBaseURL(cfg.GeminiBaseURL))
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "brewctl",
		Short:         "Grind setting recommendations from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd(), newRecommendCmd())
	return root
}

func newServeCmd() *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if port != "" {
				cfg.Port = port
			}
			telemetry.Init(cfg.LogLevel)
			defer telemetry.Sync()

			return server.Run(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "listen port (defaults to PORT)")
	return cmd
}

func newRecommendCmd() *cobra.Command {
	var req recommendations.Request
	var model string
	var card bool
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Ask the model for a starting grind setting",
		Example: `  brewctl recommend --grinder "Baratza Encore" --beans "Ethiopian light roast" --machine AeroPress`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			telemetry.Init("error")
			if model != "" {
				cfg.GeminiModel = model
			}
			gen, err := newGenerator(cfg)
			if err != nil {
				return err
			}
			svc := recommendations.NewService(gen, cfg.LLMTimeout)
			raw, err := svc.Recommend(cmd.Context(), req)
			if err != nil {
				_, _, msg := recommendations.Describe(err)
				return errors.New(msg)
			}
			if card {
				return writeCard(cmd.OutOrStdout(), raw)
			}
			return writePretty(cmd.OutOrStdout(), raw)
		},
	}
	cmd.Flags().StringVar(&req.Grinder, "grinder", "", "grinder model")
	cmd.Flags().StringVar(&req.Beans, "beans", "", "coffee beans")
	cmd.Flags().StringVar(&req.Machine, "machine", "", "brew method or machine")
	cmd.Flags().StringVar(&model, "model", "", "model name (defaults to GEMINI_MODEL)")
	cmd.Flags().BoolVar(&card, "card", false, "print a readable summary instead of JSON")
	return cmd
}

func writePretty(w io.Writer, raw []byte) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err := w.Write(buf.Bytes())
	return err
}

func writeCard(w io.Writer, raw []byte) error {
	res, err := recommendations.ParseResult(raw)
	if err != nil {
		return err
	}
	res = res.WithDefaults()
	var b strings.Builder
	fmt.Fprintf(&b, "Recommended setting: %s (%s)\n", res.RecommendedSetting, res.Unit)
	fmt.Fprintf(&b, "Confidence: %s\n", res.Confidence)
	fmt.Fprintf(&b, "\n%s\n", res.Summary)
	if len(res.Sources) > 0 {
		b.WriteString("\nSources:\n")
		for _, src := range res.Sources {
			fmt.Fprintf(&b, "  - %s %s\n", src.Title, src.URL)
		}
	}
	_, err = io.WriteString(w, b.String())
	return err
}
