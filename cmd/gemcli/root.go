package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gemcore/gemcore"
)

var (
	flagModel    string
	flagSystem   string
	flagVerbose  bool
	flagThinking string
	flagTemp     float64
)

var rootCmd = &cobra.Command{
	Use:   "gemcli",
	Short: "Chat with Gemini models from the command line",
	Long: `Gemcli sends prompts to Gemini models through the gemcore facade.

Configuration comes from the environment (GOOGLE_API_KEY, GEMINI_MODEL),
a .env file, or a gemcore.yaml config file.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagModel, "model", "", "model ID (default from GEMINI_MODEL)")
	rootCmd.PersistentFlags().StringVar(&flagSystem, "system", "", "system instruction")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagThinking, "thinking", "", "thinking level (low, high)")
	rootCmd.PersistentFlags().Float64Var(&flagTemp, "temperature", -1, "sampling temperature")
}

// newClient builds a gemcore client from the environment and global flags.
func newClient(ctx context.Context) (*gemcore.Client, error) {
	opts := []gemcore.ClientOption{}
	if flagModel != "" {
		opts = append(opts, gemcore.WithDefaultModel(flagModel))
	}
	if flagSystem != "" {
		opts = append(opts, gemcore.WithSystem(flagSystem))
	}
	if flagVerbose {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		opts = append(opts, gemcore.WithLogger(logger))
	}
	return gemcore.New(ctx, opts...)
}

// generateOptions translates global flags into per-request options.
func generateOptions() []gemcore.Option {
	var opts []gemcore.Option
	if flagThinking != "" {
		opts = append(opts, gemcore.WithThinkingLevel(gemcore.ThinkingLevel(flagThinking)))
	}
	if flagTemp >= 0 {
		opts = append(opts, gemcore.WithTemperature(flagTemp))
	}
	return opts
}
