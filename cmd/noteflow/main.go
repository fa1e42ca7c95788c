// Package main implements the noteflow CLI, a thin harness over the
// classification-and-extraction pipeline for local runs and debugging.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/fyrsmithlabs/noteflow/internal/config"
	"github.com/fyrsmithlabs/noteflow/internal/logging"
	"github.com/fyrsmithlabs/noteflow/internal/pipeline"
)

var (
	configPath string
	trigger    string
	version    = "dev"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "noteflow",
	Short: "Classify and extract structured content from note text",
	Long: `noteflow reads OCR'd note text and runs it through the
classification-and-extraction pipeline: note-type classification
(explicit trigger, heuristics, optional LLM) plus typed extraction of
todos, events, contacts, and shopping lists.

Examples:
  # Classify and extract from a file
  noteflow process note.txt

  # Read from stdin with an explicit trigger
  cat note.txt | noteflow process --trigger '#todo#' -

  # Classification only
  noteflow classify note.txt`,
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/noteflow/config.yaml)")
	processCmd.Flags().StringVar(&trigger, "trigger", "", "explicit hashtag trigger, e.g. '#todo#'")
	classifyCmd.Flags().StringVar(&trigger, "trigger", "", "explicit hashtag trigger, e.g. '#todo#'")
	rootCmd.AddCommand(processCmd)
	rootCmd.AddCommand(classifyCmd)
}

var processCmd = &cobra.Command{
	Use:   "process [file]",
	Short: "Classify text and extract its structured content",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, text, err := setup(args)
		if err != nil {
			return err
		}
		result := p.Process(cmd.Context(), text, trigger)
		return printJSON(cmd.OutOrStdout(), result)
	},
}

var classifyCmd = &cobra.Command{
	Use:   "classify [file]",
	Short: "Classify text without extraction",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, text, err := setup(args)
		if err != nil {
			return err
		}
		cls := p.Classifier().Classify(cmd.Context(), text, trigger)
		return printJSON(cmd.OutOrStdout(), cls)
	},
}

// setup loads config, builds the pipeline, and reads the input text
// from the file argument or stdin ("-" or no argument).
func setup(args []string) (*pipeline.Pipeline, string, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, "", err
	}
	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return nil, "", err
	}
	p, err := pipeline.FromConfig(cfg, logger, nil)
	if err != nil {
		return nil, "", err
	}

	var r io.Reader = os.Stdin
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, "", fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		r = f
	}
	text, err := io.ReadAll(r)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read input: %w", err)
	}
	return p, string(text), nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
