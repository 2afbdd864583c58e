package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/muesli/coral"

	"github.com/gonkalabs/stripcomments/internal/config"
	"github.com/gonkalabs/stripcomments/internal/pipeline"
	"github.com/gonkalabs/stripcomments/internal/stream"
)

// logLevel is shared by the default handler so config can raise or lower it
// after startup.
var logLevel = new(slog.LevelVar)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

	if err := newRootCmd().Execute(); err != nil {
		slog.Error("stripcomments failed", "err", err)
		os.Exit(1)
	}
}

type flags struct {
	output     string
	configPath string
	cStyle     bool
	xmlStyle   bool
	shellStyle bool
	keepBlank  bool
	verbose    bool
}

func newRootCmd() *coral.Command {
	var f flags

	cmd := &coral.Command{
		Use:   "stripcomments [INPUT]",
		Short: "Strip comments and blank lines from source text",
		Long: `stripcomments removes comments from C-like, shell-like or XML-like text.
Blank lines left behind are removed as well unless --no-remove-blank-lines is set.
INPUT defaults to standard input, the result goes to standard output unless -o is given.`,
		Args:          coral.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *coral.Command, args []string) error {
			var input string
			if len(args) == 1 {
				input = args[0]
			}
			return run(cmd, f, input)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.output, "output", "o", "", "write the result to this file instead of standard output")
	fl.StringVar(&f.configPath, "config", "", "YAML file with default settings")
	fl.BoolVar(&f.cStyle, "c-style", false, "strip // and /* */ comments")
	fl.BoolVar(&f.xmlStyle, "xml-style", false, "strip <!-- --> comments")
	fl.BoolVar(&f.shellStyle, "shell-style", false, "strip # comments (default)")
	fl.BoolVar(&f.keepBlank, "no-remove-blank-lines", false, "keep blank lines")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "log debug information to standard error")

	return cmd
}

// options merges the configuration layers with the command-line flags,
// flags winning.
func (f flags) options(cfg *config.Cfg) (pipeline.Options, error) {
	var chosen []pipeline.Style
	if f.cStyle {
		chosen = append(chosen, pipeline.StyleC)
	}
	if f.xmlStyle {
		chosen = append(chosen, pipeline.StyleXML)
	}
	if f.shellStyle {
		chosen = append(chosen, pipeline.StyleShell)
	}

	var style pipeline.Style
	switch len(chosen) {
	case 0:
		s, err := pipeline.ParseStyle(cfg.Style)
		if err != nil {
			return pipeline.Options{}, err
		}
		style = s
	case 1:
		style = chosen[0]
	default:
		return pipeline.Options{}, errors.New("--c-style, --xml-style and --shell-style are mutually exclusive")
	}

	return pipeline.Options{
		Style:            style,
		RemoveBlankLines: cfg.RemoveBlankLines && !f.keepBlank,
	}, nil
}

func run(cmd *coral.Command, f flags, input string) error {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	logLevel.Set(cfg.LogLevel)
	if f.verbose {
		logLevel.Set(slog.LevelDebug)
	}

	opts, err := f.options(cfg)
	if err != nil {
		return err
	}

	in, err := stream.OpenInput(input, cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("could not open input: %w", err)
	}
	defer in.Close()
	if input == "" && stream.IsTerminal(cmd.InOrStdin()) {
		slog.Info("reading from terminal, finish input with Ctrl-D")
	}

	out := stream.OpenOutput(f.output, cmd.OutOrStdout())
	res, err := pipeline.Run(in, out, opts)
	if err != nil {
		out.Discard()
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	slog.Debug("done",
		"input", input,
		"output", f.output,
		"style", opts.Style,
		"comments", res.Comments,
		"blankLines", res.BlankLines,
	)
	return nil
}
