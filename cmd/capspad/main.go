package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dyne/capspad/internal/buildinfo"
	"github.com/dyne/capspad/internal/config"
	"github.com/dyne/capspad/internal/log"
	"github.com/dyne/capspad/internal/plan"
	"github.com/dyne/capspad/internal/session"
	"github.com/dyne/capspad/internal/transform"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

type globalOptions struct {
	Verbose bool
	Config  string
	Case    string
	Locale  string
	Plugins []string
	Color   bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootOpts := &globalOptions{}
	var usePrompt bool
	var noBanner bool
	root := &cobra.Command{
		Use:           "capspad",
		Short:         "Uppercase and space out lines of text interactively",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd, rootOpts)
			if err != nil {
				return err
			}
			tr, err := transform.BuildPipeline(cfg)
			if err != nil {
				return err
			}
			theme := session.PlainTheme()
			if cfg.Color {
				theme = session.ColorTheme()
			}
			return session.Run(cmd.Context(), session.Options{
				In:          lineReader(cmd, usePrompt),
				Out:         cmd.OutOrStdout(),
				Transformer: tr,
				Theme:       theme,
				Banner:      cfg.ShowBanner() && !noBanner,
				Logger:      logger,
			})
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVar(&rootOpts.Verbose, "verbose", false, "enable debug logging on stderr")
	pf.StringVar(&rootOpts.Config, "config", "", "YAML configuration file")
	pf.StringVar(&rootOpts.Case, "case", "", "case policy (ascii|unicode|locale)")
	pf.StringVar(&rootOpts.Locale, "locale", "", "language tag for --case locale")
	pf.StringSliceVar(&rootOpts.Plugins, "plugin", nil, "plugin .so path (repeatable)")
	pf.BoolVar(&rootOpts.Color, "color", false, "style headings and errors")
	root.Flags().BoolVar(&usePrompt, "prompt", false, "use line editing when stdin is a terminal")
	root.Flags().BoolVar(&noBanner, "no-banner", false, "skip the startup banner")

	root.AddCommand(transformCmd(rootOpts))
	root.AddCommand(planCmd(rootOpts))
	root.AddCommand(versionCmd())
	return root
}

func transformCmd(rootOpts *globalOptions) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "transform [TEXT...]",
		Short: "Transform each argument, or each stdin line, and print the results",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd, rootOpts)
			if err != nil {
				return err
			}
			tr, err := transform.BuildPipeline(cfg)
			if err != nil {
				return err
			}
			emit := plainEmitter(cmd.OutOrStdout(), tr, logger)
			if asJSON {
				emit = jsonEmitter(cmd.OutOrStdout(), tr)
			}
			if len(args) > 0 {
				for _, a := range args {
					if err := emit(a); err != nil {
						return err
					}
				}
				return nil
			}
			return eachLine(cmd.InOrStdin(), emit)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, `print one {"original","transformed","length"} object per input`)
	return cmd
}

func plainEmitter(out io.Writer, tr transform.Transformer, logger *log.Logger) func(string) error {
	return func(line string) error {
		if line == "" {
			logger.Infof("skipping line: %v", session.ErrEmptyInput)
			return nil
		}
		res, err := tr.Transform(line)
		if err != nil {
			return fmt.Errorf("transform %q: %w", line, err)
		}
		_, err = fmt.Fprintln(out, res)
		return err
	}
}

type jsonResult struct {
	Original    string `json:"original"`
	Transformed string `json:"transformed"`
	Length      int    `json:"length"`
}

type jsonError struct {
	Error string `json:"error"`
}

// jsonEmitter writes one object per input. Empty or failing inputs produce an
// error object so output lines stay aligned with input lines.
func jsonEmitter(out io.Writer, tr transform.Transformer) func(string) error {
	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)
	return func(line string) error {
		if line == "" {
			return enc.Encode(jsonError{Error: "text field is required"})
		}
		res, err := tr.Transform(line)
		if err != nil {
			return enc.Encode(jsonError{Error: fmt.Sprintf("failed to transform text: %v", err)})
		}
		return enc.Encode(jsonResult{
			Original:    line,
			Transformed: res,
			Length:      transform.Measure(line, res).TransformedLen,
		})
	}
}

func planCmd(rootOpts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "plan TEXT",
		Short: "Show each pipeline stage applied to TEXT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd, rootOpts)
			if err != nil {
				return err
			}
			return plan.Run(cmd.Context(), cmd.OutOrStdout(), args[0], cfg, logger)
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
		},
	}
}

// setup loads plugins and configuration, applies flag overrides and builds the logger.
func setup(cmd *cobra.Command, rootOpts *globalOptions) (*config.Config, *log.Logger, error) {
	level := log.LevelInfo
	if rootOpts.Verbose {
		level = log.LevelDebug
	}
	logger := log.New(level, cmd.ErrOrStderr())
	if err := transform.LoadPlugins(rootOpts.Plugins); err != nil {
		return nil, nil, err
	}
	cfg, err := config.Load(rootOpts.Config)
	if err != nil {
		return nil, nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("case") {
		cfg.Case = rootOpts.Case
	}
	if flags.Changed("locale") {
		cfg.Locale = rootOpts.Locale
	}
	if flags.Changed("color") {
		cfg.Color = rootOpts.Color
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	logger.Debugf("config loaded: case=%s stages=%d plugins=%v", cfg.Case, len(cfg.Pipeline), transform.Registered())
	return cfg, logger, nil
}

func lineReader(cmd *cobra.Command, usePrompt bool) session.LineReader {
	in := cmd.InOrStdin()
	if usePrompt && in == os.Stdin && isTerminal(os.Stdin) {
		return session.NewPromptReader(nil, nil)
	}
	return session.NewLineReader(in, cmd.OutOrStdout())
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func eachLine(r io.Reader, fn func(string) error) error {
	lr := session.NewLineReader(r, nil)
	for {
		line, err := lr.ReadLine("")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}
		if err := fn(line); err != nil {
			return err
		}
	}
}
