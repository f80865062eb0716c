package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/scorch-lang/scorch/config"
	"github.com/scorch-lang/scorch/diag"
	"github.com/scorch-lang/scorch/driver"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

var (
	inputPath string
	cfgFile   string
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "scorch",
	Short: "Lexer and parser for the scorch language",
	Long: `scorch turns .sr source files into syntax trees.

Without a subcommand it parses the file given with -i, or starts an
interactive prompt.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if inputPath != "" {
			return runParse(cmd, []string{inputPath})
		}

		return runPrompt(cmd)
	},
}

func init() {
	const inputUsage = "input file path"

	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "", inputUsage)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: scorch.toml in the working directory or a parent)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log progress to stderr")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		report(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads --config, or the nearest scorch.toml, and checks the
// project's version requirement. It returns the path it loaded from.
func loadConfig() (*config.Config, string, error) {
	var (
		cfg  *config.Config
		path string
		err  error
	)
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
		path = cfgFile
	} else {
		var wd string
		wd, err = os.Getwd()
		if err != nil {
			return nil, "", err
		}
		cfg, path, err = config.FindAndLoad(wd)
	}
	if err != nil {
		return nil, "", err
	}

	if err := cfg.Check(version); err != nil {
		return nil, "", err
	}

	return cfg, path, nil
}

func newDriver(cfg *config.Config) *driver.Driver {
	opts := driver.Options{PrecedenceClimbing: cfg.Parser.PrecedenceClimbing}
	if verbose {
		opts.Logger = log.New(os.Stderr, "scorch: ", 0)
	}

	return driver.New(opts)
}

// failure prefers the full batch of lexical diagnostics over err.
func failure(result *driver.Result, err error) error {
	if result != nil {
		if lexical := result.Lexical.Err(); lexical != nil {
			return lexical
		}
	}

	return err
}

// report prints err to w. Lexical errors are listed with their count.
func report(w io.Writer, err error) {
	var lexical diag.List
	if errors.As(err, &lexical) {
		for _, d := range lexical {
			fmt.Fprintf(w, "Error: %v\n", d)
		}
		fmt.Fprintf(w, "Total errors: %d\n", len(lexical))

		return
	}

	if errs, ok := err.(interface{ Unwrap() []error }); ok {
		for _, err := range errs.Unwrap() {
			fmt.Fprintf(w, "Error: %v\n", err)
		}

		return
	}

	fmt.Fprintf(w, "Error: %v\n", err)
}
