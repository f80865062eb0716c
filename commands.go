package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scorch-lang/scorch/driver"
	"github.com/scorch-lang/scorch/lexer"
	"github.com/scorch-lang/scorch/token"
	"github.com/spf13/cobra"
)

var (
	showTokens bool
	watch      bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a source file and print its syntax tree",
	Long: `Parse a source file and print its syntax tree as an S-expression.

Without a file the project's entry from scorch.toml is parsed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

var lexCmd = &cobra.Command{
	Use:   "lex file",
	Short: "Print the tokens of a source file, one per line",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read: %w", err)
		}
		printTokens(cmd.OutOrStdout(), lexer.Lex(string(source)))

		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the scorch version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "scorch %s\n", version)
	},
}

func init() {
	parseCmd.Flags().BoolVar(&showTokens, "tokens", false, "print the tokens before the tree")
	parseCmd.Flags().BoolVarP(&watch, "watch", "w", false, "parse again whenever the file changes")

	rootCmd.AddCommand(parseCmd, lexCmd, versionCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, cfgPath, err := loadConfig()
	if err != nil {
		return err
	}

	path := cfg.EntryPath(cfgPath)
	if len(args) == 1 {
		path = args[0]
	}

	d := newDriver(cfg)
	out := cmd.OutOrStdout()

	if watch {
		return d.Watch(cmd.Context(), path, func(result *driver.Result, err error) {
			if err := printResult(out, result, err); err != nil {
				report(cmd.ErrOrStderr(), err)
			}
		})
	}

	result, err := d.RunFile(path)

	return printResult(out, result, err)
}

func printResult(w io.Writer, result *driver.Result, err error) error {
	if result != nil && showTokens {
		printTokens(w, result.Tokens)
	}
	if err != nil {
		return failure(result, err)
	}

	fmt.Fprintln(w, result.Tree)

	return nil
}

func printTokens(w io.Writer, tokens []token.Token) {
	for _, tok := range tokens {
		fmt.Fprintln(w, tok)
	}
}
