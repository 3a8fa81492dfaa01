package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/vcl/vcl"
)

var scanCmd = &cobra.Command{
	Use:   "scan <script>",
	Short: "Show the token stream of a script",
	Long: `Tokenize a VCL script and print each token with its position.

Useful for checking how the lexer reads a script before parsing it.
Use "-" to read the script from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		printError("loading config", err)
		return err
	}
	logger := buildLogger(cfg)

	source, err := readSource(args[0])
	if err != nil {
		printError("reading input", err)
		return err
	}

	engine := vcl.NewEngine(vcl.Options{Logger: logger})
	tokens, diags, err := engine.Scan(source)
	if err != nil {
		printError("scanning", err)
		return err
	}

	for _, d := range diags {
		fmt.Fprintln(os.Stderr, d)
	}
	for _, tok := range tokens {
		fmt.Printf("%4d:%-4d %s\n", tok.Line, tok.Column, tok)
	}

	if len(diags) > 0 {
		return fmt.Errorf("%d diagnostics", len(diags))
	}
	return nil
}
