package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/vcl/vcl"
	"github.com/msto63/vcl/vcl/executor"
)

var (
	compileScript bool
	compileFFmpeg string
	compilePlayer string
)

var compileCmd = &cobra.Command{
	Use:   "compile <script>",
	Short: "Compile a script and show the resulting operations",
	Long: `Compile a VCL script and print the operations it describes.

Diagnostics go to stderr; the operation list goes to stdout. With
--script, a runnable shell script is printed instead of the plain
operation list. Use "-" to read the script from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: runCompile,
}

func init() {
	compileCmd.Flags().BoolVar(&compileScript, "script", false, "print a shell script instead of the operation list")
	compileCmd.Flags().StringVar(&compileFFmpeg, "ffmpeg", "", "ffmpeg binary for --script output")
	compileCmd.Flags().StringVar(&compilePlayer, "player", "", "media player binary for --script output")
	rootCmd.AddCommand(compileCmd)
}

func runCompile(cmd *cobra.Command, args []string) error {
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
	result, err := engine.Compile(source)
	if err != nil {
		printError("compiling", err)
		return err
	}

	for _, d := range result.Diagnostics() {
		fmt.Fprintln(os.Stderr, d)
	}

	if compileScript {
		exec := executor.New(executor.Options{
			Logger:     logger,
			FFmpegPath: firstNonEmpty(compileFFmpeg, cfg.GetString("executor.ffmpeg")),
			PlayerPath: firstNonEmpty(compilePlayer, cfg.GetString("executor.player")),
		})
		fmt.Print(exec.Script(result.Operations))
	} else {
		for i, op := range result.Operations {
			fmt.Printf("%3d  %s\n", i+1, op.Describe())
		}
	}

	if !result.Clean() {
		return fmt.Errorf("%d diagnostics", len(result.Diagnostics()))
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
