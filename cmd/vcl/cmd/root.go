package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/vcl/core/config"
	"github.com/msto63/vcl/core/log"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "vcl",
	Short: "VCL - Video Command Language compiler",
	Long: `VCL compiles small video-editing scripts into media tool invocations.

A script binds variables, guards statements with time comparisons, and
issues commands:

  let start = "00:10";
  frame "video.mp4" 10 to "frame10.bmp";
  audio "video.mp4" start "01:30" to "audio.mp3";
  play "video.mp4" start "01:30";

Commands:
  compile  - compile a script and show the resulting operations
  scan     - show the token stream of a script
  run      - compile a script and execute its operations
  version  - show version information`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (TOML or YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig loads the configured file, or an empty configuration when
// no file was given
func loadConfig() (*config.Config, error) {
	if cfgFile == "" {
		return config.New(), nil
	}
	return config.LoadWithOptions(cfgFile, config.LoadOptions{
		EnvPrefix: "VCL",
	})
}

// buildLogger creates the CLI logger honoring config and --verbose
func buildLogger(cfg *config.Config) *log.Logger {
	level := log.LevelWarn
	if parsed, err := log.ParseLevel(cfg.GetString("log.level")); err == nil && cfg.Has("log.level") {
		level = parsed
	}
	if verbose {
		level = log.LevelDebug
	}

	format := log.FormatConsole
	if parsed, err := log.ParseFormat(cfg.GetString("log.format")); err == nil && cfg.Has("log.format") {
		format = parsed
	}

	return log.NewWithConfig(log.Config{
		Level:  level,
		Format: format,
		Output: os.Stderr,
		Name:   "vcl",
	})
}

// readSource reads the script from the given path, or from stdin when
// the path is "-"
func readSource(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read script: %w", err)
	}
	return string(data), nil
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
}
