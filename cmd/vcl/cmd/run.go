package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/msto63/vcl/vcl"
	"github.com/msto63/vcl/vcl/executor"
)

var (
	runDryRun  bool
	runFFmpeg  string
	runPlayer  string
	runWorkDir string
	runTimeout time.Duration
)

var runCmd = &cobra.Command{
	Use:   "run <script>",
	Short: "Compile a script and execute its operations",
	Long: `Compile a VCL script and run the resulting operations in order.

Each operation spawns its external tool (ffmpeg or the media player).
Execution stops at the first failing invocation. Scripts that compile
with diagnostics are not executed. Use --dry-run to see what would run.`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().BoolVar(&runDryRun, "dry-run", false, "log invocations without running them")
	runCmd.Flags().StringVar(&runFFmpeg, "ffmpeg", "", "ffmpeg binary (default from config, then \"ffmpeg\")")
	runCmd.Flags().StringVar(&runPlayer, "player", "", "media player binary (default from config, then \"vlc\")")
	runCmd.Flags().StringVar(&runWorkDir, "workdir", "", "working directory for spawned processes")
	runCmd.Flags().DurationVar(&runTimeout, "timeout", 0, "per-invocation timeout (0 disables)")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
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

	if !result.Clean() {
		for _, d := range result.Diagnostics() {
			fmt.Fprintln(os.Stderr, d)
		}
		return fmt.Errorf("refusing to execute: %d diagnostics", len(result.Diagnostics()))
	}

	timeout := runTimeout
	if timeout == 0 {
		timeout = cfg.GetDuration("executor.timeout")
	}

	exec := executor.New(executor.Options{
		Logger:     logger,
		FFmpegPath: firstNonEmpty(runFFmpeg, cfg.GetString("executor.ffmpeg")),
		PlayerPath: firstNonEmpty(runPlayer, cfg.GetString("executor.player")),
		WorkDir:    firstNonEmpty(runWorkDir, cfg.GetString("executor.workdir")),
		Timeout:    timeout,
		DryRun:     runDryRun || cfg.GetBool("executor.dry_run"),
	})

	if err := exec.Execute(cmd.Context(), result.Operations); err != nil {
		printError("executing", err)
		return err
	}

	return nil
}
