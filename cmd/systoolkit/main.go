package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	multierror "github.com/hashicorp/go-multierror"
	"github.com/steelcutops/systoolkit/config"
	"github.com/steelcutops/systoolkit/logger"
	"github.com/steelcutops/systoolkit/toolkit"
	"golang.org/x/term"
)

type step struct {
	Label string
	Run   func(ctx context.Context, w io.Writer) error
}

func main() {
	cfg, log, closeLog := loadConfig(os.Stderr)
	defer closeLog()

	tk := toolkit.New(
		toolkit.WithLogger(log),
		toolkit.WithShell(cfg.Shell),
		toolkit.WithSudoPassword(cfg.SudoPassword),
	)
	steps := demoSteps(tk, cfg.Demo, terminalWidth(os.Stdout))

	if err := runDemo(context.Background(), os.Stdout, steps, log); err != nil {
		var merr *multierror.Error
		if errors.As(err, &merr) {
			log.Warn("Demo finished with errors", "count", merr.Len())
		}
	}
}

// loadConfig reads the configuration named by SYSTOOLKIT_CONFIG. A file that
// cannot be read is reported through a default logger and the defaults are
// used instead.
func loadConfig(stderr io.Writer) (config.Config, logger.Logger, func()) {
	cfg, err := config.FromEnv()
	if err != nil {
		cfg = config.Default()
		log, closeLog := configureLogger(cfg.Log, stderr)
		log.Warn("Failed to load config, using defaults", "file", os.Getenv(config.EnvPath), "error", err)
		return cfg, log, closeLog
	}
	log, closeLog := configureLogger(cfg.Log, stderr)
	return cfg, log, closeLog
}

// configureLogger writes to c.File when set, otherwise to stderr.
func configureLogger(c config.LogConfig, stderr io.Writer) (logger.Logger, func()) {
	opts := logger.Options{Output: stderr, Level: c.Level, JSON: c.Format == "json"}
	if c.File == "" {
		return logger.NewWithOptions(opts), func() {}
	}

	file, err := os.OpenFile(c.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		l := logger.NewWithOptions(opts)
		l.Error("Failed to open log file, logging to stderr", "file", c.File, "error", err)
		return l, func() {}
	}
	opts.Output = file
	return logger.NewWithOptions(opts), func() { file.Close() }
}

// runDemo runs every step in order, printing a label before each. A failing
// step does not stop the sequence; all failures come back as one
// *multierror.Error.
func runDemo(ctx context.Context, w io.Writer, steps []step, log logger.Logger) error {
	var result *multierror.Error
	for i, s := range steps {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s:\n", s.Label)

		if err := s.Run(ctx, w); err != nil {
			log.Debug("Demo step failed", "step", s.Label, "error", err)
			result = multierror.Append(result, fmt.Errorf("%s: %w", s.Label, err))
		}
	}

	if result != nil {
		for _, err := range result.Errors {
			log.Error("Demo step error", "error", err)
		}
		return result
	}
	return nil
}

func demoSteps(tk *toolkit.Toolkit, demo config.DemoConfig, width int) []step {
	return []step{
		{"Shell Command Output", func(ctx context.Context, w io.Writer) error {
			out, err := tk.RunShellCommand(ctx, demo.Command)
			fmt.Fprintln(w, out)
			return err
		}},
		{fmt.Sprintf("Files in '%s'", demo.ListPath), func(ctx context.Context, w io.Writer) error {
			files, err := tk.ListFilesInDirectory(ctx, demo.ListPath)
			if err != nil {
				fmt.Fprintf(w, "Error: %v\n", err)
				return err
			}
			fmt.Fprintf(w, "[%s]\n", strings.Join(files, ", "))
			return nil
		}},
		{"System Information", func(ctx context.Context, w io.Writer) error {
			info, err := tk.GetSystemInfo(ctx)
			if err != nil {
				fmt.Fprintf(w, "Error: %v\n", err)
				return err
			}
			fmt.Fprintf(w, "OS: %s\nOS Version: %s\nProcessor: %s\nArchitecture: %s\n",
				info.OS, info.OSVersion, info.Processor, info.Architecture)
			return nil
		}},
		{"Disk Usage Information", func(ctx context.Context, w io.Writer) error {
			du, err := tk.CheckDiskUsage(ctx, demo.DiskPath)
			if err != nil {
				fmt.Fprintf(w, "Error: %v\n", err)
				return err
			}
			fmt.Fprintf(w, "Total: %d\nUsed: %d\nFree: %d\nPercent: %.1f\n", du.Total, du.Used, du.Free, du.UsedPercent())
			return nil
		}},
		{"Running Processes", func(ctx context.Context, w io.Writer) error {
			procs, err := tk.GetRunningProcesses(ctx)
			if err != nil {
				fmt.Fprintf(w, "Error: %v\n", err)
				return err
			}
			for _, p := range procs {
				fmt.Fprintln(w, truncate(fmt.Sprintf("%7d  %s", p.PID, p.Name), width))
			}
			return nil
		}},
		{"System Uptime", func(ctx context.Context, w io.Writer) error {
			boot, err := tk.GetUptime(ctx)
			if err != nil {
				fmt.Fprintf(w, "Error: %v\n", err)
				return err
			}
			fmt.Fprintln(w, boot)
			return nil
		}},
		{"Creating a New Directory", func(ctx context.Context, w io.Writer) error {
			err := tk.CreateDirectory(ctx, demo.NewDirectory)
			fmt.Fprintln(w, toolkit.DescribeCreateDirectory(demo.NewDirectory, err))
			return err
		}},
		{"Check if a File Exists", func(ctx context.Context, w io.Writer) error {
			fmt.Fprintln(w, tk.CheckIfFileExists(ctx, demo.ExistsPath))
			return nil
		}},
		{"Copying a File", func(ctx context.Context, w io.Writer) error {
			err := tk.CopyFile(ctx, demo.CopySource, demo.CopyDestination)
			fmt.Fprintln(w, toolkit.DescribeCopyFile(demo.CopySource, demo.CopyDestination, err))
			return err
		}},
		{"Kill Process", func(ctx context.Context, w io.Writer) error {
			err := tk.KillProcess(ctx, demo.KillPID)
			fmt.Fprintln(w, toolkit.DescribeKillProcess(demo.KillPID, err))
			return err
		}},
		{"MAC Address", func(ctx context.Context, w io.Writer) error {
			mac, err := tk.GetMACAddress(ctx)
			fmt.Fprintln(w, toolkit.DescribeMACAddress(mac, err))
			return err
		}},
	}
}

// terminalWidth returns the column count of f, or 0 when f is not a terminal.
func terminalWidth(f *os.File) int {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return width
}

func truncate(line string, width int) string {
	if width <= 0 {
		return line
	}
	runes := []rune(line)
	if len(runes) <= width {
		return line
	}
	return string(runes[:width])
}
