package viz

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"runtime"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"

	"github.com/san-kum/mycodecay/internal/decay"
	"github.com/san-kum/mycodecay/internal/plot"
)

// PresentOptions controls how a run is shown once its plot is written.
type PresentOptions struct {
	// Interactive runs the Viewer when stdin and stdout are terminals.
	Interactive bool
	// Open hands the PNG to the platform image viewer.
	Open bool
	// Input replaces stdin for the viewer. When set, the viewer runs
	// without checking for a terminal and draws to Out.
	Input  io.Reader
	Theme  Theme
	Out    io.Writer
	Logger *slog.Logger
}

// Present displays the decay curve to the user. It returns an error
// wrapping context.Canceled if the user interrupts the viewer with Ctrl+C
// or the context is canceled while it is open.
func Present(ctx context.Context, run *decay.Run, a Artifacts, opts PresentOptions) error {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	if opts.Open {
		if err := OpenExternal(a.Plot); err != nil && opts.Logger != nil {
			opts.Logger.Warn("could not open plot viewer", "path", a.Plot, "err", err)
		}
	}

	if opts.Interactive && (opts.Input != nil || isTerminal()) {
		err := runViewer(ctx, run, a, opts)
		if err == nil {
			return nil
		}
		if errors.Is(err, tea.ErrInterrupted) || errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("viewer: %w", context.Canceled)
		}
		if opts.Logger != nil {
			opts.Logger.Warn("interactive viewer unavailable, printing preview", "err", err)
		}
	}

	_, err := fmt.Fprintf(opts.Out, "\n%s\n", plot.Preview(run, 70, 12))
	return err
}

func runViewer(ctx context.Context, run *decay.Run, a Artifacts, opts PresentOptions) error {
	progOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if opts.Input != nil {
		progOpts = append(progOpts, tea.WithInput(opts.Input), tea.WithOutput(opts.Out))
	}
	p := tea.NewProgram(NewViewer(run, a, opts.Theme), progOpts...)
	_, err := p.Run()
	return err
}

func isTerminal() bool {
	return term.IsTerminal(os.Stdin.Fd()) && term.IsTerminal(os.Stdout.Fd())
}

// OpenExternal launches the platform's default viewer for path without
// waiting for it to exit.
func OpenExternal(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}
