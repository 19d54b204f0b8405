package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/marcus-grant/timerterm/internal/countdown"
	"github.com/marcus-grant/timerterm/internal/interrupt"
	"github.com/marcus-grant/timerterm/internal/log"
	"github.com/marcus-grant/timerterm/internal/timespec"
)

var (
	greetingStyle = lipgloss.NewStyle().Bold(true)

	doneNotice      = color.New(color.FgGreen)
	interruptNotice = color.New(color.FgYellow)
)

// New creates the root command.
func New() *cobra.Command {
	return &cobra.Command{
		Use:   "timerterm [duration]",
		Short: "Terminal countdown timer",
		Long: `A countdown timer for the terminal. The duration is given as plain
seconds, MM:SS, or HH:MM:SS; without one the timer runs for 10 minutes.
Ctrl+C stops the timer early and still exits cleanly.`,
		// The whole surface is positional: one optional time
		// specification and nothing else. Flag parsing stays off so
		// the argument list reaches the parser untouched, and
		// anything unrecognized falls back to the default duration
		// instead of erroring.
		DisableFlagParsing: true,
		RunE:               runTimer,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
}

func runTimer(cmd *cobra.Command, args []string) error {
	// The parser ignores argv[0], it only cares about arity.
	argv := append([]string{cmd.Name()}, args...)
	seconds := timespec.FromArgs(argv)
	log.Debug("duration resolved", "argv", argv[1:], "seconds", seconds, "clock", timespec.Format(seconds))

	interrupt.Install()

	// Capture terminal state up front so every exit path can put the
	// terminal back the way it was.
	restore := saveTerminal()
	defer restore()

	greeting := fmt.Sprintf("timerterm: counting down %s", timespec.Format(seconds))
	if term.IsTerminal(int(os.Stdout.Fd())) {
		greeting = greetingStyle.Render(greeting)
	}
	fmt.Fprintln(cmd.OutOrStdout(), greeting)

	reason := countdown.Run(time.Duration(seconds)*time.Second, interrupt.Requested)

	switch reason {
	case countdown.Interrupted:
		_, _ = interruptNotice.Fprintln(cmd.OutOrStdout(), "interrupted, stopping early")
	default:
		_, _ = doneNotice.Fprintln(cmd.OutOrStdout(), "time's up")
	}

	// Interrupted and elapsed are both successful completions.
	return nil
}

// saveTerminal records the state of the controlling terminal and
// returns a func that restores it. When stdin is not a terminal there
// is nothing to restore and the returned func is a no-op.
func saveTerminal() func() {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return func() {}
	}
	state, err := term.GetState(fd)
	if err != nil {
		log.Warn("could not read terminal state", "error", err)
		return func() {}
	}
	return func() {
		if err := term.Restore(fd, state); err != nil {
			log.Warn("could not restore terminal state", "error", err)
		}
	}
}
