// Command dndreplay runs drag-and-drop scenario scripts against a surface
// and prints the resulting event trace.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/phanxgames/dnd"
	"github.com/phanxgames/dnd/scenario"
)

var (
	version = "dev"
	commit  = "unknown"
)

var errFailed = errors.New("one or more scenarios failed")

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		opts    scenario.RunOptions
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "dndreplay FILE...",
		Short: "Replay drag-and-drop scenario scripts",
		Long: `Runs each YAML or JSON scenario script against a fresh surface and
prints every emitted transition. Scripts with an expect list are checked
and a diff is printed on mismatch.`,
		Version:      fmt.Sprintf("%s (%s)", version, commit),
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				color.NoColor = true
			}
			if _, err := scenario.ParseHoverPolicy(opts.Hover); err != nil {
				return err
			}
			if _, err := scenario.ParseAnchorMode(opts.Anchor); err != nil {
				return err
			}

			failed := 0
			for _, path := range args {
				ok, err := replay(cmd.OutOrStdout(), path, opts)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				if !ok {
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%w: %d of %d", errFailed, failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Hover, "hover", "", "Hover policy override: symmetric or legacy")
	cmd.Flags().StringVar(&opts.Anchor, "anchor", "", "Anchor override: center or legacy")
	cmd.Flags().BoolVar(&opts.Debug, "debug", false, "Log surface transitions to stderr")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	return cmd
}

// replay runs one script and prints its trace. It reports whether the run
// matched its expectations.
func replay(w io.Writer, path string, opts scenario.RunOptions) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	sc, err := scenario.Load(data)
	if err != nil {
		return false, err
	}
	res, err := scenario.Run(sc, opts)
	if err != nil {
		return false, err
	}

	bold := color.New(color.Bold)
	bold.Fprintf(w, "== %s\n", path)
	for _, e := range res.Events {
		eventColor(e.Type).Fprintf(w, "  %s\n", e)
	}

	switch {
	case !res.Checked:
		color.New(color.Faint).Fprintln(w, "-- no expectations")
	case res.Passed():
		color.New(color.FgGreen, color.Bold).Fprintln(w, "PASS")
	default:
		color.New(color.FgRed, color.Bold).Fprintln(w, "FAIL (-want +got):")
		fmt.Fprint(w, res.Diff)
	}
	return res.Passed(), nil
}

func eventColor(t dnd.EventType) *color.Color {
	switch t {
	case dnd.EventDragStart, dnd.EventDragEnd:
		return color.New(color.FgCyan)
	case dnd.EventEnter:
		return color.New(color.FgYellow)
	case dnd.EventLeave:
		return color.New(color.FgMagenta)
	case dnd.EventDrop:
		return color.New(color.FgGreen)
	default:
		return color.New(color.Reset)
	}
}
