package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sharath018/temple-donation-docs/internal/modal"
	"github.com/sharath018/temple-donation-docs/internal/pdfdoc"
	"github.com/sharath018/temple-donation-docs/internal/receipt"
	"github.com/sharath018/temple-donation-docs/internal/report"
)

const (
	kindReceipt = "receipt"
	kindReport  = "report"
)

// confirmFunc shows base with a confirm dialog and reports the answer.
type confirmFunc func(title, base, question string) (bool, error)

// runConfirm runs the confirm modal as a full-screen bubbletea program.
func runConfirm(title, base, question string) (bool, error) {
	m := modal.NewConfirm(title, base, question)
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run(); err != nil {
		return false, fmt.Errorf("run preview: %w", err)
	}
	return m.Confirmed, nil
}

func newPreviewCmd(opts *rootOpts, confirm confirmFunc) *cobra.Command {
	var aggregate bool

	cmd := &cobra.Command{
		Use:       "preview (receipt|report) [file]",
		Short:     "Show a document's layout and save it after confirmation",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{kindReceipt, kindReport},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := args[0]
			if kind != kindReceipt && kind != kindReport {
				return fmt.Errorf("unknown document %q: must be receipt or report", kind)
			}
			data, err := readInput(args[1], cmd.InOrStdin())
			if err != nil {
				return err
			}
			return runPreview(cmd, kind, data, aggregate, opts, confirm)
		},
	}

	cmd.Flags().BoolVar(&aggregate, "aggregate", false, "report input is a list of donations; compute the totals")
	return cmd
}

func runPreview(cmd *cobra.Command, kind string, data []byte, aggregate bool, opts *rootOpts, confirm confirmFunc) error {
	logger := loggerFromContext(cmd.Context())

	s, err := opts.settings()
	if err != nil {
		return err
	}
	saver, err := opts.saver(cmd.Context())
	if err != nil {
		return err
	}
	// the outline and the saved file must agree on the report date
	now := s.Clock()
	s.Now = func() time.Time { return now }

	var (
		sections []pdfdoc.Section
		name     string
		generate func() (string, error)
	)

	switch kind {
	case kindReceipt:
		rec, err := decodeRecord(data)
		if err != nil {
			return err
		}
		sections = receipt.Plan(rec, s.Theme)
		name = receipt.FileName(rec, now)
		generate = func() (string, error) { return receipt.Generate(rec, saver, s) }
	case kindReport:
		g, err := decodeGroup(data, aggregate)
		if err != nil {
			return err
		}
		sections = report.Plan(g, now, s.Theme)
		name = report.FileName(g, now)
		generate = func() (string, error) { return report.Generate(g, saver, s) }
	}

	base := outline(name, sections)
	ok, err := confirm("Save "+kind, base, fmt.Sprintf("Save %s?", opts.location(name)))
	if err != nil {
		return err
	}
	if !ok {
		logger.Info("Preview closed, nothing saved")
		return nil
	}

	saved, err := generate()
	if err != nil {
		return err
	}
	logger.Info("Saved", "file", saved)
	printSaved(cmd.OutOrStdout(), opts.location(saved))
	return nil
}
