package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sharath018/temple-donation-docs/internal/donation"
	"github.com/sharath018/temple-donation-docs/internal/report"
)

const (
	formatPDF  = "pdf"
	formatXLSX = "xlsx"
)

type reportOpts struct {
	aggregate bool
	format    string
}

func newReportCmd(opts *rootOpts) *cobra.Command {
	ropts := reportOpts{format: formatPDF}

	cmd := &cobra.Command{
		Use:   "report [file]",
		Short: "Render a donor summary report from a JSON donor group (- for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(ropts.format); err != nil {
				return err
			}
			data, err := readInput(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			g, err := decodeGroup(data, ropts.aggregate)
			if err != nil {
				return err
			}
			return runReport(cmd.Context(), g, ropts.format, opts, cmd)
		},
	}

	cmd.Flags().BoolVar(&ropts.aggregate, "aggregate", false, "input is a list of donations; compute the totals")
	cmd.Flags().StringVarP(&ropts.format, "format", "f", ropts.format, "output format: pdf (default), xlsx")

	return cmd
}

func validateFormat(format string) error {
	switch strings.ToLower(format) {
	case formatPDF, formatXLSX:
		return nil
	}
	return fmt.Errorf("invalid format %q: must be pdf or xlsx", format)
}

func runReport(ctx context.Context, g donation.DonorGroup, format string, opts *rootOpts, cmd *cobra.Command) error {
	logger := loggerFromContext(ctx)

	s, err := opts.settings()
	if err != nil {
		return err
	}

	saver, err := opts.saver(ctx)
	if err != nil {
		return err
	}

	logger.Debug("rendering report", "donor", g.UserInfo.Name, "donations", len(g.Donations), "format", format)
	prog := newProgress(logger)

	var name string
	if strings.ToLower(format) == formatXLSX {
		now := s.Clock()
		data, err := report.ExportExcel(g, now)
		if err != nil {
			return err
		}
		name = report.ExcelFileName(g, now)
		if err := saver.Save(name, data); err != nil {
			return err
		}
	} else {
		name, err = report.Generate(g, saver, s)
		if err != nil {
			return err
		}
	}

	prog.done("Report saved", "file", name)
	printSaved(cmd.OutOrStdout(), opts.location(name))
	return nil
}
