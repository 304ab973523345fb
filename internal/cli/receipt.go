package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/sharath018/temple-donation-docs/internal/receipt"
)

func newReceiptCmd(opts *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "receipt [file]",
		Short: "Render a donation receipt from a JSON donation (- for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			return runReceipt(cmd.Context(), data, opts, cmd)
		},
	}
}

func runReceipt(ctx context.Context, data []byte, opts *rootOpts, cmd *cobra.Command) error {
	logger := loggerFromContext(ctx)

	rec, err := decodeRecord(data)
	if err != nil {
		return err
	}
	s, err := opts.settings()
	if err != nil {
		return err
	}

	saver, err := opts.saver(ctx)
	if err != nil {
		return err
	}

	logger.Debug("rendering receipt", "transaction_id", rec.TransactionID, "status", rec.PaymentStatus)
	prog := newProgress(logger)

	name, err := receipt.Generate(rec, saver, s)
	if err != nil {
		return err
	}

	prog.done("Receipt saved", "file", name)
	printSaved(cmd.OutOrStdout(), opts.location(name))
	return nil
}
