package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vortex-fintech/brinput/form"
)

var taxIDRules = form.NewPipeline(
	form.Required("tax_id", identity),
	form.ValidTaxID("tax_id", identity),
)

func identity(s string) string { return s }

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <raw>",
		Short: "Check a tax ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := taxIDRules.Run(args[0]).Err(); err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), err.Error())
				return ErrFailed
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "valid")
			return err
		},
	}
}
