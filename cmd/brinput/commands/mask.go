package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vortex-fintech/brinput/postalcode"
	"github.com/vortex-fintech/brinput/taxid"
)

func maskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mask",
		Short: "Apply a display mask to raw input",
	}

	var redact bool
	taxIDCmd := &cobra.Command{
		Use:   "taxid <raw>",
		Short: "Mask a tax ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := taxid.Mask(args[0])
			if redact {
				out = taxid.Redact(args[0])
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	taxIDCmd.Flags().BoolVar(&redact, "redact", false, "hide all but the last digits")

	postalCmd := &cobra.Command{
		Use:   "postalcode <raw>",
		Short: "Mask a postal code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), postalcode.Mask(args[0]))
			return err
		},
	}

	cmd.AddCommand(taxIDCmd, postalCmd)
	return cmd
}
