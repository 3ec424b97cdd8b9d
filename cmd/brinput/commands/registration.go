package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vortex-fintech/brinput/address"
	apperrors "github.com/vortex-fintech/brinput/errors"
	"github.com/vortex-fintech/brinput/form"
)

const maxRegistrationBody = 1 << 20

func registrationCmd(a *app) *cobra.Command {
	var (
		o        lookupOptions
		autofill bool
	)
	cmd := &cobra.Command{
		Use:   "registration",
		Short: "Normalize and validate a registration JSON document read from stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := decodeRegistration(io.LimitReader(cmd.InOrStdin(), maxRegistrationBody))
			if err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), err.Error())
				return ErrFailed
			}

			var af *address.Autofiller
			if autofill {
				var done func()
				af, done = o.autofiller(cmd.Context(), a.logOrNop())
				defer done()
			}

			reg, err = checkRegistration(cmd.Context(), reg, af, a.logOrNop(), a.env)
			if err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), err.Error())
				return ErrFailed
			}
			return writeJSON(cmd, reg)
		},
	}
	cmd.Flags().BoolVar(&autofill, "autofill", false, "fill address fields from the postal code")
	o.bind(cmd)
	return cmd
}

func decodeRegistration(r io.Reader) (form.Registration, error) {
	var reg form.Registration
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&reg); err != nil {
		return reg, apperrors.InvalidArgument().
			WithReason("malformed_registration").
			WithDetail("decode", err.Error())
	}
	return reg, nil
}
