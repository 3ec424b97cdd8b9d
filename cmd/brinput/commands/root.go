package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/vortex-fintech/brinput/logger"
)

// ErrFailed is returned after a command has already written its failure
// to stdout. Callers only need to set the exit status.
var ErrFailed = errors.New("command failed")

type app struct {
	env string
	log *logger.Logger
}

func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "brinput",
		Short:         "Mask, validate and autofill Brazilian form input",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, err := logger.New("brinput", a.env)
			if err != nil {
				return err
			}
			a.log = log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				a.log.SafeSync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.env, "env", "production", "logging environment (development, debug, production)")

	root.AddCommand(maskCmd(), validateCmd(), lookupCmd(a), registrationCmd(a), serveCmd(a))
	return root
}

func (a *app) logOrNop() *logger.Logger {
	if a.log == nil {
		return logger.Nop()
	}
	return a.log
}
