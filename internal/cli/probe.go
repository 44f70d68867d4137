package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/LeJamon/goXRPLkit/internal/core/probe"
	"github.com/LeJamon/goXRPLkit/internal/logger"
)

func newProbeCmd(a *app) *cobra.Command {
	var definitionsFile string

	cmd := &cobra.Command{
		Use:   "probe [FILE|-]",
		Short: "Build a fee probe transaction",
		Long: `Read a transaction JSON object and print the signed placeholder blob a
Hooks-enabled node accepts for fee estimation. --definitions selects a
server_definitions table, such as Xahau's, instead of the built-in one.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			txJSON, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			var defs []byte
			if definitionsFile != "" {
				if defs, err = os.ReadFile(definitionsFile); err != nil {
					return err
				}
			} else if defs, err = a.cfg.Probe.LoadDefinitions(); err != nil {
				return err
			}

			signer, err := probe.NewPassphraseSigner(a.cfg.Probe.Passphrase)
			if err != nil {
				return err
			}
			b, err := probe.NewBuilder(
				probe.WithSigner(signer),
				probe.WithLogger(logger.L()),
				probe.WithDefinitionsCacheSize(a.cfg.Probe.DefinitionsCacheSize),
			)
			if err != nil {
				return err
			}

			blob, err := b.Build(txJSON, defs)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), blob)
			return err
		},
	}

	cmd.Flags().StringVar(&definitionsFile, "definitions", "", "server_definitions JSON file")
	return cmd
}
