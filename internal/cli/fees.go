package cli

import (
	"github.com/spf13/cobra"

	"github.com/LeJamon/goXRPLkit/internal/core/fee"
	"github.com/LeJamon/goXRPLkit/internal/logger"
)

func newFeesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fees [FILE|-]",
		Short: "Suggest fee tiers for a fee snapshot",
		Long: `Read a fee snapshot (the result of the fee RPC, optionally with
fee_hooks_feeunits) and print LOW, MEDIUM and HIGH fee suggestions in drops.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			s, err := fee.NormalizeFeeDataSet(data)
			if err != nil {
				return err
			}
			low, _ := s.Tier(fee.LevelLow)
			logger.Debug("Fee tiers computed", "base", low, "fee_hooks", s.FeeHooks)
			return a.writeJSON(cmd.OutOrStdout(), s)
		},
	}
}
