package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/LeJamon/goXRPLkit/internal/config"
	"github.com/LeJamon/goXRPLkit/internal/locale"
	"github.com/LeJamon/goXRPLkit/internal/logger"
)

// Version is the release string reported by the version command.
var Version = "0.1.0-dev"

// app carries the state shared by all subcommands of one invocation.
type app struct {
	configFile string
	debug      bool
	cfg        *config.Config
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "xrplkit",
		Short: "goXRPLkit - XRPL transaction and fee toolkit",
		Long: `xrplkit decodes XRPL and Xahau transactions into typed views, computes
fee suggestions from a node's fee snapshot and builds the signed placeholder
transaction Hooks-enabled nodes need to estimate a fee.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initConfig()
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configFile, "conf", "", "configuration file path")
	rootCmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(
		newDecodeCmd(a),
		newFeesCmd(a),
		newProbeCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// Execute runs the command tree and exits non-zero on error.
// This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// initConfig reads in config file and ENV variables if set.
func (a *app) initConfig() error {
	cfg, err := config.LoadConfig(a.configFile)
	if err != nil {
		return err
	}
	if a.debug {
		cfg.Log.Level = "debug"
	}
	logger.Init(cfg.Log.LoggerOptions())
	locale.SetLanguage(cfg.Output.Tag())

	a.cfg = cfg
	logger.Debug("Configuration loaded", "path", cfg.GetConfigPath(), "level", cfg.Log.Level)
	return nil
}

func (a *app) writeJSON(w io.Writer, v any) error {
	var (
		data []byte
		err  error
	)
	if a.cfg.Output.Indent == "" {
		data, err = json.Marshal(v)
	} else {
		data, err = json.MarshalIndent(v, "", a.cfg.Output.Indent)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// readInput reads the file named by the first argument, or stdin when it is
// absent or "-".
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(args[0])
}
