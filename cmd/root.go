package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "gw",
		Short:         "Currency gateway (gw): bridge simulator money events to a money server",
		Long:          "gw runs the currency gateway of a virtual-world simulator. It authenticates balance-affecting requests against live client sessions, forwards them to an XML-RPC money server or an in-memory fallback ledger, and answers the money server's push notifications.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app := wireApp()
	rootCmd.PersistentFlags().StringVar(&app.configPath, "config", "", "Config file (default: $GW_CONFIG or ~/.currency-gateway/gateway.toml)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newServeCmd(app),
		newBalanceCmd(app),
		newConfigCmd(app),
	)

	return rootCmd
}
