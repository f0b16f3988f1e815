package cmd

import (
	"github.com/Milover/isbnref/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the ISBN operations over HTTP.",
	Long: `Serve the ISBN operations over HTTP.

The API is documented at /docs, metrics are exported at /metrics.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.New(cfg.Addr, cfg.Jobs).Run(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	rootCmd.AddCommand(serveCmd)
}
