package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"autoviz/internal/server"
)

var srvAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the profiling HTTP API",
	Long: `Serve starts an HTTP server exposing the profiling and analytics
engines: POST /api/profile, /api/suggest, and /api/analyze accept CSV or JSON
bodies and return the corresponding results.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if srvAddr != "" {
			cfg.ServerAddr = srvAddr
		}
		fmt.Printf("✓ Listening on %s\n", cfg.ServerAddr)
		return server.ListenAndServe(cfg)
	},
}

func init() {
	serveCmd.Flags().StringVar(&srvAddr, "addr", "", "listen address (default from config, :8420)")
	rootCmd.AddCommand(serveCmd)
}
