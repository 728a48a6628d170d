package main

import (
	"fmt"
	"os"
	"path"

	"github.com/spf13/cobra"

	"github.com/rehan-sk/httpserv/internal/routes"
	"github.com/rehan-sk/httpserv/internal/server"
	"github.com/rehan-sk/httpserv/internal/utils"
)

const version = "0.1.0"

var (
	port       int
	backlog    int
	readBuffer int

	rootCmd = &cobra.Command{
		Use:          "httpserv",
		Short:        "canned-response HTTP server over raw TCP",
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			run()
		},
	}
)

func init() {
	defaults := server.DefaultConfig()
	rootCmd.Flags().IntVar(&port, "port", defaults.Port, "TCP port to listen on")
	rootCmd.Flags().IntVar(&backlog, "backlog", defaults.Backlog, "pending-connection queue capacity")
	rootCmd.Flags().IntVar(&readBuffer, "read-buffer", defaults.ReadBufferSize, "request read buffer size in bytes")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stderr, "%v version %v\n", path.Base(os.Args[0]), version)
			os.Exit(0)
		},
	})
}

func run() {
	logger := utils.Logger().With().Str("module", "server").Logger()

	srv := server.New(server.Config{
		Port:           port,
		Backlog:        backlog,
		ReadBufferSize: readBuffer,
	}, routes.NewTable(), logger)

	// Startup preconditions: without a bound listening endpoint the server
	// has no purpose.
	if err := srv.Start(); err != nil {
		logger.Fatal().Err(err).Msg("could not start server")
	}
	// Runs until the process is terminated externally.
	srv.ServeForever()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
