package cmd

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	offline    bool
	logLevel   string
}

// NewRootCmd builds the trackctl command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "trackctl",
		Short: "Classify and resolve tracking numbers from the command line",
		Long: `trackctl runs the same classification and resolution pipeline as the API
in-process and prints the result as JSON. Backend credentials are read from
the same .env file and environment variables as the server.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", ".", "Directory holding the .env file")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "error", "Log level written to stderr")

	root.AddCommand(newClassifyCmd())
	root.AddCommand(newTrackCmd(opts))
	return root
}

// Execute runs the root command. SIGINT or SIGTERM cancels the command context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return NewRootCmd().ExecuteContext(ctx)
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
