package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sarchlab/burger/kitchen"
	"github.com/sarchlab/burger/monitoring"
)

type serveOptions struct {
	port        int
	openBrowser bool
	history     int
	uniqueIDs   bool
}

func newServeCmd(root *rootOptions) *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Take orders over HTTP.",
		Long: "`serve` starts a web server that prepares a burger for every " +
			"order it receives and lists the orders it has served.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, root, opts)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&opts.port, "port", 0, "Port to listen on; 0 or a port below 1000 picks a random port")
	flags.BoolVar(&opts.openBrowser, "open", false, "Open the order list in a browser")
	flags.IntVar(&opts.history, "history", 64, "Number of served orders to remember")
	flags.BoolVar(&opts.uniqueIDs, "unique-ids", true, "Use globally unique order IDs instead of sequential ones")

	return cmd
}

func runServe(cmd *cobra.Command, root *rootOptions, opts *serveOptions) error {
	builder := kitchen.MakeBuilder().
		WithIDGenerator(newIDGenerator(opts.uniqueIDs)).
		WithHistorySize(opts.history)

	k, closeKitchen, err := openKitchen(cmd, root, builder)
	if err != nil {
		return err
	}

	m := monitoring.NewMonitor().
		WithPortNumber(opts.port).
		WithBrowser(opts.openBrowser)
	m.RegisterKitchen(k)

	if _, err := m.StartServer(); err != nil {
		_ = closeKitchen()
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	if err := m.StopServer(); err != nil {
		_ = closeKitchen()
		return err
	}

	return closeKitchen()
}
