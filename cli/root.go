// Package cli provides the command-line interface for burger.
package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/burger/hooking"
	"github.com/sarchlab/burger/idgen"
	"github.com/sarchlab/burger/kitchen"
	"github.com/sarchlab/burger/recipe"
	"github.com/sarchlab/burger/tracing"
)

type rootOptions struct {
	bread   string
	patty   string
	cheese  bool
	lettuce bool

	recipePath string
	envFile    string
	traceDB    string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	house := kitchen.DefaultOrder()

	cmd := &cobra.Command{
		Use:   "burger",
		Short: "Burger assembles a burger and prints what it is made of.",
		Long: `Burger assembles a burger and prints what it is made of. ` +
			`Without flags it prints the house burger. Ingredients can be ` +
			`taken from a dotenv file, a YAML recipe and flags, in that order.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRoot(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.bread, "bread", house.Bread, "Bread of the burger")
	flags.StringVar(&opts.patty, "patty", house.Patty, "Patty of the burger")
	flags.BoolVar(&opts.cheese, "cheese", house.Cheese, "Add cheese")
	flags.BoolVar(&opts.lettuce, "lettuce", house.Lettuce, "Add lettuce")
	flags.StringVar(&opts.recipePath, "recipe", "", "YAML recipe to read the ingredients from")
	flags.StringVar(&opts.envFile, "env-file", "", "Dotenv file with BURGER_* ingredients")

	persistent := cmd.PersistentFlags()
	persistent.StringVar(&opts.traceDB, "trace-db", "", "Record every order into this SQLite file")
	persistent.BoolVarP(&opts.verbose, "verbose", "v", false, "Log every order to stderr")

	cmd.AddCommand(newServeCmd(opts))

	return cmd
}

// Execute runs the root command and exits the process through atexit so that
// trace writers are flushed.
func Execute() {
	err := newRootCmd().ExecuteContext(context.Background())
	if err != nil {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}

func runRoot(cmd *cobra.Command, opts *rootOptions) error {
	order, err := resolveOrder(cmd, opts)
	if err != nil {
		return err
	}

	k, closeKitchen, err := openKitchen(cmd, opts, kitchen.MakeBuilder())
	if err != nil {
		return err
	}

	ticket := k.Prepare(order)

	if err := closeKitchen(); err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), ticket.Burger)

	return err
}

// resolveOrder layers the house burger, the env file, the recipe and the flags
// that were set explicitly.
func resolveOrder(cmd *cobra.Command, opts *rootOptions) (kitchen.Order, error) {
	order := kitchen.DefaultOrder()

	var err error

	if opts.envFile != "" {
		order, err = recipe.LoadEnvFile(opts.envFile, order)
		if err != nil {
			return order, err
		}
	}

	if opts.recipePath != "" {
		order, err = recipe.LoadFile(opts.recipePath, order)
		if err != nil {
			return order, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("bread") {
		order.Bread = opts.bread
	}
	if flags.Changed("patty") {
		order.Patty = opts.patty
	}
	if flags.Changed("cheese") {
		order.Cheese = opts.cheese
	}
	if flags.Changed("lettuce") {
		order.Lettuce = opts.lettuce
	}

	return order, nil
}

// openKitchen attaches the hooks requested on the command line. The returned
// function writes the open orders and closes the trace database.
func openKitchen(
	cmd *cobra.Command,
	opts *rootOptions,
	builder kitchen.Builder,
) (*kitchen.Kitchen, func() error, error) {
	closeKitchen := func() error { return nil }

	if opts.verbose {
		logger := log.New(cmd.ErrOrStderr(), "[burger] ", log.LstdFlags)
		builder = builder.WithHook(hooking.NewLogHook(logger))
	}

	if opts.traceDB != "" {
		writer := tracing.NewSQLiteTraceWriter(opts.traceDB)
		if err := writer.Init(); err != nil {
			return nil, nil, err
		}

		tracer := tracing.NewDBTracer(hooking.WallClock{}, writer)
		builder = builder.WithHook(tracer)

		closeKitchen = func() error {
			tracer.Terminate()
			return writer.Close()
		}
	}

	return builder.Build("Kitchen"), closeKitchen, nil
}

func newIDGenerator(parallel bool) idgen.IDGenerator {
	if parallel {
		return idgen.NewParallelIDGenerator()
	}

	return idgen.NewSequentialIDGenerator()
}
