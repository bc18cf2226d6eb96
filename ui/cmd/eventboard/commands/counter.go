package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/elizafairlady/eventboard/ui/apps/counterapp"
	"github.com/elizafairlady/eventboard/ui/proto"
	"github.com/elizafairlady/eventboard/ui/uifs"
)

func counterCmd(opts *options) *cobra.Command {
	var (
		initial    int
		dispatches []string
	)
	cmd := &cobra.Command{
		Use:   "counter",
		Short: "Dispatch counter actions and print the final count",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("initial") {
				initial = opts.cfg.Initial
			}
			app := counterapp.New(initial, opts.logger)
			host := uifs.New(app, uifs.WithLogger(opts.logger))
			for _, kind := range dispatches {
				if err := host.HandleAction(proto.NewAction("dispatch", "type", kind)); err != nil {
					return err
				}
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Count: %d\n", app.Count())
			return err
		},
	}
	cmd.Flags().IntVar(&initial, "initial", 0, "starting count")
	cmd.Flags().StringArrayVarP(&dispatches, "dispatch", "d", nil, "action kind to dispatch: increment or decrement (repeatable)")
	return cmd
}
