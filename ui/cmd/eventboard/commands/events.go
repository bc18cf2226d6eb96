package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/elizafairlady/eventboard/ui/apps/homepage"
	"github.com/elizafairlady/eventboard/ui/events"
	"github.com/elizafairlady/eventboard/ui/proto"
	"github.com/elizafairlady/eventboard/ui/uifs"
)

func eventsCmd(opts *options) *cobra.Command {
	var (
		file    string
		city    string
		toggles []string
	)
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Print the event listing after applying toggles",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("file") {
				file = opts.cfg.Events
			}
			if !cmd.Flags().Changed("city") {
				city = opts.cfg.City
			}
			host, err := homepageHost(opts, file, city)
			if err != nil {
				return err
			}
			for _, id := range toggles {
				if err := host.HandleAction(proto.NewAction("click", "action", "toggle", "event", id)); err != nil {
					return err
				}
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), host.TreeText())
			return err
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "events YAML file")
	cmd.Flags().StringVar(&city, "city", "", "only list events in this city")
	cmd.Flags().StringArrayVarP(&toggles, "toggle", "t", nil, "toggle details of the event with this id (repeatable)")
	return cmd
}

func homepageHost(opts *options, file, city string) (*uifs.UIFS, error) {
	if file == "" {
		return nil, errors.New("no events file: pass --file or set events in --config")
	}
	c, err := events.LoadFile(file)
	if err != nil {
		return nil, err
	}
	c = c.Filter(events.ByCity(city))
	opts.logger.Info("loaded events", "file", file, "city", city, "count", len(c))
	return uifs.New(homepage.New(c, opts.logger), uifs.WithLogger(opts.logger)), nil
}
