package commands

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/elizafairlady/eventboard/ui/apps/counterapp"
	"github.com/elizafairlady/eventboard/ui/proto"
	"github.com/elizafairlady/eventboard/ui/uifs"
)

func replayCmd(opts *options) *cobra.Command {
	var (
		file      string
		dumpState bool
	)
	cmd := &cobra.Command{
		Use:       "replay homepage|counter",
		Short:     "Read action lines from stdin and print the final tree",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"homepage", "counter"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("file") {
				file = opts.cfg.Events
			}
			var (
				host *uifs.UIFS
				err  error
			)
			switch args[0] {
			case "homepage":
				host, err = homepageHost(opts, file, opts.cfg.City)
				if err != nil {
					return err
				}
			case "counter":
				host = uifs.New(counterapp.New(opts.cfg.Initial, opts.logger), uifs.WithLogger(opts.logger))
			}

			sc := bufio.NewScanner(cmd.InOrStdin())
			for n := 1; sc.Scan(); n++ {
				line := strings.TrimSpace(sc.Text())
				if line == "" || strings.HasPrefix(line, "#") {
					continue
				}
				if err := host.ProcessAction(line); err != nil {
					return fmt.Errorf("line %d: %w", n, err)
				}
			}
			if err := sc.Err(); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if _, err := fmt.Fprint(out, host.TreeText()); err != nil {
				return err
			}
			if !dumpState {
				return nil
			}
			st := host.State()
			for _, k := range st.Keys() {
				if _, err := fmt.Fprintf(out, "state %s\n", proto.FormatKV(k, st.Get(k))); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "events YAML file (homepage only)")
	cmd.Flags().BoolVar(&dumpState, "state", false, "also print state entries as \"state <path>=<value>\" lines")
	return cmd
}
