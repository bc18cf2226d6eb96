// Eventboard drives the event listing and counter pages from the
// command line and prints the resulting view tree.
//
// Usage:
//
//	eventboard events --file events.yaml [--city C] [--toggle ID]...
//	eventboard counter [--initial N] [--dispatch KIND]...
//	eventboard replay homepage|counter < actions
package main

import (
	"os"

	"github.com/elizafairlady/eventboard/ui/cmd/eventboard/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
