// Package counterapp shows a count with + and - buttons, backed by a
// counter.Store.
package counterapp

import (
	"log/slog"
	"strconv"

	"github.com/elizafairlady/eventboard/ui/counter"
	"github.com/elizafairlady/eventboard/ui/view"
)

// App is the counter page.
type App struct {
	store *counter.Store
}

var _ view.App = (*App)(nil)

// New returns a counter page starting at initial.
func New(initial int, logger *slog.Logger) *App {
	return &App{store: counter.NewStore(initial, logger)}
}

// Count returns the committed count.
func (a *App) Count() int {
	return a.store.State().Count
}

func (a *App) View(s view.State) *view.Node {
	return view.VBox("root",
		view.TextNode("count", "Count: "+strconv.Itoa(a.Count())).PropInt("pad", 8),
		view.HBox("buttons",
			view.Button("inc", "+").Prop("on", string(counter.Increment)),
			view.Button("dec", "-").Prop("on", string(counter.Decrement)),
		).PropInt("gap", 4),
	)
}

// Handle dispatches "click action=<kind>" and "dispatch type=<kind>"
// to the store. A click with no action (on the count text, say) is
// ignored; an undefined kind is returned as the store's error.
func (a *App) Handle(s view.State, act *view.Action) error {
	var kind string
	switch act.Kind {
	case "click":
		kind = act.Get("action")
		if kind == "" {
			return nil
		}
	case "dispatch":
		kind = act.Get("type")
	default:
		return nil
	}
	return a.store.Dispatch(counter.Action{Type: counter.Kind(kind)})
}
