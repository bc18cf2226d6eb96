// Package homepage is the event listing page: a create button above
// a list of event cards whose details expand when the card image is
// clicked.
package homepage

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/elizafairlady/eventboard/ui/disclosure"
	"github.com/elizafairlady/eventboard/ui/events"
	"github.com/elizafairlady/eventboard/ui/view"
)

// ErrNoEvent is returned for a toggle action without an event id.
var ErrNoEvent = errors.New("homepage: toggle without event id")

// CreateRequests is the state path counting create-button clicks.
const CreateRequests = "create/requested"

// App renders a Collection. Disclosure state belongs to the App and is
// dropped with it.
type App struct {
	events events.Collection
	show   disclosure.State[string]
	logger *slog.Logger
}

var _ view.App = (*App)(nil)

// New returns a page listing c.
func New(c events.Collection, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{
		events: c,
		show:   disclosure.New[string](),
		logger: logger.With("component", "homepage"),
	}
}

// SetEvents replaces the listed events. Disclosure state is kept as
// is, including entries for ids no longer listed. The events are not
// part of view.State, so a host caching the tree must be invalidated
// afterwards (uifs.UIFS.Invalidate).
func (a *App) SetEvents(c events.Collection) {
	a.events = c
}

// Disclosure returns the current disclosure state.
func (a *App) Disclosure() disclosure.State[string] {
	return a.show
}

// View implements view.App.
func (a *App) View(s view.State) *view.Node {
	return view.VBox("root",
		createEventBtn(),
		a.eventCard(),
	).PropInt("gap", 4)
}

func createEventBtn() *view.Node {
	return view.Button("create-event", "Create event").Prop("on", "create")
}

// eventCard lists every event. Node ids are positional so event ids
// never have to be valid node ids; the event id rides in a prop.
func (a *App) eventCard() *view.Node {
	list := view.List("event-card")
	if len(a.events) == 0 {
		return list.Child(view.TextNode("empty", "No events to show"))
	}
	for i, ev := range a.events {
		n := strconv.Itoa(i)
		card := view.VBox("card-"+n,
			view.Image("img-"+n, ev.Image, "CardImage").
				Prop("on", "toggle").Prop("event", ev.ID),
			view.VBox("text-"+n,
				view.Heading("title-"+n, 1, ev.Title),
				view.HBox("date-city-"+n,
					view.Heading("date-"+n, 3, ev.Date),
					view.Heading("city-"+n, 3, ev.City),
				),
			),
		).Prop("event", ev.ID)
		if a.show.IsExpanded(ev.ID) {
			card.Find("text-"+n).Child(details(n, ev))
		}
		list.Child(card)
	}
	return list
}

func details(n string, ev events.Record) *view.Node {
	return view.VBox("details-"+n,
		view.Heading("time-"+n, 3, ev.Time),
		view.HBox("address-"+n,
			view.Heading("line1-"+n, 3, ev.AddressLine),
			view.Heading("postcode-"+n, 3, ev.Postcode),
		),
		view.TextNode("description-"+n, ev.Description),
	)
}

// Handle implements view.App. Clicks carry an "action" of toggle or
// create; everything else is ignored.
func (a *App) Handle(s view.State, act *view.Action) error {
	if act.Kind != "click" {
		return nil
	}
	switch act.Get("action") {
	case "toggle":
		id := act.Get("event")
		if id == "" {
			return fmt.Errorf("%w (node %q)", ErrNoEvent, act.Get("id"))
		}
		a.show = a.show.Toggle(id)
		a.logger.Debug("toggle", "event", id, "expanded", disclosure.SortedExpanded(a.show))
	case "create":
		s.Set(CreateRequests, strconv.Itoa(view.GetInt(s, CreateRequests, 0)+1))
	}
	return nil
}
