// Package uifs hosts an App in-process.
//
// The host is the model/controller boundary:
//   - state lives in a path-keyed view.MemState
//   - the tree is computed from state via App.View and cached
//     until the next action
//   - actions are parsed from the line protocol and passed to
//     App.Handle, whose errors reach the caller unchanged
package uifs

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/elizafairlady/eventboard/ui/proto"
	"github.com/elizafairlady/eventboard/ui/view"
)

// UIFS hosts one App and its state.
type UIFS struct {
	mu     sync.Mutex
	app    view.App
	st     *view.MemState
	rev    uint64
	tree   *proto.Tree // cached; nil when stale
	logger *slog.Logger

	// ActionLog records processed actions in line form. Set to
	// non-nil to enable.
	ActionLog []string
}

// Option configures a UIFS.
type Option func(*UIFS)

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(u *UIFS) { u.logger = l }
}

// New creates a UIFS hosting app with empty state.
func New(app view.App, opts ...Option) *UIFS {
	u := &UIFS{
		app:    app,
		st:     view.NewMemState(),
		rev:    1,
		logger: slog.Default(),
	}
	for _, o := range opts {
		o(u)
	}
	u.logger = u.logger.With("component", "uifs")
	return u
}

// State returns the state store.
func (u *UIFS) State() *view.MemState {
	return u.st
}

// Rev returns the current revision number.
func (u *UIFS) Rev() uint64 {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.rev
}

// Tree returns the current tree snapshot, recomputing if stale.
// It returns nil if the app renders nothing.
func (u *UIFS) Tree() *proto.Tree {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.tree == nil {
		u.recompute()
	}
	return u.tree
}

// TreeText returns the serialized tree.
func (u *UIFS) TreeText() string {
	t := u.Tree()
	if t == nil {
		return "rev 0\nroot \n"
	}
	return proto.SerializeTree(t)
}

// ProcessAction parses and handles one action line.
func (u *UIFS) ProcessAction(line string) error {
	a, err := proto.ParseAction(line)
	if err != nil {
		return err
	}
	return u.HandleAction(a)
}

// HandleAction passes a to the app. Before that, a click on a node
// picks up the node's bindings (see resolveBindings). The tree is
// invalidated whether or not the app accepts the action, since Handle
// may have touched state before failing.
func (u *UIFS) HandleAction(a *proto.Action) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.resolveBindings(a)
	line := proto.SerializeAction(a)
	if u.ActionLog != nil {
		u.ActionLog = append(u.ActionLog, line)
	}
	u.logger.Debug("action", "line", line, "rev", u.rev)

	err := u.app.Handle(u.st, a)
	u.invalidate()
	if err != nil {
		u.logger.Warn("action rejected", "line", line, "error", err)
		return fmt.Errorf("uifs: %s: %w", a.Kind, err)
	}
	return nil
}

// resolveBindings fills in a click's arguments from the clicked node:
// the node's "on" prop becomes "action" and its "event" prop is copied
// as is. Arguments already present on the action win. Must be called
// with mu held.
func (u *UIFS) resolveBindings(a *proto.Action) {
	if a.Kind != "click" {
		return
	}
	id := a.Get("id")
	if id == "" {
		return
	}
	if u.tree == nil {
		u.recompute()
	}
	if u.tree == nil {
		return
	}
	node := u.tree.Nodes[id]
	if node == nil {
		return
	}
	if a.KVs == nil {
		a.KVs = make(map[string]string)
	}
	for prop, arg := range map[string]string{"on": "action", "event": "event"} {
		v, ok := node.Props[prop]
		if !ok {
			continue
		}
		if _, set := a.KVs[arg]; !set {
			a.KVs[arg] = v
		}
	}
}

// Invalidate marks the tree stale. Call it after changing anything the
// app's View reads outside of State, such as data handed to the app
// directly.
func (u *UIFS) Invalidate() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.invalidate()
}

// invalidate drops the cached tree and advances the revision, so each
// revision names one state of the app. Must be called with mu held.
func (u *UIFS) invalidate() {
	u.tree = nil
	u.rev++
}

// recompute builds a tree from the app at the current revision. Must
// be called with mu held.
func (u *UIFS) recompute() {
	root := u.app.View(u.st)
	if root == nil {
		u.tree = nil
		return
	}
	u.tree = view.Serialize(root, u.rev)
}

// SetState sets a state value and invalidates the tree.
func (u *UIFS) SetState(path, value string) {
	u.st.Set(path, value)
	u.Invalidate()
}

// GetState gets a state value.
func (u *UIFS) GetState(path string) string {
	return u.st.Get(path)
}
