package uifs

import (
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/elizafairlady/eventboard/ui/proto"
	"github.com/elizafairlady/eventboard/ui/view"
)

var errRejected = errors.New("rejected")

// testApp counts clicks in state and rejects "boom" actions.
type testApp struct{}

func (a *testApp) View(s view.State) *view.Node {
	count := s.Get("count")
	if count == "" {
		count = "0"
	}
	return view.VBox("root",
		view.TextNode("label", "Count: "+count),
		view.Button("inc", "Increment").Prop("on", "inc"),
	)
}

func (a *testApp) Handle(s view.State, act *proto.Action) error {
	switch act.Kind {
	case "click":
		if act.Get("action") == "inc" {
			n := 0
			for _, c := range s.Get("count") {
				n = n*10 + int(c-'0')
			}
			s.Set("count", string(rune('0'+(n+1)%10)))
		}
	case "boom":
		s.Set("touched", "1")
		return errRejected
	}
	return nil
}

type nilApp struct{}

func (nilApp) View(view.State) *view.Node             { return nil }
func (nilApp) Handle(view.State, *proto.Action) error { return nil }

func quiet() Option {
	return WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestUIFSBasic(t *testing.T) {
	u := New(&testApp{}, quiet())

	tree := u.Tree()
	if tree == nil {
		t.Fatal("tree is nil")
	}
	if tree.Root != "root" {
		t.Errorf("root = %q", tree.Root)
	}
	if len(tree.Nodes) != 3 {
		t.Errorf("nodes = %d, want 3", len(tree.Nodes))
	}
	if text := u.TreeText(); !strings.Contains(text, `text="Count: 0"`) {
		t.Errorf("tree text missing count, got:\n%s", text)
	}
}

func TestUIFSAction(t *testing.T) {
	u := New(&testApp{}, quiet())
	u.ActionLog = []string{}

	if err := u.ProcessAction(`click id=inc action=inc`); err != nil {
		t.Fatal(err)
	}
	if text := u.TreeText(); !strings.Contains(text, `text="Count: 1"`) {
		t.Errorf("after inc, tree text missing count, got:\n%s", text)
	}
	if len(u.ActionLog) != 1 || u.ActionLog[0] != "click action=inc id=inc" {
		t.Errorf("action log = %q", u.ActionLog)
	}
}

func TestUIFSActionError(t *testing.T) {
	u := New(&testApp{}, quiet())
	rev := u.Rev()

	err := u.ProcessAction("boom")
	if !errors.Is(err, errRejected) {
		t.Fatalf("err = %v, want errRejected", err)
	}
	if u.Rev() <= rev {
		t.Errorf("rev did not advance after rejected action")
	}
	if u.GetState("touched") != "1" {
		t.Errorf("state written before rejection was lost")
	}
}

func TestUIFSParseError(t *testing.T) {
	u := New(&testApp{}, quiet())
	if err := u.ProcessAction(""); !errors.Is(err, proto.ErrEmptyAction) {
		t.Errorf("err = %v", err)
	}
}

func TestUIFSState(t *testing.T) {
	u := New(&testApp{}, quiet())

	u.SetState("foo", "bar")
	if v := u.GetState("foo"); v != "bar" {
		t.Errorf("foo = %q", v)
	}

	rev1 := u.Tree().Rev
	u.SetState("count", "5")
	tree := u.Tree()
	if tree.Rev <= rev1 {
		t.Errorf("rev did not increase: %d <= %d", tree.Rev, rev1)
	}
	if tree.Nodes["label"].Props["text"] != "Count: 5" {
		t.Errorf("label = %q", tree.Nodes["label"].Props["text"])
	}
}

func TestUIFSNilView(t *testing.T) {
	u := New(nilApp{}, quiet())
	if u.Tree() != nil {
		t.Error("tree != nil")
	}
	if got := u.TreeText(); got != "rev 0\nroot \n" {
		t.Errorf("TreeText = %q", got)
	}
}

func TestUIFSClickPicksUpNodeBinding(t *testing.T) {
	u := New(&testApp{}, quiet())
	u.ActionLog = []string{}

	if err := u.ProcessAction("click id=inc"); err != nil {
		t.Fatal(err)
	}
	if got := u.GetState("count"); got != "1" {
		t.Errorf("count = %q, want 1", got)
	}
	if len(u.ActionLog) != 1 || u.ActionLog[0] != "click action=inc id=inc" {
		t.Errorf("action log = %q", u.ActionLog)
	}
}

func TestUIFSExplicitArgumentWins(t *testing.T) {
	u := New(&testApp{}, quiet())
	if err := u.ProcessAction("click id=inc action=other"); err != nil {
		t.Fatal(err)
	}
	if got := u.GetState("count"); got != "" {
		t.Errorf("count = %q, want unset", got)
	}
}

func TestUIFSClickUnboundNode(t *testing.T) {
	u := New(&testApp{}, quiet())
	for _, line := range []string{"click id=label", "click id=missing", "click"} {
		if err := u.ProcessAction(line); err != nil {
			t.Errorf("%s: %v", line, err)
		}
	}
	if got := u.GetState("count"); got != "" {
		t.Errorf("count = %q, want unset", got)
	}
}

func TestUIFSRevisionPerAction(t *testing.T) {
	u := New(&testApp{}, quiet())
	first := u.Tree().Rev
	if first != 1 {
		t.Errorf("first rev = %d, want 1", first)
	}
	if err := u.ProcessAction("click id=inc"); err != nil {
		t.Fatal(err)
	}
	if got := u.Tree().Rev; got != first+1 {
		t.Errorf("rev after one action = %d, want %d", got, first+1)
	}
	if got := u.Tree().Rev; got != first+1 {
		t.Errorf("rev changed on a cached read: %d", got)
	}
}

// extApp renders a title held outside State.
type extApp struct{ title string }

func (a *extApp) View(view.State) *view.Node             { return view.TextNode("title", a.title) }
func (a *extApp) Handle(view.State, *proto.Action) error { return nil }

func TestUIFSInvalidate(t *testing.T) {
	app := &extApp{title: "before"}
	u := New(app, quiet())
	if got := u.Tree().Nodes["title"].Props["text"]; got != "before" {
		t.Fatalf("title = %q", got)
	}

	app.title = "after"
	if got := u.Tree().Nodes["title"].Props["text"]; got != "before" {
		t.Errorf("tree recomputed without Invalidate: %q", got)
	}
	u.Invalidate()
	if got := u.Tree().Nodes["title"].Props["text"]; got != "after" {
		t.Errorf("title after Invalidate = %q", got)
	}
	if keys := u.State().Keys(); len(keys) != 0 {
		t.Errorf("state keys = %q, want none", keys)
	}
}
