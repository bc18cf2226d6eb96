// Package view provides the Go API for building declarative view
// trees, and the App and State interfaces an app host drives.
//
// An application implements App: View builds a node tree from the
// current state, Handle applies a user action. Both are called
// serially by the host.
package view

import (
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/elizafairlady/eventboard/ui/proto"
)

// Node is a view tree node with an ID, type, props, and children.
type Node struct {
	ID       string
	Type     string
	Props    map[string]string
	Children []*Node
}

// State is a hierarchical key-value store for app state.
type State interface {
	Get(path string) string
	Set(path, value string)
	Del(path string)
	List(dir string) []string
}

// Action is a semantic user action delivered to App.Handle.
type Action = proto.Action

// App is the application interface. Handle returns an error when the
// action violates the app's contract; the host reports it to the
// caller instead of swallowing it.
type App interface {
	View(s State) *Node
	Handle(s State, a *Action) error
}

// N creates a new node with the given id and type.
func N(id, typ string) *Node {
	return &Node{
		ID:    id,
		Type:  typ,
		Props: make(map[string]string),
	}
}

// Prop sets a property on the node and returns it for chaining.
func (n *Node) Prop(k, v string) *Node {
	n.Props[k] = v
	return n
}

// PropInt sets an integer property.
func (n *Node) PropInt(k string, v int) *Node {
	return n.Prop(k, strconv.Itoa(v))
}

// Text sets the "text" property.
func (n *Node) Text(s string) *Node {
	return n.Prop("text", s)
}

// Child appends child nodes and returns the parent for chaining.
func (n *Node) Child(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// Find returns the first node with the given id in depth-first order,
// or nil.
func (n *Node) Find(id string) *Node {
	if n == nil {
		return nil
	}
	if n.ID == id {
		return n
	}
	for _, c := range n.Children {
		if f := c.Find(id); f != nil {
			return f
		}
	}
	return nil
}

// VBox creates a vertical box.
func VBox(id string, children ...*Node) *Node {
	return N(id, "vbox").Child(children...)
}

// HBox creates a horizontal box.
func HBox(id string, children ...*Node) *Node {
	return N(id, "hbox").Child(children...)
}

// List creates a semantic list container whose children are items.
func List(id string, children ...*Node) *Node {
	return N(id, "list").Child(children...)
}

// TextNode creates a text display node.
func TextNode(id, text string) *Node {
	return N(id, "text").Text(text)
}

// Heading creates a heading of the given level (1 is the largest).
func Heading(id string, level int, text string) *Node {
	return N(id, "heading").Text(text).PropInt("level", level)
}

// Image creates an image node; src is an opaque reference.
func Image(id, src, alt string) *Node {
	return N(id, "image").Prop("src", src).Prop("alt", alt)
}

// Button creates a focusable button node.
func Button(id, text string) *Node {
	return N(id, "button").Text(text).Prop("focusable", "1")
}

// Serialize converts the node tree to a proto.Tree.
func Serialize(root *Node, rev uint64) *proto.Tree {
	t := &proto.Tree{
		Rev:   rev,
		Root:  root.ID,
		Nodes: make(map[string]*proto.Node),
	}
	var walk func(n *Node)
	walk = func(n *Node) {
		pn := &proto.Node{
			ID:    n.ID,
			Type:  n.Type,
			Props: make(map[string]string, len(n.Props)),
		}
		for k, v := range n.Props {
			pn.Props[k] = v
		}
		for _, c := range n.Children {
			pn.Children = append(pn.Children, c.ID)
		}
		t.Nodes[n.ID] = pn
		t.Order = append(t.Order, n.ID)
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(root)
	return t
}

// MemState is an in-memory hierarchical state store. Paths are
// slash-separated.
type MemState struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemState creates a new empty in-memory state.
func NewMemState() *MemState {
	return &MemState{data: make(map[string]string)}
}

// Get returns the value at path, or "" if not set.
func (s *MemState) Get(path string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data[path]
}

// Set sets the value at path.
func (s *MemState) Set(path, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[path] = value
}

// Del deletes the value at path.
func (s *MemState) Del(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, path)
}

// List returns the sorted direct children under dir.
func (s *MemState) List(dir string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	prefix := dir + "/"
	seen := make(map[string]bool)
	var result []string
	for k := range s.data {
		rest, ok := strings.CutPrefix(k, prefix)
		if !ok || rest == "" {
			continue
		}
		name, _, _ := strings.Cut(rest, "/")
		if !seen[name] {
			seen[name] = true
			result = append(result, name)
		}
	}
	sort.Strings(result)
	return result
}

// Keys returns every stored path, sorted.
func (s *MemState) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// GetInt returns the integer value at path in s, or def if not set
// or invalid.
func GetInt(s State, path string, def int) int {
	n, err := strconv.Atoi(s.Get(path))
	if err != nil {
		return def
	}
	return n
}
