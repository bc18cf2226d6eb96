// Package proto implements the line-oriented text encodings used
// between an app host and whatever drives it: view tree snapshots
// and user actions.
//
// Tree format (deterministic, diff-friendly):
//
//	rev <uint64>
//	root <nodeid>
//	node <id> <type>
//	prop <id> <k>=<v> <k>=<v> ...
//	child <parent> <child>
//
// Action format (one per line):
//
//	<kind> <k>=<v> <k>=<v> ...
//
// Values that are empty or contain whitespace, quotes, backslashes
// or '=' are written as Go double-quoted strings.
package proto

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// ErrEmptyAction is returned by ParseAction for a blank line.
var ErrEmptyAction = errors.New("proto: empty action")

// Node is one node of a tree snapshot.
type Node struct {
	ID       string
	Type     string
	Props    map[string]string
	Children []string // child IDs in order
}

// Tree is a complete view snapshot.
type Tree struct {
	Rev   uint64
	Root  string
	Nodes map[string]*Node // keyed by ID
	Order []string         // node IDs in declaration order
}

// Action is a semantic user action, such as a click.
type Action struct {
	Kind string
	KVs  map[string]string
}

// NewAction builds an action from alternating key/value arguments.
// A trailing key without a value is ignored.
func NewAction(kind string, kv ...string) *Action {
	a := &Action{Kind: kind, KVs: make(map[string]string, len(kv)/2)}
	for i := 0; i+1 < len(kv); i += 2 {
		a.KVs[kv[i]] = kv[i+1]
	}
	return a
}

// Get returns the value for key k, or "".
func (a *Action) Get(k string) string {
	if a == nil || a.KVs == nil {
		return ""
	}
	return a.KVs[k]
}

func needsQuote(s string) bool {
	if s == "" {
		return true
	}
	return strings.ContainsFunc(s, func(r rune) bool {
		return r == '"' || r == '\\' || r == '=' || unicode.IsSpace(r)
	})
}

// EscapeValue returns s quoted if it cannot be written bare.
func EscapeValue(s string) string {
	if !needsQuote(s) {
		return s
	}
	return strconv.Quote(s)
}

// UnescapeValue reverses EscapeValue. Malformed quoted input is
// returned unchanged.
func UnescapeValue(s string) string {
	if len(s) < 2 || s[0] != '"' {
		return s
	}
	v, err := strconv.Unquote(s)
	if err != nil {
		return s
	}
	return v
}

// FormatKV formats a key=value pair.
func FormatKV(k, v string) string {
	return k + "=" + EscapeValue(v)
}

// ParseKV splits a key=value token.
func ParseKV(token string) (k, v string, ok bool) {
	k, raw, ok := strings.Cut(token, "=")
	if !ok {
		return "", "", false
	}
	return k, UnescapeValue(raw), true
}

// Tokenize splits line on blanks, keeping quoted runs (including
// the value half of k="v w") inside a single token.
func Tokenize(line string) []string {
	var (
		tokens []string
		cur    strings.Builder
		quoted bool
		inTok  bool
	)
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case quoted && c == '\\' && i+1 < len(line):
			cur.WriteByte(c)
			cur.WriteByte(line[i+1])
			i++
		case c == '"':
			quoted = !quoted
			inTok = true
			cur.WriteByte(c)
		case !quoted && (c == ' ' || c == '\t'):
			if inTok {
				tokens = append(tokens, cur.String())
				cur.Reset()
				inTok = false
			}
		default:
			inTok = true
			cur.WriteByte(c)
		}
	}
	if inTok {
		tokens = append(tokens, cur.String())
	}
	return tokens
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SerializeTree encodes t in the tree text format.
func SerializeTree(t *Tree) string {
	var b strings.Builder
	fmt.Fprintf(&b, "rev %d\n", t.Rev)
	fmt.Fprintf(&b, "root %s\n", t.Root)
	for _, id := range t.Order {
		n := t.Nodes[id]
		if n == nil {
			continue
		}
		fmt.Fprintf(&b, "node %s %s\n", n.ID, n.Type)
		if len(n.Props) > 0 {
			b.WriteString("prop " + n.ID)
			for _, k := range sortedKeys(n.Props) {
				b.WriteString(" " + FormatKV(k, n.Props[k]))
			}
			b.WriteByte('\n')
		}
		for _, c := range n.Children {
			fmt.Fprintf(&b, "child %s %s\n", n.ID, c)
		}
	}
	return b.String()
}

// node returns the node with id, creating it in declaration order.
func (t *Tree) node(id string) *Node {
	n := t.Nodes[id]
	if n == nil {
		n = &Node{ID: id, Props: make(map[string]string)}
		t.Nodes[id] = n
		t.Order = append(t.Order, id)
	}
	return n
}

// ParseTree decodes the tree text format. Unknown directives are
// skipped.
func ParseTree(text string) (*Tree, error) {
	t := &Tree{Nodes: make(map[string]*Node)}
	for lineno, line := range strings.Split(text, "\n") {
		f := Tokenize(strings.TrimSpace(line))
		if len(f) == 0 {
			continue
		}
		need := map[string]int{"rev": 2, "root": 2, "node": 3, "prop": 2, "child": 3}[f[0]]
		if len(f) < need {
			return nil, fmt.Errorf("proto: line %d: %s: want %d fields, got %d", lineno+1, f[0], need, len(f))
		}
		switch f[0] {
		case "rev":
			v, err := strconv.ParseUint(f[1], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("proto: line %d: bad rev: %w", lineno+1, err)
			}
			t.Rev = v
		case "root":
			t.Root = f[1]
		case "node":
			t.node(f[1]).Type = f[2]
		case "prop":
			n := t.node(f[1])
			for _, kv := range f[2:] {
				if k, v, ok := ParseKV(kv); ok {
					n.Props[k] = v
				}
			}
		case "child":
			n := t.node(f[1])
			n.Children = append(n.Children, f[2])
		}
	}
	return t, nil
}

// SerializeAction encodes a in the action line format.
func SerializeAction(a *Action) string {
	parts := []string{a.Kind}
	for _, k := range sortedKeys(a.KVs) {
		parts = append(parts, FormatKV(k, a.KVs[k]))
	}
	return strings.Join(parts, " ")
}

// ParseAction decodes one action line.
func ParseAction(line string) (*Action, error) {
	f := Tokenize(strings.TrimSpace(line))
	if len(f) == 0 {
		return nil, ErrEmptyAction
	}
	a := &Action{Kind: f[0], KVs: make(map[string]string)}
	for _, kv := range f[1:] {
		k, v, ok := ParseKV(kv)
		if !ok {
			return nil, fmt.Errorf("proto: action %s: malformed argument %q", a.Kind, kv)
		}
		a.KVs[k] = v
	}
	return a, nil
}
