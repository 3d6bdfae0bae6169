// Package dsl loads diagram definitions from TOML documents.
//
// A document names its nodes and designates a root; composition nodes
// reference their children by name:
//
//	root = "main"
//
//	[node.main]
//	kind = "beside"
//	left = "dot"
//	right = "bar"
//
//	[node.dot]
//	kind = "circle"
//	radius = 50
//	fill = "#e04050"
//
//	[node.bar]
//	kind = "rect"
//	width = 30
//	height = 80
//	align = [0.5, 0.0]
//
// A node may be referenced more than once (the subtree is built again
// for each reference, matching the value semantics of the combinators),
// but reference cycles are rejected.
package dsl

import (
	"errors"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/diagram"
)

var (
	// ErrMissingRoot indicates the document has no root key or the
	// root names an undefined node.
	ErrMissingRoot = errors.New("missing root node")
	// ErrUnknownNode indicates a reference to an undefined node.
	ErrUnknownNode = errors.New("unknown node reference")
	// ErrCycle indicates node references form a cycle.
	ErrCycle = errors.New("node reference cycle")
	// ErrBadKind indicates an unrecognized node kind.
	ErrBadKind = errors.New("unknown node kind")
	// ErrBadValue indicates a node field with an invalid value.
	ErrBadValue = errors.New("invalid node value")
)

// document mirrors the TOML structure.
type document struct {
	Root  string          `toml:"root"`
	Nodes map[string]node `toml:"node"`
}

// node is one diagram node definition. Which fields apply depends on
// Kind; unused fields are ignored.
type node struct {
	Kind   string    `toml:"kind"`
	Left   string    `toml:"left"`
	Right  string    `toml:"right"`
	Top    string    `toml:"top"`
	Bottom string    `toml:"bottom"`
	Side   float64   `toml:"side"`
	Radius float64   `toml:"radius"`
	Width  float64   `toml:"width"`
	Height float64   `toml:"height"`
	Fill   string    `toml:"fill"`
	Align  []float64 `toml:"align"`
}

// DecodeFile reads a TOML diagram definition from a file.
func DecodeFile(path string) (diagram.Diagram, error) {
	var doc document
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return build(&doc)
}

// Decode reads a TOML diagram definition from r.
func Decode(r io.Reader) (diagram.Diagram, error) {
	var doc document
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	return build(&doc)
}

// build resolves the root reference into a diagram tree.
func build(doc *document) (diagram.Diagram, error) {
	if doc.Root == "" {
		return nil, ErrMissingRoot
	}
	if _, ok := doc.Nodes[doc.Root]; !ok {
		return nil, fmt.Errorf("%w: root %q is not defined", ErrMissingRoot, doc.Root)
	}
	return resolve(doc, doc.Root, map[string]bool{})
}

// resolve builds the subtree for the named node. visiting holds the
// names on the current resolution path for cycle detection.
func resolve(doc *document, name string, visiting map[string]bool) (diagram.Diagram, error) {
	if visiting[name] {
		return nil, fmt.Errorf("%w: through %q", ErrCycle, name)
	}
	n, ok := doc.Nodes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, name)
	}
	visiting[name] = true
	defer delete(visiting, name)

	d, err := buildNode(doc, name, n, visiting)
	if err != nil {
		return nil, err
	}
	return annotate(name, n, d)
}

func buildNode(doc *document, name string, n node, visiting map[string]bool) (diagram.Diagram, error) {
	switch n.Kind {
	case "square":
		if n.Side < 0 {
			return nil, fmt.Errorf("%w: node %q: negative side", ErrBadValue, name)
		}
		return diagram.Square(n.Side), nil

	case "circle":
		if n.Radius < 0 {
			return nil, fmt.Errorf("%w: node %q: negative radius", ErrBadValue, name)
		}
		return diagram.Circle(n.Radius), nil

	case "rect":
		if n.Width < 0 || n.Height < 0 {
			return nil, fmt.Errorf("%w: node %q: negative dimensions", ErrBadValue, name)
		}
		return diagram.Rectangle(n.Width, n.Height), nil

	case "ellipse":
		if n.Width < 0 || n.Height < 0 {
			return nil, fmt.Errorf("%w: node %q: negative dimensions", ErrBadValue, name)
		}
		return diagram.Ellipse(n.Width, n.Height), nil

	case "beside":
		if n.Left == "" || n.Right == "" {
			return nil, fmt.Errorf("%w: node %q: beside needs left and right", ErrBadValue, name)
		}
		l, err := resolve(doc, n.Left, visiting)
		if err != nil {
			return nil, err
		}
		r, err := resolve(doc, n.Right, visiting)
		if err != nil {
			return nil, err
		}
		return diagram.Beside(l, r), nil

	case "below":
		if n.Top == "" || n.Bottom == "" {
			return nil, fmt.Errorf("%w: node %q: below needs top and bottom", ErrBadValue, name)
		}
		t, err := resolve(doc, n.Top, visiting)
		if err != nil {
			return nil, err
		}
		b, err := resolve(doc, n.Bottom, visiting)
		if err != nil {
			return nil, err
		}
		return diagram.Below(t, b), nil

	case "":
		return nil, fmt.Errorf("%w: node %q: kind is required", ErrBadKind, name)

	default:
		return nil, fmt.Errorf("%w: node %q: %q", ErrBadKind, name, n.Kind)
	}
}

// annotate applies the optional align and fill fields, fill outermost.
func annotate(name string, n node, d diagram.Diagram) (diagram.Diagram, error) {
	if n.Align != nil {
		if len(n.Align) != 2 {
			return nil, fmt.Errorf("%w: node %q: align needs [x, y]", ErrBadValue, name)
		}
		x, y := n.Align[0], n.Align[1]
		if x < 0 || x > 1 || y < 0 || y > 1 {
			return nil, fmt.Errorf("%w: node %q: align components must be in [0,1]", ErrBadValue, name)
		}
		d = diagram.Align(x, y, d)
	}
	if n.Fill != "" {
		if !validHex(n.Fill) {
			return nil, fmt.Errorf("%w: node %q: bad fill color %q", ErrBadValue, name, n.Fill)
		}
		d = diagram.WithFill(diagram.Hex(n.Fill), d)
	}
	return d, nil
}

// validHex reports whether s is a hex color the diagram package
// accepts: 3, 4, 6 or 8 hex digits with an optional leading '#'.
func validHex(s string) bool {
	if s != "" && s[0] == '#' {
		s = s[1:]
	}
	switch len(s) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case '0' <= c && c <= '9':
		case 'a' <= c && c <= 'f':
		case 'A' <= c && c <= 'F':
		default:
			return false
		}
	}
	return true
}
