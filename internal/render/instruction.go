// Package render turns analysis data into display instructions. Renderers
// are pure: they read only their arguments and return the instructions a
// host (server-side DOM, browser script, terminal) applies in order.
package render

import "strings"

// Op is a display operation.
type Op string

const (
	// OpClear removes every child of the target.
	OpClear Op = "clear"
	// OpSetText replaces the target's children with a single text node.
	OpSetText Op = "set_text"
	// OpSetStyle sets one inline style property on the target.
	OpSetStyle Op = "set_style"
	// OpAddClass adds a class to the target.
	OpAddClass Op = "add_class"
	// OpRemoveClass removes a class from the target.
	OpRemoveClass Op = "remove_class"
	// OpAppend appends a node subtree to the target.
	OpAppend Op = "append"
)

// Instruction is a single mutation of the element whose id is Target.
// Text is always inserted as data; no operation accepts markup.
type Instruction struct {
	Op       Op     `json:"op"`
	Target   string `json:"target"`
	Text     string `json:"text,omitempty"`
	Property string `json:"property,omitempty"`
	Value    string `json:"value,omitempty"`
	Class    string `json:"class,omitempty"`
	Node     *Node  `json:"node,omitempty"`
}

// Decl is one inline style declaration.
type Decl struct {
	Property string `json:"property"`
	Value    string `json:"value"`
}

// Node is an element to be created by an append instruction. Text, when
// set, becomes the first child and precedes Children.
type Node struct {
	Tag      string  `json:"tag"`
	ID       string  `json:"id,omitempty"`
	Class    string  `json:"class,omitempty"`
	Text     string  `json:"text,omitempty"`
	Title    string  `json:"title,omitempty"`
	Style    []Decl  `json:"style,omitempty"`
	Children []*Node `json:"children,omitempty"`
}

// StyleValue returns the value of an inline style property, or "".
func (n *Node) StyleValue(property string) string {
	for _, d := range n.Style {
		if d.Property == property {
			return d.Value
		}
	}
	return ""
}

// StyleAttr renders the inline style as a CSS declaration list.
func (n *Node) StyleAttr() string {
	parts := make([]string, len(n.Style))
	for i, d := range n.Style {
		parts[i] = d.Property + ": " + d.Value
	}
	return strings.Join(parts, "; ")
}

// Clear removes every child of target.
func Clear(target string) Instruction {
	return Instruction{Op: OpClear, Target: target}
}

// SetText replaces the content of target with a single text node.
func SetText(target, text string) Instruction {
	return Instruction{Op: OpSetText, Target: target, Text: text}
}

// SetStyle sets one inline style property on target.
func SetStyle(target, property, value string) Instruction {
	return Instruction{Op: OpSetStyle, Target: target, Property: property, Value: value}
}

// AddClass adds class to target if it is not already present.
func AddClass(target, class string) Instruction {
	return Instruction{Op: OpAddClass, Target: target, Class: class}
}

// RemoveClass removes class from target.
func RemoveClass(target, class string) Instruction {
	return Instruction{Op: OpRemoveClass, Target: target, Class: class}
}

// Append adds n as the last child of target.
func Append(target string, n *Node) Instruction {
	return Instruction{Op: OpAppend, Target: target, Node: n}
}

// el is shorthand for building nodes.
func el(tag, class, text string, children ...*Node) *Node {
	return &Node{Tag: tag, Class: class, Text: text, Children: children}
}
