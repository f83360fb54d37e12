package navigation

import (
	"iter"
	"slices"
)

// Node is the read-only form of an Item. It is produced by Item.Freeze once
// assembly is done and can be serialized or inspected without any risk of
// contributors changing it underneath.
//
// The zero Node is an unnamed leaf.
type Node struct {
	id             string
	name           string
	label          string
	icon           string
	view           string
	childViews     []string
	event          string
	eventArguments string
	headerTitle    string
	headerIcon     string
	position       *int
	hasSettings    *bool
	disabled       bool
	children       []Node
}

// Freeze converts the item and its whole subtree into a Node.
// Later changes to the item are not visible in the returned value.
func (i *Item) Freeze() Node {
	n := Node{
		id:             i.id,
		name:           i.name,
		label:          i.label,
		icon:           i.icon,
		view:           i.view,
		childViews:     slices.Clone(i.childViews),
		event:          i.event,
		eventArguments: i.eventArguments,
		headerTitle:    i.headerTitle,
		headerIcon:     i.headerIcon,
		disabled:       i.disabled,
	}

	if i.position != nil {
		p := *i.position
		n.position = &p
	}

	if i.hasSettings != nil {
		h := *i.hasSettings
		n.hasSettings = &h
	}

	if len(i.children) > 0 {
		n.children = make([]Node, 0, len(i.children))
		for _, child := range i.children {
			n.children = append(n.children, child.Freeze())
		}
	}

	return n
}

// ID returns the stable identifier, or an empty string.
func (n Node) ID() string { return n.id }

// Name returns the name, which is also the equivalence key.
func (n Node) Name() string { return n.name }

// Label returns the display override of the name.
func (n Node) Label() string { return n.label }

// Icon returns the icon identifier.
func (n Node) Icon() string { return n.icon }

// View returns the name of the view the node opens.
func (n Node) View() string { return n.view }

// ChildViews returns a copy of the views associated with the node.
func (n Node) ChildViews() []string { return slices.Clone(n.childViews) }

// Event returns the custom behaviour attached to the node.
func (n Node) Event() string { return n.event }

// EventArguments returns the arguments passed along with the event.
func (n Node) EventArguments() string { return n.eventArguments }

// HeaderTitle returns the section head title.
func (n Node) HeaderTitle() string { return n.headerTitle }

// HeaderIcon returns the section head logo.
func (n Node) HeaderIcon() string { return n.headerIcon }

// Disabled reports whether the node is disabled.
func (n Node) Disabled() bool { return n.disabled }

// Position returns the sort key of the node and whether one is set.
func (n Node) Position() (int, bool) {
	if n.position == nil {
		return 0, false
	}
	return *n.position, true
}

// HasSettings returns the settings flag and whether it was set at all.
func (n Node) HasSettings() (bool, bool) {
	if n.hasSettings == nil {
		return false, false
	}
	return *n.hasSettings, true
}

// Len returns the number of immediate children.
func (n Node) Len() int { return len(n.children) }

// HasChildren reports whether the node has at least one child.
func (n Node) HasChildren() bool { return len(n.children) > 0 }

// All iterates over the immediate children in insertion order.
func (n Node) All() iter.Seq2[int, Node] {
	return func(yield func(int, Node) bool) {
		for idx, child := range n.children {
			if !yield(idx, child) {
				return
			}
		}
	}
}

// EqualsChildless compares two nodes by name only.
func (n Node) EqualsChildless(other Node) bool {
	return n.name == other.name
}

// Find searches the subtree rooted at n, including n, for a node with the given name.
// The boolean is false if there is none.
func (n Node) Find(name string) (Node, bool) {
	stack := []Node{n}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if node.name == name {
			return node, true
		}

		stack = append(stack, node.children...)
	}

	return Node{}, false
}

// FindChildren searches the immediate children of n for a node with the given name.
func (n Node) FindChildren(name string) (Node, bool) {
	for _, child := range n.children {
		if child.name == name {
			return child, true
		}
	}

	return Node{}, false
}
