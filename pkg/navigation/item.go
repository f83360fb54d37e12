package navigation

import (
	"iter"
	"slices"
)

// Item represents one entry of the admin navigation while the tree is being assembled.
// Items are mutated in place by their contributors and converted into an immutable Node
// with Freeze before they are handed to a rendering layer.
//
// An Item owns its children exclusively. It carries no locking and must not be shared
// across concurrently served requests.
type Item struct {
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
	children       []*Item
}

// New creates an item with the given name. All other attributes are unset
// and the item is enabled.
func New(name string) *Item {
	return &Item{name: name}
}

// ID returns the stable identifier of the item, or an empty string if none was set.
func (i *Item) ID() string { return i.id }

// SetID sets the stable identifier of the item.
func (i *Item) SetID(id string) { i.id = id }

// Name returns the name of the item. The name is also its equivalence key.
func (i *Item) Name() string { return i.name }

// SetName replaces the name of the item.
func (i *Item) SetName(name string) { i.name = name }

// Label returns the display override of the name, or an empty string.
func (i *Item) Label() string { return i.label }

// SetLabel sets the display override of the name.
func (i *Item) SetLabel(label string) { i.label = label }

// Icon returns the icon identifier of the item.
func (i *Item) Icon() string { return i.icon }

// SetIcon sets the icon identifier of the item.
func (i *Item) SetIcon(icon string) { i.icon = icon }

// View returns the name of the view the item opens.
func (i *Item) View() string { return i.view }

// SetView sets the view the item opens.
func (i *Item) SetView(view string) { i.view = view }

// ChildViews returns the views associated with this item. These are not tree children.
func (i *Item) ChildViews() []string { return slices.Clone(i.childViews) }

// SetChildViews replaces the child views with a copy of views.
func (i *Item) SetChildViews(views []string) { i.childViews = slices.Clone(views) }

// AddChildView appends a single view to the child views of the item.
func (i *Item) AddChildView(view string) { i.childViews = append(i.childViews, view) }

// Event returns the name of the custom behaviour attached to the item.
func (i *Item) Event() string { return i.event }

// SetEvent sets the custom behaviour attached to the item.
func (i *Item) SetEvent(event string) { i.event = event }

// EventArguments returns the arguments passed along with the event.
func (i *Item) EventArguments() string { return i.eventArguments }

// SetEventArguments sets the arguments passed along with the event.
func (i *Item) SetEventArguments(args string) { i.eventArguments = args }

// HeaderTitle returns the title shown when the item is rendered as a section head.
func (i *Item) HeaderTitle() string { return i.headerTitle }

// SetHeaderTitle sets the section head title.
func (i *Item) SetHeaderTitle(title string) { i.headerTitle = title }

// HeaderIcon returns the logo shown when the item is rendered as a section head.
func (i *Item) HeaderIcon() string { return i.headerIcon }

// SetHeaderIcon sets the section head logo.
func (i *Item) SetHeaderIcon(icon string) { i.headerIcon = icon }

// Position returns the sort key of the item among its siblings and whether one is set.
func (i *Item) Position() (int, bool) {
	if i.position == nil {
		return 0, false
	}
	return *i.position, true
}

// SetPosition sets the sort key of the item among its siblings.
func (i *Item) SetPosition(pos int) { i.position = &pos }

// ClearPosition removes the sort key, which orders the item after all positioned siblings.
func (i *Item) ClearPosition() { i.position = nil }

// HasSettings returns the settings flag and whether it was set at all.
func (i *Item) HasSettings() (bool, bool) {
	if i.hasSettings == nil {
		return false, false
	}
	return *i.hasSettings, true
}

// SetHasSettings sets whether the item has settings.
func (i *Item) SetHasSettings(v bool) { i.hasSettings = &v }

// Disabled reports whether the item is disabled.
func (i *Item) Disabled() bool { return i.disabled }

// SetDisabled enables or disables the item.
func (i *Item) SetDisabled(v bool) { i.disabled = v }

// AddChild appends child to the children of the item.
// Nil children are ignored. No dedup or cycle checks are made.
func (i *Item) AddChild(child *Item) {
	if child == nil {
		return
	}
	i.children = append(i.children, child)
}

// Children returns the immediate children of the item in insertion order.
// The returned slice is a copy, the items are not.
func (i *Item) Children() []*Item { return slices.Clone(i.children) }

// HasChildren reports whether the item has at least one child.
func (i *Item) HasChildren() bool { return len(i.children) > 0 }

// All iterates over the immediate children of the item together with their index.
func (i *Item) All() iter.Seq2[int, *Item] {
	return func(yield func(int, *Item) bool) {
		for idx, child := range i.children {
			if !yield(idx, child) {
				return
			}
		}
	}
}

// EqualsChildless compares the item with other by name only.
// Children and all other attributes are ignored.
func (i *Item) EqualsChildless(other *Item) bool {
	if other == nil {
		return false
	}
	return i.name == other.name
}

// Find searches the subtree rooted at i, including i itself, for an item
// equivalent to target and returns nil if there is none.
//
// When several items share the name of target it is unspecified which one is returned.
func (i *Item) Find(target *Item) *Item {
	if target == nil {
		return nil
	}

	stack := []*Item{i}
	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if item.EqualsChildless(target) {
			return item
		}

		stack = append(stack, item.children...)
	}

	return nil
}

// FindChildren searches the immediate children of i for an item equivalent
// to target and returns nil if there is none.
func (i *Item) FindChildren(target *Item) *Item {
	if target == nil {
		return nil
	}

	for _, child := range i.children {
		if child.EqualsChildless(target) {
			return child
		}
	}

	return nil
}

// CopyChildless returns a copy of the item with all attributes but without children.
func (i *Item) CopyChildless() *Item {
	c := New(i.name)
	c.view = i.view
	c.childViews = slices.Clone(i.childViews)
	c.event = i.event
	c.eventArguments = i.eventArguments
	c.icon = i.icon
	c.headerIcon = i.headerIcon
	c.headerTitle = i.headerTitle
	c.id = i.id
	c.label = i.label
	c.disabled = i.disabled

	if i.hasSettings != nil {
		c.SetHasSettings(*i.hasSettings)
	}

	if i.position != nil {
		c.SetPosition(*i.position)
	}

	return c
}

// ToArray serializes the item and its subtree. See Node.ToArray.
func (i *Item) ToArray(opts ...ExportOption) *Array {
	return i.Freeze().ToArray(opts...)
}
