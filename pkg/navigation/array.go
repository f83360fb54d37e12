package navigation

import (
	"cmp"
	"math"
	"slices"

	"github.com/google/uuid"
)

// Array is the serialized form of a navigation node as consumed by the admin UI.
// The field order is the order of the keys in the JSON payload.
type Array struct {
	Title          string   `json:"title"`
	Label          *string  `json:"label"`
	Icon           *string  `json:"icon"`
	View           *string  `json:"view"`
	Event          *string  `json:"event"`
	EventArguments *string  `json:"eventArguments"`
	HasSettings    *bool    `json:"hasSettings"`
	Disabled       bool     `json:"disabled"`
	ID             string   `json:"id"`
	ChildViews     []string `json:"childViews,omitempty"`
	Header         *Header  `json:"header,omitempty"`
	Items          []*Array `json:"items,omitempty"`
}

// Header decorates a node rendered as a section head.
type Header struct {
	Title *string `json:"title"`
	Logo  *string `json:"logo"`
}

// IDGenerator returns a fresh identifier for nodes without a stable ID.
type IDGenerator func() string

type exportOptions struct {
	newID IDGenerator
}

// ExportOption configures ToArray.
type ExportOption func(*exportOptions)

// WithIDGenerator replaces the generator used for nodes without an ID.
// By default a random UUID is used.
func WithIDGenerator(gen IDGenerator) ExportOption {
	return func(o *exportOptions) {
		if gen != nil {
			o.newID = gen
		}
	}
}

// ToArray serializes the node and its subtree.
//
// Children are ordered by position, nodes without a position go last and
// siblings with equal positions keep their insertion order. A node without an
// ID gets a generated one, so two calls on such a node differ in their IDs only.
func (n Node) ToArray(opts ...ExportOption) *Array {
	o := &exportOptions{newID: uuid.NewString}
	for _, opt := range opts {
		opt(o)
	}

	return n.toArray(o)
}

func (n Node) toArray(o *exportOptions) *Array {
	a := &Array{
		Title:          n.name,
		Label:          optional(n.label),
		Icon:           optional(n.icon),
		View:           optional(n.view),
		Event:          optional(n.event),
		EventArguments: optional(n.eventArguments),
		Disabled:       n.disabled,
		ID:             n.id,
	}

	if n.hasSettings != nil {
		v := *n.hasSettings
		a.HasSettings = &v
	}

	if a.ID == "" {
		a.ID = o.newID()
	}

	if len(n.childViews) > 0 {
		a.ChildViews = slices.Clone(n.childViews)
	}

	if n.headerIcon != "" || n.headerTitle != "" {
		a.Header = &Header{
			Title: optional(n.headerTitle),
			Logo:  optional(n.headerIcon),
		}
	}

	for _, child := range n.sortedChildren() {
		a.Items = append(a.Items, child.toArray(o))
	}

	return a
}

// sortedChildren returns the children ordered by position without touching n.
func (n Node) sortedChildren() []Node {
	if len(n.children) == 0 {
		return nil
	}

	sorted := slices.Clone(n.children)
	slices.SortStableFunc(sorted, func(a, b Node) int {
		return cmp.Compare(a.sortKey(), b.sortKey())
	})

	return sorted
}

func (n Node) sortKey() int {
	if n.position == nil {
		return math.MaxInt
	}
	return *n.position
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
