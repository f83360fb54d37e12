package navigation

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTree() *Item {
	root := New("root")

	settings := New("settings")
	settings.SetPosition(20)
	users := New("users")
	roles := New("roles")
	settings.AddChild(users)
	settings.AddChild(roles)

	content := New("content")
	content.SetPosition(10)
	pages := New("pages")
	content.AddChild(pages)

	root.AddChild(settings)
	root.AddChild(content)

	return root
}

func TestNewDefaults(t *testing.T) {
	i := New("media")

	assert.Equal(t, "media", i.Name())
	assert.False(t, i.Disabled())
	assert.False(t, i.HasChildren())
	assert.Empty(t, i.ChildViews())

	_, ok := i.Position()
	assert.False(t, ok)

	_, ok = i.HasSettings()
	assert.False(t, ok)
}

func TestAddChild(t *testing.T) {
	i := New("root")
	assert.False(t, i.HasChildren())

	i.AddChild(New("a"))
	assert.True(t, i.HasChildren())

	i.AddChild(nil)
	i.AddChild(New("b"))

	names := []string{}
	for _, c := range i.Children() {
		names = append(names, c.Name())
	}
	assert.Equal(t, []string{"a", "b"}, names)
}

func TestEqualsChildless(t *testing.T) {
	tests := []struct {
		name  string
		a, b  func() *Item
		equal bool
	}{
		{
			name:  "same name",
			a:     func() *Item { return New("x") },
			b:     func() *Item { return New("x") },
			equal: true,
		},
		{
			name: "same name different attributes and children",
			a: func() *Item {
				i := New("x")
				i.SetIcon("fa-x")
				i.SetPosition(1)
				i.AddChild(New("child"))
				return i
			},
			b: func() *Item {
				i := New("x")
				i.SetView("view.x")
				i.SetDisabled(true)
				return i
			},
			equal: true,
		},
		{
			name:  "case sensitive",
			a:     func() *Item { return New("Settings") },
			b:     func() *Item { return New("settings") },
			equal: false,
		},
		{
			name: "different name same attributes",
			a: func() *Item {
				i := New("a")
				i.SetIcon("fa")
				return i
			},
			b: func() *Item {
				i := New("b")
				i.SetIcon("fa")
				return i
			},
			equal: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.equal, tt.a().EqualsChildless(tt.b()))
			assert.Equal(t, tt.equal, tt.b().EqualsChildless(tt.a()))
		})
	}

	assert.False(t, New("x").EqualsChildless(nil))
}

func TestFind(t *testing.T) {
	root := newTestTree()

	for _, name := range []string{"root", "settings", "roles", "pages"} {
		found := root.Find(New(name))
		require.NotNil(t, found, name)
		assert.True(t, found.EqualsChildless(New(name)))
	}

	assert.Nil(t, root.Find(New("missing")))
	assert.Nil(t, root.Find(nil))
}

func TestFindReturnsTreeInstance(t *testing.T) {
	root := newTestTree()

	found := root.Find(New("roles"))
	require.NotNil(t, found)
	found.SetIcon("fa-roles")

	again := root.Find(New("roles"))
	assert.Equal(t, "fa-roles", again.Icon())
}

func TestFindChildren(t *testing.T) {
	root := newTestTree()

	assert.NotNil(t, root.FindChildren(New("settings")))
	assert.NotNil(t, root.Find(New("users")))
	assert.Nil(t, root.FindChildren(New("users")))
	assert.Nil(t, root.FindChildren(New("root")))
	assert.Nil(t, root.FindChildren(nil))
}

func TestCopyChildless(t *testing.T) {
	src := New("snippets")
	src.SetID("snippets-id")
	src.SetLabel("Snippets")
	src.SetIcon("su-snippet")
	src.SetView("sulu_snippet.list")
	src.SetChildViews([]string{"sulu_snippet.add_form", "sulu_snippet.edit_form"})
	src.SetEvent("open")
	src.SetEventArguments("{\"a\":1}")
	src.SetHeaderTitle("Header")
	src.SetHeaderIcon("logo")
	src.SetPosition(30)
	src.SetHasSettings(true)
	src.AddChild(New("child"))

	c := src.CopyChildless()

	assert.False(t, c.HasChildren())
	assert.True(t, src.HasChildren())
	assert.Equal(t, src.Name(), c.Name())
	assert.Equal(t, src.ID(), c.ID())
	assert.Equal(t, src.Label(), c.Label())
	assert.Equal(t, src.Icon(), c.Icon())
	assert.Equal(t, src.View(), c.View())
	assert.Equal(t, src.ChildViews(), c.ChildViews())
	assert.Equal(t, src.Event(), c.Event())
	assert.Equal(t, src.EventArguments(), c.EventArguments())
	assert.Equal(t, src.HeaderTitle(), c.HeaderTitle())
	assert.Equal(t, src.HeaderIcon(), c.HeaderIcon())

	pos, ok := c.Position()
	assert.True(t, ok)
	assert.Equal(t, 30, pos)

	hs, ok := c.HasSettings()
	assert.True(t, ok)
	assert.True(t, hs)

	c.SetLabel("changed")
	c.AddChildView("sulu_snippet.other")
	c.SetPosition(1)
	c.SetHasSettings(false)
	c.AddChild(New("copy-child"))

	assert.Equal(t, "Snippets", src.Label())
	assert.Len(t, src.ChildViews(), 2)
	pos, _ = src.Position()
	assert.Equal(t, 30, pos)
	hs, _ = src.HasSettings()
	assert.True(t, hs)
	assert.Len(t, src.Children(), 1)
}

func TestAll(t *testing.T) {
	root := New("root")
	root.AddChild(New("a"))
	root.AddChild(New("b"))
	root.AddChild(New("c"))

	var idx []int
	var names []string
	for i, c := range root.All() {
		idx = append(idx, i)
		names = append(names, c.Name())
	}
	assert.Equal(t, []int{0, 1, 2}, idx)
	assert.Equal(t, []string{"a", "b", "c"}, names)

	names = names[:0]
	for _, c := range root.All() {
		names = append(names, c.Name())
		if c.Name() == "b" {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, names)

	count := 0
	for range New("leaf").All() {
		count++
	}
	assert.Zero(t, count)
}

func TestChildrenSnapshot(t *testing.T) {
	root := New("root")
	root.AddChild(New("a"))

	children := root.Children()
	children[0] = New("replaced")
	children = append(children, New("extra"))

	assert.Equal(t, "a", root.Children()[0].Name())
	assert.Len(t, root.Children(), 1)
	assert.Len(t, children, 2)
}

func TestSetChildViewsCopies(t *testing.T) {
	views := []string{"a", "b"}
	i := New("x")
	i.SetChildViews(views)
	views[0] = "z"

	assert.True(t, slices.Equal([]string{"a", "b"}, i.ChildViews()))

	i.ClearPosition()
	_, ok := i.Position()
	assert.False(t, ok)
}
