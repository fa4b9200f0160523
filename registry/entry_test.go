package registry

import (
	"errors"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"iface-caster/identity"
)

func TestEntryFor_PointerReceiver(t *testing.T) {
	e := EntryFor[widget, counter]()
	assert.Equal(t, identity.ConcreteFor[widget](), e.Concrete)
	assert.Equal(t, "registry.widget", e.SourceName)
	assert.Equal(t, "registry.counter", e.TargetName)

	w := &widget{}

	t.Run("ref by pointer", func(t *testing.T) {
		c, ok := e.Ref(w)
		require.True(t, ok, spew.Sdump(e))
		assert.Equal(t, 1, c.Next())
	})

	t.Run("ref by value works on a copy", func(t *testing.T) {
		c, ok := e.Ref(widget{n: 10})
		require.True(t, ok)
		assert.Equal(t, 11, c.Next())
		assert.Equal(t, 1, w.n)
	})

	t.Run("mut shares the pointer", func(t *testing.T) {
		c, ok := e.Mut(w)
		require.True(t, ok)
		assert.Equal(t, 2, c.Next())
		assert.Equal(t, 2, w.n)
	})

	t.Run("mut rejects values", func(t *testing.T) {
		_, ok := e.Mut(widget{})
		assert.False(t, ok)
	})

	t.Run("owned boxes values", func(t *testing.T) {
		c, ok := e.Owned(widget{n: 5})
		require.True(t, ok)
		assert.Equal(t, 6, c.Next())
		assert.Equal(t, 7, c.Next())
	})

	t.Run("owned transfers pointers", func(t *testing.T) {
		c, ok := e.Owned(w)
		require.True(t, ok)
		assert.Same(t, w, c)
	})
}

func TestEntryFor_ValueReceiver(t *testing.T) {
	e := EntryFor[widget, namer]()
	w := &widget{name: "before"}

	ref, ok := e.Ref(w)
	require.True(t, ok)

	mut, ok := e.Mut(w)
	require.True(t, ok)

	w.name = "after"

	assert.Equal(t, "before", ref.Name(), "ref views a copy")
	assert.Equal(t, "after", mut.Name(), "mut shares the pointer")
}

func TestEntry_RejectsOtherIdentities(t *testing.T) {
	e := EntryFor[widget, namer]()

	for name, v := range map[string]any{
		"untyped nil":   nil,
		"typed nil":     (*widget)(nil),
		"other type":    gadget{},
		"other pointer": &gadget{},
		"double ptr":    new(*widget),
	} {
		t.Run(name, func(t *testing.T) {
			for mode := range Mode(ModeTotal) {
				got, ok := e.Convert(mode, v)
				assert.False(t, ok, "%s accepted %T", mode, v)
				assert.Nil(t, got)
			}
		})
	}
}

func TestEntryFor_Panics(t *testing.T) {
	tests := []struct {
		name  string
		build func()
	}{
		{"pointer type", func() { EntryFor[*widget, counter]() }},
		{"interface type", func() { EntryFor[namer, namer]() }},
		{"not an interface", func() { EntryFor[widget, gadget]() }},
		{"not implemented", func() { EntryFor[gadget, counter]() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Panics(t, tt.build)
		})
	}
}

func TestNewEntry(t *testing.T) {
	e := NewEntry[celsius, namer](celsiusName, celsiusName, celsiusName)
	require.NoError(t, e.Validate())

	temp := celsius(21.5)

	n, ok := e.Ref(&temp)
	require.True(t, ok)
	assert.Equal(t, "21.5C", n.Name())

	n, ok = e.Owned(celsius(-3))
	require.True(t, ok)
	assert.Equal(t, "-3.0C", n.Name())

	_, ok = e.Mut(celsius(0))
	assert.False(t, ok)
}

func TestNewEntry_MissingAdapter(t *testing.T) {
	v := recovered(func() { NewEntry[celsius, namer](celsiusName, nil, celsiusName) })
	require.NotNil(t, v)
	assert.Contains(t, v, ErrIncompleteEntry.Error())
}

func TestEntry_Validate(t *testing.T) {
	var empty Entry[namer]
	assert.ErrorIs(t, empty.Validate(), ErrIncompleteEntry)

	partial := EntryFor[widget, namer]()
	partial.Owned = nil

	err := partial.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIncompleteEntry))
	assert.Contains(t, err.Error(), "no owned conversion")
}

func TestEntry_ConvertUnknownMode(t *testing.T) {
	e := EntryFor[widget, namer]()
	assert.PanicsWithValue(t, "registry: unknown conversion mode Mode(7)", func() {
		e.Convert(Mode(7), &widget{})
	})
}

func TestMode_String(t *testing.T) {
	assert.Equal(t, "ref", ModeRef.String())
	assert.Equal(t, "mut", ModeMut.String())
	assert.Equal(t, "owned", ModeOwned.String())
}
