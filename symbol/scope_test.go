package symbol_test

import (
	"testing"

	"github.com/minicc/minicc/symbol"
	"github.com/minicc/minicc/types"

	"github.com/minicc/minicc/testers/assert"
)

func TestFindClimbsParentChain(t *testing.T) {
	top := symbol.New(nil)
	top.PushFront(&symbol.Symbol{Name: "x", Type: types.MetaInt()})

	child := symbol.New(top)
	assert.NotNil(t, child.Find("x"))
	assert.Nil(t, child.FindHere("x"))
}

func TestShadowingDoesNotMutateParent(t *testing.T) {
	// a name introduced in a child scope is invisible to
	// the parent, even after the child installs a symbol of the same name.
	top := symbol.New(nil)
	top.PushFront(&symbol.Symbol{Name: "x", Type: types.MetaInt()})

	child := symbol.New(top)
	child.PushFront(&symbol.Symbol{Name: "x", Type: types.MetaFloat()})

	assert.Equal(t, types.Float, child.Find("x").Type.MetaKind())
	assert.Equal(t, types.Int, top.Find("x").Type.MetaKind())
}

func TestFindHereIgnoresAncestors(t *testing.T) {
	top := symbol.New(nil)
	top.PushFront(&symbol.Symbol{Name: "x", Type: types.MetaInt()})
	child := symbol.New(top)

	assert.Nil(t, child.FindHere("x"))
	assert.NotNil(t, top.FindHere("x"))
}

func TestIterPreservesInsertionOrder(t *testing.T) {
	s := symbol.New(nil)
	s.PushFront(&symbol.Symbol{Name: "a", Type: types.MetaInt()})
	s.PushFront(&symbol.Symbol{Name: "b", Type: types.MetaFloat()})
	s.PushFront(&symbol.Symbol{Name: "c", Type: types.MetaInt()})

	names := make([]string, 0, 3)
	for _, sym := range s.Iter() {
		names = append(names, sym.Name)
	}
	assert.Equal(t, []string{"a", "b", "c"}, names)
	assert.Equal(t, 3, s.Len())
}

func TestPushFrontOverwriteKeepsOriginalPosition(t *testing.T) {
	s := symbol.New(nil)
	s.PushFront(&symbol.Symbol{Name: "a", Type: types.MetaInt()})
	s.PushFront(&symbol.Symbol{Name: "b", Type: types.MetaInt()})
	s.PushFront(&symbol.Symbol{Name: "a", Type: types.MetaFloat()})

	names := make([]string, 0, 2)
	for _, sym := range s.Iter() {
		names = append(names, sym.Name)
	}
	assert.Equal(t, []string{"a", "b"}, names)
	assert.Equal(t, types.Float, s.FindHere("a").Type.MetaKind())
}

func TestSnapshotAsMembersRendersStructFields(t *testing.T) {
	s := symbol.New(nil)
	s.PushFront(&symbol.Symbol{Name: "x", Type: types.MetaInt()})
	s.PushFront(&symbol.Symbol{Name: "y", Type: types.MetaFloat()})

	members := s.SnapshotAsMembers()
	require := []types.Field{{Name: "x", Type: types.MetaInt()}, {Name: "y", Type: types.MetaFloat()}}
	assert.Equal(t, require, members)
}
