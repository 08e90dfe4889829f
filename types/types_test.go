package types_test

import (
	"testing"

	"github.com/minicc/minicc/testers/require"
	"github.com/minicc/minicc/types"
)

func TestSingletonsAreCanonical(t *testing.T) {
	require.True(t, types.Unit() == types.Unit())
	require.True(t, types.Any() == types.Any())
	require.True(t, types.Never() == types.Never())
	require.True(t, types.MetaInt() == types.MetaInt())
	require.True(t, types.MetaFloat() == types.MetaFloat())
	require.True(t, types.Meta(types.Int) == types.MetaInt())
}

func TestEqualReflexive(t *testing.T) {
	arr := types.NewArray(types.MetaInt(), []int{2, 3})
	fn := types.NewFunc([]*types.Type{types.MetaInt()}, types.MetaFloat())
	st := types.NewStruct([]types.Field{{Name: "x", Type: types.MetaInt()}})
	for _, tc := range []*types.Type{
		types.Unit(), types.Any(), types.Never(), types.MetaInt(),
		types.MetaFloat(), arr, fn, st,
	} {
		require.True(t, types.Equal(tc, tc, true))
		require.True(t, types.Equal(tc, tc, false))
	}
}

func TestEqualSentinelsAbsorb(t *testing.T) {
	targets := []*types.Type{
		types.MetaInt(),
		types.MetaFloat(),
		types.Unit(),
		types.NewArray(types.MetaInt(), []int{4}),
		types.NewFunc(nil, types.Unit()),
		types.NewStruct(nil),
	}
	for _, tgt := range targets {
		require.True(t, types.Equal(types.Any(), tgt, true))
		require.True(t, types.Equal(tgt, types.Any(), true))
		require.True(t, types.Equal(types.Never(), tgt, true))
		require.True(t, types.Equal(tgt, types.Never(), true))
	}
}

func TestEqualMetaKindMustMatch(t *testing.T) {
	require.False(t, types.Equal(types.MetaInt(), types.MetaFloat(), false))
	require.False(t, types.Equal(types.MetaFloat(), types.MetaInt(), true))
}

func TestEqualArrayNonStrictIgnoresDims(t *testing.T) {
	a := types.NewArray(types.MetaInt(), []int{10})
	b := types.NewArray(types.MetaInt(), []int{20})
	require.True(t, types.Equal(a, b, false))
	require.False(t, types.Equal(a, b, true))
}

func TestEqualArrayRankMustMatch(t *testing.T) {
	a := types.NewArray(types.MetaInt(), []int{10})
	b := types.NewArray(types.MetaInt(), []int{10, 20})
	require.False(t, types.Equal(a, b, false))
}

func TestEqualStructIgnoresMemberNamesButNotArrayDims(t *testing.T) {
	s1 := types.NewStruct([]types.Field{
		{Name: "a", Type: types.NewArray(types.MetaInt(), []int{10})},
	})
	s2 := types.NewStruct([]types.Field{
		{Name: "totallyDifferent", Type: types.NewArray(types.MetaInt(), []int{10})},
	})
	s3 := types.NewStruct([]types.Field{
		{Name: "a", Type: types.NewArray(types.MetaInt(), []int{20})},
	})
	require.True(t, types.Equal(s1, s2, false))
	require.False(t, types.Equal(s1, s3, false))
}

func TestEqualFuncNonStrictOnParamsAndReturn(t *testing.T) {
	f1 := types.NewFunc(
		[]*types.Type{types.NewArray(types.MetaInt(), []int{10})},
		types.NewArray(types.MetaInt(), []int{1}),
	)
	f2 := types.NewFunc(
		[]*types.Type{types.NewArray(types.MetaInt(), []int{20})},
		types.NewArray(types.MetaInt(), []int{2}),
	)
	require.True(t, types.Equal(f1, f2, false))
}

func TestDescendArrayReducesRankByOne(t *testing.T) {
	a := types.NewArray(types.MetaInt(), []int{2, 3, 4})
	b := types.DescendArray(a)
	require.True(t, b.Kind() == types.KArray)
	require.Equal(t, 2, b.Rank())
	require.Equal(t, a.Rank()-1, b.Rank())

	c := types.NewArray(types.MetaInt(), []int{7})
	require.True(t, types.DescendArray(c) == types.MetaInt())
}

func TestCapabilityPredicates(t *testing.T) {
	fn := types.NewFunc(nil, types.Unit())
	arr := types.NewArray(types.MetaInt(), []int{3})
	st := types.NewStruct([]types.Field{{Name: "f", Type: types.MetaInt()}})

	require.True(t, types.CanCall(fn))
	require.False(t, types.CanCall(arr))

	require.True(t, types.CanIndex(arr))
	require.False(t, types.CanIndex(fn))

	require.True(t, types.CanMember(st))
	require.False(t, types.CanMember(arr))

	m, ok := types.FindMember(st, "f")
	require.True(t, ok)
	require.True(t, m.Type == types.MetaInt())
	_, ok = types.FindMember(st, "missing")
	require.False(t, ok)

	require.True(t, types.CanLogic(types.MetaInt()))
	require.False(t, types.CanLogic(types.MetaFloat()))

	require.True(t, types.CanArith(types.MetaInt()))
	require.True(t, types.CanArith(types.MetaFloat()))
	require.False(t, types.CanArith(types.Unit()))

	require.True(t, types.CanArithPair(types.MetaInt(), types.MetaInt()))
	require.False(t, types.CanArithPair(types.MetaInt(), types.MetaFloat()))
}
