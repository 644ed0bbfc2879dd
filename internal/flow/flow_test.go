package flow

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBrowsingNeverNavigates(t *testing.T) {
	s := New(3, 0)
	s, fx := Step(s, SelectionChanged{Index: 2})
	require.Empty(t, fx)
	require.Equal(t, ListVisible, s.Screen)
	require.Equal(t, 2, s.Selected)
}

func TestCommitFlagShowsDetail(t *testing.T) {
	s := New(3, 0)
	s, fx := Step(s, SelectionChanged{Index: 1, Context: ContextChangeOption})
	require.Equal(t, DetailVisible, s.Screen)
	require.Equal(t, []Effect{LoadDetail{Index: 1}, PushDetail{}}, fx)
}

func TestViewWithoutChangeUsesDefault(t *testing.T) {
	s := New(3, 0)
	_, fx := Step(s, ViewRequested{})
	require.Equal(t, []Effect{LoadDetail{Index: 0}, PushDetail{}}, fx)

	s = New(3, 2)
	_, fx = Step(s, ViewRequested{})
	require.Equal(t, []Effect{LoadDetail{Index: 2}, PushDetail{}}, fx)
}

func TestReselectBeforeCommitLoadsOnlyLast(t *testing.T) {
	s := New(3, 0)
	var all []Effect
	for _, ev := range []Event{
		SelectionChanged{Index: 0},
		SelectionChanged{Index: 2},
		ViewRequested{},
	} {
		var fx []Effect
		s, fx = Step(s, ev)
		all = append(all, fx...)
	}
	require.Equal(t, []Effect{LoadDetail{Index: 2}, PushDetail{}}, all)
}

func TestBackFromDetailPopsAndFromListExits(t *testing.T) {
	s := New(3, 1)
	s, _ = Step(s, ViewRequested{})

	s, fx := Step(s, BackRequested{})
	require.Equal(t, ListVisible, s.Screen)
	require.Equal(t, []Effect{PopScreen{}}, fx)
	require.Equal(t, 1, s.Selected, "selection survives the round trip")

	_, fx = Step(s, BackRequested{})
	require.Equal(t, []Effect{Exit{}}, fx)
}

func TestTriggersIgnoredWhileDetailVisible(t *testing.T) {
	s := New(3, 0)
	s, _ = Step(s, ViewRequested{})

	for _, ev := range []Event{
		ViewRequested{},
		SelectionCommitted{Index: 2},
		SelectionChanged{Index: 2},
	} {
		next, fx := Step(s, ev)
		require.Empty(t, fx)
		require.Equal(t, s, next)
	}
}

func TestIndexClamped(t *testing.T) {
	require.Equal(t, 2, New(3, 9).Selected)
	require.Equal(t, 0, New(3, -1).Selected)
	require.Equal(t, 0, New(0, 4).Selected)

	s, _ := Step(New(3, 0), SelectionCommitted{Index: 7})
	require.Equal(t, 2, s.Selected)
}

func TestScreenString(t *testing.T) {
	require.Equal(t, "list", ListVisible.String())
	require.Equal(t, "detail", DetailVisible.String())
	require.Equal(t, "unknown", Screen(9).String())
}
