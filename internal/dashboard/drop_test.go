package dashboard

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDropIgnoresUnknownPayload(t *testing.T) {
	rec := &fakeRecorder{}
	s := emptyStore()
	d := NewDropTarget(s, rec, nil)

	require.False(t, d.Drop("", 0, 0))
	require.False(t, d.Drop("not-a-widget", 0, 0))
	require.Empty(t, s.ActiveWidgets())
	require.Equal(t, EmptyLayouts(), s.Layouts())
	require.Equal(t, 2, rec.drops[DropUnknown])
}

func TestDropPlacesIntoEveryBucket(t *testing.T) {
	s := emptyStore()
	d := NewDropTarget(s, nil, nil)

	require.True(t, d.Drop(" capacitive-load ", 11, 3))
	require.Equal(t, []WidgetID{WidgetCapacitiveLoad}, s.ActiveWidgets())
	require.Equal(t, []LayoutItem{{ID: WidgetCapacitiveLoad, X: 10, Y: 3, W: 2, H: 4}}, s.Layout(BreakpointLG))
	require.Equal(t, []LayoutItem{{ID: WidgetCapacitiveLoad, X: 3, Y: 3, W: 2, H: 4}}, s.Layout(BreakpointMD))
	require.Equal(t, []LayoutItem{{ID: WidgetCapacitiveLoad, X: 0, Y: 3, W: 1, H: 4}}, s.Layout(BreakpointSM))
}

func TestDropClampsIntoMediumGrid(t *testing.T) {
	s := emptyStore()
	d := NewDropTarget(s, nil, nil)

	require.True(t, d.Drop(string(WidgetSteamConsumption), 7, 0))
	require.Equal(t, 7, s.Layout(BreakpointLG)[0].X)
	md := s.Layout(BreakpointMD)[0]
	require.Equal(t, 6, md.X)
	require.True(t, md.Fits(Columns(BreakpointMD)))
}

func TestDropOfActiveWidgetIsIgnored(t *testing.T) {
	rec := &fakeRecorder{}
	s := emptyStore()
	s.InsertWidgets(WidgetCapacitiveLoad)
	before := s.State()
	d := NewDropTarget(s, rec, nil)

	require.False(t, d.Drop(string(WidgetCapacitiveLoad), 4, 4))
	require.Equal(t, before, s.State())
	require.Equal(t, 1, rec.drops[DropDuplicate])
	require.Zero(t, rec.drops[DropPlaced])
}
