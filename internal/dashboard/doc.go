// Package dashboard is the layout state engine behind the energy dashboard.
//
// A Store owns the active widget set, the three breakpoint layouts (lg, md,
// sm), minimized flags, the picker's pending selection and the theme.
// Commands replace the state as a whole and write the persisted subset
// through a Persister before notifying subscribers. Pack is the placement
// rule for inserted widgets; DropTarget is the second insertion path used
// for drag and drop.
package dashboard
