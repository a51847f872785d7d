// Package parcel provides the domain model for tracked packages.
//
// The package includes:
//   - Parcel: the registration facts of a package, immutable after creation
//   - Status: the enumerated lifecycle states and their history labels
//   - HistoryEntry: one record of the append-only status history log
//   - Tracking: the overwritable in-transit record (driver, delivery estimate)
//
// A parcel's displayed state is never stored directly: it is derived from the
// append-only history log, where the most recent entry by timestamp is
// authoritative. The store does not enforce monotonic status transitions;
// callers are responsible for only invoking valid transitions.
package parcel
