// Package fallback holds the fixed, hand-authored sample datasets the
// dashboard falls back to when the remote store is unreachable or
// empty, and the sole data source for collections that have no remote
// path (staff, equipment, studio ledger, marketing calendar).
//
// Every function returns a fresh slice on each call so callers can
// filter or sort without aliasing the package-level data. Selectors
// are applied by the caller via branch.Filter.
package fallback
