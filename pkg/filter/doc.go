// Package filter holds the composable filter specification driving
// visible-record selection: an ordered, de-duplicated set of (type, value)
// clauses applied as a pure AND conjunction over country records.
//
// Population buckets are mutually exclusive - activating one replaces any
// other - while clauses of different types accumulate independently. Unknown
// clause types pass through as satisfied.
package filter
