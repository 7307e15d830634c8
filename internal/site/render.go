// Package site implements the content-assembly engine: cross-reference
// lookups over the loaded records, the four section renderers, the stage
// overlay projection and the final template assembly. Renderers are pure
// functions of (record, lookups); they share no state and may run in any
// order, only composition fixes the output order.
package site

// Fragment is one rendered section plus the counters the build report and
// metrics recorder consume.
type Fragment struct {
	HTML    string
	Entries int // rendered entries in the fragment
	Dropped int // dangling references omitted under the drop policy
}
