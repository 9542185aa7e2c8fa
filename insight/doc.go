// Package insight turns a snapshot of utility bills into trends, analytics,
// cost summaries and advisor replies.
//
// Every computation here is a pure function over the bills it is given: no
// I/O, no retained state. Callers fetch a fresh snapshot from the bill store
// per request. The Advisor is the one exception that reads the store itself,
// and it only reads.
package insight
