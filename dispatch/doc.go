// Package dispatch implements the processor dispatcher (C7): replaying a
// sequence of eventlog.Record onto anything satisfying eventlog.Processor,
// strictly in input order, stopping at the first error.
package dispatch
