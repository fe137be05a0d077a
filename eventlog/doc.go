// Package eventlog implements the event buffer and cache (C6): a tagged
// Record type wrapping one of ten Payload variants, a bounded ring Cache for
// "replay since eventId X" queries, and a Buffer that stamps and batches
// records to a pluggable Persister.
package eventlog
