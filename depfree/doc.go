// Package depfree implements the dependency-free access manager (C5): an
// idempotent, dependency-auto-creating, event-emitting wrapper over
// access.Concurrent. Every primary Add is a no-op on duplicate, every
// secondary Add prepends whatever primaries it needs and emits those
// events before its own, and every Remove is a no-op on absence.
package depfree
