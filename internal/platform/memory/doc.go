// Package memory provides process-lifetime implementations of the store
// interfaces. Every store owns its maps behind a mutex, assigns IDs from a
// monotonic counter, and returns copies so callers cannot mutate stored state.
// Nothing survives a restart.
package memory
