// Package continuum implements a weighted consistent-hashing ring used by a
// service locator to map opaque keys to named backend entries. Members carry
// a positive weight; the ring is built once from a frozen routing group and
// served read-only to an unbounded number of concurrent lookup callers.
package continuum
