package continuum

import (
	"crypto/rand"
	"encoding/binary"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// Continuum is a weighted consistent-hashing ring. It is built once from a
// frozen RoutingGroup and is safe for concurrent use by an unbounded number
// of lookup callers thereafter; it exposes no mutators.
type Continuum struct {
	r    *ring
	log  logrus.FieldLogger
	seed int64
	call int64 // atomically incremented; folded into the seed for each keyless draw
}

// Options configures construction. The zero value is valid: a nil Log
// falls back to a logger that emits nothing at the Debug level this package
// logs at, since a missing logger
// must never be allowed to fail a build or a lookup.
type Options struct {
	Log logrus.FieldLogger
}

// New builds a Continuum from group, materializing ring points for every
// member in proportion to its weight. It returns *InvalidGroupError if
// group is empty or its total weight is not meaningfully positive; this is
// the Continuum's only failure mode.
func New(group RoutingGroup, opts Options) (*Continuum, error) {
	log := opts.Log
	if log == nil {
		log = silentLogger()
	}

	result, err := build(group)
	if err != nil {
		return nil, err
	}

	for _, d := range result.members {
		log.WithFields(logrus.Fields{
			"member":       d.name,
			"steps":        d.steps,
			"percent":      d.percent,
			"steps_budget": d.budget,
		}).Debug("continuum: populated member")
	}

	log.WithFields(logrus.Fields{
		"element_count": len(result.elements),
		"all_distinct":  result.distinct,
	}).Debug("continuum: built ring")

	return &Continuum{
		r:    &ring{elements: result.elements}, // already sorted by build
		log:  log,
		seed: seedFromEntropy(),
	}, nil
}

// Must is like New but panics on error, for callers that construct a
// Continuum from a statically known routing group at startup.
func Must(group RoutingGroup, opts Options) *Continuum {
	c, err := New(group, opts)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of elements on the ring.
func (c *Continuum) Len() int {
	return c.r.len()
}

// seedFromEntropy draws a non-deterministic int64 seed at construction time
// for the keyless lookup's random draws.
func seedFromEntropy() int64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand.Read on a supported platform does not fail in
		// practice; fall back to a fixed seed rather than propagate an
		// error from what is otherwise an infallible step.
		return 0
	}
	return int64(binary.LittleEndian.Uint64(buf[:]))
}

// nextCallSeed derives a fresh per-call seed from the construction-time
// base seed, giving every keyless lookup its own *rand.Rand instance
// without a shared mutable generator.
func (c *Continuum) nextCallSeed() int64 {
	return c.seed ^ atomic.AddInt64(&c.call, 1)
}

// silentLogger returns a logrus logger configured to never emit anything at
// the Debug level this package logs at, for callers that pass no Log option.
func silentLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetLevel(logrus.FatalLevel)
	return l
}
