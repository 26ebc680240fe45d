package continuum

import (
	"math/rand"

	"github.com/sirupsen/logrus"
)

// Get resolves key to the member that owns the smallest ring point strictly
// greater than key's hashed target, wrapping around to the ring's smallest
// point if the target hashes past the largest. It is a total, deterministic,
// lock-free function of key and the immutable ring.
func (c *Continuum) Get(key []byte) string {
	quad := digest(key)
	target := quad[0] ^ quad[1] ^ quad[2] ^ quad[3]

	owner := c.r.owner(target)

	c.log.WithFields(logrus.Fields{
		"key":    string(key),
		"target": target,
		"point":  owner.point,
		"member": owner.name,
	}).Debug("continuum: resolved key")

	return owner.name
}

// GetRandom draws a point uniformly from the full 32-bit range and resolves
// it the same way Get resolves a hashed key. Over many calls, the return
// frequency of each member converges to that member's ring-point share.
// Each call uses its own *rand.Rand derived from the construction-time
// seed, so concurrent callers never contend on a shared generator.
func (c *Continuum) GetRandom() string {
	rng := rand.New(rand.NewSource(c.nextCallSeed()))
	target := rng.Uint32()

	owner := c.r.owner(target)

	c.log.WithFields(logrus.Fields{
		"key":    "random",
		"target": target,
		"point":  owner.point,
		"member": owner.name,
	}).Debug("continuum: resolved random point")

	return owner.name
}
