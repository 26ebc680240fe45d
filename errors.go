package continuum

// InvalidGroupError is returned by New when a routing group is empty or its
// total weight is not positive within floating-point tolerance. It is the
// only failure mode the Builder has; lookups never fail.
type InvalidGroupError struct {
	Reason string
}

func (e *InvalidGroupError) Error() string {
	return "continuum: invalid routing group: " + e.Reason
}
