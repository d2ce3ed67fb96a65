package ring

// ConvertToBase returns a new ring holding the same numeric value with its
// digits re-expressed in the given base. The receiver is not modified.
func (r *Ring) ConvertToBase(base int) (*Ring, error) {
	return NewFromValue(r.value, base)
}
