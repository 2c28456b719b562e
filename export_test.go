package hasharray

// setIDLimit lowers the last sequence id so tests can reach renumbering.
func (c *Collection[T]) setIDLimit(maxID uint32) {
	c.seq.SetLimit(maxID)
}
