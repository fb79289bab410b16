package domain

// Zero overwrites a byte slice with zeros to clear sensitive key material from memory.
func Zero(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}
