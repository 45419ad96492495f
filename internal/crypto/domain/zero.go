package domain

// Zero clears every given buffer. Nil and empty slices are ignored.
func Zero(bufs ...[]byte) {
	for _, b := range bufs {
		clear(b)
	}
}
