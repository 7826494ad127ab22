package singine

// Close releases resources held by this Engine, closing the underlying
// database handle.
func (e *Engine) Close() error {
	if e == nil || e.store == nil {
		return nil
	}
	return e.store.Close()
}
