package sukima

// AddComponent attaches a component of type T to the entity, overwriting
// the previous value in place if the entity already owns one. The pool for
// T is created on first use.
func AddComponent[T any](w *World, id uint32, c T) {
	w.mustBeAlive(id)
	poolFor[T](w).set(w, id, c)
}

// RemoveComponent detaches the component of type T from the entity using
// swap-and-pop. Removing an absent component, including a kind that was
// never registered, is a no-op.
func RemoveComponent[T any](w *World, id uint32) {
	w.mustBeAlive(id)
	if p, ok := lookupPool[T](w); ok {
		p.remove(w, id)
	}
}

// HasComponent reports whether the entity owns a component of type T.
func HasComponent[T any](w *World, id uint32) bool {
	w.mustBeAlive(id)
	p, ok := lookupPool[T](w)
	return ok && w.entities[id].mask&p.bit != 0
}

// GetComponent returns a pointer to the entity's component of type T, or
// (nil, false) when the entity does not own one. The pointer stays valid
// until the next add, remove or destroy that touches the same pool.
func GetComponent[T any](w *World, id uint32) (*T, bool) {
	w.mustBeAlive(id)
	p, ok := lookupPool[T](w)
	if !ok {
		return nil, false
	}
	c := p.get(id)
	return c, c != nil
}
