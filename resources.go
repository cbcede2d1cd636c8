package sukima

import (
	"fmt"
	"reflect"
)

// Resources stores at most one value per Go type. It holds world-global
// data that does not belong to any entity, such as timers, RNG state or
// asset tables.
type Resources struct {
	byType map[reflect.Type]any
}

// AddResource stores res in the world's resource table. It panics if a
// resource of the same type is already present.
func AddResource[T any](r *Resources, res *T) {
	t := reflect.TypeFor[T]()
	if r.byType == nil {
		r.byType = make(map[reflect.Type]any)
	}
	if _, ok := r.byType[t]; ok {
		panic(fmt.Sprintf("ecs: resource %s already exists", t))
	}
	r.byType[t] = res
}

// GetResource returns the stored resource of type T, or (nil, false) when
// none is present.
func GetResource[T any](r *Resources) (*T, bool) {
	res, ok := r.byType[reflect.TypeFor[T]()]
	if !ok {
		return nil, false
	}
	return res.(*T), true
}

// HasResource reports whether a resource of type T is present.
func HasResource[T any](r *Resources) bool {
	_, ok := r.byType[reflect.TypeFor[T]()]
	return ok
}

// RemoveResource deletes the resource of type T if present.
func RemoveResource[T any](r *Resources) {
	delete(r.byType, reflect.TypeFor[T]())
}

// Clear removes every stored resource.
func (r *Resources) Clear() {
	clear(r.byType)
}
