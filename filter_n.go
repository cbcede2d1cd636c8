package sukima

// Filters over 2 to 6 component kinds. Each traversal is driven by the
// participating pool with the fewest components; the remaining pools are
// probed per entity through their sparse arrays, and candidates are
// accepted with a single combined-mask test against the entity table.
// Entities come out in the driver pool's dense order.

// combineBits folds per-pool membership bits into one query mask, panicking
// when two type parameters resolved to the same pool.
func combineBits(arity string, bits ...uint64) uint64 {
	var mask uint64
	for _, b := range bits {
		if mask&b != 0 {
			panic("ecs: duplicate component types in " + arity)
		}
		mask |= b
	}
	return mask
}

// Filter2 iterates over every entity owning both T1 and T2.
type Filter2[T1, T2 any] struct {
	world  *World
	p1     *ComponentPool[T1]
	p2     *ComponentPool[T2]
	owners []uint32 // driver pool's owner array
	mask   uint64
	idx    int
	cur    uint32
}

// NewFilter2 creates a filter over all entities possessing at least the
// components T1 and T2, registering their pools if needed.
func NewFilter2[T1, T2 any](w *World) *Filter2[T1, T2] {
	p1 := poolFor[T1](w)
	p2 := poolFor[T2](w)
	f := &Filter2[T1, T2]{
		world: w, p1: p1, p2: p2,
		mask: combineBits("Filter2", p1.bit, p2.bit),
	}
	f.Reset()
	return f
}

// Reset rewinds the iterator and re-selects the driver pool, so a filter
// kept across structural changes stays driven by the smallest pool.
func (f *Filter2[T1, T2]) Reset() {
	f.owners = f.p1.owners
	if len(f.p2.dense) < len(f.p1.dense) {
		f.owners = f.p2.owners
	}
	f.idx = -1
}

// Next advances to the next entity owning all queried components. It
// returns false when the iteration is complete and must be called before
// Entity or Get.
func (f *Filter2[T1, T2]) Next() bool {
	for f.idx+1 < len(f.owners) {
		f.idx++
		id := f.owners[f.idx]
		if f.world.entities[id].mask&f.mask == f.mask {
			f.cur = id
			return true
		}
	}
	return false
}

// Entity returns a handle for the current entity.
func (f *Filter2[T1, T2]) Entity() Entity {
	return Entity{world: f.world, ID: f.cur, mask: f.world.entities[f.cur].mask, alive: true}
}

// Get returns pointers to the current entity's components (T1, T2).
// Writing through them updates the pool storage directly.
func (f *Filter2[T1, T2]) Get() (*T1, *T2) {
	return &f.p1.dense[f.p1.sparse[f.cur]], &f.p2.dense[f.p2.sparse[f.cur]]
}

// Count returns the number of entities the filter matches.
func (f *Filter2[T1, T2]) Count() int {
	return countMatches(f.world, f.owners, f.mask)
}

// Entities returns handles for all matching entities in iteration order.
func (f *Filter2[T1, T2]) Entities() []Entity {
	return matchedEntities(f.world, f.owners, f.mask)
}

// Filter3 iterates over every entity owning T1, T2 and T3.
type Filter3[T1, T2, T3 any] struct {
	world  *World
	p1     *ComponentPool[T1]
	p2     *ComponentPool[T2]
	p3     *ComponentPool[T3]
	owners []uint32
	mask   uint64
	idx    int
	cur    uint32
}

// NewFilter3 creates a filter over all entities possessing at least the
// components T1, T2 and T3, registering their pools if needed.
func NewFilter3[T1, T2, T3 any](w *World) *Filter3[T1, T2, T3] {
	p1 := poolFor[T1](w)
	p2 := poolFor[T2](w)
	p3 := poolFor[T3](w)
	f := &Filter3[T1, T2, T3]{
		world: w, p1: p1, p2: p2, p3: p3,
		mask: combineBits("Filter3", p1.bit, p2.bit, p3.bit),
	}
	f.Reset()
	return f
}

// Reset rewinds the iterator and re-selects the driver pool.
func (f *Filter3[T1, T2, T3]) Reset() {
	f.owners = f.p1.owners
	n := len(f.p1.dense)
	if len(f.p2.dense) < n {
		f.owners, n = f.p2.owners, len(f.p2.dense)
	}
	if len(f.p3.dense) < n {
		f.owners = f.p3.owners
	}
	f.idx = -1
}

// Next advances to the next entity owning all queried components.
func (f *Filter3[T1, T2, T3]) Next() bool {
	for f.idx+1 < len(f.owners) {
		f.idx++
		id := f.owners[f.idx]
		if f.world.entities[id].mask&f.mask == f.mask {
			f.cur = id
			return true
		}
	}
	return false
}

// Entity returns a handle for the current entity.
func (f *Filter3[T1, T2, T3]) Entity() Entity {
	return Entity{world: f.world, ID: f.cur, mask: f.world.entities[f.cur].mask, alive: true}
}

// Get returns pointers to the current entity's components (T1, T2, T3).
func (f *Filter3[T1, T2, T3]) Get() (*T1, *T2, *T3) {
	return &f.p1.dense[f.p1.sparse[f.cur]],
		&f.p2.dense[f.p2.sparse[f.cur]],
		&f.p3.dense[f.p3.sparse[f.cur]]
}

// Count returns the number of entities the filter matches.
func (f *Filter3[T1, T2, T3]) Count() int {
	return countMatches(f.world, f.owners, f.mask)
}

// Entities returns handles for all matching entities in iteration order.
func (f *Filter3[T1, T2, T3]) Entities() []Entity {
	return matchedEntities(f.world, f.owners, f.mask)
}

// Filter4 iterates over every entity owning T1 through T4.
type Filter4[T1, T2, T3, T4 any] struct {
	world  *World
	p1     *ComponentPool[T1]
	p2     *ComponentPool[T2]
	p3     *ComponentPool[T3]
	p4     *ComponentPool[T4]
	owners []uint32
	mask   uint64
	idx    int
	cur    uint32
}

// NewFilter4 creates a filter over all entities possessing at least the
// components T1 through T4, registering their pools if needed.
func NewFilter4[T1, T2, T3, T4 any](w *World) *Filter4[T1, T2, T3, T4] {
	p1 := poolFor[T1](w)
	p2 := poolFor[T2](w)
	p3 := poolFor[T3](w)
	p4 := poolFor[T4](w)
	f := &Filter4[T1, T2, T3, T4]{
		world: w, p1: p1, p2: p2, p3: p3, p4: p4,
		mask: combineBits("Filter4", p1.bit, p2.bit, p3.bit, p4.bit),
	}
	f.Reset()
	return f
}

// Reset rewinds the iterator and re-selects the driver pool.
func (f *Filter4[T1, T2, T3, T4]) Reset() {
	f.owners = f.p1.owners
	n := len(f.p1.dense)
	if len(f.p2.dense) < n {
		f.owners, n = f.p2.owners, len(f.p2.dense)
	}
	if len(f.p3.dense) < n {
		f.owners, n = f.p3.owners, len(f.p3.dense)
	}
	if len(f.p4.dense) < n {
		f.owners = f.p4.owners
	}
	f.idx = -1
}

// Next advances to the next entity owning all queried components.
func (f *Filter4[T1, T2, T3, T4]) Next() bool {
	for f.idx+1 < len(f.owners) {
		f.idx++
		id := f.owners[f.idx]
		if f.world.entities[id].mask&f.mask == f.mask {
			f.cur = id
			return true
		}
	}
	return false
}

// Entity returns a handle for the current entity.
func (f *Filter4[T1, T2, T3, T4]) Entity() Entity {
	return Entity{world: f.world, ID: f.cur, mask: f.world.entities[f.cur].mask, alive: true}
}

// Get returns pointers to the current entity's components (T1..T4).
func (f *Filter4[T1, T2, T3, T4]) Get() (*T1, *T2, *T3, *T4) {
	return &f.p1.dense[f.p1.sparse[f.cur]],
		&f.p2.dense[f.p2.sparse[f.cur]],
		&f.p3.dense[f.p3.sparse[f.cur]],
		&f.p4.dense[f.p4.sparse[f.cur]]
}

// Count returns the number of entities the filter matches.
func (f *Filter4[T1, T2, T3, T4]) Count() int {
	return countMatches(f.world, f.owners, f.mask)
}

// Entities returns handles for all matching entities in iteration order.
func (f *Filter4[T1, T2, T3, T4]) Entities() []Entity {
	return matchedEntities(f.world, f.owners, f.mask)
}

// Filter5 iterates over every entity owning T1 through T5.
type Filter5[T1, T2, T3, T4, T5 any] struct {
	world  *World
	p1     *ComponentPool[T1]
	p2     *ComponentPool[T2]
	p3     *ComponentPool[T3]
	p4     *ComponentPool[T4]
	p5     *ComponentPool[T5]
	owners []uint32
	mask   uint64
	idx    int
	cur    uint32
}

// NewFilter5 creates a filter over all entities possessing at least the
// components T1 through T5, registering their pools if needed.
func NewFilter5[T1, T2, T3, T4, T5 any](w *World) *Filter5[T1, T2, T3, T4, T5] {
	p1 := poolFor[T1](w)
	p2 := poolFor[T2](w)
	p3 := poolFor[T3](w)
	p4 := poolFor[T4](w)
	p5 := poolFor[T5](w)
	f := &Filter5[T1, T2, T3, T4, T5]{
		world: w, p1: p1, p2: p2, p3: p3, p4: p4, p5: p5,
		mask: combineBits("Filter5", p1.bit, p2.bit, p3.bit, p4.bit, p5.bit),
	}
	f.Reset()
	return f
}

// Reset rewinds the iterator and re-selects the driver pool.
func (f *Filter5[T1, T2, T3, T4, T5]) Reset() {
	f.owners = f.p1.owners
	n := len(f.p1.dense)
	if len(f.p2.dense) < n {
		f.owners, n = f.p2.owners, len(f.p2.dense)
	}
	if len(f.p3.dense) < n {
		f.owners, n = f.p3.owners, len(f.p3.dense)
	}
	if len(f.p4.dense) < n {
		f.owners, n = f.p4.owners, len(f.p4.dense)
	}
	if len(f.p5.dense) < n {
		f.owners = f.p5.owners
	}
	f.idx = -1
}

// Next advances to the next entity owning all queried components.
func (f *Filter5[T1, T2, T3, T4, T5]) Next() bool {
	for f.idx+1 < len(f.owners) {
		f.idx++
		id := f.owners[f.idx]
		if f.world.entities[id].mask&f.mask == f.mask {
			f.cur = id
			return true
		}
	}
	return false
}

// Entity returns a handle for the current entity.
func (f *Filter5[T1, T2, T3, T4, T5]) Entity() Entity {
	return Entity{world: f.world, ID: f.cur, mask: f.world.entities[f.cur].mask, alive: true}
}

// Get returns pointers to the current entity's components (T1..T5).
func (f *Filter5[T1, T2, T3, T4, T5]) Get() (*T1, *T2, *T3, *T4, *T5) {
	return &f.p1.dense[f.p1.sparse[f.cur]],
		&f.p2.dense[f.p2.sparse[f.cur]],
		&f.p3.dense[f.p3.sparse[f.cur]],
		&f.p4.dense[f.p4.sparse[f.cur]],
		&f.p5.dense[f.p5.sparse[f.cur]]
}

// Count returns the number of entities the filter matches.
func (f *Filter5[T1, T2, T3, T4, T5]) Count() int {
	return countMatches(f.world, f.owners, f.mask)
}

// Entities returns handles for all matching entities in iteration order.
func (f *Filter5[T1, T2, T3, T4, T5]) Entities() []Entity {
	return matchedEntities(f.world, f.owners, f.mask)
}

// Filter6 iterates over every entity owning T1 through T6.
type Filter6[T1, T2, T3, T4, T5, T6 any] struct {
	world  *World
	p1     *ComponentPool[T1]
	p2     *ComponentPool[T2]
	p3     *ComponentPool[T3]
	p4     *ComponentPool[T4]
	p5     *ComponentPool[T5]
	p6     *ComponentPool[T6]
	owners []uint32
	mask   uint64
	idx    int
	cur    uint32
}

// NewFilter6 creates a filter over all entities possessing at least the
// components T1 through T6, registering their pools if needed.
func NewFilter6[T1, T2, T3, T4, T5, T6 any](w *World) *Filter6[T1, T2, T3, T4, T5, T6] {
	p1 := poolFor[T1](w)
	p2 := poolFor[T2](w)
	p3 := poolFor[T3](w)
	p4 := poolFor[T4](w)
	p5 := poolFor[T5](w)
	p6 := poolFor[T6](w)
	f := &Filter6[T1, T2, T3, T4, T5, T6]{
		world: w, p1: p1, p2: p2, p3: p3, p4: p4, p5: p5, p6: p6,
		mask: combineBits("Filter6", p1.bit, p2.bit, p3.bit, p4.bit, p5.bit, p6.bit),
	}
	f.Reset()
	return f
}

// Reset rewinds the iterator and re-selects the driver pool.
func (f *Filter6[T1, T2, T3, T4, T5, T6]) Reset() {
	f.owners = f.p1.owners
	n := len(f.p1.dense)
	if len(f.p2.dense) < n {
		f.owners, n = f.p2.owners, len(f.p2.dense)
	}
	if len(f.p3.dense) < n {
		f.owners, n = f.p3.owners, len(f.p3.dense)
	}
	if len(f.p4.dense) < n {
		f.owners, n = f.p4.owners, len(f.p4.dense)
	}
	if len(f.p5.dense) < n {
		f.owners, n = f.p5.owners, len(f.p5.dense)
	}
	if len(f.p6.dense) < n {
		f.owners = f.p6.owners
	}
	f.idx = -1
}

// Next advances to the next entity owning all queried components.
func (f *Filter6[T1, T2, T3, T4, T5, T6]) Next() bool {
	for f.idx+1 < len(f.owners) {
		f.idx++
		id := f.owners[f.idx]
		if f.world.entities[id].mask&f.mask == f.mask {
			f.cur = id
			return true
		}
	}
	return false
}

// Entity returns a handle for the current entity.
func (f *Filter6[T1, T2, T3, T4, T5, T6]) Entity() Entity {
	return Entity{world: f.world, ID: f.cur, mask: f.world.entities[f.cur].mask, alive: true}
}

// Get returns pointers to the current entity's components (T1..T6).
func (f *Filter6[T1, T2, T3, T4, T5, T6]) Get() (*T1, *T2, *T3, *T4, *T5, *T6) {
	return &f.p1.dense[f.p1.sparse[f.cur]],
		&f.p2.dense[f.p2.sparse[f.cur]],
		&f.p3.dense[f.p3.sparse[f.cur]],
		&f.p4.dense[f.p4.sparse[f.cur]],
		&f.p5.dense[f.p5.sparse[f.cur]],
		&f.p6.dense[f.p6.sparse[f.cur]]
}

// Count returns the number of entities the filter matches.
func (f *Filter6[T1, T2, T3, T4, T5, T6]) Count() int {
	return countMatches(f.world, f.owners, f.mask)
}

// Entities returns handles for all matching entities in iteration order.
func (f *Filter6[T1, T2, T3, T4, T5, T6]) Entities() []Entity {
	return matchedEntities(f.world, f.owners, f.mask)
}

func countMatches(w *World, owners []uint32, mask uint64) int {
	n := 0
	for _, id := range owners {
		if w.entities[id].mask&mask == mask {
			n++
		}
	}
	return n
}

func matchedEntities(w *World, owners []uint32, mask uint64) []Entity {
	ents := make([]Entity, 0, len(owners))
	for _, id := range owners {
		if w.entities[id].mask&mask == mask {
			ents = append(ents, Entity{world: w, ID: id, mask: w.entities[id].mask, alive: true})
		}
	}
	return ents
}
