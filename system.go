package ecs

// SystemInput is the contract by which a system's parameters are
// assembled from a *World immediately before each invocation, and
// released once the system body returns: a Query, a Res, or a ResMut all
// build and release themselves this way, letting a function of several
// such parameters be lifted into a system without the caller hand-wiring
// construction order or borrow bookkeeping.
type SystemInput[O any] interface {
	access(b *WorldAccess)
	buildInput(w *World) (O, error)
	releaseInput(w *World)
}

// ReadOnlySystemInput marks a SystemInput that never mutates world state.
// Only Res[R] satisfies it; ResMut[R] and Query (with or without Write/
// OptionWrite atoms) do not.
type ReadOnlySystemInput[O any] interface {
	SystemInput[O]
	readOnlySystemInput()
}

func (Query[D, F]) access(b *WorldAccess) {
	var d D
	d.access(b)
}

func (Query[D, F]) buildInput(w *World) (Query[D, F], error) {
	q, err := QueryOf[D, F](w)
	if err != nil {
		return Query[D, F]{}, err
	}
	return *q, nil
}

func (Query[D, F]) releaseInput(w *World) {}

func (r Res[R]) access(b *WorldAccess) {
	b.Add(Access{Kind: KindResource, ID: ComponentId(r.ResourceID()), Required: true, Level: Read})
}

func (r Res[R]) buildInput(w *World) (Res[R], error) {
	id := r.ResourceID()
	cell, ok := w.resources.get(id)
	if !ok {
		return Res[R]{}, ErrResourceNotFound{Name: globalResources.names[id]}
	}
	if !cell.acquireRead() {
		return Res[R]{}, ErrResourceBorrowed{Name: globalResources.names[id]}
	}
	return r, nil
}

func (r Res[R]) releaseInput(w *World) {
	if cell, ok := w.resources.get(r.ResourceID()); ok {
		cell.releaseRead()
	}
}

func (Res[R]) readOnlySystemInput() {}

func (r ResMut[R]) access(b *WorldAccess) {
	b.Add(Access{Kind: KindResource, ID: ComponentId(r.ResourceID()), Required: true, Level: Write})
}

func (r ResMut[R]) buildInput(w *World) (ResMut[R], error) {
	id := r.ResourceID()
	cell, ok := w.resources.get(id)
	if !ok {
		return ResMut[R]{}, ErrResourceNotFound{Name: globalResources.names[id]}
	}
	if !cell.acquireWrite() {
		return ResMut[R]{}, ErrResourceBorrowed{Name: globalResources.names[id]}
	}
	return r, nil
}

func (r ResMut[R]) releaseInput(w *World) {
	if cell, ok := w.resources.get(r.ResourceID()); ok {
		cell.releaseWrite()
	}
}

// InputTuple2 composes two SystemInputs into one, built in order.
type InputTuple2[O0, O1 any, I0 SystemInput[O0], I1 SystemInput[O1]] struct{}

func (InputTuple2[O0, O1, I0, I1]) access(b *WorldAccess) {
	var i0 I0
	var i1 I1
	i0.access(b)
	i1.access(b)
}

func (InputTuple2[O0, O1, I0, I1]) buildInput(w *World) ([2]any, error) {
	var i0 I0
	var i1 I1
	o0, err := i0.buildInput(w)
	if err != nil {
		return [2]any{}, err
	}
	o1, err := i1.buildInput(w)
	if err != nil {
		i0.releaseInput(w)
		return [2]any{}, err
	}
	return [2]any{o0, o1}, nil
}

func (InputTuple2[O0, O1, I0, I1]) releaseInput(w *World) {
	var i0 I0
	var i1 I1
	i1.releaseInput(w)
	i0.releaseInput(w)
}

// InputTuple3 composes three SystemInputs into one, built in order.
type InputTuple3[O0, O1, O2 any, I0 SystemInput[O0], I1 SystemInput[O1], I2 SystemInput[O2]] struct{}

func (InputTuple3[O0, O1, O2, I0, I1, I2]) access(b *WorldAccess) {
	var i0 I0
	var i1 I1
	var i2 I2
	i0.access(b)
	i1.access(b)
	i2.access(b)
}

func (InputTuple3[O0, O1, O2, I0, I1, I2]) buildInput(w *World) ([3]any, error) {
	var i0 I0
	var i1 I1
	var i2 I2
	o0, err := i0.buildInput(w)
	if err != nil {
		return [3]any{}, err
	}
	o1, err := i1.buildInput(w)
	if err != nil {
		i0.releaseInput(w)
		return [3]any{}, err
	}
	o2, err := i2.buildInput(w)
	if err != nil {
		i1.releaseInput(w)
		i0.releaseInput(w)
		return [3]any{}, err
	}
	return [3]any{o0, o1, o2}, nil
}

func (InputTuple3[O0, O1, O2, I0, I1, I2]) releaseInput(w *World) {
	var i0 I0
	var i1 I1
	var i2 I2
	i2.releaseInput(w)
	i1.releaseInput(w)
	i0.releaseInput(w)
}

// InputTuple4 composes four SystemInputs into one, built in order.
type InputTuple4[O0, O1, O2, O3 any, I0 SystemInput[O0], I1 SystemInput[O1], I2 SystemInput[O2], I3 SystemInput[O3]] struct {
}

func (InputTuple4[O0, O1, O2, O3, I0, I1, I2, I3]) access(b *WorldAccess) {
	var i0 I0
	var i1 I1
	var i2 I2
	var i3 I3
	i0.access(b)
	i1.access(b)
	i2.access(b)
	i3.access(b)
}

func (InputTuple4[O0, O1, O2, O3, I0, I1, I2, I3]) buildInput(w *World) ([4]any, error) {
	var i0 I0
	var i1 I1
	var i2 I2
	var i3 I3
	o0, err := i0.buildInput(w)
	if err != nil {
		return [4]any{}, err
	}
	o1, err := i1.buildInput(w)
	if err != nil {
		i0.releaseInput(w)
		return [4]any{}, err
	}
	o2, err := i2.buildInput(w)
	if err != nil {
		i1.releaseInput(w)
		i0.releaseInput(w)
		return [4]any{}, err
	}
	o3, err := i3.buildInput(w)
	if err != nil {
		i2.releaseInput(w)
		i1.releaseInput(w)
		i0.releaseInput(w)
		return [4]any{}, err
	}
	return [4]any{o0, o1, o2, o3}, nil
}

func (InputTuple4[O0, O1, O2, O3, I0, I1, I2, I3]) releaseInput(w *World) {
	var i0 I0
	var i1 I1
	var i2 I2
	var i3 I3
	i3.releaseInput(w)
	i2.releaseInput(w)
	i1.releaseInput(w)
	i0.releaseInput(w)
}

// System is anything runnable against a World once per tick. It mirrors
// the minimal surface a scheduler needs, independent of how many inputs
// the system actually takes.
type System interface {
	Run(w *World) error
}

// FuncSystem1 lifts a single-input function into a System.
type FuncSystem1[O0 any, I0 SystemInput[O0]] struct {
	fn func(O0)
}

// NewSystem1 builds a System that assembles I0 then calls fn with it.
func NewSystem1[O0 any, I0 SystemInput[O0]](fn func(O0)) *FuncSystem1[O0, I0] {
	return &FuncSystem1[O0, I0]{fn: fn}
}

func (s *FuncSystem1[O0, I0]) Run(w *World) error {
	var i0 I0
	b := NewWorldAccess()
	i0.access(b)
	if err := b.Result(); err != nil {
		return err
	}

	o0, err := i0.buildInput(w)
	if err != nil {
		return err
	}
	defer i0.releaseInput(w)
	s.fn(o0)
	return nil
}

// FuncSystem2 lifts a two-input function into a System.
type FuncSystem2[O0, O1 any, I0 SystemInput[O0], I1 SystemInput[O1]] struct {
	fn func(O0, O1)
}

// NewSystem2 builds a System that assembles I0 and I1 then calls fn.
func NewSystem2[O0, O1 any, I0 SystemInput[O0], I1 SystemInput[O1]](fn func(O0, O1)) *FuncSystem2[O0, O1, I0, I1] {
	return &FuncSystem2[O0, O1, I0, I1]{fn: fn}
}

func (s *FuncSystem2[O0, O1, I0, I1]) Run(w *World) error {
	var i0 I0
	var i1 I1
	b := NewWorldAccess()
	i0.access(b)
	i1.access(b)
	if err := b.Result(); err != nil {
		return err
	}

	o0, err := i0.buildInput(w)
	if err != nil {
		return err
	}
	defer i0.releaseInput(w)
	o1, err := i1.buildInput(w)
	if err != nil {
		return err
	}
	defer i1.releaseInput(w)
	s.fn(o0, o1)
	return nil
}

// FuncSystem3 lifts a three-input function into a System.
type FuncSystem3[O0, O1, O2 any, I0 SystemInput[O0], I1 SystemInput[O1], I2 SystemInput[O2]] struct {
	fn func(O0, O1, O2)
}

// NewSystem3 builds a System that assembles I0..I2 then calls fn.
func NewSystem3[O0, O1, O2 any, I0 SystemInput[O0], I1 SystemInput[O1], I2 SystemInput[O2]](fn func(O0, O1, O2)) *FuncSystem3[O0, O1, O2, I0, I1, I2] {
	return &FuncSystem3[O0, O1, O2, I0, I1, I2]{fn: fn}
}

func (s *FuncSystem3[O0, O1, O2, I0, I1, I2]) Run(w *World) error {
	var i0 I0
	var i1 I1
	var i2 I2
	b := NewWorldAccess()
	i0.access(b)
	i1.access(b)
	i2.access(b)
	if err := b.Result(); err != nil {
		return err
	}

	o0, err := i0.buildInput(w)
	if err != nil {
		return err
	}
	defer i0.releaseInput(w)
	o1, err := i1.buildInput(w)
	if err != nil {
		return err
	}
	defer i1.releaseInput(w)
	o2, err := i2.buildInput(w)
	if err != nil {
		return err
	}
	defer i2.releaseInput(w)
	s.fn(o0, o1, o2)
	return nil
}

// FuncSystem4 lifts a four-input function into a System.
type FuncSystem4[O0, O1, O2, O3 any, I0 SystemInput[O0], I1 SystemInput[O1], I2 SystemInput[O2], I3 SystemInput[O3]] struct {
	fn func(O0, O1, O2, O3)
}

// NewSystem4 builds a System that assembles I0..I3 then calls fn.
func NewSystem4[O0, O1, O2, O3 any, I0 SystemInput[O0], I1 SystemInput[O1], I2 SystemInput[O2], I3 SystemInput[O3]](fn func(O0, O1, O2, O3)) *FuncSystem4[O0, O1, O2, O3, I0, I1, I2, I3] {
	return &FuncSystem4[O0, O1, O2, O3, I0, I1, I2, I3]{fn: fn}
}

func (s *FuncSystem4[O0, O1, O2, O3, I0, I1, I2, I3]) Run(w *World) error {
	var i0 I0
	var i1 I1
	var i2 I2
	var i3 I3
	b := NewWorldAccess()
	i0.access(b)
	i1.access(b)
	i2.access(b)
	i3.access(b)
	if err := b.Result(); err != nil {
		return err
	}

	o0, err := i0.buildInput(w)
	if err != nil {
		return err
	}
	defer i0.releaseInput(w)
	o1, err := i1.buildInput(w)
	if err != nil {
		return err
	}
	defer i1.releaseInput(w)
	o2, err := i2.buildInput(w)
	if err != nil {
		return err
	}
	defer i2.releaseInput(w)
	o3, err := i3.buildInput(w)
	if err != nil {
		return err
	}
	defer i3.releaseInput(w)
	s.fn(o0, o1, o2, o3)
	return nil
}

// Scheduler runs a fixed list of Systems in registration order each tick,
// mirroring the teacher's own SystemManager.
type Scheduler struct {
	systems []System
}

// NewScheduler returns an empty Scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Add appends s to the run order.
func (sch *Scheduler) Add(s System) {
	sch.systems = append(sch.systems, s)
}

// Run invokes every registered system, in order, against w, stopping at
// (and returning) the first error.
func (sch *Scheduler) Run(w *World) error {
	for _, s := range sch.systems {
		if err := s.Run(w); err != nil {
			return err
		}
	}
	return nil
}
