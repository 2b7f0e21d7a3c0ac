package smartptr

// ControlBlockInvokeDisposeObject is the caller-supplied deletion policy.
// When nil, disposal zeroes the managed value in place.
type ControlBlockInvokeDisposeObject[T any] func(obj *T)

// ControlBlock is the bookkeeping record shared by every SharedPtr and
// WeakPtr of one ownership group. The managed object is valid for access
// iff the strong count is above zero. Dispose runs exactly once, when the
// strong count first reaches zero; Destroy runs exactly once, when both
// counts are zero and Dispose has already run. The two are separate so a
// WeakPtr can keep querying liveness after the object is gone.
type ControlBlock interface {
	AddStrongRef()
	RemoveStrongRef()
	GetStrongRefsCount() int
	IsZeroStrongOwning() bool

	AddWeakRef()
	RemoveWeakRef()
	GetWeakRefsCount() int
	IsZeroWeakOwning() bool

	Dispose()
	Destroy()

	// clearManagedSelfReference drops the managed object's self-reference,
	// if its type exposes the capability. Only the block knows the managed
	// object's true pointer; a handle's observed pointer may be a
	// sub-object under aliasing.
	clearManagedSelfReference()
}

type refCounter struct {
	strongRefs int
	weakRefs   int
}

func (p *refCounter) AddStrongRef() {
	p.strongRefs++
}

func (p *refCounter) RemoveStrongRef() {
	p.strongRefs--
}

func (p *refCounter) GetStrongRefsCount() int {
	return p.strongRefs
}

func (p *refCounter) IsZeroStrongOwning() bool {
	return p.strongRefs == 0
}

func (p *refCounter) AddWeakRef() {
	p.weakRefs++
}

func (p *refCounter) RemoveWeakRef() {
	p.weakRefs--
}

func (p *refCounter) GetWeakRefsCount() int {
	return p.weakRefs
}

func (p *refCounter) IsZeroWeakOwning() bool {
	return p.weakRefs == 0
}

// ptrControlBlock adopts an object allocated elsewhere.
type ptrControlBlock[T any] struct {
	refCounter
	obj               *T
	disposeObjectFunc ControlBlockInvokeDisposeObject[T]
}

func newPtrControlBlock[T any](obj *T,
	disposeObjectFunc ControlBlockInvokeDisposeObject[T]) *ptrControlBlock[T] {
	var cblock = &ptrControlBlock[T]{
		obj:               obj,
		disposeObjectFunc: disposeObjectFunc,
	}
	cblock.AddStrongRef()
	return cblock
}

func (p *ptrControlBlock[T]) Dispose() {
	if p.obj == nil {
		return
	}
	if p.disposeObjectFunc != nil {
		p.disposeObjectFunc(p.obj)
	} else {
		var zero T
		*p.obj = zero
	}
}

func (p *ptrControlBlock[T]) Destroy() {
	p.obj = nil
	p.disposeObjectFunc = nil
}

func (p *ptrControlBlock[T]) clearManagedSelfReference() {
	clearSelfReference(p.obj)
}

// holderControlBlock stores the object inside the block itself, so the
// counters and the storage come from a single allocation. Dispose tears
// down the in-place value without releasing the block's own storage.
type holderControlBlock[T any] struct {
	refCounter
	storage           T
	disposeObjectFunc ControlBlockInvokeDisposeObject[T]
}

func newHolderControlBlock[T any](v T,
	disposeObjectFunc ControlBlockInvokeDisposeObject[T]) *holderControlBlock[T] {
	var cblock = &holderControlBlock[T]{
		storage:           v,
		disposeObjectFunc: disposeObjectFunc,
	}
	cblock.AddStrongRef()
	return cblock
}

func (p *holderControlBlock[T]) GetPtr() *T {
	return &p.storage
}

func (p *holderControlBlock[T]) Dispose() {
	if p.disposeObjectFunc != nil {
		p.disposeObjectFunc(&p.storage)
	}
	var zero T
	p.storage = zero
}

func (p *holderControlBlock[T]) Destroy() {
	p.disposeObjectFunc = nil
}

func (p *holderControlBlock[T]) clearManagedSelfReference() {
	clearSelfReference(&p.storage)
}
