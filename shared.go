package smartptr

// SharedPtr is a strong-ownership handle: a raw pointer into the managed
// object plus a reference to the control block that owns it. Under
// aliasing the raw pointer may differ from the pointer the control block
// disposes. The zero value is the empty pointer.
//
// If the control block reference is absent the raw pointer is also nil;
// there is no ownership-less dangling state.
type SharedPtr[T any] struct {
	ptr    *T
	cblock ControlBlock
}

// Adopt takes ownership of an object the caller must not otherwise
// manage. Adopting a pointer that is already owned by another ownership
// group is a programming defect and leads to double disposal.
func Adopt[T any](obj *T) SharedPtr[T] {
	return AdoptWithDisposer[T](obj, nil)
}

func AdoptWithDisposer[T any](obj *T,
	disposeObjectFunc ControlBlockInvokeDisposeObject[T]) SharedPtr[T] {
	if obj == nil {
		return SharedPtr[T]{}
	}
	var sp = SharedPtr[T]{
		ptr:    obj,
		cblock: newPtrControlBlock(obj, disposeObjectFunc),
	}
	registerSelfReference(sp.ptr, sp.cblock)
	return sp
}

// MakeShared constructs the object inside the control block: one
// allocation covers both the value and the counters.
func MakeShared[T any](v T) SharedPtr[T] {
	return MakeSharedWithDisposer(v, nil)
}

func MakeSharedWithDisposer[T any](v T,
	disposeObjectFunc ControlBlockInvokeDisposeObject[T]) SharedPtr[T] {
	var cblock = newHolderControlBlock(v, disposeObjectFunc)
	var sp = SharedPtr[T]{
		ptr:    cblock.GetPtr(),
		cblock: cblock,
	}
	registerSelfReference(sp.ptr, sp.cblock)
	return sp
}

// Alias shares ownership with owner but observes obj instead, e.g. a
// member of the owned object. The new handle keeps the whole owning
// object alive. An empty owner yields an empty handle.
func Alias[T any, Y any](owner *SharedPtr[Y], obj *T) SharedPtr[T] {
	if owner.cblock == nil {
		return SharedPtr[T]{}
	}
	owner.cblock.AddStrongRef()
	return SharedPtr[T]{ptr: obj, cblock: owner.cblock}
}

// AliasMove is Alias stealing owner's strong reference; owner becomes
// empty.
func AliasMove[T any, Y any](owner *SharedPtr[Y], obj *T) SharedPtr[T] {
	if owner.cblock == nil {
		return SharedPtr[T]{}
	}
	var sp = SharedPtr[T]{ptr: obj, cblock: owner.cblock}
	owner.zero()
	return sp
}

// PromoteWeak is the failing promotion path: it yields an owning handle
// only if the object is still alive, and ErrDanglingPtr otherwise.
// WeakPtr.Lock is the never-failing twin.
func PromoteWeak[T any](w *WeakPtr[T]) (SharedPtr[T], error) {
	if w.Expired() {
		return SharedPtr[T]{}, ErrDanglingPtr
	}
	w.cblock.AddStrongRef()
	return SharedPtr[T]{ptr: w.ptr, cblock: w.cblock}, nil
}

// Clone adds one strong owner and returns the new handle.
func (p *SharedPtr[T]) Clone() SharedPtr[T] {
	if p.cblock == nil {
		return SharedPtr[T]{}
	}
	p.cblock.AddStrongRef()
	registerSelfReference(p.ptr, p.cblock)
	return SharedPtr[T]{ptr: p.ptr, cblock: p.cblock}
}

// Move transfers ownership without touching the counters; p becomes
// empty.
func (p *SharedPtr[T]) Move() SharedPtr[T] {
	var sp = SharedPtr[T]{ptr: p.ptr, cblock: p.cblock}
	p.zero()
	return sp
}

// CopyFrom releases the current object and shares other's instead.
func (p *SharedPtr[T]) CopyFrom(other *SharedPtr[T]) {
	if p == other {
		return
	}
	p.release()
	p.ptr = other.ptr
	p.cblock = other.cblock
	if p.cblock != nil {
		p.cblock.AddStrongRef()
		registerSelfReference(p.ptr, p.cblock)
	}
}

// MoveFrom releases the current object and takes over other's; other
// becomes empty.
func (p *SharedPtr[T]) MoveFrom(other *SharedPtr[T]) {
	if p == other {
		return
	}
	p.release()
	p.ptr = other.ptr
	p.cblock = other.cblock
	other.zero()
}

// Reset releases this handle's strong reference; after the call p is
// empty.
func (p *SharedPtr[T]) Reset() {
	p.release()
}

// ResetTo releases the current object and adopts obj into a fresh
// ownership group.
func (p *SharedPtr[T]) ResetTo(obj *T) {
	p.release()
	if obj == nil {
		return
	}
	p.ptr = obj
	p.cblock = newPtrControlBlock[T](obj, nil)
	registerSelfReference(p.ptr, p.cblock)
}

func (p *SharedPtr[T]) Swap(other *SharedPtr[T]) {
	p.ptr, other.ptr = other.ptr, p.ptr
	p.cblock, other.cblock = other.cblock, p.cblock
}

// Demote yields a non-owning observer of the same object.
func (p *SharedPtr[T]) Demote() WeakPtr[T] {
	if p.cblock == nil {
		return WeakPtr[T]{}
	}
	p.cblock.AddWeakRef()
	return WeakPtr[T]{ptr: p.ptr, cblock: p.cblock}
}

func (p *SharedPtr[T]) Get() *T {
	return p.ptr
}

// Deref returns a copy of the managed value. Dereferencing an empty
// handle is a programming defect and panics.
func (p *SharedPtr[T]) Deref() T {
	return *p.ptr
}

// UseCount reports the number of strong owners, 0 for an empty handle.
func (p *SharedPtr[T]) UseCount() int {
	if p.cblock == nil {
		return 0
	}
	return p.cblock.GetStrongRefsCount()
}

func (p *SharedPtr[T]) IsValid() bool {
	return p.ptr != nil
}

// Equal compares the observed raw pointers. Two handles tracing back to
// different control blocks compare equal if they observe the same
// address, which matters under aliasing.
func (p *SharedPtr[T]) Equal(other *SharedPtr[T]) bool {
	return p.ptr == other.ptr
}

func (p *SharedPtr[T]) zero() {
	p.ptr = nil
	p.cblock = nil
}

// release drops one strong reference. The last strong owner first clears
// the object's self-reference (through the block, which knows the managed
// object even when this handle observes a sub-object, and while the
// strong count is still nonzero, so the clear cannot destroy the block
// under us), then disposes the object, then destroys the block if no
// weak observers remain.
func (p *SharedPtr[T]) release() {
	if p.cblock != nil {
		var cblock = p.cblock
		if cblock.GetStrongRefsCount() == 1 {
			cblock.clearManagedSelfReference()
		}
		cblock.RemoveStrongRef()
		if cblock.IsZeroStrongOwning() {
			cblock.Dispose()
			if cblock.IsZeroWeakOwning() {
				cblock.Destroy()
			}
		}
	}
	p.zero()
}
