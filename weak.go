package smartptr

// WeakPtr is a non-owning observer of a shared-owned object. It does not
// keep the object alive, but it keeps the control block alive, so it can
// still answer Expired and UseCount after the object has been disposed.
// The zero value is the empty pointer.
type WeakPtr[T any] struct {
	ptr    *T
	cblock ControlBlock
}

// Clone adds one weak observer and returns the new handle.
func (p *WeakPtr[T]) Clone() WeakPtr[T] {
	if p.cblock == nil {
		return WeakPtr[T]{}
	}
	p.cblock.AddWeakRef()
	return WeakPtr[T]{ptr: p.ptr, cblock: p.cblock}
}

// Move transfers the weak reference without touching the counters; p
// becomes empty.
func (p *WeakPtr[T]) Move() WeakPtr[T] {
	var w = WeakPtr[T]{ptr: p.ptr, cblock: p.cblock}
	p.zero()
	return w
}

// CopyFrom releases the current reference and observes other's object
// instead.
func (p *WeakPtr[T]) CopyFrom(other *WeakPtr[T]) {
	if p == other {
		return
	}
	p.release()
	p.ptr = other.ptr
	p.cblock = other.cblock
	if p.cblock != nil {
		p.cblock.AddWeakRef()
	}
}

// MoveFrom releases the current reference and takes over other's; other
// becomes empty.
func (p *WeakPtr[T]) MoveFrom(other *WeakPtr[T]) {
	if p == other {
		return
	}
	p.release()
	p.ptr = other.ptr
	p.cblock = other.cblock
	other.zero()
}

// Reset releases this handle's weak reference; after the call p is
// empty.
func (p *WeakPtr[T]) Reset() {
	p.release()
}

func (p *WeakPtr[T]) Swap(other *WeakPtr[T]) {
	p.ptr, other.ptr = other.ptr, p.ptr
	p.cblock, other.cblock = other.cblock, p.cblock
}

// UseCount reports how many strong owners remain, 0 for an empty handle.
func (p *WeakPtr[T]) UseCount() int {
	if p.cblock == nil {
		return 0
	}
	return p.cblock.GetStrongRefsCount()
}

// Expired reports whether the managed object is gone (or was never
// owned).
func (p *WeakPtr[T]) Expired() bool {
	return p.UseCount() == 0
}

// Lock is the never-failing promotion path: an empty SharedPtr if the
// object is gone, otherwise a new strong owner.
func (p *WeakPtr[T]) Lock() SharedPtr[T] {
	if p.Expired() {
		return SharedPtr[T]{}
	}
	p.cblock.AddStrongRef()
	return SharedPtr[T]{ptr: p.ptr, cblock: p.cblock}
}

func (p *WeakPtr[T]) zero() {
	p.ptr = nil
	p.cblock = nil
}

// release drops one weak reference; the last departing observer of an
// already-disposed object destroys the control block.
func (p *WeakPtr[T]) release() {
	if p.cblock != nil {
		p.cblock.RemoveWeakRef()
		if p.cblock.IsZeroStrongOwning() && p.cblock.IsZeroWeakOwning() {
			p.cblock.Destroy()
		}
	}
	p.zero()
}
