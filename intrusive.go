package smartptr

// RefCounter is what IntrusivePtr requires of a managed type: the
// reference count lives inside the object itself.
type RefCounter interface {
	IncRef() int
	DecRef() int
	RefCount() int
}

// RefCountable is the IntrusivePtr element constraint; the handle stores
// the counted value directly, normally a pointer to the object.
type RefCountable interface {
	comparable
	RefCounter
}

// SimpleCounter is a plain embedded counter.
type SimpleCounter struct {
	count int
}

func (p *SimpleCounter) IncRef() int {
	p.count++
	return p.count
}

func (p *SimpleCounter) DecRef() int {
	p.count--
	return p.count
}

func (p *SimpleCounter) RefCount() int {
	return p.count
}

// RefCountedInvokeDestroy runs when the embedded count drops to zero.
type RefCountedInvokeDestroy func()

// RefCounted is the embeddable counter for intrusively counted types.
// The destroy hook, when set, fires exactly once, as the last reference
// departs.
type RefCounted struct {
	counter     SimpleCounter
	destroyFunc RefCountedInvokeDestroy
}

func (p *RefCounted) SetDestroyFunc(destroyFunc RefCountedInvokeDestroy) {
	p.destroyFunc = destroyFunc
}

func (p *RefCounted) IncRef() int {
	return p.counter.IncRef()
}

func (p *RefCounted) DecRef() int {
	var remaining = p.counter.DecRef()
	if remaining == 0 && p.destroyFunc != nil {
		p.destroyFunc()
	}
	return remaining
}

func (p *RefCounted) RefCount() int {
	return p.counter.RefCount()
}

// IntrusivePtr is an owning handle over an intrusively counted object,
// e.g. IntrusivePtr[*Session] where Session embeds RefCounted. The zero
// value is the empty pointer.
type IntrusivePtr[T RefCountable] struct {
	obj T
}

// NewIntrusive acquires one reference on obj and returns the handle.
func NewIntrusive[T RefCountable](obj T) IntrusivePtr[T] {
	var p IntrusivePtr[T]
	p.ResetTo(obj)
	return p
}

// Clone acquires one more reference and returns the new handle.
func (p *IntrusivePtr[T]) Clone() IntrusivePtr[T] {
	var clone = IntrusivePtr[T]{obj: p.obj}
	var zero T
	if clone.obj != zero {
		clone.obj.IncRef()
	}
	return clone
}

// Move transfers the reference without touching the count; p becomes
// empty.
func (p *IntrusivePtr[T]) Move() IntrusivePtr[T] {
	var moved = IntrusivePtr[T]{obj: p.obj}
	var zero T
	p.obj = zero
	return moved
}

// CopyFrom releases the current reference and shares other's object.
func (p *IntrusivePtr[T]) CopyFrom(other *IntrusivePtr[T]) {
	if p.obj == other.obj {
		return
	}
	var acquired = other.Clone()
	p.release()
	p.obj = acquired.obj
}

// MoveFrom releases the current reference and takes over other's; other
// becomes empty.
func (p *IntrusivePtr[T]) MoveFrom(other *IntrusivePtr[T]) {
	if p == other {
		return
	}
	if p.obj == other.obj {
		other.Reset()
		return
	}
	p.release()
	p.obj = other.obj
	var zero T
	other.obj = zero
}

// Reset releases this handle's reference; after the call p is empty.
func (p *IntrusivePtr[T]) Reset() {
	p.release()
}

// ResetTo releases the current reference and acquires one on obj.
func (p *IntrusivePtr[T]) ResetTo(obj T) {
	p.release()
	p.obj = obj
	var zero T
	if p.obj != zero {
		p.obj.IncRef()
	}
}

func (p *IntrusivePtr[T]) Swap(other *IntrusivePtr[T]) {
	p.obj, other.obj = other.obj, p.obj
}

func (p *IntrusivePtr[T]) Get() T {
	return p.obj
}

// UseCount reports the object's embedded count, 0 for an empty handle.
func (p *IntrusivePtr[T]) UseCount() int {
	var zero T
	if p.obj == zero {
		return 0
	}
	return p.obj.RefCount()
}

func (p *IntrusivePtr[T]) IsValid() bool {
	var zero T
	return p.obj != zero
}

func (p *IntrusivePtr[T]) release() {
	var zero T
	if p.obj != zero {
		p.obj.DecRef()
	}
	p.obj = zero
}
