package smartptr

// Deleter is the customizable deletion policy of UniquePtr, invoked with
// the raw pointer at disposal time.
type Deleter[T any] interface {
	DeleteObject(obj *T)
}

// DefaultDelete zeroes the value in place, the closest Go equivalent of
// destroying a single heap object. It is stateless, so a UniquePtr using
// it is exactly one pointer wide.
type DefaultDelete[T any] struct{}

func (DefaultDelete[T]) DeleteObject(obj *T) {
	var zero T
	*obj = zero
}

// UniquePtr is an exclusive-ownership handle over a single object.
// It is move-only by contract: hand it to another owner with Move or
// MoveFrom, never by plain struct assignment, or the object is disposed
// twice.
type UniquePtr[T any, D Deleter[T]] struct {
	data compressedPair[*T, D]
}

// NewUnique takes exclusive ownership of obj with the default deletion
// policy.
func NewUnique[T any](obj *T) UniquePtr[T, DefaultDelete[T]] {
	var p UniquePtr[T, DefaultDelete[T]]
	*p.data.GetFirst() = obj
	return p
}

// NewUniqueWithDeleter takes exclusive ownership of obj; deleter is
// invoked with the raw pointer at disposal time.
func NewUniqueWithDeleter[T any, D Deleter[T]](obj *T, deleter D) UniquePtr[T, D] {
	var p UniquePtr[T, D]
	*p.data.GetFirst() = obj
	*p.data.GetSecond() = deleter
	return p
}

// Release surrenders ownership: the object is returned untouched and p
// becomes empty.
func (p *UniquePtr[T, D]) Release() *T {
	var obj = *p.data.GetFirst()
	*p.data.GetFirst() = nil
	return obj
}

// Reset disposes the owned object, if any; after the call p is empty.
func (p *UniquePtr[T, D]) Reset() {
	p.ResetTo(nil)
}

// ResetTo disposes the owned object, if any, and takes ownership of obj.
func (p *UniquePtr[T, D]) ResetTo(obj *T) {
	var old = *p.data.GetFirst()
	*p.data.GetFirst() = obj
	if old != nil {
		(*p.data.GetSecond()).DeleteObject(old)
	}
}

func (p *UniquePtr[T, D]) Swap(other *UniquePtr[T, D]) {
	*p.data.GetFirst(), *other.data.GetFirst() = *other.data.GetFirst(), *p.data.GetFirst()
	*p.data.GetSecond(), *other.data.GetSecond() = *other.data.GetSecond(), *p.data.GetSecond()
}

// Move transfers ownership to the returned handle; p becomes empty.
func (p *UniquePtr[T, D]) Move() UniquePtr[T, D] {
	var moved UniquePtr[T, D]
	*moved.data.GetFirst() = p.Release()
	*moved.data.GetSecond() = *p.data.GetSecond()
	return moved
}

// MoveFrom disposes the current object and takes over other's; other
// becomes empty.
func (p *UniquePtr[T, D]) MoveFrom(other *UniquePtr[T, D]) {
	if p == other {
		return
	}
	p.ResetTo(other.Release())
	*p.data.GetSecond() = *other.data.GetSecond()
}

func (p *UniquePtr[T, D]) Get() *T {
	return *p.data.GetFirst()
}

func (p *UniquePtr[T, D]) GetDeleter() *D {
	return p.data.GetSecond()
}

// Deref returns a copy of the owned value; panics on an empty handle.
func (p *UniquePtr[T, D]) Deref() T {
	return *p.Get()
}

func (p *UniquePtr[T, D]) IsValid() bool {
	return p.Get() != nil
}
