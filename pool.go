package smartptr

type ObjectPoolInvokePrepareNewObject[T any] func(obj *T)
type ObjectPoolInvokeBeforeReleaseObject[T any] func(obj *T)

// ObjectPool recycles managed objects so disposal has real storage to
// reclaim into.
// user -> AllocObject -> mallocObject -> prepareNewObjectFunc -> user
// user -> ReleaseObject -> beforeReleaseObjectFunc -> freelist -> user
//
// A pool follows the same threading contract as the handles: one
// goroutine, or external synchronization.
type ObjectPool[T any] struct {
	id int64

	objectsLimit     int32
	activeObjectsNum int32

	prepareNewObjectFunc    ObjectPoolInvokePrepareNewObject[T]
	beforeReleaseObjectFunc ObjectPoolInvokeBeforeReleaseObject[T]

	freeObjects []*T
}

// Init prepares the pool. objectsLimit of -1 means unbounded; otherwise
// AllocObject fails with ErrPoolExhausted once that many objects are
// live at once.
func (p *ObjectPool[T]) Init(id int64, objectsLimit int32,
	prepareNewObjectFunc ObjectPoolInvokePrepareNewObject[T],
	beforeReleaseObjectFunc ObjectPoolInvokeBeforeReleaseObject[T]) error {
	p.id = id
	p.objectsLimit = objectsLimit
	p.prepareNewObjectFunc = prepareNewObjectFunc
	p.beforeReleaseObjectFunc = beforeReleaseObjectFunc
	p.freeObjects = nil
	p.activeObjectsNum = 0
	return nil
}

func (p *ObjectPool[T]) PoolID() int64 {
	return p.id
}

func (p *ObjectPool[T]) ActiveObjectsNum() int32 {
	return p.activeObjectsNum
}

func (p *ObjectPool[T]) AllocObject() (*T, error) {
	if p.objectsLimit != -1 && p.activeObjectsNum >= p.objectsLimit {
		return nil, ErrPoolExhausted
	}
	p.activeObjectsNum++

	var last = len(p.freeObjects) - 1
	if last >= 0 {
		var obj = p.freeObjects[last]
		p.freeObjects[last] = nil
		p.freeObjects = p.freeObjects[:last]
		return obj, nil
	}

	var obj = new(T)
	if p.prepareNewObjectFunc != nil {
		p.prepareNewObjectFunc(obj)
	}
	return obj, nil
}

func (p *ObjectPool[T]) ReleaseObject(obj *T) {
	if obj == nil {
		return
	}
	if p.beforeReleaseObjectFunc != nil {
		p.beforeReleaseObjectFunc(obj)
	}
	p.activeObjectsNum--
	p.freeObjects = append(p.freeObjects, obj)
}

// AllocShared adopts a pooled object into shared ownership; the last
// strong owner returns it to the pool instead of destroying it.
func (p *ObjectPool[T]) AllocShared() (SharedPtr[T], error) {
	var (
		obj *T
		err error
	)
	obj, err = p.AllocObject()
	if err != nil {
		return SharedPtr[T]{}, err
	}
	return AdoptWithDisposer(obj, p.ReleaseObject), nil
}

// AllocUnique adopts a pooled object into exclusive ownership.
func (p *ObjectPool[T]) AllocUnique() (UniquePtr[T, *ObjectPool[T]], error) {
	var (
		obj *T
		err error
	)
	obj, err = p.AllocObject()
	if err != nil {
		return UniquePtr[T, *ObjectPool[T]]{}, err
	}
	return NewUniqueWithDeleter(obj, p), nil
}

// DeleteObject makes the pool usable as a UniquePtr deletion policy.
func (p *ObjectPool[T]) DeleteObject(obj *T) {
	p.ReleaseObject(obj)
}
