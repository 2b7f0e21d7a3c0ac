package smartptr

// selfReferenceAnchor is how the ownership machinery finds the hidden
// weak self-handle of a managed type that opted in by embedding
// EnableSharedFromThis.
type selfReferenceAnchor interface {
	registerWeakSelf(obj any, cblock ControlBlock)
	clearWeakSelf()
}

// registerSelfReference populates obj's self-reference if the type
// exposes the capability. Called on every path that establishes strong
// ownership.
func registerSelfReference[T any](obj *T, cblock ControlBlock) {
	if obj == nil {
		return
	}
	if anchor, ok := any(obj).(selfReferenceAnchor); ok {
		anchor.registerWeakSelf(obj, cblock)
	}
}

// clearSelfReference drops obj's self-reference. Called by the last
// strong owner before disposal, so the dying object cannot observe a
// stale non-expired handle to itself.
func clearSelfReference[T any](obj *T) {
	if obj == nil {
		return
	}
	if anchor, ok := any(obj).(selfReferenceAnchor); ok {
		anchor.clearWeakSelf()
	}
}

// EnableSharedFromThis lets a managed type obtain new handles to itself
// from within its own methods. Embed it by value:
//
//	type Session struct {
//		smartptr.EnableSharedFromThis[Session]
//		...
//	}
//
// The hidden self-handle is weak, so the object never keeps itself
// alive. Before the object is first owned by a SharedPtr, and after the
// last strong owner releases it, SharedFromThis returns an empty handle
// and WeakFromThis an expired one; callers must check.
type EnableSharedFromThis[T any] struct {
	weakSelf WeakPtr[T]
}

func (p *EnableSharedFromThis[T]) registerWeakSelf(obj any, cblock ControlBlock) {
	target, ok := obj.(*T)
	if !ok {
		return
	}
	if p.weakSelf.cblock == cblock {
		return
	}
	p.weakSelf.Reset()
	cblock.AddWeakRef()
	p.weakSelf = WeakPtr[T]{ptr: target, cblock: cblock}
}

func (p *EnableSharedFromThis[T]) clearWeakSelf() {
	p.weakSelf.Reset()
}

// SharedFromThis returns a new strong owner of this object, or an empty
// handle if the object is not currently shared-owned.
func (p *EnableSharedFromThis[T]) SharedFromThis() SharedPtr[T] {
	return p.weakSelf.Lock()
}

// WeakFromThis returns a non-owning observer of this object.
func (p *EnableSharedFromThis[T]) WeakFromThis() WeakPtr[T] {
	return p.weakSelf.Clone()
}
