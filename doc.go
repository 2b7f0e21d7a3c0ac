// Package smartptr implements deterministic, manually reference-counted
// ownership of objects: an exclusive-ownership pointer (UniquePtr), a
// shared-ownership pointer (SharedPtr) with a non-owning observer
// (WeakPtr), and an intrusively counted pointer (IntrusivePtr).
//
// Shared ownership is tracked by a control block holding a strong and a
// weak counter. The managed object is disposed the moment the last strong
// owner departs; the control block itself stays alive until the last weak
// observer departs, so a WeakPtr can still answer liveness queries after
// the object is gone.
//
// Go has no copy constructors or destructors, so every transfer is
// explicit: Clone copies a handle (one more owner), Move transfers it
// (source becomes empty), Reset releases it. Every Clone/Demote/Lock must
// be balanced by a Reset on every exit path.
//
// Counters are plain integers. Handles of one ownership group must be
// used from a single goroutine or under external synchronization.
package smartptr
