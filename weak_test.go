package smartptr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeakPtrDemoteScenario(t *testing.T) {
	var sp1 = MakeShared(42)
	var wp = sp1.Demote()
	assert.Equal(t, 1, wp.UseCount())
	assert.False(t, wp.Expired())

	sp1.Reset()
	assert.True(t, wp.Expired())
	assert.Equal(t, 0, wp.UseCount())

	var locked = wp.Lock()
	assert.False(t, locked.IsValid())

	wp.Reset()
}

func TestWeakPtrOutlivesAllOwners(t *testing.T) {
	var wp WeakPtr[widget]
	{
		var sp = MakeShared(widget{ID: 20})
		wp = sp.Demote()
		sp.Reset()
	}
	// holding and querying an expired observer is safe
	assert.True(t, wp.Expired())
	assert.Equal(t, 0, wp.UseCount())
	var locked = wp.Lock()
	assert.False(t, locked.IsValid())
	wp.Reset()
	wp.Reset()
}

func TestWeakPtrLockAddsOwner(t *testing.T) {
	var sp = MakeShared(widget{ID: 21})
	var wp = sp.Demote()

	var sp2 = wp.Lock()
	assert.True(t, sp2.IsValid())
	assert.Equal(t, 2, sp2.UseCount())
	assert.True(t, sp.Equal(&sp2))

	sp.Reset()
	assert.Equal(t, 1, wp.UseCount())
	sp2.Reset()
	assert.True(t, wp.Expired())
	wp.Reset()
}

func TestPromoteWeak(t *testing.T) {
	var sp = MakeShared(widget{ID: 22})
	var wp = sp.Demote()

	var promoted, err = PromoteWeak(&wp)
	assert.NoError(t, err)
	assert.True(t, promoted.IsValid())
	assert.Equal(t, 2, promoted.UseCount())

	promoted.Reset()
	sp.Reset()

	promoted, err = PromoteWeak(&wp)
	assert.Equal(t, ErrDanglingPtr, err)
	assert.False(t, promoted.IsValid())

	wp.Reset()
}

func TestWeakPtrCloneAndMove(t *testing.T) {
	var sp = MakeShared(widget{ID: 23})
	var wp1 = sp.Demote()
	var wp2 = wp1.Clone()

	assert.Equal(t, 1, wp2.UseCount())

	var wp3 = wp1.Move()
	assert.Equal(t, 0, wp1.UseCount())
	assert.True(t, wp1.Expired())
	assert.Equal(t, 1, wp3.UseCount())

	wp2.Reset()
	wp3.Reset()
	sp.Reset()
}

func TestWeakPtrCopyFromMoveFromSwap(t *testing.T) {
	var sp1 = MakeShared(widget{ID: 24})
	var sp2 = MakeShared(widget{ID: 25})
	var wp1 = sp1.Demote()
	var wp2 = sp2.Demote()

	wp1.Swap(&wp2)
	var locked = wp1.Lock()
	assert.Equal(t, int64(25), locked.Get().ID)
	locked.Reset()

	wp1.CopyFrom(&wp2)
	locked = wp1.Lock()
	assert.Equal(t, int64(24), locked.Get().ID)
	locked.Reset()

	var wp3 WeakPtr[widget]
	wp3.MoveFrom(&wp2)
	assert.True(t, wp2.Expired())
	assert.False(t, wp3.Expired())

	wp1.Reset()
	wp3.Reset()
	sp1.Reset()
	sp2.Reset()
}

func TestDemoteOfEmptyShared(t *testing.T) {
	var sp SharedPtr[widget]
	var wp = sp.Demote()
	assert.True(t, wp.Expired())
	assert.Equal(t, 0, wp.UseCount())
	wp.Reset()
}

func TestControlBlockOutlivesObjectUntilLastWeak(t *testing.T) {
	var obj = &widget{ID: 26}
	var sp = Adopt(obj)
	var cblock = sp.cblock.(*ptrControlBlock[widget])
	var wp = sp.Demote()

	sp.Reset()
	// object disposed, block still answering for the observer
	assert.True(t, cblock.IsZeroStrongOwning())
	assert.Equal(t, 1, cblock.GetWeakRefsCount())
	assert.NotNil(t, cblock.obj)
	assert.True(t, wp.Expired())

	wp.Reset()
	// last weak observer gone: block destroyed
	assert.True(t, cblock.IsZeroWeakOwning())
	assert.Nil(t, cblock.obj)
}
