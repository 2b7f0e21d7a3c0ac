package smartptr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type connection struct {
	RefCounted
	Addr      string
	destroyed int
}

func newConnection(addr string) *connection {
	var conn = &connection{Addr: addr}
	conn.SetDestroyFunc(func() {
		conn.destroyed++
	})
	return conn
}

func TestIntrusivePtrUseCount(t *testing.T) {
	var conn = newConnection("10.0.0.1")
	var ip1 = NewIntrusive(conn)
	assert.True(t, ip1.IsValid())
	assert.Equal(t, 1, ip1.UseCount())

	var ip2 = ip1.Clone()
	assert.Equal(t, 2, ip1.UseCount())
	assert.Equal(t, 2, ip2.UseCount())

	ip1.Reset()
	assert.Equal(t, 1, ip2.UseCount())
	assert.Equal(t, 0, conn.destroyed)

	ip2.Reset()
	assert.Equal(t, 1, conn.destroyed)
}

func TestIntrusivePtrDestroyHookRunsOnce(t *testing.T) {
	var conn = newConnection("10.0.0.2")
	var ip = NewIntrusive(conn)
	var clone = ip.Clone()

	ip.Reset()
	clone.Reset()
	assert.Equal(t, 1, conn.destroyed)
}

func TestIntrusivePtrMove(t *testing.T) {
	var conn = newConnection("10.0.0.3")
	var ip1 = NewIntrusive(conn)

	var ip2 = ip1.Move()
	assert.False(t, ip1.IsValid())
	assert.Equal(t, 1, ip2.UseCount())
	assert.Equal(t, 0, conn.destroyed)

	ip2.Reset()
	assert.Equal(t, 1, conn.destroyed)
}

func TestIntrusivePtrCopyFromMoveFrom(t *testing.T) {
	var connA = newConnection("a")
	var connB = newConnection("b")
	var ipA = NewIntrusive(connA)
	var ipB = NewIntrusive(connB)

	ipB.CopyFrom(&ipA)
	assert.Equal(t, 1, connB.destroyed)
	assert.Equal(t, 2, ipA.UseCount())
	assert.Equal(t, "a", ipB.Get().Addr)

	var ipC IntrusivePtr[*connection]
	ipC.MoveFrom(&ipB)
	assert.False(t, ipB.IsValid())
	assert.Equal(t, 2, ipC.UseCount())

	ipA.Reset()
	ipC.Reset()
	assert.Equal(t, 1, connA.destroyed)
}

func TestIntrusivePtrResetToAndSwap(t *testing.T) {
	var connA = newConnection("a")
	var connB = newConnection("b")
	var ipA = NewIntrusive(connA)
	var ipB = NewIntrusive(connB)

	ipA.Swap(&ipB)
	assert.Equal(t, "b", ipA.Get().Addr)
	assert.Equal(t, "a", ipB.Get().Addr)

	ipA.ResetTo(connA)
	assert.Equal(t, 1, connB.destroyed)
	assert.Equal(t, 2, connA.RefCount())

	ipA.Reset()
	ipB.Reset()
	assert.Equal(t, 1, connA.destroyed)
}

func TestIntrusivePtrEmpty(t *testing.T) {
	var ip IntrusivePtr[*connection]
	assert.False(t, ip.IsValid())
	assert.Equal(t, 0, ip.UseCount())
	ip.Reset()

	var clone = ip.Clone()
	assert.False(t, clone.IsValid())
}
