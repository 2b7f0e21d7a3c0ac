package smartptr

// Pool is the pool surface the driver tracks.
type Pool interface {
	PoolID() int64
	ActiveObjectsNum() int32
}

// PoolDriver hands out pool IDs and keeps a registry of the pools it
// prepared.
type PoolDriver struct {
	maxPoolID int64
	pools     map[int64]Pool
}

func (p *PoolDriver) Init() error {
	p.pools = make(map[int64]Pool)
	return nil
}

func (p *PoolDriver) AllocPoolID() int64 {
	p.maxPoolID++
	return p.maxPoolID
}

func (p *PoolDriver) GetPool(id int64) (Pool, bool) {
	var pool, exists = p.pools[id]
	return pool, exists
}

// InitObjectPool prepares pool under a fresh ID and registers it with
// the driver.
func InitObjectPool[T any](driver *PoolDriver, pool *ObjectPool[T], objectsLimit int32,
	prepareNewObjectFunc ObjectPoolInvokePrepareNewObject[T],
	beforeReleaseObjectFunc ObjectPoolInvokeBeforeReleaseObject[T]) error {
	var err = pool.Init(driver.AllocPoolID(), objectsLimit,
		prepareNewObjectFunc, beforeReleaseObjectFunc)
	if err != nil {
		return err
	}

	driver.pools[pool.PoolID()] = pool
	return nil
}
