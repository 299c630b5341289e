package syncs

// KeyLocker provides per-key read/write exclusion.
// See [KeyLock] for an implementation.
type KeyLocker interface {
	Lock(key string)
	Unlock(key string)
	RLock(key string)
	RUnlock(key string)
}

// KeyLock is a per-key read/write lock that allows independent keys to be
// held concurrently while serializing access to the same key. It binds to
// the same mode-selected backend as [RwLock], so serial builds get fail-fast
// reentry checking for free. Create instances with [NewKeyLock], or use the
// zero value directly.
type KeyLock struct {
	locks map[string]*innerRWMutex
	mu    innerMutex
}

// NewKeyLock creates a new [KeyLock].
func NewKeyLock() *KeyLock {
	return &KeyLock{
		locks: make(map[string]*innerRWMutex),
	}
}

func (kl *KeyLock) getLock(key string) *innerRWMutex {
	kl.mu.Lock()
	defer kl.mu.Unlock()

	if kl.locks == nil {
		kl.locks = make(map[string]*innerRWMutex)
	}

	l, ok := kl.locks[key]
	if !ok {
		l = &innerRWMutex{}
		kl.locks[key] = l
	}

	return l
}

// Lock acquires exclusive access for the given key.
func (kl *KeyLock) Lock(key string) {
	kl.getLock(key).Lock()
}

// Unlock releases exclusive access for the given key.
func (kl *KeyLock) Unlock(key string) {
	kl.getLock(key).Unlock()
}

// RLock acquires shared access for the given key.
func (kl *KeyLock) RLock(key string) {
	kl.getLock(key).RLock()
}

// RUnlock releases shared access for the given key.
func (kl *KeyLock) RUnlock(key string) {
	kl.getLock(key).RUnlock()
}
