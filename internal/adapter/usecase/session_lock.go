package usecase

import "sync"

// sessionLocks serialises read-modify-write sequences per session so that
// concurrent requests of one user cannot interleave their updates. An
// entry lives only while someone holds or waits for it.
type sessionLocks struct {
	mu    sync.Mutex
	locks map[string]*sessionLock
}

type sessionLock struct {
	mu   sync.Mutex
	refs int
}

func (l *sessionLocks) lock(session string) func() {
	l.mu.Lock()
	if l.locks == nil {
		l.locks = make(map[string]*sessionLock)
	}
	e, ok := l.locks[session]
	if !ok {
		e = &sessionLock{}
		l.locks[session] = e
	}
	e.refs++
	l.mu.Unlock()

	e.mu.Lock()
	return func() {
		e.mu.Unlock()

		l.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(l.locks, session)
		}
		l.mu.Unlock()
	}
}

// size reports the number of live entries.
func (l *sessionLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
