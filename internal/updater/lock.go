// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package updater

import "sync"

// State is the state of a [Lock].
type State int

const (
	Idle State = iota
	Running
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	default:
		return "unknown"
	}
}

// Lock is a single-owner Idle/Running state machine. The zero value is an
// idle lock.
type Lock struct {
	mu    sync.Mutex
	state State
}

// NewLock returns an idle lock.
func NewLock() *Lock {
	return &Lock{}
}

// State returns the current state.
func (l *Lock) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// TryAcquire moves the lock from Idle to Running. It never blocks: ok is
// false when another owner holds the lock. The returned release moves the
// lock back to Idle; calling it more than once is a no-op.
func (l *Lock) TryAcquire() (release func(), ok bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state == Running {
		return nil, false
	}
	l.state = Running

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			l.state = Idle
			l.mu.Unlock()
		})
	}, true
}
