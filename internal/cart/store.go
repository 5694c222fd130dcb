package cart

import (
	"sync"
	"time"
)

// Store keys carts by session ID. Idle sessions are swept after the TTL so
// abandoned carts do not accumulate for the life of the process.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*session
	ttl      time.Duration
	stop     chan struct{}
	stopOnce sync.Once
}

type session struct {
	cart     *Cart
	lastSeen time.Time
}

func NewStore(ttl time.Duration) *Store {
	s := &Store{
		sessions: make(map[string]*session),
		ttl:      ttl,
		stop:     make(chan struct{}),
	}
	go s.sweep()
	return s
}

// Get returns the cart for a session, creating it on first use and marking
// the session live.
func (s *Store) Get(sessionID string) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		sess = &session{cart: &Cart{}}
		s.sessions[sessionID] = sess
	}
	sess.lastSeen = time.Now()
	return sess.cart
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Close stops the background sweeper.
func (s *Store) Close() {
	s.stopOnce.Do(func() { close(s.stop) })
}

func (s *Store) sweep() {
	interval := s.ttl / 2
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.evictIdle(time.Now())
		case <-s.stop:
			return
		}
	}
}

func (s *Store) evictIdle(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, sess := range s.sessions {
		if now.Sub(sess.lastSeen) > s.ttl {
			delete(s.sessions, id)
		}
	}
}
