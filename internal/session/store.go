package session

import (
	"context"
	"sync"
	"time"

	"freshcart/internal/i18n"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Clock は現在時刻（テストで差し替える）
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Store はメモリ上のセッション一覧。再起動で消える。
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	dict     *i18n.Dictionary
	idleTTL  time.Duration
	clock    Clock
	log      *zap.Logger
}

type Option func(*Store)

func WithClock(c Clock) Option {
	return func(s *Store) { s.clock = c }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Store) { s.log = l }
}

// NewStore はidleTTL=0なら期限切れ削除をしない。
func NewStore(dict *i18n.Dictionary, idleTTL time.Duration, opts ...Option) *Store {
	s := &Store{
		sessions: make(map[string]*Session),
		dict:     dict,
		idleTTL:  idleTTL,
		clock:    realClock{},
		log:      zap.NewNop(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Get は既存セッションを返し、最終アクセスを更新する。
func (s *Store) Get(id string) (*Session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if ok {
		sess.touch(s.clock.Now())
	}
	return sess, ok
}

// GetOrCreate はidが空/不明なら新しいIDで作る。
func (s *Store) GetOrCreate(id string) (*Session, bool) {
	if id != "" {
		if sess, ok := s.Get(id); ok {
			return sess, false
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess := newSession(uuid.NewString(), s.dict, s.clock.Now())
	s.sessions[sess.ID] = sess
	return sess, true
}

func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep はidleTTLを過ぎたセッションを破棄し、件数を返す。
func (s *Store) Sweep(now time.Time) int {
	if s.idleTTL <= 0 {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for id, sess := range s.sessions {
		if now.Sub(sess.idleSince()) > s.idleTTL {
			delete(s.sessions, id)
			n++
		}
	}
	return n
}

// RunSweeper はctxが終わるまでinterval毎にSweepする。
func (s *Store) RunSweeper(ctx context.Context, interval time.Duration) {
	if s.idleTTL <= 0 || interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(s.clock.Now()); n > 0 {
				s.log.Info("idle sessions swept", zap.Int("count", n), zap.Int("remaining", s.Len()))
			}
		}
	}
}
