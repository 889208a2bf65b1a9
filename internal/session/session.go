package session

import (
	"sync"
	"time"

	"freshcart/internal/domain/cart"
	"freshcart/internal/i18n"
)

// Session は1訪問者分の状態（カートと表示言語）。
// 中身の変更は Do の中だけで行う。
type Session struct {
	ID string

	mu       sync.Mutex
	cart     *cart.Ledger
	lang     *i18n.State
	lastSeen time.Time
}

func newSession(id string, dict *i18n.Dictionary, now time.Time) *Session {
	return &Session{
		ID:       id,
		cart:     cart.NewLedger(),
		lang:     i18n.NewState(dict),
		lastSeen: now,
	}
}

// Do はセッションをロックしてfnを実行する。
func (s *Session) Do(fn func(c *cart.Ledger, lang *i18n.State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.cart, s.lang)
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}
