package usecase

import (
	"sync"
	"time"
)

// 管理者がログアウトしたときに流れるイベント
type SignOutEvent struct {
	AdminID int64     `json:"admin_id"`
	At      time.Time `json:"at"`
}

// SignOutEvents はログアウトを購読者全員に配る。
// 受け取りが詰まっている購読者には捨てる（Publishはブロックしない）
type SignOutEvents struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan SignOutEvent
}

func NewSignOutEvents() *SignOutEvents {
	return &SignOutEvents{subs: map[int]chan SignOutEvent{}}
}

// Subscribe はチャネルと解除関数を返す。解除するとチャネルは閉じる
func (e *SignOutEvents) Subscribe() (<-chan SignOutEvent, func()) {
	ch := make(chan SignOutEvent, 8)

	e.mu.Lock()
	id := e.nextID
	e.nextID++
	e.subs[id] = ch
	e.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			e.mu.Lock()
			delete(e.subs, id)
			e.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

func (e *SignOutEvents) Publish(ev SignOutEvent) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, ch := range e.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

func (e *SignOutEvents) Subscribers() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.subs)
}
