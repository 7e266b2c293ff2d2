package ledger

import (
	"sync"
	"sync/atomic"
	"time"

	reservationserrors "concierge/internal/reservations/errors"
	"concierge/pkg/model"
)

type slotKey struct {
	roomType string
	date     string
}

// slot holds the committed bookings for one (room type, date) pair. Its
// mutex makes the capacity check and the append a single critical section,
// scoped to this slot only.
type slot struct {
	mu       sync.Mutex
	bookings []*model.Booking
}

// Ledger is the append-only record of committed bookings. Bookings on
// different (room type, date) slots never contend with each other; the
// outer lock guards only the slot map itself.
type Ledger struct {
	mu    sync.RWMutex
	slots map[slotKey]*slot
	seq   atomic.Int64
}

func New() *Ledger {
	return &Ledger{slots: make(map[slotKey]*slot)}
}

func (l *Ledger) slotFor(roomType, date string) *slot {
	key := slotKey{roomType: roomType, date: date}

	l.mu.RLock()
	s := l.slots[key]
	l.mu.RUnlock()
	if s != nil {
		return s
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if s = l.slots[key]; s == nil {
		s = &slot{}
		l.slots[key] = s
	}
	return s
}

// CountFor returns the number of committed bookings matching both fields
// exactly. The result is a snapshot and may be stale by the time the
// caller acts on it.
func (l *Ledger) CountFor(roomType, date string) int {
	s := l.slotFor(roomType, date)
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bookings)
}

// Commit appends a new booking iff the slot's current count is below
// capacity. The re-check and the append happen under the slot lock, so at
// most capacity bookings can ever exist for a slot regardless of how many
// callers race. Booking ids are allocated only on the success path and are
// strictly increasing across the process lifetime.
func (l *Ledger) Commit(roomType, date string, capacity int) (*model.Booking, error) {
	s := l.slotFor(roomType, date)

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.bookings) >= capacity {
		return nil, reservationserrors.ErrNoRoomsAvailable
	}

	booking := &model.Booking{
		ID:        l.seq.Add(1),
		RoomType:  roomType,
		Date:      date,
		CreatedAt: time.Now().UTC(),
	}
	s.bookings = append(s.bookings, booking)

	return booking, nil
}

// Bookings returns a snapshot of the committed bookings for a slot.
func (l *Ledger) Bookings(roomType, date string) []*model.Booking {
	s := l.slotFor(roomType, date)

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]*model.Booking, len(s.bookings))
	copy(snapshot, s.bookings)
	return snapshot
}
