package service

import (
	"context"
	"sync"

	"github.com/Allen-Pinto/Highway-Delite/internal/domain"
	"github.com/Allen-Pinto/Highway-Delite/internal/service/ports"
)

// memStore - транзакционное хранилище в памяти: транзакции идут строго
// по одной, при ошибке состояние откатывается к снимку. Блокировки FOR UPDATE
// на настоящем Postgres проверяет repository/store_integration_test.go.
type memStore struct {
	mu          sync.Mutex
	experiences map[string]*domain.Experience
	promos      map[string]*domain.PromoCode
	bookings    []*domain.Booking

	// сколько следующих вставок брони вернут коллизию reference id
	referenceCollisions int
}

func newMemStore() *memStore {
	return &memStore{
		experiences: map[string]*domain.Experience{},
		promos:      map[string]*domain.PromoCode{},
	}
}

func (s *memStore) addExperience(e *domain.Experience) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.experiences[e.ID] = cloneExperience(e)
}

func (s *memStore) addPromo(p *domain.PromoCode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *p
	s.promos[p.Code] = &cp
}

func (s *memStore) slot(experienceID, slotID string) domain.Slot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.experiences[experienceID].Slot(slotID)
}

func (s *memStore) promo(code string) domain.PromoCode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.promos[code]
}

func (s *memStore) experience(id string) domain.Experience {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *cloneExperience(s.experiences[id])
}

func (s *memStore) bookingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bookings)
}

func (s *memStore) RunInTx(ctx context.Context, fn func(tx ports.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.snapshot()
	if err := fn(&memTx{s: s}); err != nil {
		s.restore(snapshot)
		return err
	}
	return nil
}

type memState struct {
	experiences map[string]*domain.Experience
	promos      map[string]*domain.PromoCode
	bookings    []*domain.Booking
}

func (s *memStore) snapshot() memState {
	st := memState{
		experiences: make(map[string]*domain.Experience, len(s.experiences)),
		promos:      make(map[string]*domain.PromoCode, len(s.promos)),
		bookings:    make([]*domain.Booking, 0, len(s.bookings)),
	}
	for k, e := range s.experiences {
		st.experiences[k] = cloneExperience(e)
	}
	for k, p := range s.promos {
		cp := *p
		st.promos[k] = &cp
	}
	for _, b := range s.bookings {
		cp := *b
		st.bookings = append(st.bookings, &cp)
	}
	return st
}

func (s *memStore) restore(st memState) {
	s.experiences = st.experiences
	s.promos = st.promos
	s.bookings = st.bookings
}

func cloneExperience(e *domain.Experience) *domain.Experience {
	cp := *e
	cp.Slots = append([]domain.Slot(nil), e.Slots...)
	return &cp
}

// BookingRepo

func (s *memStore) GetByIdempotencyKey(_ context.Context, key string) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.bookings {
		if b.IdempotencyKey != nil && *b.IdempotencyKey == key {
			cp := *b
			return &cp, nil
		}
	}
	return nil, domain.ErrBookingNotFound
}

func (s *memStore) GetByReference(_ context.Context, referenceID, email string) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findBooking(referenceID, email)
}

func (s *memStore) HasActiveBookingForSlot(_ context.Context, email, experienceID, slotID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hasActive(email, experienceID, slotID), nil
}

func (s *memStore) CountActiveBookingsByEmail(_ context.Context, email string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.countActive(email), nil
}

func (s *memStore) findBooking(referenceID, email string) (*domain.Booking, error) {
	for _, b := range s.bookings {
		if b.ReferenceID == referenceID && b.CustomerEmail == email {
			cp := *b
			return &cp, nil
		}
	}
	return nil, domain.ErrBookingNotFound
}

func (s *memStore) hasActive(email, experienceID, slotID string) bool {
	for _, b := range s.bookings {
		if b.CustomerEmail == email && b.ExperienceID == experienceID && b.SlotID == slotID &&
			b.Status != domain.BookingStatusCancelled {
			return true
		}
	}
	return false
}

func (s *memStore) countActive(email string) int {
	n := 0
	for _, b := range s.bookings {
		if b.CustomerEmail == email && b.Status != domain.BookingStatusCancelled {
			n++
		}
	}
	return n
}

// memTx работает с состоянием напрямую: memStore.mu уже захвачен в RunInTx.
type memTx struct {
	s *memStore
}

func (t *memTx) GetExperienceForUpdate(_ context.Context, id string) (*domain.Experience, error) {
	e, ok := t.s.experiences[id]
	if !ok {
		return nil, domain.ErrExperienceNotFound
	}
	return cloneExperience(e), nil
}

func (t *memTx) UpdateSlotBookedSpots(_ context.Context, slotID string, bookedSpots int) error {
	for _, e := range t.s.experiences {
		if sl := e.Slot(slotID); sl != nil {
			sl.BookedSpots = bookedSpots
			return nil
		}
	}
	return domain.ErrSlotNotFound
}

func (t *memTx) IncrementTotalBookings(_ context.Context, experienceID string) error {
	e, ok := t.s.experiences[experienceID]
	if !ok {
		return domain.ErrExperienceNotFound
	}
	e.TotalBookings++
	return nil
}

func (t *memTx) GetPromoByCode(_ context.Context, code string) (*domain.PromoCode, error) {
	p, ok := t.s.promos[code]
	if !ok {
		return nil, domain.ErrPromoNotFound
	}
	cp := *p
	return &cp, nil
}

func (t *memTx) IncrementPromoUsage(_ context.Context, promoID string) error {
	for _, p := range t.s.promos {
		if p.ID == promoID {
			p.UsedCount++
			return nil
		}
	}
	return domain.ErrPromoNotFound
}

func (t *memTx) CountActiveBookingsByEmail(_ context.Context, email string) (int, error) {
	return t.s.countActive(email), nil
}

func (t *memTx) HasActiveBookingForSlot(_ context.Context, email, experienceID, slotID string) (bool, error) {
	return t.s.hasActive(email, experienceID, slotID), nil
}

func (t *memTx) InsertBooking(_ context.Context, b *domain.Booking) error {
	if t.s.referenceCollisions > 0 {
		t.s.referenceCollisions--
		return domain.ErrReferenceCollision
	}
	for _, existing := range t.s.bookings {
		if existing.ReferenceID == b.ReferenceID {
			return domain.ErrReferenceCollision
		}
		if b.IdempotencyKey != nil && existing.IdempotencyKey != nil && *existing.IdempotencyKey == *b.IdempotencyKey {
			return domain.ErrDuplicateIdempotencyKey
		}
	}
	cp := *b
	t.s.bookings = append(t.s.bookings, &cp)
	return nil
}

func (t *memTx) GetBookingForUpdate(_ context.Context, referenceID, email string) (*domain.Booking, error) {
	return t.s.findBooking(referenceID, email)
}

func (t *memTx) UpdateBookingStatus(_ context.Context, b *domain.Booking) error {
	for _, existing := range t.s.bookings {
		if existing.ID == b.ID {
			existing.Status = b.Status
			existing.PaymentStatus = b.PaymentStatus
			existing.UpdatedAt = b.UpdatedAt
			return nil
		}
	}
	return domain.ErrBookingNotFound
}
