package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Allen-Pinto/Highway-Delite/internal/domain"
	"github.com/Allen-Pinto/Highway-Delite/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type ExperienceService struct {
	repo   ports.ExperienceRepo
	logger logger.Logger
	now    func() time.Time
}

func NewExperienceService(repo ports.ExperienceRepo, logger logger.Logger) *ExperienceService {
	return &ExperienceService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

func (s *ExperienceService) List(ctx context.Context, filter domain.ExperienceFilter) ([]*domain.Experience, error) {
	filter.Location = strings.TrimSpace(filter.Location)
	filter.Search = strings.TrimSpace(filter.Search)
	if filter.Category != "" && !filter.Category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", domain.ErrValidation, filter.Category)
	}

	list, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list experiences: %w", err)
	}

	now := s.now()
	for _, e := range list {
		e.Slots = e.UpcomingSlots(now)
	}
	return list, nil
}

func (s *ExperienceService) Get(ctx context.Context, id string) (*domain.Experience, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get experience: %w", err)
	}
	if !e.Active {
		return nil, domain.ErrExperienceNotFound
	}

	e.Slots = e.UpcomingSlots(s.now())
	return e, nil
}

func (s *ExperienceService) SlotAvailability(ctx context.Context, experienceID, slotID string, quantity int) (*domain.SlotAvailability, error) {
	if quantity < 1 {
		quantity = 1
	}

	e, err := s.Get(ctx, experienceID)
	if err != nil {
		return nil, err
	}

	slot := e.Slot(slotID)
	if slot == nil {
		return nil, domain.ErrSlotNotFound
	}

	return &domain.SlotAvailability{
		Available:      slot.Available(quantity, s.now()),
		AvailableSpots: slot.Remaining(),
		Slot:           slot,
	}, nil
}
