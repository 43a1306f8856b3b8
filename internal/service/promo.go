package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Allen-Pinto/Highway-Delite/internal/domain"
	"github.com/Allen-Pinto/Highway-Delite/internal/promo"
	"github.com/Allen-Pinto/Highway-Delite/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type PromoService struct {
	repo   ports.PromoRepo
	logger logger.Logger
	now    func() time.Time
}

func NewPromoService(repo ports.PromoRepo, logger logger.Logger) *PromoService {
	return &PromoService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// Validate только проверяет промокод, used_count не меняется.
func (s *PromoService) Validate(ctx context.Context, in domain.PromoPreviewInput) (*domain.PromoPreview, error) {
	if in.Subtotal.IsNegative() {
		return nil, fmt.Errorf("%w: subtotal must not be negative", domain.ErrValidation)
	}

	res, err := promo.Validate(ctx, s.repo, promo.Request{
		Code:          in.Code,
		Subtotal:      in.Subtotal,
		Category:      in.Category,
		CustomerEmail: strings.ToLower(strings.TrimSpace(in.CustomerEmail)),
	}, s.now())
	if err != nil {
		s.logger.Debug("promo code rejected",
			logger.String("code", in.Code),
			logger.String("reason", err.Error()),
		)
		return nil, err
	}

	p := res.Promo
	return &domain.PromoPreview{
		Code:           p.Code,
		DiscountType:   p.DiscountType,
		DiscountValue:  p.DiscountValue,
		MaxDiscount:    p.MaxDiscount,
		DiscountAmount: res.DiscountAmount,
		Subtotal:       in.Subtotal,
		FinalAmount:    in.Subtotal.Sub(res.DiscountAmount),
		Description:    p.Description(),
	}, nil
}

func (s *PromoService) ListActive(ctx context.Context) ([]*domain.PromoCode, error) {
	list, err := s.repo.ListActive(ctx, s.now())
	if err != nil {
		return nil, fmt.Errorf("list active promo codes: %w", err)
	}
	return list, nil
}
