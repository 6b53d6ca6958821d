package loyalty

import (
	"context"
	"fmt"
	"time"

	model "github.com/fidelia/loyalty/internal/models"
	"github.com/google/uuid"
)

// Суммарное действие промо-акций на момент времени
type PromotionEffect struct {
	Multiplier float64
	Bonus      int64
}

// Расчет действия активных промо-акций.
// Активна: статус active и start <= t <= end.
// Множитель - максимум по активным multiplier-акциям (не перемножаем,
// чтобы пересекающиеся кампании не раздували начисление), минимум 1.
// Бонус - сумма по активным bonus-акциям.
func EvaluatePromotions(t time.Time, promos []model.Promotion) (effect PromotionEffect) {
	effect.Multiplier = 1
	for _, p := range promos {
		if !p.Active || t.Before(p.StartDate) || t.After(p.EndDate) {
			continue
		}
		switch p.Kind {
		case model.PromoMultiplier:
			if p.Value > effect.Multiplier {
				effect.Multiplier = p.Value
			}
		case model.PromoBonus:
			effect.Bonus += int64(p.Value)
		case model.PromoDiscount:
			// на баллы не влияет
		}
	}
	return effect
}

// Активные промо-акции на текущий момент
func (s *LoyaltyService) GetActivePromotions(ctx context.Context) ([]model.Promotion, error) {
	promos, err := s.catalog.GetAllPromotions(ctx)
	if err != nil {
		return nil, err
	}
	now := s.clock.Now()
	active := make([]model.Promotion, 0, len(promos))
	for _, p := range promos {
		if p.Active && !now.Before(p.StartDate) && !now.After(p.EndDate) {
			active = append(active, p)
		}
	}
	return active, nil
}

func (s *LoyaltyService) GetAllPromotions(ctx context.Context) ([]model.Promotion, error) {
	return s.catalog.GetAllPromotions(ctx)
}

// Создание/обновление промо-акции
func (s *LoyaltyService) SavePromotion(ctx context.Context, promo model.Promotion) error {
	switch promo.Kind {
	case model.PromoMultiplier, model.PromoBonus, model.PromoDiscount:
	default:
		return fmt.Errorf("promotion kind %q: %w", promo.Kind, model.ErrValidation)
	}
	if promo.Value <= 0 {
		return fmt.Errorf("promotion value %v: %w", promo.Value, model.ErrValidation)
	}
	if promo.EndDate.Before(promo.StartDate) {
		return fmt.Errorf("promotion window: %w", model.ErrValidation)
	}
	if promo.UUID == uuid.Nil {
		promo.UUID = s.gen.NewID()
	}
	return s.catalog.SavePromotion(ctx, promo)
}

func (s *LoyaltyService) DeletePromotion(ctx context.Context, id uuid.UUID) error {
	return s.catalog.DeletePromotion(ctx, id)
}
