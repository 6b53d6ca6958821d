package loyalty

import (
	"context"
	"errors"
	"fmt"
	"time"

	interf "github.com/fidelia/loyalty/internal/interfaces"
	model "github.com/fidelia/loyalty/internal/models"
	"github.com/google/uuid"
)

// Начисление штампов на карточку пользователя.
// Политика переполнения: за каждый заполненный круг - один купон,
// остаток переносится на следующий круг. 25 штампов на карточку из 10
// дают два купона и 5 штампов остатка.
func AddStamps(card model.UserStampCard, def model.LoyaltyCard, count int, gen interf.CodeGenerator, now time.Time) (model.UserStampCard, []model.Coupon, error) {
	if count <= 0 {
		return card, nil, fmt.Errorf("stamps count %d: %w", count, model.ErrValidation)
	}
	if def.TotalStamps <= 0 {
		return card, nil, fmt.Errorf("card %s totalStamps %d: %w", def.UUID, def.TotalStamps, model.ErrConfiguration)
	}

	total := card.Stamps + count
	var coupons []model.Coupon
	for total >= def.TotalStamps {
		coupons = append(coupons, MintCoupon(card.User, def, gen, now))
		total -= def.TotalStamps
	}
	card.Stamps = total
	if len(coupons) > 0 {
		card.Completed = true
		card.CompletedDate = now
	}
	return card, coupons, nil
}

// Выпуск купона за заполненную карточку
func MintCoupon(user uuid.UUID, def model.LoyaltyCard, gen interf.CodeGenerator, now time.Time) model.Coupon {
	return model.Coupon{
		UUID:        gen.NewID(),
		User:        user,
		Code:        gen.CouponCode(),
		Name:        "Coupon: " + def.Reward,
		Description: fmt.Sprintf("Earned for %d stamps on %s", def.TotalStamps, def.Name),
		Generated:   now,
		Status:      model.CouponActive,
	}
}

// карточка пользователя, создается лениво при первом штампе
func (s *LoyaltyService) stampCard(ctx context.Context, user uuid.UUID, card uuid.UUID) (model.UserStampCard, error) {
	current, err := s.db.GetStampCard(ctx, user, card)
	if err == nil {
		return current, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.UserStampCard{}, err
	}
	return model.UserStampCard{
		UUID:      s.gen.NewID(),
		User:      user,
		Card:      card,
		Stamps:    0,
		StartDate: s.clock.Now(),
	}, nil
}

func (s *LoyaltyService) GetCards(ctx context.Context) ([]model.LoyaltyCard, error) {
	return s.catalog.GetCards(ctx)
}

// Создание/обновление определения карточки
func (s *LoyaltyService) SaveCard(ctx context.Context, card model.LoyaltyCard) error {
	if card.TotalStamps <= 0 {
		return fmt.Errorf("totalStamps %d: %w", card.TotalStamps, model.ErrValidation)
	}
	if card.Reward == "" {
		return fmt.Errorf("card reward is empty: %w", model.ErrValidation)
	}
	if card.UUID == uuid.Nil {
		card.UUID = s.gen.NewID()
	}
	return s.catalog.SaveCard(ctx, card)
}
