package loyalty

import (
	"context"
	"fmt"
	"math"

	model "github.com/fidelia/loyalty/internal/models"
)

// Расчет баллов за покупку:
// base = floor(amount / amountPerPoint), final = floor(base * multiplier) + bonus.
// Выполняется один раз при регистрации покупки, результат замораживается.
func CalculatePoints(amount float64, settings model.SystemSettings, effect PromotionEffect) (int64, error) {
	if settings.AmountPerPoint <= 0 {
		return 0, fmt.Errorf("amountPerPoint %v: %w", settings.AmountPerPoint, model.ErrConfiguration)
	}
	if amount <= 0 {
		return 0, fmt.Errorf("amount %v: %w", amount, model.ErrValidation)
	}
	base := math.Floor(amount / settings.AmountPerPoint)
	final := math.Floor(base*effect.Multiplier) + float64(effect.Bonus)
	return int64(final), nil
}

func (s *LoyaltyService) GetSettings(ctx context.Context) (model.SystemSettings, error) {
	return s.catalog.GetSettings(ctx)
}

// Обновление глобальных настроек
func (s *LoyaltyService) SaveSettings(ctx context.Context, settings model.SystemSettings) error {
	if settings.AmountPerPoint <= 0 {
		return fmt.Errorf("amountPerPoint %v: %w", settings.AmountPerPoint, model.ErrConfiguration)
	}
	if settings.AmountPerStamp <= 0 {
		return fmt.Errorf("amountPerStamp %v: %w", settings.AmountPerStamp, model.ErrConfiguration)
	}
	if settings.PointsExpirationDays < 0 {
		return fmt.Errorf("pointsExpirationDays %v: %w", settings.PointsExpirationDays, model.ErrConfiguration)
	}
	return s.catalog.SaveSettings(ctx, settings)
}
