package loyalty

import (
	"context"
	"fmt"
	"time"

	interf "github.com/fidelia/loyalty/internal/interfaces"
	model "github.com/fidelia/loyalty/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type LoyaltyService struct {
	logger  *zap.Logger
	db      interf.LoyaltyStorage
	catalog interf.CatalogStorage
	cache   interf.CacheStorage
	auth    interf.Authorizer
	clock   interf.Clock
	gen     interf.CodeGenerator
}

// cache может быть nil - работаем без кэша
// auth, clock, gen: nil - реализация по умолчанию
func NewLoyaltyService(logger *zap.Logger, db interf.LoyaltyStorage, catalog interf.CatalogStorage, cache interf.CacheStorage,
	auth interf.Authorizer, clock interf.Clock, gen interf.CodeGenerator) *LoyaltyService {
	if auth == nil {
		auth = RoleAuthorizer{}
	}
	if clock == nil {
		clock = SystemClock{}
	}
	if gen == nil {
		gen = UUIDGenerator{}
	}
	return &LoyaltyService{logger, db, catalog, cache, auth, clock, gen}
}

// Часы по умолчанию
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Генератор по умолчанию: код купона - UUID с префиксом,
// уникальность все равно контролирует индекс в базе
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() uuid.UUID { return uuid.New() }

func (UUIDGenerator) CouponCode() string { return "REW-" + uuid.New().String() }

// Подтверждать и отклонять могут админы и суперадмины
type RoleAuthorizer struct{}

func (RoleAuthorizer) IsAuthorized(ctx context.Context, user model.User) bool {
	return user.Role == model.RoleAdmin || user.Role == model.RoleSuperAdmin
}

// Баланс
func (s *LoyaltyService) GetBalance(ctx context.Context, user uuid.UUID) (points int64, err error) {
	// cache
	if s.cache != nil {
		points, err = s.cache.GetBalance(ctx, user.String())
		if err != nil {
			// database
			points, err = s.db.GetBalance(ctx, user)
			if err != nil {
				return 0, err
			}
			_ = s.cache.SetBalance(ctx, user.String(), points)
		}
	} else {
		points, err = s.db.GetBalance(ctx, user)
		if err != nil {
			return 0, err
		}
	}
	return
}

// инвалидировать кэш баланса
func (s *LoyaltyService) InvalidateBalance(ctx context.Context, user uuid.UUID) error {
	if s.cache != nil {
		err := s.cache.InvalidateBalance(ctx, user.String())
		return err
	}
	return nil
}

// транзакции баллов
func (s *LoyaltyService) GetTnx(ctx context.Context, user uuid.UUID, from time.Time, to time.Time) (tnxs []model.PointTransaction, err error) {
	tnxs, err = s.db.GetTnx(ctx, user, from, to)
	if err != nil {
		return nil, err
	}
	return tnxs, nil
}

// купоны пользователя
func (s *LoyaltyService) GetCoupons(ctx context.Context, user uuid.UUID) ([]model.Coupon, error) {
	return s.db.GetCoupons(ctx, user)
}

// Общая рассылка от имени админа
func (s *LoyaltyService) Notify(ctx context.Context, acting uuid.UUID, message string) error {
	sender, err := s.db.GetUser(ctx, acting)
	if err != nil {
		return err
	}
	if !s.auth.IsAuthorized(ctx, sender) {
		return fmt.Errorf("user %s: %w", acting, model.ErrNotAuthorized)
	}
	if message == "" {
		return fmt.Errorf("message is empty: %w", model.ErrValidation)
	}
	note := model.Notification{
		UUID:    s.gen.NewID(),
		Message: message,
		Date:    s.clock.Now(),
		SentBy:  sender.Name,
	}
	return s.db.NotificationCreate(ctx, note)
}

// Сжигание баллов с истекшим сроком
func (s *LoyaltyService) ExpireOnDate(ctx context.Context) error {
	settings, err := s.catalog.GetSettings(ctx)
	if err != nil {
		return err
	}
	if settings.PointsExpirationDays <= 0 {
		// сжигание отключено
		return nil
	}
	return s.db.TnxExpireOnDate(ctx, s.clock.Now(), settings.PointsExpirationDays)
}

func (s *LoyaltyService) Log(err error) {
	s.logger.Error(err.Error())
}
