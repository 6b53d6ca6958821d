package loyalty

import (
	"context"
	"time"

	model "github.com/fidelia/loyalty/internal/models"
	"github.com/google/uuid"
)

//go:generate mockgen -destination=./../services/mock_loyalty_test.go -package=loyalty . LoyaltyStorage,CatalogStorage,CacheStorage,Authorizer,Clock,CodeGenerator

// Транзакционное хранилище: пользователи, покупки, списания, штампы, купоны, outbox
type LoyaltyStorage interface {
	GetUser(ctx context.Context, id uuid.UUID) (model.User, error)
	GetBalance(ctx context.Context, user uuid.UUID) (points int64, err error)

	PurchaseCreate(ctx context.Context, purchase model.Purchase) error
	GetPurchase(ctx context.Context, id uuid.UUID) (model.Purchase, error)
	// подтверждение: статус, баллы, штампы, купоны и уведомление одной транзакцией
	PurchaseApprove(ctx context.Context, approve model.PurchaseApprove) error
	PurchaseReject(ctx context.Context, id uuid.UUID, note model.Notification) error

	GetStampCard(ctx context.Context, user uuid.UUID, card uuid.UUID) (model.UserStampCard, error)
	GetCoupons(ctx context.Context, user uuid.UUID) ([]model.Coupon, error)

	// создание заявки списывает баллы в той же транзакции
	RedemptionCreate(ctx context.Context, redemption model.Redemption) error
	GetRedemption(ctx context.Context, id uuid.UUID) (model.Redemption, error)
	RedemptionApprove(ctx context.Context, id uuid.UUID, note model.Notification) error
	// отклонение возвращает замороженную стоимость на баланс
	RedemptionReject(ctx context.Context, redemption model.Redemption, note model.Notification) error

	GetTnx(ctx context.Context, user uuid.UUID, from time.Time, to time.Time) ([]model.PointTransaction, error)
	TnxExpireOnDate(ctx context.Context, date time.Time, days int) error

	NotificationCreate(ctx context.Context, note model.Notification) error
	OutboxFetch(ctx context.Context, limit int) ([]model.Notification, error)
	OutboxMarkSent(ctx context.Context, id uuid.UUID) error
}

// Справочники: промо-акции, карточки штампов, каталог наград, настройки
type CatalogStorage interface {
	GetAllPromotions(ctx context.Context) ([]model.Promotion, error)
	SavePromotion(ctx context.Context, promo model.Promotion) error
	DeletePromotion(ctx context.Context, id uuid.UUID) error

	GetCard(ctx context.Context, id uuid.UUID) (model.LoyaltyCard, error)
	GetCards(ctx context.Context) ([]model.LoyaltyCard, error)
	SaveCard(ctx context.Context, card model.LoyaltyCard) error

	GetReward(ctx context.Context, id uuid.UUID) (model.Reward, error)
	GetRewards(ctx context.Context) ([]model.Reward, error)
	SaveReward(ctx context.Context, reward model.Reward) error

	GetSettings(ctx context.Context) (model.SystemSettings, error)
	SaveSettings(ctx context.Context, settings model.SystemSettings) error
}

type CacheStorage interface {
	GetBalance(ctx context.Context, user string) (points int64, err error)
	SetBalance(ctx context.Context, user string, points int64) (err error)
	InvalidateBalance(ctx context.Context, user string) error
}

// Проверка прав на подтверждение/отклонение
type Authorizer interface {
	IsAuthorized(ctx context.Context, user model.User) bool
}

// Часы инжектируются, чтобы окна промо-акций были детерминированы в тестах
type Clock interface {
	Now() time.Time
}

// Генерация UUID и кодов купонов, безопасна при параллельных вызовах
type CodeGenerator interface {
	NewID() uuid.UUID
	CouponCode() string
}
