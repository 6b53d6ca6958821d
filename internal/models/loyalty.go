package loyalty

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Роли пользователей
const (
	RoleUser       = "user"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "superadmin"
)

// Статусы покупок и заявок на списание
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Типы промо-акций
const (
	PromoMultiplier = "multiplier"
	PromoBonus      = "bonus"
	PromoDiscount   = "discount" // зарезервировано, на баллы не влияет
)

// Статусы купонов
const (
	CouponActive  = "active"
	CouponUsed    = "used"
	CouponExpired = "expired"
)

// Типы транзакций баллов
const (
	ACCRUEL = 0
	REDEEM  = 1
	REFUND  = 2
	EXPIRE  = 3
)

// Ошибки движка, интерпретируются на уровне API
var (
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation error")
	ErrConfiguration      = errors.New("configuration error")
	ErrInsufficientPoints = errors.New("not enough points")
	ErrNotAuthorized      = errors.New("not authorized")
	ErrInvalidTransition  = errors.New("invalid status transition")
)

type User struct {
	UUID   uuid.UUID `bson:"id" json:"id"`
	Email  string    `bson:"email" json:"email"`
	Name   string    `bson:"name" json:"name"`
	Role   string    `bson:"role" json:"role"`
	Points int64     `bson:"points" json:"points"`
	Tier   string    `bson:"tier" json:"tier"`     // косметический статус, назначается снаружи
	Branch uuid.UUID `bson:"branch" json:"branch"` // для админов, uuid.Nil - без привязки
}

type Purchase struct {
	UUID        uuid.UUID `json:"id"`
	User        uuid.UUID `json:"user"`
	Branch      uuid.UUID `json:"branch"` // uuid.Nil - сеть не указана, в базе NULL
	Date        time.Time `json:"date"`
	Amount      float64   `json:"amount"`
	Points      int64     `json:"points"` // фиксируются при создании, при подтверждении не пересчитываются
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Receipt     string    `json:"receipt"` // номер чека, опционально
	ApprovedAt  time.Time `json:"approvedAt"`
}

type Promotion struct {
	UUID        uuid.UUID `bson:"id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	Kind        string    `bson:"kind" json:"kind"`
	Value       float64   `bson:"value" json:"value"`
	StartDate   time.Time `bson:"startdate" json:"startDate"`
	EndDate     time.Time `bson:"enddate" json:"endDate"`
	Active      bool      `bson:"active" json:"active"`
}

type LoyaltyCard struct {
	UUID        uuid.UUID `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description" json:"description"`
	TotalStamps int       `bson:"totalstamps" json:"totalStamps"`
	Reward      string    `bson:"reward" json:"reward"`
	Category    string    `bson:"category" json:"category"`
}

type UserStampCard struct {
	UUID          uuid.UUID `json:"id"`
	User          uuid.UUID `json:"user"`
	Card          uuid.UUID `json:"card"`
	Stamps        int       `json:"stamps"` // всегда в [0, totalStamps)
	Completed     bool      `json:"completed"`
	StartDate     time.Time `json:"startDate"`
	CompletedDate time.Time `json:"completedDate"`
}

type Coupon struct {
	UUID        uuid.UUID `json:"id"`
	User        uuid.UUID `json:"user"`
	Code        string    `json:"code"` // уникальность обеспечивает индекс в базе
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Generated   time.Time `json:"generated"`
	Status      string    `json:"status"`
}

type Reward struct {
	UUID        uuid.UUID `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Points      int64     `bson:"points" json:"points"`
	Description string    `bson:"description" json:"description"`
}

type Redemption struct {
	UUID       uuid.UUID `json:"id"`
	User       uuid.UUID `json:"user"`
	Reward     uuid.UUID `json:"reward"`
	RewardName string    `json:"rewardName"`
	Points     int64     `json:"points"` // стоимость фиксируется при создании
	Date       time.Time `json:"date"`
	Status     string    `json:"status"`
}

type SystemSettings struct {
	AmountPerPoint       float64 `bson:"amountperpoint" json:"amountPerPoint"`
	AmountPerStamp       float64 `bson:"amountperstamp" json:"amountPerStamp"`
	PointsExpirationDays int     `bson:"pointsexpirationdays" json:"pointsExpirationDays"`
}

// Уведомление, пишется в outbox в одной транзакции с изменением статуса
type Notification struct {
	UUID    uuid.UUID `json:"id"`
	User    uuid.UUID `json:"user"` // uuid.Nil - общая рассылка
	Message string    `json:"message"`
	Date    time.Time `json:"date"`
	SentBy  string    `json:"sentBy"`
}

// Транзакции баллов
type PointTransaction struct {
	UUID       uuid.UUID // UUID транзакции
	User       uuid.UUID // UUID пользователя
	Points     int64     // кол-во баллов
	Date       time.Time // дата/время операции
	TypeTnx    int       // тип операции
	Purchase   uuid.UUID // UUID покупки
	Redemption uuid.UUID // UUID заявки на списание
	Expired    bool      // баллы сгорели
}

// Все данные подтверждения покупки - коммитятся одной транзакцией
type PurchaseApprove struct {
	Purchase   uuid.UUID
	User       uuid.UUID
	Points     int64
	ApprovedAt time.Time
	Cards      []UserStampCard
	Coupons    []Coupon
	Note       Notification
}
