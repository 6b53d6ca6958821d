package loyalty

import (
	"context"
	"encoding/json"
	"fmt"

	model "github.com/fidelia/loyalty/internal/models"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Регистрация покупки
type PurchaseRequest struct {
	User        uuid.UUID `json:"userId"`
	Branch      uuid.UUID `json:"branchId"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	Receipt     string    `json:"receipt"`
}

// Назначение штампов при подтверждении
type StampAssign struct {
	Card  uuid.UUID `json:"cardId"`
	Count int       `json:"count"`
}

// Создание покупки в статусе pending.
// Баллы считаются здесь один раз (настройки + активные промо-акции)
// и замораживаются, подтверждение их не пересчитывает.
func (s *LoyaltyService) Register(ctx context.Context, req PurchaseRequest) (model.Purchase, error) {
	if _, err := s.db.GetUser(ctx, req.User); err != nil {
		return model.Purchase{}, err
	}

	// настройки и промо-акции читаем параллельно
	var settings model.SystemSettings
	var promos []model.Promotion
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		settings, err = s.catalog.GetSettings(gctx)
		return err
	})
	g.Go(func() (err error) {
		promos, err = s.catalog.GetAllPromotions(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return model.Purchase{}, err
	}

	now := s.clock.Now()
	effect := EvaluatePromotions(now, promos)
	points, err := CalculatePoints(req.Amount, settings, effect)
	if err != nil {
		return model.Purchase{}, err
	}

	purchase := model.Purchase{
		UUID:        s.gen.NewID(),
		User:        req.User,
		Branch:      req.Branch,
		Date:        now,
		Amount:      req.Amount,
		Points:      points,
		Description: req.Description,
		Receipt:     req.Receipt,
		Status:      model.StatusPending,
	}
	if err = s.db.PurchaseCreate(ctx, purchase); err != nil {
		return model.Purchase{}, err
	}
	return purchase, nil
}

// Регистрация покупки из сообщения Kafka
func (s *LoyaltyService) RegisterFromJSON(ctx context.Context, purchaseJson string) error {
	req := PurchaseRequest{}
	if err := json.Unmarshal([]byte(purchaseJson), &req); err != nil {
		return fmt.Errorf("invalid purchase message: %w", err)
	}
	if req.User == uuid.Nil {
		return fmt.Errorf("invalid purchase: userId field is required: %w", model.ErrValidation)
	}
	_, err := s.Register(ctx, req)
	return err
}

func (s *LoyaltyService) GetPurchase(ctx context.Context, id uuid.UUID) (model.Purchase, error) {
	return s.db.GetPurchase(ctx, id)
}

// Подтверждение покупки: статус, начисление замороженных баллов,
// штампы и купоны, уведомление - одной транзакцией хранилища.
// Конкурентное повторное подтверждение отсекается проверкой статуса
// pending в самом хранилище.
func (s *LoyaltyService) ApprovePurchase(ctx context.Context, id uuid.UUID, stamps []StampAssign, acting uuid.UUID) ([]model.Coupon, error) {
	actor, err := s.db.GetUser(ctx, acting)
	if err != nil {
		return nil, err
	}
	if !s.auth.IsAuthorized(ctx, actor) {
		return nil, fmt.Errorf("user %s: %w", acting, model.ErrNotAuthorized)
	}

	purchase, err := s.db.GetPurchase(ctx, id)
	if err != nil {
		return nil, err
	}
	if purchase.Status != model.StatusPending {
		return nil, fmt.Errorf("purchase %s is %s: %w", id, purchase.Status, model.ErrInvalidTransition)
	}

	now := s.clock.Now()

	// одинаковые карточки в назначениях складываем
	counts := make(map[uuid.UUID]int)
	order := make([]uuid.UUID, 0, len(stamps))
	for _, a := range stamps {
		if _, ok := counts[a.Card]; !ok {
			order = append(order, a.Card)
		}
		counts[a.Card] += a.Count
	}

	var cards []model.UserStampCard
	var coupons []model.Coupon
	for _, cardId := range order {
		def, err := s.catalog.GetCard(ctx, cardId)
		if err != nil {
			return nil, err
		}
		card, err := s.stampCard(ctx, purchase.User, cardId)
		if err != nil {
			return nil, err
		}
		card, minted, err := AddStamps(card, def, counts[cardId], s.gen, now)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
		coupons = append(coupons, minted...)
	}

	var message string
	if len(coupons) > 0 {
		message = fmt.Sprintf("🎉 Your purchase of $%.0f has been APPROVED. You received +%d points and earned %d reward coupon(s).",
			purchase.Amount, purchase.Points, len(coupons))
	} else {
		message = fmt.Sprintf("🎉 Your purchase of $%.0f has been APPROVED. You received +%d points.",
			purchase.Amount, purchase.Points)
	}

	approve := model.PurchaseApprove{
		Purchase:   purchase.UUID,
		User:       purchase.User,
		Points:     purchase.Points,
		ApprovedAt: now,
		Cards:      cards,
		Coupons:    coupons,
		Note: model.Notification{
			UUID:    s.gen.NewID(),
			User:    purchase.User,
			Message: message,
			Date:    now,
			SentBy:  "System",
		},
	}
	if err = s.db.PurchaseApprove(ctx, approve); err != nil {
		return nil, err
	}

	if err = s.InvalidateBalance(ctx, purchase.User); err != nil {
		s.Log(err)
	}
	return coupons, nil
}

// Отклонение покупки: баллы не начислялись, баланс не трогаем
func (s *LoyaltyService) RejectPurchase(ctx context.Context, id uuid.UUID, acting uuid.UUID) error {
	actor, err := s.db.GetUser(ctx, acting)
	if err != nil {
		return err
	}
	if !s.auth.IsAuthorized(ctx, actor) {
		return fmt.Errorf("user %s: %w", acting, model.ErrNotAuthorized)
	}

	purchase, err := s.db.GetPurchase(ctx, id)
	if err != nil {
		return err
	}
	if purchase.Status != model.StatusPending {
		return fmt.Errorf("purchase %s is %s: %w", id, purchase.Status, model.ErrInvalidTransition)
	}

	note := model.Notification{
		UUID:    s.gen.NewID(),
		User:    purchase.User,
		Message: fmt.Sprintf("⚠️ Your purchase of $%.0f has been REJECTED. Please contact the administrator.", purchase.Amount),
		Date:    s.clock.Now(),
		SentBy:  "System",
	}
	return s.db.PurchaseReject(ctx, id, note)
}
