package loyalty

import (
	"context"
	"fmt"

	model "github.com/fidelia/loyalty/internal/models"
	"github.com/google/uuid"
)

// Заявка на обмен баллов. Баллы списываются сразу при создании,
// стоимость замораживается в заявке.
func (s *LoyaltyService) RequestRedemption(ctx context.Context, userId uuid.UUID, rewardId uuid.UUID) (model.Redemption, error) {
	user, err := s.db.GetUser(ctx, userId)
	if err != nil {
		return model.Redemption{}, err
	}
	reward, err := s.catalog.GetReward(ctx, rewardId)
	if err != nil {
		return model.Redemption{}, err
	}
	if user.Points < reward.Points {
		return model.Redemption{}, fmt.Errorf("balance %d, reward %d: %w", user.Points, reward.Points, model.ErrInsufficientPoints)
	}

	redemption := model.Redemption{
		UUID:       s.gen.NewID(),
		User:       userId,
		Reward:     reward.UUID,
		RewardName: reward.Name,
		Points:     reward.Points,
		Date:       s.clock.Now(),
		Status:     model.StatusPending,
	}
	// списание и создание заявки - одна транзакция хранилища,
	// баланс проверяется повторно под блокировкой
	if err = s.db.RedemptionCreate(ctx, redemption); err != nil {
		return model.Redemption{}, err
	}

	if err = s.InvalidateBalance(ctx, userId); err != nil {
		s.Log(err)
	}
	return redemption, nil
}

func (s *LoyaltyService) GetRedemption(ctx context.Context, id uuid.UUID) (model.Redemption, error) {
	return s.db.GetRedemption(ctx, id)
}

// Подтверждение заявки: баллы уже списаны при создании, баланс не меняется
func (s *LoyaltyService) ApproveRedemption(ctx context.Context, id uuid.UUID, acting uuid.UUID) error {
	actor, err := s.db.GetUser(ctx, acting)
	if err != nil {
		return err
	}
	if !s.auth.IsAuthorized(ctx, actor) {
		return fmt.Errorf("user %s: %w", acting, model.ErrNotAuthorized)
	}

	redemption, err := s.db.GetRedemption(ctx, id)
	if err != nil {
		return err
	}
	if redemption.Status != model.StatusPending {
		return fmt.Errorf("redemption %s is %s: %w", id, redemption.Status, model.ErrInvalidTransition)
	}

	note := model.Notification{
		UUID:    s.gen.NewID(),
		User:    redemption.User,
		Message: fmt.Sprintf("🎉 Your redemption %q has been APPROVED.", redemption.RewardName),
		Date:    s.clock.Now(),
		SentBy:  "System",
	}
	return s.db.RedemptionApprove(ctx, id, note)
}

// Отклонение заявки: замороженная стоимость возвращается на баланс
func (s *LoyaltyService) RejectRedemption(ctx context.Context, id uuid.UUID, acting uuid.UUID) error {
	actor, err := s.db.GetUser(ctx, acting)
	if err != nil {
		return err
	}
	if !s.auth.IsAuthorized(ctx, actor) {
		return fmt.Errorf("user %s: %w", acting, model.ErrNotAuthorized)
	}

	redemption, err := s.db.GetRedemption(ctx, id)
	if err != nil {
		return err
	}
	if redemption.Status != model.StatusPending {
		return fmt.Errorf("redemption %s is %s: %w", id, redemption.Status, model.ErrInvalidTransition)
	}

	note := model.Notification{
		UUID:    s.gen.NewID(),
		User:    redemption.User,
		Message: fmt.Sprintf("⚠️ Your redemption %q has been REJECTED, %d points were refunded.", redemption.RewardName, redemption.Points),
		Date:    s.clock.Now(),
		SentBy:  "System",
	}
	if err = s.db.RedemptionReject(ctx, redemption, note); err != nil {
		return err
	}

	if err = s.InvalidateBalance(ctx, redemption.User); err != nil {
		s.Log(err)
	}
	return nil
}

func (s *LoyaltyService) GetRewards(ctx context.Context) ([]model.Reward, error) {
	return s.catalog.GetRewards(ctx)
}

// Создание/обновление награды в каталоге
func (s *LoyaltyService) SaveReward(ctx context.Context, reward model.Reward) error {
	if reward.Points <= 0 {
		return fmt.Errorf("reward points %d: %w", reward.Points, model.ErrValidation)
	}
	if reward.Name == "" {
		return fmt.Errorf("reward name is empty: %w", model.ErrValidation)
	}
	if reward.UUID == uuid.Nil {
		reward.UUID = s.gen.NewID()
	}
	return s.catalog.SaveReward(ctx, reward)
}
