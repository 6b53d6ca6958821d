package loyalty

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	model "github.com/fidelia/loyalty/internal/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Справочники: промо-акции, карточки, каталог наград, настройки
type CatalogDB struct {
	mgo        *mongo.Client
	promotions *mongo.Collection
	cards      *mongo.Collection
	rewards    *mongo.Collection
	settings   *mongo.Collection
}

func NewCatalogDB() (*CatalogDB, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mng := os.Getenv("LOYALTY_MONGO")
	if mng == "" {
		return nil, fmt.Errorf("env LOYALTY_MONGO is not set")
	}

	options := options.Client().ApplyURI("mongodb://" + mng)
	client, err := mongo.Connect(ctx, options)
	if err != nil {
		return nil, err
	}
	err = client.Ping(ctx, nil)
	if err != nil {
		return nil, err
	}
	db := client.Database("loyaltyDB")

	return &CatalogDB{
		mgo:        client,
		promotions: db.Collection("promotions"),
		cards:      db.Collection("cards"),
		rewards:    db.Collection("rewards"),
		settings:   db.Collection("settings"),
	}, nil
}

func (c *CatalogDB) GetAllPromotions(ctx context.Context) ([]model.Promotion, error) {
	var promos []model.Promotion
	result, err := c.promotions.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	for result.Next(ctx) {
		var promo model.Promotion
		err := result.Decode(&promo)
		if err != nil {
			return nil, err
		}
		promos = append(promos, promo)
	}
	return promos, nil
}

func (c *CatalogDB) SavePromotion(ctx context.Context, promo model.Promotion) error {
	return c.save(ctx, c.promotions, promo.UUID, promo)
}

func (c *CatalogDB) DeletePromotion(ctx context.Context, id uuid.UUID) error {
	_, err := c.promotions.DeleteOne(ctx, bson.M{"id": id})
	return err
}

func (c *CatalogDB) GetCard(ctx context.Context, id uuid.UUID) (card model.LoyaltyCard, err error) {
	err = c.cards.FindOne(ctx, bson.M{"id": id}).Decode(&card)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.LoyaltyCard{}, fmt.Errorf("card %s %w", id, model.ErrNotFound)
		}
		return model.LoyaltyCard{}, err
	}
	return card, nil
}

func (c *CatalogDB) GetCards(ctx context.Context) ([]model.LoyaltyCard, error) {
	var cards []model.LoyaltyCard
	result, err := c.cards.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	for result.Next(ctx) {
		var card model.LoyaltyCard
		err := result.Decode(&card)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

func (c *CatalogDB) SaveCard(ctx context.Context, card model.LoyaltyCard) error {
	return c.save(ctx, c.cards, card.UUID, card)
}

func (c *CatalogDB) GetReward(ctx context.Context, id uuid.UUID) (reward model.Reward, err error) {
	err = c.rewards.FindOne(ctx, bson.M{"id": id}).Decode(&reward)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.Reward{}, fmt.Errorf("reward %s %w", id, model.ErrNotFound)
		}
		return model.Reward{}, err
	}
	return reward, nil
}

func (c *CatalogDB) GetRewards(ctx context.Context) ([]model.Reward, error) {
	var rewards []model.Reward
	result, err := c.rewards.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	for result.Next(ctx) {
		var reward model.Reward
		err := result.Decode(&reward)
		if err != nil {
			return nil, err
		}
		rewards = append(rewards, reward)
	}
	return rewards, nil
}

func (c *CatalogDB) SaveReward(ctx context.Context, reward model.Reward) error {
	return c.save(ctx, c.rewards, reward.UUID, reward)
}

// Настройки - единственный документ
func (c *CatalogDB) GetSettings(ctx context.Context) (settings model.SystemSettings, err error) {
	err = c.settings.FindOne(ctx, bson.M{}).Decode(&settings)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return model.SystemSettings{}, fmt.Errorf("settings %w", model.ErrNotFound)
		}
		return model.SystemSettings{}, err
	}
	return settings, nil
}

func (c *CatalogDB) SaveSettings(ctx context.Context, settings model.SystemSettings) error {
	opts := options.Replace().SetUpsert(true)
	_, err := c.settings.ReplaceOne(ctx, bson.M{}, settings, opts)
	return err
}

// создание или замена документа по полю id
func (c *CatalogDB) save(ctx context.Context, coll *mongo.Collection, id uuid.UUID, doc any) error {
	opts := options.Replace().SetUpsert(true)
	_, err := coll.ReplaceOne(ctx, bson.M{"id": id}, doc, opts)
	return err
}
