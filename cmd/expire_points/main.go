// Job - сжигание баллов с истекшим сроком (разметка начислений и изменение баланса)
// Срок задается настройкой pointsExpirationDays, 0 - сжигание отключено
package main

import (
	"context"

	"go.uber.org/zap"

	db "github.com/fidelia/loyalty/internal/db"
	interf "github.com/fidelia/loyalty/internal/interfaces"
	services "github.com/fidelia/loyalty/internal/services"
)

func main() {
	// log
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// database
	var storage interf.LoyaltyStorage
	dt, err := db.NewLoyaltyDB(logger)
	if err != nil {
		panic(err)
	}
	storage = dt

	// catalog
	var catalog interf.CatalogStorage
	ct, err := db.NewCatalogDB()
	if err != nil {
		panic(err)
	}
	catalog = ct

	serv := services.NewLoyaltyService(logger, storage, catalog, nil, nil, nil, nil)
	err = serv.ExpireOnDate(context.Background())
	if err != nil {
		logger.Error(err.Error())
		return
	}
	logger.Info("Job points expiration is finished")
}
