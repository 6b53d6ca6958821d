// Job - прием покупок из кассовых систем
// Опрос Kafka -> расчет и заморозка баллов -> создание покупки в статусе pending
package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"

	db "github.com/fidelia/loyalty/internal/db"
	kafka "github.com/fidelia/loyalty/internal/external/kafka"
	interf "github.com/fidelia/loyalty/internal/interfaces"
	services "github.com/fidelia/loyalty/internal/services"
	"go.uber.org/zap"
)

func main() {
	// log
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// kafka
	reader, err := kafka.GetNewReader("purchases")
	if err != nil {
		panic(err)
	}
	defer reader.CloseReader()

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

	// cache
	var redis interf.CacheStorage
	redis, err = db.NewCacheService()
	if err != nil {
		logger.Error(err.Error())
		redis = nil
	}

	// services
	serv := services.NewLoyaltyService(logger, storage, catalog, redis, nil, nil, nil)

	// start
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// TODO: default
	var semcount int
	semenv := os.Getenv("LOYALTY_PURCHASES_COUNT")
	if semenv == "" {
		semcount = 5
	} else {
		semcount, err = strconv.Atoi(semenv)
		if err != nil {
			semcount = 5
		}
	}
	if semcount == 0 {
		semcount = 1
	}

	wg := &sync.WaitGroup{}
	semaphore := make(chan struct{}, semcount)

loop:
	for {
		select {
		case <-interrupt:
			cancel()
			break loop
		case <-ctx.Done():
			break loop
		default:

			purchase, err := reader.GetNewMessage(ctx)
			if err != nil {
				logger.Error(err.Error())
				return
			}

			semaphore <- struct{}{}
			wg.Add(1)
			go func(purchase string) {
				defer wg.Done()
				defer func() { <-semaphore }()
				err = serv.RegisterFromJSON(ctx, purchase)
				if err != nil {
					logger.Error(err.Error())
					return
				}
			}(purchase)
		}
	}
	wg.Wait()
}
