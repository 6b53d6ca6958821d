// Job - доставка уведомлений
// Outbox наполняется в одной транзакции с изменением статусов,
// здесь неотправленные записи публикуются в RabbitMQ и размечаются
package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	db "github.com/fidelia/loyalty/internal/db"
	rabbit "github.com/fidelia/loyalty/internal/external/rabbitmq"
	interf "github.com/fidelia/loyalty/internal/interfaces"
	"go.uber.org/zap"
)

func main() {
	// log
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// rabbitmq
	publisher, err := rabbit.NewRabbitPublisher()
	if err != nil {
		logger.Error(err.Error())
		panic(err)
	}
	defer publisher.Close()

	// database
	var storage interf.LoyaltyStorage
	dt, err := db.NewLoyaltyDB(logger)
	if err != nil {
		panic(err)
	}
	storage = dt

	// TODO: default
	var batch int
	batchenv := os.Getenv("LOYALTY_NOTIFY_BATCH")
	if batchenv == "" {
		batch = 100
	} else {
		batch, err = strconv.Atoi(batchenv)
		if err != nil {
			batch = 100
		}
	}

	// start
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		<-interrupt
		cancel()
	}()

	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			notes, err := storage.OutboxFetch(ctx, batch)
			if err != nil {
				logger.Error(err.Error())
				continue
			}
			for _, note := range notes {
				err = publisher.Publish(ctx, note)
				if err != nil {
					logger.Error(err.Error())
					break
				}
				// повторная отправка при сбое разметки допустима,
				// потребитель обрабатывает по UUID уведомления
				err = storage.OutboxMarkSent(ctx, note.UUID)
				if err != nil {
					logger.Error(err.Error())
				}
			}
		}
	}
}
