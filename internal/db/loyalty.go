package loyalty

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	sq "github.com/Masterminds/squirrel"
	model "github.com/fidelia/loyalty/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type LoyaltyDB struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

func NewLoyaltyDB(logger *zap.Logger) (db *LoyaltyDB, err error) {
	// config
	purl := os.Getenv("LOYALTY_DB")
	if purl == "" {
		return nil, fmt.Errorf("env LOYALTY_DB is not set")
	}
	port := os.Getenv("LOYALTY_DB_PORT")
	if port == "" {
		return nil, fmt.Errorf("env LOYALTY_DB_PORT is not set")
	}
	user := os.Getenv("LOYALTY_DB_USER")
	if user == "" {
		return nil, fmt.Errorf("env LOYALTY_DB_USER is not set")
	}
	password := os.Getenv("LOYALTY_DB_PASSWORD")
	if password == "" {
		return nil, fmt.Errorf("env LOYALTY_DB_PASSWORD is not set")
	}
	database := os.Getenv("LOYALTY_DB_BASE")
	if database == "" {
		return nil, fmt.Errorf("env LOYALTY_DB_BASE is not set")
	}
	dsn := "postgres://" + user + ":" + password + "@" + purl + ":" + port + "/" + database

	pool, err := pgxpool.New(context.Background(), dsn)
	return &LoyaltyDB{pool, logger}, err
}

// uuid.Nil пишем как NULL
func nullUUID(id uuid.UUID) any {
	if id == uuid.Nil {
		return nil
	}
	return id
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t
}

// Пользователь
func (l *LoyaltyDB) GetUser(ctx context.Context, id uuid.UUID) (user model.User, err error) {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return model.User{}, err
	}
	defer conn.Release()

	var tier pgtype.Text
	var branch pgtype.UUID
	row := conn.QueryRow(ctx, "SELECT uuid, email, name, role, points, tier, branch FROM users WHERE uuid = $1", id)
	err = row.Scan(&user.UUID, &user.Email, &user.Name, &user.Role, &user.Points, &tier, &branch)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, fmt.Errorf("user %s %w", id, model.ErrNotFound)
		}
		return model.User{}, err
	}
	user.Tier = tier.String
	if branch.Status == pgtype.Present {
		user.Branch, _ = uuid.FromBytes(branch.Bytes[:])
	}
	return user, nil
}

// Баланс
func (l *LoyaltyDB) GetBalance(ctx context.Context, user uuid.UUID) (points int64, err error) {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Release()

	row := conn.QueryRow(ctx, "SELECT points FROM users WHERE uuid = $1", user)
	err = row.Scan(&points)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("user %s %w", user, model.ErrNotFound)
		}
		return 0, err
	}
	return points, nil
}

// Создание покупки с замороженными баллами
func (l *LoyaltyDB) PurchaseCreate(ctx context.Context, purchase model.Purchase) error {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	sql, args, err := sq.Insert("purchases").
		Columns("uuid", "userid", "branch", "pdate", "amount", "points", "description", "receipt", "status").
		Values(purchase.UUID, purchase.User, nullUUID(purchase.Branch), purchase.Date, purchase.Amount,
			purchase.Points, purchase.Description, nullString(purchase.Receipt), purchase.Status).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		l.logger.Error("SQL error",
			zap.Error(err),
			zap.String("query", sql),
			zap.Any("args", args),
		)
		return err
	}

	_, err = conn.Exec(ctx, sql, args...)
	if err != nil {
		l.logger.Error("SQL error",
			zap.Error(err),
			zap.String("query", sql),
			zap.Any("args", args),
		)
		return err
	}
	return nil
}

// Покупка
func (l *LoyaltyDB) GetPurchase(ctx context.Context, id uuid.UUID) (purchase model.Purchase, err error) {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return model.Purchase{}, err
	}
	defer conn.Release()

	var branch pgtype.UUID
	var receipt pgtype.Text
	var approved pgtype.Timestamptz
	row := conn.QueryRow(ctx,
		"SELECT uuid, userid, branch, pdate, amount, points, description, receipt, status, approvedat FROM purchases WHERE uuid = $1", id)
	err = row.Scan(&purchase.UUID, &purchase.User, &branch, &purchase.Date, &purchase.Amount,
		&purchase.Points, &purchase.Description, &receipt, &purchase.Status, &approved)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Purchase{}, fmt.Errorf("purchase %s %w", id, model.ErrNotFound)
		}
		return model.Purchase{}, err
	}
	if branch.Status == pgtype.Present {
		purchase.Branch, _ = uuid.FromBytes(branch.Bytes[:])
	}
	purchase.Receipt = receipt.String
	if approved.Status == pgtype.Present {
		purchase.ApprovedAt = approved.Time
	}
	return purchase, nil
}

// Подтверждение покупки: статус, начисление, штампы, купоны и уведомление
// одной транзакцией. Статус меняется только из pending - повторное
// подтверждение не проходит по условию и не дает второго начисления.
func (l *LoyaltyDB) PurchaseApprove(ctx context.Context, approve model.PurchaseApprove) (err error) {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	tx, err := conn.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback(ctx)
		}
	}()

	// оптимистичная проверка статуса
	ct, err := tx.Exec(ctx, "UPDATE purchases SET status = $1, approvedat = $2 WHERE uuid = $3 AND status = $4",
		model.StatusApproved, approve.ApprovedAt, approve.Purchase, model.StatusPending)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		err = fmt.Errorf("purchase %s %w", approve.Purchase, model.ErrInvalidTransition)
		return err
	}

	// блокируем баланс и начисляем замороженные баллы
	var currentb int64
	row := tx.QueryRow(ctx, "SELECT points FROM users WHERE uuid = $1 FOR UPDATE", approve.User)
	err = row.Scan(&currentb)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = fmt.Errorf("user %s %w", approve.User, model.ErrNotFound)
		}
		return err
	}
	currentb += approve.Points

	sql, args, err := sq.Update("users").
		Set("points", currentb).
		Where(sq.Eq{"uuid": approve.User}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}

	// транзакция начисления
	sql, args, err = sq.Insert("tnx").
		Columns("id", "userid", "points", "tnxdate", "typetnx", "purchaseid").
		Values(uuid.New(), approve.User, approve.Points, approve.ApprovedAt, model.ACCRUEL, approve.Purchase).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}

	// карточки штампов
	for _, card := range approve.Cards {
		sql, args, err = sq.Insert("stampcards").
			Columns("uuid", "userid", "cardid", "stamps", "completed", "startdate", "completeddate").
			Values(card.UUID, card.User, card.Card, card.Stamps, card.Completed, card.StartDate, nullTime(card.CompletedDate)).
			Suffix("ON CONFLICT (userid, cardid) DO UPDATE SET stamps = EXCLUDED.stamps, completed = EXCLUDED.completed, completeddate = EXCLUDED.completeddate").
			PlaceholderFormat(sq.Dollar).
			ToSql()
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}
	}

	// купоны, уникальность кода контролирует индекс coupons(code)
	for _, coupon := range approve.Coupons {
		sql, args, err = sq.Insert("coupons").
			Columns("uuid", "userid", "code", "name", "description", "generated", "status").
			Values(coupon.UUID, coupon.User, coupon.Code, coupon.Name, coupon.Description, coupon.Generated, coupon.Status).
			PlaceholderFormat(sq.Dollar).
			ToSql()
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}
	}

	err = l.outboxInsert(ctx, tx, approve.Note)
	if err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// Отклонение покупки, баланс не меняется
func (l *LoyaltyDB) PurchaseReject(ctx context.Context, id uuid.UUID, note model.Notification) (err error) {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	tx, err := conn.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback(ctx)
		}
	}()

	ct, err := tx.Exec(ctx, "UPDATE purchases SET status = $1 WHERE uuid = $2 AND status = $3",
		model.StatusRejected, id, model.StatusPending)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		err = fmt.Errorf("purchase %s %w", id, model.ErrInvalidTransition)
		return err
	}

	err = l.outboxInsert(ctx, tx, note)
	if err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// Карточка штампов пользователя
func (l *LoyaltyDB) GetStampCard(ctx context.Context, user uuid.UUID, card uuid.UUID) (sc model.UserStampCard, err error) {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return model.UserStampCard{}, err
	}
	defer conn.Release()

	var completed pgtype.Timestamptz
	row := conn.QueryRow(ctx,
		"SELECT uuid, userid, cardid, stamps, completed, startdate, completeddate FROM stampcards WHERE userid = $1 AND cardid = $2",
		user, card)
	err = row.Scan(&sc.UUID, &sc.User, &sc.Card, &sc.Stamps, &sc.Completed, &sc.StartDate, &completed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.UserStampCard{}, fmt.Errorf("stamp card %w", model.ErrNotFound)
		}
		return model.UserStampCard{}, err
	}
	if completed.Status == pgtype.Present {
		sc.CompletedDate = completed.Time
	}
	return sc, nil
}

// Купоны пользователя
func (l *LoyaltyDB) GetCoupons(ctx context.Context, user uuid.UUID) (coupons []model.Coupon, err error) {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	sql, args, err := sq.Select("uuid", "userid", "code", "name", "description", "generated", "status").
		From("coupons").
		Where(sq.Eq{"userid": user}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var c model.Coupon
		err = rows.Scan(&c.UUID, &c.User, &c.Code, &c.Name, &c.Description, &c.Generated, &c.Status)
		if err != nil {
			return nil, err
		}
		coupons = append(coupons, c)
	}
	return coupons, nil
}

// Создание заявки на обмен: списание баллов и заявка - одна транзакция
func (l *LoyaltyDB) RedemptionCreate(ctx context.Context, redemption model.Redemption) (err error) {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	tx, err := conn.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback(ctx)
		}
	}()

	// проверить и заблокировать баланс
	var currentb int64
	row := tx.QueryRow(ctx, "SELECT points FROM users WHERE uuid = $1 FOR UPDATE", redemption.User)
	err = row.Scan(&currentb)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			err = fmt.Errorf("user %s %w", redemption.User, model.ErrNotFound)
		}
		return err
	}
	if currentb < redemption.Points {
		err = fmt.Errorf("balance %d, reward %d: %w", currentb, redemption.Points, model.ErrInsufficientPoints)
		return err
	}
	currentb -= redemption.Points

	sql, args, err := sq.Update("users").
		Set("points", currentb).
		Where(sq.Eq{"uuid": redemption.User}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}

	sql, args, err = sq.Insert("redemptions").
		Columns("uuid", "userid", "rewardid", "rewardname", "points", "rdate", "status").
		Values(redemption.UUID, redemption.User, redemption.Reward, redemption.RewardName,
			redemption.Points, redemption.Date, redemption.Status).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}

	// транзакция списания
	sql, args, err = sq.Insert("tnx").
		Columns("id", "userid", "points", "tnxdate", "typetnx", "redeemid").
		Values(uuid.New(), redemption.User, redemption.Points, redemption.Date, model.REDEEM, redemption.UUID).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// Заявка на обмен
func (l *LoyaltyDB) GetRedemption(ctx context.Context, id uuid.UUID) (redemption model.Redemption, err error) {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return model.Redemption{}, err
	}
	defer conn.Release()

	row := conn.QueryRow(ctx,
		"SELECT uuid, userid, rewardid, rewardname, points, rdate, status FROM redemptions WHERE uuid = $1", id)
	err = row.Scan(&redemption.UUID, &redemption.User, &redemption.Reward, &redemption.RewardName,
		&redemption.Points, &redemption.Date, &redemption.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Redemption{}, fmt.Errorf("redemption %s %w", id, model.ErrNotFound)
		}
		return model.Redemption{}, err
	}
	return redemption, nil
}

// Подтверждение заявки, баллы уже списаны при создании
func (l *LoyaltyDB) RedemptionApprove(ctx context.Context, id uuid.UUID, note model.Notification) (err error) {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	tx, err := conn.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback(ctx)
		}
	}()

	ct, err := tx.Exec(ctx, "UPDATE redemptions SET status = $1 WHERE uuid = $2 AND status = $3",
		model.StatusApproved, id, model.StatusPending)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		err = fmt.Errorf("redemption %s %w", id, model.ErrInvalidTransition)
		return err
	}

	err = l.outboxInsert(ctx, tx, note)
	if err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// Отклонение заявки с возвратом замороженной стоимости
func (l *LoyaltyDB) RedemptionReject(ctx context.Context, redemption model.Redemption, note model.Notification) (err error) {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	tx, err := conn.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback(ctx)
		}
	}()

	ct, err := tx.Exec(ctx, "UPDATE redemptions SET status = $1 WHERE uuid = $2 AND status = $3",
		model.StatusRejected, redemption.UUID, model.StatusPending)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		err = fmt.Errorf("redemption %s %w", redemption.UUID, model.ErrInvalidTransition)
		return err
	}

	// возврат баллов
	var currentb int64
	row := tx.QueryRow(ctx, "SELECT points FROM users WHERE uuid = $1 FOR UPDATE", redemption.User)
	err = row.Scan(&currentb)
	if err != nil {
		return err
	}
	currentb += redemption.Points

	sql, args, err := sq.Update("users").
		Set("points", currentb).
		Where(sq.Eq{"uuid": redemption.User}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}

	// транзакция возврата
	sql, args, err = sq.Insert("tnx").
		Columns("id", "userid", "points", "tnxdate", "typetnx", "redeemid").
		Values(uuid.New(), redemption.User, redemption.Points, note.Date, model.REFUND, redemption.UUID).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}

	err = l.outboxInsert(ctx, tx, note)
	if err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// Получить транзакции
func (l *LoyaltyDB) GetTnx(ctx context.Context, user uuid.UUID, from time.Time, to time.Time) (tnxs []model.PointTransaction, err error) {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	sql, args, err := sq.Select("id", "userid", "points", "tnxdate", "typetnx", "purchaseid", "redeemid", "expired").
		From("tnx").
		Where(sq.Eq{"userid": user}).
		Where(sq.GtOrEq{"tnxdate": from}).
		Where(sq.LtOrEq{"tnxdate": to}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := conn.Query(ctx, sql, args...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("transactions %w", model.ErrNotFound)
		}
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var tnx model.PointTransaction
		var purchase pgtype.UUID
		var redeem pgtype.UUID
		err = rows.Scan(&tnx.UUID, &tnx.User, &tnx.Points, &tnx.Date, &tnx.TypeTnx, &purchase, &redeem, &tnx.Expired)
		if err != nil {
			return nil, err
		}
		if purchase.Status == pgtype.Present {
			tnx.Purchase, _ = uuid.FromBytes(purchase.Bytes[:])
		}
		if redeem.Status == pgtype.Present {
			tnx.Redemption, _ = uuid.FromBytes(redeem.Bytes[:])
		}
		tnxs = append(tnxs, tnx)
	}
	return tnxs, nil
}

// Сжигание баллов: начисления старше срока размечаются и вычитаются из баланса
func (l *LoyaltyDB) TnxExpireOnDate(ctx context.Context, date time.Time, days int) error {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		l.logger.Error("Get connection error", zap.Error(err), zap.String("service", "TnxExpireOnDate"))
		return err
	}
	defer conn.Release()

	cutoff := date.AddDate(0, 0, -days)

	// все просроченные начисления, сгруппированные по пользователям
	sql, args, err := sq.Select("userid", "SUM(points) as points").
		From("tnx").
		Where(sq.Eq{"typetnx": model.ACCRUEL}).
		Where(sq.Eq{"expired": false}).
		Where(sq.LtOrEq{"tnxdate": cutoff}).
		GroupBy("userid").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		l.logger.Error("SQL error",
			zap.Error(err),
			zap.String("query", sql),
			zap.Any("args", args),
		)
		return err
	}

	rows, err := conn.Query(ctx, sql, args...)
	if err != nil {
		l.logger.Error("Query get tnx error", zap.Error(err), zap.String("service", "TnxExpireOnDate"))
		return err
	}
	defer rows.Close()

	// TODO DEFAULT
	var semcount int
	semenv := os.Getenv("LOYALTY_EXPIRE_COUNT")
	if semenv == "" {
		semcount = 3
	} else {
		semcount, err = strconv.Atoi(semenv)
		if err != nil {
			semcount = 3
		}
	}
	if semcount == 0 {
		semcount = 1
	}

	// семафор
	semch := make(chan struct{}, semcount)
	wg := &sync.WaitGroup{}

	for rows.Next() {
		var user uuid.UUID
		var points int64
		rows.Scan(&user, &points)

		semch <- struct{}{}
		wg.Add(1)
		go func(user uuid.UUID, points int64) {
			defer func() {
				wg.Done()
				<-semch
			}()
			err := l.expireUser(ctx, user, points, date, cutoff)
			if err != nil {
				l.logger.Error("Expire points error",
					zap.Error(err),
					zap.String("service", "TnxExpireOnDate"),
					zap.String("user", user.String()))
			}
		}(user, points)
	}
	wg.Wait()
	return nil
}

// сжигание баллов одного пользователя
func (l *LoyaltyDB) expireUser(ctx context.Context, user uuid.UUID, points int64, date time.Time, cutoff time.Time) (err error) {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	tx, err := conn.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback(ctx)
		}
	}()

	// блокируем строку с балансом
	var currentb int64
	row := tx.QueryRow(ctx, "SELECT points FROM users WHERE uuid = $1 FOR UPDATE", user)
	err = row.Scan(&currentb)
	if err != nil {
		return err
	}

	// баланс не может уйти в минус
	expired := points
	if expired > currentb {
		expired = currentb
	}
	currentb -= expired

	sql, args, err := sq.Update("users").
		Set("points", currentb).
		Where(sq.Eq{"uuid": user}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}

	if expired > 0 {
		sql, args, err = sq.Insert("tnx").
			Columns("id", "userid", "points", "tnxdate", "typetnx", "expired").
			Values(uuid.New(), user, expired, date, model.EXPIRE, true).
			PlaceholderFormat(sq.Dollar).
			ToSql()
		if err != nil {
			return err
		}
		_, err = tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}
	}

	// ставим флаг на просроченные начисления
	sql, args, err = sq.Update("tnx").
		Set("expired", true).
		Where(sq.Eq{"userid": user}).
		Where(sq.Eq{"typetnx": model.ACCRUEL}).
		Where(sq.Eq{"expired": false}).
		Where(sq.LtOrEq{"tnxdate": cutoff}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// вставка уведомления в outbox внутри транзакции
func (l *LoyaltyDB) outboxInsert(ctx context.Context, tx pgx.Tx, note model.Notification) error {
	sql, args, err := sq.Insert("outbox").
		Columns("uuid", "userid", "message", "ndate", "sentby", "sent").
		Values(note.UUID, nullUUID(note.User), note.Message, note.Date, note.SentBy, false).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, sql, args...)
	return err
}

// Создание уведомления вне workflow (общая рассылка)
func (l *LoyaltyDB) NotificationCreate(ctx context.Context, note model.Notification) (err error) {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	tx, err := conn.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback(ctx)
		}
	}()

	err = l.outboxInsert(ctx, tx, note)
	if err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// Неотправленные уведомления
func (l *LoyaltyDB) OutboxFetch(ctx context.Context, limit int) (notes []model.Notification, err error) {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	sql, args, err := sq.Select("uuid", "userid", "message", "ndate", "sentby").
		From("outbox").
		Where(sq.Eq{"sent": false}).
		OrderBy("ndate").
		Limit(uint64(limit)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var note model.Notification
		var user pgtype.UUID
		err = rows.Scan(&note.UUID, &user, &note.Message, &note.Date, &note.SentBy)
		if err != nil {
			return nil, err
		}
		if user.Status == pgtype.Present {
			note.User, _ = uuid.FromBytes(user.Bytes[:])
		}
		notes = append(notes, note)
	}
	return notes, nil
}

func (l *LoyaltyDB) OutboxMarkSent(ctx context.Context, id uuid.UUID) error {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	_, err = conn.Exec(ctx, "UPDATE outbox SET sent = true WHERE uuid = $1", id)
	return err
}
