package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"menuverse/reservation-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) EnsureSchema() error {
	_, err := r.DB.Exec(`
		CREATE TABLE IF NOT EXISTS reservations (
			id TEXT PRIMARY KEY,
			restaurant_id TEXT NOT NULL,
			restaurant_name TEXT,
			customer_name TEXT NOT NULL,
			email TEXT,
			phone TEXT NOT NULL,
			date TEXT NOT NULL,
			time TEXT NOT NULL,
			guests INTEGER NOT NULL CHECK (guests BETWEEN 1 AND 8),
			table_preference TEXT NOT NULL,
			include_pre_order BOOLEAN NOT NULL DEFAULT FALSE,
			pre_order JSONB NOT NULL DEFAULT '[]',
			pre_order_total INTEGER NOT NULL DEFAULT 0,
			reservation_fee INTEGER NOT NULL,
			total_amount INTEGER NOT NULL,
			status TEXT NOT NULL,
			step TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL,
			confirmed_at TIMESTAMP
		)`)
	if err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

const reservationColumns = `id, restaurant_id, COALESCE(restaurant_name, ''), customer_name, COALESCE(email, ''), phone,
	date, time, guests, table_preference, include_pre_order, pre_order, pre_order_total,
	reservation_fee, total_amount, status, step, created_at, confirmed_at`

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row scanner) (*domain.Reservation, error) {
	var (
		res         domain.Reservation
		preOrder    []byte
		confirmedAt sql.NullTime
	)
	if err := row.Scan(&res.ID, &res.RestaurantID, &res.RestaurantName, &res.CustomerName, &res.Email, &res.Phone,
		&res.Date, &res.Time, &res.Guests, &res.TablePreference, &res.IncludePreOrder, &preOrder, &res.PreOrderTotal,
		&res.ReservationFee, &res.TotalAmount, &res.Status, &res.Step, &res.CreatedAt, &confirmedAt); err != nil {
		return nil, err
	}
	res.PreOrder = []domain.PreOrderItem{}
	if len(preOrder) > 0 {
		if err := json.Unmarshal(preOrder, &res.PreOrder); err != nil {
			return nil, fmt.Errorf("decode pre-order: %w", err)
		}
	}
	if confirmedAt.Valid {
		res.ConfirmedAt = &confirmedAt.Time
	}
	return &res, nil
}

func (r *PostgresRepository) CreateReservation(res *domain.Reservation) error {
	preOrder, err := json.Marshal(res.PreOrder)
	if err != nil {
		return err
	}
	_, err = r.DB.Exec(`
		INSERT INTO reservations (id, restaurant_id, restaurant_name, customer_name, email, phone, date, time, guests,
			table_preference, include_pre_order, pre_order, pre_order_total, reservation_fee, total_amount, status, step, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`, res.ID, res.RestaurantID, res.RestaurantName, res.CustomerName, res.Email, res.Phone, res.Date, res.Time, res.Guests,
		res.TablePreference, res.IncludePreOrder, preOrder, res.PreOrderTotal, res.ReservationFee, res.TotalAmount,
		res.Status, res.Step, res.CreatedAt)
	return err
}

func (r *PostgresRepository) GetReservation(id string) (*domain.Reservation, error) {
	res, err := scanReservation(r.DB.QueryRow("SELECT "+reservationColumns+" FROM reservations WHERE id = $1", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrReservationNotFound
	}
	return res, err
}

func (r *PostgresRepository) ListReservations(restaurantID string) ([]domain.Reservation, error) {
	rows, err := r.DB.Query("SELECT "+reservationColumns+`
		FROM reservations
		WHERE restaurant_id = $1
		ORDER BY created_at DESC`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []domain.Reservation{}
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			continue
		}
		list = append(list, *res)
	}
	return list, rows.Err()
}

func (r *PostgresRepository) UpdateReservation(res *domain.Reservation) error {
	result, err := r.DB.Exec(`
		UPDATE reservations
		SET status = $1, step = $2, confirmed_at = $3
		WHERE id = $4
	`, res.Status, res.Step, res.ConfirmedAt, res.ID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrReservationNotFound
	}
	return nil
}
