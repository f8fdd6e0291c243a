package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"menuverse/menu-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func notFound(err, sentinel error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return sentinel
	}
	return err
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS restaurants (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			cuisine TEXT,
			theme_color TEXT,
			tables INTEGER NOT NULL DEFAULT 10,
			logo TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS menu_items (
			restaurant_id TEXT REFERENCES restaurants(id) ON DELETE CASCADE,
			id TEXT NOT NULL,
			position SERIAL,
			name TEXT NOT NULL,
			description TEXT,
			price INTEGER NOT NULL CHECK (price >= 0),
			image TEXT,
			is_premium BOOLEAN NOT NULL DEFAULT FALSE,
			PRIMARY KEY (restaurant_id, id)
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id TEXT PRIMARY KEY,
			restaurant_id TEXT NOT NULL,
			table_number INTEGER,
			subtotal INTEGER NOT NULL,
			delivery_fee INTEGER NOT NULL,
			taxes INTEGER NOT NULL,
			total_amount INTEGER NOT NULL,
			status TEXT NOT NULL,
			qr_code BYTEA,
			created_at TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			order_id TEXT REFERENCES orders(id) ON DELETE CASCADE,
			menu_item_id TEXT NOT NULL,
			name TEXT NOT NULL,
			price INTEGER NOT NULL,
			quantity INTEGER NOT NULL CHECK (quantity >= 1),
			notes TEXT
		)`,
	}
	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// Seed loads the demo catalog into an empty restaurants table.
func (r *PostgresRepository) Seed(restaurants []domain.Restaurant) error {
	var count int
	if err := r.DB.QueryRow("SELECT COUNT(*) FROM restaurants").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for i := range restaurants {
		if err := r.CreateRestaurant(&restaurants[i]); err != nil {
			return fmt.Errorf("seed %s: %w", restaurants[i].ID, err)
		}
	}
	return nil
}

func (r *PostgresRepository) CreateRestaurant(rest *domain.Restaurant) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		"INSERT INTO restaurants (id, name, cuisine, theme_color, tables, logo) VALUES ($1, $2, $3, $4, $5, $6)",
		rest.ID, rest.Name, rest.Cuisine, rest.ThemeColor, rest.Tables, rest.Logo); err != nil {
		return err
	}

	for _, item := range rest.Menu {
		if _, err := tx.Exec(`
			INSERT INTO menu_items (restaurant_id, id, name, description, price, image, is_premium)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, rest.ID, item.ID, item.Name, item.Description, item.Price, item.Image, item.IsPremium); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *PostgresRepository) ListRestaurants() ([]domain.Restaurant, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, COALESCE(cuisine, ''), COALESCE(theme_color, ''), tables, COALESCE(logo, '')
		FROM restaurants
		ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	restaurants := []domain.Restaurant{}
	for rows.Next() {
		var rest domain.Restaurant
		if err := rows.Scan(&rest.ID, &rest.Name, &rest.Cuisine, &rest.ThemeColor, &rest.Tables, &rest.Logo); err != nil {
			continue
		}
		restaurants = append(restaurants, rest)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range restaurants {
		menu, err := r.menu(restaurants[i].ID)
		if err != nil {
			return nil, err
		}
		restaurants[i].Menu = menu
	}
	return restaurants, nil
}

func (r *PostgresRepository) GetRestaurant(id string) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	err := r.DB.QueryRow(`
		SELECT id, name, COALESCE(cuisine, ''), COALESCE(theme_color, ''), tables, COALESCE(logo, '')
		FROM restaurants
		WHERE id = $1`, id).
		Scan(&rest.ID, &rest.Name, &rest.Cuisine, &rest.ThemeColor, &rest.Tables, &rest.Logo)
	if err != nil {
		return nil, notFound(err, domain.ErrRestaurantNotFound)
	}

	menu, err := r.menu(id)
	if err != nil {
		return nil, err
	}
	rest.Menu = menu
	return &rest, nil
}

func (r *PostgresRepository) menu(restaurantID string) ([]domain.MenuItem, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, COALESCE(description, ''), price, COALESCE(image, ''), is_premium
		FROM menu_items
		WHERE restaurant_id = $1
		ORDER BY position`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	menu := []domain.MenuItem{}
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.Price, &item.Image, &item.IsPremium); err != nil {
			continue
		}
		menu = append(menu, item)
	}
	return menu, rows.Err()
}

func (r *PostgresRepository) UpdateRestaurant(rest *domain.Restaurant) error {
	result, err := r.DB.Exec(
		"UPDATE restaurants SET name=$1, cuisine=$2, theme_color=$3, tables=$4, logo=$5 WHERE id=$6",
		rest.Name, rest.Cuisine, rest.ThemeColor, rest.Tables, rest.Logo, rest.ID)
	return affected(result, err, domain.ErrRestaurantNotFound)
}

func (r *PostgresRepository) UpdateRestaurantLogo(id, logo string) error {
	result, err := r.DB.Exec("UPDATE restaurants SET logo=$1 WHERE id=$2", logo, id)
	return affected(result, err, domain.ErrRestaurantNotFound)
}

func (r *PostgresRepository) AddMenuItem(restaurantID string, item *domain.MenuItem) error {
	var exists bool
	if err := r.DB.QueryRow("SELECT EXISTS(SELECT 1 FROM restaurants WHERE id=$1)", restaurantID).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return domain.ErrRestaurantNotFound
	}

	result, err := r.DB.Exec(`
		INSERT INTO menu_items (restaurant_id, id, name, description, price, image, is_premium)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (restaurant_id, id) DO NOTHING`,
		restaurantID, item.ID, item.Name, item.Description, item.Price, item.Image, item.IsPremium)
	return affected(result, err, domain.ErrDuplicateMenuItem)
}

func (r *PostgresRepository) UpdateMenuItem(restaurantID string, item *domain.MenuItem) error {
	result, err := r.DB.Exec(`
		UPDATE menu_items
		SET name=$1, description=$2, price=$3, is_premium=$4, image=COALESCE(NULLIF($5, ''), image)
		WHERE id=$6 AND restaurant_id=$7`,
		item.Name, item.Description, item.Price, item.IsPremium, item.Image, item.ID, restaurantID)
	return affected(result, err, domain.ErrMenuItemNotFound)
}

func (r *PostgresRepository) DeleteMenuItem(restaurantID, itemID string) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM menu_items WHERE id=$1 AND restaurant_id=$2", itemID, restaurantID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) UpdateMenuItemImage(restaurantID, itemID, image string) error {
	result, err := r.DB.Exec("UPDATE menu_items SET image = $1 WHERE id = $2 AND restaurant_id = $3",
		image, itemID, restaurantID)
	return affected(result, err, domain.ErrMenuItemNotFound)
}

func affected(result sql.Result, err error, sentinel error) error {
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sentinel
	}
	return nil
}

func (r *PostgresRepository) CreateOrder(order *domain.Order) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`
		INSERT INTO orders (id, restaurant_id, table_number, subtotal, delivery_fee, taxes, total_amount, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, order.ID, order.RestaurantID, order.TableNumber, order.Subtotal, order.DeliveryFee, order.Taxes,
		order.TotalAmount, order.Status, order.Timestamp); err != nil {
		return err
	}

	for _, item := range order.Items {
		if _, err := tx.Exec(`
			INSERT INTO order_items (order_id, menu_item_id, name, price, quantity, notes)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, order.ID, item.MenuItemID, item.Name, item.Price, item.Quantity, item.Notes); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *PostgresRepository) GetOrder(id string) (*domain.Order, error) {
	var order domain.Order
	if err := r.DB.QueryRow(`
		SELECT id, restaurant_id, COALESCE(table_number, 0), subtotal, delivery_fee, taxes, total_amount, status, created_at
		FROM orders WHERE id = $1
	`, id).Scan(&order.ID, &order.RestaurantID, &order.TableNumber, &order.Subtotal, &order.DeliveryFee,
		&order.Taxes, &order.TotalAmount, &order.Status, &order.Timestamp); err != nil {
		return nil, notFound(err, domain.ErrOrderNotFound)
	}

	items, err := r.orderItems(id)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return &order, nil
}

func (r *PostgresRepository) orderItems(orderID string) ([]domain.OrderItem, error) {
	rows, err := r.DB.Query(`
		SELECT menu_item_id, name, price, quantity, COALESCE(notes, '')
		FROM order_items
		WHERE order_id = $1
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.OrderItem{}
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.MenuItemID, &item.Name, &item.Price, &item.Quantity, &item.Notes); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) ListOrders(restaurantID string) ([]domain.Order, error) {
	rows, err := r.DB.Query(`
		SELECT id, restaurant_id, COALESCE(table_number, 0), subtotal, delivery_fee, taxes, total_amount, status, created_at
		FROM orders
		WHERE $1 = '' OR restaurant_id = $1
		ORDER BY created_at DESC
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(&order.ID, &order.RestaurantID, &order.TableNumber, &order.Subtotal, &order.DeliveryFee,
			&order.Taxes, &order.TotalAmount, &order.Status, &order.Timestamp); err != nil {
			continue
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	for i := range orders {
		items, err := r.orderItems(orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}

func (r *PostgresRepository) UpdateOrderStatus(id, status string) error {
	result, err := r.DB.Exec("UPDATE orders SET status = $1 WHERE id = $2", status, id)
	return affected(result, err, domain.ErrOrderNotFound)
}

func (r *PostgresRepository) SaveQRCode(orderID string, qr []byte) error {
	_, err := r.DB.Exec(`UPDATE orders SET qr_code = $1 WHERE id = $2`, qr, orderID)
	return err
}

func (r *PostgresRepository) GetQRCode(orderID string) ([]byte, error) {
	var qrCode []byte
	if err := r.DB.QueryRow("SELECT qr_code FROM orders WHERE id = $1", orderID).Scan(&qrCode); err != nil {
		return nil, notFound(err, domain.ErrOrderNotFound)
	}
	return qrCode, nil
}
