package tests

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"menuverse/menu-svc/internal/domain"
	"menuverse/menu-svc/internal/service"
	"menuverse/menu-svc/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLMock(t *testing.T) (*storage.PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return storage.NewPostgresRepository(db), mock
}

func TestPostgresEnsureSchema(t *testing.T) {
	repo, mock := newSQLMock(t)
	for i := 0; i < 4; i++ {
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS").WillReturnResult(sqlmock.NewResult(0, 0))
	}

	require.NoError(t, repo.EnsureSchema())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSeedSkipsPopulatedCatalog(t *testing.T) {
	repo, mock := newSQLMock(t)
	mock.ExpectQuery("SELECT COUNT").WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	require.NoError(t, repo.Seed(domain.SeedRestaurants()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGetRestaurant(t *testing.T) {
	repo, mock := newSQLMock(t)
	mock.ExpectQuery("SELECT id, name").
		WithArgs("spice-palace").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "cuisine", "theme_color", "tables", "logo"}).
			AddRow("spice-palace", "Spice Palace", "Indian", "#D2691E", 15, ""))
	mock.ExpectQuery("FROM menu_items").
		WithArgs("spice-palace").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "price", "image", "is_premium"}).
			AddRow("naan-garlic", "Garlic Naan", "", 89, "", false).
			AddRow("curry-premium", "Royal Butter Chicken", "", 450, "", true))

	rest, err := repo.GetRestaurant("spice-palace")
	require.NoError(t, err)
	assert.Equal(t, 15, rest.Tables)
	require.Len(t, rest.Menu, 2)
	assert.True(t, rest.Menu[1].IsPremium)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGetRestaurantNotFound(t *testing.T) {
	repo, mock := newSQLMock(t)
	mock.ExpectQuery("SELECT id, name").WithArgs("missing").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetRestaurant("missing")
	assert.ErrorIs(t, err, domain.ErrRestaurantNotFound)
}

func TestPostgresAddMenuItemDuplicate(t *testing.T) {
	repo, mock := newSQLMock(t)
	mock.ExpectQuery("SELECT EXISTS").WithArgs("spice-palace").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectExec("INSERT INTO menu_items").WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.AddMenuItem("spice-palace", &domain.MenuItem{ID: "naan-garlic", Name: "Garlic Naan", Price: 89})
	assert.ErrorIs(t, err, domain.ErrDuplicateMenuItem)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCreateOrder(t *testing.T) {
	repo, mock := newSQLMock(t)
	order := &domain.Order{
		ID:           "ord_1",
		RestaurantID: "spice-palace",
		TableNumber:  3,
		Items: []domain.OrderItem{
			{MenuItemID: "naan-garlic", Name: "Garlic Naan", Price: 89, Quantity: 2},
		},
		Subtotal:    178,
		DeliveryFee: 40,
		Taxes:       9,
		TotalAmount: 227,
		Status:      domain.OrderPending,
		Timestamp:   time.Now(),
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO orders").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO order_items").
		WithArgs("ord_1", "naan-garlic", "Garlic Naan", 89, 2, "").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.CreateOrder(order))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUpdateOrderStatusNotFound(t *testing.T) {
	repo, mock := newSQLMock(t)
	mock.ExpectExec("UPDATE orders SET status").
		WithArgs(domain.OrderPreparing, "ord_missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.UpdateOrderStatus("ord_missing", domain.OrderPreparing), domain.ErrOrderNotFound)
}

func TestPostgresListOrders(t *testing.T) {
	repo, mock := newSQLMock(t)
	now := time.Now()
	itemColumns := []string{"menu_item_id", "name", "price", "quantity", "notes"}
	mock.ExpectQuery("FROM orders").
		WithArgs("spice-palace").
		WillReturnRows(sqlmock.NewRows([]string{"id", "restaurant_id", "table_number", "subtotal", "delivery_fee", "taxes", "total_amount", "status", "created_at"}).
			AddRow("ord_2", "spice-palace", 1, 120, 40, 6, 166, "pending", now).
			AddRow("ord_1", "spice-palace", 0, 89, 40, 4, 133, "paid", now.Add(-time.Hour)))
	mock.ExpectQuery("FROM order_items").
		WithArgs("ord_2").
		WillReturnRows(sqlmock.NewRows(itemColumns).
			AddRow("naan-garlic", "Garlic Naan", 89, 1, "extra butter").
			AddRow("lassi", "Mango Lassi", 31, 1, ""))
	mock.ExpectQuery("FROM order_items").
		WithArgs("ord_1").
		WillReturnRows(sqlmock.NewRows(itemColumns))

	orders, err := repo.ListOrders("spice-palace")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "ord_2", orders[0].ID)
	assert.Equal(t, 166, orders[0].TotalAmount)
	require.Len(t, orders[0].Items, 2)
	assert.Equal(t, "extra butter", orders[0].Items[0].Notes)
	assert.NotNil(t, orders[1].Items)
	assert.Empty(t, orders[1].Items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCreateRestaurantDuplicateName(t *testing.T) {
	repo, mock := newSQLMock(t)
	mock.ExpectQuery("SELECT id, name").
		WithArgs("spice-palace").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "cuisine", "theme_color", "tables", "logo"}).
			AddRow("spice-palace", "Spice Palace", "Indian", "#D2691E", 15, ""))
	mock.ExpectQuery("FROM menu_items").
		WithArgs("spice-palace").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "price", "image", "is_premium"}))
	mock.ExpectQuery("SELECT id, name").WithArgs("spice-palace-2").WillReturnError(sql.ErrNoRows)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO restaurants").
		WithArgs("spice-palace-2", "Spice Palace", "", "#FF6B35", 10, "").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	rest := &domain.Restaurant{Name: "Spice Palace"}
	require.NoError(t, service.NewCatalogService(repo).Create(rest))
	assert.Equal(t, "spice-palace-2", rest.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func newRedisCarts(t *testing.T) (*storage.RedisCartStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return storage.NewRedisCartStore(client, time.Hour), mr
}

func TestRedisCartStore(t *testing.T) {
	store, mr := newRedisCarts(t)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, &domain.Cart{ID: "c1", RestaurantID: "spice-palace", TableNumber: 4}))

	meta, err := store.Meta(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "spice-palace", meta.RestaurantID)
	assert.Equal(t, 4, meta.TableNumber)

	qty, err := store.Increment(ctx, "c1", "naan-garlic")
	require.NoError(t, err)
	assert.Equal(t, 1, qty)
	_, err = store.Increment(ctx, "c1", "lassi-mango")
	require.NoError(t, err)
	qty, err = store.Increment(ctx, "c1", "naan-garlic")
	require.NoError(t, err)
	assert.Equal(t, 2, qty)

	lines, err := store.Lines(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, []domain.CartLine{
		{ItemID: "naan-garlic", Quantity: 2},
		{ItemID: "lassi-mango", Quantity: 1},
	}, lines)

	qty, err = store.Decrement(ctx, "c1", "lassi-mango")
	require.NoError(t, err)
	assert.Equal(t, 0, qty)

	qty, err = store.Decrement(ctx, "c1", "lassi-mango")
	require.NoError(t, err)
	assert.Equal(t, 0, qty)

	qty, err = store.SetQuantity(ctx, "c1", "biryani-chicken", 3)
	require.NoError(t, err)
	assert.Equal(t, 3, qty)

	lines, err = store.Lines(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, []domain.CartLine{
		{ItemID: "naan-garlic", Quantity: 2},
		{ItemID: "biryani-chicken", Quantity: 3},
	}, lines)

	assert.True(t, mr.TTL("cart:c1:items") > 0)

	require.NoError(t, store.Clear(ctx, "c1"))
	lines, err = store.Lines(ctx, "c1")
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestRedisCartStoreUnknownCart(t *testing.T) {
	store, _ := newRedisCarts(t)
	ctx := context.Background()

	_, err := store.Meta(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrCartNotFound)
	_, err = store.Increment(ctx, "nope", "x")
	assert.ErrorIs(t, err, domain.ErrCartNotFound)
	_, err = store.SetQuantity(ctx, "nope", "x", 2)
	assert.ErrorIs(t, err, domain.ErrCartNotFound)
	assert.ErrorIs(t, store.Clear(ctx, "nope"), domain.ErrCartNotFound)
}

func TestRedisCartExpires(t *testing.T) {
	store, mr := newRedisCarts(t)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, &domain.Cart{ID: "c2", RestaurantID: "pasta-corner"}))
	mr.FastForward(2 * time.Hour)

	_, err := store.Meta(ctx, "c2")
	assert.ErrorIs(t, err, domain.ErrCartNotFound)
}

func TestRedisCartDecrementRefreshesTTL(t *testing.T) {
	store, mr := newRedisCarts(t)
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, &domain.Cart{ID: "c3", RestaurantID: "spice-palace"}))
	_, err := store.Increment(ctx, "c3", "naan-garlic")
	require.NoError(t, err)
	_, err = store.Increment(ctx, "c3", "naan-garlic")
	require.NoError(t, err)

	mr.FastForward(50 * time.Minute)
	qty, err := store.Decrement(ctx, "c3", "naan-garlic")
	require.NoError(t, err)
	assert.Equal(t, 1, qty)
	assert.Equal(t, time.Hour, mr.TTL("cart:c3:meta"))
	assert.Equal(t, time.Hour, mr.TTL("cart:c3:items"))

	mr.FastForward(30 * time.Minute)
	_, err = store.Meta(ctx, "c3")
	assert.NoError(t, err)
}

func TestMemoryCatalogCreateRenamesDuplicates(t *testing.T) {
	catalog := storage.NewMemoryCatalog(domain.SeedRestaurants())

	rest := &domain.Restaurant{ID: "spice-palace", Name: "Spice Palace", Tables: 5}
	require.NoError(t, catalog.CreateRestaurant(rest))
	assert.Equal(t, "spice-palace-2", rest.ID)

	restaurants, err := catalog.ListRestaurants()
	require.NoError(t, err)
	assert.Len(t, restaurants, 6)
	assert.Equal(t, "fastrestaurant", restaurants[0].ID)
}
