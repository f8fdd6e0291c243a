package tests

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"menuverse/menu-svc/internal/domain"
	"menuverse/menu-svc/internal/mocks"
	"menuverse/menu-svc/internal/service"
	"menuverse/menu-svc/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testRestaurant() *domain.Restaurant {
	return &domain.Restaurant{
		ID:         "test-kitchen",
		Name:       "Test Kitchen",
		Cuisine:    "Fusion",
		ThemeColor: "#FF6B35",
		Tables:     4,
		Menu: []domain.MenuItem{
			{ID: "burger", Name: "Burger", Price: 299},
			{ID: "shake", Name: "Shake", Price: 149},
			{ID: "truffle", Name: "Truffle Fries", Price: 450, IsPremium: true},
		},
	}
}

func TestTaxes(t *testing.T) {
	tests := []struct {
		subtotal int
		want     int
	}{
		{0, 0},
		{9, 0},
		{10, 1},
		{30, 2},
		{747, 37},
		{1000, 50},
	}
	for _, testCase := range tests {
		assert.Equal(t, testCase.want, service.Taxes(testCase.subtotal), "subtotal %d", testCase.subtotal)
	}
}

func TestSummarize(t *testing.T) {
	empty := service.Summarize(&domain.Cart{ID: "c1"})
	assert.Equal(t, 0, empty.DeliveryFee)
	assert.Equal(t, 0, empty.Total)
	assert.NotNil(t, empty.Items)

	rest := testRestaurant()
	summary := service.Summarize(&domain.Cart{
		ID: "c2",
		Items: []domain.CartItem{
			{MenuItem: rest.Menu[0], Quantity: 2},
			{MenuItem: rest.Menu[1], Quantity: 1},
		},
	})
	assert.Equal(t, 3, summary.ItemsCount)
	assert.Equal(t, 747, summary.Subtotal)
	assert.Equal(t, service.DeliveryFee, summary.DeliveryFee)
	assert.Equal(t, 37, summary.Taxes)
	assert.Equal(t, 824, summary.Total)
}

func TestCatalogMenu(t *testing.T) {
	tests := []struct {
		name      string
		table     string
		wantErr   error
		wantTable int
	}{
		{name: "no table", table: ""},
		{name: "valid table", table: "3", wantTable: 3},
		{name: "last table", table: "4", wantTable: 4},
		{name: "zero", table: "0", wantErr: domain.ErrInvalidTable},
		{name: "beyond tables", table: "5", wantErr: domain.ErrInvalidTable},
		{name: "not a number", table: "abc", wantErr: domain.ErrInvalidTable},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewRestaurantRepository(t)
			repo.On("GetRestaurant", "test-kitchen").Return(testRestaurant(), nil).Once()

			view, err := service.NewCatalogService(repo).Menu("test-kitchen", testCase.table)
			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.wantTable, view.TableNumber)
			if testCase.wantTable > 0 {
				assert.Equal(t, fmt.Sprintf("Table %d • Test Kitchen", testCase.wantTable), view.Banner)
				assert.NotNil(t, view.ScannedAt)
			} else {
				assert.Empty(t, view.Banner)
			}
		})
	}
}

func TestCatalogMenuUnknownRestaurant(t *testing.T) {
	repo := mocks.NewRestaurantRepository(t)
	repo.On("GetRestaurant", "missing").Return(nil, domain.ErrRestaurantNotFound).Once()

	_, err := service.NewCatalogService(repo).Menu("missing", "1")
	assert.ErrorIs(t, err, domain.ErrRestaurantNotFound)
}

func TestCatalogCreate(t *testing.T) {
	tests := []struct {
		name      string
		rest      domain.Restaurant
		setupMock func(*mocks.RestaurantRepository)
		wantErr   bool
	}{
		{
			name: "defaults applied",
			rest: domain.Restaurant{Name: "  Curry House "},
			setupMock: func(m *mocks.RestaurantRepository) {
				m.On("GetRestaurant", "curry-house").Return(nil, domain.ErrRestaurantNotFound).Once()
				m.On("CreateRestaurant", mock.MatchedBy(func(r *domain.Restaurant) bool {
					return r.ID == "curry-house" && r.Name == "Curry House" && r.Tables == 10 && r.ThemeColor == "#FF6B35"
				})).Return(nil).Once()
			},
		},
		{
			name: "taken id gets numeric suffix",
			rest: domain.Restaurant{Name: "Test Kitchen"},
			setupMock: func(m *mocks.RestaurantRepository) {
				m.On("GetRestaurant", "test-kitchen").Return(testRestaurant(), nil).Once()
				m.On("GetRestaurant", "test-kitchen-2").Return(testRestaurant(), nil).Once()
				m.On("GetRestaurant", "test-kitchen-3").Return(nil, domain.ErrRestaurantNotFound).Once()
				m.On("CreateRestaurant", mock.MatchedBy(func(r *domain.Restaurant) bool {
					return r.ID == "test-kitchen-3"
				})).Return(nil).Once()
			},
		},
		{
			name: "name without latin letters",
			rest: domain.Restaurant{Name: "मसाला घर"},
			setupMock: func(m *mocks.RestaurantRepository) {
				m.On("GetRestaurant", mock.MatchedBy(func(id string) bool {
					return strings.HasPrefix(id, "restaurant-") && len(id) > len("restaurant-")
				})).Return(nil, domain.ErrRestaurantNotFound).Once()
				m.On("CreateRestaurant", mock.MatchedBy(func(r *domain.Restaurant) bool {
					return strings.HasPrefix(r.ID, "restaurant-")
				})).Return(nil).Once()
			},
		},
		{
			name: "id lookup error",
			rest: domain.Restaurant{Name: "Cafe"},
			setupMock: func(m *mocks.RestaurantRepository) {
				m.On("GetRestaurant", "cafe").Return(nil, errors.New("db down")).Once()
			},
			wantErr: true,
		},
		{
			name:      "missing name",
			rest:      domain.Restaurant{Cuisine: "Thai"},
			setupMock: func(m *mocks.RestaurantRepository) {},
			wantErr:   true,
		},
		{
			name:      "menu item without price name",
			rest:      domain.Restaurant{Name: "Cafe", Menu: []domain.MenuItem{{Price: 10}}},
			setupMock: func(m *mocks.RestaurantRepository) {},
			wantErr:   true,
		},
		{
			name: "repository error",
			rest: domain.Restaurant{Name: "Cafe"},
			setupMock: func(m *mocks.RestaurantRepository) {
				m.On("GetRestaurant", "cafe").Return(nil, domain.ErrRestaurantNotFound).Once()
				m.On("CreateRestaurant", mock.AnythingOfType("*domain.Restaurant")).Return(errors.New("db error")).Once()
			},
			wantErr: true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewRestaurantRepository(t)
			testCase.setupMock(repo)

			rest := testCase.rest
			err := service.NewCatalogService(repo).Create(&rest)
			if testCase.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCatalogUpdateSettings(t *testing.T) {
	repo := mocks.NewRestaurantRepository(t)
	repo.On("GetRestaurant", "test-kitchen").Return(testRestaurant(), nil).Once()
	repo.On("UpdateRestaurant", mock.MatchedBy(func(r *domain.Restaurant) bool {
		return r.Name == "Renamed" && r.Tables == 8 && r.Cuisine == "Fusion"
	})).Return(nil).Once()

	rest, err := service.NewCatalogService(repo).UpdateSettings("test-kitchen", domain.RestaurantSettings{Name: "Renamed", Tables: 8})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", rest.Name)

	repo2 := mocks.NewRestaurantRepository(t)
	repo2.On("GetRestaurant", "test-kitchen").Return(testRestaurant(), nil).Once()
	_, err = service.NewCatalogService(repo2).UpdateSettings("test-kitchen", domain.RestaurantSettings{Tables: -1})
	var validation *domain.ValidationError
	assert.ErrorAs(t, err, &validation)
}

func TestCatalogMenuItems(t *testing.T) {
	repo := mocks.NewRestaurantRepository(t)
	repo.On("AddMenuItem", "test-kitchen", mock.MatchedBy(func(item *domain.MenuItem) bool {
		return item.ID == "garlic-naan" && item.Price == 89
	})).Return(nil).Once()
	repo.On("DeleteMenuItem", "test-kitchen", "burger").Return(int64(1), nil).Once()
	repo.On("DeleteMenuItem", "test-kitchen", "ghost").Return(int64(0), nil).Once()

	catalog := service.NewCatalogService(repo)
	assert.NoError(t, catalog.AddMenuItem("test-kitchen", &domain.MenuItem{Name: "Garlic Naan", Price: 89}))
	assert.Error(t, catalog.AddMenuItem("test-kitchen", &domain.MenuItem{Name: "Free Lunch", Price: -1}))
	assert.Error(t, catalog.UpdateMenuItem("test-kitchen", &domain.MenuItem{ID: "burger"}))
	assert.NoError(t, catalog.DeleteMenuItem("test-kitchen", "burger"))
	assert.ErrorIs(t, catalog.DeleteMenuItem("test-kitchen", "ghost"), domain.ErrMenuItemNotFound)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "spice-palace", service.Slugify("Spice Palace"))
	assert.Equal(t, "mac-cheese", service.Slugify("Mac & Cheese!"))
	assert.Equal(t, "", service.Slugify("  "))
	assert.Equal(t, "", service.Slugify("पनीर टिक्का"))
	assert.Equal(t, "chai-2", service.Slugify("चाय Chai 2"))
}

func TestCatalogAddMenuItemNonLatinName(t *testing.T) {
	var ids []string
	repo := mocks.NewRestaurantRepository(t)
	repo.On("AddMenuItem", "test-kitchen", mock.AnythingOfType("*domain.MenuItem")).
		Run(func(args mock.Arguments) {
			ids = append(ids, args.Get(1).(*domain.MenuItem).ID)
		}).
		Return(nil).Twice()

	catalog := service.NewCatalogService(repo)
	require.NoError(t, catalog.AddMenuItem("test-kitchen", &domain.MenuItem{Name: "पनीर टिक्का", Price: 250}))
	require.NoError(t, catalog.AddMenuItem("test-kitchen", &domain.MenuItem{Name: "मसाला चाय", Price: 40}))

	require.Len(t, ids, 2)
	for _, id := range ids {
		assert.True(t, strings.HasPrefix(id, "item-"), id)
	}
	assert.NotEqual(t, ids[0], ids[1])
}

func TestMemoryCatalogAddsNonLatinItems(t *testing.T) {
	catalog := service.NewCatalogService(storage.NewMemoryCatalog([]domain.Restaurant{*testRestaurant()}))
	require.NoError(t, catalog.AddMenuItem("test-kitchen", &domain.MenuItem{Name: "पनीर टिक्का", Price: 250}))
	require.NoError(t, catalog.AddMenuItem("test-kitchen", &domain.MenuItem{Name: "मसाला चाय", Price: 40}))

	rest, err := catalog.Get("test-kitchen")
	require.NoError(t, err)
	assert.Len(t, rest.Menu, 5)
}

func TestPremiumPreview(t *testing.T) {
	tests := []struct {
		name    string
		itemID  string
		wantErr error
	}{
		{name: "premium item", itemID: "truffle"},
		{name: "regular item", itemID: "burger", wantErr: domain.ErrNotPremium},
		{name: "unknown item", itemID: "ghost", wantErr: domain.ErrMenuItemNotFound},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewRestaurantRepository(t)
			repo.On("GetRestaurant", "test-kitchen").Return(testRestaurant(), nil).Once()

			preview, err := service.NewPremiumService(repo).Preview("test-kitchen", testCase.itemID)
			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			require.NoError(t, err)
			assert.False(t, preview.Available)
			assert.Len(t, preview.Features, 4)
			assert.Contains(t, preview.Message, "coming soon")
		})
	}
}

func newMemoryCarts(t *testing.T) (*service.CartService, *domain.Cart) {
	t.Helper()
	catalog := storage.NewMemoryCatalog([]domain.Restaurant{*testRestaurant()})
	carts := service.NewCartService(catalog, storage.NewMemoryCartStore(), zap.NewNop())
	cart, err := carts.Open(context.Background(), "test-kitchen", 2)
	require.NoError(t, err)
	return carts, cart
}

func TestCartOpen(t *testing.T) {
	catalog := storage.NewMemoryCatalog([]domain.Restaurant{*testRestaurant()})
	carts := service.NewCartService(catalog, storage.NewMemoryCartStore(), zap.NewNop())
	ctx := context.Background()

	_, err := carts.Open(ctx, "missing", 0)
	assert.ErrorIs(t, err, domain.ErrRestaurantNotFound)

	_, err = carts.Open(ctx, "test-kitchen", 9)
	assert.ErrorIs(t, err, domain.ErrInvalidTable)

	cart, err := carts.Open(ctx, "test-kitchen", 0)
	require.NoError(t, err)
	assert.NotEmpty(t, cart.ID)
	assert.Empty(t, cart.Items)
}

func TestCartAddAndRemove(t *testing.T) {
	carts, cart := newMemoryCarts(t)
	ctx := context.Background()

	_, err := carts.Add(ctx, cart.ID, "burger")
	require.NoError(t, err)
	_, err = carts.Add(ctx, cart.ID, "shake")
	require.NoError(t, err)
	summary, err := carts.Add(ctx, cart.ID, "burger")
	require.NoError(t, err)

	require.Len(t, summary.Items, 2)
	assert.Equal(t, "burger", summary.Items[0].ID)
	assert.Equal(t, 2, summary.Items[0].Quantity)
	assert.Equal(t, "shake", summary.Items[1].ID)
	assert.Equal(t, 747, summary.Subtotal)
	assert.Equal(t, 824, summary.Total)

	summary, err = carts.RemoveOne(ctx, cart.ID, "burger")
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Items[0].Quantity)

	summary, err = carts.RemoveOne(ctx, cart.ID, "burger")
	require.NoError(t, err)
	require.Len(t, summary.Items, 1)
	assert.Equal(t, "shake", summary.Items[0].ID)

	summary, err = carts.RemoveOne(ctx, cart.ID, "burger")
	require.NoError(t, err)
	assert.Len(t, summary.Items, 1)
}

func TestCartRejectsPremium(t *testing.T) {
	carts, cart := newMemoryCarts(t)
	ctx := context.Background()

	_, err := carts.Add(ctx, cart.ID, "burger")
	require.NoError(t, err)

	_, err = carts.Add(ctx, cart.ID, "truffle")
	assert.ErrorIs(t, err, domain.ErrPremiumItem)
	_, err = carts.SetQuantity(ctx, cart.ID, "truffle", 2)
	assert.ErrorIs(t, err, domain.ErrPremiumItem)

	summary, err := carts.Summary(ctx, cart.ID)
	require.NoError(t, err)
	require.Len(t, summary.Items, 1)
	assert.Equal(t, 299, summary.Subtotal)
}

func TestCartSetQuantity(t *testing.T) {
	carts, cart := newMemoryCarts(t)
	ctx := context.Background()

	summary, err := carts.SetQuantity(ctx, cart.ID, "shake", 3)
	require.NoError(t, err)
	assert.Equal(t, 3, summary.ItemsCount)

	summary, err = carts.SetQuantity(ctx, cart.ID, "shake", 0)
	require.NoError(t, err)
	assert.Empty(t, summary.Items)
	assert.Equal(t, 0, summary.Total)

	_, err = carts.SetQuantity(ctx, cart.ID, "ghost", 1)
	assert.ErrorIs(t, err, domain.ErrMenuItemNotFound)
}

func TestCartUnknownCart(t *testing.T) {
	carts, _ := newMemoryCarts(t)
	ctx := context.Background()

	_, err := carts.Add(ctx, "nope", "burger")
	assert.ErrorIs(t, err, domain.ErrCartNotFound)
	_, err = carts.Summary(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrCartNotFound)
}

func TestOrderCheckout(t *testing.T) {
	carts, cart := newMemoryCarts(t)
	ctx := context.Background()
	_, _ = carts.Add(ctx, cart.ID, "burger")
	_, _ = carts.Add(ctx, cart.ID, "burger")
	_, _ = carts.Add(ctx, cart.ID, "shake")

	repo := mocks.NewOrderRepository(t)
	qr := mocks.NewQRGenerator(t)
	publisher := mocks.NewOrderPublisher(t)

	repo.On("CreateOrder", mock.AnythingOfType("*domain.Order")).Return(nil).Once()
	qr.On("Generate", mock.MatchedBy(func(content string) bool {
		return len(content) > 0
	})).Return([]byte("png"), nil).Once()
	repo.On("SaveQRCode", mock.AnythingOfType("string"), []byte("png")).Return(nil).Once()
	publisher.On("PublishOrder", mock.Anything, mock.MatchedBy(func(event domain.OrderEvent) bool {
		return event.Type == service.EventOrderPlaced && event.RestaurantID == "test-kitchen" &&
			event.TotalAmount == 824 && len(event.Items) == 2
	})).Return(nil).Once()

	orders := service.NewOrderService(repo, carts, publisher, qr, "http://localhost:8080", zap.NewNop())
	order, err := orders.Checkout(ctx, cart.ID, map[string]string{"burger": "no onions"})
	require.NoError(t, err)

	assert.Equal(t, domain.OrderPending, order.Status)
	assert.Equal(t, 2, order.TableNumber)
	assert.Equal(t, 824, order.TotalAmount)
	assert.Equal(t, "no onions", order.Items[0].Notes)
	assert.Equal(t, "Order placed successfully! Total: ₹824", order.Message)
	assert.Equal(t, "/api/orders/"+order.ID+"/qrcode", order.QRCode)

	summary, err := carts.Summary(ctx, cart.ID)
	require.NoError(t, err)
	assert.Empty(t, summary.Items)
}

func TestOrderCheckoutEmptyCart(t *testing.T) {
	carts, cart := newMemoryCarts(t)
	repo := mocks.NewOrderRepository(t)

	orders := service.NewOrderService(repo, carts, nil, nil, "", zap.NewNop())
	_, err := orders.Checkout(context.Background(), cart.ID, nil)
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

func TestOrderCheckoutPublishFailureIsNotFatal(t *testing.T) {
	carts, cart := newMemoryCarts(t)
	ctx := context.Background()
	_, _ = carts.Add(ctx, cart.ID, "shake")

	repo := mocks.NewOrderRepository(t)
	publisher := mocks.NewOrderPublisher(t)
	repo.On("CreateOrder", mock.AnythingOfType("*domain.Order")).Return(nil).Once()
	publisher.On("PublishOrder", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	orders := service.NewOrderService(repo, carts, publisher, nil, "", zap.NewNop())
	order, err := orders.Checkout(ctx, cart.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, 149+40+7, order.TotalAmount)
}

func TestOrderCheckoutStorageError(t *testing.T) {
	carts, cart := newMemoryCarts(t)
	ctx := context.Background()
	_, _ = carts.Add(ctx, cart.ID, "shake")

	repo := mocks.NewOrderRepository(t)
	repo.On("CreateOrder", mock.AnythingOfType("*domain.Order")).Return(errors.New("db error")).Once()

	orders := service.NewOrderService(repo, carts, nil, nil, "", zap.NewNop())
	_, err := orders.Checkout(ctx, cart.ID, nil)
	assert.Error(t, err)

	summary, err := carts.Summary(ctx, cart.ID)
	require.NoError(t, err)
	assert.Len(t, summary.Items, 1)
}

func TestOrderAdvanceStatus(t *testing.T) {
	tests := []struct {
		name    string
		current string
		next    string
		wantErr bool
	}{
		{name: "pending to preparing", current: domain.OrderPending, next: domain.OrderPreparing},
		{name: "preparing to served", current: domain.OrderPreparing, next: domain.OrderServed},
		{name: "served to paid", current: domain.OrderServed, next: domain.OrderPaid},
		{name: "skip a step", current: domain.OrderPending, next: domain.OrderServed, wantErr: true},
		{name: "backwards", current: domain.OrderServed, next: domain.OrderPending, wantErr: true},
		{name: "after paid", current: domain.OrderPaid, next: domain.OrderPending, wantErr: true},
		{name: "unknown status", current: domain.OrderPending, next: "cooking", wantErr: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			repo := mocks.NewOrderRepository(t)
			repo.On("GetOrder", "ord_1").Return(&domain.Order{ID: "ord_1", Status: testCase.current}, nil).Once()
			if !testCase.wantErr {
				repo.On("UpdateOrderStatus", "ord_1", testCase.next).Return(nil).Once()
			}

			orders := service.NewOrderService(repo, nil, nil, nil, "", zap.NewNop())
			order, err := orders.AdvanceStatus("ord_1", testCase.next)
			if testCase.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidTransition)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.next, order.Status)
		})
	}
}

func TestOrderQRCodeRegenerated(t *testing.T) {
	repo := mocks.NewOrderRepository(t)
	qr := mocks.NewQRGenerator(t)
	repo.On("GetQRCode", "ord_1").Return(nil, nil).Once()
	qr.On("Generate", "http://menu.test/orders/ord_1").Return([]byte("fresh"), nil).Once()
	repo.On("SaveQRCode", "ord_1", []byte("fresh")).Return(nil).Once()

	orders := service.NewOrderService(repo, nil, nil, qr, "http://menu.test", zap.NewNop())
	code, err := orders.GetQRCode("ord_1")
	require.NoError(t, err)
	assert.Equal(t, []byte("fresh"), code)
}

func TestTableQRCodes(t *testing.T) {
	repo := mocks.NewRestaurantRepository(t)
	repo.On("GetRestaurant", "test-kitchen").Return(testRestaurant(), nil)

	tables := service.NewTableQRService(repo, service.DefaultQRGenerator{}, "http://menu.test")
	codes, err := tables.Codes("test-kitchen")
	require.NoError(t, err)
	require.Len(t, codes, 4)
	assert.Equal(t, "http://menu.test/restaurant/test-kitchen?table=1", codes[0].URL)
	assert.Equal(t, "/api/restaurants/test-kitchen/tables/4/qrcode?format=svg", codes[3].SVGURL)

	png, err := tables.PNG("test-kitchen", 2)
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), png[:4])

	svg, err := tables.SVG("test-kitchen", 3)
	require.NoError(t, err)
	assert.Contains(t, string(svg), "TABLE 3")
	assert.Contains(t, string(svg), "Test Kitchen")

	_, err = tables.PNG("test-kitchen", 5)
	assert.ErrorIs(t, err, domain.ErrInvalidTable)
}
