package tests

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "menuverse/analytics-svc/internal/api/http"
	"menuverse/analytics-svc/internal/domain"
	"menuverse/analytics-svc/internal/mocks"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func serveAnalytics(analytics *mocks.AnalyticsInterface, path string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	httpapi.NewHandler(analytics, zap.NewNop()).RegisterRoutes(r)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestGetOverviewHandler(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(*mocks.AnalyticsInterface)
		wantCode  int
	}{
		{
			name: "success",
			setupMock: func(m *mocks.AnalyticsInterface) {
				m.On("Overview", mock.Anything, "spice-palace").Return(&domain.Overview{
					RestaurantID: "spice-palace",
					TotalOrders:  3,
					TopItems:     []domain.ItemScore{{MenuItemID: "butter-chicken", Quantity: 4}},
				}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "redis failure",
			setupMock: func(m *mocks.AnalyticsInterface) {
				m.On("Overview", mock.Anything, "spice-palace").Return(nil, errors.New("connection refused"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			analytics := mocks.NewAnalyticsInterface(t)
			testCase.setupMock(analytics)

			w := serveAnalytics(analytics, "/api/restaurants/spice-palace/analytics")
			assert.Equal(t, testCase.wantCode, w.Code)
		})
	}
}

func TestGetTopItemsHandler(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		setupMock func(*mocks.AnalyticsInterface)
		wantCode  int
	}{
		{
			name:  "defaults to all time",
			query: "",
			setupMock: func(m *mocks.AnalyticsInterface) {
				m.On("TopItems", mock.Anything, "spice-palace", domain.PeriodAll, 10).Return([]domain.ItemScore{}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:  "today with limit",
			query: "?period=today&limit=3",
			setupMock: func(m *mocks.AnalyticsInterface) {
				m.On("TopItems", mock.Anything, "spice-palace", domain.PeriodToday, 3).Return([]domain.ItemScore{{MenuItemID: "naan-garlic", Quantity: 5}}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:  "invalid period",
			query: "?period=week",
			setupMock: func(m *mocks.AnalyticsInterface) {
				m.On("TopItems", mock.Anything, "spice-palace", "week", 10).Return(nil, domain.ErrInvalidPeriod)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name:      "invalid limit",
			query:     "?limit=abc",
			setupMock: func(m *mocks.AnalyticsInterface) {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			analytics := mocks.NewAnalyticsInterface(t)
			testCase.setupMock(analytics)

			w := serveAnalytics(analytics, "/api/restaurants/spice-palace/analytics/top-items"+testCase.query)
			assert.Equal(t, testCase.wantCode, w.Code)
		})
	}
}

func TestGlobalLeaderboardHandlers(t *testing.T) {
	analytics := mocks.NewAnalyticsInterface(t)
	analytics.On("TopToday", mock.Anything).Return(nil, errors.New("redis down"))
	analytics.On("TopAllTime", mock.Anything).Return([]domain.ItemScore{{MenuItemID: "margherita", RestaurantID: "pizza-planet", Quantity: 10}}, nil)

	w := serveAnalytics(analytics, "/api/analytics/top-today")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = serveAnalytics(analytics, "/api/analytics/top-alltime")
	require.Equal(t, http.StatusOK, w.Code)
	var items []domain.ItemScore
	require.NoError(t, json.NewDecoder(w.Body).Decode(&items))
	assert.Equal(t, "margherita", items[0].MenuItemID)
}

func TestGetNotificationsHandler(t *testing.T) {
	analytics := mocks.NewAnalyticsInterface(t)
	analytics.On("Notifications", mock.Anything, "spice-palace", 5).Return([]domain.Notification{{ReservationID: "res_1"}}, nil)

	w := serveAnalytics(analytics, "/api/restaurants/spice-palace/analytics/notifications?limit=5")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "res_1")
}
