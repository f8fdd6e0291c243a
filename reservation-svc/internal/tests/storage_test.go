package tests

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"menuverse/reservation-svc/internal/domain"
	"menuverse/reservation-svc/internal/mocks"
	"menuverse/reservation-svc/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var reservationRowColumns = []string{
	"id", "restaurant_id", "restaurant_name", "customer_name", "email", "phone", "date", "time", "guests",
	"table_preference", "include_pre_order", "pre_order", "pre_order_total", "reservation_fee", "total_amount",
	"status", "step", "created_at", "confirmed_at",
}

func TestPostgresGetReservation(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM reservations WHERE id").
		WithArgs("res_1").
		WillReturnRows(sqlmock.NewRows(reservationRowColumns).AddRow(
			"res_1", "spice-palace", "Spice Palace", "Asha", "", "98765", "2026-10-20", "7:00 PM", 2,
			"any", true, []byte(`[{"id":"naan-garlic","name":"Garlic Naan","price":89,"quantity":2}]`), 178, 11, 189,
			"pending", "payment", fixedNow, nil))

	res, err := storage.NewPostgresRepository(db).GetReservation("res_1")
	require.NoError(t, err)
	require.Len(t, res.PreOrder, 1)
	assert.Equal(t, 2, res.PreOrder[0].Quantity)
	assert.Equal(t, 189, res.TotalAmount)
	assert.Nil(t, res.ConfirmedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGetReservationNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM reservations WHERE id").WithArgs("res_missing").WillReturnError(sql.ErrNoRows)

	_, err = storage.NewPostgresRepository(db).GetReservation("res_missing")
	assert.ErrorIs(t, err, domain.ErrReservationNotFound)
}

func TestPostgresCreateAndUpdateReservation(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := storage.NewPostgresRepository(db)

	res := &domain.Reservation{
		ID: "res_1", RestaurantID: "spice-palace", CustomerName: "Asha", Phone: "1", Date: "2026-10-20",
		Time: "7:00 PM", Guests: 2, TablePreference: "any", PreOrder: []domain.PreOrderItem{},
		ReservationFee: 10, TotalAmount: 10, Status: domain.StatusPending, Step: domain.StepPayment, CreatedAt: fixedNow,
	}
	mock.ExpectExec("INSERT INTO reservations").WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.CreateReservation(res))

	confirmedAt := fixedNow
	res.Status, res.Step, res.ConfirmedAt = domain.StatusConfirmed, domain.StepSuccess, &confirmedAt
	mock.ExpectExec("UPDATE reservations").
		WithArgs(domain.StatusConfirmed, domain.StepSuccess, fixedNow, "res_1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.UpdateReservation(res))

	mock.ExpectExec("UPDATE reservations").WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.UpdateReservation(&domain.Reservation{ID: "res_missing"}), domain.ErrReservationNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisLock(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	lock := storage.NewRedisLock(client, 30*time.Second)
	ctx := context.Background()

	acquired, err := lock.Acquire(ctx, "res_1")
	require.NoError(t, err)
	assert.True(t, acquired)

	acquired, err = lock.Acquire(ctx, "res_1")
	require.NoError(t, err)
	assert.False(t, acquired)

	require.NoError(t, lock.Release(ctx, "res_1"))
	acquired, err = lock.Acquire(ctx, "res_1")
	require.NoError(t, err)
	assert.True(t, acquired)

	mr.FastForward(time.Minute)
	assert.False(t, mr.Exists("reservation:res_1:payment"))
}

func TestRedisLockReleaseKeepsOtherHolder(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	first := storage.NewRedisLock(client, 30*time.Second)
	second := storage.NewRedisLock(client, 30*time.Second)
	ctx := context.Background()

	acquired, err := first.Acquire(ctx, "res_2")
	require.NoError(t, err)
	require.True(t, acquired)

	mr.FastForward(time.Minute)
	acquired, err = second.Acquire(ctx, "res_2")
	require.NoError(t, err)
	require.True(t, acquired)

	require.NoError(t, first.Release(ctx, "res_2"))
	assert.True(t, mr.Exists("reservation:res_2:payment"))

	acquired, err = first.Acquire(ctx, "res_2")
	require.NoError(t, err)
	assert.False(t, acquired)

	require.NoError(t, second.Release(ctx, "res_2"))
	assert.False(t, mr.Exists("reservation:res_2:payment"))
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestMenuClient(t *testing.T) {
	tests := []struct {
		name     string
		response *http.Response
		err      error
		wantErr  error
		wantName string
	}{
		{name: "found", response: jsonResponse(http.StatusOK, `{"id":"spice-palace","name":"Spice Palace"}`), wantName: "Spice Palace"},
		{name: "not found", response: jsonResponse(http.StatusNotFound, "restaurant not found"), wantErr: domain.ErrRestaurantNotFound},
		{name: "server error", response: jsonResponse(http.StatusInternalServerError, "boom"), wantErr: errors.New("any")},
		{name: "transport error", err: errors.New("connection refused"), wantErr: errors.New("any")},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			client := mocks.NewHTTPClient(t)
			client.On("Do", mock.MatchedBy(func(req *http.Request) bool {
				return req.URL.String() == "http://menu.test/api/restaurants/spice-palace"
			})).Return(testCase.response, testCase.err).Once()

			rest, err := storage.NewMenuClient("http://menu.test", client).Restaurant(context.Background(), "spice-palace")
			switch {
			case testCase.wantErr == nil:
				require.NoError(t, err)
				assert.Equal(t, testCase.wantName, rest.Name)
			case errors.Is(testCase.wantErr, domain.ErrRestaurantNotFound):
				assert.ErrorIs(t, err, domain.ErrRestaurantNotFound)
			default:
				assert.Error(t, err)
			}
		})
	}
}
