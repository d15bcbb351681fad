package handler_test

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/weinert-art/commission-service/internal/entities"
	"github.com/weinert-art/commission-service/internal/handler"
	mocks "github.com/weinert-art/commission-service/internal/handler/mocks"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const orderID = "6f1edc9b-6f54-4b3a-9dfb-5a9f1a2b3c4d"

func noGuard(next http.Handler) http.Handler { return next }

func newRouter(t *testing.T) (*mocks.MockOrderService, chi.Router) {
	t.Helper()

	svc := mocks.NewMockOrderService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewHTTPHandler(logger, svc, noGuard)

	r := chi.NewRouter()
	h.Init(r)
	return svc, r
}

func doRequest(t *testing.T, r chi.Router, method, path, body string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr.Result()
}

func TestHTTPHandler_CreateOrder(t *testing.T) {
	t.Run("creates order with status new", func(t *testing.T) {
		svc, r := newRouter(t)

		stored := entities.Order{
			ID:          orderID,
			OrderNumber: "AB12CD34",
			Status:      entities.StatusNew,
			Name:        "Ann",
		}

		svc.EXPECT().
			CreateOrder(mock.Anything, entities.OrderInput{
				Name:            "Ann",
				CharactersCount: 1,
				References:      "r",
				Idea:            "i",
				Deadline:        "1 week",
				DesiredPrice:    "5000",
			}).
			Return(stored, nil).Once()

		res := doRequest(t, r, http.MethodPost, "/orders",
			`{"name":"Ann","charactersCount":1,"references":"r","idea":"i","deadline":"1 week","desiredPrice":"5000"}`)
		defer res.Body.Close()

		require.Equal(t, http.StatusCreated, res.StatusCode)

		var resp map[string]any
		require.NoError(t, json.NewDecoder(res.Body).Decode(&resp))
		assert.Equal(t, "новый", resp["status"])
		assert.Equal(t, "AB12CD34", resp["orderNumber"])
	})

	t.Run("status in request body is ignored", func(t *testing.T) {
		svc, r := newRouter(t)

		svc.EXPECT().
			CreateOrder(mock.Anything, mock.MatchedBy(func(in entities.OrderInput) bool {
				return in.Name == "Ann"
			})).
			Return(entities.Order{Status: entities.StatusNew}, nil).Once()

		res := doRequest(t, r, http.MethodPost, "/orders",
			`{"name":"Ann","charactersCount":1,"references":"r","idea":"i","deadline":"1 week","desiredPrice":"5000","status":"выполнен"}`)
		defer res.Body.Close()

		require.Equal(t, http.StatusCreated, res.StatusCode)
	})

	t.Run("validation error", func(t *testing.T) {
		_, r := newRouter(t)

		res := doRequest(t, r, http.MethodPost, "/orders", `{"name":"Ann"}`)
		defer res.Body.Close()

		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, r := newRouter(t)

		res := doRequest(t, r, http.MethodPost, "/orders", `{name`)
		defer res.Body.Close()

		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})
}

func TestHTTPHandler_ChangeStatus(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "cancellation with comment",
			body: `{"id":"` + orderID + `","status":"отменен","adminComment":"out of capacity"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					ChangeStatus(mock.Anything, orderID, entities.StatusCancelled, "out of capacity").
					Return(entities.Order{
						ID:           orderID,
						Status:       entities.StatusCancelled,
						AdminComment: "out of capacity",
					}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"adminComment":"out of capacity"`,
		},
		{
			name: "cancellation without comment",
			body: `{"id":"` + orderID + `","status":"отменен"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					ChangeStatus(mock.Anything, orderID, entities.StatusCancelled, "").
					Return(entities.Order{}, entities.ErrCommentRequired).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   "comment",
		},
		{
			name:         "missing status",
			body:         `{"id":"` + orderID + `"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name: "unknown status",
			body: `{"id":"` + orderID + `","status":"доставлен"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					ChangeStatus(mock.Anything, orderID, entities.Status("доставлен"), "").
					Return(entities.Order{}, entities.ErrInvalidStatus).Once()
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "unknown order",
			body: `{"id":"` + orderID + `","status":"в работе"}`,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					ChangeStatus(mock.Anything, orderID, entities.StatusInProgress, "").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   "not found",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc, r := newRouter(t)
			tc.mockBehavior(svc)

			res := doRequest(t, r, http.MethodPatch, "/orders", tc.body)
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			if tc.wantBody != "" {
				assert.Contains(t, string(body), tc.wantBody)
			}
		})
	}
}

func TestHTTPHandler_DeleteOrder(t *testing.T) {
	t.Run("returns order number", func(t *testing.T) {
		svc, r := newRouter(t)

		svc.EXPECT().DeleteOrder(mock.Anything, orderID).Return("AB12CD34", nil).Once()

		res := doRequest(t, r, http.MethodDelete, "/orders", `{"id":"`+orderID+`"}`)
		defer res.Body.Close()

		require.Equal(t, http.StatusOK, res.StatusCode)

		var resp map[string]any
		require.NoError(t, json.NewDecoder(res.Body).Decode(&resp))
		assert.Equal(t, "AB12CD34", resp["orderNumber"])
		assert.NotEmpty(t, resp["message"])
	})

	t.Run("not found", func(t *testing.T) {
		svc, r := newRouter(t)

		svc.EXPECT().
			DeleteOrder(mock.Anything, orderID).
			Return("", entities.ErrOrderNotFound).Once()

		res := doRequest(t, r, http.MethodDelete, "/orders", `{"id":"`+orderID+`"}`)
		defer res.Body.Close()

		assert.Equal(t, http.StatusNotFound, res.StatusCode)
	})
}

func TestHTTPHandler_GetOrderByNumber(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc, r := newRouter(t)

		svc.EXPECT().
			GetOrderByNumber(mock.Anything, "AB12CD34").
			Return(entities.Order{OrderNumber: "AB12CD34", Status: entities.StatusInProgress}, nil).Once()

		res := doRequest(t, r, http.MethodGet, "/orders/AB12CD34", "")
		defer res.Body.Close()

		require.Equal(t, http.StatusOK, res.StatusCode)

		var resp map[string]any
		require.NoError(t, json.NewDecoder(res.Body).Decode(&resp))
		assert.Equal(t, "в работе", resp["status"])
	})

	t.Run("not found", func(t *testing.T) {
		svc, r := newRouter(t)

		svc.EXPECT().
			GetOrderByNumber(mock.Anything, "XX00XX00").
			Return(entities.Order{}, entities.ErrOrderNotFound).Once()

		res := doRequest(t, r, http.MethodGet, "/orders/XX00XX00", "")
		defer res.Body.Close()

		assert.Equal(t, http.StatusNotFound, res.StatusCode)
	})

	t.Run("internal error", func(t *testing.T) {
		svc, r := newRouter(t)

		svc.EXPECT().
			GetOrderByNumber(mock.Anything, "AB12CD34").
			Return(entities.Order{}, errors.New("db error")).Once()

		res := doRequest(t, r, http.MethodGet, "/orders/AB12CD34", "")
		defer res.Body.Close()

		assert.Equal(t, http.StatusInternalServerError, res.StatusCode)
	})
}

func TestHTTPHandler_ListOrders(t *testing.T) {
	svc, r := newRouter(t)

	svc.EXPECT().
		ListOrders(mock.Anything).
		Return([]entities.Order{
			{OrderNumber: "AB12CD34"},
			{OrderNumber: "EF56GH78"},
		}, nil).Once()

	res := doRequest(t, r, http.MethodGet, "/orders", "")
	defer res.Body.Close()

	require.Equal(t, http.StatusOK, res.StatusCode)

	var resp []map[string]any
	require.NoError(t, json.NewDecoder(res.Body).Decode(&resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "AB12CD34", resp[0]["orderNumber"])
}
