package http_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/usdtgate/usdtgate/internal/adapter/config"
	handler "github.com/usdtgate/usdtgate/internal/adapter/handler/http"
	"github.com/usdtgate/usdtgate/internal/core/domain"
	"github.com/usdtgate/usdtgate/internal/core/port/mock"
	"go.uber.org/zap"
)

const notifySecret = "webhook-secret"

func newRouter(t *testing.T, svc *mock.MockService, payment *config.Payment) *handler.Router {
	t.Helper()

	gin.SetMode(gin.TestMode)
	logger, _ := zap.NewProduction()

	paymentHandler, err := handler.NewPaymentHandler(svc, payment, logger)
	require.NoError(t, err)
	notifyHandler, err := handler.NewNotifyHandler(svc, logger)
	require.NoError(t, err)

	router, err := handler.NewRouter(&config.PayServer{AuthSecret: notifySecret},
		paymentHandler, notifyHandler)
	require.NoError(t, err)

	return router
}

func enabledPayment() *config.Payment {
	return &config.Payment{
		Enabled:       true,
		DisplayName:   "USDT (TRC20)",
		Icon:          "💎",
		Network:       "TRON_MAINNET",
		ConfirmBlocks: 25,
	}
}

func TestNotifyAuth(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	svc := mock.NewMockService(mockCtrl)
	router := newRouter(t, svc, enabledPayment())

	body := `{"from_address":"TSender","amount":10.00123,"tx_hash":"a1b2c3"}`

	tests := []struct {
		name      string
		header    string
		expStatus int
	}{
		{name: "Missing header", header: "", expStatus: http.StatusUnauthorized},
		{name: "Wrong scheme", header: "Basic " + notifySecret, expStatus: http.StatusUnauthorized},
		{name: "Wrong secret", header: "Bearer nope", expStatus: http.StatusUnauthorized},
		{name: "Good secret", header: "Bearer " + notifySecret, expStatus: http.StatusOK},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if test.expStatus == http.StatusOK {
				svc.EXPECT().Reconcile(gomock.Any(), gomock.Any()).
					Return(domain.MatchResult{Status: domain.MatchNone})
			}

			req := httptest.NewRequest(http.MethodPost, "/api/payment/notify", strings.NewReader(body))
			if test.header != "" {
				req.Header.Set("Authorization", test.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, test.expStatus, w.Code)
		})
	}
}

func TestNotifyOutcomes(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	svc := mock.NewMockService(mockCtrl)
	router := newRouter(t, svc, enabledPayment())

	expected := domain.TransferNotification{
		FromAddress: "TSender",
		Amount:      decimal.MustParse("10.00123"),
		TxHash:      "a1b2c3",
	}
	svc.EXPECT().Reconcile(gomock.Any(), expected).Return(domain.MatchResult{
		Status:     domain.MatchConfirmed,
		TradeNo:    "ORDER123",
		CallbackNo: "a1b2c3",
	})

	body := `{"from_address":"TSender","amount":10.00123,"tx_hash":"a1b2c3"}`
	req := httptest.NewRequest(http.MethodPost, "/api/payment/notify", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+notifySecret)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`{"status":"matched","trade_no":"ORDER123","callback_no":"a1b2c3"}`,
		w.Body.String())
}

func TestNotifyMalformedBody(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	svc := mock.NewMockService(mockCtrl)
	router := newRouter(t, svc, enabledPayment())

	req := httptest.NewRequest(http.MethodPost, "/api/payment/notify", strings.NewReader("{not json"))
	req.Header.Set("Authorization", "Bearer "+notifySecret)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreatePayment(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	svc := mock.NewMockService(mockCtrl)
	router := newRouter(t, svc, enabledPayment())

	svc.EXPECT().CreatePayment(gomock.Any(), "ORDER123", decimal.MustParse("10")).
		Return(&domain.PaymentInstructions{
			TradeNo:       "ORDER123",
			Address:       "TQehEHqevPkudydohYrjJxDwdBkAgFUebw",
			Amount:        decimal.MustParse("10.00123"),
			PaymentURI:    "tron:TQehEHqevPkudydohYrjJxDwdBkAgFUebw?amount=10.001230",
			Instruction:   "Send exactly 10.001230 USDT to TQehEHqevPkudydohYrjJxDwdBkAgFUebw in a single transfer",
			ConfirmBlocks: 25,
		}, nil)

	body := `{"trade_no":"ORDER123","amount":10}`
	req := httptest.NewRequest(http.MethodPost, "/api/payment", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"amount":"10.001230"`)
}

func TestCreatePaymentDisabled(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	svc := mock.NewMockService(mockCtrl)
	payment := enabledPayment()
	payment.Enabled = false
	router := newRouter(t, svc, payment)

	req := httptest.NewRequest(http.MethodPost, "/api/payment",
		strings.NewReader(`{"trade_no":"ORDER123","amount":10}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListMethods(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	svc := mock.NewMockService(mockCtrl)

	t.Run("Enabled", func(t *testing.T) {
		router := newRouter(t, svc, enabledPayment())

		req := httptest.NewRequest(http.MethodGet, "/api/payment/methods", http.NoBody)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"code":"USDTTRC20"`)
	})

	t.Run("Disabled", func(t *testing.T) {
		payment := enabledPayment()
		payment.Enabled = false
		router := newRouter(t, svc, payment)

		req := httptest.NewRequest(http.MethodGet, "/api/payment/methods", http.NoBody)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})
}

func TestGetOrderNotFound(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	svc := mock.NewMockService(mockCtrl)
	router := newRouter(t, svc, enabledPayment())

	svc.EXPECT().GetOrder(gomock.Any(), "MISSING").Return(nil, domain.ErrDataNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/payment/MISSING", http.NoBody)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
