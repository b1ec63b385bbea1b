package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"github.com/usdtgate/usdtgate/internal/adapter/config"
	"github.com/usdtgate/usdtgate/internal/core/domain"
	"github.com/usdtgate/usdtgate/internal/core/port"
	"go.uber.org/zap"
)

const methodCode = "USDTTRC20"

type PaymentHandler struct {
	service port.Service
	payment *config.Payment
	logger  *zap.Logger
}

func NewPaymentHandler(service port.Service, payment *config.Payment, logger *zap.Logger) (*PaymentHandler, error) {
	return &PaymentHandler{
		service: service,
		payment: payment,
		logger:  logger,
	}, nil
}

type PaymentRequest struct {
	TradeNo string  `json:"trade_no"`
	Amount  float64 `json:"amount"`
}

type PaymentResp struct {
	TradeNo       string `json:"trade_no"`
	Address       string `json:"address"`
	Amount        string `json:"amount"`
	PaymentURI    string `json:"payment_uri"`
	QRCode        string `json:"qrcode,omitempty"`
	Instruction   string `json:"instruction"`
	ConfirmBlocks int    `json:"confirm_blocks"`
}

func (ph *PaymentHandler) CreatePayment(ctx *gin.Context) {
	if !ph.payment.Enabled {
		handleError(ctx, domain.ErrPaymentDisabled)
		return
	}

	req := PaymentRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		handleValidationError(ctx, err)
		return
	}

	basePrice, err := decimal.NewFromFloat64(req.Amount)
	if err != nil {
		handleValidationError(ctx, err)
		return
	}

	instructions, err := ph.service.CreatePayment(ctx, req.TradeNo, basePrice)
	if err != nil {
		handleError(ctx, err)
		return
	}

	handleSuccess(ctx, PaymentResp{
		TradeNo:       instructions.TradeNo,
		Address:       instructions.Address,
		Amount:        domain.FormatAmount(instructions.Amount),
		PaymentURI:    instructions.PaymentURI,
		QRCode:        instructions.QRCode,
		Instruction:   instructions.Instruction,
		ConfirmBlocks: instructions.ConfirmBlocks,
	})
}

type OrderResp struct {
	TradeNo   string     `json:"trade_no"`
	Amount    string     `json:"amount"`
	Status    string     `json:"status"`
	TxHash    *string    `json:"tx_hash,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	PaidAt    *time.Time `json:"paid_at,omitempty"`
}

func (ph *PaymentHandler) GetOrder(ctx *gin.Context) {
	tradeNo := ctx.Param("trade_no")

	order, err := ph.service.GetOrder(ctx, tradeNo)
	if err != nil {
		handleError(ctx, err)
		return
	}

	handleSuccess(ctx, OrderResp{
		TradeNo:   order.TradeNo,
		Amount:    domain.FormatAmount(order.Amount),
		Status:    string(order.Status),
		TxHash:    order.TxHash,
		CreatedAt: order.CreatedAt,
		PaidAt:    order.PaidAt,
	})
}

type MethodResp struct {
	Code          string `json:"code"`
	Name          string `json:"name"`
	Icon          string `json:"icon"`
	Network       string `json:"network"`
	ConfirmBlocks int    `json:"confirm_blocks"`
}

// ListMethods exposes the payment method descriptor for the checkout's
// method registry. A disabled method disappears from the listing instead of
// erroring.
func (ph *PaymentHandler) ListMethods(ctx *gin.Context) {
	methods := make([]MethodResp, 0, 1)
	if ph.payment.Enabled {
		methods = append(methods, MethodResp{
			Code:          methodCode,
			Name:          ph.payment.DisplayName,
			Icon:          ph.payment.Icon,
			Network:       ph.payment.Network,
			ConfirmBlocks: ph.payment.ConfirmBlocks,
		})
	}

	handleSuccess(ctx, methods)
}
