package http

import (
	"github.com/gin-gonic/gin"
	"github.com/govalues/decimal"
	"github.com/usdtgate/usdtgate/internal/core/domain"
	"github.com/usdtgate/usdtgate/internal/core/port"
	"go.uber.org/zap"
)

type NotifyHandler struct {
	service port.Service
	logger  *zap.Logger
}

func NewNotifyHandler(service port.Service, logger *zap.Logger) (*NotifyHandler, error) {
	return &NotifyHandler{service: service, logger: logger}, nil
}

type NotifyRequest struct {
	FromAddress string  `json:"from_address"`
	Amount      float64 `json:"amount"`
	TxHash      string  `json:"tx_hash"`
}

type NotifyResp struct {
	Status     string `json:"status"`
	TradeNo    string `json:"trade_no,omitempty"`
	CallbackNo string `json:"callback_no,omitempty"`
}

// HandleNotification consumes one observed transfer from the pay server.
// The response is always 200 with a typed outcome: the watcher retries on
// transport failures only, never on business outcomes.
func (nh *NotifyHandler) HandleNotification(ctx *gin.Context) {
	req := NotifyRequest{}
	err := ctx.ShouldBindBodyWithJSON(&req)
	if err != nil {
		handleValidationError(ctx, err)
		return
	}

	amount, err := decimal.NewFromFloat64(req.Amount)
	if err != nil {
		// NaN or infinity in the payload; reconciliation treats it as no match
		nh.logger.Debug("unusable notification amount", zap.Error(err))
		handleSuccess(ctx, NotifyResp{Status: string(domain.MatchNone)})
		return
	}

	result := nh.service.Reconcile(ctx, domain.TransferNotification{
		FromAddress: req.FromAddress,
		Amount:      amount,
		TxHash:      req.TxHash,
	})

	handleSuccess(ctx, NotifyResp{
		Status:     string(result.Status),
		TradeNo:    result.TradeNo,
		CallbackNo: result.CallbackNo,
	})
}
