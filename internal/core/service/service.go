package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/govalues/decimal"
	"github.com/usdtgate/usdtgate/internal/core/domain"
	"github.com/usdtgate/usdtgate/internal/core/port"
	"go.uber.org/zap"
)

// Settings carries the payment-method values the service needs for building
// payer-facing instructions. Confirm blocks are advisory only and never feed
// the reconciliation algorithm.
type Settings struct {
	URIScheme     string
	Currency      string
	ConfirmBlocks int
}

type Service struct {
	ledger   port.Ledger
	provider port.AddressProvider
	qr       port.QREncoder
	settings Settings
	logger   *zap.Logger
}

func NewService(ledger port.Ledger, provider port.AddressProvider,
	qr port.QREncoder, settings Settings, logger *zap.Logger) (*Service, error) {
	return &Service{
		ledger:   ledger,
		provider: provider,
		qr:       qr,
		settings: settings,
		logger:   logger,
	}, nil
}

// CreatePayment computes the payable amount for a trade, resolves the current
// receiving address and records a pending order. An unavailable address aborts
// the flow; a failed order save does not, because the address and amount are
// already on their way to the payer.
func (s *Service) CreatePayment(ctx context.Context, tradeNo string, basePrice decimal.Decimal) (*domain.PaymentInstructions, error) {
	if tradeNo == "" {
		return nil, domain.ErrTradeNoEmpty
	}
	if !basePrice.IsPos() {
		return nil, domain.ErrBasePriceInvalid
	}

	amount, err := domain.PayableAmount(tradeNo, basePrice)
	if err != nil {
		s.logger.Error("compute payable amount", zap.Error(err))
		return nil, domain.ErrInternal
	}

	address, err := s.provider.ResolveAddress(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrPayServerURLMissing) || errors.Is(err, domain.ErrAddressUnavailable) {
			return nil, err
		}
		s.logger.Error("resolve address", zap.Error(err))
		return nil, domain.ErrAddressUnavailable
	}

	order := &domain.Order{
		TradeNo:   tradeNo,
		Amount:    amount,
		Status:    domain.OrderStatusPending,
		CreatedAt: time.Now(),
	}

	_, err = s.ledger.CreateOrder(ctx, order)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrConflictingData):
		// A retry for a known trade number: the stored amount wins, the first
		// one was already shown to the payer.
		existing, readErr := s.ledger.ReadOrder(ctx, tradeNo)
		if readErr != nil {
			s.logger.Error("read existing order", zap.String("trade_no", tradeNo), zap.Error(readErr))
		} else {
			amount = existing.Amount
		}
	default:
		// Best effort: the payer must still get the instructions.
		s.logger.Warn("order record not saved", zap.String("trade_no", tradeNo), zap.Error(err))
	}

	uri := fmt.Sprintf("%s:%s?amount=%s", s.settings.URIScheme, address, domain.FormatAmount(amount))

	qrImage, err := s.qr.DataURI(uri)
	if err != nil {
		s.logger.Warn("qr code rendering failed", zap.String("trade_no", tradeNo), zap.Error(err))
		qrImage = ""
	}

	return &domain.PaymentInstructions{
		TradeNo:    tradeNo,
		Address:    address,
		Amount:     amount,
		PaymentURI: uri,
		QRCode:     qrImage,
		Instruction: fmt.Sprintf("Send exactly %s %s to %s in a single transfer",
			domain.FormatAmount(amount), s.settings.Currency, address),
		ConfirmBlocks: s.settings.ConfirmBlocks,
	}, nil
}

func (s *Service) GetOrder(ctx context.Context, tradeNo string) (*domain.Order, error) {
	order, err := s.ledger.ReadOrder(ctx, tradeNo)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, err
		}
		s.logger.Error("read order", zap.String("trade_no", tradeNo), zap.Error(err))
		return nil, domain.ErrInternal
	}
	return order, nil
}

// Reconcile matches one transfer notification against the pending orders and
// transitions at most one of them to paid. Every failure path resolves to a
// no-match result: notification delivery cannot act on errors.
func (s *Service) Reconcile(ctx context.Context, notification domain.TransferNotification) domain.MatchResult {
	noMatch := domain.MatchResult{Status: domain.MatchNone}

	if err := notification.Validate(); err != nil {
		s.logger.Debug("notification rejected", zap.Error(err))
		return noMatch
	}

	order, err := s.ledger.FindPendingByAmount(ctx, notification.Amount, domain.MatchTolerance, domain.MatchWindow)
	if err != nil {
		if !errors.Is(err, domain.ErrDataNotFound) {
			s.logger.Error("pending order lookup", zap.String("tx_hash", notification.TxHash), zap.Error(err))
		}
		return noMatch
	}

	paidAt := time.Now()
	transitioned, err := s.ledger.MarkPaid(ctx, order.TradeNo, notification.TxHash, paidAt)
	if err != nil {
		s.logger.Error("mark paid", zap.String("trade_no", order.TradeNo), zap.Error(err))
		return noMatch
	}
	if !transitioned {
		s.logger.Info("duplicate notification for settled order",
			zap.String("trade_no", order.TradeNo), zap.String("tx_hash", notification.TxHash))
		return domain.MatchResult{
			Status:  domain.MatchAlreadyProcessed,
			TradeNo: order.TradeNo,
		}
	}

	s.logger.Info("order paid",
		zap.String("trade_no", order.TradeNo), zap.String("tx_hash", notification.TxHash))

	return domain.MatchResult{
		Status:     domain.MatchConfirmed,
		TradeNo:    order.TradeNo,
		CallbackNo: notification.TxHash,
	}
}
