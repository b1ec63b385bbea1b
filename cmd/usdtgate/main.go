package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/usdtgate/usdtgate/internal/adapter/client/payserver"
	"github.com/usdtgate/usdtgate/internal/adapter/config"
	"github.com/usdtgate/usdtgate/internal/adapter/handler/http"
	"github.com/usdtgate/usdtgate/internal/adapter/logger"
	"github.com/usdtgate/usdtgate/internal/adapter/qrcode"
	"github.com/usdtgate/usdtgate/internal/adapter/storage"
	"github.com/usdtgate/usdtgate/internal/adapter/storage/repository"
	"github.com/usdtgate/usdtgate/internal/core/service"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()

	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log := logger.NewLogger(conf.App)
	if log == nil {
		fmt.Printf("error creating log")
		return
	}
	defer func() {
		err := log.Sync()
		if err != nil {
			fmt.Printf("log error: %s", err)
		}
	}()

	ctx := context.Background()

	db, err := storage.NewDBStorage(ctx, conf.Database)
	if err != nil {
		log.Error("database error", zap.Error(err))
		return
	}
	err = db.RunMigrations()
	if err != nil {
		log.Error("database migration error", zap.Error(err))
		return
	}

	ledger, err := repository.NewRepository(db)
	if err != nil {
		log.Error("ledger repo creating error", zap.Error(err))
		return
	}

	provider, err := payserver.NewClient(conf.PayServer, log.Named("PayServer"))
	if err != nil {
		log.Error("pay server client creating error", zap.Error(err))
		return
	}

	svc, err := service.NewService(ledger, provider, qrcode.NewEncoder(), service.Settings{
		URIScheme:     conf.Payment.URIScheme(),
		Currency:      "USDT",
		ConfirmBlocks: conf.Payment.ConfirmBlocks,
	}, log.Named("Service"))
	if err != nil {
		log.Error("payment service creating error", zap.Error(err))
		return
	}

	paymentHandler, err := http.NewPaymentHandler(svc, conf.Payment, log.Named("Payment handler"))
	if err != nil {
		log.Error("payment handler creating error", zap.Error(err))
		return
	}
	notifyHandler, err := http.NewNotifyHandler(svc, log.Named("Notify handler"))
	if err != nil {
		log.Error("notify handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewRouter(conf.PayServer, paymentHandler, notifyHandler)
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return
	}

	err = r.Serve(conf.HTTP.HostString)
	if err != nil {
		log.Error("router serve error", zap.Error(err))
		return
	}
}
