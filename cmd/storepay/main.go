package main

import (
	"context"
	"fmt"

	"github.com/akozyrev/storepay/internal/adapter/auth"
	"github.com/akozyrev/storepay/internal/adapter/catalog"
	"github.com/akozyrev/storepay/internal/adapter/client/cryptopay"
	"github.com/akozyrev/storepay/internal/adapter/client/platega"
	"github.com/akozyrev/storepay/internal/adapter/config"
	"github.com/akozyrev/storepay/internal/adapter/handler/http"
	"github.com/akozyrev/storepay/internal/adapter/logger"
	"github.com/akozyrev/storepay/internal/adapter/notifier"
	"github.com/akozyrev/storepay/internal/adapter/selection"
	"github.com/akozyrev/storepay/internal/adapter/storage"
	"github.com/akozyrev/storepay/internal/adapter/storage/jsonstore"
	"github.com/akozyrev/storepay/internal/adapter/storage/repository"
	"github.com/akozyrev/storepay/internal/adapter/tickets"
	"github.com/akozyrev/storepay/internal/core/domain"
	"github.com/akozyrev/storepay/internal/core/port"
	"github.com/akozyrev/storepay/internal/core/reconciler"
	"github.com/akozyrev/storepay/internal/core/service"
	"go.uber.org/zap"
)

func main() {
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

	var orders port.OrderRepository
	var users port.UserRepository
	var promos port.PromoRepository
	var pending port.PendingOrders

	if conf.Database.DSN != "" {
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

		orderRepo, err := repository.NewOrderRepository(db)
		if err != nil {
			log.Error("order repo creating error", zap.Error(err))
			return
		}
		userRepo, err := repository.NewUserRepository(db)
		if err != nil {
			log.Error("user repo creating error", zap.Error(err))
			return
		}
		promoRepo, err := repository.NewPromoRepository(db)
		if err != nil {
			log.Error("promo repo creating error", zap.Error(err))
			return
		}
		pendingRepo, err := repository.NewPendingOrderRepository(db)
		if err != nil {
			log.Error("pending repo creating error", zap.Error(err))
			return
		}
		orders, users, promos, pending = orderRepo, userRepo, promoRepo, pendingRepo
	} else {
		log.Warn("no database configured, using JSON file storage",
			zap.String("dir", conf.App.DataDir))
		store, err := jsonstore.NewStore(conf.App.DataDir)
		if err != nil {
			log.Error("file storage error", zap.Error(err))
			return
		}
		orders = jsonstore.NewOrderStore(store)
		users = jsonstore.NewUserStore(store)
		promos = jsonstore.NewPromoStore(store)
		pending = jsonstore.NewPendingStore(store)
	}

	tokenService, err := auth.New(conf.Staff.TokenTTL)
	if err != nil {
		log.Error("token service creating error", zap.Error(err))
		return
	}

	productCatalog, err := catalog.NewFileCatalog(conf.Catalog)
	if err != nil {
		log.Error("catalog loading error", zap.Error(err))
		return
	}

	plategaClient, err := platega.NewClient(conf.Platega, log.Named("Platega"))
	if err != nil {
		log.Error("platega client creating error", zap.Error(err))
		return
	}
	cryptoPayClient, err := cryptopay.NewClient(conf.CryptoPay, log.Named("CryptoPay"))
	if err != nil {
		log.Error("cryptopay client creating error", zap.Error(err))
		return
	}
	providers := map[domain.PaymentMethod]port.PaymentProvider{
		domain.PaymentMethodBankTransfer: plategaClient,
		domain.PaymentMethodCrypto:       cryptoPayClient,
	}

	tg, err := notifier.NewTelegram(conf.Telegram, log.Named("Telegram"))
	if err != nil {
		log.Error("notifier creating error", zap.Error(err))
		return
	}

	var ticketPublisher port.TicketPublisher
	if conf.Tickets.AMQPURI != "" {
		amqpPublisher, err := tickets.NewAMQPPublisher(conf.Tickets, log.Named("Tickets"))
		if err != nil {
			log.Error("ticket publisher creating error", zap.Error(err))
			return
		}
		defer amqpPublisher.Close()
		ticketPublisher = amqpPublisher
	}

	poller := reconciler.NewPoller(providers, reconciler.RetryPolicy{
		Interval:    conf.Reconciler.PollInterval,
		MaxDuration: conf.Reconciler.MaxPollDuration,
	}, log.Named("Poller"))

	svc, err := service.NewService(service.Deps{
		Orders:     orders,
		Users:      users,
		Promos:     promos,
		Pending:    pending,
		Selections: selection.NewMemoryStore(),
		Catalog:    productCatalog,
		Providers:  providers,
		Notifier:   tg,
		Tickets:    ticketPublisher,
		Scheduler:  poller,
	}, log.Named("Service"))
	if err != nil {
		log.Error("service creating error", zap.Error(err))
		return
	}

	poller.Start(ctx, svc, conf.Reconciler.Workers)
	if err := reconciler.RecallPending(ctx, orders, poller); err != nil {
		log.Error("recalling pending orders", zap.Error(err))
	}

	orderHandler, err := http.NewOrderHandler(svc, log.Named("Order handler"))
	if err != nil {
		log.Error("order handler creating error", zap.Error(err))
		return
	}
	userHandler, err := http.NewUserHandler(svc, log.Named("User handler"))
	if err != nil {
		log.Error("user handler creating error", zap.Error(err))
		return
	}
	staffHandler, err := http.NewStaffHandler(svc, tokenService, conf.Staff.Key, log.Named("Staff handler"))
	if err != nil {
		log.Error("staff handler creating error", zap.Error(err))
		return
	}
	webhookHandler, err := http.NewWebhookHandler(providers, pending, svc, log.Named("Webhook handler"))
	if err != nil {
		log.Error("webhook handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewRouter(conf.HTTP, tokenService, orderHandler, userHandler, staffHandler, webhookHandler)
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
