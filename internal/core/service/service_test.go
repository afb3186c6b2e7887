package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/akozyrev/storepay/internal/core/domain"
	"github.com/akozyrev/storepay/internal/core/port"
	"github.com/akozyrev/storepay/internal/core/port/mock"
	"github.com/akozyrev/storepay/internal/core/service"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type mocks struct {
	orders     *mock.MockOrderRepository
	users      *mock.MockUserRepository
	promos     *mock.MockPromoRepository
	pending    *mock.MockPendingOrders
	selections *mock.MockSelectionStore
	catalog    *mock.MockCatalog
	provider   *mock.MockPaymentProvider
	notifier   *mock.MockNotifier
	scheduler  *mock.MockReconcileScheduler
}

func newService(t *testing.T, ctrl *gomock.Controller, prepare func(m *mocks)) (*service.Service, *mocks) {
	t.Helper()

	m := &mocks{
		orders:     mock.NewMockOrderRepository(ctrl),
		users:      mock.NewMockUserRepository(ctrl),
		promos:     mock.NewMockPromoRepository(ctrl),
		pending:    mock.NewMockPendingOrders(ctrl),
		selections: mock.NewMockSelectionStore(ctrl),
		catalog:    mock.NewMockCatalog(ctrl),
		provider:   mock.NewMockPaymentProvider(ctrl),
		notifier:   mock.NewMockNotifier(ctrl),
		scheduler:  mock.NewMockReconcileScheduler(ctrl),
	}
	if prepare != nil {
		prepare(m)
	}

	logger, _ := zap.NewProduction()
	s, err := service.NewService(service.Deps{
		Orders:     m.orders,
		Users:      m.users,
		Promos:     m.promos,
		Pending:    m.pending,
		Selections: m.selections,
		Catalog:    m.catalog,
		Providers: map[domain.PaymentMethod]port.PaymentProvider{
			domain.PaymentMethodBankTransfer: m.provider,
			domain.PaymentMethodCrypto:       m.provider,
		},
		Notifier:  m.notifier,
		Scheduler: m.scheduler,
	}, logger)
	assert.NoError(t, err)

	return s, m
}

var course = domain.Product{ID: "course-go", Title: "Go course", PriceRUB: 1499}

var errStoreDown = errors.New("store down")

func TestService_ApplySelection(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	percent20 := domain.Promo{
		Code:   "SALE20",
		Type:   domain.PromoTypePercent,
		Value:  20,
		Active: true,
	}

	tests := []struct {
		name      string
		req       port.SelectionRequest
		mock      func(m *mocks)
		expError  error
		expResult *domain.Selection
	}{
		{
			name: "promo percent",
			req:  port.SelectionRequest{BuyerID: 1, ProductID: course.ID, PromoCode: "SALE20"},
			mock: func(m *mocks) {
				m.catalog.EXPECT().GetProduct(gomock.Any(), course.ID).Return(&course, nil)
				m.promos.EXPECT().GetPromo(gomock.Any(), "SALE20").Return(&percent20, nil)
				m.promos.EXPECT().GetUsage(gomock.Any(), "SALE20").Return(&domain.PromoUsage{}, nil)
				m.selections.EXPECT().Put(int64(1), gomock.Any())
			},
			expResult: &domain.Selection{
				ProductID:  course.ID,
				PromoCode:  "SALE20",
				Discount:   299,
				FinalPrice: 1200,
			},
		},
		{
			name: "bonus clamped to balance",
			req:  port.SelectionRequest{BuyerID: 1, ProductID: course.ID, BonusSpent: 500},
			mock: func(m *mocks) {
				m.catalog.EXPECT().GetProduct(gomock.Any(), course.ID).Return(&course, nil)
				m.users.EXPECT().ReadUser(gomock.Any(), int64(1)).
					Return(&domain.User{ID: 1, BonusBalance: 300}, nil)
				m.selections.EXPECT().Put(int64(1), gomock.Any())
			},
			expResult: &domain.Selection{
				ProductID:  course.ID,
				BonusSpent: 300,
				FinalPrice: 1199,
			},
		},
		{
			name: "bonus capped by price",
			req:  port.SelectionRequest{BuyerID: 1, ProductID: course.ID, BonusSpent: 5000},
			mock: func(m *mocks) {
				m.catalog.EXPECT().GetProduct(gomock.Any(), course.ID).Return(&course, nil)
				m.users.EXPECT().ReadUser(gomock.Any(), int64(1)).
					Return(&domain.User{ID: 1, BonusBalance: 5000}, nil)
				m.selections.EXPECT().Put(int64(1), gomock.Any())
			},
			expResult: &domain.Selection{
				ProductID:  course.ID,
				BonusSpent: 1499,
				FinalPrice: 0,
			},
		},
		{
			// a buyer with no ledger row has no bonus to spend, so the
			// requested amount must not zero out the payable price
			name: "unknown user spends no bonus",
			req:  port.SelectionRequest{BuyerID: 2, ProductID: course.ID, BonusSpent: 1499},
			mock: func(m *mocks) {
				m.catalog.EXPECT().GetProduct(gomock.Any(), course.ID).Return(&course, nil)
				m.users.EXPECT().ReadUser(gomock.Any(), int64(2)).
					Return(nil, domain.ErrDataNotFound)
				m.selections.EXPECT().Put(int64(2), gomock.Any())
			},
			expResult: &domain.Selection{
				ProductID:  course.ID,
				BonusSpent: 0,
				FinalPrice: 1499,
			},
		},
		{
			name: "balance read failure fails the selection",
			req:  port.SelectionRequest{BuyerID: 1, ProductID: course.ID, BonusSpent: 100},
			mock: func(m *mocks) {
				m.catalog.EXPECT().GetProduct(gomock.Any(), course.ID).Return(&course, nil)
				m.users.EXPECT().ReadUser(gomock.Any(), int64(1)).
					Return(nil, errStoreDown)
			},
			expError: errStoreDown,
		},
		{
			name: "unknown product",
			req:  port.SelectionRequest{BuyerID: 1, ProductID: "nope"},
			mock: func(m *mocks) {
				m.catalog.EXPECT().GetProduct(gomock.Any(), "nope").
					Return(nil, domain.ErrDataNotFound)
			},
			expError: domain.ErrProductNotFound,
		},
		{
			name: "promo inactive",
			req:  port.SelectionRequest{BuyerID: 1, ProductID: course.ID, PromoCode: "OLD"},
			mock: func(m *mocks) {
				m.catalog.EXPECT().GetProduct(gomock.Any(), course.ID).Return(&course, nil)
				m.promos.EXPECT().GetPromo(gomock.Any(), "OLD").
					Return(&domain.Promo{Code: "OLD", Active: false}, nil)
			},
			expError: domain.ErrPromoInactive,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, _ := newService(t, mockCtrl, test.mock)

			result, err := s.ApplySelection(context.Background(), test.req)

			if test.expError != nil {
				assert.ErrorIs(t, err, test.expError)
			} else {
				assert.NoError(t, err)
			}
			if test.expResult != nil {
				assert.Equal(t, test.expResult, result)
			}
		})
	}
}

func TestService_CreateCheckout(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	t.Run("bank transfer order id comes from provider", func(t *testing.T) {
		s, m := newService(t, mockCtrl, func(m *mocks) {
			m.catalog.EXPECT().GetProduct(gomock.Any(), course.ID).Return(&course, nil)
			m.users.EXPECT().UpsertUser(gomock.Any(), gomock.Any()).Return(nil)
			m.selections.EXPECT().Get(int64(7)).Return(nil, false)
			m.provider.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
				Return(&domain.PaymentCreated{
					ProviderTxID: "tx-42",
					PayURL:       "https://pay.example/tx-42",
					Amount:       "1499",
					Asset:        "RUB",
				}, nil)
			m.pending.EXPECT().Put(gomock.Any(), "tx-42", gomock.Any()).Return(nil)
			m.orders.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, order *domain.Order) error {
					assert.Equal(t, "tx-42", order.ID)
					assert.Equal(t, "tx-42", order.ProviderTxID)
					assert.Equal(t, domain.OrderStatusPending, order.Status)
					assert.Equal(t, int64(1499), order.FinalPrice)
					assert.NotEmpty(t, order.TicketID)
					return nil
				})
			m.scheduler.EXPECT().Schedule("tx-42", domain.PaymentMethodBankTransfer)
		})
		_ = m

		result, err := s.CreateCheckout(context.Background(), port.CheckoutRequest{
			BuyerID:   7,
			ProductID: course.ID,
			Method:    domain.PaymentMethodBankTransfer,
		})

		assert.NoError(t, err)
		assert.Equal(t, "tx-42", result.OrderID)
		assert.Equal(t, "https://pay.example/tx-42", result.PayURL)
	})

	t.Run("crypto order id is generated locally", func(t *testing.T) {
		s, _ := newService(t, mockCtrl, func(m *mocks) {
			m.catalog.EXPECT().GetProduct(gomock.Any(), course.ID).Return(&course, nil)
			m.users.EXPECT().UpsertUser(gomock.Any(), gomock.Any()).Return(nil)
			m.selections.EXPECT().Get(int64(7)).Return(nil, false)
			m.provider.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, req domain.PaymentRequest) (*domain.PaymentCreated, error) {
					assert.Equal(t, "USDT", req.Asset)
					return &domain.PaymentCreated{
						ProviderTxID: "777",
						PayURL:       "https://t.me/pay/777",
						Amount:       "18.34",
						Asset:        "USDT",
					}, nil
				})
			m.pending.EXPECT().Put(gomock.Any(), "777", gomock.Any()).Return(nil)
			m.orders.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(nil)
			m.scheduler.EXPECT().Schedule("777", domain.PaymentMethodCrypto)
		})

		result, err := s.CreateCheckout(context.Background(), port.CheckoutRequest{
			BuyerID:   7,
			ProductID: course.ID,
			Method:    domain.PaymentMethodCrypto,
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, result.OrderID)
		assert.NotEqual(t, "777", result.OrderID)
	})

	t.Run("selection overlays the price", func(t *testing.T) {
		s, _ := newService(t, mockCtrl, func(m *mocks) {
			m.catalog.EXPECT().GetProduct(gomock.Any(), course.ID).Return(&course, nil)
			m.users.EXPECT().UpsertUser(gomock.Any(), gomock.Any()).Return(nil)
			m.selections.EXPECT().Get(int64(7)).Return(&domain.Selection{
				ProductID:  course.ID,
				PromoCode:  "SALE20",
				Discount:   299,
				BonusSpent: 200,
				FinalPrice: 1000,
			}, true)
			m.provider.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, req domain.PaymentRequest) (*domain.PaymentCreated, error) {
					assert.Equal(t, int64(1000), req.AmountRUB)
					return &domain.PaymentCreated{ProviderTxID: "tx-1", Asset: "RUB"}, nil
				})
			m.pending.EXPECT().Put(gomock.Any(), "tx-1", gomock.Any()).Return(nil)
			m.orders.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, order *domain.Order) error {
					assert.Equal(t, "SALE20", order.PromoCode)
					assert.Equal(t, int64(200), order.BonusSpent)
					assert.Equal(t, int64(1000), order.FinalPrice)
					return nil
				})
			m.scheduler.EXPECT().Schedule("tx-1", domain.PaymentMethodBankTransfer)
		})

		result, err := s.CreateCheckout(context.Background(), port.CheckoutRequest{
			BuyerID:   7,
			ProductID: course.ID,
			Method:    domain.PaymentMethodBankTransfer,
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(1000), result.PriceRUB)
	})

	t.Run("provider failure", func(t *testing.T) {
		s, _ := newService(t, mockCtrl, func(m *mocks) {
			m.catalog.EXPECT().GetProduct(gomock.Any(), course.ID).Return(&course, nil)
			m.users.EXPECT().UpsertUser(gomock.Any(), gomock.Any()).Return(nil)
			m.selections.EXPECT().Get(int64(7)).Return(nil, false)
			m.provider.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
				Return(nil, errors.New("503"))
		})

		result, err := s.CreateCheckout(context.Background(), port.CheckoutRequest{
			BuyerID:   7,
			ProductID: course.ID,
			Method:    domain.PaymentMethodBankTransfer,
		})

		assert.Nil(t, result)
		assert.Equal(t, domain.ErrPaymentCreateFailed, err)
	})

	t.Run("unknown payment method", func(t *testing.T) {
		s, _ := newService(t, mockCtrl, func(m *mocks) {
			m.catalog.EXPECT().GetProduct(gomock.Any(), course.ID).Return(&course, nil)
		})

		_, err := s.CreateCheckout(context.Background(), port.CheckoutRequest{
			BuyerID:   7,
			ProductID: course.ID,
			Method:    "cash",
		})

		assert.Equal(t, domain.ErrUnknownPaymentMethod, err)
	})
}

func pendingMeta() *domain.PendingOrder {
	return &domain.PendingOrder{
		OrderID:    "order-1",
		TicketID:   "A1B2C3D4",
		BuyerID:    7,
		ProductID:  course.ID,
		FinalPrice: 1000,
		Method:     domain.PaymentMethodBankTransfer,
		CreatedAt:  time.Now().UTC(),
	}
}

func expectFinalize(m *mocks, meta *domain.PendingOrder) {
	m.users.EXPECT().AddPurchase(gomock.Any(), meta.BuyerID, meta.FinalPrice).Return(nil)
	m.users.EXPECT().CreditBonus(gomock.Any(), meta.BuyerID, meta.FinalPrice/10).Return(nil)
	m.users.EXPECT().ReadUser(gomock.Any(), meta.BuyerID).
		Return(&domain.User{ID: meta.BuyerID}, nil)
	m.selections.EXPECT().Remove(meta.BuyerID)
	m.catalog.EXPECT().GetProduct(gomock.Any(), meta.ProductID).Return(&course, nil)
	m.notifier.EXPECT().NotifyBuyer(gomock.Any(), meta.BuyerID, gomock.Any()).Return(nil)
	m.notifier.EXPECT().NotifyStaff(gomock.Any(), gomock.Any())
	m.notifier.EXPECT().SendTicket(gomock.Any(), gomock.Any()).Return(nil)
}

func TestService_ConfirmPayment(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	t.Run("winner runs finalization once", func(t *testing.T) {
		meta := pendingMeta()
		s, _ := newService(t, mockCtrl, func(m *mocks) {
			m.pending.EXPECT().Get(gomock.Any(), "tx-1").Return(meta, nil)
			m.orders.EXPECT().TryMarkPaid(gomock.Any(), "order-1").Return(true, nil)
			expectFinalize(m, meta)
			m.pending.EXPECT().Remove(gomock.Any(), "tx-1").Return(nil)
		})

		assert.NoError(t, s.ConfirmPayment(context.Background(), "tx-1"))
	})

	t.Run("loser does nothing", func(t *testing.T) {
		meta := pendingMeta()
		s, _ := newService(t, mockCtrl, func(m *mocks) {
			m.pending.EXPECT().Get(gomock.Any(), "tx-1").Return(meta, nil)
			m.orders.EXPECT().TryMarkPaid(gomock.Any(), "order-1").Return(false, nil)
			m.orders.EXPECT().ReadOrder(gomock.Any(), "order-1").
				Return(&domain.Order{ID: "order-1", Status: domain.OrderStatusPaid}, nil)
			m.pending.EXPECT().Remove(gomock.Any(), "tx-1").Return(nil)
		})

		assert.NoError(t, s.ConfirmPayment(context.Background(), "tx-1"))
	})

	t.Run("confirmation after expiry alerts staff", func(t *testing.T) {
		meta := pendingMeta()
		s, _ := newService(t, mockCtrl, func(m *mocks) {
			m.pending.EXPECT().Get(gomock.Any(), "tx-1").Return(meta, nil)
			m.orders.EXPECT().TryMarkPaid(gomock.Any(), "order-1").Return(false, nil)
			m.orders.EXPECT().ReadOrder(gomock.Any(), "order-1").
				Return(&domain.Order{ID: "order-1", Status: domain.OrderStatusExpired}, nil)
			m.notifier.EXPECT().NotifyStaff(gomock.Any(), gomock.Any())
			m.pending.EXPECT().Remove(gomock.Any(), "tx-1").Return(nil)
		})

		assert.NoError(t, s.ConfirmPayment(context.Background(), "tx-1"))
	})

	t.Run("cache miss falls back to the store", func(t *testing.T) {
		meta := pendingMeta()
		s, _ := newService(t, mockCtrl, func(m *mocks) {
			m.pending.EXPECT().Get(gomock.Any(), "tx-1").Return(nil, domain.ErrDataNotFound)
			m.orders.EXPECT().ReadOrderByTxID(gomock.Any(), "tx-1").
				Return(&domain.Order{
					ID:         meta.OrderID,
					TicketID:   meta.TicketID,
					BuyerID:    meta.BuyerID,
					ProductID:  meta.ProductID,
					FinalPrice: meta.FinalPrice,
					Method:     meta.Method,
					Status:     domain.OrderStatusPending,
				}, nil)
			m.orders.EXPECT().TryMarkPaid(gomock.Any(), "order-1").Return(true, nil)
			expectFinalize(m, meta)
			m.pending.EXPECT().Remove(gomock.Any(), "tx-1").Return(nil)
		})

		assert.NoError(t, s.ConfirmPayment(context.Background(), "tx-1"))
	})

	t.Run("unknown transaction is acked", func(t *testing.T) {
		s, _ := newService(t, mockCtrl, func(m *mocks) {
			m.pending.EXPECT().Get(gomock.Any(), "tx-x").Return(nil, domain.ErrDataNotFound)
			m.orders.EXPECT().ReadOrderByTxID(gomock.Any(), "tx-x").
				Return(nil, domain.ErrDataNotFound)
		})

		assert.NoError(t, s.ConfirmPayment(context.Background(), "tx-x"))
	})

	t.Run("store failure defers side effects", func(t *testing.T) {
		meta := pendingMeta()
		s, _ := newService(t, mockCtrl, func(m *mocks) {
			m.pending.EXPECT().Get(gomock.Any(), "tx-1").Return(meta, nil)
			m.orders.EXPECT().TryMarkPaid(gomock.Any(), "order-1").
				Return(false, errors.New("connection reset"))
		})

		assert.Error(t, s.ConfirmPayment(context.Background(), "tx-1"))
	})
}

func TestService_ConfirmPayment_BonusAndReferral(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	referrer := int64(99)
	meta := pendingMeta()
	meta.BonusSpent = 200
	meta.PromoCode = "SALE20"

	s, _ := newService(t, mockCtrl, func(m *mocks) {
		m.pending.EXPECT().Get(gomock.Any(), "tx-1").Return(meta, nil)
		m.orders.EXPECT().TryMarkPaid(gomock.Any(), "order-1").Return(true, nil)

		m.users.EXPECT().DebitBonus(gomock.Any(), meta.BuyerID, int64(200)).Return(int64(200), nil)
		m.users.EXPECT().AddPurchase(gomock.Any(), meta.BuyerID, meta.FinalPrice).Return(nil)
		m.users.EXPECT().CreditBonus(gomock.Any(), meta.BuyerID, int64(100)).Return(nil)
		m.users.EXPECT().ReadUser(gomock.Any(), meta.BuyerID).
			Return(&domain.User{ID: meta.BuyerID, ReferrerID: &referrer}, nil)
		m.users.EXPECT().CreditBonus(gomock.Any(), referrer, int64(100)).Return(nil)
		m.promos.EXPECT().RecordUsage(gomock.Any(), "SALE20", meta.BuyerID).Return(nil)
		m.selections.EXPECT().Remove(meta.BuyerID)
		m.catalog.EXPECT().GetProduct(gomock.Any(), meta.ProductID).Return(&course, nil)
		m.notifier.EXPECT().NotifyBuyer(gomock.Any(), meta.BuyerID, gomock.Any()).Return(nil)
		m.notifier.EXPECT().NotifyStaff(gomock.Any(), gomock.Any())
		m.notifier.EXPECT().SendTicket(gomock.Any(), gomock.Any()).Return(nil)

		m.pending.EXPECT().Remove(gomock.Any(), "tx-1").Return(nil)
	})

	assert.NoError(t, s.ConfirmPayment(context.Background(), "tx-1"))
}

func TestService_ConfirmPayment_ShortDebit(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	meta := pendingMeta()
	meta.BonusSpent = 200

	s, _ := newService(t, mockCtrl, func(m *mocks) {
		m.pending.EXPECT().Get(gomock.Any(), "tx-1").Return(meta, nil)
		m.orders.EXPECT().TryMarkPaid(gomock.Any(), "order-1").Return(true, nil)

		// only 50 of the 200 were still on the balance
		m.users.EXPECT().DebitBonus(gomock.Any(), meta.BuyerID, int64(200)).Return(int64(50), nil)
		m.notifier.EXPECT().NotifyStaff(gomock.Any(), gomock.Any()).Times(2)
		m.users.EXPECT().AddPurchase(gomock.Any(), meta.BuyerID, meta.FinalPrice).Return(nil)
		m.users.EXPECT().CreditBonus(gomock.Any(), meta.BuyerID, int64(100)).Return(nil)
		m.users.EXPECT().ReadUser(gomock.Any(), meta.BuyerID).
			Return(&domain.User{ID: meta.BuyerID}, nil)
		m.selections.EXPECT().Remove(meta.BuyerID)
		m.catalog.EXPECT().GetProduct(gomock.Any(), meta.ProductID).Return(&course, nil)
		m.notifier.EXPECT().NotifyBuyer(gomock.Any(), meta.BuyerID, gomock.Any()).Return(nil)
		m.notifier.EXPECT().SendTicket(gomock.Any(), gomock.Any()).Return(nil)

		m.pending.EXPECT().Remove(gomock.Any(), "tx-1").Return(nil)
	})

	assert.NoError(t, s.ConfirmPayment(context.Background(), "tx-1"))
}

func TestService_CancelPayment(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	t.Run("first cancel notifies the buyer", func(t *testing.T) {
		meta := pendingMeta()
		s, _ := newService(t, mockCtrl, func(m *mocks) {
			m.pending.EXPECT().Get(gomock.Any(), "tx-1").Return(meta, nil)
			m.orders.EXPECT().TryMarkExpired(gomock.Any(), "order-1").Return(true, nil)
			m.notifier.EXPECT().NotifyBuyer(gomock.Any(), meta.BuyerID, gomock.Any()).Return(nil)
			m.pending.EXPECT().Remove(gomock.Any(), "tx-1").Return(nil)
		})

		assert.NoError(t, s.CancelPayment(context.Background(), "tx-1"))
	})

	t.Run("paid order is never downgraded", func(t *testing.T) {
		meta := pendingMeta()
		s, _ := newService(t, mockCtrl, func(m *mocks) {
			m.pending.EXPECT().Get(gomock.Any(), "tx-1").Return(meta, nil)
			m.orders.EXPECT().TryMarkExpired(gomock.Any(), "order-1").Return(false, nil)
			m.pending.EXPECT().Remove(gomock.Any(), "tx-1").Return(nil)
		})

		assert.NoError(t, s.CancelPayment(context.Background(), "tx-1"))
	})
}

func TestService_TimeoutPayment(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	meta := pendingMeta()
	s, m := newService(t, mockCtrl, func(m *mocks) {
		m.pending.EXPECT().Get(gomock.Any(), "tx-1").Return(meta, nil)
		m.pending.EXPECT().Remove(gomock.Any(), "tx-1").Return(nil)
		m.notifier.EXPECT().NotifyBuyer(gomock.Any(), meta.BuyerID, gomock.Any()).Return(nil)
	})

	// order status is left alone: no TryMark* expectations on m.orders
	assert.NoError(t, s.TimeoutPayment(context.Background(), "tx-1"))
	_ = m
}

func TestService_RequeueOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	t.Run("pending order is rescheduled", func(t *testing.T) {
		s, _ := newService(t, mockCtrl, func(m *mocks) {
			m.orders.EXPECT().ReadOrder(gomock.Any(), "order-1").
				Return(&domain.Order{
					ID:           "order-1",
					ProviderTxID: "tx-1",
					Method:       domain.PaymentMethodBankTransfer,
					Status:       domain.OrderStatusPending,
				}, nil)
			m.scheduler.EXPECT().Schedule("tx-1", domain.PaymentMethodBankTransfer)
		})

		assert.NoError(t, s.RequeueOrder(context.Background(), "order-1"))
	})

	t.Run("paid order is rejected", func(t *testing.T) {
		s, _ := newService(t, mockCtrl, func(m *mocks) {
			m.orders.EXPECT().ReadOrder(gomock.Any(), "order-1").
				Return(&domain.Order{ID: "order-1", Status: domain.OrderStatusPaid}, nil)
		})

		assert.Equal(t, domain.ErrBadRequest, s.RequeueOrder(context.Background(), "order-1"))
	})
}

func TestService_GetUserProfile(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	ref := int64(3)
	s, _ := newService(t, mockCtrl, func(m *mocks) {
		m.users.EXPECT().ReadUser(gomock.Any(), int64(7)).
			Return(&domain.User{ID: 7, Username: "ivan", BonusBalance: 120, ReferrerID: &ref}, nil)
		m.users.EXPECT().CountInvited(gomock.Any(), int64(7)).Return(int64(4), nil)
	})

	user, err := s.GetUserProfile(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, int64(4), user.InvitedCount)
	assert.Equal(t, int64(120), user.BonusBalance)
	assert.Equal(t, &ref, user.ReferrerID)
}
