// Package reconciler drives the polling half of payment-status observation.
// Each scheduled provider transaction gets a bounded retry loop; the webhook
// path runs independently and both funnel into the same PaymentObserver, so
// whichever observes CONFIRMED first wins the store-level guard.
package reconciler

import (
	"context"
	"time"

	"github.com/akozyrev/storepay/internal/core/domain"
	"github.com/akozyrev/storepay/internal/core/port"
	"go.uber.org/zap"
)

// Clock abstracts time so the loop is testable with a fake clock.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time                         { return time.Now() }
func (systemClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// RetryPolicy bounds one order's polling loop: a fixed interval between
// attempts and a maximum total duration, after which polling gives up softly.
type RetryPolicy struct {
	Interval    time.Duration
	MaxDuration time.Duration
}

type observation struct {
	txID   string
	method domain.PaymentMethod
}

type Poller struct {
	logger    *zap.Logger
	providers map[domain.PaymentMethod]port.PaymentProvider
	observer  port.PaymentObserver
	policy    RetryPolicy
	clock     Clock
	queue     chan observation
}

func NewPoller(
	providers map[domain.PaymentMethod]port.PaymentProvider,
	policy RetryPolicy,
	log *zap.Logger,
) *Poller {
	return &Poller{
		logger:    log,
		providers: providers,
		policy:    policy,
		clock:     systemClock{},
		queue:     make(chan observation, 64),
	}
}

// WithClock substitutes the clock; tests drive the loop with a fake one.
func (p *Poller) WithClock(clock Clock) *Poller {
	p.clock = clock
	return p
}

// Schedule puts a provider transaction on the polling queue.
func (p *Poller) Schedule(providerTxID string, method domain.PaymentMethod) {
	p.logger.Debug("> put tx in queue (schedule)", zap.String("tx", providerTxID))
	p.queue <- observation{txID: providerTxID, method: method}
	p.logger.Debug("< put tx in queue (schedule)", zap.String("tx", providerTxID))
}

// Start binds the observer and launches the worker pool. Orders are
// independent, so observations run fully concurrently across workers.
// Call Start before the first Schedule.
func (p *Poller) Start(ctx context.Context, observer port.PaymentObserver, workers int) {
	p.observer = observer
	for i := 0; i < workers; i++ {
		go func(queue chan observation) {
			for {
				select {
				case obs := <-queue:
					p.logger.Debug("Start polling payment status",
						zap.String("tx", obs.txID))
					p.pollOrder(ctx, obs)
					p.logger.Debug("Finished polling payment status",
						zap.String("tx", obs.txID))
				case <-ctx.Done():
					p.logger.Debug("Finished worker")
					return
				}
			}
		}(p.queue)
	}
}

// pollOrder is the per-order state machine. A provider call failure never
// advances state: sleep and retry. Only the observer's success ends the loop
// before the deadline.
func (p *Poller) pollOrder(ctx context.Context, obs observation) {
	provider, ok := p.providers[obs.method]
	if !ok {
		p.logger.Error("No provider for payment method",
			zap.String("method", string(obs.method)))
		return
	}

	deadline := p.clock.Now().Add(p.policy.MaxDuration)

	for {
		result, err := provider.GetStatus(ctx, obs.txID)
		if err != nil {
			p.logger.Debug("Status request failed, will retry",
				zap.String("tx", obs.txID), zap.Error(err))
		} else {
			switch result.Status {
			case domain.ProviderStatusConfirmed:
				err := p.observer.ConfirmPayment(ctx, obs.txID)
				if err == nil {
					return
				}
				// ownership unconfirmed, observe again later
				p.logger.Error("Confirm failed, will retry",
					zap.String("tx", obs.txID), zap.Error(err))
			case domain.ProviderStatusCanceled, domain.ProviderStatusChargeback:
				err := p.observer.CancelPayment(ctx, obs.txID)
				if err == nil {
					return
				}
				p.logger.Error("Cancel failed, will retry",
					zap.String("tx", obs.txID), zap.Error(err))
			}
		}

		if p.clock.Now().After(deadline) {
			// soft timeout: the push callback may still confirm later
			if err := p.observer.TimeoutPayment(ctx, obs.txID); err != nil {
				p.logger.Error("Timeout handling failed",
					zap.String("tx", obs.txID), zap.Error(err))
			}
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-p.clock.After(p.policy.Interval):
		}
	}
}
