package domain

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"moviehub-bot/internal/config"
	"moviehub-bot/internal/metrics"
)

// subscribe runs fetch in subs and delivers its outcome to sub unless the
// subscription was cancelled in the meantime.
func subscribe[T any](subs *Subscriptions, useCase string, sub Subscriber[T], fetch func(ctx context.Context) (T, error)) {
	id := uuid.NewString()
	logger := config.GetLogger().With().
		Str("use_case", useCase).
		Str("subscription_id", id).
		Logger()

	subs.Go(func(ctx context.Context) {
		inFlight := metrics.SubscriptionsInFlight.WithLabelValues(useCase)
		inFlight.Inc()
		defer inFlight.Dec()

		logger.Debug().Msg("Subscription started")
		value, err := fetch(ctx)

		if ctx.Err() != nil {
			metrics.SubscriptionsTotal.WithLabelValues(useCase, "canceled").Inc()
			logger.Debug().Msg("Subscription canceled, dropping result")
			return
		}
		if err != nil {
			metrics.SubscriptionsTotal.WithLabelValues(useCase, "error").Inc()
			if !errors.Is(err, context.Canceled) {
				logger.Warn().Err(err).Msg("Subscription failed")
			}
			sub.OnError(err)
			return
		}

		metrics.SubscriptionsTotal.WithLabelValues(useCase, "success").Inc()
		sub.OnNext(value)
	})
}
