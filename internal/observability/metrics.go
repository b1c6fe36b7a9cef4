package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis command failures by command name.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tandem_redis_errors_total",
		Help: "Total number of Redis command errors",
	}, []string{"command"})

	// ChatProviderCalls counts calls to the external chat provider by outcome.
	// Failures here are best-effort by contract and never fail the caller.
	ChatProviderCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tandem_chat_provider_calls_total",
		Help: "Total number of chat provider upsert calls by outcome",
	}, []string{"outcome"})

	// FriendRequestsAccepted counts successful accept transitions.
	FriendRequestsAccepted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tandem_friend_requests_accepted_total",
		Help: "Total number of friend requests accepted",
	})
)
