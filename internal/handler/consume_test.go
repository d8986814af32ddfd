package handler_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/biblioteca-service/internal/handler"
	"github.com/Astemirdum/biblioteca-service/pkg/kafka"
)

// The group runs Setup once per session and starts a fresh session after
// every rebalance, so the handler must survive repeated Setup/Cleanup cycles
// on the same instance.
func TestConsumer_SetupAcrossRebalances(t *testing.T) {
	t.Parallel()
	consumer := handler.NewConsumer(func(ctx context.Context, event kafka.EventActivity) error {
		return nil
	}, zap.NewNop())

	for i := 0; i < 3; i++ {
		require.NotPanics(t, func() {
			require.NoError(t, consumer.Setup(nil))
			require.NoError(t, consumer.Cleanup(nil))
		})
	}
}
