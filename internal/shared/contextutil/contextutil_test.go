package contextutil_test

import (
	"context"
	"testing"

	"go-yourtask/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestExtractMetadata(t *testing.T) {
	ctx := context.Background()
	ctx = contextutil.WithRequestID(ctx, "req-1")
	ctx = contextutil.WithSessionID(ctx, "sid-1")
	ctx = contextutil.WithUsername(ctx, "budi2")

	md := contextutil.ExtractMetadata(ctx)
	assert.Equal(t, "req-1", md.RequestID)
	assert.Equal(t, "sid-1", md.SessionID)
	assert.Equal(t, "budi2", md.Username)
}

func TestGetLogger_Fallback(t *testing.T) {
	assert.NotNil(t, contextutil.GetLogger(context.Background(), nil))

	l := zap.NewNop()
	assert.Same(t, l, contextutil.GetLogger(context.Background(), l))

	scoped := zap.NewNop().Named("scoped")
	ctx := contextutil.WithLogger(context.Background(), scoped)
	assert.Same(t, scoped, contextutil.GetLogger(ctx, l))
}
