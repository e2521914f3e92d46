package contextutil_test

import (
	"context"
	"testing"

	"go-agency/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestExtractMetadata(t *testing.T) {
	ctx := contextutil.WithRequestID(context.Background(), "req-1")
	ctx = contextutil.WithUserID(ctx, "user-1")
	ctx = contextutil.WithAgencyID(ctx, "agency-1")

	md := contextutil.ExtractMetadata(ctx)
	assert.Equal(t, contextutil.Metadata{RequestID: "req-1", UserID: "user-1", AgencyID: "agency-1"}, md)
	assert.Len(t, md.Fields(), 3)
}

func TestMetadataFields_SkipsEmpty(t *testing.T) {
	md := contextutil.ExtractMetadata(contextutil.WithRequestID(context.Background(), "req-1"))
	fields := md.Fields()
	assert.Len(t, fields, 1)
	assert.Equal(t, "request_id", fields[0].Key)
}

func TestGetLogger_Fallbacks(t *testing.T) {
	assert.NotNil(t, contextutil.GetLogger(context.Background(), nil))

	def := zap.NewNop()
	assert.Same(t, def, contextutil.GetLogger(context.Background(), def))

	scoped := zap.NewNop().Named("scoped")
	ctx := contextutil.WithLogger(context.Background(), scoped)
	assert.Same(t, scoped, contextutil.GetLogger(ctx, def))
}
