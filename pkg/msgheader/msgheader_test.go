package msgheader_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tuanvumaihuynh/product-api/pkg/correlationid"
	"github.com/tuanvumaihuynh/product-api/pkg/msgheader"
)

func TestHeadersRoundTripCorrelationID(t *testing.T) {
	ctx := correlationid.NewContext(context.Background(), "abc-123")

	headers := msgheader.BuildHeaders(ctx)
	assert.Equal(t, "abc-123", headers[correlationid.Header])

	got, ok := correlationid.FromContext(msgheader.ExtractContext(context.Background(), headers))
	assert.True(t, ok)
	assert.Equal(t, "abc-123", got)
}

func TestExtractContextWithoutCorrelationID(t *testing.T) {
	ctx := msgheader.ExtractContext(context.Background(), map[string]string{})

	_, ok := correlationid.FromContext(ctx)
	assert.False(t, ok)
}
