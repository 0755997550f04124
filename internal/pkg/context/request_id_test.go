package context

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestID(t *testing.T) {
	t.Run("round_trip", func(t *testing.T) {
		ctx := WithRequestID(context.Background(), "req-1")
		assert.Equal(t, "req-1", GetRequestID(ctx))
	})

	t.Run("blank_id_is_ignored", func(t *testing.T) {
		ctx := WithRequestID(context.Background(), "   ")
		assert.Equal(t, "", GetRequestID(ctx))
	})
}
