package shared_test

import (
	"context"
	"errors"
	"hallbook/shared"
	"hallbook/shared/cache/mocks"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		parts    []any
		expected string
	}{
		{name: "prefix only", prefix: "hall:gets", expected: "hall:gets"},
		{name: "int64 part", prefix: "booking:availability", parts: []any{int64(42)}, expected: "booking:availability:42"},
		{name: "mixed parts", prefix: "x", parts: []any{"a", 1, true}, expected: "x:a:1:true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.BuildCacheKey(tt.prefix, tt.parts...))
		})
	}
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cacheMock := mocks.NewMockRedisCache(ctrl)
	ctx := context.Background()

	cacheMock.EXPECT().Delete(ctx, "a").Return(errors.New("redis down"))
	cacheMock.EXPECT().Delete(ctx, "b").Return(nil)

	assert.NotPanics(t, func() {
		shared.InvalidateCaches(ctx, cacheMock, "a", "b")
	})
}
