package util_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github/chapool/evm-gateway/internal/util"
)

func TestLogFromContext(t *testing.T) {
	ctx := context.Background()

	l := util.LogFromContext(ctx)
	assert.NotEqual(t, zerolog.Disabled, l.GetLevel())

	ctx = util.DisableLogger(ctx, true)
	l = util.LogFromContext(ctx)
	assert.Equal(t, zerolog.Disabled, l.GetLevel())

	ctx = util.DisableLogger(ctx, false)
	l = util.LogFromContext(ctx)
	assert.NotEqual(t, zerolog.Disabled, l.GetLevel())

	custom := log.Logger.Level(zerolog.WarnLevel)
	ctx = custom.WithContext(context.Background())
	assert.Equal(t, zerolog.WarnLevel, util.LogFromContext(ctx).GetLevel())
}

func TestRequestIDFromContext(t *testing.T) {
	_, ok := util.RequestIDFromContext(context.Background())
	assert.False(t, ok)

	ctx := context.WithValue(context.Background(), util.CTXKeyRequestID, "4b2c0a6e-8b7f-4f0b-9c2e-0c1f5d6a7e8f")
	id, ok := util.RequestIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "4b2c0a6e-8b7f-4f0b-9c2e-0c1f5d6a7e8f", id)
}

type component struct{}

type initializedStruct struct {
	Name      string
	Component *component
	Handlers  map[string]func()
	hidden    *component
}

func TestIsStructInitialized(t *testing.T) {
	s := &initializedStruct{Component: &component{}, Handlers: map[string]func(){}}
	assert.NoError(t, util.IsStructInitialized(s))

	s.Handlers = nil
	err := util.IsStructInitialized(s)
	assert.ErrorIs(t, err, util.ErrUninitializedField)
	assert.Contains(t, err.Error(), "Handlers")

	assert.Error(t, util.IsStructInitialized((*initializedStruct)(nil)))
	assert.Error(t, util.IsStructInitialized(42))
	_ = s.hidden
}
