package httpcontext

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/valyala/fasthttp"

	appLogger "github.com/fastygo/pricing/pkg/logger"
)

func TestAttach_PropagatesRequestID(t *testing.T) {
	a := NewAdapter(context.Background(), time.Second)
	var ctx fasthttp.RequestCtx
	ctx.Request.Header.Set(HeaderRequestID, "abc")

	stdCtx, cancel := a.Attach(&ctx)
	defer cancel()

	assert.Equal(t, "abc", appLogger.RequestID(stdCtx))
	assert.Equal(t, "abc", string(ctx.Response.Header.Peek(HeaderRequestID)))
	_, hasDeadline := stdCtx.Deadline()
	assert.True(t, hasDeadline)
}

func TestRequestID_GeneratedOnceAndReused(t *testing.T) {
	var ctx fasthttp.RequestCtx

	first := RequestID(&ctx)
	second := RequestID(&ctx)

	assert.NotEmpty(t, first)
	assert.Equal(t, first, second)
}

func TestAttach_CancelledWithBase(t *testing.T) {
	base, cancelBase := context.WithCancel(context.Background())
	a := NewAdapter(base, time.Minute)
	var ctx fasthttp.RequestCtx

	stdCtx, cancel := a.Attach(&ctx)
	defer cancel()
	cancelBase()

	select {
	case <-stdCtx.Done():
	case <-time.After(time.Second):
		t.Fatal("request context not cancelled with base")
	}
}

func TestNewAdapter_Defaults(t *testing.T) {
	a := NewAdapter(nil, 0)
	assert.Equal(t, 5*time.Second, a.timeout)
	assert.NotNil(t, a.base)
}
