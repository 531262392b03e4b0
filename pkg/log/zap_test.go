package log

import (
	"context"
	"testing"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := SetRequestID(context.Background(), "req-1")
	if got := RequestID(ctx); got != "req-1" {
		t.Errorf("expected req-1, got %q", got)
	}
	if got := RequestID(context.Background()); got != "" {
		t.Errorf("expected empty id, got %q", got)
	}
}

func TestInitDoesNotPanicOnBadLevel(t *testing.T) {
	l := Init(ZapConfig{Level: "loud", Mode: ModeProduction, Encoding: EncodingJSON})
	l.Infof(SetRequestID(context.Background(), "abc"), "hello %s", "world")
	NewNop().Error(context.Background(), "discarded")
}
