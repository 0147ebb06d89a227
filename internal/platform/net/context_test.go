package net

import (
	"context"
	"testing"
)

func TestRequestID_RoundTrip(t *testing.T) {
	t.Parallel()
	ctx := WithRequestID(context.Background(), "rid-1")
	if got := RequestID(ctx); got != "rid-1" {
		t.Fatalf("RequestID = %q", got)
	}
}

func TestRequestID_EmptyLeavesContext(t *testing.T) {
	t.Parallel()
	base := context.Background()
	if ctx := WithRequestID(base, ""); ctx != base {
		t.Fatalf("empty id should not wrap the context")
	}
	if got := RequestID(base); got != "" {
		t.Fatalf("RequestID on bare context = %q", got)
	}
}
