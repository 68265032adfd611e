package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	tool := NoopToolHooks{}
	tool.OnToolStart(ctx, "search_cards")
	tool.OnToolComplete(ctx, "search_cards", time.Second, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "cards")
	c.OnCacheMiss(ctx, "musics")
	c.OnCacheSet(ctx, "events", 1024)

	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "GET", "sekai-world.github.io", "/sekai-master-db-diff/cards.json")
	h.OnResponse(ctx, "GET", "sekai-world.github.io", "/sekai-master-db-diff/cards.json", 200, time.Second)
	h.OnError(ctx, "GET", "sekai-world.github.io", "/sekai-master-db-diff/cards.json", nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Tool().(NoopToolHooks); !ok {
		t.Error("Tool() should return NoopToolHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	customTool := &testToolHooks{}
	SetToolHooks(customTool)
	if Tool() != customTool {
		t.Error("SetToolHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	Reset()
	if _, ok := Tool().(NoopToolHooks); !ok {
		t.Error("Reset() should restore NoopToolHooks")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Reset() should restore NoopCacheHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testCacheHooks{}
	SetCacheHooks(custom)

	// Setting nil should be ignored
	SetCacheHooks(nil)

	if Cache() != custom {
		t.Error("SetCacheHooks(nil) should be ignored")
	}

	Reset()
}

type testToolHooks struct{ NoopToolHooks }
type testCacheHooks struct{ NoopCacheHooks }
type testHTTPHooks struct{ NoopHTTPHooks }
