package strapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sekaimcp/sekaimcp/pkg/httputil"
	"github.com/sekaimcp/sekaimcp/pkg/integrations"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, integrations.Options{
		HTTPClient: server.Client(),
		Retry:      httputil.Policy{Attempts: 1, Delay: time.Millisecond},
	})
}

func TestClient_FetchAnnouncements(t *testing.T) {
	var gotPath, gotLimit, gotSort string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotLimit = r.URL.Query().Get("_limit")
		gotSort = r.URL.Query().Get("_sort")
		w.Write([]byte(`[{"id":3,"title":"c"},{"id":2,"title":"b"},{"id":1,"title":"a"}]`))
	})

	items, err := c.FetchAnnouncements(context.Background(), 2)
	if err != nil {
		t.Fatalf("FetchAnnouncements() error: %v", err)
	}
	if gotPath != "/announcements" {
		t.Errorf("path = %q, want /announcements", gotPath)
	}
	if gotLimit != "2" {
		t.Errorf("_limit = %q, want 2", gotLimit)
	}
	if gotSort != "published_at:DESC" {
		t.Errorf("_sort = %q, want published_at:DESC", gotSort)
	}
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2 (truncated to limit)", len(items))
	}
	if string(items[0]) != `{"id":3,"title":"c"}` {
		t.Errorf("items[0] = %s, want verbatim pass-through", items[0])
	}
}

func TestClient_FetchAnnouncementsError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	items, err := c.FetchAnnouncements(context.Background(), 5)
	if err == nil {
		t.Fatal("FetchAnnouncements() should fail on 502")
	}
	if !errors.Is(err, integrations.ErrNetwork) {
		t.Errorf("error = %v, want ErrNetwork", err)
	}
	if items != nil {
		t.Errorf("items = %v, want nil", items)
	}
}

func TestNewClientDefaultBaseURL(t *testing.T) {
	c := NewClient("", integrations.Options{})
	if c.BaseURL() != DefaultBaseURL {
		t.Errorf("BaseURL() = %q, want %q", c.BaseURL(), DefaultBaseURL)
	}
}
