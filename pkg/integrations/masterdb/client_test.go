package masterdb

import (
	"context"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/sekaimcp/sekaimcp/pkg/errors"
	"github.com/sekaimcp/sekaimcp/pkg/httputil"
	"github.com/sekaimcp/sekaimcp/pkg/integrations"
	"github.com/sekaimcp/sekaimcp/pkg/sekai"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, integrations.Options{
		HTTPClient: server.Client(),
		Retry:      httputil.Policy{Attempts: 2, Delay: time.Millisecond},
	})
}

func TestNewClientDefaultBaseURL(t *testing.T) {
	c := NewClient("", integrations.Options{})
	if c.BaseURL() != DefaultBaseURL {
		t.Errorf("BaseURL() = %q, want %q", c.BaseURL(), DefaultBaseURL)
	}
}

func TestClient_FetchCollections(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/cards.json":
			w.Write([]byte(`[{"id":1,"characterId":21,"rarity":4,"attr":"cute","prefix":"Hello","assetbundleName":"res021_no001"}]`))
		case "/gameCharacters.json":
			w.Write([]byte(`[{"id":21,"firstName":"Miku","givenName":"Hatsune","gender":"female","height":158,"unit":"piapro","supportUnitType":"full"}]`))
		case "/musics.json":
			w.Write([]byte(`[{"id":1,"title":"Tell Your World","categories":["mv","original"],"assetbundleName":"jacket_s_001"}]`))
		case "/events.json":
			w.Write([]byte(`[{"id":1,"name":"Opening","startAt":100,"aggregateAt":200,"eventType":"marathon"}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
	ctx := context.Background()

	cards, err := c.FetchCards(ctx)
	if err != nil {
		t.Fatalf("FetchCards() error: %v", err)
	}
	wantCards := []sekai.Card{{ID: 1, CharacterID: 21, Rarity: 4, Attr: sekai.AttrCute, Prefix: "Hello", AssetbundleName: "res021_no001"}}
	if diff := cmp.Diff(wantCards, cards); diff != "" {
		t.Errorf("FetchCards() mismatch (-want +got):\n%s", diff)
	}

	chars, err := c.FetchCharacters(ctx)
	if err != nil {
		t.Fatalf("FetchCharacters() error: %v", err)
	}
	if len(chars) != 1 || chars[0].DisplayName() != "Hatsune Miku" {
		t.Errorf("FetchCharacters() = %+v", chars)
	}
	if got := string(chars[0].Extra["supportUnitType"]); got != `"full"` {
		t.Errorf("supportUnitType = %s, want upstream value kept", got)
	}

	musics, err := c.FetchMusics(ctx)
	if err != nil {
		t.Fatalf("FetchMusics() error: %v", err)
	}
	if len(musics) != 1 || !musics[0].HasCategory("mv") {
		t.Errorf("FetchMusics() = %+v", musics)
	}

	events, err := c.FetchEvents(ctx)
	if err != nil {
		t.Fatalf("FetchEvents() error: %v", err)
	}
	if len(events) != 1 || events[0].AggregateAt != 200 {
		t.Errorf("FetchEvents() = %+v", events)
	}
}

func TestClient_FetchEmptyAndNull(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`null`))
	})

	cards, err := c.FetchCards(context.Background())
	if err != nil {
		t.Fatalf("FetchCards() error: %v", err)
	}
	if cards == nil || len(cards) != 0 {
		t.Errorf("FetchCards() = %#v, want empty non-nil slice", cards)
	}
}

func TestClient_FetchErrors(t *testing.T) {
	tests := []struct {
		name     string
		handler  http.HandlerFunc
		resource string
		wantErr  error
	}{
		{
			name:     "not found",
			handler:  func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNotFound) },
			resource: ResourceCards,
			wantErr:  integrations.ErrNotFound,
		},
		{
			name:     "server error",
			handler:  func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusServiceUnavailable) },
			resource: ResourceCards,
			wantErr:  integrations.ErrNetwork,
		},
		{
			name:     "bad json",
			handler:  func(w http.ResponseWriter, r *http.Request) { w.Write([]byte(`{"not":"an array"}`)) },
			resource: ResourceCards,
			wantErr:  integrations.ErrDecode,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testClient(t, tt.handler)

			cards, err := c.FetchCards(context.Background())
			if cards != nil {
				t.Errorf("FetchCards() returned partial data: %v", cards)
			}

			var fe *errors.DataFetchError
			if !stderrors.As(err, &fe) {
				t.Fatalf("FetchCards() error = %T %v, want *errors.DataFetchError", err, err)
			}
			if fe.Resource != tt.resource {
				t.Errorf("Resource = %q, want %q", fe.Resource, tt.resource)
			}
			if !stderrors.Is(err, tt.wantErr) {
				t.Errorf("FetchCards() error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, errors.ErrCodeDataFetch) {
				t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeDataFetch)
			}
		})
	}
}
