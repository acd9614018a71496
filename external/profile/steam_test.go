package profile

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hllops/pluginkit/internal/profile"
)

const steamID = "76561198000000000"

func newTestResolver(apiKey, endpoint string) *SteamResolver {
	r := NewSteamResolver(apiKey).(*SteamResolver)
	if endpoint != "" {
		r.endpoint = endpoint
	}
	return r
}

func TestAvatarURL_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("steamids"); got != steamID {
			t.Fatalf("unexpected steamids query: %s", got)
		}
		if got := r.URL.Query().Get("key"); got != "test-key" {
			t.Fatalf("unexpected key query: %s", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"response":{"players":[{"avatar":"https://img/a.jpg","avatarmedium":"https://img/m.jpg","avatarfull":"https://img/f.jpg"}]}}`))
	}))
	defer server.Close()

	r := newTestResolver("test-key", server.URL)
	if got := r.AvatarURL(context.Background(), steamID); got != "https://img/m.jpg" {
		t.Fatalf("unexpected avatar url: %s", got)
	}
}

func TestAvatarURL_SizeVariant(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"response":{"players":[{"avatar":"https://img/a.jpg","avatarmedium":"https://img/m.jpg","avatarfull":"https://img/f.jpg"}]}}`))
	}))
	defer server.Close()

	r := newTestResolver("test-key", server.URL)
	r.size = profile.AvatarFull
	if got := r.AvatarURL(context.Background(), steamID); got != "https://img/f.jpg" {
		t.Fatalf("unexpected avatar url: %s", got)
	}
}

func TestAvatarURL_GamePassSkipsLookup(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		calls++
	}))
	defer server.Close()

	r := newTestResolver("test-key", server.URL)
	got := r.AvatarURL(context.Background(), "0123456789abcdef0123456789abcdef")
	if got != profile.DefaultGamePassAvatarURL {
		t.Fatalf("unexpected avatar url: %s", got)
	}
	if calls != 0 {
		t.Fatalf("expected no remote call, got %d", calls)
	}
}

func TestAvatarURL_NoAPIKeySkipsLookup(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		calls++
	}))
	defer server.Close()

	r := newTestResolver("", server.URL)
	if got := r.AvatarURL(context.Background(), steamID); got != profile.DefaultSteamAvatarURL {
		t.Fatalf("unexpected avatar url: %s", got)
	}
	if calls != 0 {
		t.Fatalf("expected no remote call, got %d", calls)
	}
}

func TestAvatarURL_FailuresFallBackToDefault(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte("not json"))
			},
		},
		{
			name: "empty player list",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"response":{"players":[]}}`))
			},
		},
		{
			name: "missing avatar field",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"response":{"players":[{"avatar":"https://img/a.jpg"}]}}`))
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			r := newTestResolver("test-key", server.URL)
			if got := r.AvatarURL(context.Background(), steamID); got != profile.DefaultSteamAvatarURL {
				t.Fatalf("expected default avatar, got %s", got)
			}
		})
	}
}

func TestAvatarURL_UnreachableServerFallsBack(t *testing.T) {
	r := newTestResolver("test-key", "http://127.0.0.1:1")
	if got := r.AvatarURL(context.Background(), steamID); got != profile.DefaultSteamAvatarURL {
		t.Fatalf("expected default avatar, got %s", got)
	}
}
