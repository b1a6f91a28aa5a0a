package metadata

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"chapel/pkg/requestcontext"
)

func TestClientIPFromRequest(t *testing.T) {
	cases := map[string]struct {
		hops       int
		header     map[string]string
		remoteAddr string
		want       string
	}{
		"forwarded chain ignored without trusted proxies": {
			header:     map[string]string{"X-Forwarded-For": "203.0.113.9"},
			remoteAddr: "192.0.2.44:53211",
			want:       "192.0.2.44",
		},
		"real ip ignored without trusted proxies": {
			header:     map[string]string{"X-Real-IP": "198.51.100.2"},
			remoteAddr: "192.0.2.44:53211",
			want:       "192.0.2.44",
		},
		"one proxy uses last hop": {
			hops:       1,
			header:     map[string]string{"X-Forwarded-For": " 203.0.113.9 , 10.0.0.1"},
			remoteAddr: "10.0.0.2:8080",
			want:       "10.0.0.1",
		},
		"two proxies skip the spoofed prefix": {
			hops:       2,
			header:     map[string]string{"X-Forwarded-For": "6.6.6.6, 203.0.113.9, 10.0.0.1"},
			remoteAddr: "10.0.0.2:8080",
			want:       "203.0.113.9",
		},
		"short chain falls back to remote addr": {
			hops:       2,
			header:     map[string]string{"X-Forwarded-For": "203.0.113.9"},
			remoteAddr: "10.0.0.2:8080",
			want:       "10.0.0.2",
		},
		"real ip behind a trusted proxy": {
			hops:       1,
			header:     map[string]string{"X-Real-IP": "198.51.100.2"},
			remoteAddr: "10.0.0.2:8080",
			want:       "198.51.100.2",
		},
		"remote addr with port": {
			remoteAddr: "192.0.2.44:53211",
			want:       "192.0.2.44",
		},
		"ipv6 remote addr": {
			remoteAddr: "[2001:db8::1]:443",
			want:       "2001:db8::1",
		},
		"remote addr without port": {
			remoteAddr: "192.0.2.44",
			want:       "192.0.2.44",
		},
		"nothing known": {
			want: "unknown",
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tc.remoteAddr
			for k, v := range tc.header {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tc.want, ClientIPFromRequest(req, tc.hops))
		})
	}
}

func TestClientIPFromRequestJoinsRepeatedHeaders(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Add("X-Forwarded-For", "6.6.6.6")
	req.Header.Add("X-Forwarded-For", "203.0.113.9")

	assert.Equal(t, "203.0.113.9", ClientIPFromRequest(req, 1))
}

func TestClientMetadata(t *testing.T) {
	var gotIP, gotUA string
	h := ClientMetadata(0)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		gotIP = requestcontext.ClientIP(r.Context())
		gotUA = requestcontext.UserAgent(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.7:1234"
	req.Header.Set("X-Forwarded-For", "203.0.113.250")
	req.Header.Set("User-Agent", "Mozilla/5.0")
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "192.0.2.7", gotIP)
	assert.Equal(t, "Mozilla/5.0", gotUA)
}
