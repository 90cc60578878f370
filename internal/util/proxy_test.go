package util

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewProxyFunc_ExplicitProxies(t *testing.T) {
	proxyFn := NewProxyFunc("http://proxy.local:3128", "http://secure-proxy.local:3128", "")

	httpReq := httptest.NewRequest(http.MethodGet, "http://example.com/", nil)
	u, err := proxyFn(httpReq)
	if err != nil {
		t.Fatalf("proxy func: %v", err)
	}
	if u == nil || u.Host != "proxy.local:3128" {
		t.Errorf("http proxy = %v, want proxy.local:3128", u)
	}

	httpsReq := httptest.NewRequest(http.MethodGet, "https://example.com/", nil)
	u, err = proxyFn(httpsReq)
	if err != nil {
		t.Fatalf("proxy func: %v", err)
	}
	if u == nil || u.Host != "secure-proxy.local:3128" {
		t.Errorf("https proxy = %v, want secure-proxy.local:3128", u)
	}
}

func TestNewProxyFunc_FallsBackToHTTPProxy(t *testing.T) {
	proxyFn := NewProxyFunc("http://proxy.local:3128", "", "")

	httpsReq := httptest.NewRequest(http.MethodGet, "https://example.com/", nil)
	u, err := proxyFn(httpsReq)
	if err != nil {
		t.Fatalf("proxy func: %v", err)
	}
	if u == nil || u.Host != "proxy.local:3128" {
		t.Errorf("fallback proxy = %v, want proxy.local:3128", u)
	}
}
