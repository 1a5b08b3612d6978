package domain

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/maksimkurb/fios-stats/internal/gateway"
	"github.com/maksimkurb/fios-stats/internal/influx"
)

// Compile-time check: the session produced by the adapter satisfies the
// interface handed to consumers.
var _ GatewaySession = (*gateway.AuthClient)(nil)

type stubGatewayClient struct{}

func (s *stubGatewayClient) Login(password string) (GatewaySession, error) {
	return nil, nil
}

type stubMetricWriter struct{}

func (s *stubMetricWriter) Push(metrics []influx.Metric) error {
	return nil
}

func TestNewAppDependencies(t *testing.T) {
	t.Run("Default configuration", func(t *testing.T) {
		deps := NewAppDependencies(AppConfig{})

		if deps.GatewayClient() == nil {
			t.Error("Expected gateway client to be created with default config")
		}
		if deps.MetricWriter() != nil {
			t.Error("Expected metric writer to be nil when no sink is configured")
		}
	})

	t.Run("Custom gateway host", func(t *testing.T) {
		deps := NewAppDependencies(AppConfig{
			GatewayHost: "192.168.1.1",
		})

		if deps.GatewayClient() == nil {
			t.Error("Expected gateway client to be created with custom host")
		}
	})

	t.Run("Sink configured", func(t *testing.T) {
		deps := NewAppDependencies(AppConfig{
			InfluxDBURI: "http://127.0.0.1:8086/write?db=stats",
		})

		if deps.MetricWriter() == nil {
			t.Error("Expected metric writer to be created when a sink is configured")
		}
	})
}

func TestNewDefaultDependencies(t *testing.T) {
	deps := NewDefaultDependencies()

	if deps == nil {
		t.Fatal("Expected dependencies to be created")
	}
	if deps.GatewayClient() == nil {
		t.Error("Expected gateway client to be created with defaults")
	}
	if deps.MetricWriter() != nil {
		t.Error("Expected metric forwarding to be disabled by default")
	}
}

func TestNewTestDependencies(t *testing.T) {
	client := &stubGatewayClient{}
	writer := &stubMetricWriter{}

	deps := NewTestDependencies(client, writer)

	if deps.GatewayClient() != client {
		t.Error("Expected the injected gateway client to be returned")
	}
	if deps.MetricWriter() != writer {
		t.Error("Expected the injected metric writer to be returned")
	}
}

func TestDeviceClient_LoginProducesWorkingSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/login" && r.Method == http.MethodGet:
			w.Write([]byte(`{"passwordSalt":"pepper","requirePassword":true}`))
		case r.URL.Path == "/api/login" && r.Method == http.MethodPost:
			http.SetCookie(w, &http.Cookie{Name: "XSRF-TOKEN", Value: "token123"})
			http.SetCookie(w, &http.Cookie{Name: "Session", Value: "1234"})
		case r.URL.Path == "/api/network/1":
			if r.Header.Get("X-XSRF-TOKEN") != "token123" {
				t.Errorf("Expected session token on network request, got %q", r.Header.Get("X-XSRF-TOKEN"))
			}
			w.Write([]byte(`{"bandwidth":{"minutesRx":[10],"minutesTx":[20]},"rxErrors":1,"rxDropped":2}`))
		case r.URL.Path == "/api/logout":
			w.Write([]byte("{}"))
		default:
			t.Errorf("Unexpected request: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	adapter := &deviceClient{client: gateway.NewClientWithBaseURL(server.URL+"/api/", nil)}

	session, err := adapter.Login("secret")
	if err != nil {
		t.Fatalf("Login() returned error: %v", err)
	}

	status, err := session.NetworkStatus()
	if err != nil {
		t.Fatalf("NetworkStatus() returned error: %v", err)
	}

	sample := status.Sample()
	if sample.RxBits != 80 || sample.TxBits != 160 {
		t.Errorf("Expected 80/160 bits, got %d/%d", sample.RxBits, sample.TxBits)
	}

	if err := session.Logout(); err != nil {
		t.Errorf("Logout() returned error: %v", err)
	}
}

func TestDependenciesReturnSameInstance(t *testing.T) {
	deps := NewAppDependencies(AppConfig{
		InfluxDBURI: "http://127.0.0.1:8086/write?db=stats",
	})

	if deps.GatewayClient() != deps.GatewayClient() {
		t.Error("Expected same gateway client instance on multiple calls")
	}
	if deps.MetricWriter() != deps.MetricWriter() {
		t.Error("Expected same metric writer instance on multiple calls")
	}
}
