package gateway

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "github.com/maksimkurb/fios-stats/internal/errors"
)

func newAuthClient(serverURL string, credential *SessionCredential) *AuthClient {
	client := NewClientWithBaseURL(serverURL+"/api/", nil)
	return NewAuthClient(client, credential)
}

func TestAuthClient_Get_AttachesSessionHeaders(t *testing.T) {
	paths := []string{"network/1", "settings/system", "logout"}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			var gotXSRF, gotCookie, gotPath string

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotXSRF = r.Header.Get("X-XSRF-TOKEN")
				gotCookie = r.Header.Get("Cookie")
				gotPath = r.URL.Path
				w.Write([]byte("{}"))
			}))
			defer server.Close()

			auth := newAuthClient(server.URL, &SessionCredential{XSRFToken: "token123", SessionID: 1234})

			if _, err := auth.Get(path); err != nil {
				t.Fatalf("Get(%q) returned error: %v", path, err)
			}

			if gotXSRF != "token123" {
				t.Errorf("X-XSRF-TOKEN = %v, want token123", gotXSRF)
			}
			if gotCookie != "Session=1234;" {
				t.Errorf("Cookie = %v, want Session=1234;", gotCookie)
			}
			if gotPath != "/api/"+path {
				t.Errorf("Path = %v, want /api/%s", gotPath, path)
			}
		})
	}
}

func TestAuthClient_Get_ReturnsBodyWithoutStatusInterpretation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("device error page"))
	}))
	defer server.Close()

	auth := newAuthClient(server.URL, &SessionCredential{XSRFToken: "t", SessionID: 1})

	body, err := auth.Get("network/1")
	if err != nil {
		t.Fatalf("Get() returned error for non-OK status: %v", err)
	}
	if string(body) != "device error page" {
		t.Errorf("Body = %v, want 'device error page'", string(body))
	}
}

func TestAuthClient_Get_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	auth := newAuthClient(server.URL, &SessionCredential{XSRFToken: "t", SessionID: 1})

	_, err := auth.Get("network/1")
	if err == nil {
		t.Fatal("Expected error for unreachable server")
	}

	var appErr *apperrors.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("Expected *errors.Error, got %T", err)
	}
	if appErr.Code != apperrors.ErrCodeTransport {
		t.Errorf("Code = %v, want %v", appErr.Code, apperrors.ErrCodeTransport)
	}
}

func TestAuthClient_Logout(t *testing.T) {
	var gotPath, gotXSRF string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotXSRF = r.Header.Get("X-XSRF-TOKEN")
		w.Write([]byte("{}"))
	}))
	defer server.Close()

	auth := newAuthClient(server.URL, &SessionCredential{XSRFToken: "token123", SessionID: 7})

	if err := auth.Logout(); err != nil {
		t.Fatalf("Logout() returned error: %v", err)
	}

	if gotPath != "/api/logout" {
		t.Errorf("Path = %v, want /api/logout", gotPath)
	}
	if gotXSRF != "token123" {
		t.Errorf("X-XSRF-TOKEN = %v, want token123", gotXSRF)
	}
}
