// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/danielhkuo/nc-news/apierr"
	"github.com/danielhkuo/nc-news/models"
)

func TestWithLogging(t *testing.T) {
	handlerCalled := false
	testHandler := func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("success"))
	}

	wrappedHandler := WithLogging(testHandler)

	req := httptest.NewRequest("GET", "/api/topics", nil)
	w := httptest.NewRecorder()

	wrappedHandler(w, req)

	if !handlerCalled {
		t.Error("Expected handler to be called")
	}
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "success" {
		t.Errorf("Expected body 'success', got '%s'", w.Body.String())
	}
}

func TestWithLogging_PreservesResponse(t *testing.T) {
	testCases := []struct {
		name       string
		statusCode int
		body       string
	}{
		{"OK", http.StatusOK, "ok"},
		{"Created", http.StatusCreated, `{"comment":{}}`},
		{"NoContent", http.StatusNoContent, ""},
		{"BadRequest", http.StatusBadRequest, `{"msg":"Bad request"}`},
		{"NotFound", http.StatusNotFound, `{"msg":"Not found"}`},
		{"InternalError", http.StatusInternalServerError, "error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler := WithLogging(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.statusCode)
				w.Write([]byte(tc.body))
			})

			req := httptest.NewRequest("POST", "/api/articles", nil)
			w := httptest.NewRecorder()

			handler(w, req)

			if w.Code != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, w.Code)
			}
			if w.Body.String() != tc.body {
				t.Errorf("Expected body '%s', got '%s'", tc.body, w.Body.String())
			}
		})
	}
}

func TestStatusRecorder(t *testing.T) {
	w := httptest.NewRecorder()
	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

	rec.WriteHeader(http.StatusTeapot)

	if rec.status != http.StatusTeapot || w.Code != http.StatusTeapot {
		t.Errorf("Expected 418 recorded and forwarded, got %d and %d", rec.status, w.Code)
	}
}

func TestWithRequestID(t *testing.T) {
	var seen string
	handler := WithRequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestID(r.Context())
	}))

	t.Run("generates an ID", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest("GET", "/api", nil))

		if seen == "" {
			t.Fatal("Expected a request ID in the context")
		}
		if got := w.Header().Get(RequestIDHeader); got != seen {
			t.Errorf("Expected response header %q, got %q", seen, got)
		}
	})

	t.Run("reuses the client ID", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()

		handler.ServeHTTP(w, req)

		if seen != "abc-123" {
			t.Errorf("Expected client request ID, got %q", seen)
		}
	})

	replaced := []struct {
		name string
		id   string
	}{
		{"too long", strings.Repeat("a", maxRequestIDLen+1)},
		{"contains spaces", "abc 123"},
		{"control characters", "abc\x01def"},
		{"non-ASCII", "abé"},
	}
	for _, tc := range replaced {
		t.Run("replaces an ID that is "+tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api", nil)
			req.Header[http.CanonicalHeaderKey(RequestIDHeader)] = []string{tc.id}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			if seen == tc.id {
				t.Fatalf("Expected %q to be replaced", tc.id)
			}
			if _, err := uuid.Parse(seen); err != nil {
				t.Errorf("Expected a generated UUID, got %q", seen)
			}
			if got := w.Header().Get(RequestIDHeader); got != seen {
				t.Errorf("Expected response header %q, got %q", seen, got)
			}
		})
	}

	t.Run("keeps a max-length token and a UUID", func(t *testing.T) {
		for _, id := range []string{strings.Repeat("z", maxRequestIDLen), "6ba7b810-9dad-11d1-80b4-00c04fd430c8"} {
			req := httptest.NewRequest("GET", "/api", nil)
			req.Header.Set(RequestIDHeader, id)
			handler.ServeHTTP(httptest.NewRecorder(), req)

			if seen != id {
				t.Errorf("Expected %q kept, got %q", id, seen)
			}
		}
	})

	t.Run("IDs differ between requests", func(t *testing.T) {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/api", nil))
		first := seen
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/api", nil))

		if first == seen {
			t.Errorf("Expected distinct request IDs, got %q twice", seen)
		}
	})
}

func TestRequestID_Missing(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	if id := RequestID(req.Context()); id != "" {
		t.Errorf("Expected empty request ID, got %q", id)
	}
}

func TestRecover(t *testing.T) {
	handler := Recover(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/api/articles", nil))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("Expected status 500, got %d", w.Code)
	}

	var resp models.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}
	if resp.Msg != "Internal Server Error" {
		t.Errorf("Expected msg 'Internal Server Error', got '%s'", resp.Msg)
	}
}

func TestJSONResponse(t *testing.T) {
	testCases := []struct {
		name       string
		statusCode int
		data       interface{}
		expected   string
	}{
		{
			name:       "simple struct",
			statusCode: http.StatusOK,
			data:       map[string]string{"message": "hello"},
			expected:   `{"message":"hello"}`,
		},
		{
			name:       "topics envelope",
			statusCode: http.StatusOK,
			data:       models.TopicsResponse{Topics: []models.Topic{{Slug: "cats", Description: "Not dogs"}}},
			expected:   `{"topics":[{"slug":"cats","description":"Not dogs"}]}`,
		},
		{
			name:       "empty list stays an array",
			statusCode: http.StatusOK,
			data:       models.ArticlesResponse{Articles: []models.ArticleSummary{}},
			expected:   `{"articles":[],"total_count":0}`,
		},
		{
			name:       "error response",
			statusCode: http.StatusBadRequest,
			data:       models.ErrorResponse{Msg: "Bad request"},
			expected:   `{"msg":"Bad request"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			JSONResponse(w, tc.statusCode, tc.data)

			if w.Code != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, w.Code)
			}

			contentType := w.Header().Get("Content-Type")
			if contentType != "application/json" {
				t.Errorf("Expected Content-Type 'application/json', got '%s'", contentType)
			}

			// Check body (trim newline added by Encode)
			body := strings.TrimSpace(w.Body.String())
			if body != tc.expected {
				t.Errorf("Expected body '%s', got '%s'", tc.expected, body)
			}
		})
	}
}

func TestErrorResponse(t *testing.T) {
	testCases := []struct {
		statusCode int
		expected   string
	}{
		{http.StatusBadRequest, "Bad request"},
		{http.StatusNotFound, "Not found"},
		{http.StatusInternalServerError, "Internal Server Error"},
		{http.StatusServiceUnavailable, "Service Unavailable"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			w := httptest.NewRecorder()

			ErrorResponse(w, tc.statusCode)

			if w.Code != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, w.Code)
			}

			var resp models.ErrorResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("Failed to decode error response: %v", err)
			}
			if resp.Msg != tc.expected {
				t.Errorf("Expected msg '%s', got '%s'", tc.expected, resp.Msg)
			}
		})
	}
}

func TestWriteError(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		statusCode int
		msg        string
	}{
		{"invalid input", fmt.Errorf("%w: id", apierr.ErrInvalidInput), http.StatusBadRequest, "Bad request"},
		{"invalid query", fmt.Errorf("%w: sort_by", apierr.ErrInvalidQuery), http.StatusBadRequest, "Bad request"},
		{"not found", fmt.Errorf("%w: article 9", apierr.ErrNotFound), http.StatusNotFound, "Not found"},
		{"unexpected", errors.New("connection refused"), http.StatusInternalServerError, "Internal Server Error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/api/articles/9", nil)

			WriteError(w, req, tc.err)

			if w.Code != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, w.Code)
			}
			body := strings.TrimSpace(w.Body.String())
			if expected := `{"msg":"` + tc.msg + `"}`; body != expected {
				t.Errorf("Expected body %s, got %s", expected, body)
			}
		})
	}
}

func TestParseJSONBody(t *testing.T) {
	t.Run("valid JSON", func(t *testing.T) {
		body := `{"username":"butter_bridge","body":"Hello"}`
		req := httptest.NewRequest("POST", "/", strings.NewReader(body))

		var parsed models.NewComment
		if err := ParseJSONBody(httptest.NewRecorder(), req, &parsed); err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if parsed.Username != "butter_bridge" || parsed.Body != "Hello" {
			t.Errorf("Unexpected result %+v", parsed)
		}
	})

	t.Run("invalid JSON", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{invalid json}`))

		var parsed models.NewComment
		err := ParseJSONBody(httptest.NewRecorder(), req, &parsed)

		if !errors.Is(err, apierr.ErrInvalidInput) {
			t.Errorf("Expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("empty body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(""))

		var parsed models.NewComment
		if err := ParseJSONBody(httptest.NewRecorder(), req, &parsed); !errors.Is(err, apierr.ErrInvalidInput) {
			t.Errorf("Expected ErrInvalidInput for empty body, got %v", err)
		}
	})

	t.Run("non-numeric vote delta", func(t *testing.T) {
		req := httptest.NewRequest("PATCH", "/", strings.NewReader(`{"inc_votes":"cat"}`))

		var parsed models.VoteRequest
		if err := ParseJSONBody(httptest.NewRecorder(), req, &parsed); !errors.Is(err, apierr.ErrInvalidInput) {
			t.Errorf("Expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("oversized body", func(t *testing.T) {
		body := `{"username":"lurker","body":"` + strings.Repeat("a", MaxBodyBytes) + `"}`
		req := httptest.NewRequest("POST", "/", strings.NewReader(body))

		var parsed models.NewComment
		err := ParseJSONBody(httptest.NewRecorder(), req, &parsed)
		if !errors.Is(err, apierr.ErrInvalidInput) {
			t.Fatalf("Expected ErrInvalidInput, got %v", err)
		}
		var tooLarge *http.MaxBytesError
		if !errors.As(err, &tooLarge) {
			t.Errorf("Expected the size limit to be reported, got %v", err)
		}
	})

	t.Run("extra fields ignored", func(t *testing.T) {
		body := `{"username":"lurker","body":"Hi","votes":100}`
		req := httptest.NewRequest("POST", "/", strings.NewReader(body))

		var parsed models.NewComment
		if err := ParseJSONBody(httptest.NewRecorder(), req, &parsed); err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if parsed.Username != "lurker" {
			t.Errorf("Expected username 'lurker', got '%s'", parsed.Username)
		}
	})
}

func TestCORS(t *testing.T) {
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("handled"))
	})

	corsHandler := CORS(nextHandler)

	t.Run("preflight OPTIONS request", func(t *testing.T) {
		req := httptest.NewRequest("OPTIONS", "/api/articles", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		w := httptest.NewRecorder()

		corsHandler.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Errorf("Expected status 204, got %d", w.Code)
		}
		if w.Body.String() != "" {
			t.Errorf("Expected empty body for preflight, got '%s'", w.Body.String())
		}
		if w.Header().Get("Access-Control-Allow-Origin") != "http://localhost:5173" {
			t.Error("Expected Access-Control-Allow-Origin to match request origin")
		}
	})

	t.Run("regular request with origin", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/articles", nil)
		req.Header.Set("Origin", "https://example.com")
		w := httptest.NewRecorder()

		corsHandler.ServeHTTP(w, req)

		if w.Body.String() != "handled" {
			t.Error("Expected next handler to be called")
		}
		if w.Header().Get("Access-Control-Allow-Origin") != "https://example.com" {
			t.Error("Expected Access-Control-Allow-Origin to reflect request origin")
		}
	})

	t.Run("request without origin defaults to wildcard", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/articles", nil)
		w := httptest.NewRecorder()

		corsHandler.ServeHTTP(w, req)

		if w.Header().Get("Access-Control-Allow-Origin") != "*" {
			t.Error("Expected Access-Control-Allow-Origin to default to '*'")
		}
	})

	t.Run("allows required methods", func(t *testing.T) {
		req := httptest.NewRequest("OPTIONS", "/api/comments/1", nil)
		w := httptest.NewRecorder()

		corsHandler.ServeHTTP(w, req)

		allowedMethods := w.Header().Get("Access-Control-Allow-Methods")
		for _, method := range []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"} {
			if !strings.Contains(allowedMethods, method) {
				t.Errorf("Expected %s in allowed methods", method)
			}
		}
		if !strings.Contains(w.Header().Get("Access-Control-Allow-Headers"), "Content-Type") {
			t.Error("Expected Content-Type in allowed headers")
		}
	})
}

func TestGetClientIP(t *testing.T) {
	testCases := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		expectedIP string
	}{
		{
			name:       "X-Forwarded-For single IP",
			headers:    map[string]string{"X-Forwarded-For": "192.168.1.100"},
			remoteAddr: "10.0.0.1:12345",
			expectedIP: "192.168.1.100",
		},
		{
			name:       "X-Forwarded-For chained IPs",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.195, 70.41.3.18, 150.172.238.178"},
			remoteAddr: "127.0.0.1:12345",
			expectedIP: "203.0.113.195",
		},
		{
			name:       "X-Real-IP takes precedence over RemoteAddr",
			headers:    map[string]string{"X-Real-IP": "203.0.113.50"},
			remoteAddr: "10.0.0.1:12345",
			expectedIP: "203.0.113.50",
		},
		{
			name:       "X-Forwarded-For takes precedence over X-Real-IP",
			headers:    map[string]string{"X-Forwarded-For": "192.168.1.100", "X-Real-IP": "203.0.113.50"},
			remoteAddr: "10.0.0.1:12345",
			expectedIP: "192.168.1.100",
		},
		{
			name:       "RemoteAddr with port",
			remoteAddr: "192.168.1.50:54321",
			expectedIP: "192.168.1.50",
		},
		{
			name:       "RemoteAddr without port",
			remoteAddr: "192.168.1.50",
			expectedIP: "192.168.1.50",
		},
		{
			name:       "IPv6 RemoteAddr with port",
			remoteAddr: "[::1]:12345",
			expectedIP: "::1",
		},
		{
			name:       "IPv6 in X-Forwarded-For",
			headers:    map[string]string{"X-Forwarded-For": "2001:db8::1"},
			remoteAddr: "127.0.0.1:12345",
			expectedIP: "2001:db8::1",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tc.remoteAddr

			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}

			if result := GetClientIP(req); result != tc.expectedIP {
				t.Errorf("Expected IP '%s', got '%s'", tc.expectedIP, result)
			}
		})
	}
}
