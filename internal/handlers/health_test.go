package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jwebster45206/npc-dialogue/internal/services"
)

func TestHealthHandler_ServeHTTP(t *testing.T) {
	logger := testHandlerLogger()

	tests := []struct {
		name           string
		setupCache     func() services.Cache
		setupLLM       func() services.LLMService
		expectedStatus int
		expectedHealth string
		expectedCache  string
		expectedLLM    string
	}{
		{
			name: "all healthy",
			setupCache: func() services.Cache {
				mockCache := services.NewMockCache()
				mockCache.SetPingSuccess()
				return mockCache
			},
			setupLLM: func() services.LLMService {
				return services.NewMockLLM()
			},
			expectedStatus: http.StatusOK,
			expectedHealth: "healthy",
			expectedCache:  "healthy",
			expectedLLM:    "healthy",
		},
		{
			name: "unhealthy cache",
			setupCache: func() services.Cache {
				mockCache := services.NewMockCache()
				mockCache.SetPingError(errors.New("connection failed"))
				return mockCache
			},
			setupLLM: func() services.LLMService {
				return services.NewMockLLM()
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedHealth: "degraded",
			expectedCache:  "unhealthy",
			expectedLLM:    "healthy",
		},
		{
			name: "unhealthy llm",
			setupCache: func() services.Cache {
				mockCache := services.NewMockCache()
				mockCache.SetPingSuccess()
				return mockCache
			},
			setupLLM: func() services.LLMService {
				mockLLM := services.NewMockLLM()
				mockLLM.PingFunc = func(ctx context.Context) error {
					return errors.New("llm connection failed")
				}
				return mockLLM
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedHealth: "degraded",
			expectedCache:  "healthy",
			expectedLLM:    "unhealthy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHealthHandler(tt.setupCache(), tt.setupLLM(), logger)

			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected status %d, got %d", tt.expectedStatus, w.Code)
			}

			var response HealthResponse
			if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
				t.Fatalf("Failed to decode response: %v", err)
			}

			if response.Status != tt.expectedHealth {
				t.Errorf("Expected health %q, got %q", tt.expectedHealth, response.Status)
			}
			if response.Components["cache"] != tt.expectedCache {
				t.Errorf("Expected cache %q, got %v", tt.expectedCache, response.Components["cache"])
			}
			if response.Components["llm"] != tt.expectedLLM {
				t.Errorf("Expected llm %q, got %v", tt.expectedLLM, response.Components["llm"])
			}
		})
	}
}
