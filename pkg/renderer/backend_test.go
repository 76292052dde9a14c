package renderer

import (
	"errors"
	"testing"
)

func TestSelectBackend(t *testing.T) {
	tests := []struct {
		name    string
		request string
		wantErr bool
	}{
		{"default", "", false},
		{"cpu", "cpu", false},
		{"cpu mixed case", " CPU ", false},
		{"gpu falls back", "gpu", true},
		{"unknown falls back", "tpu", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend, err := SelectBackend(tt.request)
			if backend != BackendCPU {
				t.Errorf("Expected CPU backend, got %q", backend)
			}
			if tt.wantErr != (err != nil) {
				t.Fatalf("Expected error=%v, got %v", tt.wantErr, err)
			}
			if err != nil && !errors.Is(err, ErrBackendUnavailable) {
				t.Errorf("Expected ErrBackendUnavailable, got %v", err)
			}
		})
	}
}
