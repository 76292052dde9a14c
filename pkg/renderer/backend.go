package renderer

import (
	"errors"
	"fmt"
	"strings"
)

// Backend names the device that executes the integrator
type Backend string

const (
	BackendCPU Backend = "cpu"
	BackendGPU Backend = "gpu"
)

// ErrBackendUnavailable reports that a requested backend cannot be used.
// The CPU backend is always returned alongside it as the fallback.
var ErrBackendUnavailable = errors.New("render backend unavailable")

// SelectBackend resolves a backend name. Only the CPU integrator is built in,
// so any other request yields BackendCPU together with ErrBackendUnavailable.
func SelectBackend(name string) (Backend, error) {
	switch Backend(strings.ToLower(strings.TrimSpace(name))) {
	case "", BackendCPU:
		return BackendCPU, nil
	case BackendGPU:
		return BackendCPU, fmt.Errorf("%w: gpu compute offload is not built in", ErrBackendUnavailable)
	default:
		return BackendCPU, fmt.Errorf("%w: unknown backend %q", ErrBackendUnavailable, name)
	}
}
