package server

import (
	"fmt"
	"strings"
	"time"

	"github.com/df07/go-spectral-pathtracer/pkg/core"
)

// ConsoleMessage is one log line captured during a render
type ConsoleMessage struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"` // "info", "warning", "error"
}

// WebLogger implements core.Logger by writing to stdout and to a console channel
type WebLogger struct {
	renderID    string
	consoleChan chan<- ConsoleMessage
}

// NewWebLogger creates a logger for one render request
func NewWebLogger(renderID string, consoleChan chan<- ConsoleMessage) core.Logger {
	return &WebLogger{
		renderID:    renderID,
		consoleChan: consoleChan,
	}
}

// Printf implements core.Logger. Server logs get the render ID prefix; the
// console channel gets the bare message and never blocks.
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	fmt.Printf("[%s] %s", wl.renderID, message)

	if wl.consoleChan == nil {
		return
	}
	select {
	case wl.consoleChan <- ConsoleMessage{
		Message:   message,
		Timestamp: time.Now(),
		Level:     levelOf(message),
	}:
	default:
		// Channel full, skip
	}
}

// levelOf infers the console level from the message prefix
func levelOf(message string) string {
	switch {
	case strings.HasPrefix(message, "Error:"):
		return "error"
	case strings.HasPrefix(message, "Warning:"):
		return "warning"
	default:
		return "info"
	}
}

// drain collects every message currently buffered in ch
func drain(ch <-chan ConsoleMessage) []ConsoleMessage {
	messages := make([]ConsoleMessage, 0, len(ch))
	for {
		select {
		case msg := <-ch:
			messages = append(messages, msg)
		default:
			return messages
		}
	}
}
