package app

import (
	"github.com/atotto/clipboard"
	"github.com/billie-coop/scaler/internal/tui/events"
)

// ClipboardService copies text to the system clipboard
type ClipboardService struct {
	eventBroker *events.Broker
	unsupported bool
	write       func(string) error
}

// NewClipboardService creates a clipboard service backed by the system clipboard
func NewClipboardService(eventBroker *events.Broker) *ClipboardService {
	return &ClipboardService{
		eventBroker: eventBroker,
		unsupported: clipboard.Unsupported,
		write:       clipboard.WriteAll,
	}
}

// Copy puts text on the clipboard and reports the outcome in the status bar.
// A missing clipboard (no xclip, headless session) is reported, not fatal.
func (c *ClipboardService) Copy(text string) bool {
	if c.unsupported {
		c.status("Clipboard not available on this system", "error")
		return false
	}
	if err := c.write(text); err != nil {
		c.status("Failed to copy to clipboard: "+err.Error(), "error")
		return false
	}
	c.status("Copied settings to clipboard 📋", "success")
	return true
}

func (c *ClipboardService) status(message, kind string) {
	if c.eventBroker == nil {
		return
	}
	c.eventBroker.Publish(events.Event{
		Type: events.StatusMessageEvent,
		Payload: events.StatusMessagePayload{
			Message: message,
			Type:    kind,
		},
	})
}
