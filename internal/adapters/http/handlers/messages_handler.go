package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/go-packaging-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-packaging-service/internal/ports"
)

// MessageDrainer returns and clears the pending notifications.
type MessageDrainer interface {
	Drain() []ports.Message
}

// MessagesHandler exposes the notification queue filled by the debug workflow.
type MessagesHandler struct {
	queue MessageDrainer
}

// NewMessagesHandler creates a new MessagesHandler reading from queue.
func NewMessagesHandler(queue MessageDrainer) *MessagesHandler {
	return &MessagesHandler{queue: queue}
}

// List handles GET /api/v1/messages. Messages are returned once.
func (h *MessagesHandler) List(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, dto.ToMessageListResponse(h.queue.Drain()))
}
