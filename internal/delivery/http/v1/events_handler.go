package v1

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go-interview-backend/internal/domain"
	"go-interview-backend/internal/events"

	"github.com/gin-gonic/gin"
)

type EventsHandler struct {
	bus *events.Bus
}

// NewEventsHandler registers the server-sent events stream
func NewEventsHandler(r *gin.RouterGroup, bus *events.Bus) {
	handler := &EventsHandler{bus: bus}
	r.GET("/events", handler.Stream)
}

// Stream godoc
// @Summary      Subscribe to lifecycle events
// @Description  Server-sent events stream carrying camera-release, session-completed and mocks-changed notifications for the authenticated user.
// @Tags         events
// @Produce      text/event-stream
// @Success      200  {string}  string  "event stream"
// @Router       /events [get]
// @Security     BearerAuth
func (h *EventsHandler) Stream(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	ch, cancel := h.bus.Subscribe(userID)
	defer cancel()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.WriteHeader(http.StatusOK)
	c.Writer.Flush()

	// Heartbeat keeps intermediaries from closing an idle stream
	heartbeat := time.NewTicker(25 * time.Second)
	defer heartbeat.Stop()

	for {
		select {
		case <-c.Request.Context().Done():
			return
		case <-heartbeat.C:
			fmt.Fprint(c.Writer, ": ping\n\n")
			c.Writer.Flush()
		case evt, ok := <-ch:
			if !ok {
				return
			}
			payload, err := json.Marshal(evt)
			if err != nil {
				continue
			}
			fmt.Fprintf(c.Writer, "event: %s\ndata: %s\n\n", evt.Topic, payload)
			c.Writer.Flush()
		}
	}
}
