package callevent

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	unknownCaller   = "Inconnu"
	defaultCallType = "incoming"
)

// Handler handles telephony webhook HTTP requests.
type Handler struct {
	service *Service
}

// NewHandler creates a new callevent handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// callEventPayload is the JSON body the CTI sends on POST.
type callEventPayload struct {
	CallerIDNumber string `json:"callerIdNumber"`
	Event          string `json:"type"`
}

// HandleCallEvent processes an inbound call notification.
// GET  /webhook/ovh?caller=…&callee=…&type=…
// POST /webhook/ovh {"callerIdNumber": …}
func (h *Handler) HandleCallEvent(c *gin.Context) {
	caller, callType := extractCall(c)

	record := h.service.Resolve(c.Request.Context(), caller, callType)

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"caller": caller,
		"client": strings.TrimSpace(record.FirstName + " " + record.LastName),
		"known":  record.Known(),
	})
}

// extractCall reads the caller from the query on GET and from the JSON
// body on POST. Missing values degrade to defaults, never to an error:
// a malformed switch payload must not lose the call notification.
func extractCall(c *gin.Context) (caller, callType string) {
	if c.Request.Method == http.MethodGet {
		return c.DefaultQuery("caller", unknownCaller), c.DefaultQuery("type", "unknown")
	}

	var payload callEventPayload
	if err := c.ShouldBindJSON(&payload); err != nil || payload.CallerIDNumber == "" {
		return unknownCaller, defaultCallType
	}
	if payload.Event == "" {
		payload.Event = defaultCallType
	}
	return payload.CallerIDNumber, payload.Event
}
