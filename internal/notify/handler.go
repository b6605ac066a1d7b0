package notify

import (
	"fmt"
	"net/http"
	"time"

	"callscreen_backend/platform/apperr"
	"callscreen_backend/platform/httpkit"
	"callscreen_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// Handler handles notification HTTP requests.
type Handler struct {
	commander *Commander
	sender    *Sender
	val       *validator.Validator
}

// NewHandler creates a new notify handler.
func NewHandler(commander *Commander, sender *Sender, val *validator.Validator) *Handler {
	return &Handler{commander: commander, sender: sender, val: val}
}

// TelegramWebhookRequest is the update payload the Bot API posts.
type TelegramWebhookRequest struct {
	Message *struct {
		Text string `json:"text" validate:"required"`
		Chat struct {
			ID int64 `json:"id"`
		} `json:"chat"`
	} `json:"message" validate:"required"`
}

// HandleTelegramWebhook processes inbound bot updates.
// POST /webhook/telegram
func (h *Handler) HandleTelegramWebhook(c *gin.Context) {
	var req TelegramWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.HandleError(c, apperr.BadRequest("payload invalide"))
		return
	}
	if err := h.val.Struct(req); err != nil {
		// Updates without message text (edits, joins, stickers) are normal.
		c.JSON(http.StatusOK, gin.H{"status": "no_text"})
		return
	}

	result, err := h.commander.Execute(c.Request.Context(), req.Message.Text)
	if httpkit.HandleError(c, err) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success", "result": result})
}

// HandleTestMessage sends a test message to the configured chat.
// GET /test-telegram
func (h *Handler) HandleTestMessage(c *gin.Context) {
	if !h.sender.Configured() {
		httpkit.HandleError(c, apperr.Unavailable("canal Telegram non configuré"))
		return
	}

	message := fmt.Sprintf("⚡ Test canal Telegram - %s", time.Now().Format("15:04:05"))
	if err := h.sender.SendMessage(c.Request.Context(), message); err != nil {
		httpkit.HandleError(c, apperr.Wrap(apperr.KindInternal, "envoi du message de test impossible", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// HandleFixWebhook points the bot webhook at this deployment.
// GET /fix-webhook
func (h *Handler) HandleFixWebhook(c *gin.Context) {
	if !h.sender.Configured() {
		httpkit.HandleError(c, apperr.Unavailable("canal Telegram non configuré"))
		return
	}

	webhookURL, err := h.sender.RegisterWebhook(requestBaseURL(c))
	if err != nil {
		httpkit.HandleError(c, apperr.Wrap(apperr.KindInternal, "configuration du webhook impossible", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      "success",
		"webhook_url": webhookURL,
	})
}

// requestBaseURL reconstructs the externally visible base URL, honoring the
// proxy headers the hosting platform sets.
func requestBaseURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host
}
