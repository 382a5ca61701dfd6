package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/gigmarket/internal/domain"
	"github.com/fsdevblog/gigmarket/internal/service"
	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	chatSvs ChatServicer
}

func NewChatHandler(chatSvs ChatServicer) *ChatHandler {
	return &ChatHandler{chatSvs: chatSvs}
}

// Index GET RouteGroup + OrderChatRoute и RouteGroup + AdminChatRoute. Права проверяет сервис.
func (h *ChatHandler) Index(c *gin.Context) {
	orderID, ok := paramID(c, "id")
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	msgs, err := h.chatSvs.Log(reqCtx, getUserIDFromContext(c), orderID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	response := make([]ChatMessageResponse, len(msgs))
	for i := range msgs {
		response[i] = newChatMessageResponse(&msgs[i])
	}
	c.JSON(http.StatusOK, response)
}

type SendMessageParams struct {
	ContentKind   domain.ContentKind `binding:"required,oneof=text photo document" json:"content_kind"`
	Text          string             `binding:"max_bytes=16384"                    json:"text"`
	AttachmentRef string             `binding:"max_bytes=512"                      json:"attachment_ref"`
}

// Send POST RouteGroup + OrderChatRoute. Сообщение пересылается второй стороне заказа.
func (h *ChatHandler) Send(c *gin.Context) {
	orderID, ok := paramID(c, "id")
	if !ok {
		return
	}
	var params SendMessageParams
	if !bindJSON(c, &params) {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	msg, err := h.chatSvs.Send(reqCtx, service.SendMessageArgs{
		SenderID:      getUserIDFromContext(c),
		OrderID:       orderID,
		ContentKind:   params.ContentKind,
		Text:          params.Text,
		AttachmentRef: params.AttachmentRef,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newChatMessageResponse(msg))
}
