package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"supportdesk/internal/usecase"
	"supportdesk/pkg/errors"
	"supportdesk/pkg/response"
)

type ConversationHandler struct {
	conversationUseCase *usecase.ConversationUseCase
}

func NewConversationHandler(conversationUseCase *usecase.ConversationUseCase) *ConversationHandler {
	return &ConversationHandler{
		conversationUseCase: conversationUseCase,
	}
}

type sendReplyRequest struct {
	Text string `json:"text" validate:"required"`
}

type replyResponse struct {
	Status    string `json:"status"`
	PrimaryID string `json:"primary_id,omitempty"`
	MirrorID  string `json:"mirror_id,omitempty"`
}

// ListConversations returns the merged participant list with unread counts.
func (h *ConversationHandler) ListConversations(c echo.Context) error {
	summaries, err := h.conversationUseCase.ListConversations(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, summaries)
}

// GetThread returns one participant's conversation, oldest first.
func (h *ConversationHandler) GetThread(c echo.Context) error {
	uid := c.Param("uid")
	if uid == "" {
		return response.Error(c, errors.BadRequest("Participant uid is required", nil))
	}

	thread, err := h.conversationUseCase.Thread(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, thread)
}

// MarkThreadRead flags the participant's unread messages as read and reports
// how many updates were issued.
func (h *ConversationHandler) MarkThreadRead(c echo.Context) error {
	uid := c.Param("uid")
	if uid == "" {
		return response.Error(c, errors.BadRequest("Participant uid is required", nil))
	}

	updated, err := h.conversationUseCase.MarkThreadRead(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]int{"updated": updated})
}

// SendReply performs the dual write behind an admin reply. The response
// always carries the per-write outcome so a partial failure is never
// mistaken for success or total failure.
func (h *ConversationHandler) SendReply(c echo.Context) error {
	uid := c.Param("uid")

	var req sendReplyRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	outcome, err := h.conversationUseCase.SendReply(c.Request().Context(), uid, req.Text)
	if err != nil {
		return response.Error(c, err)
	}

	body := replyResponse{
		Status:    outcome.Status(),
		PrimaryID: outcome.PrimaryID,
		MirrorID:  outcome.MirrorID,
	}

	if body.Status == usecase.ReplyOK {
		return response.Created(c, body)
	}
	return response.Failure(c, http.StatusBadGateway, "REPLY_"+body.Status, "Reply write failed", body)
}
