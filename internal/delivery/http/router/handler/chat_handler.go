package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ChatHandler holds dependencies for shopping assistant handlers.
type ChatHandler struct {
	uc     usecase.ChatUsecase
	logger *slog.Logger
}

// NewChatHandler is the constructor for ChatHandler, injected by Fx.
func NewChatHandler(uc usecase.ChatUsecase, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{
		uc:     uc,
		logger: logger,
	}
}

// SendMessage records a shopper utterance and returns the assistant's reply.
// Anonymous shoppers may chat before logging in; once authenticated, their
// session is claimed by their account.
func (h *ChatHandler) SendMessage(c echo.Context) error {
	var input *usecase.SendChatMessageInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid chat input")
	}
	if input == nil {
		return response.BadRequest(c, "INVALID_INPUT", "Message body is required")
	}

	// The account ID comes from the token, never from the body.
	input.UserID = nil
	if userID, ok := currentUserID(c); ok {
		input.UserID = &userID
	}

	output, err := h.uc.SendMessage(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Message processed successfully")
}

// GetHistory returns a session's full message history, oldest first.
func (h *ChatHandler) GetHistory(c echo.Context) error {
	sessionID := c.Param("sessionId")
	if sessionID == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Session ID is required")
	}

	session, err := h.uc.GetHistory(c.Request().Context(), sessionID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, session, "History retrieved successfully")
}
