package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Srujankatukam/job-nova/internal/interfaces/httpserver/handlers"
	"github.com/Srujankatukam/job-nova/internal/interfaces/httpserver/requests"
	"github.com/Srujankatukam/job-nova/internal/interfaces/httpserver/responses"
	"github.com/Srujankatukam/job-nova/internal/utils/platformerrors"
)

// RegisterAvatarRoutes registers the avatar session and conversation routes.
func RegisterAvatarRoutes(router gin.IRoutes, handler *handlers.AvatarHandler) {
	router.POST("/avatar/generate", generateAvatar(handler))
	router.GET("/avatar/status/:sessionId", avatarStatus(handler))
	router.POST("/avatar/livekit/token", livekitToken(handler))

	router.POST("/avatar/tavus/start", startConversation(handler))
	router.POST("/avatar/tavus/send", sendMessage(handler))
	router.GET("/avatar/tavus/status/:id", conversationStatus(handler))
	router.DELETE("/avatar/tavus/end/:id", endConversation(handler))
}

// generateAvatar godoc
// @Summary      Start avatar generation
// @Description  Creates a session and starts the avatar generation workflow in the background.
// @Tags         Avatar API
// @Accept       json
// @Produce      json
// @Param        request body requests.GenerateRequest true "Script to generate"
// @Success      200 {object} responses.GenerateResponse
// @Failure      400 {object} platformerrors.HTTPErrorResponse
// @Failure      500 {object} platformerrors.HTTPErrorResponse
// @Router       /avatar/generate [post]
func generateAvatar(handler *handlers.AvatarHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req requests.GenerateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "text must be between 1 and 5000 characters")
			return
		}

		snap, err := handler.StartGeneration(c.Request.Context(), req.Text)
		if err != nil {
			responses.HandleError(c, err, "failed to start generation")
			return
		}

		c.JSON(http.StatusOK, responses.GenerateResponse{
			SessionID: snap.ID,
			Status:    snap.Status,
		})
	}
}

// avatarStatus godoc
// @Summary      Get session status
// @Description  Returns the last committed snapshot for a session.
// @Tags         Avatar API
// @Produce      json
// @Param        sessionId path string true "Session ID"
// @Success      200 {object} responses.StatusResponse
// @Failure      404 {object} platformerrors.HTTPErrorResponse
// @Router       /avatar/status/{sessionId} [get]
func avatarStatus(handler *handlers.AvatarHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("sessionId")

		snap, err := handler.GetSession(c.Request.Context(), id)
		if err != nil {
			responses.HandleError(c, err, "session not found")
			return
		}

		c.JSON(http.StatusOK, responses.NewStatusResponse(snap))
	}
}

// livekitToken godoc
// @Summary      Generate a LiveKit access token
// @Description  Mints a join token for a participant. Used for joining rooms and refreshing expired tokens.
// @Tags         Avatar API
// @Accept       json
// @Produce      json
// @Param        request body requests.TokenRequest true "Room and participant"
// @Success      200 {object} responses.TokenResponse
// @Failure      400 {object} platformerrors.HTTPErrorResponse
// @Failure      502 {object} platformerrors.HTTPErrorResponse
// @Router       /avatar/livekit/token [post]
func livekitToken(handler *handlers.AvatarHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req requests.TokenRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "roomName is required")
			return
		}

		token, url, _, err := handler.IssueToken(req.RoomName, req.ParticipantName)
		if err != nil {
			responses.HandleError(c, err, "failed to generate token")
			return
		}

		c.JSON(http.StatusOK, responses.TokenResponse{
			Token:    token,
			URL:      url,
			RoomName: req.RoomName,
		})
	}
}

// startConversation godoc
// @Summary      Start a persona conversation
// @Description  Creates a Tavus persona conversation. The returned conversation URL carries the WebRTC connection details.
// @Tags         Avatar API
// @Accept       json
// @Produce      json
// @Param        request body requests.ConversationStartRequest true "Conversation options"
// @Success      200 {object} responses.ConversationStartResponse
// @Failure      502 {object} platformerrors.HTTPErrorResponse
// @Router       /avatar/tavus/start [post]
func startConversation(handler *handlers.AvatarHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req requests.ConversationStartRequest
		if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
			responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "invalid request body")
			return
		}

		conv, err := handler.StartConversation(c.Request.Context(), req.ConversationName, req.CustomGreeting)
		if err != nil {
			responses.HandleError(c, err, "failed to start conversation")
			return
		}

		c.JSON(http.StatusOK, responses.ConversationStartResponse{
			ConversationID:  conv.ID,
			LiveKitRoomName: "tavus_" + conv.ID,
			LiveKitToken:    conv.URL,
			LiveKitURL:      conv.URL,
			TavusData:       conv,
			Status:          "active",
		})
	}
}

// sendMessage godoc
// @Summary      Send a message to a conversation
// @Description  Records a text message for an active conversation. Real-time delivery happens over the LiveKit data channel.
// @Tags         Avatar API
// @Accept       json
// @Produce      json
// @Param        request body requests.ConversationSendRequest true "Message"
// @Success      200 {object} responses.MessageSentResponse
// @Failure      400 {object} platformerrors.HTTPErrorResponse
// @Router       /avatar/tavus/send [post]
func sendMessage(handler *handlers.AvatarHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req requests.ConversationSendRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "conversation_id and text are required")
			return
		}

		if err := handler.SendMessage(c.Request.Context(), req.ConversationID, req.Text); err != nil {
			responses.HandleError(c, err, "failed to send message")
			return
		}

		c.JSON(http.StatusOK, responses.MessageSentResponse{
			Success: true,
			Message: "Message sent successfully",
		})
	}
}

// conversationStatus godoc
// @Summary      Get conversation status
// @Tags         Avatar API
// @Produce      json
// @Param        id path string true "Conversation ID"
// @Success      200 {object} responses.ConversationStatusResponse
// @Failure      502 {object} platformerrors.HTTPErrorResponse
// @Router       /avatar/tavus/status/{id} [get]
func conversationStatus(handler *handlers.AvatarHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		conv, err := handler.ConversationStatus(c.Request.Context(), id)
		if err != nil {
			responses.HandleError(c, err, "failed to get conversation status")
			return
		}

		status := conv.Status
		if status == "" {
			status = "unknown"
		}
		c.JSON(http.StatusOK, responses.ConversationStatusResponse{
			ConversationID: id,
			Status:         status,
		})
	}
}

// endConversation godoc
// @Summary      End a conversation
// @Description  Ends a persona conversation and tears down the associated room.
// @Tags         Avatar API
// @Produce      json
// @Param        id path string true "Conversation ID"
// @Success      200 {object} responses.ConversationEndResponse
// @Router       /avatar/tavus/end/{id} [delete]
func endConversation(handler *handlers.AvatarHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		ok := handler.EndConversation(c.Request.Context(), id)

		msg := "Conversation ended successfully"
		if !ok {
			msg = "Failed to end conversation"
		}
		c.JSON(http.StatusOK, responses.ConversationEndResponse{
			ConversationID: id,
			Success:        ok,
			Message:        msg,
		})
	}
}
