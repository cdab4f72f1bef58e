package api

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/nyashahama/wellbeing-risk-engine/internal/chat"
	"github.com/nyashahama/wellbeing-risk-engine/internal/risk"
)

// ─── POST /api/chat/messages ─────────────────────────────────────────────────
//
// Classifies one user message and returns it together with the assistant's
// reply. Nothing is stored; the client keeps the conversation.

const maxChatMessageRunes = 4000

type chatMessageRequest struct {
	Content string `json:"content"`
}

type chatMessageResponse struct {
	Message chat.Message `json:"message"`
	Reply   chat.Message `json:"reply"`
}

func (s *Server) handlePostChatMessage(w http.ResponseWriter, r *http.Request) {
	var req chatMessageRequest
	if !decode(w, r, &req) {
		return
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		respondErr(w, http.StatusBadRequest, "content must not be empty")
		return
	}
	if utf8.RuneCountInString(content) > maxChatMessageRunes {
		respondErr(w, http.StatusBadRequest, "content is too long")
		return
	}

	now := s.now().UTC()
	msg := chat.NewUserMessage(content, now)
	severity := *msg.Severity
	s.metrics.ObserveChat(severity)

	if severity == risk.Crisis {
		// The content itself stays out of the logs.
		s.logger.Warn("chat: crisis severity detected", logField(r))
	}

	reply := chat.NewAssistantMessage(s.responder.Respond(content, severity), now)
	respond(w, http.StatusOK, chatMessageResponse{Message: msg, Reply: reply})
}
