package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/VivekbirN/SDP-project/insight"
)

// ChatRequest is the body of a chat message.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatReply is the advisor's answer.
type ChatReply struct {
	Reply string `json:"reply"`
}

// Chat answers a free-text question about the bills
// @Summary      Chat with the advisor
// @Description  Keyword-based advisor: greetings, saving tips, latest bill summaries and per-utility tips.
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        message  body      ChatRequest  true  "Message"
// @Success      200      {object}  Response{data=ChatReply}
// @Failure      400      {object}  Response{error=string}
// @Router       /chat [post]
// @Security     BasicAuth
func Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeError(w, http.StatusBadRequest, "Message is required")
		return
	}

	reply, err := insight.NewAdvisor(Store, slog.Default()).Reply(r.Context(), req.Message)
	if errors.Is(err, insight.ErrEmptyMessage) {
		writeError(w, http.StatusBadRequest, "Message is required")
		return
	}
	if err != nil {
		writeInternal(w, r, "failed to process chat message", err)
		return
	}
	writeJSON(w, http.StatusOK, ChatReply{Reply: reply})
}
