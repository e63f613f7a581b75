/*
Package handler provides HTTP handler functions for the AI chat screen.

Each user submission produces exactly two transcript entries: the user message
and one assistant reply, which may be a fallback notice when the remote AI is
slow or unreachable. The transcript is append-only and lives in memory for the
process lifetime. A WebSocket variant relays messages through the same bridge,
serialized per connection.
*/
package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"mindcampus/internal/app/bridge"
	"mindcampus/internal/pkg/auth/jwt"
	"mindcampus/internal/pkg/errs"
	"mindcampus/internal/pkg/logx"
	"mindcampus/internal/pkg/req"
	"mindcampus/internal/pkg/resp"
)

// MaxChatMessageBytes is the maximum accepted chat message length.
const MaxChatMessageBytes = 5000

type ChatInput struct {
	Message string `json:"message"`
}

// HandleChatMessage forwards one user message to the AI bridge and responds
// with the two transcript entries the exchange produced.
func HandleChatMessage(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input ChatInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		message := strings.TrimSpace(input.Message)
		if message == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrMessageEmpty))
			return
		}
		if len(message) > MaxChatMessageBytes {
			resp.RespondError(w, r, errs.NewError(errs.ErrMessageContentTooLong))
			return
		}

		userMsg := deps.Transcript.Append(message, bridge.SenderUser)

		reply := deps.Bridge.Ask(r.Context(), message)

		aiMsg := deps.Transcript.Append(reply, bridge.SenderAI)

		resp.RespondSuccess(w, r, map[string]any{
			"messages": []bridge.Message{userMsg, aiMsg},
		})
	}
}

// HandleChatTranscript returns the full transcript in append order.
func HandleChatTranscript(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp.RespondSuccess(w, r, map[string]any{
			"messages": deps.Transcript.Entries(),
		})
	}
}

const (
	// wsWriteWait bounds each write to the WebSocket connection.
	wsWriteWait = 10 * time.Second

	// wsIdleWait closes a chat socket with no inbound traffic. It exceeds the
	// bridge reply bound so a slow AI answer never kills the connection.
	wsIdleWait = 10 * time.Minute
)

// wsChatInbound is a message received on the chat socket.
type wsChatInbound struct {
	Message string `json:"message"`
}

// wsChatOutbound is a frame written to the chat socket: either an error or the
// transcript entries produced by one exchange.
type wsChatOutbound struct {
	Error    *resp.JSONResponse `json:"error,omitempty"`
	Messages []bridge.Message   `json:"messages,omitempty"`
}

// HandleChatWS upgrades the connection and relays each inbound message through
// the AI bridge. Messages on one connection are processed strictly in order,
// which keeps at most one bridge call in flight per chat screen.
func HandleChatWS(deps *AppDeps, upgrader websocket.Upgrader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logx.Error(err, "Failed to upgrade chat connection to WebSocket")
			return
		}
		defer conn.Close()

		conn.SetReadLimit(MaxChatMessageBytes + 1024)

		identityID := "anonymous"
		if payload := jwt.GetPayloadFromContext(r); payload != nil {
			identityID = payload.ID
		}
		logx.Info("Chat WebSocket connection established", "remote", r.RemoteAddr, "identity_id", identityID)

		for {
			if err := conn.SetReadDeadline(time.Now().Add(wsIdleWait)); err != nil {
				logx.Error(err, "Failed to set chat socket read deadline")
				return
			}

			_, raw, err := conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					logx.Info("Chat socket closed", "error", err.Error())
				}
				return
			}

			var inbound wsChatInbound
			if err := json.Unmarshal(raw, &inbound); err != nil {
				writeChatFrame(conn, wsChatOutbound{Error: chatErrorFrame(errs.NewError(errs.ErrInvalidJSONFormat))})
				continue
			}

			message := strings.TrimSpace(inbound.Message)
			if message == "" {
				writeChatFrame(conn, wsChatOutbound{Error: chatErrorFrame(errs.NewError(errs.ErrMessageEmpty))})
				continue
			}
			if len(message) > MaxChatMessageBytes {
				writeChatFrame(conn, wsChatOutbound{Error: chatErrorFrame(errs.NewError(errs.ErrMessageContentTooLong))})
				continue
			}

			userMsg := deps.Transcript.Append(message, bridge.SenderUser)
			reply := deps.Bridge.Ask(r.Context(), message)
			aiMsg := deps.Transcript.Append(reply, bridge.SenderAI)

			if !writeChatFrame(conn, wsChatOutbound{Messages: []bridge.Message{userMsg, aiMsg}}) {
				return
			}
		}
	}
}

// chatErrorFrame converts a CustomError into the socket error frame shape.
func chatErrorFrame(customErr *errs.CustomError) *resp.JSONResponse {
	return &resp.JSONResponse{
		Code:    customErr.Code,
		Message: customErr.Message,
	}
}

// writeChatFrame marshals and writes one outbound frame. It reports whether the
// connection is still usable.
func writeChatFrame(conn *websocket.Conn, frame wsChatOutbound) bool {
	payload, err := json.Marshal(frame)
	if err != nil {
		logx.Error(err, "Failed to marshal chat socket frame")
		return false
	}

	if err := conn.SetWriteDeadline(time.Now().Add(wsWriteWait)); err != nil {
		logx.Error(err, "Failed to set chat socket write deadline")
		return false
	}

	if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		logx.Error(err, "Failed to write chat socket frame")
		return false
	}

	return true
}
