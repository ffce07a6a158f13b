package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"nhooyr.io/websocket"

	"github.com/aristath/pharmacast/internal/modules/projection"
)

const streamWriteTimeout = 10 * time.Second

// HandleStream handles GET /api/projection/stream.
//
// The dashboard opens one WebSocket and sends an Assumptions JSON message on
// every slider change; each message gets exactly one reply, either the
// Projection or a validation error envelope. This keeps slider-drag
// recomputation off the HTTP request path. Every computation is still
// synchronous and independent - the connection carries no state beyond the
// socket itself.
func (h *Handler) HandleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		// Same-host dashboard plus dev frontends on other ports.
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to accept WebSocket connection")
		return
	}
	defer conn.Close(websocket.StatusInternalError, "stream terminated")

	h.log.Debug().Str("remote", r.RemoteAddr).Msg("Projection stream opened")

	ctx := r.Context()
	for {
		msgType, message, err := conn.Read(ctx)
		if err != nil {
			closeStatus := websocket.CloseStatus(err)
			if closeStatus == websocket.StatusNormalClosure || closeStatus == websocket.StatusGoingAway {
				h.log.Debug().Int("status", int(closeStatus)).Msg("Projection stream closed normally")
			} else if ctx.Err() == nil {
				h.log.Warn().Err(err).Msg("Projection stream read error")
			}
			return
		}

		if msgType != websocket.MessageText {
			h.log.Debug().Int("type", int(msgType)).Msg("Ignoring non-text stream message")
			continue
		}

		reply := h.computeStreamReply(message)
		if err := writeStreamMessage(ctx, conn, reply); err != nil {
			h.log.Warn().Err(err).Msg("Failed to write projection stream reply")
			return
		}
	}
}

// computeStreamReply turns one inbound assumptions message into a reply
// payload, mapping failures onto the same error envelope as the HTTP API.
func (h *Handler) computeStreamReply(message []byte) interface{} {
	var assumptions projection.Assumptions
	if err := json.Unmarshal(message, &assumptions); err != nil {
		return errorResponse{Error: "Invalid assumptions message: " + err.Error()}
	}

	result, err := h.service.Compute(assumptions)
	if err != nil {
		var invalid *projection.InvalidAssumptionError
		if errors.As(err, &invalid) {
			return errorResponse{Error: invalid.Error(), Field: invalid.Field}
		}
		return errorResponse{Error: "Projection failed: " + err.Error()}
	}
	return result
}

func writeStreamMessage(ctx context.Context, conn *websocket.Conn, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	writeCtx, cancel := context.WithTimeout(ctx, streamWriteTimeout)
	defer cancel()

	return conn.Write(writeCtx, websocket.MessageText, data)
}
