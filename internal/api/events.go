package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/fastprodman/cardescrow/internal/feed"
)

const heartbeatInterval = 15 * time.Second

// TransactionEventsHandler handles GET /transactions/{transactionId}/events
//
// Streams the transaction's changes as Server-Sent Events, starting with its
// current state. Only the buyer and the seller may subscribe.
func (h *HandlerProvider) TransactionEventsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "transactionId")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if h.feed == nil {
		writeError(w, http.StatusServiceUnavailable, "realtime feed disabled")
		return
	}

	ctx := r.Context()

	sub, err := h.feed.Subscribe(ctx, feed.RecordChannel(feed.TableTransactions, id))
	if err != nil {
		slog.ErrorContext(ctx, "feed subscribe failed", "transaction_id", id, "error", err)
		writeError(w, http.StatusServiceUnavailable, "realtime feed unavailable")
		return
	}
	defer func() { _ = sub.Close() }()

	// Subscribed first so nothing between this read and the stream is lost.
	txn, err := h.svc.GetTransaction(ctx, caller(r), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	rc := http.NewResponseController(w)

	// Streams outlive the server's write timeout.
	_ = rc.SetWriteDeadline(time.Time{})

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	err = writeEvent(w, rc, feed.Event{
		Table:    feed.TableTransactions,
		RecordID: txn.ID,
		Type:     feed.EventUpdate,
		Status:   string(txn.Status),
		At:       time.Now().UTC(),
	})
	if err != nil {
		return
	}

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-heartbeat.C:
			_, err = fmt.Fprint(w, ": ping\n\n")
			if err == nil {
				err = rc.Flush()
			}
		case e, ok := <-sub.Events():
			if !ok {
				return
			}

			err = writeEvent(w, rc, e)
		}

		if err != nil {
			slog.DebugContext(ctx, "event stream closed", "transaction_id", id, "error", err)
			return
		}
	}
}

func writeEvent(w http.ResponseWriter, rc *http.ResponseController, e feed.Event) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", e.Type, payload)
	if err != nil {
		return fmt.Errorf("write event: %w", err)
	}

	return rc.Flush()
}
