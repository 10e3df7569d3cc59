package api

import (
	"net/http"
)

type cancelRequest struct {
	Reason string `json:"reason"`
}

// GetTransactionHandler handles GET /transactions/{transactionId}
func (h *HandlerProvider) GetTransactionHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "transactionId")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	txn, err := h.svc.GetTransaction(r.Context(), caller(r), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTransaction(txn))
}

// ListCancellationsHandler handles GET /transactions/{transactionId}/cancellations
func (h *HandlerProvider) ListCancellationsHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "transactionId")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	list, err := h.svc.ListCancellations(r.Context(), caller(r), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, mapSlice(list, toCancellation))
}

// CompleteTransactionHandler handles POST /transactions/{transactionId}/complete
func (h *HandlerProvider) CompleteTransactionHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "transactionId")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	txn, err := h.svc.Complete(r.Context(), caller(r), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTransaction(txn))
}

// CancelTransactionHandler handles POST /transactions/{transactionId}/cancel
func (h *HandlerProvider) CancelTransactionHandler(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "transactionId")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req cancelRequest

	err = decodeJSON(w, r, &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	txn, err := h.svc.Cancel(r.Context(), caller(r), id, req.Reason)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTransaction(txn))
}
