package status

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hustler-ledger/ledger-server/internal/logging"
	"github.com/hustler-ledger/ledger-server/internal/service"
)

// Response is the body of GET /status.
type Response struct {
	Status string `json:"status"`
	Mode   string `json:"mode"`
}

type Handler struct {
	Mode service.Mode
}

func NewHandler(mode service.Mode) Handler {
	return Handler{Mode: mode}
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != "GET" {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	logData.AddData("mode", h.Mode)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(Response{Status: "ok", Mode: string(h.Mode)})
}
