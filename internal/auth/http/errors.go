package http

import (
	"encoding/json"
	"net/http"

	"github.com/scanpass/scanpass/pkg/httpx"
	"github.com/scanpass/scanpass/pkg/slogx"
)

// internalError logs the failure and writes the 500 envelope. Outside
// production the underlying error is included as diagnostic detail.
func internalError(w http.ResponseWriter, r *http.Request, err error, dev bool) {
	slogx.FromContext(r.Context()).Error("internal error", "err", err)

	if dev {
		httpx.WriteErrorDetail(w, http.StatusInternalServerError, "Internal Server Error", err.Error())
		return
	}
	httpx.WriteError(w, http.StatusInternalServerError, "Internal Server Error")
}

// decodeJSON parses the request body into v, answering 400 itself when the
// body is not valid JSON. Returns false when the request was already handled.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}
