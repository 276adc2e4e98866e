package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/fwojciec/apidoc"
)

// codes maps apidoc error codes to HTTP status codes.
var codes = map[string]int{
	apidoc.ENOTFOUND:    http.StatusNotFound,
	apidoc.EINVALID:     http.StatusBadRequest,
	apidoc.EUNAVAILABLE: http.StatusServiceUnavailable,
	apidoc.EMALFORMED:   http.StatusInternalServerError,
	apidoc.EINTERNAL:    http.StatusInternalServerError,
}

// ErrorStatusCode returns the HTTP status code for an apidoc error code.
func ErrorStatusCode(code string) int {
	if status, ok := codes[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// ErrorResponse is the JSON body written for failed requests.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Code    string   `json:"code"`
	Related []string `json:"related,omitempty"`
}

// Error writes err as a JSON error response. Internal errors are logged and
// their details withheld from the client.
func Error(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	code, message := apidoc.ErrorCode(err), apidoc.ErrorMessage(err)
	status := ErrorStatusCode(code)
	if status == http.StatusInternalServerError && logger != nil {
		logger.Error("http error", "method", r.Method, "path", r.URL.Path, "err", err)
	}
	writeJSON(w, status, ErrorResponse{Error: message, Code: code})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
