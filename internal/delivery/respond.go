package delivery

import (
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"
	json "github.com/goccy/go-json"

	"github.com/Vovarama1992/voice_agents/internal/domain"
)

type errorBody struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError answers {"detail": msg} and logs 4xx as warn, 5xx as error.
func writeError(w http.ResponseWriter, log *logger.ZapLogger, route string, status int, msg string, cause error) {
	level := "warn"
	if status >= http.StatusInternalServerError {
		level = "error"
	}
	log.Log(logger.LogEntry{
		Level:   level,
		Message: route + ": " + msg,
		Service: domain.ServiceName,
		Error:   cause,
	})

	writeJSON(w, status, errorBody{Detail: msg})
}

func writeDomainError(w http.ResponseWriter, log *logger.ZapLogger, route string, err error) {
	writeError(w, log, route, domain.StatusOf(err), err.Error(), err)
}
