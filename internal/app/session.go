package app

import (
	"log/slog"
	"net/http"
)

type sessionKey string

// SessionKeyAccountId is written into the shared session store by the
// authentication service; this engine only reads it.
const SessionKeyAccountId = sessionKey("accountID")

func (s sessionKey) String() string {
	return string(s)
}

type contextKey string

const loggerContextKey = contextKey("logger")

func (app *Application) contextGetAccountId(r *http.Request) int64 {
	accountId, ok := r.Context().Value(SessionKeyAccountId).(int64)
	if !ok {
		panic("missing account id from context")
	}

	return accountId
}

func (app *Application) contextGetLogger(r *http.Request) *slog.Logger {
	logger, ok := r.Context().Value(loggerContextKey).(*slog.Logger)
	if !ok {
		return app.logger
	}

	return logger
}
