package middlewares

import (
	"dermacare-service/internal/app/config"
	"net/http"
	"time"
)

// RequestLogger is the plain-text access log, kept separate from the
// structured zap request log.
func (m *Middlewares) RequestLogger(appConfig config.App) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			next.ServeHTTP(w, r)
			duration := time.Since(start)

			tz, err := time.LoadLocation(appConfig.Timezone)
			if err != nil {
				m.AccessLog.Printf("Invalid time zone: %v", err)
				tz = time.UTC
			}

			m.AccessLog.Printf(`{%s} | {%s} | {%s} ==> {%s} | {%s}`, time.Now().In(tz).Format(time.RFC850), r.RemoteAddr, r.Method, r.RequestURI, duration)
		})
	}
}
