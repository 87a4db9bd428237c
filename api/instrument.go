package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/urandom/feedkeeper/log"
)

var requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "feedkeeper_http_requests_total",
	Help: "Number of API requests, by method and status code",
}, []string{"method", "code"})

// instrument counts every request and, when access is set, writes an access
// log line for it.
func instrument(access bool, log log.Log) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			requestsTotal.WithLabelValues(r.Method, strconv.Itoa(status)).Inc()

			if access {
				log.Infof("%s %s %s %d %dB %s", r.RemoteAddr, r.Method, r.URL.RequestURI(), status, ww.BytesWritten(), time.Since(start))
			}
		})
	}
}
