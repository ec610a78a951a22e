package handlers

import (
	"net/http"
	"runtime"

	"github.com/sirupsen/logrus"
)

// RecoverWrapper wraps an http.HandlerFunc with panic recovery
func RecoverWrapper(handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				stack := make([]byte, 8*1024)
				stack = stack[:runtime.Stack(stack, false)]
				logrus.WithFields(logrus.Fields{
					"error": rec,
					"path":  r.URL.Path,
				}).Errorf("panic recovered\n%s", stack)
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}
		}()

		handler(w, r)
	}
}
