package middleware

import "net/http"

// CORSMiddleware answers preflight requests itself and stamps every response
// with the configured origin.
type CORSMiddleware struct {
	origin string
}

// NewCORSMiddleware allows every origin when origin is empty.
func NewCORSMiddleware(origin string) *CORSMiddleware {
	if origin == "" {
		origin = "*"
	}
	return &CORSMiddleware{origin: origin}
}

func (m *CORSMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", m.origin)
		if m.origin != "*" {
			w.Header().Add("Vary", "Origin")
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if req.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, req)
	})
}
