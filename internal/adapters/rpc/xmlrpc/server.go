package xmlrpc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"

	"pkt.systems/pslog"
)

const maxRequestBytes = 1 << 20

type HandlerFunc func(ctx context.Context, params []any) (any, error)

// Server dispatches XML-RPC calls posted to it by method name.
type Server struct {
	mu       sync.RWMutex
	handlers map[string]HandlerFunc
	logger   pslog.Logger
}

var _ http.Handler = (*Server)(nil)

func NewServer(logger pslog.Logger) *Server {
	if logger == nil {
		logger = pslog.NoopLogger()
	}

	return &Server{
		handlers: make(map[string]HandlerFunc),
		logger:   logger,
	}
}

func (s *Server) Register(method string, handler HandlerFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.handlers[method] = handler
}

func (s *Server) Methods() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	methods := make([]string, 0, len(s.handlers))
	for method := range s.handlers {
		methods = append(methods, method)
	}
	return methods
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	method, params, err := DecodeCall(io.LimitReader(r.Body, maxRequestBytes))
	if err != nil {
		s.logger.Warn("xmlrpc.request.malformed", "remote", r.RemoteAddr, "error", err)
		s.writeFault(w, &Fault{Code: FaultParse, Message: "parse error"})
		return
	}

	s.mu.RLock()
	handler, ok := s.handlers[method]
	s.mu.RUnlock()
	if !ok {
		s.logger.Warn("xmlrpc.method.unknown", "method", method, "remote", r.RemoteAddr)
		s.writeFault(w, &Fault{Code: FaultMethodNotFound, Message: fmt.Sprintf("method %q not found", method)})
		return
	}

	result, err := handler(r.Context(), params)
	if err != nil {
		var fault *Fault
		if !errors.As(err, &fault) {
			fault = &Fault{Code: FaultInternal, Message: err.Error()}
		}
		s.logger.Warn("xmlrpc.method.failed", "method", method, "error", err)
		s.writeFault(w, fault)
		return
	}

	body, err := EncodeResponse(result)
	if err != nil {
		s.logger.Error("xmlrpc.response.encode_failed", "method", method, "error", err)
		s.writeFault(w, &Fault{Code: FaultInternal, Message: "encode response"})
		return
	}

	s.write(w, body)
}

func (s *Server) writeFault(w http.ResponseWriter, fault *Fault) {
	body, err := EncodeFault(fault)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s.write(w, body)
}

func (s *Server) write(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "text/xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		s.logger.Debug("xmlrpc.response.write_failed", "error", err)
	}
}
