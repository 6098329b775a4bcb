package telemetry

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server — необязательный HTTP-сервер, отдающий /metrics (Prometheus) и
// /healthz. Слушает адрес, переданный в NewServer; в cmd/taevo сервер
// по умолчанию не запускается (пустой metrics_addr).
type Server struct {
	httpSrv *http.Server
}

// NewServer строит chi-роутер с эндпоинтами /metrics и /healthz.
func NewServer(addr string) *Server {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	return &Server{httpSrv: &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}}
}

// Start запускает сервер в отдельной горутине. Ошибки, отличные от
// http.ErrServerClosed, логируются.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.httpSrv.Addr)
	if err != nil {
		return err
	}
	go func() {
		if err := s.httpSrv.Serve(ln); err != nil && err != http.ErrServerClosed {
			Logger().WithError(err).Error("telemetry: сервер завершился с ошибкой")
		}
	}()
	return nil
}

// Shutdown останавливает сервер, ожидая завершения текущих запросов.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}
