package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/louisbranch/dicer/internal/platform/timeouts"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/net/netutil"
	"google.golang.org/grpc"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
)

const defaultHTTPAddr = "localhost:8081"

// defaultMaxConnections caps concurrent MCP HTTP connections.
const defaultMaxConnections = 64

// healthCheckInterval spaces dice server health probes during HTTP serving.
const healthCheckInterval = 30 * time.Second

// serveHTTP listens on addr and serves MCP over streamable HTTP.
func (s *Server) serveHTTP(ctx context.Context, addr string) error {
	if addr == "" {
		addr = defaultHTTPAddr
	}
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		_ = s.Close()
		return fmt.Errorf("listen on %s: %w", addr, err)
	}
	return s.serveHTTPListener(ctx, listener)
}

// serveHTTPListener serves /mcp and /mcp/health on listener until ctx ends.
func (s *Server) serveHTTPListener(ctx context.Context, listener net.Listener) error {
	if s == nil || s.mcpServer == nil {
		_ = listener.Close()
		return fmt.Errorf("MCP server is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	defer func() {
		if err := s.Close(); err != nil {
			log.Printf("close gRPC connection: %v", err)
		}
	}()

	healthCtx, healthCancel := context.WithCancel(ctx)
	defer healthCancel()
	go monitorHealth(healthCtx, s.conn)

	maxConnections := s.httpOptions.maxConnections
	if maxConnections <= 0 {
		maxConnections = defaultMaxConnections
	}
	listener = netutil.LimitListener(listener, maxConnections)

	httpServer := &http.Server{
		Handler:           s.httpHandler(),
		ReadHeaderTimeout: timeouts.ReadHeader,
	}

	log.Printf("Starting MCP HTTP server on %s", listener.Addr())
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- httpServer.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		log.Printf("Shutting down MCP HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("MCP HTTP graceful shutdown: %v", err)
			_ = httpServer.Close()
		}
		return nil
	case err := <-serveErr:
		if err == nil || errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve MCP HTTP: %w", err)
	}
}

func (s *Server) httpHandler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/mcp", newBearerAuth(s.httpOptions.authSecret).wrap(mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.mcpServer
	}, nil)))
	mux.HandleFunc("/mcp/health", handleHealth)
	return mux
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		log.Printf("Failed to write health response: %v", err)
	}
}

// monitorHealth logs dice server health failures without stopping the HTTP
// server. It returns immediately when rolling in-process.
func monitorHealth(ctx context.Context, conn *grpc.ClientConn) {
	if conn == nil {
		return
	}
	healthClient := grpc_health_v1.NewHealthClient(conn)
	ticker := time.NewTicker(healthCheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			callCtx, cancel := context.WithTimeout(ctx, timeouts.GRPCRequest)
			response, err := healthClient.Check(callCtx, &grpc_health_v1.HealthCheckRequest{Service: ""})
			cancel()

			if err != nil {
				log.Printf("gRPC health check failed: %v", err)
			} else if response.GetStatus() != grpc_health_v1.HealthCheckResponse_SERVING {
				log.Printf("gRPC health check status: %s", response.GetStatus().String())
			}
		}
	}
}
