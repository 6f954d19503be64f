package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	platformgrpc "github.com/louisbranch/dicer/internal/platform/grpc"
	"github.com/louisbranch/dicer/internal/platform/timeouts"
	"github.com/louisbranch/dicer/internal/services/dice/api/grpc/diceservice"
	"github.com/louisbranch/dicer/internal/services/dice/roller"
	"github.com/louisbranch/dicer/internal/services/mcp/domain"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"google.golang.org/grpc"
)

const (
	// serverName identifies this MCP server to clients.
	serverName = "dicer MCP"
	// serverVersion identifies the MCP server version.
	serverVersion = "0.1.0"
)

// TransportKind identifies the MCP transport implementation.
type TransportKind string

const (
	// TransportStdio uses standard input/output for MCP.
	TransportStdio TransportKind = "stdio"
	// TransportHTTP runs MCP over streamable HTTP for remote clients.
	TransportHTTP TransportKind = "http"
)

// Config configures the MCP server.
type Config struct {
	// GRPCAddr points at a dice server. Empty rolls in-process.
	GRPCAddr  string
	Transport TransportKind
	HTTPAddr  string // defaults to localhost:8081 for HTTP transport
	// MaxDice caps in-process rolls; ignored when GRPCAddr is set.
	MaxDice uint64
	// AuthSecret requires HS256 bearer tokens on /mcp when set.
	AuthSecret string
	// MaxConnections caps concurrent HTTP connections; zero uses the default.
	MaxConnections int
}

type httpOptions struct {
	authSecret     string
	maxConnections int
}

// Server hosts the MCP server.
type Server struct {
	mcpServer   *mcp.Server
	conn        *grpc.ClientConn
	httpOptions httpOptions
}

// New creates an MCP server backed by r.
func New(r domain.Roller) (*Server, error) {
	return newServer(r, nil)
}

func newServer(r domain.Roller, conn *grpc.ClientConn) (*Server, error) {
	if r == nil {
		return nil, errors.New("dice roller is required")
	}
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)
	mcp.AddTool(mcpServer, domain.RollExpressionTool(), domain.RollExpressionHandler(r))
	mcp.AddTool(mcpServer, domain.NormalizeExpressionTool(), domain.NormalizeExpressionHandler(r))
	return &Server{mcpServer: mcpServer, conn: conn}, nil
}

// Run is the service entrypoint for MCP and blocks until context cancellation.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Transport == "" {
		cfg.Transport = TransportStdio
	}
	if cfg.Transport != TransportStdio && cfg.Transport != TransportHTTP {
		return fmt.Errorf("transport %q is not supported", cfg.Transport)
	}

	server, err := newConfiguredServer(ctx, cfg)
	if err != nil {
		return err
	}

	if cfg.Transport == TransportHTTP {
		server.httpOptions = httpOptions{authSecret: cfg.AuthSecret, maxConnections: cfg.MaxConnections}
		return server.serveHTTP(ctx, cfg.HTTPAddr)
	}
	return server.Serve(ctx)
}

func newConfiguredServer(ctx context.Context, cfg Config) (*Server, error) {
	addr := grpcAddress(cfg.GRPCAddr)
	if addr == "" {
		return New(roller.New(roller.WithMaxDice(cfg.MaxDice)))
	}
	conn, err := dialDiceGRPC(ctx, addr)
	if err != nil {
		return nil, err
	}
	server, err := newServer(diceservice.NewClient(conn), conn)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	return server, nil
}

// Serve starts the MCP server on stdio and blocks until it stops or the context ends.
func (s *Server) Serve(ctx context.Context) error {
	return s.serveWithTransport(ctx, &mcp.StdioTransport{})
}

// Close releases the gRPC connection held by the server.
func (s *Server) Close() error {
	if s == nil || s.conn == nil {
		return nil
	}
	if err := s.conn.Close(); err != nil {
		return err
	}
	s.conn = nil
	return nil
}

// serveWithTransport starts the MCP server using the provided transport and
// releases the gRPC connection when it stops.
func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		err = nil
	}
	closeErr := s.Close()
	if closeErr != nil {
		if err == nil {
			return fmt.Errorf("close gRPC connection: %w", closeErr)
		}
		return fmt.Errorf("serve MCP: %v; close gRPC connection: %w", err, closeErr)
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}

func dialDiceGRPC(ctx context.Context, addr string) (*grpc.ClientConn, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	logf := func(format string, args ...any) {
		log.Printf("dice %s", fmt.Sprintf(format, args...))
	}
	conn, err := platformgrpc.DialWithHealth(ctx, addr, diceservice.ServiceName, timeouts.GRPCDial, logf)
	if err != nil {
		var dialErr *platformgrpc.DialError
		if errors.As(err, &dialErr) {
			if dialErr.Stage == platformgrpc.DialStageConnect {
				return nil, fmt.Errorf("connect to dice server at %s: %w", addr, dialErr.Err)
			}
			return nil, dialErr.Err
		}
		return nil, err
	}
	return conn, nil
}

// grpcAddress resolves the dice server address from the explicit value or env.
func grpcAddress(fallback string) string {
	if strings.TrimSpace(fallback) != "" {
		return fallback
	}
	return strings.TrimSpace(os.Getenv("DICER_ADDR"))
}
