// ABOUTME: MCP server setup for the medcalc calculators and history log.
// ABOUTME: Wraps the MCP server with the history store and series extractor.
package mcp

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/log"
	"github.com/harperreed/medcalc/internal/series"
	"github.com/harperreed/medcalc/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with history and chart access.
type Server struct {
	mcpServer *mcp.Server
	history   *storage.History
	extractor *series.Extractor
	window    int
	logger    *log.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the server logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithExtractor sets the extractor used for chart tools and resources.
func WithExtractor(e *series.Extractor) Option {
	return func(s *Server) {
		if e != nil {
			s.extractor = e
		}
	}
}

// WithWindow sets the default chart window.
func WithWindow(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.window = n
		}
	}
}

// NewServer creates a new MCP server over the given history.
func NewServer(history *storage.History, opts ...Option) (*Server, error) {
	if history == nil {
		return nil, errors.New("history is required")
	}

	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "medcalc",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		history:   history,
		window:    series.DefaultWindow,
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.extractor == nil {
		s.extractor = series.NewExtractor(history)
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	s.logger.Info("mcp server starting", "records", s.history.Len())
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
