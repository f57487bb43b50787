// Package mcpserver implements a Model Context Protocol (MCP) server for the
// expert panel using the mcp-go library.
//
// This package exposes the nomination engine and the reasoning framework
// catalog to AI assistants through a standardized protocol. The server
// communicates via stdin/stdout using JSON-RPC 2.0 as specified by the MCP
// standard, so nothing else may write to stdout while it runs.
package mcpserver

import (
	"fmt"

	"github.com/mark3labs/mcp-go/server"

	"github.com/daniel/expert-panel/internal/logging"
	"github.com/daniel/expert-panel/internal/nominate"
	"github.com/daniel/expert-panel/internal/reasoning"
	"github.com/daniel/expert-panel/internal/scoring"
	"github.com/daniel/expert-panel/internal/taxonomy"
	"github.com/daniel/expert-panel/internal/terms"
)

// serverName and serverVersion identify this server to MCP clients.
const (
	serverName    = "expert-panel"
	serverVersion = "1.0.0"
)

// Server represents an MCP server instance using mcp-go
type Server struct {
	catalog   *taxonomy.Catalog
	terms     *terms.Store
	scorer    *scoring.Scorer
	ranker    *nominate.Ranker
	engine    *reasoning.Engine
	logger    *logging.AppLogger
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server instance
func NewServer(catalog *taxonomy.Catalog, store *terms.Store, engine *reasoning.Engine, logger *logging.AppLogger) (*Server, error) {
	if catalog == nil || store == nil || engine == nil {
		return nil, fmt.Errorf("catalog, terms, and engine are required")
	}

	scorer := scoring.New(catalog, store, scoring.NewWeights())

	s := &Server{
		catalog: catalog,
		terms:   store,
		scorer:  scorer,
		ranker:  nominate.New(scorer),
		engine:  engine,
		logger:  logger,
	}

	s.mcpServer = server.NewMCPServer(serverName, serverVersion)
	s.registerTools()

	return s, nil
}

// Start begins serving MCP requests over stdio. It blocks until the client
// closes the transport.
func (s *Server) Start() error {
	s.logger.Info("MCP server starting on stdio",
		"name", serverName,
		"version", serverVersion,
		"roles", s.catalog.Len())

	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("MCP server failed: %w", err)
	}

	return nil
}
