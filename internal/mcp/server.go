package mcp

import (
	"context"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"panelprompt/internal/library"
	"panelprompt/internal/project"
)

type Server struct {
	lib     *library.Library
	project *project.Store
	mcp     *sdk.Server
}

func NewServer(lib *library.Library, proj *project.Store, version string) *Server {
	s := &Server{
		lib:     lib,
		project: proj,
		mcp: sdk.NewServer(&sdk.Implementation{
			Name:    "panelprompt",
			Version: version,
		}, nil),
	}
	s.registerTools()
	return s
}

func (s *Server) Run(ctx context.Context, transport sdk.Transport) error {
	return s.mcp.Run(ctx, transport)
}
