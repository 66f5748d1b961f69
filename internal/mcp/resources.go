// ABOUTME: MCP resource implementations for the medcalc history log.
// ABOUTME: Provides medcalc://history and medcalc://charts resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	historyURI = "medcalc://history"
	chartsURI  = "medcalc://charts"
)

func (s *Server) registerResources() {
	// medcalc://history - the full log in export format
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         historyURI,
		Name:        "Calculation History",
		Description: "Every saved calculation, newest first, in medcalc export format",
		MIMEType:    "application/json",
	}, s.handleHistoryResource)

	// medcalc://charts - recent series for every chartable kind
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         chartsURI,
		Name:        "Health Charts",
		Description: "Recent chart series for BMI, calories, blood sugar and cholesterol",
		MIMEType:    "application/json",
	}, s.handleChartsResource)
}

// Resource handlers

func (s *Server) handleHistoryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	data, err := s.history.ExportJSON()
	if err != nil {
		return nil, fmt.Errorf("failed to export history: %w", err)
	}
	return jsonResource(historyURI, data), nil
}

func (s *Server) handleChartsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	result := map[string]interface{}{
		"generated_at": time.Now().Format(time.RFC3339),
		"window":       s.window,
		"charts":       s.extractor.All(s.window),
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return jsonResource(chartsURI, data), nil
}

func jsonResource(uri string, data []byte) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}
}
