// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes Miti date tools for LLM integration via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/miti/internal/dateservice"
)

const formatTokensURI = "miti://format-tokens"

// Server wraps the MCP server with Miti tools.
type Server struct {
	mcp *server.MCPServer
	svc *dateservice.Service
}

// New creates a new MCP server with all Miti tools registered.
func New(svc *dateservice.Service) *Server {
	s := &Server{svc: svc}

	s.mcp = server.NewMCPServer(
		"Miti",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	langOpt := mcp.WithString("lang", mcp.Description("Label language: en or np (default from config)"))

	s.mcp.AddTool(mcp.NewTool("today",
		mcp.WithDescription("Today's date in Bikram Sambat with its AD equivalent."),
		langOpt,
	), s.today)

	s.mcp.AddTool(mcp.NewTool("bs_to_ad",
		mcp.WithDescription("Convert a Bikram Sambat date (YYYY-MM-DD) to AD."),
		mcp.WithString("date", mcp.Required(), mcp.Description("BS date, e.g. 2080-01-15")),
		langOpt,
	), s.bsToAD)

	s.mcp.AddTool(mcp.NewTool("ad_to_bs",
		mcp.WithDescription("Convert an AD date (YYYY-MM-DD) to Bikram Sambat."),
		mcp.WithString("date", mcp.Required(), mcp.Description("AD date, e.g. 2023-04-28")),
		langOpt,
	), s.adToBS)

	s.mcp.AddTool(mcp.NewTool("shift_date",
		mcp.WithDescription("Add or subtract days, weeks, months or years to a BS date."),
		mcp.WithString("date", mcp.Required(), mcp.Description("BS date, YYYY-MM-DD")),
		mcp.WithNumber("value", mcp.Required(), mcp.Description("Whole number of units; negative moves backward")),
		mcp.WithString("unit", mcp.Required(), mcp.Description("day, week, month or year")),
		langOpt,
	), s.shiftDate)

	s.mcp.AddTool(mcp.NewTool("format_date",
		mcp.WithDescription("Render a BS date with a layout. "+
			"Read the token list first via get_format_tokens or the "+formatTokensURI+" resource."),
		mcp.WithString("date", mcp.Required(), mcp.Description("BS date, YYYY-MM-DD")),
		mcp.WithString("layout", mcp.Description("Layout such as 'MMMM D, YYYY' (default from config)")),
		langOpt,
	), s.formatDate)

	s.mcp.AddTool(mcp.NewTool("month_calendar",
		mcp.WithDescription("Month page as a 6x7 grid of days with localized headers."),
		mcp.WithString("kind", mcp.Description("BS or AD (default from config)")),
		mcp.WithNumber("year", mcp.Required(), mcp.Description("Year in the chosen calendar")),
		mcp.WithNumber("month", mcp.Required(), mcp.Description("Month, 1-12")),
		langOpt,
	), s.monthCalendar)

	s.mcp.AddTool(mcp.NewTool("get_format_tokens",
		mcp.WithDescription("Returns the date conventions and layout tokens understood by format_date."),
	), s.getFormatTokens)

	// Resource: format token contract.
	s.mcp.AddResource(
		mcp.NewResource(formatTokensURI, "Date Format Tokens",
			mcp.WithResourceDescription("Date conventions and the layout token table."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readFormatTokensResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

// optString returns an optional string argument or "".
func optString(req mcp.CallToolRequest, key string) string {
	if v, err := req.RequireString(key); err == nil {
		return v
	}
	return ""
}

// maxWhole bounds numeric tool arguments; larger values cannot name a
// supported date or shift.
const maxWhole = 1e7

func requireWhole(req mcp.CallToolRequest, key string) (int, error) {
	f, err := req.RequireFloat(key)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("%s must be a whole number, got %v", key, f)
	}
	if math.Abs(f) > maxWhole {
		return 0, fmt.Errorf("%s must be between %d and %d, got %v", key, int(-maxWhole), int(maxWhole), f)
	}
	return int(f), nil
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) today(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	d, err := s.svc.Today(ctx, optString(req, "lang"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(d)
}

func (s *Server) bsToAD(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	date, err := req.RequireString("date")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	d, err := s.svc.ToAD(ctx, date, optString(req, "lang"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(d)
}

func (s *Server) adToBS(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	date, err := req.RequireString("date")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	d, err := s.svc.ToBS(ctx, date, optString(req, "lang"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(d)
}

func (s *Server) shiftDate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	date, err := req.RequireString("date")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	value, err := requireWhole(req, "value")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	unit, err := req.RequireString("unit")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	d, err := s.svc.Shift(ctx, date, value, unit, optString(req, "lang"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(d)
}

func (s *Server) formatDate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	date, err := req.RequireString("date")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	text, err := s.svc.Format(ctx, date, optString(req, "layout"), optString(req, "lang"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(text), nil
}

func (s *Server) monthCalendar(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	year, err := requireWhole(req, "year")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	month, err := requireWhole(req, "month")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	page, err := s.svc.Month(ctx, dateservice.MonthQuery{
		Kind:  optString(req, "kind"),
		Year:  year,
		Month: month,
		Lang:  optString(req, "lang"),
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(page)
}

func (s *Server) getFormatTokens(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(FormatTokensContract), nil
}

func (s *Server) readFormatTokensResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      formatTokensURI,
			MIMEType: "text/markdown",
			Text:     FormatTokensContract,
		},
	}, nil
}
