// Package mcpserver exposes the tokenizer and renderer as MCP tools so
// agents can inspect delimited text.
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bjaus/rainbow"
)

const serverName = "rainbow"

// New builds an MCP server with the detect_delimiter, parse_table and
// render_table tools. Rendering starts from base.
func New(version string, base rainbow.Options) *server.MCPServer {
	s := server.NewMCPServer(serverName, version, server.WithToolCapabilities(false))
	h := handlers{base: base}

	s.AddTool(mcp.NewTool("detect_delimiter",
		mcp.WithDescription("Detect the field delimiter (comma, tab, semicolon or pipe) of delimited text from its first non-blank line."),
		mcp.WithString("text", mcp.Required(), mcp.Description("Delimited text")),
	), h.detectDelimiter)

	s.AddTool(mcp.NewTool("parse_table",
		mcp.WithDescription("Split delimited text into rows of trimmed cells. Returns delimiter, columnCount and rows as JSON."),
		mcp.WithString("text", mcp.Required(), mcp.Description("Delimited text")),
		mcp.WithString("delimiter", mcp.Description("Force a delimiter: comma, tab, semicolon, pipe or a single character")),
	), h.parseTable)

	s.AddTool(mcp.NewTool("render_table",
		mcp.WithDescription("Render delimited text with one color per column."),
		mcp.WithString("text", mcp.Required(), mcp.Description("Delimited text")),
		mcp.WithString("format", mcp.Description("Output format"), mcp.Enum(formatNames()...)),
		mcp.WithNumber("palette_size", mcp.Description("Number of column colors before they repeat (5-20)")),
		mcp.WithBoolean("header", mcp.Description("Treat the first row as a header in the table format")),
	), h.renderTable)

	return s
}

// Serve runs s over the given streams until ctx is done or in closes.
func Serve(ctx context.Context, s *server.MCPServer, in io.Reader, out io.Writer) error {
	err := server.NewStdioServer(s).Listen(ctx, in, out)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func formatNames() []string {
	fs := rainbow.Formats()
	names := make([]string, len(fs))
	for i, f := range fs {
		names[i] = f.String()
	}
	return names
}

type handlers struct {
	base rainbow.Options
}

type detectResult struct {
	Delimiter string `json:"delimiter"`
	Name      string `json:"name"`
}

func (h handlers) detectDelimiter(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := req.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	d := rainbow.DetectDelimiter(text)
	return jsonResult(detectResult{Delimiter: string(d), Name: rainbow.DelimiterName(d)})
}

func (h handlers) parseTable(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := req.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	var t rainbow.Table
	if name := req.GetString("delimiter", ""); name != "" {
		d, ok := rainbow.ParseDelimiter(name)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("invalid delimiter %q", name)), nil
		}
		t = rainbow.ParseWith(text, d)
	} else {
		t = rainbow.Parse(text)
	}
	return jsonResult(rainbow.NewDocument(t))
}

func (h handlers) renderTable(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := req.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	f, err := rainbow.ParseFormat(req.GetString("format", rainbow.ANSI.String()))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	opts := h.base
	opts.PaletteSize = req.GetInt("palette_size", opts.PaletteSize)
	opts.Header = req.GetBool("header", opts.Header)

	r, err := rainbow.NewRenderer(opts)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, err := r.Marshal(f, text)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(out)), nil
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(data)), nil
}
