package cmd

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/a11ytools/a11y-cli/internal/a11yinfo"
	"github.com/a11ytools/a11y-cli/internal/model"
	"github.com/a11ytools/a11y-cli/internal/platform"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"gopkg.in/yaml.v3"
)

// mcpServer wraps the MCP server with the accessibility facade and cache.
type mcpServer struct {
	info   *a11yinfo.Info
	cache  *mcpStatusCache
	infoMu sync.Mutex
	mcp    *mcpserver.MCPServer
}

// MCPConfig holds MCP server configuration.
type MCPConfig struct {
	Transport string
	Port      int
	CacheTTL  time.Duration
}

// newMCPServer creates and configures an MCP server with all a11y-cli tools.
func newMCPServer(cfg MCPConfig) (*mcpServer, error) {
	info, err := newInfo()
	if err != nil {
		return nil, err
	}

	s := &mcpServer{
		info:  info,
		cache: newMCPStatusCache(cfg.CacheTTL),
	}

	s.mcp = mcpserver.NewMCPServer(
		"a11y-cli",
		"1.0.0",
	)

	s.registerTools()
	return s, nil
}

// serve starts the MCP server with the configured transport.
func (s *mcpServer) serve(cfg MCPConfig) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *mcpServer) registerTools() {
	// status
	s.mcp.AddTool(
		mcp.NewTool("status",
			mcp.WithDescription("Query the OS assistive-technology state: reduce motion, screen reader, bold text, grayscale, invert colors, reduce transparency. Settings the bridge cannot answer are listed as unknown."),
		),
		s.handleStatus,
	)

	// announce
	s.mcp.AddTool(
		mcp.NewTool("announce",
			mcp.WithDescription("Ask the running screen reader to speak a message. Silently does nothing without an accessibility bridge."),
			mcp.WithString("message", mcp.Description("Text to announce"), mcp.Required()),
		),
		s.handleAnnounce,
	)

	// focus
	s.mcp.AddTool(
		mcp.NewTool("focus",
			mcp.WithDescription("Move accessibility focus to a UI element by ID"),
			mcp.WithNumber("id", mcp.Description("Element ID"), mcp.Required()),
		),
		s.handleFocus,
	)

	// send_event
	s.mcp.AddTool(
		mcp.NewTool("send_event",
			mcp.WithDescription("Send an accessibility event (focus or click) to a UI element. Click is accepted but not delivered on this platform."),
			mcp.WithNumber("id", mcp.Description("Element ID"), mcp.Required()),
			mcp.WithString("type", mcp.Description("Event type: focus, click (default: focus)")),
		),
		s.handleSendEvent,
	)

	// recommended_timeout
	s.mcp.AddTool(
		mcp.NewTool("recommended_timeout",
			mcp.WithDescription("Ask the platform for its recommended minimum UI timeout given an original timeout in milliseconds. Returns the original value when the capability is missing."),
			mcp.WithNumber("ms", mcp.Description("Original timeout in milliseconds"), mcp.Required()),
		),
		s.handleTimeout,
	)

	// watch
	s.mcp.AddTool(
		mcp.NewTool("watch",
			mcp.WithDescription("Poll the assistive-technology state for a duration and return the changes"),
			mcp.WithNumber("duration", mcp.Description("Seconds to watch (default: 5)")),
			mcp.WithNumber("interval", mcp.Description("Polling interval in ms (default: 500)")),
		),
		s.handleWatch,
	)
}

func (s *mcpServer) handleStatus(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.infoMu.Lock()
	st := s.cache.status(s.info)
	s.infoMu.Unlock()

	b, err := yaml.Marshal(st)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}

func (s *mcpServer) handleAnnounce(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	message := stringParam(params, "message", "")
	if message == "" {
		return mcp.NewToolResultError("message parameter is required"), nil
	}

	s.infoMu.Lock()
	s.info.AnnounceForAccessibility(message)
	s.infoMu.Unlock()

	b, _ := yaml.Marshal(AnnounceResult{OK: true, Action: "announce", Message: message})
	return mcp.NewToolResultText(string(b)), nil
}

func (s *mcpServer) handleFocus(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	id := intParam(params, "id", 0)
	if id <= 0 {
		return mcp.NewToolResultError("id parameter is required"), nil
	}

	s.infoMu.Lock()
	s.info.SetAccessibilityFocus(id)
	s.infoMu.Unlock()

	b, _ := yaml.Marshal(FocusResult{OK: true, Action: "focus", ID: id})
	return mcp.NewToolResultText(string(b)), nil
}

func (s *mcpServer) handleSendEvent(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	id := intParam(params, "id", 0)
	if id <= 0 {
		return mcp.NewToolResultError("id parameter is required"), nil
	}
	eventType, err := platform.ParseEventType(stringParam(params, "type", "focus"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	s.infoMu.Lock()
	s.info.SendAccessibilityEventUnstable(platform.ElementHandle{ID: id}, eventType)
	s.infoMu.Unlock()

	b, _ := yaml.Marshal(SendEventResult{OK: true, Action: "send-event", ID: id, Type: string(eventType)})
	return mcp.NewToolResultText(string(b)), nil
}

func (s *mcpServer) handleTimeout(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	ms := int64(intParam(params, "ms", 0))
	if ms <= 0 {
		return mcp.NewToolResultError("ms parameter is required"), nil
	}

	s.infoMu.Lock()
	pending := s.info.GetRecommendedTimeoutMillis(ms)
	s.infoMu.Unlock()

	queryCtx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	recommended, err := pending.Await(queryCtx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("timeout query did not settle: %v", err)), nil
	}

	b, _ := yaml.Marshal(TimeoutResult{OK: true, OriginalMs: ms, RecommendedMs: recommended})
	return mcp.NewToolResultText(string(b)), nil
}

func (s *mcpServer) handleWatch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	durationSec := intParam(params, "duration", 5)
	intervalMs := intParam(params, "interval", 500)

	s.infoMu.Lock()
	prev := collectStatus(s.info)
	s.infoMu.Unlock()

	deadline := time.Now().Add(time.Duration(durationSec) * time.Second)
	interval := time.Duration(intervalMs) * time.Millisecond

	var changes []model.StateChange
	for time.Now().Before(deadline) {
		select {
		case <-ctx.Done():
			return mcp.NewToolResultError(ctx.Err().Error()), nil
		case <-time.After(interval):
		}

		s.infoMu.Lock()
		curr := collectStatus(s.info)
		s.infoMu.Unlock()

		changes = append(changes, model.DiffStatus(prev, curr)...)
		prev = curr
	}

	if len(changes) == 0 {
		return mcp.NewToolResultText("no changes"), nil
	}
	b, _ := yaml.Marshal(changes)
	return mcp.NewToolResultText(string(b)), nil
}

func stringParam(params map[string]interface{}, key, defaultVal string) string {
	if v, ok := params[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
		// Handle numeric values that YAML may parse as int/float
		return fmt.Sprintf("%v", v)
	}
	return defaultVal
}

func intParam(params map[string]interface{}, key string, defaultVal int) int {
	if v, ok := params[key]; ok {
		switch n := v.(type) {
		case int:
			return n
		case float64:
			return int(n)
		case int64:
			return int(n)
		}
	}
	return defaultVal
}
