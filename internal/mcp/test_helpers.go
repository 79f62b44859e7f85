package mcp

// In-process testing for MCP tools: CallTool invokes a registered handler
// directly, bypassing the stdio transport.
//
//	server, _ := mcp.NewServer(cfg, nil)
//	resultJSON, err := server.CallTool("find_surname", map[string]interface{}{
//	    "surname": "Shrestha",
//	})

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// CallTool is a test helper method to simulate MCP tool calls. Error results
// come back as Go errors.
func (s *Server) CallTool(toolName string, params map[string]interface{}) (string, error) {
	ctx := context.Background()

	paramsJSON, err := json.Marshal(params)
	if err != nil {
		return "", fmt.Errorf("failed to marshal params: %w", err)
	}

	req := &mcp.CallToolRequest{
		Params: &mcp.CallToolParamsRaw{
			Name:      toolName,
			Arguments: paramsJSON,
		},
	}

	handler, ok := s.handlers[toolName]
	if !ok {
		return "", fmt.Errorf("unknown tool: %s", toolName)
	}

	result, err := handler(ctx, req)
	if err != nil {
		return "", err
	}
	if result == nil || len(result.Content) == 0 {
		return "", nil
	}

	textContent, ok := result.Content[0].(*mcp.TextContent)
	if !ok {
		return "", nil
	}

	if result.IsError {
		var response map[string]interface{}
		if json.Unmarshal([]byte(textContent.Text), &response) == nil {
			if errorMsg, ok := response["error"].(string); ok {
				return "", fmt.Errorf("MCP error: %s", errorMsg)
			}
		}
		return "", fmt.Errorf("MCP error: %s", textContent.Text)
	}
	return textContent.Text, nil
}
