package mcp

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// createJSONResponse creates a standardized JSON response for MCP tools
func createJSONResponse(data interface{}) (*mcp.CallToolResult, error) {
	content, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal response data: %v", err)
	}

	return createTextResponse(string(content)), nil
}

func createTextResponse(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: text},
		},
	}
}

// createErrorResponse creates a standardized error response for MCP tools
func createErrorResponse(operation string, err error) (*mcp.CallToolResult, error) {
	errorData := map[string]interface{}{
		"success":   false,
		"error":     err.Error(),
		"operation": operation,
	}

	if suggestions := generateErrorSuggestions(operation, err); len(suggestions) > 0 {
		errorData["suggestions"] = suggestions
	}
	if help := getOperationHelp(operation); help != "" {
		errorData["help"] = help
	}

	response, marshalErr := createJSONResponse(errorData)
	if marshalErr != nil {
		return nil, marshalErr
	}

	// Set IsError=true per MCP SDK specification
	response.IsError = true

	return response, nil
}

func generateErrorSuggestions(operation string, err error) []string {
	var suggestions []string
	msg := err.Error()

	switch operation {
	case "cluster_surnames":
		if strings.Contains(msg, "surnames is required") {
			suggestions = append(suggestions, `Pass a list: {"surnames": ["Sharma", "Sharmaa", "Thapa"]}`)
		}
		if strings.Contains(msg, "format") {
			suggestions = append(suggestions, `Supported formats: "json" (default) and "csv"`)
		}
	case "find_surname", "guess_surname":
		if strings.Contains(msg, "surname is required") {
			suggestions = append(suggestions, `Pass one romanized surname: {"surname": "Shrestha"}`)
		}
	case "list_categories":
		if strings.Contains(msg, "unknown main category") {
			suggestions = append(suggestions, "Call list_categories without main_id to see every category")
		}
	}
	return suggestions
}

func getOperationHelp(operation string) string {
	helpMap := map[string]string{
		"cluster_surnames": "Group spelling variants of surnames and classify each group by ethnic category.",
		"find_surname":     "Look a surname up in the reference taxonomy, allowing common spelling variants.",
		"guess_surname":    "Guess the Devanagari spelling and category of any surname, known or not.",
		"list_categories":  "List the main and sub ethnic categories of the taxonomy.",
	}
	return helpMap[operation]
}

// addWarningsToResponse adds warning messages to an MCP response
// This modifies the response to include a "warnings" field in the JSON metadata
// while preserving all existing response content
func addWarningsToResponse(result *mcp.CallToolResult, warnings []string) {
	if result == nil || len(warnings) == 0 || len(result.Content) == 0 {
		return
	}

	textContent, ok := result.Content[0].(*mcp.TextContent)
	if !ok {
		return
	}

	var responseData map[string]interface{}
	if err := json.Unmarshal([]byte(textContent.Text), &responseData); err == nil {
		responseData["warnings"] = warnings
		if updatedJSON, err := json.Marshal(responseData); err == nil {
			result.Content[0] = &mcp.TextContent{Text: string(updatedJSON)}
			return
		}
	}

	// If we couldn't parse as JSON, append warnings as text
	var b strings.Builder
	b.WriteString("\n\nWarnings:\n")
	for _, warning := range warnings {
		fmt.Fprintf(&b, "- %s\n", warning)
	}
	textContent.Text += b.String()
}
