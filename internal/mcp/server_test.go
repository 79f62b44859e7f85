package mcp

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/thar/internal/config"
	"github.com/standardbeagle/thar/internal/export"
	"github.com/standardbeagle/thar/internal/taxonomy"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s, err := NewServer(nil, nil)
	require.NoError(t, err)
	return s
}

func TestToolsRegistered(t *testing.T) {
	s := newTestServer(t)
	assert.Equal(t, []string{"cluster_surnames", "find_surname", "guess_surname", "list_categories"}, s.Tools())
}

func TestClusterSurnamesJSON(t *testing.T) {
	s := newTestServer(t)

	out, err := s.CallTool("cluster_surnames", map[string]interface{}{
		"surnames":  []string{"Sharma", "sharme", "Thapa"},
		"threshold": 80,
	})
	require.NoError(t, err)

	var doc export.Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, 80.0, doc.Threshold)
	require.Len(t, doc.Clusters, 2)
	assert.Equal(t, "Sharma", doc.Clusters[0].CanonicalEnglish)
	assert.Equal(t, []string{"SHARMA", "SHARME"}, doc.Clusters[0].Variations)
	assert.Equal(t, "Thapa", doc.Clusters[1].CanonicalEnglish)
	assert.Equal(t, 2, doc.Summary.Clusters)
}

func TestClusterSurnamesDefaultThreshold(t *testing.T) {
	cfg := config.Default()
	cfg.Cluster.Threshold = 80
	s, err := NewServer(cfg, nil)
	require.NoError(t, err)

	out, err := s.CallTool("cluster_surnames", map[string]interface{}{
		"surnames": []string{"Sharma", "sharme", "Thapa"},
	})
	require.NoError(t, err)

	var doc export.Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, 80.0, doc.Threshold)
	assert.Len(t, doc.Clusters, 2)
}

func TestClusterSurnamesCSV(t *testing.T) {
	s := newTestServer(t)

	out, err := s.CallTool("cluster_surnames", map[string]interface{}{
		"surnames":  []string{"Sharma", "sharme", "Thapa"},
		"threshold": 80,
		"format":    "csv",
	})
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, strings.Join(export.CSVHeader, ","), lines[0])
	assert.Contains(t, lines[1], `"SHARMA, SHARME"`)
}

func TestClusterSurnamesErrors(t *testing.T) {
	s := newTestServer(t)

	_, err := s.CallTool("cluster_surnames", map[string]interface{}{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "surnames is required")

	_, err = s.CallTool("cluster_surnames", map[string]interface{}{
		"surnames": []string{"Rai"},
		"format":   "xml",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestClusterSurnamesUnknownParamWarns(t *testing.T) {
	s := newTestServer(t)

	out, err := s.CallTool("cluster_surnames", map[string]interface{}{
		"surnames": []string{"Rai"},
		"limit":    10,
	})
	require.NoError(t, err)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, []interface{}{`unknown parameter "limit" ignored`}, resp["warnings"])
}

func TestFindSurname(t *testing.T) {
	s := newTestServer(t)

	out, err := s.CallTool("find_surname", map[string]interface{}{"surname": " Sharmaa "})
	require.NoError(t, err)

	var resp SurnameResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.True(t, resp.Found)
	assert.Equal(t, "Sharmaa", resp.Surname)
	assert.Equal(t, "taxonomy", resp.Source)
	require.NotNil(t, resp.Record)
	assert.Equal(t, "शर्मा", resp.Record.Devanagari)
	assert.Equal(t, 101, resp.Record.SubID)
}

func TestFindSurnameNameAlias(t *testing.T) {
	s := newTestServer(t)

	out, err := s.CallTool("find_surname", map[string]interface{}{"name": "Shrestha"})
	require.NoError(t, err)

	var resp SurnameResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.True(t, resp.Found)
	assert.Equal(t, 501, resp.Record.SubID)
}

func TestFindSurnameMissing(t *testing.T) {
	s := newTestServer(t)

	out, err := s.CallTool("find_surname", map[string]interface{}{"surname": "Xyzzqq"})
	require.NoError(t, err)

	var resp SurnameResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.False(t, resp.Found)
	assert.Nil(t, resp.Record)

	_, err = s.CallTool("find_surname", map[string]interface{}{"surname": "  "})
	assert.Error(t, err)
}

func TestGuessSurname(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		surname string
		found   bool
		source  string
		subID   int
	}{
		{"Gurung", true, "taxonomy", 205},
		{"Gurungg", false, "inferred", 205},
		{"Xyzzqq", false, "guessed", taxonomy.OtherSubID},
	}

	for _, tt := range tests {
		out, err := s.CallTool("guess_surname", map[string]interface{}{"surname": tt.surname})
		require.NoError(t, err, tt.surname)

		var resp SurnameResponse
		require.NoError(t, json.Unmarshal([]byte(out), &resp))
		assert.Equal(t, tt.found, resp.Found, tt.surname)
		assert.Equal(t, tt.source, resp.Source, tt.surname)
		require.NotNil(t, resp.Record, tt.surname)
		assert.Equal(t, tt.subID, resp.Record.SubID, tt.surname)
		assert.NotEmpty(t, resp.Record.Devanagari, tt.surname)
	}
}

func TestListCategories(t *testing.T) {
	s := newTestServer(t)

	out, err := s.CallTool("list_categories", nil)
	require.NoError(t, err)

	var resp struct {
		Categories    []CategoryNode `json:"categories"`
		KnownSurnames int            `json:"known_surnames"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Len(t, resp.Categories, 7)
	assert.Equal(t, taxonomy.KhasArya, resp.Categories[0].ID)
	assert.Len(t, resp.Categories[0].Subs, 4)
	assert.Equal(t, taxonomy.Default().Len(), resp.KnownSurnames)

	out, err = s.CallTool("list_categories", map[string]interface{}{"main_id": 5})
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Len(t, resp.Categories, 1)
	assert.Len(t, resp.Categories[0].Subs, 10)

	_, err = s.CallTool("list_categories", map[string]interface{}{"main_id": 42})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown main category 42")
}

func TestCallToolUnknown(t *testing.T) {
	s := newTestServer(t)
	_, err := s.CallTool("search", nil)
	assert.EqualError(t, err, "unknown tool: search")
}

func TestErrorResponseSetsIsError(t *testing.T) {
	s := newTestServer(t)
	handler := s.handlers["find_surname"]

	result, err := handler(context.Background(), &mcp.CallToolRequest{
		Params: &mcp.CallToolParamsRaw{Name: "find_surname", Arguments: json.RawMessage(`{}`)},
	})
	require.NoError(t, err)
	assert.True(t, result.IsError)

	text := result.Content[0].(*mcp.TextContent).Text
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(text), &body))
	assert.Equal(t, false, body["success"])
	assert.NotEmpty(t, body["suggestions"])
}

func TestRecoverFromPanic(t *testing.T) {
	s := newTestServer(t)
	result, err := s.recoverFromPanic("cluster_surnames", func() (*mcp.CallToolResult, error) {
		panic("boom")
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
	assert.Contains(t, result.Content[0].(*mcp.TextContent).Text, "internal error: boom")
}
