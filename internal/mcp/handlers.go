package mcp

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	thardebug "github.com/standardbeagle/thar/internal/debug"
	"github.com/standardbeagle/thar/internal/export"
	"github.com/standardbeagle/thar/internal/normalize"
	"github.com/standardbeagle/thar/internal/taxonomy"
)

func (s *Server) handleClusterSurnames(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params ClusterParams
	if err := decodeParams(req.Params.Arguments, &params); err != nil {
		return createErrorResponse("cluster_surnames", fmt.Errorf("invalid parameters: %w", err))
	}
	if len(params.Surnames) == 0 {
		return createErrorResponse("cluster_surnames", errors.New("surnames is required"))
	}

	threshold := s.cfg.Cluster.Threshold
	if params.Threshold != nil {
		threshold = *params.Threshold
	}

	clusters := s.engine.Cluster(params.Surnames, threshold)
	thardebug.LogMCP("cluster_surnames: %d inputs -> %d clusters at %.1f\n", len(params.Surnames), len(clusters), threshold)

	var result *mcp.CallToolResult
	switch strings.ToLower(strings.TrimSpace(params.Format)) {
	case "", "json":
		var buf bytes.Buffer
		if err := export.WriteJSON(&buf, clusters, threshold); err != nil {
			return createErrorResponse("cluster_surnames", err)
		}
		result = createTextResponse(strings.TrimRight(buf.String(), "\n"))
	case "csv":
		result = createTextResponse(export.CSV(clusters))
	default:
		return createErrorResponse("cluster_surnames", fmt.Errorf("unsupported format %q", params.Format))
	}

	addWarningsToResponse(result, warningMessages(params.Warnings))
	return result, nil
}

// SurnameResponse answers find_surname and guess_surname.
type SurnameResponse struct {
	Surname string                  `json:"surname"`
	Key     string                  `json:"key"`
	Found   bool                    `json:"found"`
	Record  *taxonomy.SurnameRecord `json:"record,omitempty"`
	Source  string                  `json:"source,omitempty"` // taxonomy, inferred or guessed
}

func (s *Server) handleFindSurname(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params SurnameParams
	if err := decodeParams(req.Params.Arguments, &params); err != nil {
		return createErrorResponse("find_surname", fmt.Errorf("invalid parameters: %w", err))
	}
	surname := strings.TrimSpace(params.Surname)
	if surname == "" {
		return createErrorResponse("find_surname", errors.New("surname is required"))
	}

	resp := SurnameResponse{Surname: surname, Key: normalize.Key(surname)}
	if rec, ok := s.tax.FindSurnameInfo(surname); ok {
		resp.Found = true
		resp.Record = &rec
		resp.Source = "taxonomy"
	}

	result, err := createJSONResponse(resp)
	if err != nil {
		return nil, err
	}
	addWarningsToResponse(result, warningMessages(params.Warnings))
	return result, nil
}

func (s *Server) handleGuessSurname(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params SurnameParams
	if err := decodeParams(req.Params.Arguments, &params); err != nil {
		return createErrorResponse("guess_surname", fmt.Errorf("invalid parameters: %w", err))
	}
	surname := strings.TrimSpace(params.Surname)
	if surname == "" {
		return createErrorResponse("guess_surname", errors.New("surname is required"))
	}

	resp := SurnameResponse{Surname: surname, Key: normalize.Key(surname)}
	if rec, ok := s.tax.FindSurnameInfo(surname); ok {
		resp.Found = true
		resp.Record = &rec
		resp.Source = "taxonomy"
	} else {
		g := s.guesser.Guess(surname)
		resp.Record = &taxonomy.SurnameRecord{
			Devanagari: g.Devanagari,
			MainID:     g.MainID,
			MainName:   g.MainName,
			SubID:      g.SubID,
			SubName:    g.SubName,
		}
		resp.Source = "guessed"
		if g.Inferred {
			resp.Source = "inferred"
		}
	}

	result, err := createJSONResponse(resp)
	if err != nil {
		return nil, err
	}
	addWarningsToResponse(result, warningMessages(params.Warnings))
	return result, nil
}

// CategoryNode is one main category with its sub-categories.
type CategoryNode struct {
	taxonomy.MainCategory
	Subs []taxonomy.SubCategory `json:"subs"`
}

func (s *Server) handleListCategories(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params CategoriesParams
	if err := decodeParams(req.Params.Arguments, &params); err != nil {
		return createErrorResponse("list_categories", fmt.Errorf("invalid parameters: %w", err))
	}

	if params.MainID != 0 {
		if _, ok := s.tax.MainName(params.MainID); !ok {
			return createErrorResponse("list_categories", fmt.Errorf("unknown main category %d", params.MainID))
		}
	}

	var nodes []CategoryNode
	index := make(map[int]int)
	for _, m := range s.tax.MainCategories() {
		if params.MainID != 0 && m.ID != params.MainID {
			continue
		}
		index[m.ID] = len(nodes)
		nodes = append(nodes, CategoryNode{MainCategory: m, Subs: []taxonomy.SubCategory{}})
	}
	for _, sub := range s.tax.SubCategories() {
		if i, ok := index[sub.MainID]; ok {
			nodes[i].Subs = append(nodes[i].Subs, sub)
		}
	}

	result, err := createJSONResponse(map[string]interface{}{
		"categories":     nodes,
		"known_surnames": s.tax.Len(),
	})
	if err != nil {
		return nil, err
	}
	addWarningsToResponse(result, warningMessages(params.Warnings))
	return result, nil
}
