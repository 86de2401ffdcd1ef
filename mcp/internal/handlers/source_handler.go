package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/searchplatform/searchadmin/client"
)

// SourceHandler exposes data source management tools.
type SourceHandler struct {
	client *client.Client
}

func NewSourceHandler(c *client.Client) *SourceHandler { return &SourceHandler{client: c} }

func (sh *SourceHandler) RegisterTools(s *server.MCPServer) error {
	list := mcp.NewTool("list_sources",
		mcp.WithDescription("List every data source configured on the backend"),
	)
	get := mcp.NewTool("get_source",
		mcp.WithDescription("Get one data source by ID"),
		mcp.WithString("source_id", mcp.Required(), mcp.Description("Data source ID")),
	)
	create := mcp.NewTool("create_source",
		mcp.WithDescription("Create a data source. The document is sent to the backend as given."),
		mcp.WithObject("source", mcp.Required(), mcp.Description(`Source document: {"sourceId","sourceType":"MYSQL|POSTGRESQL|ORACLE|FILE","connection","properties":{}}`)),
	)
	update := mcp.NewTool("update_source",
		mcp.WithDescription("Replace the data source stored under source_id"),
		mcp.WithString("source_id", mcp.Required(), mcp.Description("Data source ID")),
		mcp.WithObject("source", mcp.Required(), mcp.Description("Full replacement source document")),
	)
	del := mcp.NewTool("delete_source",
		mcp.WithDescription("Delete a data source"),
		mcp.WithString("source_id", mcp.Required(), mcp.Description("Data source ID")),
	)
	s.AddTool(list, sh.handleList)
	s.AddTool(get, sh.handleGet)
	s.AddTool(create, sh.handleCreate)
	s.AddTool(update, sh.handleUpdate)
	s.AddTool(del, sh.handleDelete)
	return nil
}

func (sh *SourceHandler) handleList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()
	list, err := sh.client.Sources.List(ctx)
	if err != nil {
		return toolError("list_sources", err), nil
	}
	log.Debug().Int("count", len(list)).Dur("elapsed", time.Since(start)).Msg("list_sources completed")
	return jsonResult(list)
}

func (sh *SourceHandler) handleGet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("source_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	src, err := sh.client.Sources.Get(ctx, id)
	if err != nil {
		return toolError("get_source", err), nil
	}
	return jsonResult(src)
}

func (sh *SourceHandler) handleCreate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var src client.Source
	if ok, err := decodeArg(req, "source", &src); err != nil || !ok {
		return mcp.NewToolResultError(argError("source", err)), nil
	}
	log.Debug().Str("source_id", src.SourceID).Msg("create_source invoked")
	created, err := sh.client.Sources.Create(ctx, src)
	if err != nil {
		return toolError("create_source", err), nil
	}
	return jsonResult(created)
}

func (sh *SourceHandler) handleUpdate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("source_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	var src client.Source
	if ok, err := decodeArg(req, "source", &src); err != nil || !ok {
		return mcp.NewToolResultError(argError("source", err)), nil
	}
	updated, err := sh.client.Sources.Update(ctx, id, src)
	if err != nil {
		return toolError("update_source", err), nil
	}
	return jsonResult(updated)
}

func (sh *SourceHandler) handleDelete(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("source_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := sh.client.Sources.Delete(ctx, id); err != nil {
		return toolError("delete_source", err), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Source deleted: %s", id)), nil
}

// argError phrases a missing or malformed document argument.
func argError(key string, err error) string {
	if err != nil {
		return err.Error()
	}
	return fmt.Sprintf("required argument %q not found", key)
}
