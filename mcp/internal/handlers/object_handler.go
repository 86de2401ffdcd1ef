package handlers

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/searchplatform/searchadmin/client"
)

// ObjectHandler exposes search object management tools.
type ObjectHandler struct {
	client *client.Client
}

func NewObjectHandler(c *client.Client) *ObjectHandler { return &ObjectHandler{client: c} }

func (oh *ObjectHandler) RegisterTools(s *server.MCPServer) error {
	list := mcp.NewTool("list_objects",
		mcp.WithDescription("List search objects; pass app_key to list only one application's objects"),
		mcp.WithString("app_key", mcp.Description("Optional application key filter")),
	)
	get := mcp.NewTool("get_object",
		mcp.WithDescription("Get one search object by ID"),
		mcp.WithString("object_id", mcp.Required(), mcp.Description("Search object ID")),
	)
	create := mcp.NewTool("create_object",
		mcp.WithDescription("Create a search object. The document is sent to the backend as given."),
		mcp.WithObject("object", mcp.Required(), mcp.Description(`Search object: {"objectId","sourceId","table","primaryKey","appKey","fields":[{"name","type","searchable","filterable","sortable","analyzer","vectorDim","boost"}]}`)),
	)
	update := mcp.NewTool("update_object",
		mcp.WithDescription("Replace the search object stored under object_id"),
		mcp.WithString("object_id", mcp.Required(), mcp.Description("Search object ID")),
		mcp.WithObject("object", mcp.Required(), mcp.Description("Full replacement search object")),
	)
	del := mcp.NewTool("delete_object",
		mcp.WithDescription("Delete a search object"),
		mcp.WithString("object_id", mcp.Required(), mcp.Description("Search object ID")),
	)
	s.AddTool(list, oh.handleList)
	s.AddTool(get, oh.handleGet)
	s.AddTool(create, oh.handleCreate)
	s.AddTool(update, oh.handleUpdate)
	s.AddTool(del, oh.handleDelete)
	return nil
}

func (oh *ObjectHandler) handleList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	appKey := optionalString(req, "app_key")
	log.Debug().Str("app_key", appKey).Msg("list_objects invoked")

	var (
		list []client.SearchObject
		err  error
	)
	if appKey != "" {
		list, err = oh.client.Objects.ListByAppKey(ctx, appKey)
	} else {
		list, err = oh.client.Objects.List(ctx)
	}
	if err != nil {
		return toolError("list_objects", err), nil
	}
	return jsonResult(list)
}

func (oh *ObjectHandler) handleGet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("object_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	obj, err := oh.client.Objects.Get(ctx, id)
	if err != nil {
		return toolError("get_object", err), nil
	}
	return jsonResult(obj)
}

func (oh *ObjectHandler) handleCreate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var obj client.SearchObject
	if ok, err := decodeArg(req, "object", &obj); err != nil || !ok {
		return mcp.NewToolResultError(argError("object", err)), nil
	}
	created, err := oh.client.Objects.Create(ctx, obj)
	if err != nil {
		return toolError("create_object", err), nil
	}
	return jsonResult(created)
}

func (oh *ObjectHandler) handleUpdate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("object_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	var obj client.SearchObject
	if ok, err := decodeArg(req, "object", &obj); err != nil || !ok {
		return mcp.NewToolResultError(argError("object", err)), nil
	}
	updated, err := oh.client.Objects.Update(ctx, id, obj)
	if err != nil {
		return toolError("update_object", err), nil
	}
	return jsonResult(updated)
}

func (oh *ObjectHandler) handleDelete(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("object_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := oh.client.Objects.Delete(ctx, id); err != nil {
		return toolError("delete_object", err), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Object deleted: %s", id)), nil
}
