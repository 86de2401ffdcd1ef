package handlers

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rs/zerolog/log"

	"github.com/searchplatform/searchadmin/client"
)

// jsonResult renders v as indented JSON text.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(string(b)), nil
}

// toolError reports a failed call to the model instead of failing the RPC.
func toolError(tool string, err error) *mcp.CallToolResult {
	log.Error().Err(err).Str("tool", tool).Int("status", client.StatusCode(err)).Msg(tool + " failed")
	return mcp.NewToolResultError(fmt.Sprintf("%s failed: %v", tool, err))
}

// decodeArg decodes argument key into v. Both a JSON object and a string
// holding one are accepted. ok is false when the argument is absent.
func decodeArg(req mcp.CallToolRequest, key string, v any) (ok bool, err error) {
	raw, present := req.GetArguments()[key]
	if !present || raw == nil {
		return false, nil
	}
	var data []byte
	if s, isString := raw.(string); isString {
		data = []byte(s)
	} else if data, err = json.Marshal(raw); err != nil {
		return true, err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return true, fmt.Errorf("argument %q is not a valid JSON document: %w", key, err)
	}
	return true, nil
}

func optionalString(req mcp.CallToolRequest, key string) string {
	if v, ok := req.GetArguments()[key].(string); ok {
		return v
	}
	return ""
}
