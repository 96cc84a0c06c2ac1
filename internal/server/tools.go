package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// numberProp describes a numeric tool argument.
func numberProp(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "number",
		"description": description,
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format, color depth and file size.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name: "image_edge_magnitude",
			Description: "Compute a grayscale gradient-magnitude image (central differences on luminance, " +
				"stretched so the strongest edge is white) and return it as base64-encoded PNG. " +
				"A uniform image yields an all-black result.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name: "crop_recommend",
			Description: "Recommend a crop (Rice, Wheat, Maize, Pulses or Millets) from soil and weather readings " +
				"using a fixed rule ladder, plus advisory notes on pH, humidity and rainfall.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"n":           numberProp("Nitrogen (N)"),
					"p":           numberProp("Phosphorus (P)"),
					"k":           numberProp("Potassium (K)"),
					"temperature": numberProp("Temperature in °C"),
					"humidity":    numberProp("Relative humidity in percent"),
					"ph":          numberProp("Soil pH (0-14)"),
					"rainfall":    numberProp("Rainfall in mm"),
				},
				"required": []string{"n", "p", "k", "temperature", "humidity", "ph", "rainfall"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
