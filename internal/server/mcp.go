package server

import (
	"context"
	"fmt"
	"strings"

	"github.com/joeblew999/plat-googlefonts/pkg/font"
	"github.com/joeblew999/plat-googlefonts/pkg/queue"
	"github.com/zeromicro/go-zero/mcp"
)

// contextArg is the shared schema of the contextId argument.
var contextArg = map[string]any{
	"type":        "integer",
	"description": "Journal id, or 0 for the whole site",
}

// RegisterMCPTools registers all MCP tools for the font plugin.
func RegisterMCPTools(s mcp.McpServer, plugin *font.Plugin, q *queue.Queue) {
	registerListFontsTool(s, plugin)
	registerGetEnabledFontsTool(s, plugin)
	registerGetFontFaceCSSTool(s, plugin)
	registerEnableFontsTool(s, plugin)
	registerFetchFontTool(s, plugin, q)
	registerCatalogResource(s, plugin)
}

func registerListFontsTool(s mcp.McpServer, plugin *font.Plugin) {
	s.RegisterTool(mcp.Tool{
		Name:        "list_fonts",
		Description: "List every Google Font in the bundled catalog with its id, family, category, subsets and variants.",
		InputSchema: mcp.InputSchema{
			Properties: map[string]any{},
		},
		Handler: func(ctx context.Context, p map[string]any) (any, error) {
			catalog, err := plugin.ListFonts()
			if err != nil {
				return nil, err
			}

			return map[string]any{
				"fonts": fontSummaries(catalog),
				"count": len(catalog),
			}, nil
		},
	})
}

func registerGetEnabledFontsTool(s mcp.McpServer, plugin *font.Plugin) {
	s.RegisterTool(mcp.Tool{
		Name:        "get_enabled_fonts",
		Description: "Get the fonts enabled for a site or journal, in selection order.",
		InputSchema: mcp.InputSchema{
			Properties: map[string]any{
				"contextId": contextArg,
			},
			Required: []string{"contextId"},
		},
		Handler: func(ctx context.Context, p map[string]any) (any, error) {
			var args struct {
				ContextID int64 `json:"contextId"`
			}
			if err := mcp.ParseArguments(p, &args); err != nil {
				return nil, fmt.Errorf("invalid arguments: %w", err)
			}

			enabled := plugin.ResolveEnabledFonts(ctx, args.ContextID)
			return map[string]any{
				"contextId": args.ContextID,
				"fonts":     fontSummaries(enabled),
				"count":     len(enabled),
			}, nil
		},
	})
}

func registerGetFontFaceCSSTool(s mcp.McpServer, plugin *font.Plugin) {
	s.RegisterTool(mcp.Tool{
		Name:        "get_font_face_css",
		Description: "Build the @font-face CSS that is injected into the pages of a site or journal.",
		InputSchema: mcp.InputSchema{
			Properties: map[string]any{
				"contextId": contextArg,
			},
			Required: []string{"contextId"},
		},
		Handler: func(ctx context.Context, p map[string]any) (any, error) {
			var args struct {
				ContextID int64 `json:"contextId"`
			}
			if err := mcp.ParseArguments(p, &args); err != nil {
				return nil, fmt.Errorf("invalid arguments: %w", err)
			}

			css, err := plugin.BuildFontFaceCSS(ctx, args.ContextID)
			if err != nil {
				return nil, fmt.Errorf("build css failed: %w", err)
			}

			return map[string]any{
				"contextId": args.ContextID,
				"basePath":  plugin.PublicAssetBasePath(args.ContextID),
				"css":       css,
				"size":      len(css),
			}, nil
		},
	})
}

func registerEnableFontsTool(s mcp.McpServer, plugin *font.Plugin) {
	s.RegisterTool(mcp.Tool{
		Name:        "enable_fonts",
		Description: "Replace the fonts enabled for a site or journal. An empty list disables every font.",
		InputSchema: mcp.InputSchema{
			Properties: map[string]any{
				"contextId": contextArg,
				"fonts": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "Font ids in the order they should be loaded (e.g., roboto, open-sans)",
				},
			},
			Required: []string{"contextId", "fonts"},
		},
		Handler: func(ctx context.Context, p map[string]any) (any, error) {
			var args struct {
				ContextID int64    `json:"contextId"`
				Fonts     []string `json:"fonts"`
			}
			if err := mcp.ParseArguments(p, &args); err != nil {
				return nil, fmt.Errorf("invalid arguments: %w", err)
			}

			if err := plugin.SaveEnabledFonts(ctx, args.ContextID, args.Fonts); err != nil {
				return nil, err
			}

			enabled := plugin.ResolveEnabledFonts(ctx, args.ContextID)
			return map[string]any{
				"contextId": args.ContextID,
				"fonts":     fontSummaries(enabled),
				"count":     len(enabled),
			}, nil
		},
	})
}

func registerFetchFontTool(s mcp.McpServer, plugin *font.Plugin, q *queue.Queue) {
	s.RegisterTool(mcp.Tool{
		Name:        "fetch_font",
		Description: "Queue a download of a catalog font from Google Fonts into the bundle.",
		InputSchema: mcp.InputSchema{
			Properties: map[string]any{
				"font": map[string]any{
					"type":        "string",
					"description": "Font id from list_fonts (e.g., roboto)",
				},
			},
			Required: []string{"font"},
		},
		Handler: func(ctx context.Context, p map[string]any) (any, error) {
			var args struct {
				Font string `json:"font"`
			}
			if err := mcp.ParseArguments(p, &args); err != nil {
				return nil, fmt.Errorf("invalid arguments: %w", err)
			}

			catalog, err := plugin.ListFonts()
			if err != nil {
				return nil, err
			}
			if _, ok := font.FindFont(catalog, args.Font); !ok {
				return nil, fmt.Errorf("%w: %s", font.ErrUnknownFont, args.Font)
			}

			id, err := q.Enqueue(ctx, queue.FetchJob{FontID: args.Font})
			if err != nil {
				return nil, fmt.Errorf("failed to queue fetch: %w", err)
			}

			return map[string]any{
				"id":     id,
				"font":   args.Font,
				"status": "queued",
			}, nil
		},
	})
}

func registerCatalogResource(s mcp.McpServer, plugin *font.Plugin) {
	s.RegisterResource(mcp.Resource{
		Name:        "catalog",
		URI:         "googlefonts://catalog",
		Description: "Bundled Google Fonts catalog",
		MimeType:    "text/plain",
		Handler: func(ctx context.Context) (mcp.ResourceContent, error) {
			catalog, err := plugin.ListFonts()
			if err != nil {
				return mcp.ResourceContent{}, err
			}

			var b strings.Builder
			b.WriteString("Available fonts:\n")
			for _, f := range catalog {
				fmt.Fprintf(&b, "- %s: %s (%s)\n", f.ID, f.Family, f.Category)
			}

			return mcp.ResourceContent{
				URI:      "googlefonts://catalog",
				MimeType: "text/plain",
				Text:     b.String(),
			}, nil
		},
	})
}

func fontSummaries(entries []font.CatalogEntry) []map[string]any {
	result := make([]map[string]any, 0, len(entries))
	for _, f := range entries {
		result = append(result, map[string]any{
			"id":           f.ID,
			"family":       f.Family,
			"category":     f.Category,
			"subsets":      f.Subsets,
			"variants":     f.Variants,
			"version":      f.Version,
			"lastModified": f.LastModified.String(),
		})
	}
	return result
}
