package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"personalization/internal/ambient"
	"personalization/internal/keyboard"
	"personalization/internal/seapen"
	"personalization/internal/store"
	"personalization/internal/theme"
	"personalization/internal/user"
	"personalization/internal/wallpaper"
	"personalization/pkg/logging"

	"github.com/mark3labs/mcp-go/mcp"
)

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// opResult turns a controller error into a tool error result. Tool failures
// are reported in-band so the client can show them.
func opResult(op string, err error) (*mcp.CallToolResult, error) {
	if err != nil {
		logging.Warn(subsystem, "%s failed: %v", op, err)
		return mcp.NewToolResultError(fmt.Sprintf("%s failed: %v", op, err)), nil
	}
	return mcp.NewToolResultText(op + " done"), nil
}

func boolArg(req mcp.CallToolRequest, name string) (bool, error) {
	v, ok := req.GetArguments()[name]
	if !ok {
		return false, fmt.Errorf("required argument %q not found", name)
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("argument %q is not a boolean", name)
	}
	return b, nil
}

func intArg(req mcp.CallToolRequest, name string) (int64, error) {
	v, ok := req.GetArguments()[name]
	if !ok {
		return 0, fmt.Errorf("required argument %q not found", name)
	}
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	default:
		return 0, fmt.Errorf("argument %q is not a number", name)
	}
	if f != math.Trunc(f) || f < 0 {
		return 0, fmt.Errorf("argument %q must be a non-negative integer", name)
	}
	return int64(f), nil
}

func (s *Server) handleGetState(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	data := s.app.Store.Data()
	name := req.GetString("slice", "")
	if name == "" {
		return jsonResult(data.Map())
	}
	value, ok := data.Get(store.Slice(name))
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("Unknown slice %q", name)), nil
	}
	return jsonResult(value)
}

func (s *Server) handleListActions(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	names := s.app.Store.ActionNames()
	if _, ok := req.GetArguments()["limit"]; ok {
		limit, err := intArg(req, "limit")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if int(limit) < len(names) {
			names = names[len(names)-int(limit):]
		}
	}
	return jsonResult(names)
}

func (s *Server) handleGetRoute(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	current := s.app.Router.Current()
	return mcp.NewToolResultText(current.String()), nil
}

func (s *Server) handleNavigate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	location, err := req.RequireString("location")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return opResult("Navigate", s.app.Router.SetLocation(location))
}

func (s *Server) handleDismissError(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if !s.app.Toast.Dismiss() {
		return mcp.NewToolResultText("No error is shown"), nil
	}
	return mcp.NewToolResultText("Error dismissed"), nil
}

func (s *Server) handleSetDarkMode(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	enabled, err := boolArg(req, "enabled")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return opResult("Set dark mode", theme.SetColorModePref(ctx, enabled, s.app.Providers.Theme, s.app.Store))
}

func (s *Server) handleSetColorModeAutoSchedule(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	enabled, err := boolArg(req, "enabled")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return opResult("Set color mode schedule", theme.SetColorModeAutoSchedule(ctx, enabled, s.app.Providers.Theme, s.app.Store))
}

func (s *Server) handleSetColorScheme(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("scheme")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	scheme, err := theme.ParseColorScheme(name)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return opResult("Set color scheme", theme.UpdateColorScheme(ctx, scheme, s.app.Providers.Theme, s.app.Store))
}

func (s *Server) handleSetStaticColor(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	color, err := intArg(req, "color")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if color > math.MaxUint32 {
		return mcp.NewToolResultError(fmt.Sprintf("color %d out of range", color)), nil
	}
	return opResult("Set static color", theme.UpdateStaticColor(ctx, uint32(color), s.app.Providers.Theme, s.app.Store))
}

func (s *Server) handleSetAmbientMode(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	enabled, err := boolArg(req, "enabled")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return opResult("Set ambient mode", ambient.UpdateAmbientModeEnabled(ctx, enabled, s.app.Providers.Ambient, s.app.Store))
}

func (s *Server) handleToggleAmbientAlbum(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("album_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	for _, album := range ambient.Select(s.app.Store.Data()).Albums {
		if album.ID == id {
			album.Checked = !album.Checked
			return opResult("Toggle album", ambient.UpdateAlbumSelected(ctx, album, s.app.Providers.Ambient, s.app.Store))
		}
	}
	return mcp.NewToolResultError(fmt.Sprintf("Unknown album %q", id)), nil
}

func (s *Server) handleSelectWallpaper(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	assetID, err := intArg(req, "asset_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	img, ok := wallpaper.Select(s.app.Store.Data()).FindImage(uint64(assetID))
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("Image %d is not loaded", assetID)), nil
	}
	preview := req.GetBool("preview", false)
	return opResult("Select wallpaper", wallpaper.SelectWallpaper(ctx, img, preview, s.app.Providers.Wallpaper, s.app.Store))
}

func (s *Server) handleSelectDefaultWallpaper(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return opResult("Select default wallpaper", wallpaper.SelectDefaultImage(ctx, s.app.Providers.Wallpaper, s.app.Store))
}

func (s *Server) handleConfirmPreview(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return opResult("Confirm preview", wallpaper.ConfirmPreviewWallpaper(ctx, s.app.Providers.Wallpaper, s.app.Store))
}

func (s *Server) handleCancelPreview(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return opResult("Cancel preview", wallpaper.CancelPreviewWallpaper(ctx, s.app.Providers.Wallpaper, s.app.Store))
}

func (s *Server) handleSetDailyRefresh(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("collection_id", "")
	return opResult("Set daily refresh", wallpaper.SetDailyRefreshCollectionID(ctx, id, s.app.Providers.Wallpaper, s.app.Store))
}

func (s *Server) handleRefreshDailyWallpaper(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return opResult("Refresh daily wallpaper", wallpaper.UpdateDailyRefreshWallpaper(ctx, s.app.Providers.Wallpaper, s.app.Store))
}

func (s *Server) handleSelectGooglePhotosAlbum(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("album_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	album, ok := wallpaper.Select(s.app.Store.Data()).FindGooglePhotosAlbum(id)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("Album %q is not loaded", id)), nil
	}
	return opResult("Select album", wallpaper.SelectGooglePhotosAlbum(ctx, album, s.app.Router, s.app.Providers.Wallpaper, s.app.Store))
}

func (s *Server) handleSelectDefaultUserImage(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	index, err := intArg(req, "index")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return opResult("Select default user image", user.SelectDefaultImage(ctx, int(index), s.app.Providers.User, s.app.Store))
}

func (s *Server) handleSelectProfileImage(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return opResult("Select profile image", user.SelectProfileImage(ctx, s.app.Providers.User, s.app.Store))
}

func (s *Server) handleSetBacklightColor(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("color")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	color, ok := keyboard.ParseBacklightColor(name)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("Unknown backlight color %q", name)), nil
	}
	return opResult("Set backlight color", keyboard.SetBacklightColor(ctx, color, s.app.Providers.Keyboard, s.app.Store))
}

func (s *Server) handleSeaPenSearch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := req.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := seapen.SearchThumbnails(ctx, seapen.Query{Text: text}, s.app.Providers.SeaPen, s.app.Store); err != nil {
		return opResult("SeaPen search", err)
	}
	return jsonResult(seapen.Select(s.app.Store.Data()).Thumbnails)
}

func (s *Server) handleSeaPenSelectThumbnail(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	for _, t := range seapen.Select(s.app.Store.Data()).Thumbnails {
		if string(t.ID) == id {
			return opResult("Select thumbnail", seapen.SelectThumbnail(ctx, t, false, s.app.Providers.SeaPen, s.app.Store))
		}
	}
	return mcp.NewToolResultError(fmt.Sprintf("Unknown thumbnail %q", id)), nil
}
