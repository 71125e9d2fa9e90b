package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

var sliceNames = []string{"ambient", "wallpaper", "user", "theme", "keyboardBacklight", "seaPen", "error"}

func (s *Server) tools() []server.ServerTool {
	var out []server.ServerTool
	out = append(out, s.stateTools()...)
	out = append(out, s.themeTools()...)
	out = append(out, s.ambientTools()...)
	out = append(out, s.wallpaperTools()...)
	out = append(out, s.userTools()...)
	out = append(out, s.keyboardTools()...)
	out = append(out, s.seaPenTools()...)
	return out
}

// State and navigation
func (s *Server) stateTools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: mcp.NewTool("get_state",
				mcp.WithDescription("Get the current state tree, or a single slice of it"),
				mcp.WithString("slice",
					mcp.Description("Slice to return; omit for the whole tree"),
					mcp.Enum(sliceNames...),
				),
			),
			Handler: s.handleGetState,
		},
		{
			Tool: mcp.NewTool("list_actions",
				mcp.WithDescription("List the names of recently dispatched actions, oldest first"),
				mcp.WithNumber("limit",
					mcp.Description("Return only the most recent N actions"),
				),
			),
			Handler: s.handleListActions,
		},
		{
			Tool: mcp.NewTool("get_route",
				mcp.WithDescription("Get the current app location"),
			),
			Handler: s.handleGetRoute,
		},
		{
			Tool: mcp.NewTool("navigate",
				mcp.WithDescription("Navigate to an app location such as /wallpaper/collection?id=abc"),
				mcp.WithString("location",
					mcp.Required(),
					mcp.Description("Path with optional query string"),
				),
			),
			Handler: s.handleNavigate,
		},
		{
			Tool: mcp.NewTool("dismiss_error",
				mcp.WithDescription("Dismiss the error toast as the user would"),
			),
			Handler: s.handleDismissError,
		},
	}
}

// Theme
func (s *Server) themeTools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: mcp.NewTool("set_dark_mode",
				mcp.WithDescription("Switch between dark and light mode; turns off the auto schedule"),
				mcp.WithBoolean("enabled",
					mcp.Required(),
					mcp.Description("True for dark mode"),
				),
			),
			Handler: s.handleSetDarkMode,
		},
		{
			Tool: mcp.NewTool("set_color_mode_auto_schedule",
				mcp.WithDescription("Enable or disable the sunrise/sunset color mode schedule"),
				mcp.WithBoolean("enabled",
					mcp.Required(),
					mcp.Description("True to follow the schedule"),
				),
			),
			Handler: s.handleSetColorModeAutoSchedule,
		},
		{
			Tool: mcp.NewTool("set_color_scheme",
				mcp.WithDescription("Select a dynamic color scheme"),
				mcp.WithString("scheme",
					mcp.Required(),
					mcp.Description("Color scheme"),
					mcp.Enum("static", "tonal-spot", "neutral", "expressive", "vibrant"),
				),
			),
			Handler: s.handleSetColorScheme,
		},
		{
			Tool: mcp.NewTool("set_static_color",
				mcp.WithDescription("Select a static color (ARGB as an integer)"),
				mcp.WithNumber("color",
					mcp.Required(),
					mcp.Description("Color value, e.g. 4283585106"),
				),
			),
			Handler: s.handleSetStaticColor,
		},
	}
}

// Ambient
func (s *Server) ambientTools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: mcp.NewTool("set_ambient_mode",
				mcp.WithDescription("Enable or disable the screen saver"),
				mcp.WithBoolean("enabled",
					mcp.Required(),
					mcp.Description("True to enable ambient mode"),
				),
			),
			Handler: s.handleSetAmbientMode,
		},
		{
			Tool: mcp.NewTool("toggle_ambient_album",
				mcp.WithDescription("Toggle whether an album feeds the screen saver"),
				mcp.WithString("album_id",
					mcp.Required(),
					mcp.Description("Album id as shown by get_state"),
				),
			),
			Handler: s.handleToggleAmbientAlbum,
		},
	}
}

// Wallpaper
func (s *Server) wallpaperTools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: mcp.NewTool("select_wallpaper",
				mcp.WithDescription("Set a loaded backdrop image as wallpaper"),
				mcp.WithNumber("asset_id",
					mcp.Required(),
					mcp.Description("Asset id of a loaded image"),
				),
				mcp.WithBoolean("preview",
					mcp.Description("Preview fullscreen instead of applying"),
				),
			),
			Handler: s.handleSelectWallpaper,
		},
		{
			Tool: mcp.NewTool("select_default_wallpaper",
				mcp.WithDescription("Reset the wallpaper to the device default"),
			),
			Handler: s.handleSelectDefaultWallpaper,
		},
		{
			Tool: mcp.NewTool("confirm_preview_wallpaper",
				mcp.WithDescription("Keep the wallpaper being previewed"),
			),
			Handler: s.handleConfirmPreview,
		},
		{
			Tool: mcp.NewTool("cancel_preview_wallpaper",
				mcp.WithDescription("Revert the wallpaper being previewed"),
			),
			Handler: s.handleCancelPreview,
		},
		{
			Tool: mcp.NewTool("set_daily_refresh_collection",
				mcp.WithDescription("Refresh the wallpaper daily from a collection; empty id turns it off"),
				mcp.WithString("collection_id",
					mcp.Description("Backdrop collection id"),
				),
			),
			Handler: s.handleSetDailyRefresh,
		},
		{
			Tool: mcp.NewTool("refresh_daily_wallpaper",
				mcp.WithDescription("Pick the next daily refresh wallpaper now"),
			),
			Handler: s.handleRefreshDailyWallpaper,
		},
		{
			Tool: mcp.NewTool("select_google_photos_album",
				mcp.WithDescription("Open a Google Photos album and load its photos"),
				mcp.WithString("album_id",
					mcp.Required(),
					mcp.Description("Owned or shared album id"),
				),
			),
			Handler: s.handleSelectGooglePhotosAlbum,
		},
	}
}

// User
func (s *Server) userTools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: mcp.NewTool("select_default_user_image",
				mcp.WithDescription("Set one of the default avatars as the user image"),
				mcp.WithNumber("index",
					mcp.Required(),
					mcp.Description("Default image index"),
				),
			),
			Handler: s.handleSelectDefaultUserImage,
		},
		{
			Tool: mcp.NewTool("select_profile_image",
				mcp.WithDescription("Use the account profile image as the user image"),
			),
			Handler: s.handleSelectProfileImage,
		},
	}
}

// Keyboard backlight
func (s *Server) keyboardTools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: mcp.NewTool("set_keyboard_backlight_color",
				mcp.WithDescription("Set the keyboard backlight color"),
				mcp.WithString("color",
					mcp.Required(),
					mcp.Description("Backlight color"),
					mcp.Enum("wallpaper", "white", "red", "yellow", "green", "blue", "indigo", "purple", "rainbow"),
				),
			),
			Handler: s.handleSetBacklightColor,
		},
	}
}

// SeaPen
func (s *Server) seaPenTools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: mcp.NewTool("sea_pen_search",
				mcp.WithDescription("Generate SeaPen wallpaper thumbnails from a text prompt"),
				mcp.WithString("text",
					mcp.Required(),
					mcp.Description("Prompt text"),
				),
			),
			Handler: s.handleSeaPenSearch,
		},
		{
			Tool: mcp.NewTool("sea_pen_select_thumbnail",
				mcp.WithDescription("Set a generated thumbnail as wallpaper"),
				mcp.WithString("id",
					mcp.Required(),
					mcp.Description("Thumbnail id from the last search"),
				),
			),
			Handler: s.handleSeaPenSelectThumbnail,
		},
	}
}
