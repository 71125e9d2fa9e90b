package keyboard

import (
	"context"
	"fmt"

	"personalization/internal/store"
)

// InitializeData loads the zone count and whether to show the nudge.
func InitializeData(ctx context.Context, provider Provider, s store.Dispatcher) error {
	zones, err := provider.GetZoneCount(ctx)
	if err != nil {
		return fmt.Errorf("get zone count: %w", err)
	}
	s.Dispatch(SetZoneCount{Count: zones})

	show, err := provider.ShouldShowNudge(ctx)
	if err != nil {
		return fmt.Errorf("should show nudge: %w", err)
	}
	s.Dispatch(SetShouldShowNudge{Show: show})
	return nil
}

// SetBacklightColor sets one color for the whole keyboard.
func SetBacklightColor(ctx context.Context, color BacklightColor, provider Provider, s store.Dispatcher) error {
	if err := provider.SetBacklightColor(ctx, color); err != nil {
		return fmt.Errorf("set backlight color %s: %w", color, err)
	}
	return nil
}

// SetBacklightZoneColor sets the color of one zone.
func SetBacklightZoneColor(ctx context.Context, zone int, color BacklightColor, provider Provider, s store.Dispatcher) error {
	if count := Select(s.Data()).ZoneCount; zone < 0 || zone >= count {
		return fmt.Errorf("zone %d out of range [0, %d)", zone, count)
	}
	if color == ColorRainbow {
		return fmt.Errorf("color %s cannot be used for a single zone", color)
	}
	if err := provider.SetBacklightZoneColor(ctx, zone, color); err != nil {
		return fmt.Errorf("set backlight zone %d color %s: %w", zone, color, err)
	}
	return nil
}

// HandleNudgeShown records that the nudge was displayed and hides it.
func HandleNudgeShown(ctx context.Context, provider Provider, s store.Dispatcher) error {
	if err := provider.HandleNudgeShown(ctx); err != nil {
		return fmt.Errorf("handle nudge shown: %w", err)
	}
	s.Dispatch(SetShouldShowNudge{Show: false})
	return nil
}
