package seapen

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"personalization/internal/errorstate"
	"personalization/internal/store"
	"personalization/pkg/logging"
)

const controllerSubsystem = "Controller-SeaPen"

// MaxQueryLength bounds free text queries, in runes.
const MaxQueryLength = 1000

var (
	// ErrEmptyQuery is returned for a query with neither text nor template.
	ErrEmptyQuery = errors.New("empty SeaPen query")
	// ErrQueryTooLong is returned for text longer than MaxQueryLength.
	ErrQueryTooLong = errors.New("SeaPen query too long")
	// ErrUnknownRecentImage is returned for an id not in the recent images.
	ErrUnknownRecentImage = errors.New("unknown recent SeaPen image")
)

func validateQuery(q Query) error {
	text := strings.TrimSpace(q.Text)
	if text == "" && q.TemplateID == "" {
		return ErrEmptyQuery
	}
	if len([]rune(text)) > MaxQueryLength {
		return fmt.Errorf("%w: %d runes", ErrQueryTooLong, len([]rune(text)))
	}
	return nil
}

// InitializeData loads recent images and the introduction dialog flag.
func InitializeData(ctx context.Context, provider Provider, s store.Dispatcher) error {
	if err := FetchRecentImages(ctx, provider, s); err != nil {
		return err
	}
	show, err := provider.ShouldShowSeaPenIntroductionDialog(ctx)
	if err != nil {
		return fmt.Errorf("should show introduction dialog: %w", err)
	}
	s.Dispatch(SetShouldShowIntroduction{Show: show})
	return nil
}

// SearchThumbnails generates thumbnails for query.
func SearchThumbnails(ctx context.Context, query Query, provider Provider, s store.Dispatcher) error {
	if err := validateQuery(query); err != nil {
		return err
	}
	s.Dispatch(BeginSearchThumbnails{Query: query})
	thumbnails, err := provider.SearchWallpaper(ctx, query)
	if err != nil {
		logging.Error(controllerSubsystem, err, "Thumbnail search failed")
		s.Dispatch(SetThumbnails{Query: query})
		errorstate.Report(s, "Couldn't create images")
		return fmt.Errorf("search wallpaper: %w", err)
	}
	if thumbnails == nil {
		thumbnails = []Thumbnail{}
	}
	s.Dispatch(SetThumbnails{Query: query, Thumbnails: thumbnails})
	return nil
}

// ResetThumbnails drops the current results and query.
func ResetThumbnails(s store.Dispatcher) {
	s.Dispatch(ClearThumbnails{})
}

// SelectThumbnail sets a generated thumbnail as wallpaper. The generated
// image is saved, so recent images are reloaded afterwards.
func SelectThumbnail(ctx context.Context, thumbnail Thumbnail, previewMode bool, provider Provider, s store.Dispatcher) error {
	err := selectImage(s, thumbnail.ID, func() error {
		return provider.SelectSeaPenThumbnail(ctx, thumbnail.ID, previewMode)
	})
	if err != nil {
		return fmt.Errorf("select SeaPen thumbnail %s: %w", thumbnail.ID, err)
	}
	return FetchRecentImages(ctx, provider, s)
}

// SelectRecentImage sets a previously generated image as wallpaper.
func SelectRecentImage(ctx context.Context, id ImageID, previewMode bool, provider Provider, s store.Dispatcher) error {
	if !hasRecent(Select(s.Data()), id) {
		return fmt.Errorf("%w: %s", ErrUnknownRecentImage, id)
	}
	err := selectImage(s, id, func() error {
		return provider.SelectRecentSeaPenImage(ctx, id, previewMode)
	})
	if err != nil {
		return fmt.Errorf("select recent SeaPen image %s: %w", id, err)
	}
	return nil
}

func selectImage(s store.Dispatcher, id ImageID, call func() error) error {
	s.Dispatch(BeginSelectImage{ID: id})
	err := call()
	s.Dispatch(EndSelectImage{ID: id, Success: err == nil})
	if err != nil {
		errorstate.Report(s, "Couldn't set wallpaper")
	}
	return err
}

// FetchRecentImages loads the saved generated images.
func FetchRecentImages(ctx context.Context, provider Provider, s store.Dispatcher) error {
	s.Dispatch(BeginFetchRecentImages{})
	images, err := provider.GetRecentSeaPenImages(ctx)
	if err != nil {
		s.Dispatch(SetRecentImages{})
		return fmt.Errorf("get recent SeaPen images: %w", err)
	}
	s.Dispatch(SetRecentImages{Images: images})
	return nil
}

// DeleteRecentImage removes a saved image and reloads the list.
func DeleteRecentImage(ctx context.Context, id ImageID, provider Provider, s store.Dispatcher) error {
	if !hasRecent(Select(s.Data()), id) {
		return fmt.Errorf("%w: %s", ErrUnknownRecentImage, id)
	}
	if err := provider.DeleteRecentSeaPenImage(ctx, id); err != nil {
		return fmt.Errorf("delete recent SeaPen image %s: %w", id, err)
	}
	return FetchRecentImages(ctx, provider, s)
}

// DismissIntroductionDialog records that the introduction was seen.
func DismissIntroductionDialog(ctx context.Context, provider Provider, s store.Dispatcher) error {
	if err := provider.HandleSeaPenIntroductionDialogClosed(ctx); err != nil {
		return fmt.Errorf("close introduction dialog: %w", err)
	}
	s.Dispatch(SetShouldShowIntroduction{Show: false})
	return nil
}

func hasRecent(state State, id ImageID) bool {
	for _, img := range state.RecentImages {
		if img.ID == id {
			return true
		}
	}
	return false
}
