// Package seapen manages the SeaPen slice: generated wallpaper thumbnails,
// recent generated images and their selection.
package seapen

import (
	"maps"

	"personalization/internal/store"
)

// ImageID identifies a generated image: a thumbnail id or a recent image
// file path.
type ImageID string

// Query is a generation request, either free text or a filled template.
type Query struct {
	Text       string            `json:"text,omitempty" yaml:"text,omitempty"`
	TemplateID string            `json:"templateId,omitempty" yaml:"templateId,omitempty"`
	Options    map[string]string `json:"options,omitempty" yaml:"options,omitempty"`
}

// Thumbnail is one search result.
type Thumbnail struct {
	ID  ImageID `json:"id" yaml:"id"`
	URL string  `json:"url" yaml:"url"`
}

// RecentImage is a previously generated image saved on disk.
type RecentImage struct {
	ID           ImageID `json:"id" yaml:"id"`
	URL          string  `json:"url" yaml:"url"`
	Query        Query   `json:"query" yaml:"query"`
	CreationTime string  `json:"creationTime,omitempty" yaml:"creationTime,omitempty"`
}

// Loading tracks in-flight requests.
type Loading struct {
	Thumbnails   bool `json:"thumbnails" yaml:"thumbnails"`
	RecentImages bool `json:"recentImages" yaml:"recentImages"`
	SetImage     int  `json:"setImage" yaml:"setImage"`
}

// State is the SeaPen slice.
type State struct {
	Thumbnails             []Thumbnail   `json:"thumbnails" yaml:"thumbnails"`
	CurrentQuery           *Query        `json:"currentSeaPenQuery" yaml:"currentSeaPenQuery"`
	RecentImages           []RecentImage `json:"recentImages" yaml:"recentImages"`
	CurrentSelected        *ImageID      `json:"currentSelected" yaml:"currentSelected"`
	PendingSelected        *ImageID      `json:"pendingSelected" yaml:"pendingSelected"`
	Loading                Loading       `json:"loading" yaml:"loading"`
	ShouldShowIntroduction bool          `json:"shouldShowSeaPenIntroductionDialog" yaml:"shouldShowSeaPenIntroductionDialog"`
}

func InitialState() State {
	return State{}
}

const (
	ActionBeginSearchThumbnails     store.ActionName = "BeginSearchSeaPenThumbnails"
	ActionSetThumbnails             store.ActionName = "SetSeaPenThumbnails"
	ActionClearThumbnails           store.ActionName = "ClearSeaPenThumbnails"
	ActionBeginFetchRecentImages    store.ActionName = "BeginFetchRecentSeaPenImages"
	ActionSetRecentImages           store.ActionName = "SetRecentSeaPenImages"
	ActionBeginSelectImage          store.ActionName = "BeginSelectSeaPenImage"
	ActionEndSelectImage            store.ActionName = "EndSelectSeaPenImage"
	ActionSetSelectedImage          store.ActionName = "SetSelectedSeaPenImage"
	ActionSetShouldShowIntroduction store.ActionName = "SetShouldShowSeaPenIntroductionDialog"
)

type BeginSearchThumbnails struct{ Query Query }

func (BeginSearchThumbnails) Name() store.ActionName { return ActionBeginSearchThumbnails }
func (BeginSearchThumbnails) Slice() store.Slice     { return store.SliceSeaPen }

// SetThumbnails ends a search; nil Thumbnails means it failed.
type SetThumbnails struct {
	Query      Query
	Thumbnails []Thumbnail
}

func (SetThumbnails) Name() store.ActionName { return ActionSetThumbnails }
func (SetThumbnails) Slice() store.Slice     { return store.SliceSeaPen }

type ClearThumbnails struct{}

func (ClearThumbnails) Name() store.ActionName { return ActionClearThumbnails }
func (ClearThumbnails) Slice() store.Slice     { return store.SliceSeaPen }

type BeginFetchRecentImages struct{}

func (BeginFetchRecentImages) Name() store.ActionName { return ActionBeginFetchRecentImages }
func (BeginFetchRecentImages) Slice() store.Slice     { return store.SliceSeaPen }

type SetRecentImages struct{ Images []RecentImage }

func (SetRecentImages) Name() store.ActionName { return ActionSetRecentImages }
func (SetRecentImages) Slice() store.Slice     { return store.SliceSeaPen }

type BeginSelectImage struct{ ID ImageID }

func (BeginSelectImage) Name() store.ActionName { return ActionBeginSelectImage }
func (BeginSelectImage) Slice() store.Slice     { return store.SliceSeaPen }

type EndSelectImage struct {
	ID      ImageID
	Success bool
}

func (EndSelectImage) Name() store.ActionName { return ActionEndSelectImage }
func (EndSelectImage) Slice() store.Slice     { return store.SliceSeaPen }

// SetSelectedImage records the SeaPen image on screen; nil means the
// wallpaper is not a SeaPen image.
type SetSelectedImage struct{ ID *ImageID }

func (SetSelectedImage) Name() store.ActionName { return ActionSetSelectedImage }
func (SetSelectedImage) Slice() store.Slice     { return store.SliceSeaPen }

type SetShouldShowIntroduction struct{ Show bool }

func (SetShouldShowIntroduction) Name() store.ActionName { return ActionSetShouldShowIntroduction }
func (SetShouldShowIntroduction) Slice() store.Slice     { return store.SliceSeaPen }

func reduce(state State, action store.Action) State {
	switch a := action.(type) {
	case BeginSearchThumbnails:
		state.Loading.Thumbnails = true
		q := cloneQuery(a.Query)
		state.CurrentQuery = &q
	case SetThumbnails:
		state.Loading.Thumbnails = false
		if a.Thumbnails == nil {
			state.Thumbnails = nil
		} else {
			state.Thumbnails = append([]Thumbnail{}, a.Thumbnails...)
		}
	case ClearThumbnails:
		state.Thumbnails = nil
		state.CurrentQuery = nil
	case BeginFetchRecentImages:
		state.Loading.RecentImages = true
	case SetRecentImages:
		state.Loading.RecentImages = false
		state.RecentImages = append([]RecentImage{}, a.Images...)
	case BeginSelectImage:
		state.Loading.SetImage++
		id := a.ID
		state.PendingSelected = &id
	case EndSelectImage:
		if state.Loading.SetImage > 0 {
			state.Loading.SetImage--
		}
		if state.PendingSelected != nil && *state.PendingSelected == a.ID && (state.Loading.SetImage == 0 || !a.Success) {
			state.PendingSelected = nil
		}
	case SetSelectedImage:
		if a.ID == nil {
			state.CurrentSelected = nil
		} else {
			id := *a.ID
			state.CurrentSelected = &id
		}
	case SetShouldShowIntroduction:
		state.ShouldShowIntroduction = a.Show
	}
	return state
}

func cloneQuery(q Query) Query {
	q.Options = maps.Clone(q.Options)
	return q
}

// Reducer is the SeaPen slice reducer.
var Reducer = store.For(reduce)

// Select returns the SeaPen slice of s.
func Select(s store.State) State {
	return store.Select[State](s, store.SliceSeaPen)
}
