// Package user manages the user slice: account info, the avatar image and
// its sources (default images, profile image, camera, disk).
package user

import "personalization/internal/store"

// ImageKind is the source of the avatar.
type ImageKind int

const (
	ImageInvalid ImageKind = iota
	ImageDefault
	ImageProfile
	ImageExternal
)

func (k ImageKind) String() string {
	switch k {
	case ImageDefault:
		return "default"
	case ImageProfile:
		return "profile"
	case ImageExternal:
		return "external"
	default:
		return "invalid"
	}
}

// Info is the signed-in account.
type Info struct {
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email" yaml:"email"`
}

// DefaultImage is one of the built-in avatars.
type DefaultImage struct {
	Index int    `json:"index" yaml:"index"`
	Title string `json:"title" yaml:"title"`
	URL   string `json:"url" yaml:"url"`
}

// Image is the current avatar. Default is set for ImageDefault; URL holds
// the data or profile URL for the other kinds.
type Image struct {
	Kind    ImageKind     `json:"kind" yaml:"kind"`
	Default *DefaultImage `json:"default,omitempty" yaml:"default,omitempty"`
	URL     string        `json:"url,omitempty" yaml:"url,omitempty"`
}

// State is the user slice.
type State struct {
	Info                *Info          `json:"info" yaml:"info"`
	Image               *Image         `json:"image" yaml:"image"`
	ProfileImage        string         `json:"profileImage" yaml:"profileImage"`
	DefaultUserImages   []DefaultImage `json:"defaultUserImages" yaml:"defaultUserImages"`
	LastExternalImage   *Image         `json:"lastExternalUserImage" yaml:"lastExternalUserImage"`
	IsCameraPresent     bool           `json:"isCameraPresent" yaml:"isCameraPresent"`
	IsEnterpriseManaged *bool          `json:"imageIsEnterpriseManaged" yaml:"imageIsEnterpriseManaged"`
}

// InitialState returns the unloaded user slice.
func InitialState() State {
	return State{}
}

const (
	ActionSetUserInfo            store.ActionName = "SetUserInfo"
	ActionSetUserImage           store.ActionName = "SetUserImage"
	ActionSetProfileImage        store.ActionName = "SetProfileImage"
	ActionSetDefaultUserImages   store.ActionName = "SetDefaultUserImages"
	ActionSetIsCameraPresent     store.ActionName = "SetIsCameraPresent"
	ActionSetIsEnterpriseManaged store.ActionName = "SetUserImageIsEnterpriseManaged"
)

type SetUserInfo struct{ Info Info }

func (SetUserInfo) Name() store.ActionName { return ActionSetUserInfo }
func (SetUserInfo) Slice() store.Slice     { return store.SliceUser }

type SetUserImage struct{ Image Image }

func (SetUserImage) Name() store.ActionName { return ActionSetUserImage }
func (SetUserImage) Slice() store.Slice     { return store.SliceUser }

type SetProfileImage struct{ URL string }

func (SetProfileImage) Name() store.ActionName { return ActionSetProfileImage }
func (SetProfileImage) Slice() store.Slice     { return store.SliceUser }

type SetDefaultUserImages struct{ Images []DefaultImage }

func (SetDefaultUserImages) Name() store.ActionName { return ActionSetDefaultUserImages }
func (SetDefaultUserImages) Slice() store.Slice     { return store.SliceUser }

type SetIsCameraPresent struct{ Present bool }

func (SetIsCameraPresent) Name() store.ActionName { return ActionSetIsCameraPresent }
func (SetIsCameraPresent) Slice() store.Slice     { return store.SliceUser }

type SetIsEnterpriseManaged struct{ Managed bool }

func (SetIsEnterpriseManaged) Name() store.ActionName { return ActionSetIsEnterpriseManaged }
func (SetIsEnterpriseManaged) Slice() store.Slice     { return store.SliceUser }

func reduce(state State, action store.Action) State {
	switch a := action.(type) {
	case SetUserInfo:
		info := a.Info
		state.Info = &info
	case SetUserImage:
		// Leaving an external image keeps it available for reselection.
		if state.Image != nil && state.Image.Kind == ImageExternal && a.Image.Kind != ImageExternal {
			prev := *state.Image
			state.LastExternalImage = &prev
		}
		img := a.Image
		state.Image = &img
	case SetProfileImage:
		state.ProfileImage = a.URL
	case SetDefaultUserImages:
		state.DefaultUserImages = append([]DefaultImage{}, a.Images...)
	case SetIsCameraPresent:
		state.IsCameraPresent = a.Present
	case SetIsEnterpriseManaged:
		v := a.Managed
		state.IsEnterpriseManaged = &v
	}
	return state
}

// Reducer is the user slice reducer.
var Reducer = store.For(reduce)

// Select returns the user slice of s.
func Select(s store.State) State {
	return store.Select[State](s, store.SliceUser)
}
