package user

import (
	"personalization/internal/bridge"
	"personalization/internal/store"
)

// Bridge binds a user image Provider's push events to a store.
type Bridge struct {
	lifecycle bridge.Lifecycle
}

func NewBridge() *Bridge {
	return &Bridge{lifecycle: bridge.Lifecycle{Name: "Bridge-UserImage"}}
}

// InitIfNeeded binds once; later calls are no-ops until Shutdown.
func (b *Bridge) InitIfNeeded(provider Provider, s store.Dispatcher) {
	b.lifecycle.Init(s, func(binding *bridge.Binding) func() {
		provider.SetUserImageObserver(&remote{binding: binding})
		return func() { provider.SetUserImageObserver(nil) }
	})
}

func (b *Bridge) Shutdown() {
	b.lifecycle.Shutdown()
}

func (b *Bridge) Bound() bool {
	return b.lifecycle.Bound()
}

type remote struct {
	binding *bridge.Binding
}

func (r *remote) OnUserImageChanged(image Image) {
	r.binding.Dispatch(SetUserImage{Image: image})
}

func (r *remote) OnUserProfileImageUpdated(url string) {
	r.binding.Dispatch(SetProfileImage{URL: url})
}

func (r *remote) OnCameraPresenceChanged(present bool) {
	r.binding.Dispatch(SetIsCameraPresent{Present: present})
}

func (r *remote) OnIsEnterpriseManagedChanged(managed bool) {
	r.binding.Dispatch(SetIsEnterpriseManaged{Managed: managed})
}
