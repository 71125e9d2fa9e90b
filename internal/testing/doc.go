// Package testing provides in-memory providers for every personalization
// domain.
//
// The providers stand in for the system backend: each method records its call
// (arguments included) through a CallRecorder and answers with canned data
// held in exported fields. Errors can be injected per method with SetError.
// The observer a bridge registers is kept and exposed, so tests can simulate
// push events from the backend:
//
//	provider := testing.NewAmbientProvider()
//	b := ambient.NewBridge()
//	b.InitIfNeeded(provider, s)
//
//	provider.Observer().OnAlbumsChanged(albums)
//	assert.Equal(t, 1, provider.CallCount("SetAmbientObserver"))
//
// Canned data can also be loaded from a YAML fixtures file (LoadFixtures), which
// is how the personalization binary runs without a system backend.
package testing
