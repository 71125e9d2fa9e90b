package ambient

import "errors"

// ErrLastArtAlbum is returned when deselecting the only selected art album.
var ErrLastArtAlbum = errors.New("at least one art gallery album must stay selected")
