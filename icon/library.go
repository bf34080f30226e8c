package icon

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"image"
	"io/fs"

	"golang.org/x/image/bmp"
)

//go:embed assets/*.bmp
var embedded embed.FS

var (
	ErrMissing = errors.New("icon: asset missing")
	ErrDecode  = errors.New("icon: asset decode failed")
)

// maxAssetBytes bounds a single asset read; the largest shipped icon is
// a 64x64 24-bit bitmap.
const maxAssetBytes = 64 << 10

// AssetError reports which asset failed and why.
type AssetError struct {
	Asset Asset
	Err   error
}

func (e *AssetError) Error() string {
	return fmt.Sprintf("icon %s: %v", e.Asset, e.Err)
}

func (e *AssetError) Unwrap() error { return e.Err }

// Source resolves an asset to a decoded image.
type Source interface {
	Image(a Asset) (image.Image, error)
}

// Library decodes assets on first use and keeps the successful ones.
// Failures are not cached, so a replaced asset is picked up on the next call.
//
// Not safe for concurrent use; the renderer is single-threaded.
type Library struct {
	fsys  fs.FS
	cache [assetCount]image.Image
}

var _ Source = (*Library)(nil)

// NewLibrary returns a library over the embedded assets.
func NewLibrary() *Library {
	sub, err := fs.Sub(embedded, "assets")
	if err != nil {
		// fs.Sub only fails on an invalid path literal.
		panic(err)
	}
	return NewLibraryFS(sub)
}

// NewLibraryOverlay returns a library reading each asset from fsys when it
// has one and from the embedded set otherwise.
func NewLibraryOverlay(fsys fs.FS) *Library {
	base := NewLibrary()
	if fsys == nil {
		return base
	}
	return NewLibraryFS(overlayFS{top: fsys, base: base.fsys})
}

// NewLibraryFS returns a library reading <asset name> from fsys.
func NewLibraryFS(fsys fs.FS) *Library {
	return &Library{fsys: fsys}
}

// Image returns the decoded bitmap for a. None yields (nil, nil).
func (l *Library) Image(a Asset) (image.Image, error) {
	if a == None {
		return nil, nil
	}
	if a >= assetCount {
		return nil, &AssetError{Asset: a, Err: ErrMissing}
	}
	if img := l.cache[a]; img != nil {
		return img, nil
	}

	data, err := fs.ReadFile(l.fsys, a.Name())
	if err != nil {
		return nil, &AssetError{Asset: a, Err: fmt.Errorf("%w: %w", ErrMissing, err)}
	}
	if len(data) > maxAssetBytes {
		return nil, &AssetError{Asset: a, Err: fmt.Errorf("%w: %d bytes", ErrDecode, len(data))}
	}
	img, err := bmp.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &AssetError{Asset: a, Err: fmt.Errorf("%w: %w", ErrDecode, err)}
	}
	l.cache[a] = img
	return img, nil
}

// Invalidate drops every decoded asset so the next Image call reads the FS
// again.
func (l *Library) Invalidate() {
	l.cache = [assetCount]image.Image{}
}

// Preload decodes every asset and returns the joined failures.
func (l *Library) Preload() error {
	var errs []error
	for a := None + 1; a < assetCount; a++ {
		if _, err := l.Image(a); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

type overlayFS struct {
	top, base fs.FS
}

func (o overlayFS) Open(name string) (fs.File, error) {
	f, err := o.top.Open(name)
	if err == nil {
		return f, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return o.base.Open(name)
	}
	return nil, err
}
