// Package fonts provides label typefaces for tile rendering.
//
// Lookup walks a fallback chain: a system Arial, then DejaVu Sans, then the
// Go Regular font embedded in the binary. The chain never fails; the worst
// case is the fixed-size basicfont face.
package fonts

import (
	"os"
	"sync"

	"github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

// candidates are tried in order against the system font directories.
var candidates = []string{"Arial.ttf", "arial.ttf", "DejaVuSans.ttf"}

var (
	loadOnce sync.Once
	loaded   *truetype.Font

	facesMu sync.Mutex
	faces   = map[float64]font.Face{}
)

// load resolves the label font once per process.
func load() {
	for _, name := range candidates {
		path, err := findfont.Find(name)
		if err != nil {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if f, err := truetype.Parse(data); err == nil {
			loaded = f
			return
		}
	}
	if f, err := truetype.Parse(goregular.TTF); err == nil {
		loaded = f
	}
}

// Face returns a label font face at the given point size. Faces are cached
// per size and safe for concurrent use by callers that do not share a
// drawing context.
func Face(size float64) font.Face {
	loadOnce.Do(load)
	if loaded == nil {
		return basicfont.Face7x13
	}

	facesMu.Lock()
	defer facesMu.Unlock()
	if face, ok := faces[size]; ok {
		return face
	}
	face := truetype.NewFace(loaded, &truetype.Options{Size: size})
	faces[size] = face
	return face
}
