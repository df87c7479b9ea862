package assets

import (
	"fmt"
	"path/filepath"

	glbackend "github.com/quiltui/quilt/engine/gfx/gl"
	"github.com/quiltui/quilt/ui"
)

// Texture is a GPU texture handle. A texture registered before its pixels
// are uploaded reports Ready() == false and the interface lays it out with
// zero size until the upload lands.
type Texture struct {
	id    uint32
	w, h  int
	ready bool
}

func (t *Texture) Size() (int, int) { return t.w, t.h }
func (t *Texture) Ready() bool      { return t.ready }
func (t *Texture) GLID() uint32     { return t.id }

// Manager loads and resolves textures by name. It implements
// ui.AssetProvider. Not safe for concurrent use; all loading happens on the
// render thread.
type Manager struct {
	dir      string
	textures map[string]*Texture
}

var _ ui.AssetProvider = (*Manager)(nil)

func NewManager(dir string) *Manager {
	return &Manager{dir: dir, textures: make(map[string]*Texture)}
}

// Register reserves a name before its pixels exist, so interfaces can refer
// to a texture that is still decoding.
func (m *Manager) Register(name string) *Texture {
	if t, ok := m.textures[name]; ok {
		return t
	}
	t := &Texture{}
	m.textures[name] = t
	return t
}

// LoadTexture decodes a PNG under the textures directory and uploads it.
// The returned handle is immediately ready.
func (m *Manager) LoadTexture(name, file string) (*Texture, error) {
	w, h, pix, err := LoadPNG(filepath.Join(m.dir, "textures", file))
	if err != nil {
		return nil, fmt.Errorf("texture %q: %w", name, err)
	}
	t := m.Register(name)
	t.id = glbackend.NewTexture(w, h, pix)
	t.w, t.h = w, h
	t.ready = true
	return t, nil
}

// Texture implements ui.AssetProvider.
func (m *Manager) Texture(name string) (ui.Texture, bool) {
	t, ok := m.textures[name]
	if !ok {
		return nil, false
	}
	return t, true
}

// Shutdown releases every GPU texture the manager owns.
func (m *Manager) Shutdown() {
	for _, t := range m.textures {
		if t.ready {
			glbackend.DeleteTexture(t.id)
			t.ready = false
		}
	}
}
