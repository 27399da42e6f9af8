package assets

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

//go:embed defaults/*.yaml
var defaults embed.FS

// Loader resolves textures by name.
//
// Search order for a name without an explicit path:
// Dir/<name>.yaml -> ~/.gridwalk/assets/<name>.yaml -> ./assets/<name>.yaml -> embedded default
type Loader struct {
	// Dir is an optional directory searched first.
	Dir string
	// Paths maps a texture name to an explicit file. A missing explicit
	// file is an error, never a fallback.
	Paths map[string]string

	logger *log.Logger
}

// NewLoader creates a loader searching dir (may be empty).
func NewLoader(dir string, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loader{
		Dir:    dir,
		Paths:  make(map[string]string),
		logger: logger,
	}
}

// Load resolves and decodes a single texture.
func (l *Loader) Load(ctx context.Context, name string) (Texture, error) {
	if err := ctx.Err(); err != nil {
		return Texture{}, err
	}

	if path, ok := l.Paths[name]; ok && path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Texture{}, fmt.Errorf("assets: read %s: %w", path, err)
		}
		return l.decode(name, path, data)
	}

	for _, path := range l.candidates(name) {
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Texture{}, fmt.Errorf("assets: read %s: %w", path, err)
		}
		return l.decode(name, path, data)
	}

	data, err := defaults.ReadFile("defaults/" + name + ".yaml")
	if err != nil {
		return Texture{}, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return l.decode(name, "embedded", data)
}

func (l *Loader) decode(name, source string, data []byte) (Texture, error) {
	tex, err := Decode(name, data)
	if err != nil {
		return Texture{}, err
	}
	tex.Source = source
	l.logger.Debug("texture loaded", "name", name, "source", source, "size", fmt.Sprintf("%dx%d", tex.Width, tex.Height))
	return tex, nil
}

// candidates lists the file locations searched for name, in order.
func (l *Loader) candidates(name string) []string {
	file := name + ".yaml"
	var paths []string
	if l.Dir != "" {
		paths = append(paths, filepath.Join(l.Dir, file))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".gridwalk", "assets", file))
	}
	return append(paths, filepath.Join("assets", file))
}

// LoadAll loads the named textures concurrently and waits for all of them.
// The first failure cancels the rest and is returned.
func (l *Loader) LoadAll(ctx context.Context, names ...string) (Atlas, error) {
	textures := make([]Texture, len(names))

	g, ctx := errgroup.WithContext(ctx)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			tex, err := l.Load(ctx, name)
			if err != nil {
				return err
			}
			textures[i] = tex
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	atlas := make(Atlas, len(names))
	for i, name := range names {
		atlas[name] = textures[i]
	}
	return atlas, nil
}

// Atlas maps texture names to loaded textures.
type Atlas map[string]Texture

// Get returns the named texture.
func (a Atlas) Get(name string) (Texture, bool) {
	t, ok := a[name]
	return t, ok
}
