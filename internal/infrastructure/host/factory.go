package host

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/wndstack/internal/application/port"
	"github.com/bnema/wndstack/internal/domain/entity"
	"github.com/bnema/wndstack/internal/logging"
)

// Factory creates window content and a scene node for each descriptor.
type Factory struct {
	scene        *Scene
	content      port.ContentProvider
	templatesDir string
}

var _ port.WindowFactory = (*Factory)(nil)

// NewFactory creates a factory. With an empty templatesDir template paths are not checked.
func NewFactory(scene *Scene, content port.ContentProvider, templatesDir string) *Factory {
	return &Factory{scene: scene, content: content, templatesDir: templatesDir}
}

// Create resolves the template, builds the content and returns a detached node.
func (f *Factory) Create(ctx context.Context, d *entity.Descriptor) (entity.Content, entity.Surface, error) {
	log := logging.FromContext(ctx)

	if f.templatesDir != "" {
		path, err := f.resolveTemplate(d.Path)
		if err != nil {
			return nil, nil, err
		}
		log.Debug().Str("template", path).Msg("template resolved")
	}

	content, err := f.content.NewContent(ctx, d)
	if err != nil {
		return nil, nil, fmt.Errorf("create content for %s: %w", d.ID, err)
	}
	return content, f.scene.NewNode(string(d.ID)), nil
}

// resolveTemplate accepts the path as given or with any extension.
func (f *Factory) resolveTemplate(path string) (string, error) {
	full := filepath.Join(f.templatesDir, filepath.FromSlash(path))
	if _, err := os.Stat(full); err == nil {
		return full, nil
	}
	matches, err := filepath.Glob(full + ".*")
	if err == nil && len(matches) > 0 {
		return matches[0], nil
	}
	return "", fmt.Errorf("%w: %s (looked in %s)", entity.ErrTemplateNotFound, path, f.templatesDir)
}
