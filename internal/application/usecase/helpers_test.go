package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bnema/wndstack/internal/domain/entity"
	"github.com/bnema/wndstack/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

// fakeDescriptors is a map-backed DescriptorRepository.
type fakeDescriptors map[entity.WindowID]*entity.Descriptor

func (f fakeDescriptors) Register(_ context.Context, d *entity.Descriptor) (*entity.Descriptor, error) {
	if _, ok := f[d.ID]; ok {
		return nil, entity.ErrDuplicateIdentity
	}
	f[d.ID] = d
	return d, nil
}

func (f fakeDescriptors) FindByID(_ context.Context, id entity.WindowID) (*entity.Descriptor, error) {
	if d, ok := f[id]; ok {
		return d, nil
	}
	return nil, fmt.Errorf("%w: %s", entity.ErrDescriptorNotFound, id)
}

func (f fakeDescriptors) List(context.Context) ([]*entity.Descriptor, error) {
	out := make([]*entity.Descriptor, 0, len(f))
	for _, d := range f {
		out = append(out, d)
	}
	return out, nil
}

func (f fakeDescriptors) add(t *testing.T, id entity.WindowID, c entity.Category, p entity.OpenPolicy) {
	t.Helper()
	d, err := entity.NewDescriptor(id, "ui/"+string(id), c, p, entity.BackdropNone)
	require.NoError(t, err)
	f[id] = d
}

type fakeContainer struct{ name string }

func (c *fakeContainer) Name() string { return c.name }

type fakeSurface struct {
	id        entity.WindowID
	visible   bool
	parent    entity.Container
	raised    int
	backdrop  entity.Backdrop
	destroyed bool
}

func (s *fakeSurface) SetVisible(v bool)             { s.visible = v }
func (s *fakeSurface) Visible() bool                 { return s.visible }
func (s *fakeSurface) SetParent(c entity.Container)  { s.parent = c }
func (s *fakeSurface) Raise()                        { s.raised++ }
func (s *fakeSurface) SetBackdrop(b entity.Backdrop) { s.backdrop = b }
func (s *fakeSurface) Destroy()                      { s.destroyed = true }

// recordingContent appends "<id>:<hook>" to a shared journal. Optional
// callbacks let a test run nested manager calls from inside a hook.
type recordingContent struct {
	id       entity.WindowID
	journal  *[]string
	onEnter  func(ctx context.Context)
	onExit   func(ctx context.Context)
	onResume func(ctx context.Context)
}

func (c *recordingContent) record(hook string) {
	*c.journal = append(*c.journal, string(c.id)+":"+hook)
}

func (c *recordingContent) OnInit(context.Context) { c.record("init") }
func (c *recordingContent) OnEnter(ctx context.Context, _ entity.Args) {
	c.record("enter")
	if c.onEnter != nil {
		c.onEnter(ctx)
	}
}
func (c *recordingContent) OnExit(ctx context.Context, _ entity.Args) {
	c.record("exit")
	if c.onExit != nil {
		c.onExit(ctx)
	}
}
func (c *recordingContent) OnPause(context.Context, entity.Args) { c.record("pause") }
func (c *recordingContent) OnResume(ctx context.Context, _ entity.Args) {
	c.record("resume")
	if c.onResume != nil {
		c.onResume(ctx)
	}
}

// fakeHost is both the WindowFactory and the Placement.
type fakeHost struct {
	containers map[entity.Category]*fakeContainer
	cache      *fakeContainer
	surfaces   map[entity.WindowID][]*fakeSurface
	contents   map[entity.WindowID]*recordingContent
	journal    []string
	created    int
	purged     map[string]int
}

func newFakeHost() *fakeHost {
	h := &fakeHost{
		containers: make(map[entity.Category]*fakeContainer),
		cache:      &fakeContainer{name: "_cached_"},
		surfaces:   make(map[entity.WindowID][]*fakeSurface),
		contents:   make(map[entity.WindowID]*recordingContent),
		purged:     make(map[string]int),
	}
	for _, c := range entity.Categories() {
		h.containers[c] = &fakeContainer{name: c.String()}
	}
	return h
}

func (h *fakeHost) Create(_ context.Context, d *entity.Descriptor) (entity.Content, entity.Surface, error) {
	h.created++
	s := &fakeSurface{id: d.ID}
	h.surfaces[d.ID] = append(h.surfaces[d.ID], s)
	c, ok := h.contents[d.ID]
	if !ok {
		c = &recordingContent{id: d.ID}
		h.contents[d.ID] = c
	}
	c.journal = &h.journal
	return c, s, nil
}

func (h *fakeHost) Container(c entity.Category) entity.Container { return h.containers[c] }
func (h *fakeHost) CacheContainer() entity.Container              { return h.cache }
func (h *fakeHost) Purge(c entity.Container) int {
	h.purged[c.Name()]++
	return 1
}

// content pre-registers content for id so a test can attach hook callbacks.
func (h *fakeHost) content(id entity.WindowID) *recordingContent {
	c, ok := h.contents[id]
	if !ok {
		c = &recordingContent{id: id, journal: &h.journal}
		h.contents[id] = c
	}
	return c
}

func (h *fakeHost) takeJournal() []string {
	j := h.journal
	h.journal = nil
	return j
}
