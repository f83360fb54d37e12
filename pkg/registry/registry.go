package registry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/mchmarny/adminnav/pkg/metric"
	"github.com/mchmarny/adminnav/pkg/navigation"
	"github.com/prometheus/client_golang/prometheus"
)

// RootName is the name of the root item every build starts from.
const RootName = "root"

var (
	// ErrDuplicateProvider is returned when a provider name is registered twice.
	ErrDuplicateProvider = errors.New("provider already registered")

	// ErrNilProvider is returned when a nil provider is registered.
	ErrNilProvider = errors.New("provider is nil")
)

// Provider contributes a navigation subtree. The children of the returned
// item are merged into the shared root; the item itself only acts as a container.
type Provider interface {
	// Name identifies the provider in logs, errors and metrics.
	Name() string

	// Navigation returns a freshly built subtree. It is called once per build.
	Navigation(ctx context.Context) (*navigation.Item, error)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc struct {
	ID string
	Fn func(ctx context.Context) (*navigation.Item, error)
}

// Name returns the provider ID.
func (p ProviderFunc) Name() string { return p.ID }

// Navigation calls Fn.
func (p ProviderFunc) Navigation(ctx context.Context) (*navigation.Item, error) {
	return p.Fn(ctx)
}

// Registry merges the contributions of all registered providers into one tree.
// It is safe for concurrent use; every build returns an independent tree.
type Registry struct {
	mu        sync.RWMutex
	providers []Provider
	merges    metric.IncrementalCounter
}

// Option configures a Registry.
type Option func(*Registry)

// WithRegisterer counts merged contributions per provider in reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(r *Registry) {
		r.merges = metric.NewCounterWithRegistry(reg,
			"adminnav_registry_contributions_total",
			"Number of navigation contributions merged, by provider.",
			"provider")
	}
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds p to the registry. Providers are merged in registration order,
// so attributes of an entry contributed by several providers come from the first one
// that sets them.
func (r *Registry) Register(p Provider) error {
	if p == nil {
		return ErrNilProvider
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.providers {
		if existing.Name() == p.Name() {
			return fmt.Errorf("%w: %s", ErrDuplicateProvider, p.Name())
		}
	}

	r.providers = append(r.providers, p)
	slog.Debug("navigation provider registered", "provider", p.Name())

	return nil
}

// Providers returns the names of the registered providers in registration order.
func (r *Registry) Providers() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.providers))
	for _, p := range r.providers {
		names = append(names, p.Name())
	}
	return names
}

// Navigation builds a new tree from all providers.
func (r *Registry) Navigation(ctx context.Context) (*navigation.Item, error) {
	r.mu.RLock()
	providers := append([]Provider(nil), r.providers...)
	r.mu.RUnlock()

	root := navigation.New(RootName)

	for _, p := range providers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		contribution, err := p.Navigation(ctx)
		if err != nil {
			return nil, fmt.Errorf("provider %s: %w", p.Name(), err)
		}

		if contribution == nil {
			continue
		}

		Merge(root, contribution)

		if r.merges != nil {
			r.merges.Increment(p.Name())
		}
	}

	return root, nil
}

// Merge merges the children of src into dst. A child of src that is equivalent
// to a child of dst is merged into it, otherwise a childless copy is appended
// and filled recursively. src is never modified.
func Merge(dst, src *navigation.Item) {
	for _, child := range src.All() {
		target := dst.FindChildren(child)
		if target == nil {
			target = child.CopyChildless()
			dst.AddChild(target)
		} else {
			mergeAttributes(target, child)
		}

		Merge(target, child)
	}
}

// mergeAttributes fills unset attributes of dst from src and appends child views dst lacks.
// An entry disabled by any contributor stays disabled.
func mergeAttributes(dst, src *navigation.Item) {
	if src.Disabled() {
		dst.SetDisabled(true)
	}
	if dst.Label() == "" {
		dst.SetLabel(src.Label())
	}
	if dst.Icon() == "" {
		dst.SetIcon(src.Icon())
	}
	if dst.View() == "" {
		dst.SetView(src.View())
	}
	if dst.Event() == "" {
		dst.SetEvent(src.Event())
		dst.SetEventArguments(src.EventArguments())
	}
	if dst.HeaderTitle() == "" && dst.HeaderIcon() == "" {
		dst.SetHeaderTitle(src.HeaderTitle())
		dst.SetHeaderIcon(src.HeaderIcon())
	}
	if dst.ID() == "" {
		dst.SetID(src.ID())
	}
	if _, ok := dst.Position(); !ok {
		if p, ok := src.Position(); ok {
			dst.SetPosition(p)
		}
	}
	if _, ok := dst.HasSettings(); !ok {
		if v, ok := src.HasSettings(); ok {
			dst.SetHasSettings(v)
		}
	}

	views := dst.ChildViews()
	for _, v := range src.ChildViews() {
		if !slices.Contains(views, v) {
			dst.AddChildView(v)
			views = append(views, v)
		}
	}
}
