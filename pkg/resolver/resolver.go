package resolver

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/getchurch/church/internal/data"
	"github.com/getchurch/church/pkg/locale"
	"github.com/getchurch/church/pkg/logging"
)

// DefaultLocale is the locale used for an empty locale argument and as the
// home of locale-independent categories.
const DefaultLocale = locale.Default

// Resolver loads and caches datasets from a locale-partitioned store.
// It is safe for concurrent use.
type Resolver struct {
	fsys          fs.FS
	defaultLocale string
	logger        *slog.Logger
	observer      Observer

	locales []string // sorted partition names
	known   map[string]struct{}

	cache sync.Map // "<dir>/<name>" -> []string
	group singleflight.Group
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger used for load and failure events.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithObserver registers an Observer for load, hit and failure events.
func WithObserver(o Observer) Option {
	return func(r *Resolver) {
		if o != nil {
			r.observer = o
		}
	}
}

// WithDefaultLocale overrides the default locale. It must name a partition
// present in the store.
func WithDefaultLocale(loc string) Option {
	return func(r *Resolver) {
		r.defaultLocale = locale.Normalize(loc)
	}
}

// New creates a Resolver over fsys. Each top-level directory of fsys other
// than the auxiliary directory is a locale partition.
func New(fsys fs.FS, opts ...Option) (*Resolver, error) {
	r := &Resolver{
		fsys:          fsys,
		defaultLocale: DefaultLocale,
		logger:        logging.Nop(),
		observer:      nopObserver{},
		known:         make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("reading store root: %w", err)
	}
	for _, e := range entries {
		if !e.IsDir() || e.Name() == data.AuxiliaryDir {
			continue
		}
		name := e.Name()
		if name != locale.Normalize(name) {
			r.logger.Warn("skipping partition with non-canonical name", "dir", name)
			continue
		}
		r.known[name] = struct{}{}
		r.locales = append(r.locales, name)
	}
	slices.Sort(r.locales)

	if !r.Supports(r.defaultLocale) {
		return nil, fmt.Errorf("default locale: %w", &LocaleError{Locale: r.defaultLocale})
	}
	return r, nil
}

var defaultResolver = sync.OnceValue(func() *Resolver {
	r, err := New(data.FS())
	if err != nil {
		// The embedded store always carries the default locale.
		panic(fmt.Sprintf("resolver: embedded store: %v", err))
	}
	return r
})

// Default returns the process-wide Resolver over the embedded store.
func Default() *Resolver {
	return defaultResolver()
}

// DefaultLocale returns the locale used for empty locale arguments.
func (r *Resolver) DefaultLocale() string {
	return r.defaultLocale
}

// Locales returns the supported locale partitions in sorted order.
func (r *Resolver) Locales() []string {
	return slices.Clone(r.locales)
}

// Supports reports whether loc names a partition in the store.
func (r *Resolver) Supports(loc string) bool {
	_, ok := r.known[r.normalize(loc)]
	return ok
}

// Resolve returns the entries of category under loc. An empty loc means the
// default locale. Locale-independent categories missing from loc are served
// from the default locale.
//
// The returned slice is shared and must not be modified.
func (r *Resolver) Resolve(category, loc string) ([]string, error) {
	loc = r.normalize(loc)
	entries, err := r.resolve(category, loc)
	if err != nil {
		r.fail(category, loc, err)
		return nil, err
	}
	return entries, nil
}

func (r *Resolver) resolve(category, loc string) ([]string, error) {
	if !r.Supports(loc) {
		return nil, &LocaleError{Locale: loc}
	}
	entries, err := r.load(loc, category)
	if err == nil {
		return entries, nil
	}
	if errors.Is(err, ErrDatasetNotFound) && loc != r.defaultLocale && IsLocaleIndependent(category) {
		entries, ferr := r.load(r.defaultLocale, category)
		if ferr == nil {
			return entries, nil
		}
		if !errors.Is(ferr, ErrDatasetNotFound) {
			return nil, ferr
		}
	}
	return nil, err
}

// Has reports whether loc itself ships category. It does not apply the
// locale-independent fallback and reports nothing to the Observer.
func (r *Resolver) Has(category, loc string) bool {
	loc = r.normalize(loc)
	if !r.Supports(loc) || !validName(category) {
		return false
	}
	if _, ok := r.cache.Load(loc + "/" + category); ok {
		return true
	}
	info, err := fs.Stat(r.fsys, loc+"/"+category)
	return err == nil && !info.IsDir()
}

// Auxiliary returns a non-partitioned list such as "naughty_strings".
func (r *Resolver) Auxiliary(name string) ([]string, error) {
	entries, err := r.load(data.AuxiliaryDir, name)
	if err != nil {
		r.fail(name, data.AuxiliaryDir, err)
		return nil, err
	}
	return entries, nil
}

// Categories returns the sorted dataset names of a locale partition.
func (r *Resolver) Categories(loc string) ([]string, error) {
	loc = r.normalize(loc)
	if !r.Supports(loc) {
		return nil, &LocaleError{Locale: loc}
	}
	matches, err := doublestar.Glob(r.fsys, loc+"/*", doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", loc, err)
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, path.Base(m))
	}
	slices.Sort(names)
	return names, nil
}

// Preload loads every dataset of loc concurrently. It returns the first
// load error, or ctx.Err() if ctx is canceled first.
func (r *Resolver) Preload(ctx context.Context, loc string) error {
	loc = r.normalize(loc)
	categories, err := r.Categories(loc)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for _, category := range categories {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if _, err := r.load(loc, category); err != nil {
				r.fail(category, loc, err)
				return err
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

func (r *Resolver) normalize(loc string) string {
	if strings.TrimSpace(loc) == "" {
		return r.defaultLocale
	}
	return locale.Normalize(loc)
}

// load returns the cached entries of dir/name, reading them on first use.
func (r *Resolver) load(dir, name string) ([]string, error) {
	if !validName(name) {
		return nil, &DatasetError{Category: name, Locale: dir, Err: ErrDatasetNotFound}
	}

	key := dir + "/" + name
	if v, ok := r.cache.Load(key); ok {
		r.observer.CacheHit(name, dir)
		return v.([]string), nil
	}

	v, err, _ := r.group.Do(key, func() (any, error) {
		// A flight that started after another one stored the result
		// must not read the store again.
		if v, ok := r.cache.Load(key); ok {
			return v, nil
		}
		start := time.Now()
		entries, err := r.read(dir, name)
		if err != nil {
			return nil, err
		}
		r.cache.Store(key, entries)
		elapsed := time.Since(start)
		r.logger.Debug("dataset loaded",
			"category", name,
			"locale", dir,
			"entries", len(entries),
			"duration", elapsed)
		r.observer.DatasetLoaded(name, dir, len(entries), elapsed)
		return entries, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]string), nil
}

func validName(name string) bool {
	return name != "" && name != "." && name != ".." && !strings.ContainsAny(name, `/\`)
}

func (r *Resolver) read(dir, name string) ([]string, error) {
	b, err := fs.ReadFile(r.fsys, dir+"/"+name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = ErrDatasetNotFound
		}
		return nil, &DatasetError{Category: name, Locale: dir, Err: err}
	}
	entries := splitEntries(string(b))
	if len(entries) == 0 {
		return nil, &DatasetError{Category: name, Locale: dir, Err: ErrEmptyDataset}
	}
	return entries, nil
}

func (r *Resolver) fail(category, loc string, err error) {
	r.logger.Warn("resolve failed",
		"category", category,
		"locale", loc,
		"reason", Reason(err),
		"error", err)
	r.observer.ResolveFailed(category, loc, err)
}

// splitEntries splits a dataset into lines. Record separators are removed
// and blank lines are dropped; in-line whitespace is kept.
func splitEntries(s string) []string {
	var lines []string
	for line := range strings.Lines(s) {
		line = strings.TrimRight(line, "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
