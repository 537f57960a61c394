package scanner

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/dotenv-shield/dotenv-shield/internal/filesystems"
)

// Directories that never hold first-party source worth sweeping.
var skippedDirs = map[string]bool{
	"node_modules": true,
	".git":         true,
	"vendor":       true,
	"dist":         true,
	"build":        true,
	".next":        true,
	"__pycache__":  true,
}

// Files larger than this are assumed generated or binary and skipped.
const maxFileSize = 1 << 20

// Scanner sweeps a source tree for environment variable references.
// Results seed the schema builder's required/detectedInCode marking;
// the sweep is best-effort and individual unreadable files are skipped.
type Scanner struct {
	fs         filesystems.FileSystem
	extractors []NameExtractor
	log        *slog.Logger
}

func New(fs filesystems.FileSystem, log *slog.Logger) *Scanner {
	if log == nil {
		log = slog.Default()
	}
	return &Scanner{
		fs:  fs,
		log: log,
		extractors: []NameExtractor{
			NewUsageExtractor(),
			NewStructuredConfigExtractor(),
			NewComposeExtractor(),
			NewTOMLEnvExtractor(),
		},
	}
}

// Scan walks the tree under root and returns the deduplicated,
// sorted set of variable names referenced anywhere in it.
func (s *Scanner) Scan(ctx context.Context, root string) ([]string, error) {
	var candidates []string

	err := s.fs.Walk(root, func(path string, info filesystems.FileInfo, err error) error {
		if err != nil {
			return nil // unreadable entries are skipped, not fatal
		}
		if info.IsDir() {
			if skippedDirs[s.fs.Base(path)] {
				return filesystems.SkipDir
			}
			return nil
		}
		if info.Size() > maxFileSize {
			return nil
		}
		for _, extractor := range s.extractors {
			if extractor.CanHandle(path) {
				candidates = append(candidates, path)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	found := make(map[string]bool)
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)

	for _, path := range candidates {
		path := path
		g.Go(func() error {
			if ctx.Err() != nil {
				return ctx.Err()
			}

			content, err := s.fs.ReadFile(path)
			if err != nil {
				return nil
			}

			for _, extractor := range s.extractors {
				if !extractor.CanHandle(path) {
					continue
				}
				names, err := extractor.Extract(path, content)
				if err != nil {
					s.log.Debug("extractor failed", "path", path, "error", err)
					continue
				}
				mu.Lock()
				for _, name := range names {
					found[name] = true
				}
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(found))
	for name := range found {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
