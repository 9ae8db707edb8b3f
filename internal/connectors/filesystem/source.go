// Package filesystem loads documents from a local directory tree and
// watches it for changes.
package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"mime"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/sercha-importer/internal/core/domain"
	"github.com/custodia-labs/sercha-importer/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-importer/internal/logger"
)

// Metadata fields set on every loaded file.
const (
	FieldFileName         = "file.name"
	FieldFileSize         = "file.size"
	FieldFileLastModified = "file.lastModified"
)

// Verify interface compliance.
var _ driven.DocumentSource = (*Source)(nil)

// Source reads documents from a root directory.
type Source struct {
	rootPath   string
	parseState domain.ParseState

	mu      sync.Mutex
	watcher *fsnotify.Watcher
}

// New creates a source rooted at rootPath.
func New(rootPath string) *Source {
	return &Source{rootPath: rootPath}
}

// WithParseState marks every loaded document with the given parse state.
func (s *Source) WithParseState(state domain.ParseState) *Source {
	s.parseState = state
	return s
}

// Root returns the root directory.
func (s *Source) Root() string {
	return s.rootPath
}

// Read loads one file. Relative references resolve against the root.
func (s *Source) Read(ctx context.Context, reference string) (*domain.RawDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := LocalPath(reference)
	if !filepath.IsAbs(path) && s.rootPath != "" {
		path = filepath.Join(s.rootPath, path)
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, path)
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", domain.ErrInvalidInput, path)
	}
	return s.load(path, info)
}

// List loads every non-hidden file under the root.
func (s *Source) List(ctx context.Context) ([]*domain.RawDocument, error) {
	var docs []*domain.RawDocument

	err := filepath.WalkDir(s.rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		if path != s.rootPath && isHidden(d.Name()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			logger.Warn("skipping %s: %v", path, err)
			return nil
		}
		doc, err := s.load(path, info)
		if err != nil {
			logger.Warn("skipping %s: %v", path, err)
			return nil
		}
		docs = append(docs, doc)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", s.rootPath, err)
	}
	return docs, nil
}

// Watch reports file changes under the root until ctx is cancelled.
// Directories created after the watch starts are watched too.
func (s *Source) Watch(ctx context.Context) (<-chan domain.Change, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := s.addDirs(watcher, s.rootPath); err != nil {
		watcher.Close()
		return nil, err
	}

	s.mu.Lock()
	if s.watcher != nil {
		s.watcher.Close()
	}
	s.watcher = watcher
	s.mu.Unlock()

	changes := make(chan domain.Change)
	go func() {
		defer close(changes)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Has(fsnotify.Create) {
					if info, err := os.Stat(event.Name); err == nil && info.IsDir() && !s.hiddenUnderRoot(event.Name) {
						if err := s.addDirs(watcher, event.Name); err != nil {
							logger.Warn("watch %s: %v", event.Name, err)
						}
					}
				}
				change := s.handleFsEvent(event)
				if change == nil {
					continue
				}
				select {
				case changes <- *change:
				case <-ctx.Done():
					return
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("watcher error: %v", err)
			}
		}
	}()

	return changes, nil
}

// Close stops any active watch.
func (s *Source) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.watcher == nil {
		return nil
	}
	err := s.watcher.Close()
	s.watcher = nil
	return err
}

func (s *Source) addDirs(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && isHidden(d.Name()) {
			return filepath.SkipDir
		}
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	})
}

// handleFsEvent converts a watcher event into a change, or nil when the
// event is irrelevant (chmod, directories, hidden files, vanished files).
func (s *Source) handleFsEvent(event fsnotify.Event) *domain.Change {
	if s.hiddenUnderRoot(event.Name) {
		return nil
	}

	var changeType domain.ChangeType
	switch {
	case event.Has(fsnotify.Create):
		changeType = domain.ChangeCreated
	case event.Has(fsnotify.Write):
		changeType = domain.ChangeUpdated
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return &domain.Change{Type: domain.ChangeDeleted, Reference: event.Name}
	default:
		return nil
	}

	info, err := os.Stat(event.Name)
	if err != nil || info.IsDir() {
		return nil
	}
	doc, err := s.load(event.Name, info)
	if err != nil {
		logger.Debug("read %s: %v", event.Name, err)
		return nil
	}
	return &domain.Change{Type: changeType, Reference: event.Name, Document: doc}
}

func (s *Source) load(path string, info fs.FileInfo) (*domain.RawDocument, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	md := domain.NewMetadata()
	md.Set(FieldFileName, info.Name())
	md.Set(FieldFileSize, strconv.FormatInt(info.Size(), 10))
	md.Set(FieldFileLastModified, info.ModTime().UTC().Format(time.RFC3339))

	return &domain.RawDocument{
		Reference:   path,
		Content:     content,
		ContentType: detectMIMEType(path),
		Metadata:    md,
		ParseState:  s.parseState,
	}, nil
}

// fallbackTypes covers extensions the platform MIME table often lacks or
// disagrees on.
var fallbackTypes = map[string]string{
	".md":       "text/markdown",
	".markdown": "text/markdown",
	".txt":      "text/plain",
	".html":     "text/html",
	".htm":      "text/html",
	".xml":      "application/xml",
	".go":       "text/x-go",
	".py":       "text/x-python",
	".rs":       "text/x-rust",
	".ts":       "text/typescript",
	".yaml":     "text/yaml",
	".yml":      "text/yaml",
	".toml":     "text/toml",
	".sh":       "text/x-shellscript",
	".sql":      "text/x-sql",
	".csv":      "text/csv",
}

// detectMIMEType guesses a content type from the file extension.
// Files without an extension are treated as plain text.
func detectMIMEType(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return "text/plain"
	}
	if t, ok := fallbackTypes[ext]; ok {
		return t
	}
	if t := mime.TypeByExtension(ext); t != "" {
		if mediaType, _, err := mime.ParseMediaType(t); err == nil {
			return mediaType
		}
		return t
	}
	return "application/octet-stream"
}

// isHidden reports whether any path component starts with a dot.
// hiddenUnderRoot reports whether path has a hidden component below the
// root. Dot-directories above the root do not count.
func (s *Source) hiddenUnderRoot(path string) bool {
	rel, err := filepath.Rel(s.rootPath, path)
	if err != nil {
		rel = path
	}
	return isHidden(rel)
}

func isHidden(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part == "" || part == "." || part == ".." {
			continue
		}
		if strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}
