package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"panelprompt/internal/config"
	"panelprompt/internal/kv"
	"panelprompt/internal/library"
	"panelprompt/internal/parser"
)

// HashesKey holds the content hash of every imported file, keyed by path.
const HashesKey = "panelprompt_import_hashes"

type Result struct {
	Created      int
	Updated      int
	FilesSkipped int
	Errors       []error
}

type Options struct {
	Full bool
}

type pendingDoc struct {
	doc  *parser.Document
	hash string
}

func Run(ctx context.Context, cfg *config.ProjectConfig, lib *library.Library, store kv.Store, options Options) (*Result, error) {
	result := &Result{}

	hashes, err := loadHashes(ctx, store)
	if err != nil {
		return nil, err
	}
	if options.Full {
		hashes = make(map[string]string)
	}

	files, err := walkMarkdownFiles(cfg.Assets.Paths, cfg.Assets.Exclude)
	if err != nil {
		return nil, fmt.Errorf("walking asset files: %w", err)
	}

	var pending []pendingDoc
	for _, path := range files {
		hash, err := computeHash(path)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("hashing %s: %w", path, err))
			continue
		}
		if existing, ok := hashes[path]; ok && existing == hash {
			result.FilesSkipped++
			continue
		}

		doc, err := parser.ParseFile(path)
		if err != nil {
			if errors.Is(err, parser.ErrNoFrontmatter) || errors.Is(err, parser.ErrMissingType) || errors.Is(err, parser.ErrUnknownType) {
				slog.Warn("skipping asset file", "path", path, "error", err)
				result.FilesSkipped++
				continue
			}
			result.Errors = append(result.Errors, fmt.Errorf("parsing %s: %w", path, err))
			continue
		}
		pending = append(pending, pendingDoc{doc: doc, hash: hash})
	}

	// Characters go first so dialogs can name them.
	sort.SliceStable(pending, func(i, j int) bool {
		return kindOrder(pending[i].doc.Kind) < kindOrder(pending[j].doc.Kind)
	})

	for _, item := range pending {
		created, err := apply(ctx, lib, item.doc)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("importing %s: %w", item.doc.SourceFile, err))
			continue
		}
		if created {
			result.Created++
		} else {
			result.Updated++
		}
		hashes[item.doc.SourceFile] = item.hash
		slog.Debug("imported asset", "kind", item.doc.Kind, "title", item.doc.Title, "created", created)
	}

	if err := saveHashes(ctx, store, hashes); err != nil {
		return nil, err
	}
	return result, nil
}

func kindOrder(kind library.Kind) int {
	for i, k := range library.Kinds {
		if k == kind {
			return i
		}
	}
	return len(library.Kinds)
}

func loadHashes(ctx context.Context, store kv.Store) (map[string]string, error) {
	hashes := make(map[string]string)
	raw, ok, err := store.Get(ctx, HashesKey)
	if err != nil {
		return nil, fmt.Errorf("reading import hashes: %w", err)
	}
	if !ok {
		return hashes, nil
	}
	if err := json.Unmarshal(raw, &hashes); err != nil {
		slog.Warn("ignoring malformed import hashes", "key", HashesKey, "error", err)
		return make(map[string]string), nil
	}
	if hashes == nil {
		hashes = make(map[string]string)
	}
	return hashes, nil
}

func saveHashes(ctx context.Context, store kv.Store, hashes map[string]string) error {
	payload, err := json.Marshal(hashes)
	if err != nil {
		return fmt.Errorf("encoding import hashes: %w", err)
	}
	if err := store.Set(ctx, HashesKey, payload); err != nil {
		return fmt.Errorf("writing import hashes: %w", err)
	}
	return nil
}

func walkMarkdownFiles(roots []string, excludes []string) ([]string, error) {
	excluded := make([]string, 0, len(excludes))
	for _, path := range excludes {
		if path == "" {
			continue
		}
		excluded = append(excluded, filepath.Clean(path))
	}

	var files []string
	for _, root := range roots {
		if root == "" {
			continue
		}
		root = filepath.Clean(root)
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if isExcluded(path, excluded) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if d.IsDir() || !strings.HasSuffix(strings.ToLower(d.Name()), ".md") {
				return nil
			}
			files = append(files, path)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}

func isExcluded(path string, excludes []string) bool {
	clean := filepath.Clean(path)
	for _, exclude := range excludes {
		if exclude == clean || strings.HasPrefix(clean, exclude+string(os.PathSeparator)) {
			return true
		}
	}
	return false
}

func computeHash(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
