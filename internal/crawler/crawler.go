package crawler

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// SourceFile is one Python file found during a scan, with its source loaded.
type SourceFile struct {
	// Path is the absolute location on disk.
	Path string

	// RelPath is the project-relative path with forward slashes.
	RelPath string

	// Module is the dotted import path derived from RelPath.
	Module string

	// IsPackage is true for __init__.py files.
	IsPackage bool

	// Source is the file content.
	Source string
}

// Crawler scans a directory tree for Python modules.
type Crawler struct {
	ignored  []string
	excludes []string
}

// NewCrawler creates a new crawler instance. The excludes are doublestar
// patterns matched against project-relative paths, on top of the fixed
// ignore set for VCS and tooling directories.
func NewCrawler(excludes ...string) *Crawler {
	return &Crawler{
		ignored: []string{
			".git", "venv", ".venv", "__pycache__", "node_modules",
			".tox", ".mypy_cache", ".eggs", "build", "dist",
		},
		excludes: excludes,
	}
}

// ScanProject walks the root directory and streams every readable Python
// module through the callback, in lexical path order. Unreadable files do
// not stop the scan; they come back as warnings so the caller can surface
// them after the run.
func (c *Crawler) ScanProject(root string, onFile func(*SourceFile)) ([]string, error) {
	var warnings []string

	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == root {
				return err
			}
			warnings = append(warnings, fmt.Sprintf("skipped %s: %v", p, err))
			slog.Warn("skipping unreadable path", "path", p, "error", err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		rel, relErr := filepath.Rel(root, p)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if p == root {
				return nil
			}
			for _, ign := range c.ignored {
				if d.Name() == ign {
					return filepath.SkipDir
				}
			}
			if c.excluded(rel) {
				return filepath.SkipDir
			}
			return nil
		}

		if !strings.HasSuffix(d.Name(), ".py") {
			return nil
		}
		if c.excluded(rel) {
			return nil
		}

		module, isPackage := ModuleName(rel)
		if module == "" {
			// a root-level __init__.py has no importable path
			slog.Debug("skipping file with empty module path", "path", rel)
			return nil
		}

		source, readErr := os.ReadFile(p)
		if readErr != nil {
			warnings = append(warnings, fmt.Sprintf("skipped %s: %v", rel, readErr))
			slog.Warn("skipping unreadable file", "path", rel, "error", readErr)
			return nil
		}

		onFile(&SourceFile{
			Path:      p,
			RelPath:   rel,
			Module:    module,
			IsPackage: isPackage,
			Source:    string(source),
		})
		return nil
	})
	if err != nil {
		return warnings, fmt.Errorf("scan failed: %w", err)
	}

	return warnings, nil
}

func (c *Crawler) excluded(rel string) bool {
	for _, pattern := range c.excludes {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

// ModuleName converts a project-relative file path into its dotted import
// path: "pkg/util.py" becomes "pkg.util" and a package's "pkg/__init__.py"
// becomes "pkg". The root "__init__.py" maps to the empty string.
func ModuleName(rel string) (string, bool) {
	p := strings.TrimSuffix(filepath.ToSlash(rel), ".py")

	isPackage := false
	if path.Base(p) == "__init__" {
		isPackage = true
		p = path.Dir(p)
		if p == "." {
			p = ""
		}
	}

	return strings.ReplaceAll(p, "/", "."), isPackage
}
