package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-git/go-git/v5"
)

// ErrClone marks a repository that could not be materialized. This is a
// setup failure; callers abort the run.
var ErrClone = errors.New("repository unavailable")

// Source is a local checkout of the target repository. Cleanup removes the
// temp clone; for local directories used in place it is a no-op.
type Source struct {
	Path string

	cloned bool
}

func (s *Source) Cleanup() {
	if s.cloned {
		_ = os.RemoveAll(s.Path)
	}
}

// Materialize turns a repository spec into a local directory. An existing
// local path is used as-is; anything else is normalized to a clone URL and
// shallow-cloned into a temp directory.
func Materialize(ctx context.Context, spec string) (*Source, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, fmt.Errorf("%w: empty repository spec", ErrClone)
	}

	if info, err := os.Stat(spec); err == nil && info.IsDir() {
		return &Source{Path: spec}, nil
	}

	cloneURL, err := buildCloneURL(spec)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrClone, err)
	}

	dir, err := os.MkdirTemp("", "importlens-*")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrClone, err)
	}

	_, err = git.PlainCloneContext(ctx, dir, false, &git.CloneOptions{
		URL:   cloneURL,
		Depth: 1,
	})
	if err != nil {
		_ = os.RemoveAll(dir)
		return nil, fmt.Errorf("%w: failed to clone %s: %v", ErrClone, cloneURL, err)
	}

	return &Source{Path: dir, cloned: true}, nil
}

// buildCloneURL normalizes a repository spec: known URL schemes pass through,
// a bare "owner/repo" becomes its GitHub HTTPS URL, anything else is rejected.
func buildCloneURL(repo string) (string, error) {
	trimmed := strings.TrimSpace(repo)
	if strings.HasPrefix(trimmed, "http://") ||
		strings.HasPrefix(trimmed, "https://") ||
		strings.HasPrefix(trimmed, "ssh://") ||
		strings.HasPrefix(trimmed, "file://") {
		return trimmed, nil
	}

	if strings.Contains(trimmed, "://") {
		return "", fmt.Errorf("unsupported repo URL scheme: %s", trimmed)
	}

	trimmed = strings.TrimSuffix(trimmed, ".git")
	return fmt.Sprintf("https://github.com/%s.git", trimmed), nil
}
