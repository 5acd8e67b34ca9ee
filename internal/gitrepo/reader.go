// Package gitrepo reads commit history, branches, and file composition from
// a local working copy. All reads are blocking and best-effort: a commit
// whose change stats cannot be computed contributes zero rather than
// aborting the aggregate.
package gitrepo

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"

	"devstats/internal/domain"
)

const (
	// DetachedHead is the branch name reported when no branch is checked out.
	DetachedHead = "HEAD (detached)"
	// NoExtension is the bucket label for files without an extension.
	NoExtension = "(no extension)"

	// statsSampleSize bounds how many recent commits are inspected for line
	// change totals. A full-history diff scan is too slow on large repos.
	statsSampleSize = 100

	messageMaxLen = 72
	shortSHALen   = 7
	topExtensions = 20
)

// ErrNotARepository means the path exists but is not a valid repository root.
var ErrNotARepository = errors.New("not a git repository")

// Repo is an open handle on a local working copy. A handle is owned by one
// logical analysis session at a time and is not safe for concurrent use.
type Repo struct {
	repo   *git.Repository
	path   string
	logger *log.Logger
}

// Open opens the working copy at path. A missing path surfaces as
// fs.ErrNotExist; an existing path that is not a repository root surfaces as
// ErrNotARepository.
func Open(path string, logger *log.Logger) (*Repo, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	if _, err := os.Stat(abs); err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	repo, err := git.PlainOpen(abs)
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%w: %s", ErrNotARepository, path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return &Repo{repo: repo, path: abs, logger: logger}, nil
}

// Path returns the absolute path of the working copy.
func (r *Repo) Path() string {
	return r.path
}

// Analyze walks the full history newest-first and reduces it into a
// LocalRepoStats aggregate. The returned value holds no reference back into
// the repository handle.
func (r *Repo) Analyze() (domain.LocalRepoStats, error) {
	stats := domain.LocalRepoStats{
		Path:          r.path,
		Name:          filepath.Base(r.path),
		CurrentBranch: r.currentBranch(),
	}

	branches, err := r.repo.Branches()
	if err != nil {
		return stats, fmt.Errorf("list branches: %w", err)
	}
	defer branches.Close()
	if err := branches.ForEach(func(*plumbing.Reference) error {
		stats.TotalBranches++
		return nil
	}); err != nil {
		return stats, fmt.Errorf("list branches: %w", err)
	}

	commits, err := r.allCommits()
	if err != nil {
		return stats, err
	}
	stats.TotalCommits = len(commits)

	// Contributor ranking: descending commit count, ties broken by first
	// appearance in the traversal.
	counts := make(map[string]int)
	var firstSeen []string
	for _, c := range commits {
		name := c.Author.Name
		if _, seen := counts[name]; !seen {
			firstSeen = append(firstSeen, name)
		}
		counts[name]++
	}
	contributors := make([]domain.Contributor, 0, len(firstSeen))
	for _, name := range firstSeen {
		contributors = append(contributors, domain.Contributor{Name: name, Commits: counts[name]})
	}
	sort.SliceStable(contributors, func(i, j int) bool {
		return contributors[i].Commits > contributors[j].Commits
	})
	stats.Contributors = contributors

	if len(commits) > 0 {
		last := commits[0].Committer.When
		first := commits[len(commits)-1].Committer.When
		stats.LastCommit = &last
		stats.FirstCommit = &first
	}

	for _, c := range commits[:min(statsSampleSize, len(commits))] {
		fileStats, err := c.Stats()
		if err != nil {
			r.logger.Printf("no change stats for %s: %v", c.Hash.String()[:shortSHALen], err)
			continue
		}
		for _, fs := range fileStats {
			stats.LinesAdded += fs.Addition
			stats.LinesDeleted += fs.Deletion
		}
	}

	return stats, nil
}

// RecentCommits returns up to count most-recent commits. The author filter
// is a case-insensitive substring match applied inline on the bounded
// traversal: it never extends the scan past count unfiltered commits, so
// fewer than count records may come back even when more matches exist
// deeper in history.
func (r *Repo) RecentCommits(count int, authorFilter string) ([]domain.Commit, error) {
	if count <= 0 {
		return nil, nil
	}
	iter, err := r.log()
	if err != nil || iter == nil {
		return nil, err
	}
	defer iter.Close()

	filter := strings.ToLower(authorFilter)
	var commits []domain.Commit
	scanned := 0
	err = iter.ForEach(func(c *object.Commit) error {
		if scanned == count {
			return storer.ErrStop
		}
		scanned++
		if filter != "" && !strings.Contains(strings.ToLower(c.Author.Name), filter) {
			return nil
		}
		commits = append(commits, r.convertCommit(c))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk commits: %w", err)
	}
	return commits, nil
}

// CommitFrequency buckets commits of the last days days by weekday. All
// seven weekday names are always present. Traversal stops at the first
// commit older than the window, so the result reflects a contiguous recent
// slice of history.
func (r *Repo) CommitFrequency(days int) (map[string]int, error) {
	frequency := make(map[string]int, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		frequency[d.String()] = 0
	}

	iter, err := r.log()
	if err != nil {
		return nil, err
	}
	if iter == nil {
		return frequency, nil
	}
	defer iter.Close()

	cutoff := time.Now().UTC().Add(-time.Duration(days) * 24 * time.Hour)
	err = iter.ForEach(func(c *object.Commit) error {
		if c.Committer.When.Before(cutoff) {
			return storer.ErrStop
		}
		frequency[c.Committer.When.Weekday().String()]++
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk commits: %w", err)
	}
	return frequency, nil
}

// FileTypes walks the file tree of the head commit and counts entries per
// extension, descending, capped at the topExtensions most common. A
// repository without a readable head degrades to an empty result.
func (r *Repo) FileTypes() ([]domain.ExtensionCount, error) {
	head, err := r.repo.Head()
	if err != nil {
		r.logger.Printf("no head commit: %v", err)
		return nil, nil
	}
	commit, err := r.repo.CommitObject(head.Hash())
	if err != nil {
		r.logger.Printf("resolve head commit: %v", err)
		return nil, nil
	}
	tree, err := commit.Tree()
	if err != nil {
		r.logger.Printf("resolve head tree: %v", err)
		return nil, nil
	}

	counts := make(map[string]int)
	var firstSeen []string
	err = tree.Files().ForEach(func(f *object.File) error {
		ext := extensionOf(f.Name)
		if _, seen := counts[ext]; !seen {
			firstSeen = append(firstSeen, ext)
		}
		counts[ext]++
		return nil
	})
	if err != nil {
		r.logger.Printf("walk head tree: %v", err)
		return nil, nil
	}

	extensions := make([]domain.ExtensionCount, 0, len(firstSeen))
	for _, ext := range firstSeen {
		extensions = append(extensions, domain.ExtensionCount{Extension: ext, Count: counts[ext]})
	}
	sort.SliceStable(extensions, func(i, j int) bool {
		return extensions[i].Count > extensions[j].Count
	})
	if len(extensions) > topExtensions {
		extensions = extensions[:topExtensions]
	}
	return extensions, nil
}

// currentBranch resolves the checked-out branch name, falling back to the
// detached sentinel. An unborn branch in a freshly initialized repository
// still reports its symbolic target.
func (r *Repo) currentBranch() string {
	head, err := r.repo.Head()
	if err == nil && head.Name().IsBranch() {
		return head.Name().Short()
	}
	if ref, refErr := r.repo.Reference(plumbing.HEAD, false); refErr == nil && ref.Type() == plumbing.SymbolicReference {
		return ref.Target().Short()
	}
	return DetachedHead
}

// log opens a newest-first commit iterator. A repository without any commit
// yields a nil iterator and no error.
func (r *Repo) log() (object.CommitIter, error) {
	iter, err := r.repo.Log(&git.LogOptions{Order: git.LogOrderCommitterTime})
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("walk commits: %w", err)
	}
	return iter, nil
}

func (r *Repo) allCommits() ([]*object.Commit, error) {
	iter, err := r.log()
	if err != nil || iter == nil {
		return nil, err
	}
	defer iter.Close()

	var commits []*object.Commit
	if err := iter.ForEach(func(c *object.Commit) error {
		commits = append(commits, c)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("walk commits: %w", err)
	}
	return commits, nil
}

func (r *Repo) convertCommit(c *object.Commit) domain.Commit {
	sha := c.Hash.String()
	commit := domain.Commit{
		ShortSHA:    sha[:shortSHALen],
		SHA:         sha,
		Message:     firstLine(c.Message),
		Author:      c.Author.Name,
		AuthorEmail: c.Author.Email,
		Date:        c.Committer.When,
	}
	fileStats, err := c.Stats()
	if err != nil {
		r.logger.Printf("no change stats for %s: %v", commit.ShortSHA, err)
		return commit
	}
	commit.FilesChanged = len(fileStats)
	for _, fs := range fileStats {
		commit.Insertions += fs.Addition
		commit.Deletions += fs.Deletion
	}
	return commit
}

func firstLine(message string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(message), "\n")
	line = strings.TrimRight(line, "\r")
	if len(line) > messageMaxLen {
		line = line[:messageMaxLen]
	}
	return line
}

// extensionOf buckets dotfiles like .gitignore as extensionless.
func extensionOf(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext == "" || ext == base {
		return NoExtension
	}
	return ext
}
