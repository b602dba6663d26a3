package materialize

import (
	"fmt"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Author identity recorded on the initial commit.
const (
	commitAuthorName  = "aabuilder"
	commitAuthorEmail = "aabuilder@localhost"
)

// initRepository creates a git repository in dir and commits every file in
// it. It returns the commit hash.
func initRepository(dir, appName string, now time.Time) (string, error) {
	repo, err := git.PlainInit(dir, false)
	if err != nil {
		return "", fmt.Errorf("init repository: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("open worktree: %w", err)
	}

	if err := wt.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return "", fmt.Errorf("stage files: %w", err)
	}

	hash, err := wt.Commit(fmt.Sprintf("Initial commit for %s", appName), &git.CommitOptions{
		Author: &object.Signature{
			Name:  commitAuthorName,
			Email: commitAuthorEmail,
			When:  now,
		},
	})
	if err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}

	return hash.String(), nil
}
