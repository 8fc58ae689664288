package usecase_test

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/mononotes/mononotes/internal/domain/apperror"
	"github.com/mononotes/mononotes/internal/domain/contract"
	"github.com/mononotes/mononotes/internal/domain/entity"
)

// fakeFetcher is an in-memory remote content store with compare-and-swap
// semantics matching the real one.
type fakeFetcher struct {
	mu          sync.Mutex
	files       map[string]string
	shas        map[string]string
	rev         int
	failAll     bool
	listCalls   int
	putCalls    int
	deleteCalls int
	lastMessage string

	// afterHead, when set, runs once after the next HeadFile call. It
	// simulates a third-party write between precondition resolution and
	// the conditional write.
	afterHead func(f *fakeFetcher)
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{
		files: make(map[string]string),
		shas:  make(map[string]string),
	}
}

func (f *fakeFetcher) seed(path, content string) string {
	f.rev++
	sha := fmt.Sprintf("sha-%d", f.rev)
	f.files[path] = content
	f.shas[path] = sha
	return sha
}

func (f *fakeFetcher) unavailable() error {
	return fmt.Errorf("connection refused: %w", apperror.ErrRemoteUnavailable)
}

func (f *fakeFetcher) ListFiles(ctx context.Context, branch string) ([]entity.RemoteFileRef, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.failAll {
		return nil, f.unavailable()
	}

	refs := make([]entity.RemoteFileRef, 0, len(f.files))
	for path := range f.files {
		refs = append(refs, entity.RemoteFileRef{Path: path, Branch: branch, SHA: f.shas[path]})
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i].Path < refs[j].Path })
	return refs, nil
}

func (f *fakeFetcher) ReadFile(ctx context.Context, path, branch string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll {
		return "", f.unavailable()
	}
	content, ok := f.files[path]
	if !ok {
		return "", apperror.NotFoundf("file %q", path)
	}
	return content, nil
}

func (f *fakeFetcher) HeadFile(ctx context.Context, path, branch string) (string, error) {
	f.mu.Lock()
	if f.failAll {
		f.mu.Unlock()
		return "", f.unavailable()
	}
	sha := f.shas[path]
	hook := f.afterHead
	f.afterHead = nil
	if hook != nil {
		hook(f)
	}
	f.mu.Unlock()
	return sha, nil
}

func (f *fakeFetcher) PutFile(ctx context.Context, input contract.PutFileInput) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.putCalls++
	f.lastMessage = input.Message
	if f.failAll {
		return "", f.unavailable()
	}
	if f.shas[input.Path] != input.SHA {
		return "", fmt.Errorf("version hash is stale: %w", apperror.ErrConcurrentModification)
	}
	return f.seed(input.Path, input.Content), nil
}

func (f *fakeFetcher) DeleteFile(ctx context.Context, path, sha, branch, message string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleteCalls++
	f.lastMessage = message
	if f.failAll {
		return f.unavailable()
	}
	current, ok := f.shas[path]
	if !ok {
		return apperror.NotFoundf("file %q", path)
	}
	if current != sha {
		return fmt.Errorf("version hash is stale: %w", apperror.ErrConcurrentModification)
	}
	delete(f.files, path)
	delete(f.shas, path)
	return nil
}

var _ contract.IContentFetcher = (*fakeFetcher)(nil)

type fakeMirror struct {
	files []contract.MirrorFile
	err   error
}

func (m *fakeMirror) ListFiles() ([]contract.MirrorFile, error) {
	return m.files, m.err
}

var _ contract.ILocalMirror = (*fakeMirror)(nil)

type fakeNotifier struct {
	err   error
	calls int
}

func (n *fakeNotifier) Notify(ctx context.Context) error {
	n.calls++
	return n.err
}

var _ contract.IDeployNotifier = (*fakeNotifier)(nil)

type fakeInvalidator struct {
	calls int
}

func (i *fakeInvalidator) InvalidateCache() {
	i.calls++
}

// fakeViewStore mimics the counter store: the throttle token create is one
// atomic check-absent-and-set under the store's own lock.
type fakeViewStore struct {
	mu     sync.Mutex
	counts map[string]int64
	tokens map[string]time.Time

	failThrottle bool
}

func newFakeViewStore() *fakeViewStore {
	return &fakeViewStore{
		counts: make(map[string]int64),
		tokens: make(map[string]time.Time),
	}
}

func (s *fakeViewStore) Get(ctx context.Context, slug string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts[slug], nil
}

func (s *fakeViewStore) GetMany(ctx context.Context, slugs []string) (map[string]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	counts := make(map[string]int64, len(slugs))
	for _, slug := range slugs {
		counts[slug] = s.counts[slug]
	}
	return counts, nil
}

func (s *fakeViewStore) AcquireThrottle(ctx context.Context, slug, fingerprint string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failThrottle {
		return false, fmt.Errorf("store unreachable")
	}
	key := slug + ":" + fingerprint
	if expiry, ok := s.tokens[key]; ok && time.Now().Before(expiry) {
		return false, nil
	}
	s.tokens[key] = time.Now().Add(ttl)
	return true, nil
}

func (s *fakeViewStore) Increment(ctx context.Context, slug string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts[slug]++
	return s.counts[slug], nil
}

var _ contract.IViewStore = (*fakeViewStore)(nil)
