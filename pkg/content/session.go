package content

import (
	"context"
	"sync"

	"github.com/DhairyaS450/personal-website-sub000/internal/entity"
	"github.com/DhairyaS450/personal-website-sub000/internal/pkg/apperror"
)

// Session is the client-held editing state: the authoritative in-memory
// document, the edit-mode flag and the admin credential. It owns the only
// write path in the whole application — every page editor eventually calls
// Commit with a full, reconstructed document.
type Session struct {
	mu sync.Mutex

	client *Client
	creds  CredentialStore

	content    *entity.WebsiteContent
	loading    bool
	lastErr    error
	editMode   bool
	credential string
}

// NewSession restores any persisted credential so the editor does not need
// to re-authenticate on every start.
func NewSession(client *Client, creds CredentialStore) *Session {
	s := &Session{
		client:  client,
		creds:   creds,
		loading: true,
	}
	if creds != nil {
		s.credential = creds.Load()
	}
	return s
}

// Load fetches the document. On any failure the built-in fallback document
// is substituted so pages always have something to render; the error is
// kept for inspection but rendering never blocks on it.
func (s *Session) Load(ctx context.Context) {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	doc, err := s.client.FetchContent(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.content = DefaultContent()
		s.lastErr = err
		return
	}
	s.content = doc
	s.lastErr = nil
}

// Content returns the current authoritative document. Never nil once Load
// has settled.
func (s *Session) Content() *entity.WebsiteContent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.content
}

func (s *Session) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// SetEditMode flips the UI flag. It has no server-side effect; persistence
// happens only when a page reducer flushes and calls Commit.
func (s *Session) SetEditMode(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editMode = on
}

func (s *Session) EditMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editMode
}

// SetCredential stores or clears the token, persisting it across restarts.
func (s *Session) SetCredential(token string) {
	s.mu.Lock()
	s.credential = token
	creds := s.creds
	s.mu.Unlock()

	if creds == nil {
		return
	}
	if token == "" {
		creds.Clear()
	} else {
		creds.Save(token)
	}
}

func (s *Session) HasCredential() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.credential != ""
}

// Login exchanges the password for a token and stores it as the session
// credential.
func (s *Session) Login(ctx context.Context, password string) error {
	token, err := s.client.Login(ctx, password)
	if err != nil {
		s.mu.Lock()
		s.lastErr = err
		s.mu.Unlock()
		return err
	}
	s.SetCredential(token)
	return nil
}

// Commit replaces the remote document with doc. Without a credential it
// fails immediately — no network call is made. On success doc becomes the
// session's authoritative content. Commits are not queued or retried; two
// racing commits resolve last-writer-wins at the store.
func (s *Session) Commit(ctx context.Context, doc *entity.WebsiteContent) bool {
	s.mu.Lock()
	token := s.credential
	s.mu.Unlock()

	if token == "" {
		s.mu.Lock()
		s.lastErr = apperror.ErrAuthRequired
		s.mu.Unlock()
		return false
	}

	if err := s.client.PutContent(ctx, token, doc); err != nil {
		s.mu.Lock()
		s.lastErr = err
		s.mu.Unlock()
		return false
	}

	s.mu.Lock()
	s.content = doc
	s.lastErr = nil
	s.mu.Unlock()
	return true
}
