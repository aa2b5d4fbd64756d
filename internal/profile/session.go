package profile

import (
	"fmt"
	"reflect"
	"sync"
)

// Tab is the grid currently shown under the profile header.
type Tab string

const (
	TabGrid   Tab = "grid"
	TabReels  Tab = "reels"
	TabTagged Tab = "tagged"
)

// Focus is the transient, never-persisted UI state.
type Focus struct {
	ActiveTab      Tab
	SelectedPostID string
}

// StatDocument names one of the three statistics snapshots.
type StatDocument string

const (
	StatInteractions StatDocument = "interactions"
	StatViews        StatDocument = "views"
	StatAudience     StatDocument = "audience"
)

// ParseStatDocument validates a statistics document name.
func ParseStatDocument(s string) (StatDocument, error) {
	switch d := StatDocument(s); d {
	case StatInteractions, StatViews, StatAudience:
		return d, nil
	default:
		return "", fmt.Errorf("unknown stats document %q (want interactions, views or audience)", s)
	}
}

// Session owns the current document snapshots and the UI focus. Every intent
// runs under one lock, produces new snapshots, and writes the changed
// document straight through to the store.
type Session struct {
	mu     sync.Mutex
	store  Store
	logger Logger

	profile      ProfileData
	interactions InteractionsStats
	views        ViewsStats
	audience     AudienceStats
	focus        Focus
}

// NewSession loads all four documents from store, falling back to the
// compiled-in defaults for anything missing or unreadable.
func NewSession(store Store, logger Logger) *Session {
	return &Session{
		store:        store,
		logger:       logger,
		profile:      Load(store, KeyProfile, DefaultProfile, logger),
		interactions: Load(store, KeyInteractions, DefaultInteractions, logger),
		views:        Load(store, KeyViews, DefaultViews, logger),
		audience:     Load(store, KeyAudience, DefaultAudience, logger),
		focus:        Focus{ActiveTab: TabGrid},
	}
}

// Profile returns the current profile snapshot. Callers must not modify it.
func (s *Session) Profile() ProfileData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// Interactions returns the current interactions snapshot.
func (s *Session) Interactions() InteractionsStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.interactions
}

// Views returns the current views snapshot.
func (s *Session) Views() ViewsStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.views
}

// Audience returns the current audience snapshot.
func (s *Session) Audience() AudienceStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.audience
}

// Focus returns the transient UI focus.
func (s *Session) Focus() Focus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.focus
}

// SelectTab switches the visible grid.
func (s *Session) SelectTab(tab Tab) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.focus.ActiveTab = tab
}

// SelectPost marks a post as open in the editor. Unknown ids are ignored.
func (s *Session) SelectPost(postID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, _, ok := s.profile.FindPost(postID); !ok {
		return false
	}
	s.focus.SelectedPostID = postID
	return true
}

// Apply runs a profile mutation and persists the result if it changed
// anything. It returns the resulting snapshot.
func (s *Session) Apply(intent string, mutate func(ProfileData) ProfileData) ProfileData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.applyLocked(intent, mutate)
}

func (s *Session) applyLocked(intent string, mutate func(ProfileData) ProfileData) ProfileData {
	next := mutate(s.profile)
	if reflect.DeepEqual(next, s.profile) {
		s.logger.Debug("intent changed nothing", "intent", intent)
		return s.profile
	}
	s.profile = next
	Save(s.store, KeyProfile, next, s.logger)
	s.logger.Info("profile updated", "intent", intent)
	return next
}

// UpdateProfile replaces the whole profile document.
func (s *Session) UpdateProfile(next ProfileData) ProfileData {
	return s.Apply("update_profile", func(doc ProfileData) ProfileData {
		return UpdateProfile(doc, next)
	})
}

// SetBio replaces the bio text.
func (s *Session) SetBio(bio string) ProfileData {
	return s.Apply("set_bio", func(doc ProfileData) ProfileData {
		return SetBio(doc, bio)
	})
}

// SetProfilePic replaces the avatar reference.
func (s *Session) SetProfilePic(url string) ProfileData {
	return s.Apply("set_profile_pic", func(doc ProfileData) ProfileData {
		return SetProfilePic(doc, url)
	})
}

// SetHighlightCover replaces a highlight cover.
func (s *Session) SetHighlightCover(highlightID, url string) ProfileData {
	return s.Apply("set_highlight_cover", func(doc ProfileData) ProfileData {
		return SetHighlightCover(doc, highlightID, url)
	})
}

// SetHighlightTitle replaces a highlight title.
func (s *Session) SetHighlightTitle(highlightID, title string) ProfileData {
	return s.Apply("set_highlight_title", func(doc ProfileData) ProfileData {
		return SetHighlightTitle(doc, highlightID, title)
	})
}

// ReplacePostMedia swaps the media of the first post found with postID.
func (s *Session) ReplacePostMedia(postID, url string, mediaType MediaType) ProfileData {
	return s.Apply("replace_post_media", func(doc ProfileData) ProfileData {
		return ReplacePostMedia(doc, postID, url, mediaType)
	})
}

// DeletePost removes postID from every sequence and closes the post editor.
func (s *Session) DeletePost(postID string) ProfileData {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc := s.applyLocked("delete_post", func(doc ProfileData) ProfileData {
		return DeletePost(doc, postID)
	})
	s.focus.SelectedPostID = ""
	return doc
}

// SetStatField updates one field of a statistics snapshot and persists the
// snapshot if it changed.
func (s *Session) SetStatField(which StatDocument, path StatPath, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch which {
	case StatInteractions:
		next := SetInteractionsField(s.interactions, path, value)
		if next != s.interactions {
			s.interactions = next
			Save(s.store, KeyInteractions, next, s.logger)
			s.logger.Info("stats updated", "document", which, "path", path.String())
			return
		}
	case StatViews:
		next := SetViewsField(s.views, path, value)
		if !reflect.DeepEqual(next, s.views) {
			s.views = next
			Save(s.store, KeyViews, next, s.logger)
			s.logger.Info("stats updated", "document", which, "path", path.String())
			return
		}
	case StatAudience:
		next := SetAudienceField(s.audience, path, value)
		if !reflect.DeepEqual(next, s.audience) {
			s.audience = next
			Save(s.store, KeyAudience, next, s.logger)
			s.logger.Info("stats updated", "document", which, "path", path.String())
			return
		}
	}
	s.logger.Debug("stat update changed nothing", "document", which, "path", path.String())
}

// Snapshot is the full persisted state: the profile and the three
// statistics documents.
type Snapshot struct {
	Profile      ProfileData       `json:"profile" yaml:"profile"`
	Interactions InteractionsStats `json:"interactions" yaml:"interactions"`
	Views        ViewsStats        `json:"views" yaml:"views"`
	Audience     AudienceStats     `json:"audience" yaml:"audience"`
}

// Snapshot returns copies of all four documents.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Profile:      s.profile.Clone(),
		Interactions: s.interactions,
		Views:        s.views.Clone(),
		Audience:     s.audience.Clone(),
	}
}

// Restore replaces all four documents and persists those that changed. The
// post editor is closed.
func (s *Session) Restore(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.applyLocked("restore", func(doc ProfileData) ProfileData {
		return UpdateProfile(doc, snap.Profile)
	})
	if snap.Interactions != s.interactions {
		s.interactions = snap.Interactions
		Save(s.store, KeyInteractions, s.interactions, s.logger)
	}
	if !reflect.DeepEqual(snap.Views, s.views) {
		s.views = snap.Views.Clone()
		Save(s.store, KeyViews, s.views, s.logger)
	}
	if !reflect.DeepEqual(snap.Audience, s.audience) {
		s.audience = snap.Audience.Clone()
		Save(s.store, KeyAudience, s.audience, s.logger)
	}
	s.focus.SelectedPostID = ""
}
