package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"profilekit/internal/ai"
	"profilekit/internal/config"
	"profilekit/internal/encryption"
	"profilekit/internal/profile"
	"profilekit/internal/render"
	"profilekit/internal/store"
	"profilekit/internal/vault"
)

// Options tune how a ProfileApp is assembled. The zero value is usable.
type Options struct {
	// Verbose enables debug records in the log file.
	Verbose bool

	// Passphrase unlocks the document encryption key. Defaults to
	// TerminalPassphrase.
	Passphrase PassphraseFunc

	// HTTPClient fetches remote images for AI edits. Defaults to
	// http.DefaultClient.
	HTTPClient *http.Client

	// Clock stamps the log session id. Defaults to profile.RealClock.
	Clock profile.Clock

	// IDGen names new media. Defaults to profile.UUIDGenerator.
	IDGen profile.IDGenerator
}

// ProfileApp is the application layer between the CLI and the profile
// session. It constructs all dependencies from config, exposes high-level
// operations that accept raw strings, and closes the store on Close.
type ProfileApp struct {
	cfg     *config.Config
	store   profile.Store
	backing profile.Store
	vault   profile.MediaVault
	session *profile.Session
	editor  *profile.Editor
	logger  profile.Logger
	logFile *os.File
	closed  bool
}

// NewProfileApp creates a fully wired ProfileApp from the given config.
// The caller must call Close when done.
func NewProfileApp(ctx context.Context, cfg *config.Config, opts Options) (*ProfileApp, error) {
	if opts.Passphrase == nil {
		opts.Passphrase = TerminalPassphrase
	}
	if opts.Clock == nil {
		opts.Clock = profile.RealClock{}
	}
	if opts.IDGen == nil {
		opts.IDGen = profile.UUIDGenerator{}
	}

	level := slog.LevelInfo
	if opts.Verbose {
		level = slog.LevelDebug
	}
	sessionID := opts.Clock.Now().UTC().Format("20060102T150405Z")
	slogger, logFile, err := newLogger(cfg.LogDir, sessionID, level)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}
	logger := &slogAdapter{l: slogger}

	a, err := assemble(ctx, cfg, opts, logger)
	if err != nil {
		logFile.Close()
		return nil, err
	}
	a.logFile = logFile
	return a, nil
}

func assemble(ctx context.Context, cfg *config.Config, opts Options, logger profile.Logger) (*ProfileApp, error) {
	v, err := vault.NewVaultFromConfig(ctx, cfg.Vault)
	if err != nil {
		return nil, fmt.Errorf("creating vault: %w", err)
	}
	if err := v.ValidateSetup(); err != nil {
		return nil, fmt.Errorf("validating vault: %w", err)
	}

	backing, err := store.NewStoreFromConfig(cfg.Store, cfg.DeviceID, logger)
	if err != nil {
		return nil, fmt.Errorf("creating store: %w", err)
	}
	if mc, ok := backing.(migrationChecker); ok {
		if err := mc.CheckMigrations(); err != nil {
			backing.Close()
			return nil, fmt.Errorf("checking store schema: %w", err)
		}
	}

	st, err := withEncryption(backing, cfg.Encryption, opts.Passphrase, logger)
	if err != nil {
		backing.Close()
		return nil, err
	}

	apiKey, err := ai.LookupCredential(cfg.AI.CredentialFile)
	if err != nil {
		backing.Close()
		return nil, fmt.Errorf("loading API credential: %w", err)
	}
	var assistant profile.Assistant
	if apiKey != "" {
		bridge, err := ai.NewBridge(ctx, apiKey, ai.Models{Image: cfg.AI.ImageModel, Text: cfg.AI.TextModel}, logger)
		if err != nil {
			backing.Close()
			return nil, fmt.Errorf("creating AI bridge: %w", err)
		}
		assistant = bridge
	} else {
		logger.Debug("no API credential configured, AI operations disabled")
	}

	session := profile.NewSession(st, logger)
	editor := profile.NewEditor(session, v, assistant, ai.NewEncoder(v, opts.HTTPClient), opts.IDGen, logger)

	return &ProfileApp{
		cfg:     cfg,
		store:   st,
		backing: backing,
		vault:   v,
		session: session,
		editor:  editor,
		logger:  logger,
	}, nil
}

// withEncryption wraps st in an EncryptedStore when encryption is enabled,
// creating the key pair on first use.
func withEncryption(st profile.Store, cfg config.EncryptionConfig, passphrase PassphraseFunc, logger profile.Logger) (profile.Store, error) {
	if !cfg.Enabled() {
		return st, nil
	}
	enc, err := encryption.NewEncryptorFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating encryptor: %w", err)
	}

	firstUse := !enc.IsConfigured()
	pass, err := passphrase(firstUse)
	if err != nil {
		return nil, err
	}
	if firstUse {
		if err := enc.Setup(pass); err != nil {
			return nil, fmt.Errorf("setting up encryption: %w", err)
		}
		logger.Info("encryption keys created", "type", cfg.Type)
	}

	opener, err := enc.Unlock(pass)
	if err != nil {
		return nil, fmt.Errorf("unlocking encryption key: %w", err)
	}
	return store.NewEncryptedStore(st, enc, opener), nil
}

// Session exposes the underlying session.
func (a *ProfileApp) Session() *profile.Session { return a.session }

// ShowProfile renders the profile with the grid for tab.
func (a *ProfileApp) ShowProfile(w io.Writer, tab string) error {
	t := profile.Tab(tab)
	switch t {
	case "":
		t = profile.TabGrid
	case profile.TabGrid, profile.TabReels, profile.TabTagged:
	default:
		return fmt.Errorf("unknown tab %q (want grid, reels or tagged)", tab)
	}
	a.session.SelectTab(t)
	return render.Profile(w, a.session.Profile(), a.session.Focus())
}

// ShowStats renders one statistics document, or all three when which is
// empty.
func (a *ProfileApp) ShowStats(w io.Writer, which string) error {
	if which == "" {
		for _, doc := range []profile.StatDocument{profile.StatInteractions, profile.StatViews, profile.StatAudience} {
			if err := a.showStats(w, doc); err != nil {
				return err
			}
			fmt.Fprintln(w)
		}
		return nil
	}
	doc, err := profile.ParseStatDocument(which)
	if err != nil {
		return err
	}
	return a.showStats(w, doc)
}

func (a *ProfileApp) showStats(w io.Writer, doc profile.StatDocument) error {
	switch doc {
	case profile.StatInteractions:
		return render.Interactions(w, a.session.Interactions())
	case profile.StatViews:
		return render.Views(w, a.session.Views())
	default:
		return render.Audience(w, a.session.Audience())
	}
}

// SetField sets one profile header field from its text form.
func (a *ProfileApp) SetField(field, value string) error {
	next, err := WithHeaderField(a.session.Profile(), field, value)
	if err != nil {
		return err
	}
	a.session.UpdateProfile(next)
	return nil
}

// SetBio replaces the bio.
func (a *ProfileApp) SetBio(bio string) {
	a.session.SetBio(bio)
}

// SetProfilePic points the avatar at source, importing local files first.
func (a *ProfileApp) SetProfilePic(source string) (string, error) {
	ref, _, err := a.resolveMedia(source)
	if err != nil {
		return "", err
	}
	a.session.SetProfilePic(ref)
	return ref, nil
}

// GenerateBio asks the AI bridge for a bio. When apply is true the result
// replaces the current bio.
func (a *ProfileApp) GenerateBio(ctx context.Context, apply bool) (string, error) {
	bio, err := a.editor.GenerateBio(ctx)
	if err != nil {
		return "", err
	}
	if apply {
		a.session.SetBio(bio)
	}
	return bio, nil
}

// SetHighlightTitle renames a highlight.
func (a *ProfileApp) SetHighlightTitle(id, title string) error {
	if err := a.requireHighlight(id); err != nil {
		return err
	}
	a.session.SetHighlightTitle(id, title)
	return nil
}

// SetHighlightCover points a highlight cover at source.
func (a *ProfileApp) SetHighlightCover(id, source string) (string, error) {
	if err := a.requireHighlight(id); err != nil {
		return "", err
	}
	ref, _, err := a.resolveMedia(source)
	if err != nil {
		return "", err
	}
	a.session.SetHighlightCover(id, ref)
	return ref, nil
}

func (a *ProfileApp) requireHighlight(id string) error {
	for _, h := range a.session.Profile().Highlights {
		if h.ID == id {
			return nil
		}
	}
	return fmt.Errorf("no highlight with id %q", id)
}

// ReplacePostMedia swaps the media of a post. mediaType overrides the type
// sniffed from local files; for URLs it defaults to image.
func (a *ProfileApp) ReplacePostMedia(postID, source, mediaType string) (string, error) {
	if _, _, ok := a.session.Profile().FindPost(postID); !ok {
		return "", fmt.Errorf("%w: %s", profile.ErrPostNotFound, postID)
	}
	if _, err := pickMediaType(mediaType, ""); err != nil {
		return "", err
	}
	ref, sniffed, err := a.resolveMedia(source)
	if err != nil {
		return "", err
	}
	mt, err := pickMediaType(mediaType, sniffed)
	if err != nil {
		return "", err
	}
	a.editor.SavePostMedia(postID, ref, mt)
	return ref, nil
}

// DeletePost removes a post from every sequence holding it.
func (a *ProfileApp) DeletePost(postID string) error {
	if _, _, ok := a.session.Profile().FindPost(postID); !ok {
		return fmt.Errorf("%w: %s", profile.ErrPostNotFound, postID)
	}
	a.session.DeletePost(postID)
	return nil
}

// EditPostImage runs an AI edit on a post image and returns the draft
// reference. With save the draft replaces the post image.
func (a *ProfileApp) EditPostImage(ctx context.Context, postID, instruction string, save bool) (string, error) {
	draft, err := a.editor.EditPostImage(ctx, postID, instruction)
	if err != nil {
		return "", err
	}
	if save {
		a.editor.SavePostMedia(postID, draft, profile.MediaImage)
	}
	return draft, nil
}

// SetStat sets one field of a statistics document addressed by path, for
// example "cities[0].percent".
func (a *ProfileApp) SetStat(document, path, value string) error {
	doc, err := profile.ParseStatDocument(document)
	if err != nil {
		return err
	}
	p, err := profile.ParseStatPath(path)
	if err != nil {
		return err
	}
	a.session.SetStatField(doc, p, value)
	return nil
}

// AddMedia imports a local file into the media vault.
func (a *ProfileApp) AddMedia(path string) (string, profile.MediaType, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", "", fmt.Errorf("opening media: %w", err)
	}
	defer f.Close()
	return a.editor.ImportMedia(f)
}

// WriteMedia copies the bytes behind a blob reference to w.
func (a *ProfileApp) WriteMedia(ref string, w io.Writer) (string, error) {
	return a.editor.ReadMedia(ref, w)
}

// resolveMedia turns a CLI media argument into a reference. URLs and
// existing references pass through; anything else is read as a local file
// and imported.
func (a *ProfileApp) resolveMedia(source string) (string, profile.MediaType, error) {
	for _, prefix := range []string{"http://", "https://", "data:", "blob:"} {
		if strings.HasPrefix(source, prefix) {
			return source, "", nil
		}
	}
	return a.AddMedia(source)
}

func pickMediaType(explicit string, sniffed profile.MediaType) (profile.MediaType, error) {
	switch profile.MediaType(explicit) {
	case profile.MediaImage, profile.MediaVideo:
		return profile.MediaType(explicit), nil
	case "":
		if sniffed != "" {
			return sniffed, nil
		}
		return profile.MediaImage, nil
	default:
		return "", fmt.Errorf("unknown media type %q (want image or video)", explicit)
	}
}

// migrationChecker is implemented by stores with a versioned schema.
type migrationChecker interface {
	CheckMigrations() error
}

// backuper is implemented by stores that can snapshot themselves to a file.
type backuper interface {
	BackupTo(destPath string) error
	UpdatedAt(key string) (time.Time, bool, error)
}

// Backup snapshots the document store to destPath and returns when the
// profile document was last written, or the zero time if it never was. Only
// the sqlite store supports it.
func (a *ProfileApp) Backup(destPath string) (time.Time, error) {
	b, ok := a.backing.(backuper)
	if !ok {
		return time.Time{}, fmt.Errorf("store type %q does not support backups", a.cfg.Store.Type)
	}
	if err := b.BackupTo(destPath); err != nil {
		return time.Time{}, fmt.Errorf("backing up store: %w", err)
	}
	saved, _, err := b.UpdatedAt(profile.KeyProfile)
	if err != nil {
		return time.Time{}, err
	}
	a.logger.Info("store backed up", "path", destPath, "profile_saved", saved)
	return saved, nil
}

// Close closes the store and the log file. Later calls do nothing.
func (a *ProfileApp) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true

	var errs []error
	if err := a.store.Close(); err != nil {
		errs = append(errs, fmt.Errorf("closing store: %w", err))
	}
	if a.logFile != nil {
		if err := a.logFile.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing log file: %w", err))
		}
	}
	return errors.Join(errs...)
}

// aiTimeout bounds a single AI call issued from the CLI.
const aiTimeout = 2 * time.Minute

// WithAITimeout derives a context for one AI call.
func WithAITimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, aiTimeout)
}
