package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"profilekit/internal/ai"
	"profilekit/internal/config"
	"profilekit/internal/profile"
	"profilekit/internal/store"
	"profilekit/internal/testutil"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func clearCredentials(t *testing.T) {
	t.Helper()
	for _, name := range ai.CredentialEnvVars {
		t.Setenv(name, "")
	}
}

func newTestConfig(t *testing.T, storeType string) *config.Config {
	t.Helper()
	cfg := config.NewConfig("test-device", t.TempDir())
	cfg.Store.Type = storeType
	return cfg
}

func newTestApp(t *testing.T, cfg *config.Config) *ProfileApp {
	t.Helper()
	clearCredentials(t)
	a, err := NewProfileApp(context.Background(), cfg, Options{
		Clock: testutil.FixedClock(),
		IDGen: testutil.NewStubIDGenerator(),
		Passphrase: func(bool) (string, error) {
			return "correct horse", nil
		},
	})
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })
	return a
}

func TestNewProfileApp_Defaults(t *testing.T) {
	a := newTestApp(t, newTestConfig(t, "sqlite"))

	assert.Equal(t, "kimberly.loaiza", a.Session().Profile().Username)

	var buf bytes.Buffer
	require.NoError(t, a.ShowProfile(&buf, ""))
	assert.Contains(t, buf.String(), "KIM LOAIZA")
}

func TestProfileApp_PersistsAcrossRuns(t *testing.T) {
	for _, storeType := range []string{"filesystem", "sqlite", "badger"} {
		t.Run(storeType, func(t *testing.T) {
			cfg := newTestConfig(t, storeType)

			first := newTestApp(t, cfg)
			require.NoError(t, first.SetField("displayName", "KIMBERLY"))
			require.NoError(t, first.SetStat("views", "cities[1].name", "Hermosillo"))
			require.NoError(t, first.DeletePost("p4"))
			require.NoError(t, first.Close())

			second := newTestApp(t, cfg)
			assert.Equal(t, "KIMBERLY", second.Session().Profile().DisplayName)
			assert.Equal(t, "Hermosillo", second.Session().Views().Cities[1].Name)
			assert.Len(t, second.Session().Profile().Posts, 11)
		})
	}
}

func TestProfileApp_EncryptedStore(t *testing.T) {
	cfg := newTestConfig(t, "filesystem")
	cfg.Encryption.Type = "age"

	first := newTestApp(t, cfg)
	first.SetBio("secreto")
	require.NoError(t, first.Close())

	raw, err := os.ReadFile(filepath.Join(cfg.Store.DataDir, "documents", profile.KeyProfile+".json"))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secreto")
	assert.True(t, strings.HasPrefix(string(raw), "-----BEGIN AGE ENCRYPTED FILE-----"))

	second := newTestApp(t, cfg)
	assert.Equal(t, "secreto", second.Session().Profile().Bio)
}

func TestProfileApp_WrongPassphrase(t *testing.T) {
	cfg := newTestConfig(t, "memory")
	cfg.Encryption.Type = "age"
	newTestApp(t, cfg)

	clearCredentials(t)
	_, err := NewProfileApp(context.Background(), cfg, Options{
		Passphrase: func(bool) (string, error) { return "wrong", nil },
	})
	assert.Error(t, err)
}

func TestProfileApp_MediaCommands(t *testing.T) {
	a := newTestApp(t, newTestConfig(t, "memory"))
	img := filepath.Join(t.TempDir(), "new.png")
	require.NoError(t, os.WriteFile(img, pngHeader, 0644))

	ref, err := a.ReplacePostMedia("p3", img, "")
	require.NoError(t, err)
	assert.Equal(t, "blob:media-1", ref)
	assert.Equal(t, ref, a.Session().Profile().Posts[2].ImageURL)

	var buf bytes.Buffer
	mime, err := a.WriteMedia(ref, &buf)
	require.NoError(t, err)
	assert.Equal(t, "image/png", mime)
	assert.Equal(t, pngHeader, buf.Bytes())

	ref, err = a.ReplacePostMedia("r2", "https://example.com/clip.mp4", "video")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/clip.mp4", ref)

	_, err = a.ReplacePostMedia("p3", img, "gif")
	assert.Error(t, err)

	_, err = a.ReplacePostMedia("nope", img, "")
	assert.ErrorIs(t, err, profile.ErrPostNotFound)

	cover, err := a.SetHighlightCover("2", "https://example.com/c.jpg")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/c.jpg", a.Session().Profile().Highlights[1].CoverURL)
	assert.Equal(t, "https://example.com/c.jpg", cover)

	_, err = a.SetHighlightCover("9", "https://example.com/c.jpg")
	assert.Error(t, err)
	assert.Error(t, a.SetHighlightTitle("9", "x"))
}

func TestProfileApp_AIWithoutCredential(t *testing.T) {
	a := newTestApp(t, newTestConfig(t, "memory"))
	before := a.Session().Profile()

	_, err := a.GenerateBio(context.Background(), true)
	assert.ErrorIs(t, err, profile.ErrMissingCredential)

	_, err = a.EditPostImage(context.Background(), "p1", "make it pop", true)
	assert.ErrorIs(t, err, profile.ErrMissingCredential)

	_, err = a.EditPostImage(context.Background(), "p10", "make it pop", true)
	assert.ErrorIs(t, err, profile.ErrVideoNotEditable)

	assert.Equal(t, before, a.Session().Profile())
}

func TestProfileApp_ExportImport(t *testing.T) {
	src := newTestApp(t, newTestConfig(t, "memory"))
	require.NoError(t, src.SetField("followersCount", "41 mill."))
	require.NoError(t, src.SetStat("audience", "countries[0].percent", "88.8"))

	var buf bytes.Buffer
	require.NoError(t, src.Export(&buf))
	assert.Contains(t, buf.String(), "followersCount: 41 mill.")

	dst := newTestApp(t, newTestConfig(t, "memory"))
	require.NoError(t, dst.Import(&buf))
	assert.Equal(t, src.Session().Snapshot(), dst.Session().Snapshot())

	assert.Error(t, dst.Import(strings.NewReader("profile:\n  nickname: x\n")))
	assert.Error(t, dst.Import(strings.NewReader("")))
}

func TestProfileApp_ImportKeepsOmittedSections(t *testing.T) {
	cfg := newTestConfig(t, "sqlite")
	a := newTestApp(t, cfg)
	before := a.Session().Snapshot()

	require.NoError(t, a.Import(strings.NewReader("interactions:\n  interactions: \"999\"\n")))
	require.NoError(t, a.Import(strings.NewReader("profile:\n  bio: hola\n")))
	require.NoError(t, a.Close())

	reopened := newTestApp(t, cfg)
	got := reopened.Session().Snapshot()

	assert.Equal(t, "999", got.Interactions.Interactions)
	assert.Equal(t, "hola", got.Profile.Bio)
	assert.Equal(t, before.Profile.Username, got.Profile.Username)
	assert.Len(t, got.Profile.Posts, len(before.Profile.Posts))
	assert.Len(t, got.Profile.Highlights, len(before.Profile.Highlights))
	assert.Equal(t, before.Views, got.Views)
	assert.Equal(t, before.Audience, got.Audience)
}

func TestProfileApp_Backup(t *testing.T) {
	a := newTestApp(t, newTestConfig(t, "sqlite"))
	a.SetBio("backed up")

	dest := filepath.Join(t.TempDir(), "backup.db")
	saved, err := a.Backup(dest)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), saved, time.Minute)
	_, err = os.Stat(dest)
	assert.NoError(t, err)

	m := newTestApp(t, newTestConfig(t, "memory"))
	_, err = m.Backup(filepath.Join(t.TempDir(), "x.db"))
	assert.Error(t, err)
}

func TestProfileApp_BackupBeforeFirstSave(t *testing.T) {
	a := newTestApp(t, newTestConfig(t, "sqlite"))

	saved, err := a.Backup(filepath.Join(t.TempDir(), "backup.db"))
	require.NoError(t, err)
	assert.True(t, saved.IsZero())
}

func TestNewProfileApp_RejectsNewerSchema(t *testing.T) {
	cfg := newTestConfig(t, "sqlite")
	a := newTestApp(t, cfg)
	require.NoError(t, a.Close())

	db, err := store.OpenConnection(filepath.Join(cfg.Store.DataDir, cfg.DeviceID+".db"))
	require.NoError(t, err)
	_, err = db.Exec("UPDATE schema_migrations SET version = 99")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	clearCredentials(t)
	_, err = NewProfileApp(context.Background(), cfg, Options{Clock: testutil.FixedClock()})
	assert.Error(t, err)
}

func TestProfileApp_ReplacePostMediaRejectsTypeBeforeImport(t *testing.T) {
	cfg := newTestConfig(t, "memory")
	a := newTestApp(t, cfg)

	src := filepath.Join(t.TempDir(), "clip.png")
	require.NoError(t, os.WriteFile(src, pngHeader, 0644))

	_, err := a.ReplacePostMedia("p1", src, "gif")
	require.Error(t, err)

	entries, err := os.ReadDir(cfg.Vault.FSVaultRoot)
	if err == nil {
		assert.Empty(t, entries)
	} else {
		assert.True(t, os.IsNotExist(err))
	}
}

func TestProfileApp_ShowStats(t *testing.T) {
	a := newTestApp(t, newTestConfig(t, "memory"))

	var buf bytes.Buffer
	require.NoError(t, a.ShowStats(&buf, ""))
	assert.Contains(t, buf.String(), "Interactions")
	assert.Contains(t, buf.String(), "Audience")

	assert.Error(t, a.ShowStats(&buf, "reach"))
	assert.Error(t, a.ShowProfile(&buf, "stories"))
}

func TestProfileApp_LogsUnderSessionID(t *testing.T) {
	clearCredentials(t)
	cfg := newTestConfig(t, "memory")
	clock := testutil.FixedClock()

	for _, bio := range []string{"one", "two"} {
		a, err := NewProfileApp(context.Background(), cfg, Options{Clock: clock})
		require.NoError(t, err)
		a.SetBio(bio)
		require.NoError(t, a.Close())
		clock.Advance(time.Hour)
	}

	data, err := os.ReadFile(filepath.Join(cfg.LogDir, logFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "\t20250105T090000Z\tprofile updated\tintent=set_bio")
	assert.Contains(t, string(data), "\t20250105T100000Z\tprofile updated\tintent=set_bio")
}
