package profile

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const blobPrefix = "blob:"

// BlobRef returns the media reference for a vault id.
func BlobRef(id string) string { return blobPrefix + id }

// ParseBlobRef extracts the vault id from a "blob:" reference.
func ParseBlobRef(ref string) (string, bool) {
	id, ok := strings.CutPrefix(ref, blobPrefix)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// EncodedImage is image bytes in transmittable form: base64 text without any
// data-URL preamble, plus the media type.
type EncodedImage struct {
	Data     string
	MIMEType string
}

// DataURL re-adds the media-type preamble.
func (img EncodedImage) DataURL() string {
	return "data:" + img.MIMEType + ";base64," + img.Data
}

// Bytes decodes the base64 payload.
func (img EncodedImage) Bytes() ([]byte, error) {
	return base64.StdEncoding.DecodeString(img.Data)
}

// ParseDataURL splits a base64 data URL into its media type and payload.
func ParseDataURL(s string) (EncodedImage, bool) {
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return EncodedImage{}, false
	}
	meta, data, ok := strings.Cut(rest, ",")
	if !ok {
		return EncodedImage{}, false
	}
	mime, ok := strings.CutSuffix(meta, ";base64")
	if !ok {
		return EncodedImage{}, false
	}
	return EncodedImage{Data: data, MIMEType: mime}, true
}

// Assistant is the generative-AI collaborator.
type Assistant interface {
	// EditImage returns a new image produced from img and a free-text instruction.
	EditImage(ctx context.Context, img EncodedImage, instruction string) (EncodedImage, error)

	// GenerateBio returns bio text for the given search seed.
	GenerateBio(ctx context.Context, seed string) (string, error)
}

// ImageEncoder turns a media reference (URL, blob ref, data URL or path)
// into an EncodedImage.
type ImageEncoder interface {
	Encode(ctx context.Context, ref string) (EncodedImage, error)
}

// Editor drives the flows that involve media bytes or the assistant. Its
// results are handed back to the caller; the profile only changes through
// the Save* methods, which go through the session.
type Editor struct {
	session   *Session
	vault     MediaVault
	assistant Assistant
	encoder   ImageEncoder
	idgen     IDGenerator
	logger    Logger
}

// NewEditor creates an Editor. assistant may be nil when no AI backend is
// configured; the AI flows then fail with ErrMissingCredential.
func NewEditor(session *Session, vault MediaVault, assistant Assistant, encoder ImageEncoder, idgen IDGenerator, logger Logger) *Editor {
	return &Editor{
		session:   session,
		vault:     vault,
		assistant: assistant,
		encoder:   encoder,
		idgen:     idgen,
		logger:    logger,
	}
}

// ImportMedia stores the bytes read from r in the vault and returns a blob
// reference together with the media type it was sniffed as.
func (e *Editor) ImportMedia(r io.Reader) (string, MediaType, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", "", fmt.Errorf("reading media: %w", err)
	}
	mime := mimetype.Detect(data).String()
	mediaType := MediaImage
	if strings.HasPrefix(mime, "video/") {
		mediaType = MediaVideo
	}

	ref, err := e.put(data, mime)
	if err != nil {
		return "", "", err
	}
	e.logger.Info("media imported", "ref", ref, "mime", mime, "bytes", len(data))
	return ref, mediaType, nil
}

// EditImage sends the media behind ref to the assistant with instruction and
// stores the result as a new blob. The returned reference is a draft; nothing
// in the profile points at it until the caller saves it.
func (e *Editor) EditImage(ctx context.Context, ref, instruction string) (string, error) {
	if strings.TrimSpace(instruction) == "" {
		return "", fmt.Errorf("edit instruction is empty")
	}
	if e.assistant == nil {
		return "", ErrMissingCredential
	}

	src, err := e.encoder.Encode(ctx, ref)
	if err != nil {
		return "", fmt.Errorf("encoding %s: %w", ref, err)
	}

	edited, err := e.assistant.EditImage(ctx, src, instruction)
	if err != nil {
		e.logger.Warn("image edit failed", "ref", ref, "error", err)
		return "", err
	}

	data, err := edited.Bytes()
	if err != nil {
		return "", &ServiceError{Op: "edit image", Err: fmt.Errorf("decoding image payload: %w", err)}
	}
	out, err := e.put(data, edited.MIMEType)
	if err != nil {
		return "", err
	}
	e.logger.Info("image edited", "source", ref, "draft", out)
	return out, nil
}

// EditPostImage runs EditImage against the current media of a post. Video
// posts cannot be edited.
func (e *Editor) EditPostImage(ctx context.Context, postID, instruction string) (string, error) {
	post, _, ok := e.session.Profile().FindPost(postID)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrPostNotFound, postID)
	}
	if post.Type == MediaVideo {
		return "", ErrVideoNotEditable
	}
	return e.EditImage(ctx, post.ImageURL, instruction)
}

// SavePostMedia commits a media reference to a post.
func (e *Editor) SavePostMedia(postID, ref string, mediaType MediaType) ProfileData {
	return e.session.ReplacePostMedia(postID, ref, mediaType)
}

// GenerateBio asks the assistant for a bio seeded with the display name.
// The bio is returned, not applied.
func (e *Editor) GenerateBio(ctx context.Context) (string, error) {
	if e.assistant == nil {
		return "", ErrMissingCredential
	}
	seed := e.session.Profile().DisplayName
	bio, err := e.assistant.GenerateBio(ctx, seed)
	if err != nil {
		if !errors.Is(err, ErrMissingCredential) {
			e.logger.Warn("bio generation failed", "seed", seed, "error", err)
		}
		return "", err
	}
	return bio, nil
}

// ReadMedia writes the bytes behind a blob reference to w.
func (e *Editor) ReadMedia(ref string, w io.Writer) (string, error) {
	id, ok := ParseBlobRef(ref)
	if !ok {
		return "", fmt.Errorf("not a blob reference: %q", ref)
	}
	return e.vault.GetMedia(id, w)
}

func (e *Editor) put(data []byte, mime string) (string, error) {
	id := e.idgen.New()
	if err := e.vault.PutMedia(id, bytes.NewReader(data), int64(len(data)), mime); err != nil {
		return "", fmt.Errorf("storing media: %w", err)
	}
	return BlobRef(id), nil
}
