package ai

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"profilekit/internal/profile"
)

// maxFetchBytes caps how much of a remote image is read.
const maxFetchBytes = 32 << 20

// Encoder turns media references into profile.EncodedImage values. It
// understands data URLs, blob references held in the media vault, http(s)
// URLs and local file paths.
type Encoder struct {
	vault  profile.MediaVault
	client *http.Client
}

var _ profile.ImageEncoder = (*Encoder)(nil)

// NewEncoder creates an Encoder. client may be nil to use http.DefaultClient.
func NewEncoder(vault profile.MediaVault, client *http.Client) *Encoder {
	if client == nil {
		client = http.DefaultClient
	}
	return &Encoder{vault: vault, client: client}
}

// Encode resolves ref and returns its bytes as base64 without any preamble.
func (e *Encoder) Encode(ctx context.Context, ref string) (profile.EncodedImage, error) {
	switch {
	case strings.HasPrefix(ref, "data:"):
		img, ok := profile.ParseDataURL(ref)
		if !ok {
			return profile.EncodedImage{}, fmt.Errorf("unsupported data URL (want base64)")
		}
		if _, err := img.Bytes(); err != nil {
			return profile.EncodedImage{}, fmt.Errorf("invalid base64 in data URL: %w", err)
		}
		return img, nil

	case strings.HasPrefix(ref, "blob:"):
		id, ok := profile.ParseBlobRef(ref)
		if !ok {
			return profile.EncodedImage{}, fmt.Errorf("invalid blob reference %q", ref)
		}
		var buf bytes.Buffer
		mimeType, err := e.vault.GetMedia(id, &buf)
		if err != nil {
			return profile.EncodedImage{}, err
		}
		return encode(buf.Bytes(), mimeType), nil

	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		return e.fetch(ctx, ref)

	default:
		data, err := os.ReadFile(ref)
		if err != nil {
			return profile.EncodedImage{}, fmt.Errorf("reading image file: %w", err)
		}
		return encode(data, ""), nil
	}
}

func (e *Encoder) fetch(ctx context.Context, url string) (profile.EncodedImage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return profile.EncodedImage{}, fmt.Errorf("building request: %w", err)
	}
	resp, err := e.client.Do(req)
	if err != nil {
		return profile.EncodedImage{}, fmt.Errorf("fetching image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return profile.EncodedImage{}, fmt.Errorf("fetching image: unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxFetchBytes+1))
	if err != nil {
		return profile.EncodedImage{}, fmt.Errorf("reading image body: %w", err)
	}
	if len(data) > maxFetchBytes {
		return profile.EncodedImage{}, fmt.Errorf("image larger than %d bytes", maxFetchBytes)
	}

	var declared string
	if ct := resp.Header.Get("Content-Type"); ct != "" {
		if mt, _, err := mime.ParseMediaType(ct); err == nil {
			declared = mt
		}
	}
	return encode(data, declared), nil
}

// encode base64-encodes data. When declared is empty or generic the media
// type is sniffed from the bytes.
func encode(data []byte, declared string) profile.EncodedImage {
	mimeType := declared
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = mimetype.Detect(data).String()
		if mt, _, err := mime.ParseMediaType(mimeType); err == nil {
			mimeType = mt
		}
	}
	return profile.EncodedImage{
		Data:     base64.StdEncoding.EncodeToString(data),
		MIMEType: mimeType,
	}
}
