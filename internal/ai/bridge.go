package ai

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"profilekit/internal/profile"
)

const defaultImageMIME = "image/jpeg"

// Generator is the slice of the genai client the bridge uses.
// *genai.Models satisfies it.
type Generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Models names the models used for each operation.
type Models struct {
	Image string
	Text  string
}

// Bridge implements profile.Assistant on top of the Gemini API. Each call is
// a single attempt; the caller's context is the only deadline.
type Bridge struct {
	gen    Generator
	apiKey string
	models Models
	logger profile.Logger
}

var _ profile.Assistant = (*Bridge)(nil)

// NewBridge creates a Bridge backed by a real Gemini client. An empty apiKey
// is accepted: the bridge is then built without a client and every call
// fails with profile.ErrMissingCredential before touching the network.
func NewBridge(ctx context.Context, apiKey string, models Models, logger profile.Logger) (*Bridge, error) {
	if apiKey == "" {
		return NewBridgeWithGenerator(nil, "", models, logger), nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}
	return NewBridgeWithGenerator(client.Models, apiKey, models, logger), nil
}

// NewBridgeWithGenerator creates a Bridge around an arbitrary Generator.
func NewBridgeWithGenerator(gen Generator, apiKey string, models Models, logger profile.Logger) *Bridge {
	return &Bridge{gen: gen, apiKey: apiKey, models: models, logger: logger}
}

// EditPrompt is the instruction text sent alongside the source image.
func EditPrompt(instruction string) string {
	return fmt.Sprintf("Edit this image. %s. Return ONLY the edited image.", instruction)
}

// BioPrompt is the search-grounded request sent for bio generation.
func BioPrompt(seed string) string {
	return fmt.Sprintf("Find the latest public information about %s (influencer/artist). "+
		"Write a short, punchy Instagram bio for them in Spanish. Include relevant emojis. Maximum 3 lines.", seed)
}

// EditImage sends img and the instruction to the image model and returns the
// first inline image of the first candidate.
func (b *Bridge) EditImage(ctx context.Context, img profile.EncodedImage, instruction string) (profile.EncodedImage, error) {
	if b.apiKey == "" || b.gen == nil {
		return profile.EncodedImage{}, profile.ErrMissingCredential
	}

	data, err := base64.StdEncoding.DecodeString(img.Data)
	if err != nil {
		return profile.EncodedImage{}, fmt.Errorf("decoding source image: %w", err)
	}
	mime := img.MIMEType
	if mime == "" {
		mime = defaultImageMIME
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(data, mime),
			genai.NewPartFromText(EditPrompt(instruction)),
		}, genai.RoleUser),
	}

	b.logger.Debug("requesting image edit", "model", b.models.Image, "bytes", len(data))
	resp, err := b.gen.GenerateContent(ctx, b.models.Image, contents, nil)
	if err != nil {
		return profile.EncodedImage{}, &profile.ServiceError{Op: "edit image", Err: err}
	}

	for _, part := range firstCandidateParts(resp) {
		if part.InlineData != nil && len(part.InlineData.Data) > 0 {
			return profile.EncodedImage{
				Data:     base64.StdEncoding.EncodeToString(part.InlineData.Data),
				MIMEType: part.InlineData.MIMEType,
			}, nil
		}
	}
	return profile.EncodedImage{}, profile.ErrNoImageReturned
}

// GenerateBio asks the text model, with Google Search grounding, for a bio
// about seed. The concatenated text parts are returned verbatim.
func (b *Bridge) GenerateBio(ctx context.Context, seed string) (string, error) {
	if b.apiKey == "" || b.gen == nil {
		return "", profile.ErrMissingCredential
	}

	config := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
	}
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{genai.NewPartFromText(BioPrompt(seed))}, genai.RoleUser),
	}

	b.logger.Debug("requesting bio", "model", b.models.Text, "seed", seed)
	resp, err := b.gen.GenerateContent(ctx, b.models.Text, contents, config)
	if err != nil {
		return "", &profile.ServiceError{Op: "generate bio", Err: err}
	}

	var sb strings.Builder
	for _, part := range firstCandidateParts(resp) {
		if part.Thought {
			continue
		}
		sb.WriteString(part.Text)
	}
	if sb.Len() == 0 {
		return "", profile.ErrEmptyResult
	}
	return sb.String(), nil
}

func firstCandidateParts(resp *genai.GenerateContentResponse) []*genai.Part {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil
	}
	c := resp.Candidates[0]
	if c == nil || c.Content == nil {
		return nil
	}
	return c.Content.Parts
}
