package testutil

import (
	"context"
	"sync"

	"profilekit/internal/profile"
)

// FakeAssistant is a scripted profile.Assistant.
type FakeAssistant struct {
	mu sync.Mutex

	EditResult profile.EncodedImage
	EditErr    error
	Bio        string
	BioErr     error

	EditCalls []EditCall
	BioSeeds  []string
}

// EditCall records one EditImage invocation.
type EditCall struct {
	Image       profile.EncodedImage
	Instruction string
}

var _ profile.Assistant = (*FakeAssistant)(nil)

func (f *FakeAssistant) EditImage(_ context.Context, img profile.EncodedImage, instruction string) (profile.EncodedImage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.EditCalls = append(f.EditCalls, EditCall{Image: img, Instruction: instruction})
	if f.EditErr != nil {
		return profile.EncodedImage{}, f.EditErr
	}
	return f.EditResult, nil
}

func (f *FakeAssistant) GenerateBio(_ context.Context, seed string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.BioSeeds = append(f.BioSeeds, seed)
	if f.BioErr != nil {
		return "", f.BioErr
	}
	return f.Bio, nil
}
