package app

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"profilekit/internal/profile"
)

type fieldSetter func(doc *profile.ProfileData, value string) error

func textField(get func(*profile.ProfileData) *string) fieldSetter {
	return func(doc *profile.ProfileData, value string) error {
		*get(doc) = value
		return nil
	}
}

func intField(get func(*profile.ProfileData) *int) fieldSetter {
	return func(doc *profile.ProfileData, value string) error {
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("not an integer: %q", value)
		}
		*get(doc) = n
		return nil
	}
}

// headerFields are the profile header fields editable one at a time. Names
// match the persisted JSON keys.
var headerFields = map[string]fieldSetter{
	"username":       textField(func(d *profile.ProfileData) *string { return &d.Username }),
	"displayName":    textField(func(d *profile.ProfileData) *string { return &d.DisplayName }),
	"flag":           textField(func(d *profile.ProfileData) *string { return &d.Flag }),
	"category":       textField(func(d *profile.ProfileData) *string { return &d.Category }),
	"bio":            textField(func(d *profile.ProfileData) *string { return &d.Bio }),
	"linkText":       textField(func(d *profile.ProfileData) *string { return &d.LinkText }),
	"linkUrl":        textField(func(d *profile.ProfileData) *string { return &d.LinkURL }),
	"followersCount": textField(func(d *profile.ProfileData) *string { return &d.FollowersCount }),
	"profilePicUrl":  textField(func(d *profile.ProfileData) *string { return &d.ProfilePicURL }),
	"mutualFollowers.text": textField(func(d *profile.ProfileData) *string {
		return &d.MutualFollowers.Text
	}),
	"postsCount":     intField(func(d *profile.ProfileData) *int { return &d.PostsCount }),
	"followingCount": intField(func(d *profile.ProfileData) *int { return &d.FollowingCount }),
	"isVerified": func(d *profile.ProfileData, value string) error {
		b, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("not a boolean: %q", value)
		}
		d.IsVerified = b
		return nil
	},
}

// HeaderFieldNames lists the names accepted by WithHeaderField, sorted.
func HeaderFieldNames() []string {
	names := make([]string, 0, len(headerFields))
	for name := range headerFields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// WithHeaderField returns a copy of doc with one header field set from its
// text form.
func WithHeaderField(doc profile.ProfileData, field, value string) (profile.ProfileData, error) {
	set, ok := headerFields[field]
	if !ok {
		return doc, fmt.Errorf("unknown profile field %q (want one of %s)", field, strings.Join(HeaderFieldNames(), ", "))
	}
	next := doc.Clone()
	if err := set(&next, value); err != nil {
		return doc, fmt.Errorf("setting %s: %w", field, err)
	}
	return next, nil
}
