package profile

// The functions in this file never modify their input. A call that changes
// something returns a document whose touched slices are freshly allocated; a
// call that matches nothing returns doc as-is.

// UpdateProfile replaces the whole document with next. There is no field
// merge: callers pass a complete document, typically an edited copy of the
// current one.
func UpdateProfile(_ ProfileData, next ProfileData) ProfileData {
	return next.Clone()
}

// SetBio replaces the bio text.
func SetBio(doc ProfileData, bio string) ProfileData {
	doc.Bio = bio
	return doc
}

// SetProfilePic replaces the avatar reference.
func SetProfilePic(doc ProfileData, url string) ProfileData {
	doc.ProfilePicURL = url
	return doc
}

// SetHighlightCover replaces the cover of the highlight with the given id.
func SetHighlightCover(doc ProfileData, highlightID, url string) ProfileData {
	return updateHighlight(doc, highlightID, func(h *Highlight) { h.CoverURL = url })
}

// SetHighlightTitle replaces the title of the highlight with the given id.
func SetHighlightTitle(doc ProfileData, highlightID, title string) ProfileData {
	return updateHighlight(doc, highlightID, func(h *Highlight) { h.Title = title })
}

func updateHighlight(doc ProfileData, id string, apply func(*Highlight)) ProfileData {
	idx := -1
	for i, h := range doc.Highlights {
		if h.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return doc
	}
	highlights := cloneSlice(doc.Highlights)
	apply(&highlights[idx])
	doc.Highlights = highlights
	return doc
}

// ReplacePostMedia swaps the media of a post. Sequences are searched in the
// order posts, reels, tagged and only the first one containing postID is
// rewritten, so an id present in two sequences is only updated in the
// earlier one. DeletePost does not share this behaviour.
func ReplacePostMedia(doc ProfileData, postID, url string, mediaType MediaType) ProfileData {
	_, seq, ok := doc.FindPost(postID)
	if !ok {
		return doc
	}
	items := clonePosts(doc.Items(seq))
	for i := range items {
		if items[i].ID == postID {
			items[i].ImageURL = url
			items[i].Type = mediaType
		}
	}
	return doc.withItems(seq, items)
}

// DeletePost removes postID from posts, reels and tagged alike.
func DeletePost(doc ProfileData, postID string) ProfileData {
	for _, seq := range searchOrder {
		items := doc.Items(seq)
		if !containsPost(items, postID) {
			continue
		}
		kept := make([]Post, 0, len(items))
		for _, p := range items {
			if p.ID != postID {
				kept = append(kept, p)
			}
		}
		doc = doc.withItems(seq, clonePosts(kept))
	}
	return doc
}

func containsPost(items []Post, id string) bool {
	for _, p := range items {
		if p.ID == id {
			return true
		}
	}
	return false
}
