package profile

// MediaType distinguishes still images from video posts.
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

// Post is a single grid item. The same shape is used for posts, reels and
// tagged items; an ID is only unique within its own sequence.
type Post struct {
	ID       string    `json:"id" yaml:"id"`
	ImageURL string    `json:"imageUrl" yaml:"imageUrl"`
	Likes    int       `json:"likes" yaml:"likes"`
	Caption  string    `json:"caption" yaml:"caption"`
	IsPinned *bool     `json:"isPinned,omitempty" yaml:"isPinned,omitempty"`
	Type     MediaType `json:"type" yaml:"type"`
}

// Pinned reports whether the post carries a true pinned flag.
func (p Post) Pinned() bool {
	return p.IsPinned != nil && *p.IsPinned
}

// Highlight is a story highlight bubble.
type Highlight struct {
	ID       string `json:"id" yaml:"id"`
	Title    string `json:"title" yaml:"title"`
	CoverURL string `json:"coverUrl" yaml:"coverUrl"`
}

// MutualFollowers is the "followed by" summary line under the bio.
type MutualFollowers struct {
	AvatarURLs []string `json:"avatarUrls" yaml:"avatarUrls"`
	Text       string   `json:"text" yaml:"text"`
}

// ProfileData is the root document. Counters are display values and are not
// derived from the lengths of the post sequences.
type ProfileData struct {
	Username        string          `json:"username" yaml:"username"`
	IsVerified      bool            `json:"isVerified" yaml:"isVerified"`
	DisplayName     string          `json:"displayName" yaml:"displayName"`
	Flag            string          `json:"flag" yaml:"flag"`
	PostsCount      int             `json:"postsCount" yaml:"postsCount"`
	FollowersCount  string          `json:"followersCount" yaml:"followersCount"`
	FollowingCount  int             `json:"followingCount" yaml:"followingCount"`
	Category        string          `json:"category" yaml:"category"`
	Bio             string          `json:"bio" yaml:"bio"`
	LinkText        string          `json:"linkText" yaml:"linkText"`
	LinkURL         string          `json:"linkUrl" yaml:"linkUrl"`
	MutualFollowers MutualFollowers `json:"mutualFollowers" yaml:"mutualFollowers"`
	ProfilePicURL   string          `json:"profilePicUrl" yaml:"profilePicUrl"`
	Highlights      []Highlight     `json:"highlights" yaml:"highlights"`
	Posts           []Post          `json:"posts" yaml:"posts"`
	Reels           []Post          `json:"reels" yaml:"reels"`
	Tagged          []Post          `json:"tagged" yaml:"tagged"`
}

// Sequence names one of the three post sequences of a ProfileData.
type Sequence string

const (
	SeqPosts  Sequence = "posts"
	SeqReels  Sequence = "reels"
	SeqTagged Sequence = "tagged"
)

// searchOrder is the fixed order in which post lookups walk the sequences.
var searchOrder = []Sequence{SeqPosts, SeqReels, SeqTagged}

// Items returns the sequence named by seq. The slice is shared with doc.
func (doc ProfileData) Items(seq Sequence) []Post {
	switch seq {
	case SeqPosts:
		return doc.Posts
	case SeqReels:
		return doc.Reels
	case SeqTagged:
		return doc.Tagged
	default:
		return nil
	}
}

// withItems returns a copy of doc with the named sequence replaced.
func (doc ProfileData) withItems(seq Sequence, items []Post) ProfileData {
	switch seq {
	case SeqPosts:
		doc.Posts = items
	case SeqReels:
		doc.Reels = items
	case SeqTagged:
		doc.Tagged = items
	}
	return doc
}

// FindPost looks for id in posts, then reels, then tagged, and reports the
// first sequence holding it.
func (doc ProfileData) FindPost(id string) (Post, Sequence, bool) {
	for _, seq := range searchOrder {
		for _, p := range doc.Items(seq) {
			if p.ID == id {
				return p, seq, true
			}
		}
	}
	return Post{}, "", false
}

// Clone returns a deep copy whose slices share nothing with doc.
func (doc ProfileData) Clone() ProfileData {
	out := doc
	out.MutualFollowers.AvatarURLs = cloneSlice(doc.MutualFollowers.AvatarURLs)
	out.Highlights = cloneSlice(doc.Highlights)
	out.Posts = clonePosts(doc.Posts)
	out.Reels = clonePosts(doc.Reels)
	out.Tagged = clonePosts(doc.Tagged)
	return out
}

func clonePosts(in []Post) []Post {
	out := cloneSlice(in)
	for i := range out {
		if out[i].IsPinned != nil {
			v := *out[i].IsPinned
			out[i].IsPinned = &v
		}
	}
	return out
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func boolPtr(v bool) *bool { return &v }
