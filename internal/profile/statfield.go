package profile

import (
	"fmt"
	"strconv"
	"strings"
)

// StatPath addresses one text field of a statistics document. Index is -1
// for top-level fields; for record lists it selects the element.
//
//	followersPercent       -> {Field: "followersPercent", Index: -1}
//	cities[1].percent      -> {Field: "cities", Index: 1, Sub: "percent"}
type StatPath struct {
	Field string
	Index int
	Sub   string
}

func (p StatPath) String() string {
	if p.Index < 0 {
		return p.Field
	}
	return fmt.Sprintf("%s[%d].%s", p.Field, p.Index, p.Sub)
}

// ParseStatPath parses the textual form accepted by StatPath.String.
func ParseStatPath(s string) (StatPath, error) {
	s = strings.TrimSpace(s)
	open := strings.IndexByte(s, '[')
	if open < 0 {
		if s == "" || strings.ContainsAny(s, "].") {
			return StatPath{}, fmt.Errorf("invalid stat path %q", s)
		}
		return StatPath{Field: s, Index: -1}, nil
	}

	end := strings.Index(s, "].")
	if open == 0 || end < open {
		return StatPath{}, fmt.Errorf("invalid stat path %q", s)
	}
	idx, err := strconv.Atoi(s[open+1 : end])
	if err != nil || idx < 0 {
		return StatPath{}, fmt.Errorf("invalid index in stat path %q", s)
	}
	sub := s[end+2:]
	if sub == "" || strings.ContainsAny(sub, "[].") {
		return StatPath{}, fmt.Errorf("invalid stat path %q", s)
	}
	return StatPath{Field: s[:open], Index: idx, Sub: sub}, nil
}

// SetInteractionsField sets one field of the interactions snapshot. Unknown
// fields leave the snapshot unchanged.
func SetInteractionsField(doc InteractionsStats, path StatPath, value string) InteractionsStats {
	if path.Index >= 0 {
		return doc
	}
	switch path.Field {
	case "interactions":
		doc.Interactions = value
	case "followersPercent":
		doc.FollowersPercent = value
	case "nonFollowersPercent":
		doc.NonFollowersPercent = value
	case "dateRange":
		doc.DateRange = value
	case "publicationsPercent":
		doc.PublicationsPercent = value
	}
	return doc
}

// SetViewsField sets one field of the views snapshot, including fields of
// topContent and cities entries. A topContent id is not editable.
func SetViewsField(doc ViewsStats, path StatPath, value string) ViewsStats {
	if path.Index < 0 {
		switch path.Field {
		case "dateRange":
			doc.DateRange = value
		case "storiesPercent":
			doc.StoriesPercent = value
		case "postsPercent":
			doc.PostsPercent = value
		case "reelsPercent":
			doc.ReelsPercent = value
		}
		return doc
	}

	switch path.Field {
	case "topContent":
		if path.Index >= len(doc.TopContent) {
			return doc
		}
		item := doc.TopContent[path.Index]
		switch path.Sub {
		case "views":
			item.Views = value
		case "date":
			item.Date = value
		case "img":
			item.Img = value
		default:
			return doc
		}
		items := cloneSlice(doc.TopContent)
		items[path.Index] = item
		doc.TopContent = items
	case "cities":
		if path.Index >= len(doc.Cities) {
			return doc
		}
		item := doc.Cities[path.Index]
		switch path.Sub {
		case "name":
			item.Name = value
		case "percent":
			item.Percent = value
		default:
			return doc
		}
		items := cloneSlice(doc.Cities)
		items[path.Index] = item
		doc.Cities = items
	}
	return doc
}

// SetAudienceField sets one field of the audience snapshot, including the
// label or percent of an ages, countries or discovery bucket.
func SetAudienceField(doc AudienceStats, path StatPath, value string) AudienceStats {
	if path.Index < 0 {
		switch path.Field {
		case "womenPercent":
			doc.WomenPercent = value
		case "menPercent":
			doc.MenPercent = value
		}
		return doc
	}

	switch path.Field {
	case "ages":
		if shares, ok := setShare(doc.Ages, path, value); ok {
			doc.Ages = shares
		}
	case "countries":
		if shares, ok := setShare(doc.Countries, path, value); ok {
			doc.Countries = shares
		}
	case "discovery":
		if shares, ok := setShare(doc.Discovery, path, value); ok {
			doc.Discovery = shares
		}
	}
	return doc
}

func setShare(shares []Share, path StatPath, value string) ([]Share, bool) {
	if path.Index >= len(shares) {
		return nil, false
	}
	item := shares[path.Index]
	switch path.Sub {
	case "label":
		item.Label = value
	case "percent":
		item.Percent = value
	default:
		return nil, false
	}
	out := cloneSlice(shares)
	out[path.Index] = item
	return out, true
}
