package profile

// InteractionsStats backs the "Interactions" insights screen.
type InteractionsStats struct {
	Interactions        string `json:"interactions" yaml:"interactions"`
	FollowersPercent    string `json:"followersPercent" yaml:"followersPercent"`
	NonFollowersPercent string `json:"nonFollowersPercent" yaml:"nonFollowersPercent"`
	DateRange           string `json:"dateRange" yaml:"dateRange"`
	PublicationsPercent string `json:"publicationsPercent" yaml:"publicationsPercent"`
}

// TopContent is one thumbnail in the views breakdown.
type TopContent struct {
	ID    int    `json:"id" yaml:"id"`
	Views string `json:"views" yaml:"views"`
	Date  string `json:"date" yaml:"date"`
	Img   string `json:"img" yaml:"img"`
}

// CityShare is one row of the top-cities breakdown.
type CityShare struct {
	Name    string `json:"name" yaml:"name"`
	Percent string `json:"percent" yaml:"percent"`
}

// ViewsStats backs the "Views" insights screen.
type ViewsStats struct {
	DateRange      string       `json:"dateRange" yaml:"dateRange"`
	StoriesPercent string       `json:"storiesPercent" yaml:"storiesPercent"`
	PostsPercent   string       `json:"postsPercent" yaml:"postsPercent"`
	ReelsPercent   string       `json:"reelsPercent" yaml:"reelsPercent"`
	TopContent     []TopContent `json:"topContent" yaml:"topContent"`
	Cities         []CityShare  `json:"cities" yaml:"cities"`
}

// Share is a labelled percentage bucket.
type Share struct {
	Label   string `json:"label" yaml:"label"`
	Percent string `json:"percent" yaml:"percent"`
}

// AudienceStats backs the "Audience" insights screen. Buckets are not
// required to sum to 100.
type AudienceStats struct {
	WomenPercent string  `json:"womenPercent" yaml:"womenPercent"`
	MenPercent   string  `json:"menPercent" yaml:"menPercent"`
	Ages         []Share `json:"ages" yaml:"ages"`
	Countries    []Share `json:"countries" yaml:"countries"`
	Discovery    []Share `json:"discovery" yaml:"discovery"`
}

// Clone returns a deep copy.
func (v ViewsStats) Clone() ViewsStats {
	v.TopContent = cloneSlice(v.TopContent)
	v.Cities = cloneSlice(v.Cities)
	return v
}

// Clone returns a deep copy.
func (a AudienceStats) Clone() AudienceStats {
	a.Ages = cloneSlice(a.Ages)
	a.Countries = cloneSlice(a.Countries)
	a.Discovery = cloneSlice(a.Discovery)
	return a
}
