package profile

// DefaultProfile returns the seeded profile used when nothing has been stored
// yet. Each call returns a fresh value.
func DefaultProfile() ProfileData {
	return ProfileData{
		Username:       "kimberly.loaiza",
		IsVerified:     true,
		DisplayName:    "KIM LOAIZA",
		Flag:           "🇲🇽",
		PostsCount:     675,
		FollowersCount: "37.5 mill.",
		FollowingCount: 4214,
		Category:       "Figura pública",
		Bio:            "✨ @jukilopstore ✨\nX SIEMPRE LINDURAS\nVer traducción",
		LinkText:       "jukilopstore.com",
		LinkURL:        "https://jukilopstore.com",
		MutualFollowers: MutualFollowers{
			AvatarURLs: []string{
				"https://picsum.photos/id/1011/50/50",
				"https://picsum.photos/id/1027/50/50",
				"https://picsum.photos/id/1012/50/50",
			},
			Text: "agentechang1104, cieloanais y 30 personas más siguen esta cuenta",
		},
		ProfilePicURL: "https://picsum.photos/id/64/200/200",
		Highlights: []Highlight{
			{ID: "1", Title: "Juanito 🦁", CoverURL: "https://picsum.photos/id/1062/100/100"},
			{ID: "2", Title: "K I M A x2 🦋", CoverURL: "https://picsum.photos/id/1074/100/100"},
			{ID: "3", Title: "K I M A 🦋", CoverURL: "https://picsum.photos/id/1084/100/100"},
			{ID: "4", Title: "#NoSeasCelo", CoverURL: "https://picsum.photos/id/237/100/100"},
		},
		Posts: []Post{
			{ID: "p1", Type: MediaImage, IsPinned: boolPtr(true), Likes: 120000, Caption: "Concert vibe", ImageURL: "https://picsum.photos/id/129/400/600"},
			{ID: "p2", Type: MediaImage, IsPinned: boolPtr(true), Likes: 340000, Caption: "Stage moment", ImageURL: "https://picsum.photos/id/338/400/600"},
			{ID: "p3", Type: MediaImage, IsPinned: boolPtr(false), Likes: 98000, Caption: "Family", ImageURL: "https://picsum.photos/id/453/400/600"},
			{ID: "p4", Type: MediaImage, IsPinned: boolPtr(false), Likes: 55000, Caption: "Car selfie", ImageURL: "https://picsum.photos/id/655/400/400"},
			{ID: "p5", Type: MediaImage, IsPinned: boolPtr(false), Likes: 21000, Caption: "Studio", ImageURL: "https://picsum.photos/id/349/400/400"},
			{ID: "p6", Type: MediaImage, IsPinned: boolPtr(false), Likes: 11000, Caption: "Aesthetic", ImageURL: "https://picsum.photos/id/22/400/400"},
			{ID: "p7", Type: MediaImage, IsPinned: boolPtr(false), Likes: 12000, Caption: "Travel", ImageURL: "https://picsum.photos/id/48/400/400"},
			{ID: "p8", Type: MediaImage, IsPinned: boolPtr(false), Likes: 45000, Caption: "Music", ImageURL: "https://picsum.photos/id/43/400/400"},
			{ID: "p9", Type: MediaImage, IsPinned: boolPtr(false), Likes: 89000, Caption: "Love", ImageURL: "https://picsum.photos/id/64/400/400"},
			{ID: "p10", Type: MediaVideo, IsPinned: boolPtr(false), Likes: 150000, Caption: "New video", ImageURL: "https://picsum.photos/id/96/400/600"},
			{ID: "p11", Type: MediaImage, IsPinned: boolPtr(false), Likes: 32000, Caption: "Mood", ImageURL: "https://picsum.photos/id/111/400/400"},
			{ID: "p12", Type: MediaImage, IsPinned: boolPtr(false), Likes: 67000, Caption: "Style", ImageURL: "https://picsum.photos/id/12/400/400"},
		},
		Reels: []Post{
			{ID: "r1", Type: MediaVideo, Likes: 50000, Caption: "Dance trend", ImageURL: "https://picsum.photos/id/15/300/533"},
			{ID: "r2", Type: MediaVideo, Likes: 60000, Caption: "Vlog", ImageURL: "https://picsum.photos/id/28/300/533"},
			{ID: "r3", Type: MediaVideo, Likes: 70000, Caption: "Funny", ImageURL: "https://picsum.photos/id/35/300/533"},
			{ID: "r4", Type: MediaVideo, Likes: 80000, Caption: "BTS", ImageURL: "https://picsum.photos/id/42/300/533"},
			{ID: "r5", Type: MediaVideo, Likes: 90000, Caption: "Music video", ImageURL: "https://picsum.photos/id/55/300/533"},
			{ID: "r6", Type: MediaVideo, Likes: 10000, Caption: "Life update", ImageURL: "https://picsum.photos/id/68/300/533"},
			{ID: "r7", Type: MediaVideo, Likes: 12000, Caption: "Challenge", ImageURL: "https://picsum.photos/id/76/300/533"},
			{ID: "r8", Type: MediaVideo, Likes: 45000, Caption: "Behind scenes", ImageURL: "https://picsum.photos/id/82/300/533"},
			{ID: "r9", Type: MediaVideo, Likes: 33000, Caption: "Travel vlog", ImageURL: "https://picsum.photos/id/91/300/533"},
			{ID: "r10", Type: MediaVideo, Likes: 67000, Caption: "GRWM", ImageURL: "https://picsum.photos/id/103/300/533"},
			{ID: "r11", Type: MediaVideo, Likes: 89000, Caption: "Concert", ImageURL: "https://picsum.photos/id/145/300/533"},
			{ID: "r12", Type: MediaVideo, Likes: 11000, Caption: "Q&A", ImageURL: "https://picsum.photos/id/158/300/533"},
		},
		Tagged: []Post{
			{ID: "t1", Type: MediaImage, Likes: 1200, Caption: "With fans", ImageURL: "https://picsum.photos/id/76/400/400"},
			{ID: "t2", Type: MediaImage, Likes: 1500, Caption: "Event", ImageURL: "https://picsum.photos/id/88/400/400"},
			{ID: "t3", Type: MediaImage, Likes: 1800, Caption: "Friends", ImageURL: "https://picsum.photos/id/99/400/400"},
			{ID: "t4", Type: MediaImage, Likes: 2000, Caption: "Concert", ImageURL: "https://picsum.photos/id/102/400/400"},
			{ID: "t5", Type: MediaImage, Likes: 2500, Caption: "Fan art", ImageURL: "https://picsum.photos/id/115/400/400"},
			{ID: "t6", Type: MediaImage, Likes: 3000, Caption: "Street style", ImageURL: "https://picsum.photos/id/129/400/400"},
			{ID: "t7", Type: MediaImage, Likes: 4500, Caption: "Fan meetup", ImageURL: "https://picsum.photos/id/200/400/400"},
			{ID: "t8", Type: MediaImage, Likes: 1200, Caption: "Selfie", ImageURL: "https://picsum.photos/id/201/400/400"},
			{ID: "t9", Type: MediaImage, Likes: 6700, Caption: "Show", ImageURL: "https://picsum.photos/id/202/400/400"},
			{ID: "t10", Type: MediaImage, Likes: 9800, Caption: "Art", ImageURL: "https://picsum.photos/id/203/400/400"},
			{ID: "t11", Type: MediaImage, Likes: 3400, Caption: "Drawing", ImageURL: "https://picsum.photos/id/204/400/400"},
			{ID: "t12", Type: MediaImage, Likes: 5600, Caption: "Edit", ImageURL: "https://picsum.photos/id/206/400/400"},
		},
	}
}

// DefaultInteractions returns the seeded interactions snapshot.
func DefaultInteractions() InteractionsStats {
	return InteractionsStats{
		Interactions:        "4",
		FollowersPercent:    "50.0",
		NonFollowersPercent: "50.0",
		DateRange:           "7 de dic - 5 de ene",
		PublicationsPercent: "100",
	}
}

// DefaultViews returns the seeded views snapshot.
func DefaultViews() ViewsStats {
	return ViewsStats{
		DateRange:      "26 de jul. - 24 de ago.",
		StoriesPercent: "46.4",
		PostsPercent:   "46.2",
		ReelsPercent:   "7.4",
		TopContent: []TopContent{
			{ID: 1, Views: "740 mil", Date: "28 de jul.", Img: "https://picsum.photos/id/64/200/300"},
			{ID: 2, Views: "374 mil", Date: "27 de jul.", Img: "https://picsum.photos/id/65/200/300"},
			{ID: 3, Views: "353 mil", Date: "31 de jul.", Img: "https://picsum.photos/id/66/200/300"},
			{ID: 4, Views: "311 mil", Date: "26 de jul.", Img: "https://picsum.photos/id/67/200/300"},
		},
		Cities: []CityShare{
			{Name: "Culiacán", Percent: "15.7"},
			{Name: "Tijuana", Percent: "5.0"},
			{Name: "Mazatlán", Percent: "3.6"},
		},
	}
}

// DefaultAudience returns the seeded audience snapshot.
func DefaultAudience() AudienceStats {
	return AudienceStats{
		WomenPercent: "71",
		MenPercent:   "29",
		Ages: []Share{
			{Label: "35-44", Percent: "41.5"},
			{Label: "45-54", Percent: "23.4"},
			{Label: "Other", Percent: "21.9"},
			{Label: "25-34", Percent: "13.2"},
		},
		Countries: []Share{
			{Label: "México", Percent: "55.0"},
			{Label: "Colombia", Percent: "15.0"},
			{Label: "Estados Unidos", Percent: "10.0"},
			{Label: "Argentina", Percent: "5.0"},
		},
		Discovery: []Share{
			{Label: "Friends and followers", Percent: "90.0"},
			{Label: "Exploration", Percent: "3.0"},
			{Label: "Search", Percent: "3.0"},
			{Label: "Other", Percent: "2.0"},
		},
	}
}
