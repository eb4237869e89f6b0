package store

import "github.com/chorusfm/chorus/internal/models"

// Demo catalog. IDs and field values are load-bearing: tests and the login
// screen's demo-credentials hint depend on them.

func seedUsers() []models.User {
	return []models.User{
		{
			ID:        "1",
			Username:  "john_doe",
			Email:     "john@example.com",
			Role:      models.RoleUser,
			Avatar:    "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop&crop=face",
			CreatedAt: "2024-01-15",
		},
		{
			ID:        "2",
			Username:  "jane_smith",
			Email:     "jane@example.com",
			Role:      models.RoleUser,
			Avatar:    "https://images.unsplash.com/photo-1494790108755-2616b612b786?w=150&h=150&fit=crop&crop=face",
			CreatedAt: "2024-02-10",
		},
		{
			ID:        models.AdminID,
			Username:  "admin",
			Email:     "admin@chorus.fm",
			Role:      models.RoleAdmin,
			Avatar:    "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150&h=150&fit=crop&crop=face",
			CreatedAt: "2024-01-01",
		},
	}
}

func seedSongs() []models.Song {
	return []models.Song{
		{
			ID:          "1",
			Title:       "Blinding Lights",
			Artist:      "The Weeknd",
			Album:       "After Hours",
			Duration:    "3:20",
			Cover:       "https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f?w=300&h=300&fit=crop",
			AudioURL:    "https://www.soundjay.com/misc/sounds/bell-ringing-05.wav",
			Genre:       "Pop",
			ReleaseYear: 2020,
		},
		{
			ID:          "2",
			Title:       "Watermelon Sugar",
			Artist:      "Harry Styles",
			Album:       "Fine Line",
			Duration:    "2:54",
			Cover:       "https://images.unsplash.com/photo-1511671782779-c97d3d27a1d4?w=300&h=300&fit=crop",
			AudioURL:    "https://www.soundjay.com/misc/sounds/bell-ringing-05.wav",
			Genre:       "Pop",
			ReleaseYear: 2020,
		},
		{
			ID:          "3",
			Title:       "Good 4 U",
			Artist:      "Olivia Rodrigo",
			Album:       "SOUR",
			Duration:    "2:58",
			Cover:       "https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f?w=300&h=300&fit=crop",
			AudioURL:    "https://www.soundjay.com/misc/sounds/bell-ringing-05.wav",
			Genre:       "Pop Rock",
			ReleaseYear: 2021,
		},
		{
			ID:          "4",
			Title:       "Levitating",
			Artist:      "Dua Lipa",
			Album:       "Future Nostalgia",
			Duration:    "3:23",
			Cover:       "https://images.unsplash.com/photo-1571330735066-03aaa9429d89?w=300&h=300&fit=crop",
			AudioURL:    "https://www.soundjay.com/misc/sounds/bell-ringing-05.wav",
			Genre:       "Disco Pop",
			ReleaseYear: 2020,
		},
		{
			ID:          "5",
			Title:       "Stay",
			Artist:      "The Kid LAROI & Justin Bieber",
			Album:       "F*CK LOVE 3: OVER YOU",
			Duration:    "2:21",
			Cover:       "https://images.unsplash.com/photo-1514320291840-2e0a9bf2a9ae?w=300&h=300&fit=crop",
			AudioURL:    "https://www.soundjay.com/misc/sounds/bell-ringing-05.wav",
			Genre:       "Pop",
			ReleaseYear: 2021,
		},
	}
}

func seedPlaylists() []models.Playlist {
	return []models.Playlist{
		{
			ID:          "1",
			Name:        "My Favorites",
			Description: "Songs I love the most",
			Cover:       "https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f?w=300&h=300&fit=crop",
			SongIDs:     []string{"1", "3", "5"},
			UserID:      "1",
			IsPublic:    true,
			CreatedAt:   "2024-03-01",
		},
		{
			ID:          "2",
			Name:        "Workout Mix",
			Description: "High energy tracks for the gym",
			Cover:       "https://images.unsplash.com/photo-1571330735066-03aaa9429d89?w=300&h=300&fit=crop",
			SongIDs:     []string{"2", "4"},
			UserID:      "1",
			IsPublic:    false,
			CreatedAt:   "2024-03-15",
		},
		{
			ID:          "3",
			Name:        "Chill Vibes",
			Description: "Relaxing tunes for any mood",
			Cover:       "https://images.unsplash.com/photo-1514320291840-2e0a9bf2a9ae?w=300&h=300&fit=crop",
			SongIDs:     []string{"1", "2", "4"},
			UserID:      "2",
			IsPublic:    true,
			CreatedAt:   "2024-02-20",
		},
	}
}
