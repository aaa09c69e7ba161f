package domain

import "time"

// Default profile values applied when a user has never saved a profile
const (
	DefaultDisplayName = "Learner"
	DefaultAvatarEmoji = "🙂"
)

// Profile holds per-user display settings
type Profile struct {
	DisplayName string    `json:"displayName"`
	AvatarEmoji string    `json:"avatarEmoji"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// DefaultProfile returns the profile shown before the user customizes it
func DefaultProfile() Profile {
	return Profile{
		DisplayName: DefaultDisplayName,
		AvatarEmoji: DefaultAvatarEmoji,
	}
}
