package utils

import "regexp"

var emailNameRe = regexp.MustCompile(`^([^@]+)`)

// ExtractNameFromEmail extracts the username before '@'
func ExtractNameFromEmail(email string) string {
	match := emailNameRe.FindStringSubmatch(email)
	if len(match) < 2 {
		return email
	}
	return match[1]
}

// AvatarURL returns the stored avatar id or a DiceBear fallback seeded with
// the display name.
func AvatarURL(avatarID, displayName string) string {
	if avatarID != "" {
		return avatarID
	}
	return "https://api.dicebear.com/9.x/adventurer/svg?seed=" + displayName
}
