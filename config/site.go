package config

import "os"

// UploadDir is where the media store writes uploaded content. References
// handed back to clients are filenames relative to this directory.
func UploadDir() string {
	return getEnv("UPLOAD_DIR", "static/contents")
}

// ModerationEnabled gates the public listing: when on, tours without a
// moderator reference are hidden from everyone but their author and the
// moderators.
func ModerationEnabled() bool {
	return os.Getenv("MODERATION_ENABLED") != "0"
}
