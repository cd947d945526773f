package utils

import (
	"fmt"
	"strings"
)

// SanitizeFileName replaces characters that are not safe in a storage object
// name with underscores.
func SanitizeFileName(name string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' || r == '.' {
			return r
		}
		return '_'
	}, name)
}

// NoteObjectPath builds the storage path for an uploaded note:
// notes/<userID>/<noteID>/<fileName>.
func NoteObjectPath(userID, noteID, fileName string) string {
	return fmt.Sprintf("notes/%s/%s/%s", userID, noteID, SanitizeFileName(fileName))
}

// TruncateText caps s at max bytes. Zero or negative max means no cap.
func TruncateText(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	return s[:max]
}
