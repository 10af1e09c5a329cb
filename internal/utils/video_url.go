package utils

import (
	"regexp"
	"strings"
)

var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com|youtube-nocookie\.com)/watch\?(?:[^#]*&)?v=([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`youtu\.be/([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/shorts/([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`(?:youtube\.com|youtube-nocookie\.com)/embed/([A-Za-z0-9_-]{11})`),
}

// ExtractVideoID pulls the platform video id out of a watch, short, shorts
// or embed link.
func ExtractVideoID(sourceURL string) (string, bool) {
	u := strings.TrimSpace(sourceURL)
	if u == "" {
		return "", false
	}
	for _, p := range videoIDPatterns {
		if m := p.FindStringSubmatch(u); m != nil {
			return m[1], true
		}
	}
	return "", false
}
