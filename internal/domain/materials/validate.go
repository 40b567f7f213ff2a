package materials

import (
	"fmt"
	"net/url"
	"strings"
)

var allowedVideoHosts = []string{"youtube.com", "www.youtube.com"}

// ValidateVideoLink rejects lesson links pointing anywhere but the allowed
// video hosting.
func ValidateVideoLink(link string) error {
	u, err := url.Parse(link)
	if err != nil || u.Host == "" {
		return fmt.Errorf("video_link is not a valid URL")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("video_link must use http or https")
	}

	host := strings.ToLower(u.Hostname())
	for _, allowed := range allowedVideoHosts {
		if host == allowed {
			return nil
		}
	}
	return fmt.Errorf("only youtube.com links are allowed")
}
