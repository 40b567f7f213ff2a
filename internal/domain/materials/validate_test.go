package materials

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateVideoLink(t *testing.T) {
	valid := []string{
		"https://youtube.com/watch?v=abc123",
		"https://www.youtube.com/watch?v=abc123",
		"http://youtube.com/some/path",
	}
	for _, link := range valid {
		assert.NoError(t, ValidateVideoLink(link), link)
	}

	invalid := []string{
		"https://vimeo.com/12345",
		"https://evil.com/youtube.com",
		"https://youtube.com.evil.com/watch",
		"ftp://youtube.com/file",
		"not a url",
		"",
	}
	for _, link := range invalid {
		assert.Error(t, ValidateVideoLink(link), link)
	}
}
