package utils

import "net/url"

// IndexURL builds a path to the contact book page with the given query
// parameters.
func IndexURL(params url.Values) string {
	if len(params) == 0 {
		return "/"
	}
	return "/?" + params.Encode()
}

// FlashURL builds a redirect target carrying a one-time status banner.
func FlashURL(flashType, message string) string {
	return IndexURL(url.Values{
		"flash": {flashType},
		"msg":   {message},
	})
}
