package main

import "net/url"

// lockName turns an instance name into a single path or mutex name element.
// Separators are escaped rather than stripped, so "a/x" and "b/x" stay
// distinct.
func lockName(name string) string {
	return url.PathEscape(name)
}
