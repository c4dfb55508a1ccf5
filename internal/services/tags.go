package services

import "strings"

// Tag lists are persisted as comma-delimited text. The round trip is
// loss-free as long as no tag contains a comma; duplicates and ordering are
// preserved as given.

// JoinTags encodes a tag list for storage.
func JoinTags(tags []string) string {
	return strings.Join(tags, ",")
}

// SplitTags decodes a stored tag column. An empty column is an empty list,
// not a single empty tag.
func SplitTags(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, ",")
}
