package models

// Resource names, also used as path segments and store file names
const (
	ResourceUsers    = "users"
	ResourcePosts    = "posts"
	ResourceComments = "comments"
)

// Resources lists every resource in discovery order
var Resources = []string{ResourceUsers, ResourcePosts, ResourceComments}

// IsResource reports whether name is a known resource
func IsResource(name string) bool {
	for _, r := range Resources {
		if r == name {
			return true
		}
	}
	return false
}
