package content

// CanDelete reports whether the caller may delete the feed. Admins may delete
// any feed, other callers only the feeds they own.
func CanDelete(caller User, feed Feed) bool {
	switch {
	case caller.IsAnonymous():
		return false
	case caller.Admin:
		return true
	default:
		return feed.User != nil && *feed.User == caller.Login
	}
}

// CanCreateFor reports whether the caller may create a feed owned by the
// given login.
func CanCreateFor(caller User, owner Login) bool {
	switch {
	case caller.IsAnonymous():
		return false
	case caller.Admin:
		return true
	default:
		return owner == caller.Login
	}
}
