package auth

import "strings"

// RouteClass partitions gateway paths by the session they require.
type RouteClass int

const (
	RoutePublic RouteClass = iota
	RouteUserOnly
	RouteAdminOnly
	RouteUnauthOnly
)

// exclusionSet lists user-page paths a stray admin session may still visit.
// Without it an admin landing on /dashboard would bounce between
// /admin/dashboard and /dashboard forever.
var exclusionSet = map[string]struct{}{
	"/login":     {},
	"/dashboard": {},
}

// ClassifyRoute assigns a path to its route class.
func ClassifyRoute(path string) RouteClass {
	switch path {
	case "/login", "/register", "/admin/login",
		"/api/auth/login", "/api/auth/register", "/api/admin/login":
		return RouteUnauthOnly
	case "/api/auth/logout", "/api/admin/logout":
		// Logout must always be reachable, whatever state the sessions
		// are in.
		return RoutePublic
	}
	if strings.HasPrefix(path, "/health") || strings.HasPrefix(path, "/api/notifications") {
		return RoutePublic
	}
	if strings.HasPrefix(path, "/admin") {
		return RouteAdminOnly
	}
	return RouteUserOnly
}

// InExclusionSet reports whether the path tolerates a stray admin session.
func InExclusionSet(path string) bool {
	_, ok := exclusionSet[path]
	return ok
}
