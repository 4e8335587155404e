package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/pawnshop-gateway/internal/auth"
)

func TestClassifyRoute(t *testing.T) {
	cases := []struct {
		path string
		want auth.RouteClass
	}{
		{"/login", auth.RouteUnauthOnly},
		{"/register", auth.RouteUnauthOnly},
		{"/admin/login", auth.RouteUnauthOnly},
		{"/api/auth/login", auth.RouteUnauthOnly},
		{"/api/admin/login", auth.RouteUnauthOnly},
		{"/api/auth/logout", auth.RoutePublic},
		{"/health/live", auth.RoutePublic},
		{"/api/notifications", auth.RoutePublic},
		{"/admin/dashboard", auth.RouteAdminOnly},
		{"/admin/users", auth.RouteAdminOnly},
		{"/admin/logs/local", auth.RouteAdminOnly},
		{"/dashboard", auth.RouteUserOnly},
		{"/loans", auth.RouteUserOnly},
		{"/shop", auth.RouteUserOnly},
		{"/pawn", auth.RouteUserOnly},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, auth.ClassifyRoute(tc.path), "path %s", tc.path)
	}
}

func TestExclusionSet(t *testing.T) {
	assert.True(t, auth.InExclusionSet("/dashboard"))
	assert.True(t, auth.InExclusionSet("/login"))
	assert.False(t, auth.InExclusionSet("/loans"))
	assert.False(t, auth.InExclusionSet("/admin/dashboard"))
}
