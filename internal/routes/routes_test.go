package routes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	cases := []struct {
		path string
		want Class
	}{
		{"/dashboard", ClassProtected},
		{"/dashboard/settings", ClassProtected},
		{"/home", ClassProtected},
		{"/home/feed", ClassProtected},
		{"/login", ClassAuth},
		{"/register", ClassAuth},
		{"/", ClassPublic},
		{"/about", ClassPublic},
		{"/login/extra", ClassPublic},
		{"/api/v1/auth/login", ClassPublic},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, Classify(tc.path), "path %q", tc.path)
	}
}

func TestPredicates(t *testing.T) {
	t.Parallel()

	require.True(t, IsProtected("/dashboard"))
	require.False(t, IsProtected("/login"))
	require.True(t, IsAuthSurface("/register"))
	require.False(t, IsAuthSurface("/home"))
}
