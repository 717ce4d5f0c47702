// Package routes holds the single path classifier shared by the edge guard
// and the session gate, so the two enforcement points cannot drift.
package routes

import "strings"

const (
	LoginPath     = "/login"
	RegisterPath  = "/register"
	DashboardRoot = "/dashboard"
	HomeRoot      = "/home"
)

type Class int

const (
	ClassPublic Class = iota
	ClassProtected
	ClassAuth
)

// Classify buckets a request path. Anything under the dashboard or home
// areas is protected; the login and register surfaces are auth-only;
// everything else is unguarded.
func Classify(path string) Class {
	if strings.HasPrefix(path, DashboardRoot) || strings.HasPrefix(path, HomeRoot) {
		return ClassProtected
	}
	if path == LoginPath || path == RegisterPath {
		return ClassAuth
	}
	return ClassPublic
}

func IsProtected(path string) bool {
	return Classify(path) == ClassProtected
}

func IsAuthSurface(path string) bool {
	return Classify(path) == ClassAuth
}
