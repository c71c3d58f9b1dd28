package auth

import (
	"slices"
	"strings"
)

const (
	// RoleAdmin manages every resource, including categories and ads.
	RoleAdmin = "admin"
	// RoleEditor writes articles only.
	RoleEditor = "editor"
)

// grant allows methods on a collection. An empty collection means every path.
type grant struct {
	methods    []string
	collection string
}

var writeMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}

// roleGrants applies to protected requests only; anonymous reads are decided
// by IsPublicRequest before a token is looked at.
var roleGrants = map[string][]grant{
	RoleAdmin: {
		{methods: append(slices.Clone(writeMethods), "PATCH")},
	},
	RoleEditor: {
		{methods: writeMethods, collection: "/articles"},
		{methods: []string{"GET"}, collection: "/auth/me"},
	},
}

// checkRolePermission reports whether role may call method on path.
//
//	checkRolePermission("editor", "PUT", "/articles/3")  // true
//	checkRolePermission("editor", "POST", "/ads")        // false
func checkRolePermission(role, method, path string) bool {
	for _, g := range roleGrants[role] {
		if slices.Contains(g.methods, method) && inCollection(path, g.collection) {
			return true
		}
	}
	return false
}

// inCollection matches the collection itself and anything below it.
func inCollection(path, collection string) bool {
	if collection == "" {
		return true
	}
	return path == collection || strings.HasPrefix(path, collection+"/")
}
