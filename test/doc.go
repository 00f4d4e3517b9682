// Package test provides infrastructure and utilities for integration testing in labtrack.
//
// A Suite runs the real application (GraphQL, document content, health and
// metrics routes) on an httptest server, backed by a file-based SQLite
// database and an in-memory blob store, and hands out a real API client
// pointed at it.
//
// Example Usage:
//
//	func TestExample(t *testing.T) {
//	    suite := test.NewSuite(t)
//	    defer suite.Cleanup()
//
//	    suite.LoginAsAdmin()
//	    members, err := suite.APIClient.ListMembers(suite.Context(), client.ListParams{})
//	}
package test
