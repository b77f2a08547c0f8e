// Package testsupport provides fixtures shared by package tests: temp-dir
// configurations, a canned catalog HTTP server, and image files.
package testsupport
