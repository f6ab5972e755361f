// Package util contains small shared helpers with no dependencies on other
// restkit packages.
package util
