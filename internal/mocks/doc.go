// Package mocks provides mock implementations of the store interfaces for
// use in unit tests. Every mock exposes function fields that override the
// default map-backed behavior per test.
package mocks
