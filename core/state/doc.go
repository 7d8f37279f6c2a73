// Package state publishes the reconciled View to concurrent readers.
//
// The sync loop is the only writer. Readers (HTTP handlers, snapshot export)
// get the current View pointer under a read lock and must treat it as
// immutable. Each publish bumps a version so readers can cheaply tell whether
// anything changed since they last looked.
package state
