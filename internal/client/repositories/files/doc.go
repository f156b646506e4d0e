// Package files persists the client's upload journal: local files that were
// given a TEMPS key and have not been committed yet. The journal survives
// restarts, so an upload can be committed or discarded in a later session.
package files
