// Package store keeps Lamport key pairs on disk.
//
// Keys are written in their raw byte layout, with no header or encoding:
// <dir>/<name>.sec holds the 16384-byte secret key (mode 0600) and
// <name>.pub the 16384-byte public key (mode 0644). Writes go through a temp
// file and a rename, so a reader never sees a half-written key. All methods
// are concurrency-safe via internal locking.
package store
