// Package server implements the node commands shared by quorum daemons.
package server
