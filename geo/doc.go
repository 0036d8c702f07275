// Package geo answers coordinate queries over a station index: great-circle
// distances, nearest-station lookups, and display formatting for distances.
package geo
