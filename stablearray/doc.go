// Package stablearray implements a growable array whose elements keep their
// address for as long as they are stored.
//
// The array is a list of segments with geometrically doubling capacities.
// See Resolve for the O(1) mapping from element index to segment and offset.
package stablearray
