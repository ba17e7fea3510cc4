// Package binning resolves per-dimension bin edges and locates values
// within them.
//
// Bins are closed on the left and open on the right, except the last bin
// of a dimension which is closed on both ends so that the maximum edge is
// covered.
package binning
