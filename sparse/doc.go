// Package sparse provides the compressed row storage used for MDP relations.
//
// A Store holds one row per (vertex, action) pair. Row r = vertex*actions + action
// spans the half-open interval [rowStart[r], rowStart[r+1]) of two parallel arrays:
//
//   - weight[i]       – unnormalized edge weight (probability mass or reward).
//   - destination[i]  – destination vertex of edge i.
//
// The transition relation and the reward relation of a model are two Stores
// with the SAME row layout, so an edge index picked while sampling a transition
// addresses the paired reward directly. SameLayout checks that alignment.
//
// Stores are immutable after construction and safe for concurrent readers.
//
// Complexity:
//
//   - RowRange, Weight, Destination: O(1).
//   - New: O(R + E) validation, R = vertices*actions, E = edges.
//   - Builder.Build: O(R + E) stable counting sort by row.
//
// Errors (sentinel):
//
//   - ErrBadShape        vertices <= 0 or actions <= 0.
//   - ErrBadOffsets      offsets table of wrong length, not starting at 0 or not monotone.
//   - ErrLengthMismatch  weight/destination lengths differ from the last offset.
//   - ErrOutOfRange      destination or (vertex, action) outside the shape.
//   - ErrNaNInf          non-finite weight.
//   - ErrLayoutMismatch  two stores do not share one index space.
//   - ErrRowTooWide      a row is wider than a fan-out limit (ValidateFanOut).
package sparse
