// Package gapidx answers gapped two-pattern search queries over a static
// text: given two literal patterns s1 and s2 and a gap interval
// [gMin, gMax], it enumerates every pair (a, b) such that s1 occurs
// starting at a, s2 occurs ending at b, and the number of bytes strictly
// between the two occurrences falls inside the gap interval.
//
// The index is built once from a compressed suffix array (CSA) and a
// wavelet tree over the suffix array's values (WTSA) — see [CSA] and
// [WTSA] — and never mutated afterwards. Two algorithms answer a query:
//
//   - [Index.Matches] co-descends the two wavelet-tree subtrees backing
//     the s1 and s2 occurrence sets, in text-position order, pruning
//     whole subtree ranges that cannot contribute to any match.
//   - [Index.MatchesRef] is a reference oracle: it materialises s2's
//     occurrences, sorts them, and binary-searches a window per s1
//     occurrence. It exists to validate [Index.Matches] in tests and as a
//     benchmark baseline, not for production use on large texts.
//
// This package ships a minimal in-memory reference CSA/WTSA
// (internal/fmtext, internal/wavelet) so [New] works out of the box; any
// type satisfying [CSA] and [WTSA] can be substituted for a production
// deployment backed by a succinct, disk-resident index.
package gapidx
