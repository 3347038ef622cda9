/*
Package datrie implements a mutable double-array trie (DAT) with a shared
tail buffer, following Aoe's double-array construction.

A DATrie stores a finite set of strings over a small, fixed alphabet and
supports several lookup modes: exact membership (Contains), prefix
enumeration (StartsWith), left-to-right pattern match (Match), anagram
search over a letter multiset (Permute), and single-character wildcard
query (Query).

Insertion mutates two parallel integer arrays, BASE and CHECK, that encode
trie topology, plus a tail store that collapses long non-branching suffixes
into a single leaf entry instead of expanding them into trie edges. A
colliding insertion relocates an existing subtree (xCheck/modify) rather
than rejecting the new key, so the structure never needs rebuilding.

Further Reading

	Jun-ichi Aoe, "An Efficient Digital Search Algorithm by Using a Double-Array Structure"
	https://en.wikipedia.org/wiki/Trie#Double-array_tries
*/
package datrie

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'datrie'
func tracer() tracing.Trace {
	return tracing.Select("datrie")
}

func assertInvariant(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
