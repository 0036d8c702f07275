/*
Package match resolves free-form city and station names against a station
index.

Queries and candidate names are first normalized: diacritics stripped,
lowercased, punctuation folded to single spaces. Normalize is pure and
idempotent, so normalized values can be cached and compared directly.

Resolution is tiered. An exact normalized match wins outright. Substring
containment (query in candidate or candidate in query) beats any fuzzy
score regardless of threshold. Only then does Levenshtein similarity
decide, subject to the configured threshold. Ties prefer the city with
more stations, then the lexicographically smaller key, so a given dataset
always resolves the same way.

A query below every threshold returns ErrNotFound wrapped with the query;
it is an ordinary outcome, not a server fault.
*/
package match
