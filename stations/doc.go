/*
Package stations loads the flat station file and indexes it for lookups.

The loader parses a delimited file (semicolon by default, the layout of the
SNCF open-data dump) into a flat record slice, then the index is built in a
second pass: city groups, display names, id lookups and insertion order.

# Basic Usage

	idx, rep, err := stations.LoadIndex("stations.csv", stations.LoaderOptions{}, match.Normalize)
	if err != nil {
	    log.Fatal(err) // *stations.LoadError: nothing partial is served
	}
	log.Printf("loaded %d records (%d skipped)", rep.Loaded, rep.Skipped)

	group := idx.StationsInCity("paris")   // city record first, then mains
	main := idx.DefaultStation("paris")    // what a bare "Paris" resolves to

Malformed rows (non-numeric coordinates, missing id or name) are skipped
with a warning; duplicate ids reject the whole load. Rows without
coordinates are kept and counted; coordinate search excludes them with a
caller-visible count instead of dropping them silently.

The index is immutable once built and safe for concurrent reads.
*/
package stations
