package crawl

import "github.com/cespare/xxhash/v2"

// Fingerprint computes a content digest of a fetched page body. Digests
// are compared only for equality against pages seen earlier in the same
// run; they are never persisted.
func Fingerprint(body string) uint64 {
	return xxhash.Sum64String(body)
}

// fingerprintSet tracks the page fingerprints seen during one crawl run.
type fingerprintSet map[uint64]struct{}

func (s fingerprintSet) contains(fp uint64) bool {
	_, ok := s[fp]
	return ok
}

func (s fingerprintSet) add(fp uint64) {
	s[fp] = struct{}{}
}
