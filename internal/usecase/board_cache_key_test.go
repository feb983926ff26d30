package usecase

import "testing"

func TestBoardCacheKey_NormalizesEquivalentQueries(t *testing.T) {
	a := BoardCacheKey(JobBoardParams{Search: "  React  Developer ", Category: "Technology"})
	b := BoardCacheKey(JobBoardParams{Search: "react developer", Category: "technology"})
	if a != b {
		t.Fatalf("equivalent queries should share a key:\n%s\n%s", a, b)
	}
}

func TestBoardCacheKey_DistinguishesPages(t *testing.T) {
	a := BoardCacheKey(JobBoardParams{Search: "react", Page: 1})
	b := BoardCacheKey(JobBoardParams{Search: "react", Page: 2})
	if a == b {
		t.Fatalf("different pages must not share a key")
	}
}

func TestBoardLockKey(t *testing.T) {
	k := BoardCacheKey(JobBoardParams{})
	lock := BoardLockKey(k)
	if lock == k {
		t.Fatalf("lock key must differ from cache key")
	}
	if lock[:11] != "board:lock:" {
		t.Fatalf("unexpected lock prefix %q", lock)
	}
}
