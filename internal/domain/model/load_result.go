// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package model

// LoadResult is the outcome of a single roster fetch: either a roster or the
// error that prevented reading one.
type LoadResult struct {
	roster Roster
	err    error
}

// LoadSucceeded wraps a roster read from a data source.
func LoadSucceeded(roster Roster) LoadResult {
	return LoadResult{roster: roster}
}

// LoadFailed wraps the error of a failed fetch.
func LoadFailed(err error) LoadResult {
	return LoadResult{err: err}
}

// Err returns the fetch error, nil on success.
func (r LoadResult) Err() error {
	return r.err
}

// Roster returns the fetched roster and whether the fetch succeeded.
func (r LoadResult) Roster() (Roster, bool) {
	return r.roster, r.err == nil
}

// OrElse returns the fetched roster, or the roster produced by fallback when
// the fetch failed. It never yields a partially populated roster.
func (r LoadResult) OrElse(fallback func(err error) Roster) Roster {
	if r.err != nil {
		return fallback(r.err)
	}
	return r.roster
}
