package bramble

import "time"

// Stats is a snapshot of a RenderingState's measurement cache.
type Stats struct {
	Hits    int // MeasureText calls answered from the cache
	Misses  int // MeasureText calls that queried the host
	Entries int // distinct strings currently cached
}

// debugStats accumulates per-state counters. queryTime is only tracked
// when Config.Debug is set.
type debugStats struct {
	hits      int
	misses    int
	queryTime time.Duration
}

// debugLargeCache is the entry count past which an unbounded cache is
// reported. The cache never evicts, so a vocabulary this large usually means
// user-generated text is being measured.
const debugLargeCache = 4096

func (st *RenderingState) debugCheckCacheSize() {
	if st.warned || st.cfg.CacheLimit > 0 {
		return
	}
	if n := st.cache.len(); n > debugLargeCache {
		st.warned = true
		Logger().Warn("bramble: measurement cache is large and never evicts; set CacheLimit to bound it",
			"entries", n, "threshold", debugLargeCache)
	}
}

// debugLog reports the state's cache activity.
func (st *RenderingState) debugLog() {
	var avg time.Duration
	if st.stats.misses > 0 {
		avg = st.stats.queryTime / time.Duration(st.stats.misses)
	}
	Logger().Info("bramble: measurement stats",
		"hits", st.stats.hits,
		"misses", st.stats.misses,
		"entries", st.cache.len(),
		"query_time", st.stats.queryTime,
		"avg_query", avg)
}
