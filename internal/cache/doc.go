// Package cache provides the bounded, thread-safe memo used by text.Font to
// remember rasterized glyphs.
//
// A Font may be shared by several face caches running on different
// goroutines, so its render memo must be safe for concurrent use even though
// each face cache is not.
//
//	memo := cache.New[key, result](512)
//	r := memo.GetOrCreate(k, func() result { return render(k) })
package cache
