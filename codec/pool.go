package codec

import "sync"

const (
	// Pool limits to prevent memory bloat
	poolMaxCapWords  = 1024
	poolInitCapWords = 16
)

// word buffer pool for flattening
var wordBufPool = sync.Pool{
	New: func() any {
		buf := make([]uint64, poolInitCapWords)
		return &buf
	},
}

func getWordBuf(n int) *[]uint64 {
	buf := wordBufPool.Get().(*[]uint64)
	if cap(*buf) < n {
		grown := make([]uint64, n)
		buf = &grown
	}
	*buf = (*buf)[:cap(*buf)]
	return buf
}

func putWordBuf(buf *[]uint64) {
	if buf == nil || cap(*buf) > poolMaxCapWords {
		return // reject oversized
	}
	*buf = (*buf)[:0]
	wordBufPool.Put(buf)
}
