package field

import (
	"runtime"
	"sync"
)

// defaultRowThreshold is the minimum row count to use parallel evaluation.
// Below this, single-threaded is faster due to goroutine overhead.
const defaultRowThreshold = 16

// workChunk is a half-open row range for one worker to evaluate.
type workChunk struct {
	startRow, endRow int
}

// workerPool holds persistent workers for batch evaluation. Queries are
// pure, so workers share nothing but the immutable evaluator and the
// disjoint row ranges they write.
type workerPool struct {
	numWorkers int

	workChan chan workChunk // sends row ranges to workers
	doneChan chan struct{}  // workers signal chunk completion
	stopChan chan struct{}  // signals workers to exit
	wg       sync.WaitGroup
	running  bool

	// target of the in-flight batch; set before dispatch, cleared after
	eval *Evaluator
	buf  *Buffer[Sample]
}

func newWorkerPool() *workerPool {
	return &workerPool{numWorkers: runtime.GOMAXPROCS(0)}
}

// start launches persistent worker goroutines.
func (p *workerPool) start() {
	if p.running {
		return
	}

	p.workChan = make(chan workChunk, p.numWorkers)
	p.doneChan = make(chan struct{}, p.numWorkers)
	p.stopChan = make(chan struct{})
	p.running = true

	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// stop signals all workers to exit and waits for them.
func (p *workerPool) stop() {
	if !p.running {
		return
	}

	close(p.stopChan)
	p.wg.Wait()
	close(p.workChan)
	close(p.doneChan)
	p.running = false
}

// worker runs in a goroutine, evaluating row chunks until stopped.
func (p *workerPool) worker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.stopChan:
			return
		case chunk, ok := <-p.workChan:
			if !ok {
				return
			}
			p.eval.evaluateRows(p.buf, chunk.startRow, chunk.endRow)
			p.doneChan <- struct{}{}
		}
	}
}

// evaluate splits the buffer's rows into contiguous chunks and blocks until
// every chunk is done. One batch at a time.
func (p *workerPool) evaluate(e *Evaluator, buf *Buffer[Sample]) {
	if !p.running {
		p.start()
	}

	p.eval = e
	p.buf = buf

	n := buf.Height
	chunkSize := (n + p.numWorkers - 1) / p.numWorkers

	dispatched := 0
	for w := 0; w < p.numWorkers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > n {
			end = n
		}
		if start >= end {
			continue
		}
		p.workChan <- workChunk{startRow: start, endRow: end}
		dispatched++
	}

	for i := 0; i < dispatched; i++ {
		<-p.doneChan
	}

	p.eval = nil
	p.buf = nil
}
