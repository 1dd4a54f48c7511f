package parallel

import (
	"runtime"
	"sync/atomic"
	"testing"
)

func TestExecuteAllRunsEveryTask(t *testing.T) {
	p := NewWorkerPool(4)
	defer p.Close()

	const n = 200
	var ran [n]atomic.Bool
	tasks := make([]func(), n)
	for i := range tasks {
		i := i
		tasks[i] = func() { ran[i].Store(true) }
	}

	p.ExecuteAll(tasks)

	for i := range ran {
		if !ran[i].Load() {
			t.Fatalf("task %d did not run", i)
		}
	}
}

func TestExecuteAllEmpty(t *testing.T) {
	p := NewWorkerPool(2)
	defer p.Close()
	p.ExecuteAll(nil) // must not block or panic
}

func TestWorkersDefault(t *testing.T) {
	p := NewWorkerPool(0)
	defer p.Close()
	if got, want := p.Workers(), runtime.GOMAXPROCS(0); got != want {
		t.Errorf("Workers() = %d, want GOMAXPROCS %d", got, want)
	}

	p2 := NewWorkerPool(3)
	defer p2.Close()
	if p2.Workers() != 3 {
		t.Errorf("Workers() = %d, want 3", p2.Workers())
	}
}

func TestCloseIdempotent(t *testing.T) {
	p := NewWorkerPool(2)
	p.Close()
	p.Close() // second Close must be a no-op
}

func TestExecuteAllAfterClose(t *testing.T) {
	p := NewWorkerPool(2)
	p.Close()

	var ran atomic.Bool
	p.ExecuteAll([]func(){func() { ran.Store(true) }})
	if ran.Load() {
		t.Error("task ran on a closed pool")
	}
}

func TestExecuteAllConcurrentCallers(t *testing.T) {
	p := NewWorkerPool(4)
	defer p.Close()

	var count atomic.Int64
	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			tasks := make([]func(), 50)
			for i := range tasks {
				tasks[i] = func() { count.Add(1) }
			}
			p.ExecuteAll(tasks)
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}

	if got := count.Load(); got != 400 {
		t.Errorf("ran %d tasks, want 400", got)
	}
}
