package jobs

import "log"

// Task runs in the background and reports a human-readable outcome. Tasks
// never return errors: failures are logged and folded into the outcome
// string.
type Task func() string

type Dispatcher interface {
	Submit(Task)
}

var dispatcher Dispatcher = Sync{}

// SetDispatcher swaps the global dispatcher. main installs the async pool;
// tests install Sync to run tasks inline.
func SetDispatcher(d Dispatcher) {
	dispatcher = d
}

func Dispatch() Dispatcher {
	return dispatcher
}

// Submit hands the task to the current dispatcher, fire-and-forget.
func Submit(t Task) {
	dispatcher.Submit(t)
}

// Sync runs tasks inline on the caller's goroutine.
type Sync struct{}

func (Sync) Submit(t Task) {
	log.Println("[jobs]", t())
}

// Pool runs tasks on a fixed set of worker goroutines. Ordering between
// submitted tasks is not guaranteed.
type Pool struct {
	tasks chan Task
}

func NewPool(workers int) *Pool {
	p := &Pool{tasks: make(chan Task, 64)}
	for i := 0; i < workers; i++ {
		go p.worker()
	}
	return p
}

func (p *Pool) Submit(t Task) {
	p.tasks <- t
}

func (p *Pool) worker() {
	for t := range p.tasks {
		log.Println("[jobs]", t())
	}
}
