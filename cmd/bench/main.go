// Command bench measures throughput of the circular FIFO queue and verifies
// first-in-first-out integrity for every run. Scenarios execute in parallel,
// each owning a private queue instance; the queue itself is single-threaded.
package main

import (
	"flag"
	"os"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/minhtran241/go-typekit/pkg/datastructs/queue"
	"github.com/minhtran241/go-typekit/pkg/logger"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config (optional; defaults used when empty)")
	outPath := flag.String("out", "", "path for the YAML report (stdout when empty)")
	flag.Parse()

	cfg := defaultConfig()
	if *configPath != "" {
		loaded, err := loadConfig(*configPath)
		if err != nil {
			os.Stderr.WriteString("bench: " + err.Error() + "\n")
			os.Exit(1)
		}
		cfg = loaded
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		os.Stderr.WriteString("bench: init logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("starting benchmark session",
		zap.Int("scenarios", len(cfg.Scenarios)),
		zap.String("config", *configPath),
	)

	report := Report{
		SessionTime: sessionTime(),
		System:      collectSystemInfo(),
		Results:     make([]Result, len(cfg.Scenarios)),
	}

	var g errgroup.Group
	for i, scenario := range cfg.Scenarios {
		i, scenario := i, scenario
		g.Go(func() error {
			result, err := runScenario(scenario)
			if err != nil {
				return errors.Wrapf(err, "scenario %s", scenario.Name)
			}
			report.Results[i] = result

			log.Info("scenario complete",
				zap.String("name", scenario.Name),
				zap.String("pattern", scenario.Pattern),
				zap.Int("ops", scenario.Ops),
				zap.String("elapsed", result.Elapsed),
				zap.Float64("ops_per_sec", result.OpsPerSec),
			)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal("benchmark failed", zap.Error(err))
	}

	if err := writeReport(report, *outPath); err != nil {
		log.Fatal("write report", zap.Error(err))
	}
	log.Info("benchmark session done", zap.String("out", *outPath))
}

// runScenario executes one scenario against a fresh queue, checking that
// every dequeued value arrives in enqueue order.
func runScenario(s Scenario) (Result, error) {
	q := queue.NewCircular[int]()
	verify := newSequenceVerifier()

	start := time.Now()

	var err error
	switch s.Pattern {
	case "fill-drain":
		err = runFillDrain(q, verify, s.Ops)
	case "interleaved":
		err = runInterleaved(q, verify, s.Ops)
	case "wraparound":
		err = runWraparound(q, verify, s.Ops)
	default:
		err = errors.Errorf("unknown pattern %q", s.Pattern)
	}
	if err != nil {
		return Result{}, err
	}

	elapsed := time.Since(start)
	if err := verify.finish(); err != nil {
		return Result{}, err
	}

	return Result{
		Name:      s.Name,
		Pattern:   s.Pattern,
		Ops:       s.Ops,
		Elapsed:   elapsed.String(),
		OpsPerSec: float64(verify.produced+verify.consumed) / elapsed.Seconds(),
		Verified:  true,
	}, nil
}

// sequenceVerifier checks dequeued values against the enqueue sequence.
type sequenceVerifier struct {
	produced int
	consumed int
}

func newSequenceVerifier() *sequenceVerifier {
	return &sequenceVerifier{}
}

// next returns the value to enqueue next.
func (v *sequenceVerifier) next() int {
	n := v.produced
	v.produced++
	return n
}

// check validates one dequeued value.
func (v *sequenceVerifier) check(value int) error {
	if value != v.consumed {
		return errors.Errorf("fifo violation: got %d, want %d", value, v.consumed)
	}
	v.consumed++
	return nil
}

// finish verifies every produced value was consumed.
func (v *sequenceVerifier) finish() error {
	if v.consumed != v.produced {
		return errors.Errorf("consumed %d of %d produced", v.consumed, v.produced)
	}
	return nil
}

func runFillDrain(q *queue.Circular[int], verify *sequenceVerifier, ops int) error {
	for i := 0; i < ops; i++ {
		q.Enqueue(verify.next())
	}
	return drain(q, verify)
}

func runInterleaved(q *queue.Circular[int], verify *sequenceVerifier, ops int) error {
	for i := 0; i < ops; i++ {
		q.Enqueue(verify.next())
		if i%2 == 1 {
			value, ok := q.Dequeue().Get()
			if !ok {
				return errors.New("unexpected empty queue")
			}
			if err := verify.check(value); err != nil {
				return err
			}
		}
	}
	return drain(q, verify)
}

func runWraparound(q *queue.Circular[int], verify *sequenceVerifier, ops int) error {
	// Hold the size constant below the default capacity so head and tail
	// wrap without ever growing the buffer.
	for i := 0; i < 5; i++ {
		q.Enqueue(verify.next())
	}
	for i := 0; i < ops; i++ {
		q.Enqueue(verify.next())
		value, ok := q.Dequeue().Get()
		if !ok {
			return errors.New("unexpected empty queue")
		}
		if err := verify.check(value); err != nil {
			return err
		}
	}
	return drain(q, verify)
}

// drain dequeues until the queue is empty, verifying order.
func drain(q *queue.Circular[int], verify *sequenceVerifier) error {
	for {
		value, ok := q.Dequeue().Get()
		if !ok {
			return nil
		}
		if err := verify.check(value); err != nil {
			return err
		}
	}
}
