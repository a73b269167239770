package main

import (
	"bufio"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"splitstream/internal/version"
)

// streamgen emits chatter on stdout and stderr at random intervals, as a
// test feed for splitstream. Each round flips a coin per stream, so output
// is bursty and the two streams drift apart.

var messages = []string{"hello", "hello world", "lorem ipsum dolor sit amet"}

func main() {
	var (
		duration    time.Duration
		minDelay    time.Duration
		maxDelay    time.Duration
		seed        int64
		showVersion bool
	)
	flag.DurationVar(&duration, "duration", 100*time.Second, "How long to emit before exiting")
	flag.DurationVar(&minDelay, "min-delay", 100*time.Millisecond, "Shortest pause between rounds")
	flag.DurationVar(&maxDelay, "max-delay", 700*time.Millisecond, "Longest pause between rounds")
	flag.Int64Var(&seed, "seed", 0, "Random seed; 0 seeds from the clock")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Println("streamgen", version.String())
		return
	}
	if minDelay <= 0 || maxDelay < minDelay {
		fmt.Fprintln(os.Stderr, "invalid delay range")
		os.Exit(2)
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	abort := make(chan struct{})
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		close(abort)
	}()

	outw := bufio.NewWriter(os.Stdout)
	errw := bufio.NewWriter(os.Stderr)
	defer outw.Flush()
	defer errw.Flush()

	stdoutN, stderrN := 0, 0
	deadline := time.Now().Add(duration)
	for time.Now().Before(deadline) {
		delay := minDelay + time.Duration(rng.Int63n(int64(maxDelay-minDelay)+1))
		select {
		case <-abort:
			return
		case <-time.After(delay):
		}
		if rng.Intn(2) == 0 {
			stdoutN++
			fmt.Fprintf(outw, "stdout message %d %s\n", stdoutN, messages[rng.Intn(len(messages))])
			outw.Flush()
		}
		if rng.Intn(2) == 0 {
			stderrN++
			fmt.Fprintf(errw, "stderr message %d %s\n", stderrN, messages[rng.Intn(len(messages))])
			errw.Flush()
		}
	}
	fmt.Fprintln(outw, "Done and exiting")
}
