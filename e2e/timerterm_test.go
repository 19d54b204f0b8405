package e2e_test

import (
	"bytes"
	"io"
	"os/exec"
	"syscall"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/sync/errgroup"
)

// timerProc wraps a running timerterm process. Output is drained
// concurrently so the child never blocks on a full pipe, and done
// receives the final Wait error exactly once.
type timerProc struct {
	cmd     *exec.Cmd
	out     bytes.Buffer
	errOut  bytes.Buffer
	started time.Time
	done    chan error
}

func startTimer(args ...string) *timerProc {
	p := &timerProc{
		cmd:  exec.Command(binaryPath, args...),
		done: make(chan error, 1),
	}

	stdout, err := p.cmd.StdoutPipe()
	Expect(err).NotTo(HaveOccurred())
	stderr, err := p.cmd.StderrPipe()
	Expect(err).NotTo(HaveOccurred())

	p.started = time.Now()
	Expect(p.cmd.Start()).To(Succeed())

	g := new(errgroup.Group)
	g.Go(func() error {
		_, err := io.Copy(&p.out, stdout)
		return err
	})
	g.Go(func() error {
		_, err := io.Copy(&p.errOut, stderr)
		return err
	})
	go func() {
		// Pipe reads must finish before Wait releases them.
		_ = g.Wait()
		p.done <- p.cmd.Wait()
	}()
	return p
}

var _ = Describe("Timerterm", func() {
	It("runs a plain-seconds spec to completion with exit code 0", func() {
		p := startTimer("1")

		var waitErr error
		Eventually(p.done, "3s").Should(Receive(&waitErr))
		Expect(waitErr).NotTo(HaveOccurred())
		Expect(p.cmd.ProcessState.ExitCode()).To(Equal(0))
		Expect(time.Since(p.started)).To(BeNumerically("<", 2*time.Second))

		Expect(p.out.String()).To(ContainSubstring("0:00:01"))
		Expect(p.out.String()).To(ContainSubstring("time's up"))
	})

	It("honors an hh:mm:ss spec and does not finish early", func() {
		p := startTimer("0:00:02")

		// Still running well before the two seconds are up.
		Consistently(p.done, "1500ms").ShouldNot(Receive())

		var waitErr error
		Eventually(p.done, "3s").Should(Receive(&waitErr))
		Expect(waitErr).NotTo(HaveOccurred())
		Expect(time.Since(p.started)).To(BeNumerically("<", 4*time.Second))
	})

	It("stops cleanly and promptly on SIGINT", func() {
		// No argument: the timer would run for the default 10
		// minutes, so only the interrupt can end it.
		p := startTimer()

		// Confirm it is alive about a second into the run.
		Consistently(p.done, "1s").ShouldNot(Receive())
		Expect(p.cmd.Process.Signal(syscall.Signal(0))).To(Succeed())

		interrupted := time.Now()
		Expect(p.cmd.Process.Signal(syscall.SIGINT)).To(Succeed())

		var waitErr error
		Eventually(p.done, "1s").Should(Receive(&waitErr))
		Expect(waitErr).NotTo(HaveOccurred())
		Expect(p.cmd.ProcessState.ExitCode()).To(Equal(0))
		// Shutdown latency is bounded by the polling quantum; allow
		// slack for process teardown.
		Expect(time.Since(interrupted)).To(BeNumerically("<", 500*time.Millisecond))

		Expect(p.out.String()).To(ContainSubstring("interrupted"))
	})

	It("falls back to the default duration on malformed input", func() {
		p := startTimer("abc")

		// A malformed spec is not an error: the process keeps
		// running on the 10-minute default.
		Consistently(p.done, "500ms").ShouldNot(Receive())

		Expect(p.cmd.Process.Signal(syscall.SIGINT)).To(Succeed())
		var waitErr error
		Eventually(p.done, "1s").Should(Receive(&waitErr))
		Expect(waitErr).NotTo(HaveOccurred())
		Expect(p.out.String()).To(ContainSubstring("0:10:00"))
	})
})
