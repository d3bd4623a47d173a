package scraper

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"
)

// operatorWait bounds how long a run will sit at a login page waiting for a
// human to finish authenticating before the source is skipped.
const operatorWait = 5 * time.Minute

// ErrOperatorTimeout is returned when no confirmation arrives in time.
var ErrOperatorTimeout = fmt.Errorf("operator confirmation timed out")

// AwaitOperator pauses the run so a human can complete a login the scraper
// cannot automate, then waits for ENTER on stdin.
func AwaitOperator(ctx context.Context, sourceName string, timeout time.Duration) error {
	return awaitConfirmation(ctx, os.Stdin, os.Stdout, sourceName, timeout)
}

func awaitConfirmation(ctx context.Context, in io.Reader, out io.Writer, sourceName string, timeout time.Duration) error {
	fmt.Fprintf(out, "\n⏸️  %s requires a manual login.\n", sourceName)
	fmt.Fprintln(out, "   1. Complete the login in the browser window")
	fmt.Fprintln(out, "   2. Wait until the page finishes loading")
	fmt.Fprintln(out, "   3. Press ENTER here to continue")

	confirmed := make(chan struct{})
	go func() {
		reader := bufio.NewReader(in)
		if _, err := reader.ReadString('\n'); err == nil {
			close(confirmed)
		}
	}()

	select {
	case <-confirmed:
		fmt.Fprintln(out, "▶️  Resuming run")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(timeout):
		return ErrOperatorTimeout
	}
}
