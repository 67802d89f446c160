package util

import (
	"bufio"
	"context"
	"io"
	"strings"
)

// ReadLines reads newline separated lines from r into toChan until it reaches EOF then the toChan
// is closed. A trailing carriage return is removed from each line so scripts written on Windows
// work too. If an error is encountered it is immediately returned on the provided errChan then
// the toChan is closed without reading anything else. If the context is cancelled while a line is
// waiting to be consumed, ctx.Err() is returned on errChan.
//
// Callers should size errChan so a send never blocks, typically with a buffer of one.
func ReadLines(ctx context.Context, r io.Reader, toChan chan<- string, errChan chan<- error) {
	scanner := bufio.NewScanner(r)

	defer close(toChan)
	for scanner.Scan() {
		input := strings.TrimSuffix(scanner.Text(), "\r")
		select {
		case toChan <- input:
		case <-ctx.Done():
			errChan <- ctx.Err()
			return
		}
	}
	if err := scanner.Err(); err != nil {
		errChan <- err
	}
}
