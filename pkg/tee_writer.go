package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// TeeWriter sends log output to the console and the log file at once. A failing
// target is reported but does not stop the others.
type TeeWriter struct {
	targets []io.Writer
}

func NewTeeWriter(targets ...io.Writer) *TeeWriter {
	return &TeeWriter{
		targets: append([]io.Writer{}, targets...),
	}
}

// Write returns the bytes written summed over all targets.
func (t *TeeWriter) Write(p []byte) (int, error) {
	var (
		total int
		errs  error
	)
	for _, target := range t.targets {
		n, err := target.Write(p)
		total += n
		errs = multierr.Append(errs, err)
	}
	return total, errs
}
