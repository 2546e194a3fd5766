package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-recommendation/recommendation/internal/engine"
	"github.com/Astemirdum/library-recommendation/recommendation/internal/errs"
)

// Source produces the result of one generation run.
type Source interface {
	Generate(ctx context.Context) (engine.Result, error)
}

type LedgerReader interface {
	LedgerSnapshot(ctx context.Context, since time.Time) (engine.Snapshot, error)
}

type inProcessSource struct {
	ledger LedgerReader
	params engine.Params
	since  func(now time.Time) time.Time
	now    func() time.Time
}

// NewInProcessSource runs the pipeline inside the serving process.
func NewInProcessSource(ledger LedgerReader, params engine.Params, since func(now time.Time) time.Time) Source {
	return &inProcessSource{
		ledger: ledger,
		params: params,
		since:  since,
		now:    time.Now,
	}
}

func (s *inProcessSource) Generate(ctx context.Context) (engine.Result, error) {
	now := s.now()
	snap, err := s.ledger.LedgerSnapshot(ctx, s.since(now))
	if err != nil {
		return engine.Result{}, errors.Wrap(err, "ledger snapshot")
	}
	return engine.Generate(ctx, snap, s.params, now)
}

type execSource struct {
	name    string
	args    []string
	timeout time.Duration
	log     *zap.Logger
}

// NewExecSource runs the generator as a child process that prints one JSON
// result on stdout. A non-zero exit, a timeout or output that does not decode
// into a valid result fails the run.
func NewExecSource(name string, args []string, timeout time.Duration, log *zap.Logger) Source {
	return &execSource{
		name:    name,
		args:    args,
		timeout: timeout,
		log:     log.Named("exec"),
	}
}

// maxDiagnostics bounds how much of the child's stderr ends up in errors.
const maxDiagnostics = 2 << 10

func (s *execSource) Generate(ctx context.Context) (engine.Result, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, s.name, s.args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	// grandchildren holding the pipes must not outlive the timeout
	cmd.WaitDelay = time.Second

	started := time.Now()
	err := cmd.Run()
	s.log.Debug("generator exited",
		zap.String("cmd", s.name),
		zap.Duration("took", time.Since(started)),
		zap.Int("stdout", stdout.Len()),
		zap.Int("stderr", stderr.Len()),
	)
	if err != nil {
		return engine.Result{}, errors.Wrapf(errs.ErrGenerationFailed, "%s: %v: %s", s.name, err, tail(stderr.String()))
	}

	res, err := DecodeResult(&stdout)
	if err != nil {
		return engine.Result{}, errors.Wrapf(errs.ErrGenerationFailed, "%s output: %v", s.name, err)
	}
	return res, nil
}

// DecodeResult reads exactly one result document and validates it.
func DecodeResult(r io.Reader) (engine.Result, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var res engine.Result
	if err := dec.Decode(&res); err != nil {
		return engine.Result{}, errors.Wrap(err, "decode")
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return engine.Result{}, errors.New("unexpected data after result")
	}
	if err := res.Validate(); err != nil {
		return engine.Result{}, errors.Wrap(err, "validate")
	}
	return res, nil
}

func tail(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > maxDiagnostics {
		s = s[len(s)-maxDiagnostics:]
	}
	return s
}
