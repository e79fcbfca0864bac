// report.go — terminal actions and the Reporter collaborator.
//
// The core never logs implicitly: construction is silent, and diagnostics
// leave the process only through the explicit terminal actions Logged,
// AsFatal, and AsAssertionFailure. Rendering is delegated to a Reporter;
// the default wraps zap. Terminal actions are non-destructive — they return
// the receiver unchanged so calls chain — except AsFatal, which never
// returns.
//
// Both the reporter and the assertion hook are process-wide shared state and
// are therefore held in CriticalSections, created lazily on first use.
package diag

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Reporter consumes rendered diagnostics on terminal actions.
type Reporter interface {
	// Report emits a non-fatal diagnostic record for e.
	Report(e Error)

	// Fatal emits the final record for e and terminates the process.
	// Implementations that return anyway are backstopped by a panic in
	// AsFatal.
	Fatal(e Error)
}

// zapReporter renders through a zap logger: concise message as the log
// message, kind and tags as structured fields, the full %+v rendering under
// "details".
type zapReporter struct {
	log *zap.Logger
}

// NewZapReporter wraps an existing zap logger as a Reporter.
func NewZapReporter(log *zap.Logger) Reporter {
	return &zapReporter{log: log}
}

func (r *zapReporter) fieldsFor(e Error) []zap.Field {
	return []zap.Field{
		zap.String("kind", string(e.KindVal())),
		zap.Strings("tags", e.Group().Tags()),
		zap.String("details", fmt.Sprintf("%+v", e)),
	}
}

func (r *zapReporter) Report(e Error) {
	r.log.Error(e.Error(), r.fieldsFor(e)...)
}

func (r *zapReporter) Fatal(e Error) {
	// zap's Fatal level exits the process after writing.
	r.log.Fatal(e.Error(), r.fieldsFor(e)...)
}

var (
	reporterOnce sync.Once
	reporterCS   *CriticalSection[Reporter]
)

func reporterSection() *CriticalSection[Reporter] {
	reporterOnce.Do(func() {
		log, err := zap.NewProduction()
		if err != nil {
			log = zap.NewNop()
		}
		reporterCS = NewCriticalSection[Reporter](NewZapReporter(log))
	})
	return reporterCS
}

// SetReporter replaces the process-wide reporter and returns the previous
// one. Passing nil installs a no-op reporter.
func SetReporter(r Reporter) Reporter {
	if r == nil {
		r = NewZapReporter(zap.NewNop())
	}
	return reporterSection().Exchange(r)
}

func currentReporter() Reporter {
	return AccessValue(reporterSection(), func(r Reporter) Reporter { return r })
}

// AssertionHandler is the hook invoked by AsAssertionFailure in diagnostic
// mode. msg is the optional call-site note ("" when absent). Handlers must
// be recoverable: they log, record, or test-fail, but do not abort.
type AssertionHandler func(e Error, msg string)

var (
	assertionOnce sync.Once
	assertionCS   *CriticalSection[AssertionHandler]
)

func assertionSection() *CriticalSection[AssertionHandler] {
	assertionOnce.Do(func() {
		assertionCS = NewCriticalSection[AssertionHandler](func(e Error, msg string) {
			currentReporter().Report(e)
		})
	})
	return assertionCS
}

// SetAssertionHandler replaces the assertion hook and returns the previous
// one. Passing nil restores a reporter-backed default.
func SetAssertionHandler(h AssertionHandler) AssertionHandler {
	if h == nil {
		h = func(e Error, msg string) { currentReporter().Report(e) }
	}
	return assertionSection().Exchange(h)
}

func currentAssertionHandler() AssertionHandler {
	return AccessValue(assertionSection(), func(h AssertionHandler) AssertionHandler { return h })
}

// -----------------------------------------------------------------------------
// Shared terminal-action bodies
// -----------------------------------------------------------------------------

func firstOr(def string, msgs []string) string {
	if len(msgs) > 0 && msgs[0] != "" {
		return msgs[0]
	}
	return def
}

func reportLogged(e Error) {
	currentReporter().Report(e)
}

// reportAssertion invokes the assertion hook in diagnostic mode. An optional
// note is appended as one more frame, stamped at loc (the user's call site,
// captured by the interface method).
func reportAssertion(e Error, msgs []string, loc Location) {
	if !DiagnosticMode() {
		return
	}
	msg := firstOr("", msgs)
	if msg != "" {
		e = e.Appending(NewFrame(msg, loc))
	}
	currentAssertionHandler()(e, msg)
}

// reportFatal renders and terminates. The optional final note is appended on
// a copy of the error, so the original value stays untouched as the panic
// value.
func reportFatal(e Error, msgs []string, loc Location) {
	target := e
	if m := firstOr("", msgs); m != "" {
		target = e.Appending(NewFrame(m, loc))
	}
	currentReporter().Fatal(target)
	// Backstop: Fatal must not return. A custom reporter that does gets the
	// process unwound anyway.
	panic(target)
}

// -----------------------------------------------------------------------------
// Terminal actions on the concrete types
// -----------------------------------------------------------------------------

func (e *kindErr) Logged() Error {
	reportLogged(e)
	return e
}

func (e *kindErr) AsAssertionFailure(msg ...string) Error {
	reportAssertion(e, msg, Here(1))
	return e
}

func (e *kindErr) AsFatal(msg ...string) {
	reportFatal(e, msg, Here(1))
}

func (m *multiErr) Logged() Error {
	reportLogged(m)
	return m
}

func (m *multiErr) AsAssertionFailure(msg ...string) Error {
	reportAssertion(m, msg, Here(1))
	return m
}

func (m *multiErr) AsFatal(msg ...string) {
	reportFatal(m, msg, Here(1))
}
