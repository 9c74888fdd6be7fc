// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package evjson

// An ErrorPolicy decides how a Parser responds to a malformed document.
//
// Error is called for a recoverable condition; if it returns true, the
// parser applies the documented recovery for kind and continues, otherwise
// it stops and Parse returns a *ParseError of that kind.
//
// FatalError is called for a condition that has no defined recovery (a
// structural mismatch that would leave the parser's state undefined if it
// continued); the parser always stops afterward, but the policy is still
// notified so it can log or record the failure before Parse returns.
type ErrorPolicy interface {
	Error(kind ErrorKind, ctx Context) bool
	FatalError(kind ErrorKind, ctx Context)
}

// StrictPolicy aborts parsing on every error, recoverable or not. It is the
// zero-value-compatible default: a *Parser with no policy set behaves as if
// StrictPolicy{} were installed.
type StrictPolicy struct{}

// Error always returns false.
func (StrictPolicy) Error(ErrorKind, Context) bool { return false }

// FatalError does nothing; the parser stops regardless.
func (StrictPolicy) FatalError(ErrorKind, Context) {}

// LenientPolicy continues with the documented recovery for every
// recoverable kind. Fatal errors are still fatal; there is no recovery for
// a structural mismatch.
type LenientPolicy struct{}

// Error always returns true.
func (LenientPolicy) Error(ErrorKind, Context) bool { return true }

// FatalError does nothing; the parser stops regardless.
func (LenientPolicy) FatalError(ErrorKind, Context) {}

// A RecordedError is one error observed by a RecordingPolicy, in the order
// it was reported.
type RecordedError struct {
	Kind   ErrorKind
	Line   int
	Column int
	Fatal  bool
}

// RecordingPolicy wraps another policy, forwarding every decision to it
// while also recording every error it observes. It is useful for parsing a
// possibly-dirty document under LenientPolicy while still keeping an
// after-the-fact account of what was wrong with it.
type RecordingPolicy struct {
	Wrap    ErrorPolicy
	Errors  []RecordedError
}

// NewRecordingPolicy returns a RecordingPolicy that delegates decisions to
// wrap.
func NewRecordingPolicy(wrap ErrorPolicy) *RecordingPolicy {
	return &RecordingPolicy{Wrap: wrap}
}

// Error records kind and ctx, then delegates to the wrapped policy.
func (p *RecordingPolicy) Error(kind ErrorKind, ctx Context) bool {
	p.Errors = append(p.Errors, RecordedError{Kind: kind, Line: ctx.Line(), Column: ctx.Column()})
	return p.Wrap.Error(kind, ctx)
}

// FatalError records kind and ctx, then delegates to the wrapped policy.
func (p *RecordingPolicy) FatalError(kind ErrorKind, ctx Context) {
	p.Errors = append(p.Errors, RecordedError{Kind: kind, Line: ctx.Line(), Column: ctx.Column(), Fatal: true})
	p.Wrap.FatalError(kind, ctx)
}
