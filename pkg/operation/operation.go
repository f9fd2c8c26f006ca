// Package operation provides core functionality for checking and enforcing
// path banners in source files
package operation

import (
	"context"

	"github.com/walteh/fileheader/pkg/config"
	"github.com/walteh/fileheader/pkg/log"
	"github.com/walteh/fileheader/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🏷️ Mode selects what a run does with files whose banner needs attention
type Mode int

const (
	// ModeCheck reports files needing attention without writing
	ModeCheck Mode = iota
	// ModeFix inserts or rewrites banners in place
	ModeFix
	// ModeRemove strips banners
	ModeRemove
)

// String returns a string representation of Mode
func (m Mode) String() string {
	switch m {
	case ModeFix:
		return "fix"
	case ModeRemove:
		return "remove"
	default:
		return "check"
	}
}

// 🎯 Operator defines the main interface for fileheader operations. Every
// method processes the given files in order and returns how many needed or
// received changes.
type Operator interface {
	// Check reports files with a missing or incorrect banner, without writing
	Check(ctx context.Context, files []string) (int, error)
	// Fix inserts or rewrites banners in place
	Fix(ctx context.Context, files []string) (int, error)
	// Remove strips banners from files that carry one
	Remove(ctx context.Context, files []string) (int, error)
}

// 🔧 Options contains configuration for the operator
type Options struct {
	// Config is the fileheader configuration
	Config *config.Config
	// StatusMgr tracks per-file outcomes and performs write-backs
	StatusMgr *status.Manager
	// UserLogger prints user-facing per-file notices
	UserLogger *log.UserLogger
}

// 🏭 New creates a new operator with the given options
func New(opts Options) (Operator, error) {
	if opts.Config == nil {
		return nil, errors.Errorf("config is required")
	}
	if opts.StatusMgr == nil {
		return nil, errors.Errorf("status manager is required")
	}
	if opts.UserLogger == nil {
		return nil, errors.Errorf("user logger is required")
	}
	return &operator{
		config:     opts.Config,
		statusMgr:  opts.StatusMgr,
		userLogger: opts.UserLogger,
	}, nil
}

// 🎮 operator implements the Operator interface
type operator struct {
	config     *config.Config
	statusMgr  *status.Manager
	userLogger *log.UserLogger
}

// Check implements Operator.Check
func (o *operator) Check(ctx context.Context, files []string) (int, error) {
	return o.run(ctx, files, ModeCheck)
}

// Fix implements Operator.Fix
func (o *operator) Fix(ctx context.Context, files []string) (int, error) {
	return o.run(ctx, files, ModeFix)
}

// Remove implements Operator.Remove
func (o *operator) Remove(ctx context.Context, files []string) (int, error) {
	return o.run(ctx, files, ModeRemove)
}
