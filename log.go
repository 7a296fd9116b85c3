// Copyright 2026 The Godror Authors
//
//
// SPDX-License-Identifier: UPL-1.0 OR Apache-2.0

package odpiext

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/go-logfmt/logfmt"
	"golang.org/x/exp/slog"
)

type logCtxKey struct{}

func getLogger(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return nil
	}
	if lgr, ok := ctx.Value(logCtxKey{}).(*slog.Logger); ok {
		return lgr
	}
	return nil
}

// ContextWithLogger returns a context with the given logger.
// Operations log at Debug level through it.
func ContextWithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, logCtxKey{}, logger)
}

// NewLogfmtHandler returns a slog.Handler that writes logfmt-formatted
// records to w, one record per line.
func NewLogfmtHandler(w io.Writer, opts *slog.HandlerOptions) slog.Handler {
	h := logfmtHandler{w: w, mu: new(sync.Mutex)}
	if opts != nil {
		h.opts = *opts
	}
	return &h
}

type logfmtHandler struct {
	w     io.Writer
	mu    *sync.Mutex
	opts  slog.HandlerOptions
	attrs []slog.Attr
	group string
}

func (h *logfmtHandler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}
	return level >= minLevel
}

func (h *logfmtHandler) Handle(_ context.Context, r slog.Record) error {
	var buf bytes.Buffer
	enc := logfmt.NewEncoder(&buf)
	if !r.Time.IsZero() {
		enc.EncodeKeyval("time", r.Time.Format(time.RFC3339))
	}
	enc.EncodeKeyval("level", r.Level.String())
	enc.EncodeKeyval("msg", r.Message)
	for _, a := range h.attrs {
		encodeAttr(enc, h.group, a)
	}
	r.Attrs(func(a slog.Attr) bool {
		encodeAttr(enc, h.group, a)
		return true
	})
	enc.EndRecord()
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.w.Write(buf.Bytes())
	return err
}

func encodeAttr(enc *logfmt.Encoder, prefix string, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}
	key := a.Key
	if prefix != "" {
		key = prefix + "." + key
	}
	v := a.Value.Resolve()
	if v.Kind() == slog.KindGroup {
		for _, ga := range v.Group() {
			encodeAttr(enc, key, ga)
		}
		return
	}
	if err := enc.EncodeKeyval(key, v.Any()); err != nil {
		enc.EncodeKeyval(key, fmt.Sprint(v.Any()))
	}
}

func (h *logfmtHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h2 := *h
	h2.attrs = append(h.attrs[:len(h.attrs):len(h.attrs)], attrs...)
	return &h2
}

func (h *logfmtHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	if h2.group == "" {
		h2.group = name
	} else {
		h2.group += "." + name
	}
	return &h2
}
