package core

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{
			name:     "nil error returns empty",
			err:      nil,
			wantCode: "",
		},
		{
			name:     "file access error",
			err:      &FileAccessError{Path: "data.csv", Err: os.ErrNotExist},
			wantCode: "FILE001",
		},
		{
			name:     "parse error",
			err:      &ParseError{Source: "data.csv", Line: 3, Err: errors.New("wrong number of fields")},
			wantCode: "FILE002",
		},
		{
			name:     "encoding error wins over parse error",
			err:      &ParseError{Source: "data.csv", Err: ErrEncoding},
			wantCode: "FILE003",
		},
		{
			name:     "wrapped column not found",
			err:      fmt.Errorf("build: %w", columnError("layout by line", "Layout")),
			wantCode: "VAL004",
		},
		{
			name:     "invalid value",
			err:      fmt.Errorf("yearly openings: row 2: %w", ErrInvalidValue),
			wantCode: "VAL002",
		},
		{
			name:     "no data",
			err:      fmt.Errorf("pie chart: %w", ErrNoData),
			wantCode: "DATA001",
		},
		{
			name:     "busy",
			err:      fmt.Errorf("acquire build slot: %w", ErrBusy),
			wantCode: "RATE002",
		},
		{
			name:     "deadline exceeded",
			err:      fmt.Errorf("build: %w", context.DeadlineExceeded),
			wantCode: "REQ002",
		},
		{
			name:     "pattern fallback is case insensitive",
			err:      errors.New("upstream: COLUMN NOT FOUND: Layout"),
			wantCode: "VAL004",
		},
		{
			name:     "rate limit pattern",
			err:      errors.New("rate limit exceeded"),
			wantCode: "RATE001",
		},
		{
			name:     "unknown error returns default",
			err:      errors.New("some random internal error"),
			wantCode: "ERR000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.err)
			if got.Code != tt.wantCode {
				t.Errorf("MapError() code = %q, want %q", got.Code, tt.wantCode)
			}
			if tt.err != nil && got.Message == "" {
				t.Error("MapError() message should not be empty")
			}
		})
	}
}

func TestIsUserFacing(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "nil error is not user facing",
			err:  nil,
			want: false,
		},
		{
			name: "known error is user facing",
			err:  &FileAccessError{Path: "x", Err: os.ErrPermission},
			want: true,
		},
		{
			name: "unknown error is not user facing",
			err:  errors.New("random internal error xyz"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsUserFacing(tt.err)
			if got != tt.want {
				t.Errorf("IsUserFacing() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	fe := &FileAccessError{Path: "data.csv", Err: os.ErrNotExist}
	if !errors.Is(fe, os.ErrNotExist) {
		t.Error("FileAccessError should unwrap to the os error")
	}

	pe := &ParseError{Source: "data.csv", Err: ErrEncoding}
	if !errors.Is(pe, ErrEncoding) {
		t.Error("ParseError should unwrap to its cause")
	}
}
