package common

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinels_AreDistinct(t *testing.T) {
	all := []error{
		ErrorNotFound, ErrorAlreadyExists, ErrorInternal, ErrorUnauthorized,
		ErrorForbidden, ErrorValidation, ErrInvalidToken, ErrTokenExpired,
	}
	for i, a := range all {
		for j, b := range all {
			if i != j && errors.Is(a, b) {
				t.Fatalf("%v must not match %v", a, b)
			}
		}
	}
}

func TestSentinels_SurviveWrapping(t *testing.T) {
	err := fmt.Errorf("task %s: %w", "t-1", ErrorNotFound)
	if !errors.Is(err, ErrorNotFound) {
		t.Fatalf("wrapped error lost its sentinel: %v", err)
	}
}

func TestIsClientError(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{fmt.Errorf("wrap: %w", ErrorValidation), true},
		{ErrorForbidden, true},
		{ErrTokenExpired, true},
		{ErrorInternal, false},
		{errors.New("db down"), false},
		{nil, false},
	}
	for _, tt := range tests {
		if got := IsClientError(tt.err); got != tt.want {
			t.Errorf("IsClientError(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}
