package utils

import (
	"strconv"
	"strings"
	"testing"
)

func TestGenerateAccountNumber(t *testing.T) {
	tests := []struct {
		branchID   uint
		wantPrefix string
	}{
		{branchID: 1, wantPrefix: "001"},
		{branchID: 42, wantPrefix: "042"},
		{branchID: 999, wantPrefix: "999"},
	}

	for _, tt := range tests {
		for i := 0; i < 100; i++ {
			number := GenerateAccountNumber(tt.branchID)
			if len(number) != 8 {
				t.Fatalf("len(%q) = %d, want 8", number, len(number))
			}
			if !strings.HasPrefix(number, tt.wantPrefix) {
				t.Fatalf("number %q, want prefix %q", number, tt.wantPrefix)
			}
			code, err := strconv.Atoi(number[3:])
			if err != nil {
				t.Fatalf("suffix of %q is not numeric", number)
			}
			if code < 10000 || code > 99999 {
				t.Fatalf("code %d out of the 5 digit range", code)
			}
		}
	}
}
