package appointments

import (
	"regexp"
	"strconv"
	"strings"
	"testing"
)

func TestGenerateCode(t *testing.T) {
	re := regexp.MustCompile(`^APT-20260829-1430-(\d{3})$`)
	for i := 0; i < 50; i++ {
		code := GenerateCode("2026-08-29", "14:30")
		m := re.FindStringSubmatch(code)
		if m == nil {
			t.Fatalf("unexpected code %q", code)
		}
		n, _ := strconv.Atoi(m[1])
		if n < 100 || n > 999 {
			t.Fatalf("suffix out of range: %d", n)
		}
	}
}

func TestGenerateCode_WithoutTime(t *testing.T) {
	code := GenerateCode("2026-08-29", "")
	if !regexp.MustCompile(`^APT-20260829-\d{3}$`).MatchString(code) {
		t.Fatalf("unexpected code %q", code)
	}
}

func TestGenerateCode_WithoutDate(t *testing.T) {
	code := GenerateCode("", "")
	parts := strings.Split(code, "-")
	if len(parts) != 3 || len(parts[1]) != 8 {
		t.Fatalf("expected APT-YYYYMMDD-RRR with today's date, got %q", code)
	}
}
