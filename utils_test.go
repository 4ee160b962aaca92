package remver

import (
	"reflect"
	"testing"
)

func TestCapStrings(t *testing.T) {
	t.Parallel()

	in := []string{"a", "b", "c"}

	if got := capStrings(in, 0); !reflect.DeepEqual(got, in) {
		t.Fatalf("limit 0 got %v", got)
	}
	if got := capStrings(in, 2); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("limit 2 got %v", got)
	}
	if got := capStrings(in, 5); !reflect.DeepEqual(got, in) {
		t.Fatalf("limit 5 got %v", got)
	}
}

func TestIdentifierHelpers(t *testing.T) {
	t.Parallel()

	inc := map[string]string{
		"0":                 "1",
		"9":                 "10",
		"199":               "200",
		"999":               "1000",
		"90071992547409919": "90071992547409920",
	}
	for in, want := range inc {
		if got := incDigits(in); got != want {
			t.Fatalf("incDigits(%q) = %q; want %q", in, got, want)
		}
	}

	trim := map[string]string{
		"0":   "0",
		"000": "0",
		"007": "7",
		"100": "100",
	}
	for in, want := range trim {
		if got := trimZeros(in); got != want {
			t.Fatalf("trimZeros(%q) = %q; want %q", in, got, want)
		}
	}

	if !ParseIdentifier("0012").IsNumeric() || ParseIdentifier("0012").String() != "12" {
		t.Fatalf("ParseIdentifier should normalize numeric identifiers")
	}
	if ParseIdentifier("12a").IsNumeric() || ParseIdentifier("x").IsNumeric() {
		t.Fatalf("text identifiers misclassified")
	}
	if n, ok := NumericIdentifier(42).Uint64(); !ok || n != 42 {
		t.Fatalf("Uint64 = %d, %v", n, ok)
	}
	if _, ok := ParseIdentifier("99999999999999999999999").Uint64(); ok {
		t.Fatalf("Uint64 must report overflow")
	}
	if _, ok := ParseIdentifier("beta").Uint64(); ok {
		t.Fatalf("Uint64 on text must fail")
	}

	if NumericIdentifier(9).Compare(ParseIdentifier("10")) != -1 {
		t.Fatalf("numeric identifiers must compare by value")
	}
	if NumericIdentifier(999).Compare(ParseIdentifier("a")) != -1 {
		t.Fatalf("numeric must order before text")
	}
	if ParseIdentifier("a").Compare(NumericIdentifier(0)) != 1 {
		t.Fatalf("text must order after numeric")
	}
}
