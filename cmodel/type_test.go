package cmodel

import (
	"errors"
	"strings"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		tn   TypeName
		want Shape
	}{
		{NewTypeName("uint32", "m_nCount"), ShapePlain},
		{NewTypeName("char [128]", "m_rgchName"), ShapeArray},
		{NewTypeName("void (*)(void *)", "m_pfnCallback"), ShapeFuncPtr},
		{NewTypeName("SteamInputActionEvent_t::AnalogAction_t", "analogAction"), ShapeScoped},
		{NewTypeName("const SteamNetworkingIPAddr &", "address"), ShapeReference},
		{NewTypeName("ISteamFoo::Bar_t &", "bar"), ShapeScoped | ShapeReference},
		{NewTypeName("int [2] [3]", "grid"), ShapeArray},
		{NewTypeName("void (*)(int [])", "cb"), ShapeFuncPtr},
	}
	for _, tt := range tests {
		if got := Classify(tt.tn); got != tt.want {
			t.Errorf("Classify(%v): expected %b, got %b", tt.tn, tt.want, got)
		}
	}
}

func TestNormalizeArray(t *testing.T) {
	tests := []struct {
		in   TypeName
		want TypeName
	}{
		{NewTypeName("uint32 [2]", "Flags_t"), NewTypeName("uint32", "Flags_t[2]")},
		{NewTypeName("char [128]", "m_rgchName"), NewTypeName("char", "m_rgchName[128]")},
		{NewTypeName("const char * [4]", "m_ppStrings"), NewTypeName("const char *", "m_ppStrings[4]")},
		{NewTypeName("uint8", "m_nByte"), NewTypeName("uint8", "m_nByte")},
		{NewTypeName("uint8[4]", "m_bytes"), NewTypeName("uint8[4]", "m_bytes")},
	}
	for _, tt := range tests {
		got, err := Normalize(tt.in, RuleArray)
		if err != nil {
			t.Errorf("Normalize(%v): unexpected error %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Normalize(%v): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestNormalizeArrayIdempotent(t *testing.T) {
	once, err := Normalize(NewTypeName("uint64 [8]", "m_ulIDs"), RuleArray)
	if err != nil {
		t.Fatal(err)
	}
	twice, err := Normalize(once, RuleArray)
	if err != nil {
		t.Fatal(err)
	}
	if once != twice {
		t.Errorf("Expected %v, got %v", once, twice)
	}
	if strings.Count(twice.Name, "[8]") != 1 {
		t.Errorf("Expected a single [8] suffix, got %q", twice.Name)
	}
}

func TestNormalizeArrayRejectsMultipleDimensions(t *testing.T) {
	_, err := Normalize(NewTypeName("int [2] [3]", "grid"), RuleArray)
	var nerr *NormalizationError
	if !errors.As(err, &nerr) {
		t.Fatalf("Expected NormalizationError, got %v", err)
	}
	if nerr.TypeName.Name != "grid" {
		t.Errorf("Expected error to name grid, got %q", nerr.TypeName.Name)
	}
}

func TestNormalizeFuncPtr(t *testing.T) {
	got, err := Normalize(NewTypeName("void (*)(int, const char *)", "SteamAPIWarningMessageHook_t"), RuleArray|RuleFuncPtr)
	if err != nil {
		t.Fatal(err)
	}
	want := NewTypeName("void (* SteamAPIWarningMessageHook_t)(int, const char *)", "")
	if got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}

	// array suffix attaches to the name before the declarator takes it
	got, err = Normalize(NewTypeName("void (*)(void) [4]", "handlers"), RuleArray|RuleFuncPtr)
	if err != nil {
		t.Fatal(err)
	}
	if got.Type != "void (* handlers[4])(void)" || got.Name != "" {
		t.Errorf("Unexpected %v", got)
	}
}

func TestNormalizeScope(t *testing.T) {
	got, err := Normalize(NewTypeName("SteamInputActionEvent_t::AnalogAction_t", "a::b"), RuleScope)
	if err != nil {
		t.Fatal(err)
	}
	if got.Type != "SteamInputActionEvent_t__AnalogAction_t" || got.Name != "a__b" {
		t.Errorf("Unexpected %v", got)
	}

	for _, in := range []string{"A::B::C", ":::", "::::", "plain"} {
		once := SanitizeScope(in)
		if strings.Contains(once, "::") {
			t.Errorf("SanitizeScope(%q) = %q still contains ::", in, once)
		}
		if SanitizeScope(once) != once {
			t.Errorf("SanitizeScope(%q) is not a fixed point", once)
		}
	}
}

func TestNormalizeReference(t *testing.T) {
	in := NewTypeName("const ISteamFoo & *", "foo")
	got, err := Normalize(in, RuleScope|RuleReference)
	if err != nil {
		t.Fatal(err)
	}
	if got.Type != "const ISteamFoo * *" || got.Name != "foo" {
		t.Errorf("Unexpected %v", got)
	}
	want := strings.Count(in.Type, "&") + strings.Count(in.Type, "*")
	if n := strings.Count(got.Type, "*"); n != want {
		t.Errorf("Expected %d pointer marks, got %d", want, n)
	}
}

func TestNormalizeOnlyEnabledRules(t *testing.T) {
	in := NewTypeName("Foo::Bar & [2]", "x")
	got, err := Normalize(in, RuleArray)
	if err != nil {
		t.Fatal(err)
	}
	if got.Type != "Foo::Bar &" || got.Name != "x[2]" {
		t.Errorf("Unexpected %v", got)
	}
	got, err = Normalize(in, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got != in {
		t.Errorf("Expected identity with no rules, got %v", got)
	}
}
