package cmodel

import "testing"

func TestFuncString(t *testing.T) {
	tests := []struct {
		f    Func
		want string
	}{
		{
			Func{Name: "SteamAPI_ISteamFoo_Bar", ReturnType: "bool"},
			"bool SteamAPI_ISteamFoo_Bar();",
		},
		{
			Func{Name: "SteamAPI_SteamIPAddress_t_IsSet", ReturnType: "bool",
				Params: []Param{{Type: "SteamIPAddress_t", Name: "steamIPAddress_t"}}},
			"bool SteamAPI_SteamIPAddress_t_IsSet(SteamIPAddress_t steamIPAddress_t);",
		},
		{
			Func{Name: "SteamAPI_ISteamFoo_Set", ReturnType: "void",
				Params: []Param{{Type: "ISteamFoo *", Name: "self"}, {Type: "int", Name: "n"}}},
			"void SteamAPI_ISteamFoo_Set(ISteamFoo * self, int n);",
		},
	}
	for _, tt := range tests {
		if got := tt.f.String(); got != tt.want {
			t.Errorf("Expected %q, got %q", tt.want, got)
		}
	}
}
