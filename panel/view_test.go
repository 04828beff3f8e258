package panel

import "testing"

func TestResolveView(t *testing.T) {
	t.Parallel()

	cases := []struct {
		fragment string
		want     View
	}{
		{"admin", ViewAdmin},
		{"", ViewPublic},
		{"about", ViewPublic},
		{"Admin", ViewPublic},
		{"admin/", ViewPublic},
	}

	for _, tc := range cases {
		if got := ResolveView(tc.fragment); got != tc.want {
			t.Errorf("ResolveView(%q) = %q, want %q", tc.fragment, got, tc.want)
		}
	}
}

func TestResolveViewIdempotent(t *testing.T) {
	t.Parallel()

	for i := 0; i < 3; i++ {
		if got := ResolveView("admin"); got != ViewAdmin {
			t.Fatalf("call %d: ResolveView(\"admin\") = %q", i, got)
		}
	}
}
