package slug

import "testing"

func TestMake(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Senior Backend Engineer", "senior-backend-engineer"},
		{"  Senior   Backend  ", "senior-backend"},
		{"C++ / Go Developer (Remote)", "c-go-developer-remote"},
		{"Développeur Sénior", "developpeur-senior"},
		{"HR Officer - Dhaka", "hr-officer-dhaka"},
		{"2nd Shift Operator", "2nd-shift-operator"},
		{"!!!", ""},
		{"", ""},
	}

	for _, tc := range cases {
		if got := Make(tc.in); got != tc.want {
			t.Errorf("Make(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMakeDeterministic(t *testing.T) {
	a := Make("Product Manager — Growth")
	b := Make("Product Manager — Growth")
	if a != b {
		t.Fatalf("same title produced different slugs: %q vs %q", a, b)
	}
}
