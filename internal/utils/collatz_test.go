package utils

import "testing"

func TestCollatzCount(t *testing.T) {
	cases := []struct {
		n    int
		want int
	}{
		{1, 0},
		{4, 2},
		{6, 8},
		{11, 14},
	}

	for _, tc := range cases {
		got, err := CollatzCount(tc.n)
		if err != nil {
			t.Fatalf("CollatzCount(%d) returned error: %v", tc.n, err)
		}
		if got != tc.want {
			t.Errorf("CollatzCount(%d) = %d, want %d", tc.n, got, tc.want)
		}
	}
}

func TestCollatzCountRejectsNonPositive(t *testing.T) {
	for _, n := range []int{0, -1} {
		if _, err := CollatzCount(n); err == nil {
			t.Errorf("CollatzCount(%d) should have returned an error", n)
		}
	}
}
