package util

import "testing"

func TestToNamePath(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "estimate total", input: "Estimate!!Total", want: "estimate.total"},
		{name: "trailing colon", input: "Estimate!!Total:", want: "estimate.total"},
		{name: "nested with spaces", input: "Estimate!!Median age!!Total:", want: "estimate.median_age.total"},
		{name: "empty", input: "", want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ToNamePath(tc.input)
			if got != tc.want {
				t.Fatalf("got %q want %q", got, tc.want)
			}
		})
	}
}

func TestToNamePathPlainLabelIsLowered(t *testing.T) {
	if got := ToNamePath("TotalPopulation2020"); got != "totalpopulation2020" {
		t.Fatalf("got %q", got)
	}
}

func TestToNamePathIdempotent(t *testing.T) {
	once := ToNamePath("Estimate!!Median age!!Total:")
	if ToNamePath(once) != once {
		t.Fatalf("not idempotent: %q", once)
	}
}
