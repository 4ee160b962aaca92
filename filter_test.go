package remver

import (
	"reflect"
	"testing"
)

func TestFilter(t *testing.T) {
	t.Parallel()

	in := []string{
		"v1.2.3", "1.2.3", "1.2.3+build", "2.0.0-rc.1", "junk",
		"01.02.04", "1.2.4", "0.9.0",
	}

	cases := []struct {
		name string
		opt  FilterOptions
		want []string
	}{
		{
			name: "strict keeps order",
			opt:  FilterOptions{},
			want: []string{"1.2.3", "1.2.3+build", "2.0.0-rc.1", "1.2.4", "0.9.0"},
		},
		{
			name: "loose canonical dedup desc",
			opt: FilterOptions{
				Parse:           Loose,
				Deduplicate:     true,
				OutputCanonical: true,
				Sort:            SortDesc,
			},
			want: []string{"2.0.0-rc.1", "1.2.4", "1.2.3", "0.9.0"},
		},
		{
			name: "release only asc limit",
			opt: FilterOptions{
				ReleaseOnly: true,
				Deduplicate: true,
				Sort:        SortAsc,
				Limit:       2,
			},
			want: []string{"0.9.0", "1.2.3"},
		},
		{
			name: "loose keeps first alias raw",
			opt: FilterOptions{
				Parse:       Loose,
				Deduplicate: true,
			},
			want: []string{"v1.2.3", "2.0.0-rc.1", "01.02.04", "0.9.0"},
		},
	}

	for _, tc := range cases {
		got := Filter(in, tc.opt)
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("%s: got %v; want %v", tc.name, got, tc.want)
		}
	}
}

func TestFilter_Empty(t *testing.T) {
	t.Parallel()

	if got := Filter([]string{"x", "y"}, FilterOptions{}); len(got) != 0 {
		t.Fatalf("got %v; want empty", got)
	}
}
