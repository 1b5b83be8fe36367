package main

import (
	"reflect"
	"testing"
)

func TestParsePageSpec(t *testing.T) {
	tests := []struct {
		spec    string
		want    []int
		wantErr bool
	}{
		{"1", []int{1}, false},
		{"1,3,5", []int{1, 3, 5}, false},
		{"2-4", []int{2, 3, 4}, false},
		{"1,3-5,9", []int{1, 3, 4, 5, 9}, false},
		{" 1 , 2 ", []int{1, 2}, false},
		{"", nil, true},
		{"0", nil, true},
		{"abc", nil, true},
		{"5-2", nil, true},
		{"1-", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := parsePageSpec(tt.spec)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parsePageSpec(%q) = %v, want error", tt.spec, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parsePageSpec(%q) error: %v", tt.spec, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parsePageSpec(%q) = %v, want %v", tt.spec, got, tt.want)
			}
		})
	}
}
