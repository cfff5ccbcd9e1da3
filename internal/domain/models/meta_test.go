package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestFlexIntUnmarshal(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    FlexInt
		wantErr bool
	}{
		{name: "number", in: `2019`, want: 2019},
		{name: "numeric string", in: `"2019"`, want: 2019},
		{name: "float", in: `2019.0`, want: 2019},
		{name: "null", in: `null`, want: 0},
		{name: "empty string", in: `""`, want: 0},
		{name: "garbage string", in: `"abc"`, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var f FlexInt
			err := json.Unmarshal([]byte(tc.in), &f)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("want error for %s", tc.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal %s: %v", tc.in, err)
			}
			if f != tc.want {
				t.Errorf("got %d, want %d", f, tc.want)
			}
		})
	}
}

func TestMetaStamp(t *testing.T) {
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	updated := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	var m Meta
	m.Stamp(created, updated)
	if !m.CreatedAt.Equal(created) || !m.UpdatedAt.Equal(updated) {
		t.Fatalf("stamp: %+v", m)
	}

	later := updated.Add(time.Hour)
	m.Stamp(time.Time{}, later)
	if !m.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt changed on update stamp: %v", m.CreatedAt)
	}
	if !m.UpdatedAt.Equal(later) {
		t.Errorf("UpdatedAt = %v, want %v", m.UpdatedAt, later)
	}
}

func TestNewHomePageDefaults(t *testing.T) {
	p := NewHomePage()
	if p.Hero.Heading == "" || p.Hero.ButtonText == "" {
		t.Errorf("hero defaults missing: %+v", p.Hero)
	}
	if p.Welcome.Heading == "" {
		t.Errorf("welcome defaults missing: %+v", p.Welcome)
	}
}
