package envstruct_test

import (
	"strings"
	"testing"

	"github.com/ahautala/repapp/internal/envstruct"
)

func lookupFromMap(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestPopulate(t *testing.T) {
	type config struct {
		Addr         string `env:"TEST_ADDR"  envDefault:"localhost:8082"`
		SqliteURL    string `env:"TEST_SQLITE_URL"`
		CalendarDays int    `env:"TEST_CALENDAR_DAYS" envDefault:"30"`
	}

	tests := []struct {
		name    string
		env     map[string]string
		want    config
		wantErr string
	}{
		{
			name: "all set",
			env: map[string]string{
				"TEST_ADDR":          "localhost:0",
				"TEST_SQLITE_URL":    ":memory:",
				"TEST_CALENDAR_DAYS": "14",
			},
			want: config{Addr: "localhost:0", SqliteURL: ":memory:", CalendarDays: 14},
		},
		{
			name: "defaults applied",
			env:  map[string]string{"TEST_SQLITE_URL": "./test.sqlite3"},
			want: config{Addr: "localhost:8082", SqliteURL: "./test.sqlite3", CalendarDays: 30},
		},
		{
			name:    "missing required variable",
			env:     map[string]string{},
			wantErr: "environment variable not set: TEST_SQLITE_URL",
		},
		{
			name: "invalid int",
			env: map[string]string{
				"TEST_SQLITE_URL":    ":memory:",
				"TEST_CALENDAR_DAYS": "a month",
			},
			wantErr: "invalid int value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cfg config
			err := envstruct.Populate(&cfg, lookupFromMap(tt.env))
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("Populate() error = nil, want %q", tt.wantErr)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("Populate() error = %v, want it to contain %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Populate() unexpected error: %v", err)
			}
			if cfg != tt.want {
				t.Errorf("Populate() = %+v, want %+v", cfg, tt.want)
			}
		})
	}
}

func TestPopulateRejectsNonStructs(t *testing.T) {
	var s string
	if err := envstruct.Populate(&s, lookupFromMap(nil)); err == nil {
		t.Error("expected error for pointer to non-struct")
	}
	if err := envstruct.Populate(42, lookupFromMap(nil)); err == nil {
		t.Error("expected error for non-pointer")
	}
}

func TestPopulateRejectsUnsupportedFieldType(t *testing.T) {
	type config struct {
		Timeout float64 `env:"TEST_TIMEOUT" envDefault:"1.5"`
	}
	var cfg config
	err := envstruct.Populate(&cfg, lookupFromMap(nil))
	if err == nil {
		t.Fatal("expected error for unsupported field type")
	}
	if !strings.Contains(err.Error(), "only strings and ints are supported") {
		t.Errorf("unexpected error: %v", err)
	}
}
