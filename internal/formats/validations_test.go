package formats

import (
	"errors"
	"testing"

	"github.com/git-pkgs/pyproject/internal/core"
)

func TestValidateProjectDynamic(t *testing.T) {
	tests := []struct {
		name    string
		project map[string]any
		wantErr bool
	}{
		{
			name: "static and dynamic conflict",
			project: map[string]any{
				"name":    "pkg",
				"version": "1.0",
				"dynamic": []any{"version"},
			},
			wantErr: true,
		},
		{
			name: "disjoint dynamic",
			project: map[string]any{
				"name":    "pkg",
				"version": "1.0",
				"dynamic": []any{"classifiers"},
			},
			wantErr: false,
		},
		{
			name: "no dynamic list",
			project: map[string]any{
				"name": "pkg",
			},
			wantErr: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := core.TableFromMap(map[string]any{"project": tt.project})
			err := validateProjectDynamic(doc)
			if tt.wantErr && err == nil {
				t.Fatal("expected an error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantErr && !errors.Is(err, core.ErrConfiguration) {
				t.Errorf("error %v does not wrap ErrConfiguration", err)
			}
		})
	}
}

func TestValidateProjectDynamicMissingProject(t *testing.T) {
	doc := core.NewTable()
	if err := validateProjectDynamic(doc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
