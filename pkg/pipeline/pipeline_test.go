package pipeline

import (
	"math"
	"testing"

	"github.com/matzehuels/smartedge/pkg/errors"
)

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions()
	if o.GridRatio != 10 || o.NodePadding != 10 {
		t.Errorf("ratio/padding = %v/%v, want 10/10", o.GridRatio, o.NodePadding)
	}
	if o.DrawEdge == nil || o.GeneratePath == nil || o.Logger == nil {
		t.Error("DefaultOptions should set renderer, strategy and logger")
	}
	if o.MaxCells != DefaultMaxCells {
		t.Errorf("MaxCells = %d, want %d", o.MaxCells, DefaultMaxCells)
	}
	if err := o.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestSetDefaults_KeepsZeroPadding(t *testing.T) {
	o := Options{GridRatio: 5}
	o.SetDefaults()
	if o.NodePadding != 0 {
		t.Errorf("NodePadding = %v, zero padding must be preserved", o.NodePadding)
	}
	if o.GridRatio != 5 {
		t.Errorf("GridRatio = %v, explicit value must be preserved", o.GridRatio)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{"defaults", DefaultOptions(), false},
		{"fractional ratio", Options{GridRatio: 0.5}, false},
		{"zero ratio", Options{GridRatio: 0}, true},
		{"infinite ratio", Options{GridRatio: math.Inf(1)}, true},
		{"negative padding", Options{GridRatio: 10, NodePadding: -1}, true},
		{"NaN padding", Options{GridRatio: 10, NodePadding: math.NaN()}, true},
		{"negative max cells", Options{GridRatio: 10, MaxCells: -3}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeConfigOutOfRange) {
				t.Errorf("code = %q, want CONFIG_OUT_OF_RANGE", errors.GetCode(err))
			}
		})
	}
}

func TestFingerprint(t *testing.T) {
	a := &Result{Path: "M 0,0 L 10,10", LabelX: 5, LabelY: 5}
	b := &Result{Path: "M 0,0 L 10,10", LabelX: 5, LabelY: 5, Stats: Stats{Expanded: 99}}
	c := &Result{Path: "M 0,0 L 10,10", LabelX: 5, LabelY: 6}

	if a.Fingerprint() != b.Fingerprint() {
		t.Error("fingerprint should only depend on the drawn output")
	}
	if a.Fingerprint() == c.Fingerprint() {
		t.Error("different labels should change the fingerprint")
	}
	if len(a.Fingerprint()) != 64 {
		t.Errorf("fingerprint length = %d, want 64", len(a.Fingerprint()))
	}
}
