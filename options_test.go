package colorpick

import "testing"

func TestDefaultControllerOptions(t *testing.T) {
	o := defaultControllerOptions()
	if o.radius != DefaultIndicatorRadius {
		t.Errorf("radius = %v, want %v", o.radius, DefaultIndicatorRadius)
	}
	if o.indicatorColor != Black {
		t.Errorf("indicatorColor = %v, want %v", o.indicatorColor, Black)
	}
	if o.origin != (Position{}) {
		t.Errorf("origin = %v, want zero", o.origin)
	}
	if o.onChange != nil || o.onFrame != nil || o.onState != nil || o.onCommit != nil {
		t.Error("hooks set by default")
	}
}

func TestControllerOptions(t *testing.T) {
	tests := []struct {
		name  string
		opt   ControllerOption
		check func(controllerOptions) bool
	}{
		{"radius", WithIndicatorRadius(9), func(o controllerOptions) bool { return o.radius == 9 }},
		{"non-positive radius ignored", WithIndicatorRadius(0), func(o controllerOptions) bool { return o.radius == DefaultIndicatorRadius }},
		{"origin", WithOrigin(Pos(3, 4)), func(o controllerOptions) bool { return o.origin == Pos(3, 4) }},
		{"indicator color", WithIndicatorColor(Red), func(o controllerOptions) bool { return o.indicatorColor == Red }},
		{"on change", WithOnChange(func(Color) {}), func(o controllerOptions) bool { return o.onChange != nil }},
		{"on frame", WithOnFrame(func(*Pixmap) {}), func(o controllerOptions) bool { return o.onFrame != nil }},
		{"on state", WithOnStateChange(func(State) {}), func(o controllerOptions) bool { return o.onState != nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := defaultControllerOptions()
			tt.opt(&o)
			if !tt.check(o) {
				t.Errorf("%s option not applied: %+v", tt.name, o)
			}
		})
	}
}

func TestPickerOptions(t *testing.T) {
	o := defaultPickerOptions()
	for _, opt := range []PickerOption{
		WithInitialColor("#ffffff"),
		WithFieldSize(200, 100),
		WithHueStrip(12),
		WithSyncPolicy(SyncStripToField),
		WithPickerIndicatorRadius(-2),
		WithSwatchSize(40),
	} {
		opt(&o)
	}
	if o.initial != "#ffffff" || o.fieldWidth != 200 || o.fieldHeight != 100 {
		t.Errorf("pickerOptions = %+v", o)
	}
	if o.stripHeight != 12 || o.sync != SyncStripToField || o.swatchSize != 40 {
		t.Errorf("pickerOptions = %+v", o)
	}
	if o.radius != DefaultIndicatorRadius {
		t.Errorf("radius = %v, want %v", o.radius, DefaultIndicatorRadius)
	}
}
