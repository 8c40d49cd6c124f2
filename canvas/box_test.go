package canvas

import "testing"

func TestBoxFrom(t *testing.T) {
	tests := []struct {
		name    string
		kind    BoxKind
		coords  []float64
		wantErr bool
	}{
		{"four pixel coords", Pixels, []float64{0, 0, 10, 10}, false},
		{"four fraction coords", Fraction, []float64{0, 0, 0.5, 1}, false},
		{"three coords", Pixels, []float64{0, 0, 10}, true},
		{"five coords", Pixels, []float64{0, 0, 10, 10, 10}, true},
		{"nil coords", Pixels, nil, true},
		{"untagged kind", boxInvalid, []float64{0, 0, 10, 10}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			box, err := BoxFrom(tt.kind, tt.coords)
			if (err != nil) != tt.wantErr {
				t.Fatalf("BoxFrom() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && err != ErrInvalidBox {
				t.Errorf("err = %v, want ErrInvalidBox", err)
			}
			if !tt.wantErr && box.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", box.Kind, tt.kind)
			}
		})
	}
}

func TestBoxResolve(t *testing.T) {
	tests := []struct {
		name          string
		box           Box
		width, height int
		wantL, wantT  int
		wantR, wantB  int
	}{
		{"pixels pass through", Px(-10, 5, 50, 120), 100, 80, -10, 5, 50, 120},
		{"full fraction box", Frac(0, 0, 1, 1), 100, 80, 0, 0, 100, 80},
		{"fractions truncate toward zero", Frac(0.5, 0.5, 0.99, 0.99), 101, 51, 50, 25, 99, 50},
		{"fractions beyond one", Frac(0, 0, 1.5, 2), 100, 80, 0, 0, 150, 160},
		{"negative fractions", Frac(-0.1, -0.25, 0.5, 0.5), 100, 80, -10, -20, 50, 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, top, r, b, err := tt.box.resolve(tt.width, tt.height)
			if err != nil {
				t.Fatal(err)
			}
			if l != tt.wantL || top != tt.wantT || r != tt.wantR || b != tt.wantB {
				t.Errorf("resolve() = (%d,%d,%d,%d), want (%d,%d,%d,%d)",
					l, top, r, b, tt.wantL, tt.wantT, tt.wantR, tt.wantB)
			}
		})
	}
}

func TestBoxResolveInvalid(t *testing.T) {
	if _, _, _, _, err := (Box{}).resolve(100, 100); err != ErrInvalidBox {
		t.Fatalf("err = %v, want ErrInvalidBox", err)
	}
}
