package efficiency

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kilianp07/pvderate/core/model"
)

func TestComputeScenarios(t *testing.T) {
	p := model.DefaultParameters()
	cases := []struct {
		name  string
		temp  float64
		eta   float64
		power float64
	}{
		{"reference", 25, 0.21, 210},
		{"hot", 125, 0.1155, 115.5},
		{"clamped", 500, 0, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			eta, power := Compute(c.temp, p)
			assert.InDelta(t, c.eta, eta, 1e-12)
			assert.InDelta(t, c.power, power, 1e-9)
		})
	}
}

func TestComputeReferenceIsExact(t *testing.T) {
	eta, _ := Compute(25, model.DefaultParameters())
	if eta != 0.21 {
		t.Fatalf("expected exactly 0.21 got %v", eta)
	}
}

func TestComputeClampIsExactZero(t *testing.T) {
	eta, power := Compute(500, model.DefaultParameters())
	if eta != 0 || power != 0 {
		t.Fatalf("expected 0/0 got %v/%v", eta, power)
	}
}

func TestComputeInvariants(t *testing.T) {
	p := model.DefaultParameters()
	p.Area = 1.6
	p.Irradiance = 800
	for temp := -60.0; temp <= 400; temp += 0.5 {
		eta, power := Compute(temp, p)
		if eta < 0 {
			t.Fatalf("negative efficiency at %v: %v", temp, eta)
		}
		if power != eta*p.Irradiance*p.Area {
			t.Fatalf("power invariant broken at %v", temp)
		}
		if temp <= p.ReferenceTemperature && eta < p.ReferenceEfficiency {
			t.Fatalf("efficiency %v below reference at %v", eta, temp)
		}
		if temp < p.ReferenceTemperature && eta <= p.ReferenceEfficiency {
			t.Fatalf("efficiency %v not above reference at %v", eta, temp)
		}
	}
}

func TestRow(t *testing.T) {
	r := Row(model.StationSample{Name: "COM", MeanTemperature: 25}, model.DefaultParameters())
	assert.Equal(t, "COM", r.Station)
	assert.Equal(t, 25.0, r.CellTemperature)
	assert.Equal(t, 0.21, r.Efficiency)
}
