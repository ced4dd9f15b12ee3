package math

import (
	"testing"
	"unsafe"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(5, 10, 15)

	// Translation lives in the fourth column (indices 12, 13, 14)
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestTransformPoint(t *testing.T) {
	m := Translate(10, 20, 30)
	got := m.TransformPoint(Vec3{1, 2, 3})

	want := Vec3{11, 22, 33}
	if got != want {
		t.Errorf("TransformPoint: got %v, want %v", got, want)
	}
}

func TestTransformDirectionIgnoresTranslation(t *testing.T) {
	m := Translate(10, 20, 30)
	got := m.TransformDirection(Vec3{0, 0, 1})

	if got != (Vec3{0, 0, 1}) {
		t.Errorf("TransformDirection: got %v, want (0, 0, 1)", got)
	}
}

func TestRotateY90(t *testing.T) {
	m := RotateY(math32.Pi / 2)
	got := m.TransformPoint(Vec3{1, 0, 0})

	// (1,0,0) turns to (0,0,-1)
	assert.InDelta(t, 0, got.X, 1e-6)
	assert.InDelta(t, 0, got.Y, 1e-6)
	assert.InDelta(t, -1, got.Z, 1e-6)
}

func TestRotateX90(t *testing.T) {
	m := RotateX(math32.Pi / 2)
	got := m.TransformPoint(Vec3{0, 1, 0})

	// (0,1,0) turns to (0,0,1)
	assert.InDelta(t, 0, got.X, 1e-6)
	assert.InDelta(t, 0, got.Y, 1e-6)
	assert.InDelta(t, 1, got.Z, 1e-6)
}

func TestPostMultiplyBuilders(t *testing.T) {
	p := Vec3{3, -4, 12}
	az := DegToRad(30)
	el := DegToRad(-15)

	got := Identity().Translated(p).RotatedY(az).RotatedX(el)
	want := Translate(p.X, p.Y, p.Z).Mul(RotateY(az)).Mul(RotateX(el))

	assert.True(t, got.ApproxEqual(want, 1e-6), "got %v, want %v", got, want)
}

func TestTranspose(t *testing.T) {
	m := Translate(1, 2, 3)
	tr := m.Transpose()

	// Translation moves to the bottom row
	if tr[3] != 1 || tr[7] != 2 || tr[11] != 3 {
		t.Errorf("Transpose: bottom row got (%f, %f, %f), want (1, 2, 3)", tr[3], tr[7], tr[11])
	}
	if tr.Transpose() != m {
		t.Error("Transpose twice should give the original matrix")
	}
}

func TestInverse(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
	}{
		{"identity", Identity()},
		{"translate", Translate(0, 7, 36)},
		{"rigid", Translate(-20, 12, 30).Mul(RotateY(DegToRad(125))).Mul(RotateX(DegToRad(-70)))},
		{"orbit", RotateY(DegToRad(-200)).Mul(RotateX(DegToRad(33))).Mul(Translate(5, 7, 36))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.Mul(tt.m.Inverse())
			assert.True(t, got.ApproxEqual(Identity(), 1e-5), "M * M^-1 = %v", got)
		})
	}
}

func TestInverseSingular(t *testing.T) {
	var zero Mat4
	if zero.Inverse() != Identity() {
		t.Error("Inverse of a singular matrix should be identity")
	}
}

func TestPerspective(t *testing.T) {
	m := Perspective(math32.Pi/4, 1, 0.1, 100)

	if m[0] == 0 || m[5] == 0 {
		t.Error("Perspective should have non-zero elements")
	}
	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}
}

func TestPerspectiveAspect(t *testing.T) {
	square := Perspective(math32.Pi/4, 1, 0.1, 100)
	wide := Perspective(math32.Pi/4, 2, 0.1, 100)

	assert.InDelta(t, square[0]/2, wide[0], 1e-6)
	assert.Equal(t, square[5], wide[5])
}

func TestPtrIsColumnMajor(t *testing.T) {
	m := Translate(5, 10, 15)

	// GL reads 16 floats from Ptr with the translation in the last column.
	data := unsafe.Slice(m.Ptr(), 16)
	assert.Equal(t, []float32{5, 10, 15, 1}, data[12:16])

	data[13] = 20
	assert.Equal(t, float32(20), m[13], "Ptr aliases the matrix")
}
