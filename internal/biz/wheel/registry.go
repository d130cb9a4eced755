package wheel

import (
	"spinwheel/internal/biz/animation"
	"spinwheel/internal/biz/geometry"
)

const (
	ClassicID  = "classic"
	CylinderID = "cylinder"
)

// NewClassic 平面转盘，顶部指针
func NewClassic() *Wheel {
	return New(ClassicID, "Classic Wheel", geometry.Pointer, animation.SpinEase, nil, nil)
}

// NewCylinder 3D 滚筒
func NewCylinder() *Wheel {
	return New(CylinderID, "Cylinder Wheel", geometry.Drum, animation.DrumEase, nil, nil)
}

func builtins() []*Wheel {
	return []*Wheel{
		NewClassic(),
		NewCylinder(),
	}
}
