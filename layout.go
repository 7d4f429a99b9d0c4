package gallery

import (
	"fmt"
)

// Panel dimensions and placement shared by every gallery node.
const (
	PanelWidth    = 3.0
	PanelHeight   = 2.0
	PanelDepth    = 0.15
	PanelDistance = 4.0

	haloIntensity = 0.08
	haloDistance  = 5.0
	haloHeight    = 1.0
)

// PanelSpec names one gallery image and its slot on the ring. Layout places
// panels by their position in the slice; PanelSpecs keeps Index equal to it.
type PanelSpec struct {
	Source string
	Index  int
}

// PanelSpecs numbers sources in order.
func PanelSpecs(sources ...string) []PanelSpec {
	specs := make([]PanelSpec, len(sources))
	for i, src := range sources {
		specs[i] = PanelSpec{Source: src, Index: i}
	}
	return specs
}

// GalleryNode is one placed panel: a base node rotated to the panel's angle,
// holding the panel mesh and its halo light.
type GalleryNode struct {
	Spec  PanelSpec
	Angle float64
	Base  *Node
	Panel *Node
	Light *Node
}

// Texture returns the panel's texture.
func (g GalleryNode) Texture() *Texture {
	return g.Panel.Material.Texture
}

// LayoutAngles returns the n evenly spaced ring angles i*2π/n. n <= 0 yields nil.
func LayoutAngles(n int) []float64 {
	if n <= 0 {
		return nil
	}
	step := twoPi / float64(n)
	angles := make([]float64, n)
	for i := range angles {
		angles[i] = float64(i) * step
	}
	return angles
}

// Layout builds the gallery ring: one root pivot owning a base node per spec.
// Each base is rotated to its slot angle; its panel sits PanelDistance along
// the base's local forward axis (-Z) with a dim halo light above it.
//
// Textures load asynchronously; panels are added immediately and pick up
// their image in place once decoded. With no specs the pivot is empty.
func Layout(specs []PanelSpec, loader *TextureLoader) (*Node, []GalleryNode) {
	pivot := NewGroup("pivot")
	angles := LayoutAngles(len(specs))
	nodes := make([]GalleryNode, 0, len(specs))

	geo := BoxGeometry(PanelWidth, PanelHeight, PanelDepth)
	for i, spec := range specs {
		base := NewGroup(fmt.Sprintf("base-%d", i))
		base.SetRotationY(angles[i])
		pivot.AddChild(base)

		panel := NewMesh(fmt.Sprintf("panel-%d", i), geo, NewMaterial(loader.Load(spec.Source)))
		panel.SetPosition(0, 0, -PanelDistance)
		panel.UserData = spec
		base.AddChild(panel)

		halo := NewLight(fmt.Sprintf("halo-%d", i), NewPointLight(haloIntensity, haloDistance))
		halo.SetPosition(0, haloHeight, -PanelDistance)
		base.AddChild(halo)

		nodes = append(nodes, GalleryNode{
			Spec:  spec,
			Angle: angles[i],
			Base:  base,
			Panel: panel,
			Light: halo,
		})
	}
	Logger().Debug("gallery laid out", "panels", len(nodes))
	return pivot, nodes
}
